// Package integrationtest provides seed helpers shared by integration tests.
package integrationtest

import (
	"context"
	"database/sql"
	"testing"

	"github.com/corebank/bulktransfer/internal/accountrepo"
	"github.com/corebank/bulktransfer/internal/domain"
	"github.com/corebank/bulktransfer/pkg/dbpkg"
	"github.com/corebank/bulktransfer/pkg/randompkg"
)

// SeedAccount creates an account with random identifiers and the given balance.
func SeedAccount(t *testing.T, db dbpkg.SQLInterface, balanceCents int64) domain.Account {
	t.Helper()

	repo := accountrepo.NewRepoPGS(db)

	account, err := repo.Create(context.Background(), domain.CreateAccountParams{
		OrganizationName: randompkg.Organization(),
		IBAN:             randompkg.IBAN(),
		BIC:              randompkg.BIC(),
		BalanceCents:     balanceCents,
	})
	if err != nil {
		t.Fatalf("SeedAccount: %v", err)
	}

	return account
}

// CleanupAccount removes the account and all its transactions.
// Used by tests that run against a committed connection instead of a
// rolled-back test transaction.
func CleanupAccount(t *testing.T, db *sql.DB, accountID int64) {
	t.Helper()

	ctx := context.Background()

	if _, err := db.ExecContext(ctx, "DELETE FROM transactions WHERE bank_account_id = $1", accountID); err != nil {
		t.Fatalf("CleanupAccount transactions: %v", err)
	}

	if _, err := db.ExecContext(ctx, "DELETE FROM bank_accounts WHERE id = $1", accountID); err != nil {
		t.Fatalf("CleanupAccount account: %v", err)
	}
}

// CountTransactions returns the number of ledger transactions of the account.
func CountTransactions(t *testing.T, db dbpkg.SQLInterface, accountID int64) int {
	t.Helper()

	var count int

	row := db.QueryRowContext(context.Background(),
		"SELECT count(*) FROM transactions WHERE bank_account_id = $1", accountID)
	if err := row.Scan(&count); err != nil {
		t.Fatalf("CountTransactions: %v", err)
	}

	return count
}
