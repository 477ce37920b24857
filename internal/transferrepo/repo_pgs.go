// Package transferrepo manages repository layer of bulk transfers.
package transferrepo

import (
	"context"
	"database/sql"

	"github.com/corebank/bulktransfer/internal/accountrepo"
	"github.com/corebank/bulktransfer/internal/domain"
	"github.com/corebank/bulktransfer/internal/transactionrepo"
	"github.com/corebank/bulktransfer/pkg/configpkg"

	"github.com/rs/zerolog"
)

// RepoPGS facilitates bulk transfer repository layer logic.
type RepoPGS struct {
	conn *sql.DB
}

// NewRepoPGS returns bulk transfer RepoPGS with a connection to start transactions.
func NewRepoPGS(db *sql.DB) *RepoPGS {
	return &RepoPGS{
		conn: db,
	}
}

// ExecuteBulkDebit atomically records the given ledger transactions and debits the
// organization account by the given total.
//
// It locks the account row matching the IBAN and BIC pair, checks the balance under
// the lock, inserts the transactions in bounded batches and decrements the balance
// with a conditional update, all within a single database transaction. Any failure
// rolls back every write of this invocation.
func (r *RepoPGS) ExecuteBulkDebit(ctx context.Context, arg domain.BulkDebitParams) error {
	l := zerolog.Ctx(ctx)

	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		l.Error().Err(err).Send()
		return err
	}

	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			l.Error().Err(err).Send()
		}
	}()

	accountRepo := accountrepo.NewRepoPGS(tx)
	transactionRepo := transactionrepo.NewRepoPGS(tx)

	account, err := accountRepo.GetForUpdate(ctx, arg.OrganizationIBAN, arg.OrganizationBIC)
	if err != nil {
		return err
	}

	if account.BalanceCents < arg.TotalCents {
		return domain.ErrInsufficientFunds
	}

	transactions := make([]domain.Transaction, len(arg.Transactions))
	copy(transactions, arg.Transactions)

	for i := range transactions {
		transactions[i].BankAccountID = account.ID
	}

	batchSize := arg.BatchSize
	if batchSize <= 0 {
		batchSize = configpkg.DefaultTransferBatchSize
	}

	for _, batch := range chunk(transactions, batchSize) {
		if err := transactionRepo.CreateBatch(ctx, batch); err != nil {
			return err
		}
	}

	// The row lock already serializes writers; the conditional update re-asserts
	// sufficiency at the moment of the write.
	rows, err := accountRepo.SubtractBalanceIfSufficient(ctx, account.ID, arg.TotalCents)
	if err != nil {
		return err
	}

	if rows == 0 {
		return domain.ErrInsufficientFunds
	}

	if err := tx.Commit(); err != nil {
		l.Error().Err(err).Send()
		return err
	}

	return nil
}

// chunk splits transactions into consecutive slices of at most size elements,
// preserving order.
func chunk(transactions []domain.Transaction, size int) [][]domain.Transaction {
	var batches [][]domain.Transaction

	for start := 0; start < len(transactions); start += size {
		end := start + size
		if end > len(transactions) {
			end = len(transactions)
		}

		batches = append(batches, transactions[start:end])
	}

	return batches
}
