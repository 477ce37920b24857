// Package transactionrepo manages repository layer of ledger transactions.
package transactionrepo

import (
	"context"
	"fmt"
	"strings"

	"github.com/corebank/bulktransfer/internal/domain"
	"github.com/corebank/bulktransfer/pkg/dbpkg"

	"github.com/lib/pq"
	"github.com/rs/zerolog"
)

// RepoPGS facilitates transaction repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns transaction RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

const createBatchQuery = `
INSERT INTO
    transactions (bank_account_id, counterparty_name, counterparty_iban, counterparty_bic, amount_cents, currency, description)
VALUES
`

const createBatchFields = 7

// CreateBatch inserts all the given transactions with a single multi-row statement.
// Constraint violations fail the whole statement; no rows are silently dropped.
func (r *RepoPGS) CreateBatch(ctx context.Context, transactions []domain.Transaction) error {
	l := zerolog.Ctx(ctx)

	if len(transactions) == 0 {
		return nil
	}

	placeholders := make([]string, 0, len(transactions))
	args := make([]interface{}, 0, len(transactions)*createBatchFields)

	for i, t := range transactions {
		base := i * createBatchFields
		placeholders = append(placeholders, fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7))
		args = append(args,
			t.BankAccountID,
			t.CounterpartyName,
			t.CounterpartyIBAN,
			t.CounterpartyBIC,
			t.AmountCents,
			t.Currency,
			t.Description,
		)
	}

	query := createBatchQuery + "    " + strings.Join(placeholders, ",\n    ")

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		l.Error().Err(err).Msgf("CreateBatch(ctx, [%d transactions])", len(transactions))

		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Constraint == "transactions_bank_account_id_fkey" {
				return domain.ErrAccountNotFound
			}
		}

		return err
	}

	return nil
}

const listByAccountQuery = `
SELECT
	id, bank_account_id, counterparty_name, counterparty_iban, counterparty_bic, amount_cents, currency, description, created_at
FROM transactions
WHERE bank_account_id = $1
ORDER BY id
LIMIT $2 OFFSET $3
`

// ListByAccount returns the specified page of the account's transactions.
func (r *RepoPGS) ListByAccount(ctx context.Context, accountID int64, limit, offset int32) ([]domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listByAccountQuery, accountID, limit, offset)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, err
	}
	defer rows.Close()

	items := []domain.Transaction{}

	for rows.Next() {
		var t domain.Transaction
		if err := rows.Scan(
			&t.ID,
			&t.BankAccountID,
			&t.CounterpartyName,
			&t.CounterpartyIBAN,
			&t.CounterpartyBIC,
			&t.AmountCents,
			&t.Currency,
			&t.Description,
			&t.CreatedAt,
		); err != nil {
			l.Error().Err(err).Send()
			return nil, err
		}

		items = append(items, t)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, err
	}

	return items, nil
}
