// Package accountrepo manages repository layer of bank accounts.
package accountrepo

import (
	"context"
	"database/sql"

	"github.com/corebank/bulktransfer/internal/domain"
	"github.com/corebank/bulktransfer/pkg/dbpkg"

	"github.com/lib/pq"
	"github.com/rs/zerolog"
)

// RepoPGS facilitates account repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns account RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

const createQuery = `
INSERT INTO
    bank_accounts (organization_name, iban, bic, balance_cents)
VALUES
    ($1, $2, $3, $4)
RETURNING id, organization_name, iban, bic, balance_cents, created_at
`

// Create creates the account and then returns it.
func (r *RepoPGS) Create(ctx context.Context, arg domain.CreateAccountParams) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery, arg.OrganizationName, arg.IBAN, arg.BIC, arg.BalanceCents)

	var a domain.Account

	err := row.Scan(
		&a.ID,
		&a.OrganizationName,
		&a.IBAN,
		&a.BIC,
		&a.BalanceCents,
		&a.CreatedAt,
	)

	if err != nil {
		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Constraint == "bank_accounts_iban_key" {
				return a, domain.ErrIBANAlreadyExists
			}
		}

		return a, err
	}

	return a, nil
}

const getQuery = `
SELECT
	id, organization_name, iban, bic, balance_cents, created_at
FROM bank_accounts
WHERE id = $1
`

// Get returns the account with the given id.
func (r *RepoPGS) Get(ctx context.Context, id int64) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getQuery, id)

	var a domain.Account

	err := row.Scan(
		&a.ID,
		&a.OrganizationName,
		&a.IBAN,
		&a.BIC,
		&a.BalanceCents,
		&a.CreatedAt,
	)

	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return a, domain.ErrAccountNotFound
		}

		return a, err
	}

	return a, nil
}

const getForUpdateQuery = `
SELECT
	id, organization_name, iban, bic, balance_cents, created_at
FROM bank_accounts
WHERE iban = $1 AND bic = $2
FOR UPDATE
`

// GetForUpdate returns the account matching the given IBAN and BIC pair and takes
// an exclusive row lock on it for the duration of the enclosing transaction.
// It must run inside an active transaction to be of any use.
func (r *RepoPGS) GetForUpdate(ctx context.Context, iban, bic string) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getForUpdateQuery, iban, bic)

	var a domain.Account

	err := row.Scan(
		&a.ID,
		&a.OrganizationName,
		&a.IBAN,
		&a.BIC,
		&a.BalanceCents,
		&a.CreatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return a, domain.ErrAccountNotFound
		}

		l.Error().Err(err).Send()

		return a, err
	}

	return a, nil
}

const subtractBalanceQuery = `
UPDATE bank_accounts
SET balance_cents = balance_cents - $1
WHERE id = $2 AND balance_cents >= $1
`

// SubtractBalanceIfSufficient decrements the account balance by amountCents only
// if the current balance covers it. The returned count is 0 when it does not.
func (r *RepoPGS) SubtractBalanceIfSufficient(ctx context.Context, id, amountCents int64) (int64, error) {
	l := zerolog.Ctx(ctx)

	res, err := r.db.ExecContext(ctx, subtractBalanceQuery, amountCents, id)
	if err != nil {
		l.Error().Err(err).Send()
		return 0, err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		l.Error().Err(err).Send()
		return 0, err
	}

	return rows, nil
}

const listAccounts = `
SELECT
	id, organization_name, iban, bic, balance_cents, created_at
FROM bank_accounts
ORDER BY id
LIMIT $1 OFFSET $2
`

// List returns the specified page of accounts.
func (r *RepoPGS) List(ctx context.Context, limit, offset int32) ([]domain.Account, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listAccounts, limit, offset)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, err
	}
	defer rows.Close()

	items := []domain.Account{}

	for rows.Next() {
		var a domain.Account
		if err := rows.Scan(&a.ID, &a.OrganizationName, &a.IBAN, &a.BIC, &a.BalanceCents, &a.CreatedAt); err != nil {
			l.Error().Err(err).Send()
			return nil, err
		}

		items = append(items, a)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, err
	}

	return items, nil
}

const deleteQuery = `
DELETE FROM bank_accounts
WHERE id = $1
`

// Delete removes the account with the given id.
// Accounts that still have ledger transactions cannot be removed.
func (r *RepoPGS) Delete(ctx context.Context, id int64) error {
	l := zerolog.Ctx(ctx)

	res, err := r.db.ExecContext(ctx, deleteQuery, id)
	if err != nil {
		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Constraint == "transactions_bank_account_id_fkey" {
				return domain.ErrAccountHasTransactions
			}
		}

		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		l.Error().Err(err).Send()
		return err
	}

	if rows == 0 {
		return domain.ErrAccountNotFound
	}

	return nil
}
