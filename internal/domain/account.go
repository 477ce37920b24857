// Package domain provides definitions of all entities.
package domain

import (
	"errors"
	"time"
)

var (
	// ErrAccountNotFound indicates that no account matches the given IBAN and BIC pair.
	ErrAccountNotFound = errors.New("Bank account not found")
	// ErrInsufficientFunds indicates that the account balance does not cover the requested debit.
	ErrInsufficientFunds = errors.New("Insufficient funds")
	// ErrIBANAlreadyExists indicates that an account with the given IBAN already exists.
	ErrIBANAlreadyExists = errors.New("account iban already exists")
	// ErrAccountHasTransactions indicates that the account cannot be deleted
	// while ledger transactions reference it.
	ErrAccountHasTransactions = errors.New("account has transactions")
)

// Account holds an organization bank account.
// The balance is kept in integer cents and may go negative (e.g. fees).
type Account struct {
	ID               int64     `json:"id"`
	OrganizationName string    `json:"organization_name"`
	IBAN             string    `json:"iban"`
	BIC              string    `json:"bic"`
	BalanceCents     int64     `json:"balance_cents"`
	CreatedAt        time.Time `json:"created_at"`
}

// CreateAccountParams is the input data to create an account.
type CreateAccountParams struct {
	OrganizationName string `json:"organization_name"`
	IBAN             string `json:"iban"`
	BIC              string `json:"bic"`
	BalanceCents     int64  `json:"balance_cents"`
}
