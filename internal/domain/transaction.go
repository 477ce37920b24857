package domain

import "time"

// Transaction holds one ledger entry of an account.
// The amount is signed integer cents; bulk credit transfers store outflows as negative amounts.
type Transaction struct {
	ID               int64     `json:"id"`
	BankAccountID    int64     `json:"bank_account_id"`
	CounterpartyName string    `json:"counterparty_name"`
	CounterpartyIBAN string    `json:"counterparty_iban"`
	CounterpartyBIC  string    `json:"counterparty_bic"`
	AmountCents      int64     `json:"amount_cents"`
	Currency         string    `json:"currency"`
	Description      string    `json:"description"`
	CreatedAt        time.Time `json:"created_at"`
}
