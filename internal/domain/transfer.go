package domain

import (
	"github.com/corebank/bulktransfer/pkg/moneypkg"
)

// CreditTransfer is one requested transfer line of a bulk request.
// The amount arrives as a decimal string and is parsed into cents at most once.
type CreditTransfer struct {
	Amount           string `json:"amount"`
	Currency         string `json:"currency"`
	CounterpartyName string `json:"counterparty_name"`
	CounterpartyBIC  string `json:"counterparty_bic"`
	CounterpartyIBAN string `json:"counterparty_iban"`
	Description      string `json:"description"`

	amountCents    int64
	amountCentsErr error
	amountParsed   bool
}

// AmountCents returns the transfer amount in integer cents.
// The parse result is memoized on the first call.
func (t *CreditTransfer) AmountCents() (int64, error) {
	if !t.amountParsed {
		t.amountCents, t.amountCentsErr = moneypkg.ParseCents(t.Amount)
		t.amountParsed = true
	}

	return t.amountCents, t.amountCentsErr
}

// BulkTransfer is a request to debit one organization account with a list of credit transfers.
// It is never persisted; it lives for the duration of one request.
type BulkTransfer struct {
	OrganizationBIC  string            `json:"organization_bic"`
	OrganizationIBAN string            `json:"organization_iban"`
	CreditTransfers  []*CreditTransfer `json:"credit_transfers"`
}

// TotalCents returns the sum of all transfer line amounts in cents.
func (b *BulkTransfer) TotalCents() (int64, error) {
	var total int64

	for _, t := range b.CreditTransfers {
		cents, err := t.AmountCents()
		if err != nil {
			return 0, err
		}

		total += cents
	}

	return total, nil
}

// BulkDebitParams is the input data for the atomic bulk debit unit of work.
type BulkDebitParams struct {
	OrganizationIBAN string
	OrganizationBIC  string
	TotalCents       int64
	Transactions     []Transaction
	BatchSize        int
}
