package domain

import (
	"fmt"
	"strings"
	"unicode"
)

// FieldError is a single validation failure attributed to a field.
// An empty Field marks a base-level error whose message is already complete.
type FieldError struct {
	Field   string
	Message string
}

// String renders the failure the way it is reported to clients,
// e.g. "Counterparty iban can't be blank".
func (e FieldError) String() string {
	if e.Field == "" {
		return e.Message
	}

	return humanize(e.Field) + " " + e.Message
}

// Messages renders field errors into client-facing strings, preserving order.
func Messages(errs []FieldError) []string {
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, e.String())
	}

	return msgs
}

func humanize(field string) string {
	s := strings.ReplaceAll(field, "_", " ")
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])

	return string(r)
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

type transferRule struct {
	field   string
	message string
	failed  func(t *CreditTransfer) bool
}

// Validation rules for one transfer line, evaluated eagerly in this order.
// An unparsable amount is reported the same way as a non-positive one.
var creditTransferRules = []transferRule{
	{"amount", "can't be blank", func(t *CreditTransfer) bool {
		return blank(t.Amount)
	}},
	{"amount", "must be greater than zero", func(t *CreditTransfer) bool {
		if blank(t.Amount) {
			return false
		}
		cents, err := t.AmountCents()

		return err != nil || cents <= 0
	}},
	{"currency", "can't be blank", func(t *CreditTransfer) bool {
		return blank(t.Currency)
	}},
	{"counterparty_name", "can't be blank", func(t *CreditTransfer) bool {
		return blank(t.CounterpartyName)
	}},
	{"counterparty_bic", "can't be blank", func(t *CreditTransfer) bool {
		return blank(t.CounterpartyBIC)
	}},
	{"counterparty_iban", "can't be blank", func(t *CreditTransfer) bool {
		return blank(t.CounterpartyIBAN)
	}},
	{"description", "can't be blank", func(t *CreditTransfer) bool {
		return blank(t.Description)
	}},
}

// Validate checks the transfer line and accumulates all failures in rule order.
func (t *CreditTransfer) Validate() []FieldError {
	var errs []FieldError

	for _, r := range creditTransferRules {
		if r.failed(t) {
			errs = append(errs, FieldError{Field: r.field, Message: r.message})
		}
	}

	return errs
}

// Validate checks the bulk request and accumulates all failures in rule order.
// Line-level failures are re-attributed to the bulk result together with the
// description of the offending line. An empty transfer list skips line checks.
func (b *BulkTransfer) Validate() []FieldError {
	var errs []FieldError

	if blank(b.OrganizationBIC) {
		errs = append(errs, FieldError{Field: "organization_bic", Message: "can't be blank"})
	}

	if blank(b.OrganizationIBAN) {
		errs = append(errs, FieldError{Field: "organization_iban", Message: "can't be blank"})
	}

	if len(b.CreditTransfers) == 0 {
		errs = append(errs, FieldError{Field: "credit_transfers", Message: "cannot be empty"})
		return errs
	}

	for _, t := range b.CreditTransfers {
		if t == nil {
			// A JSON null line validates as an empty one.
			t = &CreditTransfer{}
		}

		for _, fe := range t.Validate() {
			desc := t.Description
			if desc == "" {
				desc = "(no description)"
			}

			errs = append(errs, FieldError{
				Message: fmt.Sprintf("Invalid transaction with description => %s: %s", desc, fe),
			})
		}
	}

	return errs
}
