// Package transferservice manages business logic layer of bulk transfers.
package transferservice

import (
	"context"
	"fmt"

	"github.com/corebank/bulktransfer/internal/domain"
	"github.com/corebank/bulktransfer/pkg/configpkg"

	"github.com/rs/zerolog"
)

// Repo provides data access layer interface needed by transfer service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package transferservice
type Repo interface {
	ExecuteBulkDebit(ctx context.Context, arg domain.BulkDebitParams) error
}

// Service facilitates transfer service layer logic.
type Service struct {
	repo      Repo
	batchSize int
}

// New returns transfer service struct to manage transfer business logic.
// batchSize bounds the size of ledger insert statements; values below 1 fall
// back to the default.
func New(tr Repo, batchSize int) *Service {
	if batchSize < 1 {
		batchSize = configpkg.DefaultTransferBatchSize
	}

	return &Service{
		repo:      tr,
		batchSize: batchSize,
	}
}

// Process executes the bulk debit for an already validated request.
//
// The caller must not pass a request that failed validation; Process only
// surfaces domain and runtime failures. Domain failures keep their message
// verbatim, anything else is wrapped as an unexpected error.
func (s *Service) Process(ctx context.Context, bulk *domain.BulkTransfer) error {
	l := zerolog.Ctx(ctx)

	total, err := bulk.TotalCents()
	if err != nil {
		l.Error().Err(err).Send()
		return unexpected(err)
	}

	transactions := make([]domain.Transaction, 0, len(bulk.CreditTransfers))

	for _, t := range bulk.CreditTransfers {
		cents, err := t.AmountCents()
		if err != nil {
			l.Error().Err(err).Send()
			return unexpected(err)
		}

		// Debits are stored as outflows from the account's perspective.
		transactions = append(transactions, domain.Transaction{
			CounterpartyName: t.CounterpartyName,
			CounterpartyIBAN: t.CounterpartyIBAN,
			CounterpartyBIC:  t.CounterpartyBIC,
			AmountCents:      -cents,
			Currency:         t.Currency,
			Description:      t.Description,
		})
	}

	arg := domain.BulkDebitParams{
		OrganizationIBAN: bulk.OrganizationIBAN,
		OrganizationBIC:  bulk.OrganizationBIC,
		TotalCents:       total,
		Transactions:     transactions,
		BatchSize:        s.batchSize,
	}

	if err := s.repo.ExecuteBulkDebit(ctx, arg); err != nil {
		l.Info().Err(err).Send()

		switch err {
		case domain.ErrAccountNotFound, domain.ErrInsufficientFunds:
			return err
		}

		return unexpected(err)
	}

	return nil
}

func unexpected(err error) error {
	return fmt.Errorf("Unexpected error: %s", err.Error())
}
