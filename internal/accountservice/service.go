// Package accountservice manages business logic layer of bank accounts.
package accountservice

import (
	"context"

	"github.com/corebank/bulktransfer/internal/domain"
)

// Repo provides data access layer interface needed by account service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package accountservice
type Repo interface {
	Create(ctx context.Context, arg domain.CreateAccountParams) (domain.Account, error)
	Get(ctx context.Context, id int64) (domain.Account, error)
	List(ctx context.Context, limit, offset int32) ([]domain.Account, error)
	Delete(ctx context.Context, id int64) error
}

// TransactionRepo provides the ledger read interface needed by account service layer.
type TransactionRepo interface {
	ListByAccount(ctx context.Context, accountID int64, limit, offset int32) ([]domain.Transaction, error)
}

// Service facilitates account service layer logic.
type Service struct {
	repo            Repo
	transactionRepo TransactionRepo
}

// New returns account service struct to manage account business logic.
func New(ar Repo, tr TransactionRepo) *Service {
	return &Service{
		repo:            ar,
		transactionRepo: tr,
	}
}

// Create creates and returns an account.
func (s *Service) Create(ctx context.Context, arg domain.CreateAccountParams) (domain.Account, error) {
	return s.repo.Create(ctx, arg)
}

// Get returns the account with the given id.
func (s *Service) Get(ctx context.Context, id int64) (domain.Account, error) {
	return s.repo.Get(ctx, id)
}

// List returns the requested page of accounts.
func (s *Service) List(ctx context.Context, pageSize, pageID int32) ([]domain.Account, error) {
	limit := pageSize
	offset := (pageID - 1) * pageSize

	return s.repo.List(ctx, limit, offset)
}

// Delete removes the account with the given id.
// Accounts that still have ledger transactions cannot be removed.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// ListTransactions returns the requested page of the account's ledger transactions.
func (s *Service) ListTransactions(ctx context.Context, accountID int64, pageSize, pageID int32) ([]domain.Transaction, error) {
	if _, err := s.repo.Get(ctx, accountID); err != nil {
		return nil, err
	}

	limit := pageSize
	offset := (pageID - 1) * pageSize

	return s.transactionRepo.ListByAccount(ctx, accountID, limit, offset)
}
