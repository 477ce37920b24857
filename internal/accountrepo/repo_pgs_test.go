//go:build integration

package accountrepo_test

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/corebank/bulktransfer/internal/accountrepo"
	"github.com/corebank/bulktransfer/internal/domain"
	"github.com/corebank/bulktransfer/internal/integrationtest"
	"github.com/corebank/bulktransfer/internal/middleware"
	"github.com/corebank/bulktransfer/internal/transactionrepo"
	"github.com/corebank/bulktransfer/pkg/configpkg"
	"github.com/corebank/bulktransfer/pkg/dbpkg"
	"github.com/corebank/bulktransfer/pkg/randompkg"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

var (
	dbDriver string
	dbSource string
	ctx      context.Context
)

func TestMain(m *testing.M) {
	config, err := configpkg.Load("../../configs")
	if err != nil {
		log.Fatal("cannot load config:", err)
	}

	dbDriver = config.DBDriver
	dbSource = config.DBSource

	logger := middleware.CreateLogger(config)
	ctx = logger.WithContext(context.Background())

	os.Exit(m.Run())
}

func TestCreate(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		tx := dbpkg.SetupTX(t, dbDriver, dbSource)
		repo := accountrepo.NewRepoPGS(tx)

		arg := domain.CreateAccountParams{
			OrganizationName: randompkg.Organization(),
			IBAN:             randompkg.IBAN(),
			BIC:              randompkg.BIC(),
			BalanceCents:     12_000,
		}

		account, err := repo.Create(ctx, arg)
		require.NoError(t, err)
		require.NotZero(t, account.ID)
		require.NotZero(t, account.CreatedAt)

		want := domain.Account{
			OrganizationName: arg.OrganizationName,
			IBAN:             arg.IBAN,
			BIC:              arg.BIC,
			BalanceCents:     arg.BalanceCents,
		}

		ignored := cmpopts.IgnoreFields(domain.Account{}, "ID", "CreatedAt")
		if diff := cmp.Diff(want, account, ignored); diff != "" {
			t.Errorf("repo.Create() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("ErrIBANAlreadyExists", func(t *testing.T) {
		tx := dbpkg.SetupTX(t, dbDriver, dbSource)
		repo := accountrepo.NewRepoPGS(tx)

		account := integrationtest.SeedAccount(t, tx, 0)

		_, err := repo.Create(ctx, domain.CreateAccountParams{
			OrganizationName: randompkg.Organization(),
			IBAN:             account.IBAN,
			BIC:              randompkg.BIC(),
		})
		require.ErrorIs(t, err, domain.ErrIBANAlreadyExists)
	})
}

func TestGet(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		tx := dbpkg.SetupTX(t, dbDriver, dbSource)
		repo := accountrepo.NewRepoPGS(tx)

		want := integrationtest.SeedAccount(t, tx, 12_000)

		got, err := repo.Get(ctx, want.ID)
		require.NoError(t, err)

		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("repo.Get() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("ErrAccountNotFound", func(t *testing.T) {
		tx := dbpkg.SetupTX(t, dbDriver, dbSource)
		repo := accountrepo.NewRepoPGS(tx)

		_, err := repo.Get(ctx, 0)
		require.ErrorIs(t, err, domain.ErrAccountNotFound)
	})
}

func TestGetForUpdate(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		tx := dbpkg.SetupTX(t, dbDriver, dbSource)
		repo := accountrepo.NewRepoPGS(tx)

		want := integrationtest.SeedAccount(t, tx, 12_000)

		got, err := repo.GetForUpdate(ctx, want.IBAN, want.BIC)
		require.NoError(t, err)

		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("repo.GetForUpdate() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("ErrAccountNotFoundOnBICMismatch", func(t *testing.T) {
		tx := dbpkg.SetupTX(t, dbDriver, dbSource)
		repo := accountrepo.NewRepoPGS(tx)

		account := integrationtest.SeedAccount(t, tx, 12_000)

		_, err := repo.GetForUpdate(ctx, account.IBAN, randompkg.BIC())
		require.ErrorIs(t, err, domain.ErrAccountNotFound)
	})
}

func TestSubtractBalanceIfSufficient(t *testing.T) {
	t.Run("Sufficient", func(t *testing.T) {
		tx := dbpkg.SetupTX(t, dbDriver, dbSource)
		repo := accountrepo.NewRepoPGS(tx)

		account := integrationtest.SeedAccount(t, tx, 12_000)

		rows, err := repo.SubtractBalanceIfSufficient(ctx, account.ID, 5000)
		require.NoError(t, err)
		require.Equal(t, int64(1), rows)

		got, err := repo.Get(ctx, account.ID)
		require.NoError(t, err)
		require.Equal(t, int64(7000), got.BalanceCents)
	})

	t.Run("Insufficient", func(t *testing.T) {
		tx := dbpkg.SetupTX(t, dbDriver, dbSource)
		repo := accountrepo.NewRepoPGS(tx)

		account := integrationtest.SeedAccount(t, tx, 10)

		rows, err := repo.SubtractBalanceIfSufficient(ctx, account.ID, 5000)
		require.NoError(t, err)
		require.Zero(t, rows)

		got, err := repo.Get(ctx, account.ID)
		require.NoError(t, err)
		require.Equal(t, int64(10), got.BalanceCents)
	})

	t.Run("ExactBalance", func(t *testing.T) {
		tx := dbpkg.SetupTX(t, dbDriver, dbSource)
		repo := accountrepo.NewRepoPGS(tx)

		account := integrationtest.SeedAccount(t, tx, 5000)

		rows, err := repo.SubtractBalanceIfSufficient(ctx, account.ID, 5000)
		require.NoError(t, err)
		require.Equal(t, int64(1), rows)

		got, err := repo.Get(ctx, account.ID)
		require.NoError(t, err)
		require.Zero(t, got.BalanceCents)
	})
}

func TestDelete(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		tx := dbpkg.SetupTX(t, dbDriver, dbSource)
		repo := accountrepo.NewRepoPGS(tx)

		account := integrationtest.SeedAccount(t, tx, 0)

		require.NoError(t, repo.Delete(ctx, account.ID))

		_, err := repo.Get(ctx, account.ID)
		require.ErrorIs(t, err, domain.ErrAccountNotFound)
	})

	t.Run("ErrAccountNotFound", func(t *testing.T) {
		tx := dbpkg.SetupTX(t, dbDriver, dbSource)
		repo := accountrepo.NewRepoPGS(tx)

		require.ErrorIs(t, repo.Delete(ctx, 0), domain.ErrAccountNotFound)
	})

	t.Run("ErrAccountHasTransactions", func(t *testing.T) {
		tx := dbpkg.SetupTX(t, dbDriver, dbSource)
		repo := accountrepo.NewRepoPGS(tx)

		account := integrationtest.SeedAccount(t, tx, 12_000)

		err := transactionrepo.NewRepoPGS(tx).CreateBatch(ctx, []domain.Transaction{{
			BankAccountID:    account.ID,
			CounterpartyName: randompkg.Organization(),
			CounterpartyIBAN: randompkg.IBAN(),
			CounterpartyBIC:  randompkg.BIC(),
			AmountCents:      -100,
			Currency:         "EUR",
			Description:      "Payment",
		}})
		require.NoError(t, err)

		require.ErrorIs(t, repo.Delete(ctx, account.ID), domain.ErrAccountHasTransactions)
	})
}
