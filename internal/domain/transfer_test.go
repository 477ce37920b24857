package domain

import (
	"testing"

	"github.com/corebank/bulktransfer/pkg/moneypkg"
	"github.com/stretchr/testify/require"
)

func TestCreditTransferAmountCents(t *testing.T) {
	t.Run("Parses", func(t *testing.T) {
		tr := &CreditTransfer{Amount: "14.50"}

		cents, err := tr.AmountCents()
		require.NoError(t, err)
		require.Equal(t, int64(1450), cents)
	})

	t.Run("MemoizesFirstResult", func(t *testing.T) {
		tr := &CreditTransfer{Amount: "14.50"}

		_, err := tr.AmountCents()
		require.NoError(t, err)

		tr.Amount = "99.99"

		cents, err := tr.AmountCents()
		require.NoError(t, err)
		require.Equal(t, int64(1450), cents)
	})

	t.Run("MemoizesError", func(t *testing.T) {
		tr := &CreditTransfer{Amount: "abc"}

		_, err := tr.AmountCents()
		require.ErrorIs(t, err, moneypkg.ErrNotANumber)

		tr.Amount = "10"

		_, err = tr.AmountCents()
		require.ErrorIs(t, err, moneypkg.ErrNotANumber)
	})
}

func TestBulkTransferTotalCents(t *testing.T) {
	t.Run("SumsAllLines", func(t *testing.T) {
		bulk := &BulkTransfer{
			CreditTransfers: []*CreditTransfer{
				{Amount: "14.50"},
				{Amount: "0.50"},
				{Amount: "100"},
			},
		}

		total, err := bulk.TotalCents()
		require.NoError(t, err)
		require.Equal(t, int64(11500), total)
	})

	t.Run("PropagatesParseError", func(t *testing.T) {
		bulk := &BulkTransfer{
			CreditTransfers: []*CreditTransfer{
				{Amount: "14.50"},
				{Amount: "1.005"},
			},
		}

		_, err := bulk.TotalCents()
		require.ErrorIs(t, err, moneypkg.ErrPrecision)
	})
}
