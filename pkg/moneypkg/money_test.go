package moneypkg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseCents(t *testing.T) {
	testCases := []struct {
		name      string
		amount    string
		wantCents int64
		wantErr   error
	}{
		{name: "TwoDecimals", amount: "14.50", wantCents: 1450},
		{name: "OneDecimal", amount: "50.0", wantCents: 5000},
		{name: "NoDecimals", amount: "120", wantCents: 12000},
		{name: "Zero", amount: "0", wantCents: 0},
		{name: "Negative", amount: "-3.10", wantCents: -310},
		{name: "TrailingZeros", amount: "14.5000", wantCents: 1450},
		{name: "ErrNotANumber", amount: "abc", wantErr: ErrNotANumber},
		{name: "ErrEmpty", amount: "", wantErr: ErrNotANumber},
		{name: "ErrPrecision", amount: "1.005", wantErr: ErrPrecision},
		{name: "ErrPrecisionTiny", amount: "0.001", wantErr: ErrPrecision},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cents, err := ParseCents(tc.amount)

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.wantCents, cents)
		})
	}
}
