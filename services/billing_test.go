package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lines(prices ...float64) []BillLine {
	out := make([]BillLine, 0, len(prices))
	for _, p := range prices {
		out = append(out, BillLine{ServiceID: uuid.New(), Name: "svc", Price: p})
	}
	return out
}

func TestComputeBillSubtotal(t *testing.T) {
	bill, err := ComputeBill(lines(300, 500), 0)
	require.NoError(t, err)
	assert.Equal(t, 800.0, bill.Subtotal)
	assert.Equal(t, 0.0, bill.DiscountAmount)
	assert.Equal(t, 800.0, bill.FinalTotal)

	// Selection order must not matter
	reversed, err := ComputeBill(lines(500, 300), 0)
	require.NoError(t, err)
	assert.Equal(t, bill.Subtotal, reversed.Subtotal)
}

func TestComputeBillDiscountExample(t *testing.T) {
	// 300 + 500 at 10% -> 800 / 80 / 720
	bill, err := ComputeBill(lines(300, 500), 10)
	require.NoError(t, err)
	assert.Equal(t, 800.0, bill.Subtotal)
	assert.Equal(t, 80.0, bill.DiscountAmount)
	assert.Equal(t, 720.0, bill.FinalTotal)
}

func TestComputeBillDiscountEndpoints(t *testing.T) {
	full, err := ComputeBill(lines(250, 150), 0)
	require.NoError(t, err)
	assert.Equal(t, full.Subtotal, full.FinalTotal)

	free, err := ComputeBill(lines(250, 150), 100)
	require.NoError(t, err)
	assert.Equal(t, 0.0, free.FinalTotal)
}

func TestComputeBillDiscountMonotonic(t *testing.T) {
	prev := -1.0
	for pct := 100; pct >= 0; pct -= 5 {
		bill, err := ComputeBill(lines(199, 501, 300), float64(pct))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, bill.FinalTotal, 0.0)
		assert.GreaterOrEqual(t, bill.FinalTotal, prev,
			"finalTotal must not increase with discount percent (pct=%d)", pct)
		prev = bill.FinalTotal
	}
}

func TestComputeBillClampsDiscount(t *testing.T) {
	over, err := ComputeBill(lines(100), 150)
	require.NoError(t, err)
	assert.Equal(t, 100.0, over.DiscountPercent)
	assert.Equal(t, 0.0, over.FinalTotal)

	under, err := ComputeBill(lines(100), -20)
	require.NoError(t, err)
	assert.Equal(t, 0.0, under.DiscountPercent)
	assert.Equal(t, 100.0, under.FinalTotal)
}

func TestComputeBillRoundsDiscount(t *testing.T) {
	// 333 at 10% -> 33.3 rounds to 33
	bill, err := ComputeBill(lines(333), 10)
	require.NoError(t, err)
	assert.Equal(t, 33.0, bill.DiscountAmount)
	assert.Equal(t, 300.0, bill.FinalTotal)
}

func TestComputeBillNoServices(t *testing.T) {
	_, err := ComputeBill(nil, 10)
	assert.ErrorIs(t, err, ErrNoServices)
}

func TestResolvePaymentSplitCash(t *testing.T) {
	split, err := ResolvePaymentSplit("cash", 720, 0, "")
	require.NoError(t, err)
	assert.Equal(t, 720.0, split.CashAmount)
	assert.Equal(t, 0.0, split.OnlineAmount)

	// Cash mode must not carry a gateway payment ID
	_, err = ResolvePaymentSplit("cash", 720, 0, "pay_abc")
	assert.ErrorIs(t, err, ErrPaymentIDPresent)
}

func TestResolvePaymentSplitOnline(t *testing.T) {
	split, err := ResolvePaymentSplit("online", 720, 0, "pay_abc")
	require.NoError(t, err)
	assert.Equal(t, 0.0, split.CashAmount)
	assert.Equal(t, 720.0, split.OnlineAmount)

	_, err = ResolvePaymentSplit("online", 720, 0, "")
	assert.ErrorIs(t, err, ErrPaymentIDRequired)
}

func TestResolvePaymentSplitPartial(t *testing.T) {
	// 720 with 200 cash -> 520 online, split is complete
	split, err := ResolvePaymentSplit("partial", 720, 200, "pay_abc")
	require.NoError(t, err)
	assert.Equal(t, 200.0, split.CashAmount)
	assert.Equal(t, 520.0, split.OnlineAmount)
	assert.Equal(t, 720.0, split.CashAmount+split.OnlineAmount)
	assert.Greater(t, split.CashAmount, 0.0)
	assert.Greater(t, split.OnlineAmount, 0.0)
}

func TestResolvePaymentSplitPartialDegenerate(t *testing.T) {
	cases := []struct {
		name string
		cash float64
	}{
		{"cash equals total", 720},
		{"cash leaves less than one rupee online", 719.5},
		{"zero cash", 0},
		{"negative cash", -50},
		{"cash above total", 800},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ResolvePaymentSplit("partial", 720, tc.cash, "pay_abc")
			assert.ErrorIs(t, err, ErrBadPartialSplit)
		})
	}

	_, err := ResolvePaymentSplit("partial", 720, 200, "")
	assert.ErrorIs(t, err, ErrPaymentIDRequired)
}

func TestResolvePaymentSplitUnknownMethod(t *testing.T) {
	_, err := ResolvePaymentSplit("cheque", 720, 0, "")
	assert.ErrorIs(t, err, ErrUnknownMethod)
}

func TestCommissionEarned(t *testing.T) {
	assert.Equal(t, 180.0, CommissionEarned(720, 25))
	assert.Equal(t, 0.0, CommissionEarned(720, 0))
	assert.Equal(t, 720.0, CommissionEarned(720, 100))

	// Out-of-range rates clamp rather than explode
	assert.Equal(t, 720.0, CommissionEarned(720, 150))
	assert.Equal(t, 0.0, CommissionEarned(720, -10))
}
