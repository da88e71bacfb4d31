//go:build unit

package payment_test

import (
	"testing"
	"time"

	"chefbook/internal/infra/payment"
	"chefbook/internal/pkg/clock"
	"chefbook/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGateway() *payment.Gateway {
	cfg := config.PaymentConfig{
		Secret:     "test-secret",
		MerchantID: "chefbook-test",
		NotifyURL:  "https://api.example.com/api/payments/callback",
	}
	return payment.NewGateway(cfg, clock.NewMockClock(time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)))
}

func TestCreateIntent(t *testing.T) {
	g := newTestGateway()

	intent := g.CreateIntent(payment.OrderReference(100001), 16600)

	assert.Equal(t, "order-100001", intent.Reference)
	assert.Equal(t, int64(16600), intent.AmountCents)
	assert.Equal(t, "chefbook-test", intent.MerchantID)
	assert.NotEmpty(t, intent.Signature)

	// same inputs, same clock, same signature
	again := g.CreateIntent(payment.OrderReference(100001), 16600)
	assert.Equal(t, intent.Signature, again.Signature)

	// any parameter change reshapes the signature
	other := g.CreateIntent(payment.OrderReference(100001), 16601)
	assert.NotEqual(t, intent.Signature, other.Signature)
}

func TestVerifyNotice(t *testing.T) {
	g := newTestGateway()

	genuine := func() payment.Notice {
		n := payment.Notice{
			Reference:     "order-100001",
			Outcome:       payment.OutcomeSuccess,
			AmountCents:   16600,
			TransactionID: "txn-1",
			Timestamp:     1748772000,
		}
		n.Signature = g.SignNotice(n)
		return n
	}

	t.Run("genuine notice verifies", func(t *testing.T) {
		assert.NoError(t, g.VerifyNotice(genuine()))
	})

	t.Run("failure outcome verifies too", func(t *testing.T) {
		n := genuine()
		n.Outcome = payment.OutcomeFailure
		n.Signature = g.SignNotice(n)
		assert.NoError(t, g.VerifyNotice(n))
	})

	t.Run("tampered fields are rejected", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*payment.Notice)
		}{
			{name: "amount changed", mutate: func(n *payment.Notice) { n.AmountCents = 1 }},
			{name: "reference changed", mutate: func(n *payment.Notice) { n.Reference = "order-100002" }},
			{name: "outcome flipped", mutate: func(n *payment.Notice) { n.Outcome = payment.OutcomeFailure }},
			{name: "timestamp changed", mutate: func(n *payment.Notice) { n.Timestamp++ }},
			{name: "signature garbage", mutate: func(n *payment.Notice) { n.Signature = "deadbeef" }},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				n := genuine()
				c.mutate(&n)
				assert.ErrorIs(t, g.VerifyNotice(n), payment.ErrInvalidSignature)
			})
		}
	})

	t.Run("malformed notices are rejected before signature check", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*payment.Notice)
		}{
			{name: "empty reference", mutate: func(n *payment.Notice) { n.Reference = "" }},
			{name: "empty signature", mutate: func(n *payment.Notice) { n.Signature = "" }},
			{name: "unknown outcome", mutate: func(n *payment.Notice) { n.Outcome = "maybe" }},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				n := genuine()
				c.mutate(&n)
				assert.ErrorIs(t, g.VerifyNotice(n), payment.ErrMalformedNotice)
			})
		}
	})

	t.Run("different secret rejects", func(t *testing.T) {
		other := payment.NewGateway(config.PaymentConfig{
			Secret:     "other-secret",
			MerchantID: "chefbook-test",
			NotifyURL:  "https://api.example.com/api/payments/callback",
		}, clock.NewRealClock())
		assert.ErrorIs(t, other.VerifyNotice(genuine()), payment.ErrInvalidSignature)
	})
}

func TestParseReference(t *testing.T) {
	kind, id := payment.ParseReference("order-100001")
	assert.Equal(t, payment.RefOrder, kind)
	assert.Equal(t, "100001", id)

	kind, id = payment.ParseReference("tip-3f1d0c4e")
	assert.Equal(t, payment.RefTip, kind)
	assert.Equal(t, "3f1d0c4e", id)

	kind, _ = payment.ParseReference("refund-1")
	assert.Equal(t, payment.RefUnknown, kind)

	require.Equal(t, "tip-abc", payment.TipReference("abc"))
}
