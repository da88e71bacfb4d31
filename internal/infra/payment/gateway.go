package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"chefbook/internal/pkg/clock"
	"chefbook/internal/pkg/config"
	"chefbook/internal/pkg/errs"
)

var (
	ErrInvalidSignature = errs.New("payment notice signature mismatch")
	ErrMalformedNotice  = errs.New("payment notice is malformed")
)

// Notice is a settlement report delivered by the gateway. Nothing in it is
// trusted until VerifyNotice passes.
type Notice struct {
	Reference     string `json:"reference"`
	Outcome       string `json:"outcome"`
	AmountCents   int64  `json:"amount_cents"`
	TransactionID string `json:"transaction_id"`
	Timestamp     int64  `json:"timestamp"`
	Signature     string `json:"signature"`
}

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Intent carries the signed parameters a client hands to the gateway to
// start a payment.
type Intent struct {
	Reference   string `json:"reference"`
	AmountCents int64  `json:"amount_cents"`
	MerchantID  string `json:"merchant_id"`
	NotifyURL   string `json:"notify_url"`
	Timestamp   int64  `json:"timestamp"`
	Signature   string `json:"signature"`
}

type Gateway struct {
	secret     []byte
	merchantID string
	notifyURL  string
	clock      clock.Clock
}

func NewGateway(cfg config.PaymentConfig, clk clock.Clock) *Gateway {
	return &Gateway{
		secret:     []byte(cfg.Secret),
		merchantID: cfg.MerchantID,
		notifyURL:  cfg.NotifyURL,
		clock:      clk,
	}
}

func (g *Gateway) CreateIntent(reference string, amountCents int64) Intent {
	ts := g.clock.Now().Unix()
	intent := Intent{
		Reference:   reference,
		AmountCents: amountCents,
		MerchantID:  g.merchantID,
		NotifyURL:   g.notifyURL,
		Timestamp:   ts,
	}
	intent.Signature = g.sign(map[string]string{
		"reference":    reference,
		"amount_cents": strconv.FormatInt(amountCents, 10),
		"merchant_id":  g.merchantID,
		"notify_url":   g.notifyURL,
		"timestamp":    strconv.FormatInt(ts, 10),
	})
	return intent
}

// VerifyNotice authenticates a callback before any state change happens.
// Comparison is constant time.
func (g *Gateway) VerifyNotice(n Notice) error {
	if n.Reference == "" || n.Signature == "" {
		return ErrMalformedNotice
	}
	if n.Outcome != OutcomeSuccess && n.Outcome != OutcomeFailure {
		return ErrMalformedNotice
	}

	expected := g.sign(map[string]string{
		"reference":      n.Reference,
		"outcome":        n.Outcome,
		"amount_cents":   strconv.FormatInt(n.AmountCents, 10),
		"transaction_id": n.TransactionID,
		"timestamp":      strconv.FormatInt(n.Timestamp, 10),
	})
	if !hmac.Equal([]byte(expected), []byte(n.Signature)) {
		return ErrInvalidSignature
	}
	return nil
}

// SignNotice exists for the test side of the channel: it produces the
// signature a genuine gateway would attach.
func (g *Gateway) SignNotice(n Notice) string {
	return g.sign(map[string]string{
		"reference":      n.Reference,
		"outcome":        n.Outcome,
		"amount_cents":   strconv.FormatInt(n.AmountCents, 10),
		"transaction_id": n.TransactionID,
		"timestamp":      strconv.FormatInt(n.Timestamp, 10),
	})
}

// sign canonicalizes params as sorted key=value pairs joined by '&' and
// HMAC-SHA256s the result.
func (g *Gateway) sign(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params[k])
	}

	mac := hmac.New(sha256.New, g.secret)
	mac.Write([]byte(strings.Join(pairs, "&")))
	return hex.EncodeToString(mac.Sum(nil))
}

const (
	orderRefPrefix = "order-"
	tipRefPrefix   = "tip-"
)

func OrderReference(orderNo int64) string {
	return fmt.Sprintf("%s%d", orderRefPrefix, orderNo)
}

func TipReference(tipID string) string {
	return tipRefPrefix + tipID
}

// RefKind routes a verified notice to the record it settles.
type RefKind int

const (
	RefUnknown RefKind = iota
	RefOrder
	RefTip
)

func ParseReference(ref string) (RefKind, string) {
	switch {
	case strings.HasPrefix(ref, orderRefPrefix):
		return RefOrder, strings.TrimPrefix(ref, orderRefPrefix)
	case strings.HasPrefix(ref, tipRefPrefix):
		return RefTip, strings.TrimPrefix(ref, tipRefPrefix)
	default:
		return RefUnknown, ""
	}
}
