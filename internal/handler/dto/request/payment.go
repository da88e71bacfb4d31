package request

import (
	"chefbook/internal/infra/payment"
)

// PaymentCallbackRequest is delivered by the gateway, not end users; only
// the signature check decides whether it is trusted.
type PaymentCallbackRequest struct {
	Reference     string `json:"reference" binding:"required"`
	Outcome       string `json:"outcome" binding:"required"`
	AmountCents   int64  `json:"amount_cents"`
	TransactionID string `json:"transaction_id"`
	Timestamp     int64  `json:"timestamp"`
	Signature     string `json:"signature" binding:"required"`
}

func (r *PaymentCallbackRequest) ToNotice() payment.Notice {
	return payment.Notice{
		Reference:     r.Reference,
		Outcome:       r.Outcome,
		AmountCents:   r.AmountCents,
		TransactionID: r.TransactionID,
		Timestamp:     r.Timestamp,
		Signature:     r.Signature,
	}
}
