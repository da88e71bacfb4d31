package response

import (
	"time"

	"chefbook/internal/infra/payment"
	"chefbook/internal/usecase/commands"
	"chefbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type PaymentIntentResponse struct {
	Reference   string `json:"reference"`
	AmountCents int64  `json:"amount_cents"`
	MerchantID  string `json:"merchant_id"`
	NotifyURL   string `json:"notify_url"`
	Timestamp   int64  `json:"timestamp"`
	Signature   string `json:"signature"`
}

func FromPaymentIntent(intent *payment.Intent) *PaymentIntentResponse {
	resp := &PaymentIntentResponse{}
	_ = copier.Copy(resp, intent)
	return resp
}

type BindResponse struct {
	ChefID       uuid.UUID `json:"chef_id"`
	ChefNickname string    `json:"chef_nickname"`
}

func FromBindResult(r *commands.BindResult) *BindResponse {
	return &BindResponse{
		ChefID:       r.ChefID,
		ChefNickname: r.ChefNickname,
	}
}

type BindingResponse struct {
	ChefID       uuid.UUID `json:"chef_id"`
	ChefNickname string    `json:"chef_nickname"`
	BindingCode  string    `json:"binding_code"`
	CreatedAt    time.Time `json:"created_at"`
}

func FromBindingView(view *queries.BindingView) *BindingResponse {
	resp := &BindingResponse{}
	_ = copier.Copy(resp, view)
	return resp
}

type CreateReviewResponse struct {
	ReviewIDs []uuid.UUID `json:"review_ids"`
}

type CreateTipResponse struct {
	TipID  uuid.UUID              `json:"tip_id"`
	Intent *PaymentIntentResponse `json:"intent"`
}
