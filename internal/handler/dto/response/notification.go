package response

import (
	"encoding/json"
	"time"

	"chefbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type NotificationResponse struct {
	ID        uuid.UUID       `json:"id"`
	Type      string          `json:"type"`
	Title     string          `json:"title"`
	Body      string          `json:"body,omitempty"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	Read      bool            `json:"read"`
	CreatedAt time.Time       `json:"created_at"`
}

func FromNotificationViews(views []*queries.NotificationView) []*NotificationResponse {
	result := make([]*NotificationResponse, 0, len(views))
	for _, v := range views {
		result = append(result, &NotificationResponse{
			ID:        v.ID,
			Type:      v.Type,
			Title:     v.Title,
			Body:      v.Body,
			Payload:   json.RawMessage(v.Payload),
			Read:      v.Read,
			CreatedAt: v.CreatedAt,
		})
	}
	return result
}

type EarningsSummaryResponse struct {
	CompletedOrderCents int64 `json:"completed_order_cents"`
	CompletedOrderCount int64 `json:"completed_order_count"`
	PaidTipCents        int64 `json:"paid_tip_cents"`
	PaidTipCount        int64 `json:"paid_tip_count"`
	TotalCents          int64 `json:"total_cents"`
}

func FromEarningsSummary(view *queries.EarningsSummaryView) *EarningsSummaryResponse {
	return &EarningsSummaryResponse{
		CompletedOrderCents: view.CompletedOrderCents,
		CompletedOrderCount: view.CompletedOrderCount,
		PaidTipCents:        view.PaidTipCents,
		PaidTipCount:        view.PaidTipCount,
		TotalCents:          view.TotalCents,
	}
}

type EarningsChartPointResponse struct {
	Label      string `json:"label"`
	OrderCents int64  `json:"order_cents"`
	TipCents   int64  `json:"tip_cents"`
	TotalCents int64  `json:"total_cents"`
}

type EarningsChartResponse struct {
	Period string                       `json:"period"`
	Points []EarningsChartPointResponse `json:"points"`
}

func FromEarningsChart(view *queries.EarningsChartView) *EarningsChartResponse {
	resp := &EarningsChartResponse{
		Period: view.Period,
		Points: make([]EarningsChartPointResponse, 0, len(view.Points)),
	}
	for _, p := range view.Points {
		resp.Points = append(resp.Points, EarningsChartPointResponse{
			Label:      p.Label,
			OrderCents: p.OrderCents,
			TipCents:   p.TipCents,
			TotalCents: p.TotalCents,
		})
	}
	return resp
}

type EarningsRecordResponse struct {
	Kind        string    `json:"kind"`
	RefID       uuid.UUID `json:"ref_id"`
	AmountCents int64     `json:"amount_cents"`
	OccurredAt  time.Time `json:"occurred_at"`
}

type EarningsDetailResponse struct {
	Records []EarningsRecordResponse `json:"records"`
	Total   int64                    `json:"total"`
}

func FromEarningsDetail(view *queries.EarningsDetailView) *EarningsDetailResponse {
	resp := &EarningsDetailResponse{
		Records: make([]EarningsRecordResponse, 0, len(view.Records)),
		Total:   view.Total,
	}
	for _, r := range view.Records {
		resp.Records = append(resp.Records, EarningsRecordResponse{
			Kind:        r.Kind,
			RefID:       r.RefID,
			AmountCents: r.AmountCents,
			OccurredAt:  r.OccurredAt,
		})
	}
	return resp
}
