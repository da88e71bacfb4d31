package api

import (
	"net/http"

	resdto "chefbook/internal/handler/dto/response"
	"chefbook/internal/handler/httperr"
	"chefbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type EarningsHandler struct {
	queries queries.EarningsQueries
}

func NewEarningsHandler(q queries.EarningsQueries) *EarningsHandler {
	return &EarningsHandler{queries: q}
}

// @Summary Earnings summary
// @Description Chef's completed order revenue plus paid tips
// @Tags earnings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.EarningsSummaryResponse
// @Failure 403 {object} map[string]string
// @Router /earnings/summary [get]
func (h *EarningsHandler) Summary(c *gin.Context) {
	actorID, role, ok := actor(c)
	if !ok {
		return
	}

	view, err := h.queries.Summary(c.Request.Context(), actorID, role)
	if err != nil {
		abortWithBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromEarningsSummary(view))
}

// @Summary Earnings chart
// @Description Daily income buckets for the trailing week or month
// @Tags earnings
// @Produce json
// @Security BearerAuth
// @Param period query string false "weekly or monthly" default(weekly)
// @Success 200 {object} resdto.EarningsChartResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /earnings/chart [get]
func (h *EarningsHandler) Chart(c *gin.Context) {
	actorID, role, ok := actor(c)
	if !ok {
		return
	}

	period := c.DefaultQuery("period", queries.ChartPeriodWeekly)
	view, err := h.queries.Chart(c.Request.Context(), actorID, role, period)
	if err != nil {
		abortWithBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromEarningsChart(view))
}

// @Summary Earnings detail
// @Description Paginated settled transactions, orders and tips interleaved
// @Tags earnings
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} resdto.EarningsDetailResponse
// @Failure 403 {object} map[string]string
// @Router /earnings/detail [get]
func (h *EarningsHandler) Detail(c *gin.Context) {
	actorID, role, ok := actor(c)
	if !ok {
		return
	}

	var params struct {
		Page     int32 `form:"page" binding:"omitempty,min=1"`
		PageSize int32 `form:"page_size" binding:"omitempty,min=1,max=100"`
	}
	if err := c.ShouldBindQuery(&params); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}

	view, err := h.queries.Detail(c.Request.Context(), actorID, role,
		queries.Page{Number: params.Page, Size: params.PageSize})
	if err != nil {
		abortWithBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromEarningsDetail(view))
}
