package api

import (
	"net/http"
	"time"

	resdto "chefbook/internal/handler/dto/response"
	"chefbook/internal/handler/httperr"
	"chefbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DishHandler struct {
	queries queries.DishQueries
}

func NewDishHandler(q queries.DishQueries) *DishHandler {
	return &DishHandler{queries: q}
}

// @Summary Dish availability
// @Description Remaining units of a dish on a given date
// @Tags dishes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Dish ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.DishAvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /dishes/{id}/availability [get]
func (h *DishHandler) GetAvailability(c *gin.Context) {
	dishID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid dish ID format", nil)
		return
	}

	date := c.Query("date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "date must be YYYY-MM-DD", nil)
		return
	}

	view, err := h.queries.Availability(c.Request.Context(), dishID, date)
	if err != nil {
		abortWithBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromDishAvailability(view))
}

// @Summary List dish reviews
// @Tags dishes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Dish ID"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {array} resdto.ReviewResponse
// @Failure 400 {object} map[string]string
// @Router /dishes/{id}/reviews [get]
func (h *DishHandler) ListReviews(c *gin.Context) {
	dishID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid dish ID format", nil)
		return
	}

	var q pageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}

	views, err := h.queries.ListReviews(c.Request.Context(), dishID, queries.Page{Number: q.Page, Size: q.PageSize})
	if err != nil {
		abortWithBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReviewViews(views))
}

type pageQuery struct {
	Page     int32 `form:"page" binding:"omitempty,min=1"`
	PageSize int32 `form:"page_size" binding:"omitempty,min=1,max=100"`
}
