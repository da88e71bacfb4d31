package api

import (
	"net/http"

	reqdto "chefbook/internal/handler/dto/request"
	resdto "chefbook/internal/handler/dto/response"
	"chefbook/internal/handler/httperr"
	"chefbook/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	cmds commands.ReviewCommands
}

func NewReviewHandler(cmds commands.ReviewCommands) *ReviewHandler {
	return &ReviewHandler{cmds: cmds}
}

// @Summary Create review
// @Description Review a completed order; one review per order
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReviewRequest true "Review request"
// @Success 201 {object} resdto.CreateReviewResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	actorID, _, ok := actor(c)
	if !ok {
		return
	}

	var req reqdto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.CreateReview(c.Request.Context(), actorID, commands.CreateReviewRequest{
		OrderID: req.OrderID,
		Rating:  req.Rating,
		Content: req.Content,
		Images:  req.Images,
	})
	if err != nil {
		abortWithBusinessError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateReviewResponse{ReviewIDs: result.ReviewIDs})
}
