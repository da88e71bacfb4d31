package api

import (
	"net/http"

	reqdto "chefbook/internal/handler/dto/request"
	resdto "chefbook/internal/handler/dto/response"
	"chefbook/internal/handler/httperr"
	"chefbook/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type TipHandler struct {
	cmds commands.TipCommands
}

func NewTipHandler(cmds commands.TipCommands) *TipHandler {
	return &TipHandler{cmds: cmds}
}

// @Summary Create tip
// @Description Record a pending tip for a chef and return a payment intent
// @Tags tips
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateTipRequest true "Tip request"
// @Success 201 {object} resdto.CreateTipResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /tips [post]
func (h *TipHandler) Create(c *gin.Context) {
	actorID, role, ok := actor(c)
	if !ok {
		return
	}

	var req reqdto.CreateTipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.CreateTip(c.Request.Context(), actorID, role, commands.CreateTipRequest{
		ChefID:      req.ChefID,
		AmountCents: req.AmountCents,
		Message:     req.Message,
		OrderID:     req.OrderID,
	})
	if err != nil {
		abortWithBusinessError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateTipResponse{
		TipID:  result.TipID,
		Intent: resdto.FromPaymentIntent(&result.Intent),
	})
}
