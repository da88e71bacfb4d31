package api

import (
	"net/http"

	reqdto "chefbook/internal/handler/dto/request"
	resdto "chefbook/internal/handler/dto/response"
	"chefbook/internal/handler/httperr"
	"chefbook/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PaymentHandler struct {
	cmds commands.PaymentCommands
}

func NewPaymentHandler(cmds commands.PaymentCommands) *PaymentHandler {
	return &PaymentHandler{cmds: cmds}
}

// @Summary Create payment intent
// @Description Create a signed payment intent for an unpaid order
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.PaymentIntentResponse
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /orders/{id}/payment [post]
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	actorID, actorRole, ok := actor(c)
	if !ok {
		return
	}
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid order id", nil)
		return
	}

	intent, err := h.cmds.CreateOrderPayment(c.Request.Context(), actorID, actorRole, orderID)
	if err != nil {
		abortWithBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromPaymentIntent(intent))
}

// @Summary Payment callback
// @Description Gateway settlement endpoint; authenticated by signature only
// @Tags payments
// @Accept json
// @Produce json
// @Param request body reqdto.PaymentCallbackRequest true "Settlement notice"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /payments/callback [post]
func (h *PaymentHandler) Callback(c *gin.Context) {
	var req reqdto.PaymentCallbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// Nothing about a malformed delivery is user-facing; the gateway
		// just gets a generic failure ack and will retry or give up.
		c.JSON(http.StatusBadRequest, gin.H{"result": "fail"})
		return
	}

	if err := h.cmds.HandleCallback(c.Request.Context(), req.ToNotice()); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"result": "fail"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "ok"})
}
