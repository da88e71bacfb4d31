package api

import (
	"context"
	"net/http"

	"chefbook/internal/domain/user"
	reqdto "chefbook/internal/handler/dto/request"
	resdto "chefbook/internal/handler/dto/response"
	"chefbook/internal/handler/httperr"
	"chefbook/internal/handler/middleware"
	"chefbook/internal/pkg/errs"
	"chefbook/internal/usecase/commands"
	"chefbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OrderHandler struct {
	cmds commands.OrderCommands
	q    queries.OrderQueries
}

func NewOrderHandler(cmds commands.OrderCommands, q queries.OrderQueries) *OrderHandler {
	return &OrderHandler{cmds: cmds, q: q}
}

// @Summary Create order
// @Description Place an order with the bound chef
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateOrderRequest true "Order request"
// @Success 201 {object} resdto.CreateOrderResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	actorID, actorRole, ok := actor(c)
	if !ok {
		return
	}

	var req reqdto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.CreateOrder(c.Request.Context(), actorID, actorRole, req.ToCommand())
	if err != nil {
		abortWithBusinessError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCreateOrderResult(result))
}

// @Summary Get order
// @Description Get one order; only its foodie or chef may read it
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	actorID, actorRole, ok := actor(c)
	if !ok {
		return
	}
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid order id", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), actorID, actorRole, orderID)
	if err != nil {
		abortWithBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrderView(view))
}

// @Summary List orders
// @Description List the caller's orders, newest first
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {array} resdto.OrderListItemResponse
// @Router /orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	actorID, actorRole, ok := actor(c)
	if !ok {
		return
	}

	var params struct {
		Status   string `form:"status" binding:"omitempty,oneof=unpaid pending accepted cooking delivering completed cancelled"`
		Page     int32  `form:"page" binding:"omitempty,min=1"`
		PageSize int32  `form:"page_size" binding:"omitempty,min=1,max=100"`
	}
	if err := c.ShouldBindQuery(&params); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}

	items, err := h.q.ListForActor(c.Request.Context(), actorID, actorRole, params.Status,
		queries.Page{Number: params.Page, Size: params.PageSize})
	if err != nil {
		abortWithBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrderListItems(items))
}

// @Summary Cancel order
// @Description Cancel the caller's order while still cancellable
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param request body reqdto.CancelOrderRequest false "Cancel reason"
// @Success 200 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /orders/{id}/cancel [post]
func (h *OrderHandler) Cancel(c *gin.Context) {
	h.driveWithReason(c, false, h.cmds.Cancel)
}

// @Summary Reject order
// @Description Chef rejects a pending order with a reason
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param request body reqdto.RejectOrderRequest true "Reject reason"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /orders/{id}/reject [post]
func (h *OrderHandler) Reject(c *gin.Context) {
	h.driveWithReason(c, true, h.cmds.Reject)
}

// @Summary Accept order
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /orders/{id}/accept [post]
func (h *OrderHandler) Accept(c *gin.Context) {
	h.drive(c, h.cmds.Accept)
}

// @Summary Start cooking
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /orders/{id}/cooking [post]
func (h *OrderHandler) MarkCooking(c *gin.Context) {
	h.drive(c, h.cmds.MarkCooking)
}

// @Summary Start delivery
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /orders/{id}/delivering [post]
func (h *OrderHandler) MarkDelivering(c *gin.Context) {
	h.drive(c, h.cmds.MarkDelivering)
}

// @Summary Confirm receipt
// @Description Foodie confirms delivery, completing the order
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /orders/{id}/confirm [post]
func (h *OrderHandler) ConfirmReceipt(c *gin.Context) {
	h.drive(c, h.cmds.ConfirmReceipt)
}

func (h *OrderHandler) drive(c *gin.Context, fn func(ctx context.Context, actorID uuid.UUID, actorRole user.Role, orderID uuid.UUID) error) {
	actorID, actorRole, ok := actor(c)
	if !ok {
		return
	}
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid order id", nil)
		return
	}

	if err := fn(c.Request.Context(), actorID, actorRole, orderID); err != nil {
		abortWithBusinessError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "ok"})
}

func (h *OrderHandler) driveWithReason(c *gin.Context, reasonRequired bool, fn func(ctx context.Context, actorID uuid.UUID, actorRole user.Role, orderID uuid.UUID, reason string) error) {
	actorID, actorRole, ok := actor(c)
	if !ok {
		return
	}
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid order id", nil)
		return
	}

	var req reqdto.CancelOrderRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
			return
		}
	}
	if reasonRequired && req.Reason == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.New("reason required"), "A reason is required", nil)
		return
	}

	if err := fn(c.Request.Context(), actorID, actorRole, orderID, req.Reason); err != nil {
		abortWithBusinessError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "ok"})
}

// actor pulls the authenticated identity the middleware stashed; a miss
// means the route is misconfigured rather than a user mistake.
func actor(c *gin.Context) (uuid.UUID, user.Role, bool) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return uuid.Nil, "", false
	}
	actorRole, ok := middleware.GetUserRole(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing role context"), "Unauthorized", nil)
		return uuid.Nil, "", false
	}
	return actorID, actorRole, true
}
