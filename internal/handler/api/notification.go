package api

import (
	"net/http"

	resdto "chefbook/internal/handler/dto/response"
	"chefbook/internal/handler/httperr"
	"chefbook/internal/usecase/commands"
	"chefbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type NotificationHandler struct {
	queries queries.NotificationQueries
	cmds    commands.NotificationCommands
}

func NewNotificationHandler(q queries.NotificationQueries, cmds commands.NotificationCommands) *NotificationHandler {
	return &NotificationHandler{queries: q, cmds: cmds}
}

// @Summary List notifications
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param unread_only query bool false "Only unread notifications"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {array} resdto.NotificationResponse
// @Failure 400 {object} map[string]string
// @Router /notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	actorID, _, ok := actor(c)
	if !ok {
		return
	}

	var q struct {
		UnreadOnly bool  `form:"unread_only"`
		Page       int32 `form:"page" binding:"omitempty,min=1"`
		PageSize   int32 `form:"page_size" binding:"omitempty,min=1,max=100"`
	}
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}

	views, err := h.queries.ListForUser(c.Request.Context(), actorID, q.UnreadOnly, queries.Page{Number: q.Page, Size: q.PageSize})
	if err != nil {
		abortWithBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromNotificationViews(views))
}

// @Summary Mark notification read
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Notification ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	actorID, _, ok := actor(c)
	if !ok {
		return
	}

	notificationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid notification ID format", nil)
		return
	}

	if err := h.cmds.MarkRead(c.Request.Context(), actorID, notificationID); err != nil {
		abortWithBusinessError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
