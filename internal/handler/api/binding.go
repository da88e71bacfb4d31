package api

import (
	"net/http"

	reqdto "chefbook/internal/handler/dto/request"
	resdto "chefbook/internal/handler/dto/response"
	"chefbook/internal/handler/httperr"
	"chefbook/internal/usecase/commands"
	"chefbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BindingHandler struct {
	cmds commands.BindingCommands
	q    queries.BindingQueries
}

func NewBindingHandler(cmds commands.BindingCommands, q queries.BindingQueries) *BindingHandler {
	return &BindingHandler{cmds: cmds, q: q}
}

// @Summary Bind to chef
// @Description Redeem a binding code to pair with a chef
// @Tags binding
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.BindRequest true "Binding code"
// @Success 201 {object} resdto.BindResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /binding [post]
func (h *BindingHandler) Bind(c *gin.Context) {
	actorID, actorRole, ok := actor(c)
	if !ok {
		return
	}

	var req reqdto.BindRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.Bind(c.Request.Context(), actorID, actorRole, req.Code)
	if err != nil {
		abortWithBusinessError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBindResult(result))
}

// @Summary Unbind from chef
// @Description Remove the caller's active binding
// @Tags binding
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /binding [delete]
func (h *BindingHandler) Unbind(c *gin.Context) {
	actorID, actorRole, ok := actor(c)
	if !ok {
		return
	}

	if err := h.cmds.Unbind(c.Request.Context(), actorID, actorRole); err != nil {
		abortWithBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "ok"})
}

// @Summary Get binding
// @Description Get the caller's active binding
// @Tags binding
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.BindingResponse
// @Failure 404 {object} map[string]string
// @Router /binding [get]
func (h *BindingHandler) Get(c *gin.Context) {
	actorID, _, ok := actor(c)
	if !ok {
		return
	}

	view, err := h.q.GetForFoodie(c.Request.Context(), actorID)
	if err != nil {
		abortWithBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBindingView(view))
}
