package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"chefbook/internal/domain/user"
	"chefbook/internal/handler/api"
	"chefbook/internal/handler/middleware"
	"chefbook/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth         *api.AuthHandler
	Order        *api.OrderHandler
	Payment      *api.PaymentHandler
	Binding      *api.BindingHandler
	Review       *api.ReviewHandler
	Tip          *api.TipHandler
	Dish         *api.DishHandler
	Earnings     *api.EarningsHandler
	Notification *api.NotificationHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		// Gateway callbacks authenticate by signature, not by session.
		apiGroup.POST("/payments/callback", h.Payment.Callback)

		orders := apiGroup.Group("/orders")
		orders.Use(authMiddleware.RequireAuth())
		{
			foodieOnly := authMiddleware.RequireRole(user.RoleFoodie)
			chefOnly := authMiddleware.RequireRole(user.RoleChef)
			addRoutes(orders, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Order.Create, Mw: []gin.HandlerFunc{foodieOnly}},
				{Method: http.MethodGet, Path: "", Handler: h.Order.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Order.Get},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Order.Cancel},
				{Method: http.MethodPost, Path: "/:id/accept", Handler: h.Order.Accept, Mw: []gin.HandlerFunc{chefOnly}},
				{Method: http.MethodPost, Path: "/:id/reject", Handler: h.Order.Reject, Mw: []gin.HandlerFunc{chefOnly}},
				{Method: http.MethodPost, Path: "/:id/cooking", Handler: h.Order.MarkCooking, Mw: []gin.HandlerFunc{chefOnly}},
				{Method: http.MethodPost, Path: "/:id/delivering", Handler: h.Order.MarkDelivering, Mw: []gin.HandlerFunc{chefOnly}},
				{Method: http.MethodPost, Path: "/:id/confirm", Handler: h.Order.ConfirmReceipt, Mw: []gin.HandlerFunc{foodieOnly}},
				{Method: http.MethodPost, Path: "/:id/payment", Handler: h.Payment.CreateIntent, Mw: []gin.HandlerFunc{foodieOnly}},
			})
		}

		binding := apiGroup.Group("/binding")
		binding.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(user.RoleFoodie))
		{
			addRoutes(binding, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Binding.Bind},
				{Method: http.MethodDelete, Path: "", Handler: h.Binding.Unbind},
				{Method: http.MethodGet, Path: "", Handler: h.Binding.Get},
			})
		}

		reviews := apiGroup.Group("/reviews")
		reviews.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(user.RoleFoodie))
		{
			addRoutes(reviews, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Review.Create},
			})
		}

		tips := apiGroup.Group("/tips")
		tips.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(user.RoleFoodie))
		{
			addRoutes(tips, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Tip.Create},
			})
		}

		dishes := apiGroup.Group("/dishes")
		dishes.Use(authMiddleware.RequireAuth())
		{
			addRoutes(dishes, []route{
				{Method: http.MethodGet, Path: "/:id/availability", Handler: h.Dish.GetAvailability},
				{Method: http.MethodGet, Path: "/:id/reviews", Handler: h.Dish.ListReviews},
			})
		}

		earnings := apiGroup.Group("/earnings")
		earnings.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(user.RoleChef))
		{
			addRoutes(earnings, []route{
				{Method: http.MethodGet, Path: "/summary", Handler: h.Earnings.Summary},
				{Method: http.MethodGet, Path: "/chart", Handler: h.Earnings.Chart},
				{Method: http.MethodGet, Path: "/detail", Handler: h.Earnings.Detail},
			})
		}

		notifications := apiGroup.Group("/notifications")
		notifications.Use(authMiddleware.RequireAuth())
		{
			addRoutes(notifications, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Notification.List},
				{Method: http.MethodPost, Path: "/:id/read", Handler: h.Notification.MarkRead},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
