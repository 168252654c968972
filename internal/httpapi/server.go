package httpapi

import (
	"net/http"

	"github.com/Sean861026/pos-system/internal/category"
	"github.com/Sean861026/pos-system/internal/inventory"
	"github.com/Sean861026/pos-system/internal/logger"
	"github.com/Sean861026/pos-system/internal/middleware"
	"github.com/Sean861026/pos-system/internal/order"
	"github.com/Sean861026/pos-system/internal/product"
	"github.com/Sean861026/pos-system/internal/report"
	"github.com/Sean861026/pos-system/internal/user"

	"github.com/gin-gonic/gin"
)

// Services collects the domain services the HTTP layer dispatches to.
type Services struct {
	Users       user.Service
	Categories  category.Service
	Products    product.Service
	Orders      order.Service
	Inventories inventory.Service
	Reports     report.Service
}

type Server struct {
	services Services
	metrics  *requestMetrics
}

func NewServer(services Services) *Server {
	return &Server{services: services, metrics: newRequestMetrics()}
}

// Router builds the gin engine with the full route surface. Writes to users
// are ADMIN-only; stock adjustments, refunds, reports and catalog writes
// require MANAGER or ADMIN.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestIDMiddleware())
	r.Use(logger.RequestLoggingMiddleware())
	r.Use(s.countRequests())

	r.GET("/healthz", s.handleHealth)

	api := r.Group("/api", middleware.RateLimit())

	api.POST("/auth/login", middleware.RateLimitStrict(), s.handleLogin)

	authed := api.Group("", middleware.Authenticate())
	{
		authed.GET("/auth/me", s.handleMe)

		staff := authed.Group("", middleware.RequireRole(user.RoleAdmin, user.RoleManager))
		admin := authed.Group("", middleware.RequireRole(user.RoleAdmin))

		admin.GET("/users", s.handleListUsers)
		admin.POST("/users", s.handleCreateUser)
		admin.PUT("/users/:id", s.handleUpdateUser)
		admin.DELETE("/users/:id", s.handleDeactivateUser)

		authed.GET("/categories", s.handleListCategories)
		staff.POST("/categories", s.handleCreateCategory)
		staff.PUT("/categories/:id", s.handleUpdateCategory)
		staff.DELETE("/categories/:id", s.handleDeactivateCategory)

		authed.GET("/products", s.handleListProducts)
		authed.GET("/products/:id", s.handleGetProduct)
		staff.POST("/products", s.handleCreateProduct)
		staff.PUT("/products/:id", s.handleUpdateProduct)
		staff.DELETE("/products/:id", s.handleDeactivateProduct)

		authed.POST("/orders", s.handleCheckout)
		authed.GET("/orders", s.handleListOrders)
		authed.GET("/orders/:id", s.handleGetOrder)
		staff.POST("/orders/:id/refund", s.handleRefund)

		authed.GET("/inventory", s.handleListInventory)
		authed.GET("/inventory/low-stock", s.handleListLowStock)
		authed.GET("/inventory/:productId/movements", s.handleListMovements)
		staff.POST("/inventory/:productId/adjust", s.handleAdjustInventory)

		staff.GET("/reports/summary", s.handleReportSummary)
		staff.GET("/reports/daily", s.handleReportDaily)
		staff.GET("/reports/top-products", s.handleReportTopProducts)
	}

	return r
}

func (s *Server) countRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		s.metrics.IncRequest()
		c.Next()
		if c.Writer.Status() >= http.StatusInternalServerError {
			s.metrics.IncError5xx()
		}
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"metrics": s.metrics.snapshot(),
	})
}
