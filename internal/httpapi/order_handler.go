package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Sean861026/pos-system/internal/order"
	"github.com/Sean861026/pos-system/internal/utils"

	"github.com/gin-gonic/gin"
)

type checkoutRequest struct {
	Items []struct {
		ProductID string `json:"productId" binding:"required"`
		Quantity  int    `json:"quantity" binding:"required"`
	} `json:"items"`
	PaymentMethod  string  `json:"paymentMethod"`
	DiscountAmount float64 `json:"discountAmount"`
	Note           *string `json:"note"`
}

func (s *Server) handleCheckout(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	items := make([]order.CartItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, order.CartItem{ProductID: it.ProductID, Quantity: it.Quantity})
	}

	cashierID, _ := utils.GetUserIDFromContext(c.Request.Context())
	o, err := s.services.Orders.Checkout(c.Request.Context(), cashierID, order.CheckoutInput{
		Items:          items,
		PaymentMethod:  order.PaymentMethod(req.PaymentMethod),
		DiscountAmount: req.DiscountAmount,
		Note:           req.Note,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	s.metrics.IncCheckout()
	c.JSON(http.StatusCreated, gin.H{"order": o})
}

// parseDateParam accepts YYYY-MM-DD; endOfDay pushes the bound to the last
// instant of that day so endDate filters are inclusive.
func parseDateParam(value string, endOfDay bool) (*time.Time, bool) {
	if value == "" {
		return nil, true
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, false
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Second)
	}
	return &t, true
}

func (s *Server) handleListOrders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	var filter order.ListFilter
	if v := c.Query("status"); v != "" {
		status := order.Status(v)
		filter.Status = &status
	}

	start, ok := parseDateParam(c.Query("startDate"), false)
	if !ok {
		respondBadRequest(c, "startDate must be YYYY-MM-DD")
		return
	}
	filter.StartDate = start

	end, ok := parseDateParam(c.Query("endDate"), true)
	if !ok {
		respondBadRequest(c, "endDate must be YYYY-MM-DD")
		return
	}
	filter.EndDate = end

	orders, total, err := s.services.Orders.List(c.Request.Context(), filter, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	if orders == nil {
		orders = []*order.Order{}
	}

	c.JSON(http.StatusOK, gin.H{
		"orders": orders,
		"total":  total,
		"page":   page,
		"limit":  limit,
	})
}

func (s *Server) handleGetOrder(c *gin.Context) {
	o, err := s.services.Orders.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": o})
}

func (s *Server) handleRefund(c *gin.Context) {
	o, err := s.services.Orders.Refund(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	s.metrics.IncRefund()
	c.JSON(http.StatusOK, gin.H{"order": o})
}
