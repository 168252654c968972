package httpapi

import (
	"errors"
	"net/http"

	"github.com/Sean861026/pos-system/internal/category"
	"github.com/Sean861026/pos-system/internal/inventory"
	"github.com/Sean861026/pos-system/internal/logger"
	"github.com/Sean861026/pos-system/internal/order"
	"github.com/Sean861026/pos-system/internal/product"
	"github.com/Sean861026/pos-system/internal/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// mapErrorToStatus translates domain sentinel errors into HTTP status codes.
// Anything unrecognized is a 500 and the detail stays out of the response.
func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, order.ErrOrderNotFound),
		errors.Is(err, product.ErrProductNotFound),
		errors.Is(err, inventory.ErrInventoryNotFound),
		errors.Is(err, category.ErrCategoryNotFound),
		errors.Is(err, user.ErrUserNotFound):
		return http.StatusNotFound

	case errors.Is(err, user.ErrEmailExists),
		errors.Is(err, product.ErrSKUExists):
		return http.StatusConflict

	case errors.Is(err, user.ErrInvalidCredentials):
		return http.StatusUnauthorized

	case errors.Is(err, inventory.ErrInsufficientStock),
		errors.Is(err, inventory.ErrZeroAdjustment),
		errors.Is(err, order.ErrEmptyCart),
		errors.Is(err, order.ErrPaymentMethodRequired),
		errors.Is(err, order.ErrInvalidPaymentMethod),
		errors.Is(err, order.ErrInvalidQuantity),
		errors.Is(err, order.ErrInvalidDiscount),
		errors.Is(err, order.ErrProductUnavailable),
		errors.Is(err, order.ErrOrderNotRefundable),
		errors.Is(err, product.ErrMissingFields),
		errors.Is(err, category.ErrNameRequired),
		errors.Is(err, user.ErrMissingFields),
		errors.Is(err, user.ErrInvalidRole),
		errors.Is(err, user.ErrSelfDeactivate):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func respondError(c *gin.Context, err error) {
	status := mapErrorToStatus(err)
	if status == http.StatusInternalServerError {
		logger.FromCtx(c.Request.Context()).Error("request failed", zap.Error(err))
		c.JSON(status, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func respondBadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}
