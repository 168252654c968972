package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type adjustInventoryRequest struct {
	Quantity *int   `json:"quantity" binding:"required"`
	Note     string `json:"note"`
}

func (s *Server) handleListInventory(c *gin.Context) {
	inventories, err := s.services.Inventories.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"inventory": inventories})
}

func (s *Server) handleListLowStock(c *gin.Context) {
	inventories, err := s.services.Inventories.ListLowStock(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"inventory": inventories})
}

func (s *Server) handleListMovements(c *gin.Context) {
	movements, err := s.services.Inventories.Movements(c.Request.Context(), c.Param("productId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"movements": movements})
}

func (s *Server) handleAdjustInventory(c *gin.Context) {
	var req adjustInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "quantity is required")
		return
	}

	inv, err := s.services.Inventories.Adjust(c.Request.Context(), c.Param("productId"), *req.Quantity, req.Note)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"inventory": inv})
}
