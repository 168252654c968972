package httpapi

import (
	"net/http"

	"github.com/Sean861026/pos-system/internal/product"

	"github.com/gin-gonic/gin"
)

type createProductRequest struct {
	Name         string  `json:"name" binding:"required"`
	SKU          string  `json:"sku" binding:"required"`
	Barcode      *string `json:"barcode"`
	Description  *string `json:"description"`
	Price        float64 `json:"price" binding:"required,gt=0"`
	Cost         float64 `json:"cost"`
	CategoryID   string  `json:"categoryId" binding:"required"`
	ImageURL     *string `json:"imageUrl"`
	InitialStock int     `json:"initialStock" binding:"gte=0"`
}

type updateProductRequest struct {
	Name        *string  `json:"name"`
	SKU         *string  `json:"sku"`
	Barcode     *string  `json:"barcode"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Cost        *float64 `json:"cost"`
	CategoryID  *string  `json:"categoryId"`
	ImageURL    *string  `json:"imageUrl"`
	IsActive    *bool    `json:"isActive"`
}

func (s *Server) handleListProducts(c *gin.Context) {
	products, err := s.services.Products.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (s *Server) handleGetProduct(c *gin.Context) {
	p, err := s.services.Products.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": p})
}

func (s *Server) handleCreateProduct(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "name, sku, price and category are required")
		return
	}

	p, err := s.services.Products.Create(c.Request.Context(), product.CreateProductInput{
		Name:         req.Name,
		SKU:          req.SKU,
		Barcode:      req.Barcode,
		Description:  req.Description,
		Price:        req.Price,
		Cost:         req.Cost,
		CategoryID:   req.CategoryID,
		ImageURL:     req.ImageURL,
		InitialStock: req.InitialStock,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"product": p})
}

func (s *Server) handleUpdateProduct(c *gin.Context) {
	var req updateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	p, err := s.services.Products.Update(c.Request.Context(), c.Param("id"), product.UpdateProductInput{
		Name:        req.Name,
		SKU:         req.SKU,
		Barcode:     req.Barcode,
		Description: req.Description,
		Price:       req.Price,
		Cost:        req.Cost,
		CategoryID:  req.CategoryID,
		ImageURL:    req.ImageURL,
		IsActive:    req.IsActive,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": p})
}

func (s *Server) handleDeactivateProduct(c *gin.Context) {
	if err := s.services.Products.Deactivate(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "product deactivated"})
}
