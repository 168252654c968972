package httpapi

import (
	"net/http"

	"github.com/Sean861026/pos-system/internal/category"

	"github.com/gin-gonic/gin"
)

type createCategoryRequest struct {
	Name      string  `json:"name" binding:"required"`
	Color     *string `json:"color"`
	SortOrder int     `json:"sortOrder"`
}

type updateCategoryRequest struct {
	Name      *string `json:"name"`
	Color     *string `json:"color"`
	SortOrder *int    `json:"sortOrder"`
	IsActive  *bool   `json:"isActive"`
}

func (s *Server) handleListCategories(c *gin.Context) {
	categories, err := s.services.Categories.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func (s *Server) handleCreateCategory(c *gin.Context) {
	var req createCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "category name is required")
		return
	}

	cat, err := s.services.Categories.Create(c.Request.Context(), category.CreateCategoryInput{
		Name:      req.Name,
		Color:     req.Color,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"category": cat})
}

func (s *Server) handleUpdateCategory(c *gin.Context) {
	var req updateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	cat, err := s.services.Categories.Update(c.Request.Context(), c.Param("id"), category.UpdateCategoryInput{
		Name:      req.Name,
		Color:     req.Color,
		SortOrder: req.SortOrder,
		IsActive:  req.IsActive,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"category": cat})
}

func (s *Server) handleDeactivateCategory(c *gin.Context) {
	if err := s.services.Categories.Deactivate(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "category deactivated"})
}
