package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

func (s *Server) handleReportSummary(c *gin.Context) {
	summary, err := s.services.Reports.Summary(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

func (s *Server) handleReportDaily(c *gin.Context) {
	days, _ := strconv.Atoi(c.Query("days"))
	series, err := s.services.Reports.DailySales(c.Request.Context(), days)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"dailySales": series})
}

func (s *Server) handleReportTopProducts(c *gin.Context) {
	days, _ := strconv.Atoi(c.Query("days"))
	limit, _ := strconv.Atoi(c.Query("limit"))
	top, err := s.services.Reports.TopProducts(c.Request.Context(), days, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"topProducts": top})
}
