package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	maintenancedomain "github.com/ketukakahala/rentalops/internal/maintenance/domain"
)

func (s *Server) ListMaintenance(c *gin.Context) {
	records, err := s.maintenanceSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, records)
}

func (s *Server) CreateMaintenance(c *gin.Context) {
	var req maintenancedomain.Maintenance
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, errInvalidRequestBody)
		return
	}

	record, err := s.maintenanceSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, record)
}

func (s *Server) UpdateMaintenance(c *gin.Context) {
	var req maintenancedomain.Maintenance
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, errInvalidRequestBody)
		return
	}

	record, err := s.maintenanceSvc.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

func (s *Server) DeleteMaintenance(c *gin.Context) {
	if err := s.maintenanceSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Maintenance record deleted successfully"})
}
