package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	vehicledomain "github.com/ketukakahala/rentalops/internal/vehicle/domain"
)

func (s *Server) ListVehicles(c *gin.Context) {
	vehicles, err := s.vehicleSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, vehicles)
}

func (s *Server) GetVehicleByID(c *gin.Context) {
	vehicle, err := s.vehicleSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, vehicle)
}

func (s *Server) CreateVehicle(c *gin.Context) {
	var req vehicledomain.Vehicle
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, errInvalidRequestBody)
		return
	}

	vehicle, err := s.vehicleSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, vehicle)
}

func (s *Server) UpdateVehicle(c *gin.Context) {
	var req vehicledomain.Vehicle
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, errInvalidRequestBody)
		return
	}

	vehicle, err := s.vehicleSvc.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, vehicle)
}

func (s *Server) DeleteVehicle(c *gin.Context) {
	if err := s.vehicleSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Vehicle deleted successfully"})
}
