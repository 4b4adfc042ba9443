package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	bookingdomain "github.com/ketukakahala/rentalops/internal/booking/domain"
)

func (s *Server) ListBookings(c *gin.Context) {
	bookings, err := s.bookingSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, bookings)
}

func (s *Server) GetBookingByID(c *gin.Context) {
	booking, err := s.bookingSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, booking)
}

func (s *Server) CreateBooking(c *gin.Context) {
	var req bookingdomain.Booking
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, errInvalidRequestBody)
		return
	}

	booking, err := s.bookingSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, booking)
}

func (s *Server) UpdateBooking(c *gin.Context) {
	var req bookingdomain.Booking
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, errInvalidRequestBody)
		return
	}

	booking, err := s.bookingSvc.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, booking)
}

func (s *Server) DeleteBooking(c *gin.Context) {
	if err := s.bookingSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted successfully"})
}
