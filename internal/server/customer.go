package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	customerdomain "github.com/ketukakahala/rentalops/internal/customer/domain"
)

func (s *Server) ListCustomers(c *gin.Context) {
	customers, err := s.customerSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, customers)
}

func (s *Server) GetCustomerByID(c *gin.Context) {
	customer, err := s.customerSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, customer)
}

func (s *Server) CreateCustomer(c *gin.Context) {
	var req customerdomain.Customer
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, errInvalidRequestBody)
		return
	}

	customer, err := s.customerSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, customer)
}

func (s *Server) UpdateCustomer(c *gin.Context) {
	var req customerdomain.Customer
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, errInvalidRequestBody)
		return
	}

	customer, err := s.customerSvc.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, customer)
}

func (s *Server) DeleteCustomer(c *gin.Context) {
	if err := s.customerSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
}
