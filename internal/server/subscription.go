package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	subscriptiondomain "github.com/ketukakahala/rentalops/internal/subscription/domain"
	usagedomain "github.com/ketukakahala/rentalops/internal/usage/domain"
)

func (s *Server) ListSubscriptionPlans(c *gin.Context) {
	plans, err := s.subscriptionSvc.ListPlans(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, plans)
}

func (s *Server) GetSubscriptionPlanByID(c *gin.Context) {
	plan, err := s.subscriptionSvc.GetPlan(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, plan)
}

func (s *Server) ListSubscriptionsByCustomer(c *gin.Context) {
	subs, err := s.subscriptionSvc.ListByCustomer(c.Request.Context(), c.Param("customerId"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, subs)
}

func (s *Server) Subscribe(c *gin.Context) {
	var req subscriptiondomain.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, errInvalidRequestBody)
		return
	}

	resp, err := s.subscriptionSvc.Subscribe(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":      "Subscription created successfully",
		"subscription": resp,
	})
}

func (s *Server) CancelSubscription(c *gin.Context) {
	var req struct {
		CancelReason string `json:"cancelReason"`
	}
	// Body is optional on cancel.
	_ = c.ShouldBindJSON(&req)

	if err := s.subscriptionSvc.Cancel(c.Request.Context(), c.Param("subscriptionId"), req.CancelReason); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Subscription cancelled successfully"})
}

func (s *Server) ReactivateSubscription(c *gin.Context) {
	if err := s.subscriptionSvc.Reactivate(c.Request.Context(), c.Param("subscriptionId")); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Subscription reactivated successfully"})
}

func (s *Server) RecordUsage(c *gin.Context) {
	var req usagedomain.RecordUsageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, errInvalidRequestBody)
		return
	}

	resp, err := s.usageSvc.Record(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Usage recorded successfully",
		"amount":   resp.Amount,
		"quantity": resp.Quantity,
	})
}
