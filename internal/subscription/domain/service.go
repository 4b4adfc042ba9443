package domain

import (
	"context"
	"errors"
	"time"
)

type SubscribeRequest struct {
	CustomerID string `json:"customerId"`
	PlanID     string `json:"planId"`
	StartDate  string `json:"startDate"`
}

type SubscribeResponse struct {
	SubscriptionID  string             `json:"subscriptionId"`
	Status          SubscriptionStatus `json:"status"`
	StartDate       time.Time          `json:"startDate"`
	EndDate         *time.Time         `json:"endDate"`
	TrialEndDate    *time.Time         `json:"trialEndDate"`
	NextBillingDate *time.Time         `json:"nextBillingDate"`
}

type Service interface {
	ListPlans(ctx context.Context) ([]SubscriptionPlan, error)
	GetPlan(ctx context.Context, id string) (SubscriptionPlan, error)
	Subscribe(context.Context, SubscribeRequest) (SubscribeResponse, error)
	Cancel(ctx context.Context, id, reason string) error
	Reactivate(ctx context.Context, id string) error
	ListByCustomer(ctx context.Context, customerID string) ([]SubscriptionDetail, error)
}

var (
	ErrPlanNotFound         = errors.New("plan_not_found")
	ErrSubscriptionNotFound = errors.New("subscription_not_found")
	ErrInvalidID            = errors.New("invalid_subscription_id")
	ErrInvalidCustomer      = errors.New("invalid_customer")
	ErrInvalidPlan          = errors.New("invalid_plan")
	ErrInvalidStartDate     = errors.New("invalid_start_date")
)
