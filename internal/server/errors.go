package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	bookingdomain "github.com/ketukakahala/rentalops/internal/booking/domain"
	companydomain "github.com/ketukakahala/rentalops/internal/company/domain"
	customerdomain "github.com/ketukakahala/rentalops/internal/customer/domain"
	documentdomain "github.com/ketukakahala/rentalops/internal/document/domain"
	invoicedomain "github.com/ketukakahala/rentalops/internal/invoice/domain"
	maintenancedomain "github.com/ketukakahala/rentalops/internal/maintenance/domain"
	paymentdomain "github.com/ketukakahala/rentalops/internal/payment/domain"
	receiptdomain "github.com/ketukakahala/rentalops/internal/receipt/domain"
	subscriptiondomain "github.com/ketukakahala/rentalops/internal/subscription/domain"
	usagedomain "github.com/ketukakahala/rentalops/internal/usage/domain"
	vehicledomain "github.com/ketukakahala/rentalops/internal/vehicle/domain"
)

// notFoundErrors and validationErrors define the error taxonomy: domain
// sentinels map to 404 or 400, everything else is a 500.
var notFoundErrors = []error{
	invoicedomain.ErrInvoiceNotFound,
	receiptdomain.ErrReceiptNotFound,
	subscriptiondomain.ErrPlanNotFound,
	subscriptiondomain.ErrSubscriptionNotFound,
	companydomain.ErrCompanyNotFound,
	vehicledomain.ErrVehicleNotFound,
	customerdomain.ErrCustomerNotFound,
	bookingdomain.ErrBookingNotFound,
	paymentdomain.ErrPaymentNotFound,
	maintenancedomain.ErrMaintenanceNotFound,
	documentdomain.ErrDocumentNotFound,
}

var validationErrors = []error{
	invoicedomain.ErrInvalidID,
	invoicedomain.ErrInvalidCustomer,
	invoicedomain.ErrInvalidType,
	invoicedomain.ErrInvalidItems,
	invoicedomain.ErrInvalidAmount,
	invoicedomain.ErrInvalidPaymentMethod,
	invoicedomain.ErrInvalidStatus,
	invoicedomain.ErrInvalidDueDate,
	receiptdomain.ErrInvalidID,
	receiptdomain.ErrInvalidTransaction,
	receiptdomain.ErrInvalidCustomer,
	receiptdomain.ErrInvalidAmount,
	receiptdomain.ErrInvalidPaymentMethod,
	subscriptiondomain.ErrInvalidID,
	subscriptiondomain.ErrInvalidCustomer,
	subscriptiondomain.ErrInvalidPlan,
	subscriptiondomain.ErrInvalidStartDate,
	usagedomain.ErrInvalidSubscription,
	usagedomain.ErrInvalidCustomer,
	usagedomain.ErrInvalidUsageType,
	usagedomain.ErrInvalidQuantity,
	usagedomain.ErrInvalidUnitPrice,
	vehicledomain.ErrInvalidID,
	customerdomain.ErrInvalidID,
	bookingdomain.ErrInvalidID,
	paymentdomain.ErrInvalidID,
	maintenancedomain.ErrInvalidID,
	documentdomain.ErrInvalidID,
	errInvalidRequestBody,
}

var errInvalidRequestBody = errors.New("invalid_request_body")

// ErrorHandlingMiddleware drains the last gin error after the handler
// chain and writes the flat error body.
func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, message := mapError(lastErr.Err)
		c.AbortWithStatusJSON(status, gin.H{"error": message})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func mapError(err error) (int, string) {
	for _, target := range notFoundErrors {
		if errors.Is(err, target) {
			return http.StatusNotFound, err.Error()
		}
	}
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return http.StatusBadRequest, err.Error()
		}
	}
	return http.StatusInternalServerError, "internal server error"
}
