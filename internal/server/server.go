// Package server wires the HTTP surface: gin engine, route
// registration, and the fx lifecycle for startup and shutdown.
package server

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ketukakahala/rentalops/internal/booking"
	bookingdomain "github.com/ketukakahala/rentalops/internal/booking/domain"
	"github.com/ketukakahala/rentalops/internal/company"
	companydomain "github.com/ketukakahala/rentalops/internal/company/domain"
	"github.com/ketukakahala/rentalops/internal/config"
	"github.com/ketukakahala/rentalops/internal/customer"
	customerdomain "github.com/ketukakahala/rentalops/internal/customer/domain"
	"github.com/ketukakahala/rentalops/internal/document"
	documentdomain "github.com/ketukakahala/rentalops/internal/document/domain"
	"github.com/ketukakahala/rentalops/internal/invoice"
	invoicedomain "github.com/ketukakahala/rentalops/internal/invoice/domain"
	"github.com/ketukakahala/rentalops/internal/maintenance"
	maintenancedomain "github.com/ketukakahala/rentalops/internal/maintenance/domain"
	"github.com/ketukakahala/rentalops/internal/payment"
	paymentdomain "github.com/ketukakahala/rentalops/internal/payment/domain"
	"github.com/ketukakahala/rentalops/internal/providers/pdf"
	"github.com/ketukakahala/rentalops/internal/receipt"
	receiptdomain "github.com/ketukakahala/rentalops/internal/receipt/domain"
	"github.com/ketukakahala/rentalops/internal/stats"
	"github.com/ketukakahala/rentalops/internal/subscription"
	subscriptiondomain "github.com/ketukakahala/rentalops/internal/subscription/domain"
	"github.com/ketukakahala/rentalops/internal/usage"
	usagedomain "github.com/ketukakahala/rentalops/internal/usage/domain"
	"github.com/ketukakahala/rentalops/internal/vehicle"
	vehicledomain "github.com/ketukakahala/rentalops/internal/vehicle/domain"
	"github.com/ketukakahala/rentalops/pkg/telemetry"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("http.server",
	fx.Provide(telemetry.NewMetrics),
	fx.Provide(NewEngine),
	pdf.Module,
	company.Module,
	invoice.Module,
	receipt.Module,
	subscription.Module,
	usage.Module,
	vehicle.Module,
	customer.Module,
	booking.Module,
	payment.Module,
	maintenance.Module,
	document.Module,
	stats.Module,
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(log *zap.Logger, metrics *telemetry.Metrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(log))
	r.Use(requestMetrics(metrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func requestLogger(log *zap.Logger) gin.HandlerFunc {
	log = log.Named("http")
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Debug("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("took", time.Since(start)),
		)
	}
}

func requestMetrics(metrics *telemetry.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.ObserveAPIRequest(
			c.Request.Method,
			route,
			strconv.Itoa(c.Writer.Status()),
			time.Since(start),
		)
	}
}

func run(lc fx.Lifecycle, r *gin.Engine, cfg config.Config, log *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("http server starting", zap.String("addr", cfg.HTTPAddr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine *gin.Engine
	cfg    config.Config

	invoiceSvc      invoicedomain.Service
	receiptSvc      receiptdomain.Service
	subscriptionSvc subscriptiondomain.Service
	usageSvc        usagedomain.Service
	vehicleSvc      vehicledomain.Service
	customerSvc     customerdomain.Service
	bookingSvc      bookingdomain.Service
	paymentSvc      paymentdomain.Service
	maintenanceSvc  maintenancedomain.Service
	documentSvc     documentdomain.Service
	companySvc      companydomain.Service
	statsSvc        stats.Service
}

type ServerParams struct {
	fx.In

	Gin *gin.Engine
	Cfg config.Config

	InvoiceSvc      invoicedomain.Service
	ReceiptSvc      receiptdomain.Service
	SubscriptionSvc subscriptiondomain.Service
	UsageSvc        usagedomain.Service
	VehicleSvc      vehicledomain.Service
	CustomerSvc     customerdomain.Service
	BookingSvc      bookingdomain.Service
	PaymentSvc      paymentdomain.Service
	MaintenanceSvc  maintenancedomain.Service
	DocumentSvc     documentdomain.Service
	CompanySvc      companydomain.Service
	StatsSvc        stats.Service
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine: p.Gin,
		cfg:    p.Cfg,

		invoiceSvc:      p.InvoiceSvc,
		receiptSvc:      p.ReceiptSvc,
		subscriptionSvc: p.SubscriptionSvc,
		usageSvc:        p.UsageSvc,
		vehicleSvc:      p.VehicleSvc,
		customerSvc:     p.CustomerSvc,
		bookingSvc:      p.BookingSvc,
		paymentSvc:      p.PaymentSvc,
		maintenanceSvc:  p.MaintenanceSvc,
		documentSvc:     p.DocumentSvc,
		companySvc:      p.CompanySvc,
		statsSvc:        p.StatsSvc,
	}

	svc.registerAPIRoutes()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api")

	// -------- Fleet --------
	api.GET("/vehicles", s.ListVehicles)
	api.GET("/vehicles/:id", s.GetVehicleByID)
	api.POST("/vehicles", s.CreateVehicle)
	api.PUT("/vehicles/:id", s.UpdateVehicle)
	api.DELETE("/vehicles/:id", s.DeleteVehicle)

	api.GET("/customers", s.ListCustomers)
	api.GET("/customers/:id", s.GetCustomerByID)
	api.POST("/customers", s.CreateCustomer)
	api.PUT("/customers/:id", s.UpdateCustomer)
	api.DELETE("/customers/:id", s.DeleteCustomer)

	api.GET("/bookings", s.ListBookings)
	api.GET("/bookings/:id", s.GetBookingByID)
	api.POST("/bookings", s.CreateBooking)
	api.PUT("/bookings/:id", s.UpdateBooking)
	api.DELETE("/bookings/:id", s.DeleteBooking)

	api.GET("/payments", s.ListPayments)
	api.POST("/payments", s.CreatePayment)
	api.PUT("/payments/:id", s.UpdatePayment)
	api.DELETE("/payments/:id", s.DeletePayment)

	api.GET("/maintenance", s.ListMaintenance)
	api.POST("/maintenance", s.CreateMaintenance)
	api.PUT("/maintenance/:id", s.UpdateMaintenance)
	api.DELETE("/maintenance/:id", s.DeleteMaintenance)

	api.GET("/documents", s.ListDocuments)
	api.POST("/documents", s.CreateDocument)
	api.DELETE("/documents/:id", s.DeleteDocument)

	api.GET("/company", s.GetCompany)
	api.PUT("/company", s.UpdateCompany)
	api.GET("/stats", s.GetStats)

	// -------- Invoices --------
	api.GET("/invoices", s.ListInvoices)
	api.GET("/invoices/:id", s.GetInvoiceByID)
	api.POST("/invoices", s.CreateInvoice)
	api.PUT("/invoices/:id/status", s.UpdateInvoiceStatus)
	api.POST("/invoices/:id/payment", s.RecordInvoicePayment)
	api.GET("/invoices/customer/:customerId", s.ListInvoicesByCustomer)
	api.DELETE("/invoices/:id", s.CancelInvoice)

	// -------- Receipts --------
	api.GET("/receipts", s.ListReceipts)
	api.GET("/receipts/:id", s.GetReceiptByID)
	api.POST("/receipts", s.CreateReceipt)
	api.GET("/receipts/:id/pdf", s.DownloadReceiptPDF)
	api.GET("/receipts/customer/:customerId", s.ListReceiptsByCustomer)

	// -------- Subscriptions --------
	api.GET("/subscriptions/plans", s.ListSubscriptionPlans)
	api.GET("/subscriptions/plans/:id", s.GetSubscriptionPlanByID)
	api.GET("/subscriptions/customer/:customerId", s.ListSubscriptionsByCustomer)
	api.POST("/subscriptions/subscribe", s.Subscribe)
	api.PUT("/subscriptions/cancel/:subscriptionId", s.CancelSubscription)
	api.PUT("/subscriptions/reactivate/:subscriptionId", s.ReactivateSubscription)
	api.POST("/subscriptions/usage", s.RecordUsage)
}
