// Package migration runs schema auto-migration and seeds baseline rows
// at startup.
package migration

import (
	"time"

	"github.com/bwmarrin/snowflake"
	bookingdomain "github.com/ketukakahala/rentalops/internal/booking/domain"
	"github.com/ketukakahala/rentalops/internal/clock"
	companydomain "github.com/ketukakahala/rentalops/internal/company/domain"
	"github.com/ketukakahala/rentalops/internal/config"
	customerdomain "github.com/ketukakahala/rentalops/internal/customer/domain"
	documentdomain "github.com/ketukakahala/rentalops/internal/document/domain"
	invoicedomain "github.com/ketukakahala/rentalops/internal/invoice/domain"
	maintenancedomain "github.com/ketukakahala/rentalops/internal/maintenance/domain"
	paymentdomain "github.com/ketukakahala/rentalops/internal/payment/domain"
	receiptdomain "github.com/ketukakahala/rentalops/internal/receipt/domain"
	subscriptiondomain "github.com/ketukakahala/rentalops/internal/subscription/domain"
	usagedomain "github.com/ketukakahala/rentalops/internal/usage/domain"
	vehicledomain "github.com/ketukakahala/rentalops/internal/vehicle/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Module("migration",
	fx.Invoke(AutoMigrate),
	fx.Invoke(Seed),
)

func AutoMigrate(db *gorm.DB, log *zap.Logger) error {
	if err := db.AutoMigrate(
		&vehicledomain.Vehicle{},
		&customerdomain.Customer{},
		&bookingdomain.Booking{},
		&paymentdomain.Payment{},
		&maintenancedomain.Maintenance{},
		&documentdomain.Document{},
		&companydomain.CompanyInfo{},
		&invoicedomain.Invoice{},
		&invoicedomain.InvoiceItem{},
		&invoicedomain.PaymentTransaction{},
		&receiptdomain.Receipt{},
		&subscriptiondomain.SubscriptionPlan{},
		&subscriptiondomain.CustomerSubscription{},
		&usagedomain.UsageRecord{},
	); err != nil {
		return err
	}

	log.Info("schema migration completed")
	return nil
}

// Seed inserts the singleton company row and the default plan catalog.
// Both are idempotent: existing rows are left alone.
func Seed(db *gorm.DB, cfg config.Config, genID *snowflake.Node, clk clock.Clock, log *zap.Logger) error {
	now := clk.Now()

	var companies int64
	if err := db.Model(&companydomain.CompanyInfo{}).Count(&companies).Error; err != nil {
		return err
	}
	if companies == 0 {
		if err := db.Create(&companydomain.CompanyInfo{
			ID:        companydomain.CompanyRowID,
			Name:      "Ketu Kakahala Vehicle Rentals",
			UpdatedAt: now,
		}).Error; err != nil {
			return err
		}
		log.Info("seeded company profile")
	}

	var plans int64
	if err := db.Model(&subscriptiondomain.SubscriptionPlan{}).Count(&plans).Error; err != nil {
		return err
	}
	if plans == 0 {
		for _, plan := range defaultPlans(genID, cfg.Currency, now) {
			if err := db.Create(&plan).Error; err != nil {
				return err
			}
		}
		log.Info("seeded subscription plans")
	}

	return nil
}

func defaultPlans(genID *snowflake.Node, currency string, now time.Time) []subscriptiondomain.SubscriptionPlan {
	return []subscriptiondomain.SubscriptionPlan{
		{
			ID:            genID.Generate(),
			Name:          "Starter",
			Description:   "Small fleets getting started",
			Type:          "fleet",
			Price:         decimal.NewFromInt(499),
			Currency:      currency,
			BillingCycle:  subscriptiondomain.BillingCycleMonthly,
			Features:      []byte(`["Up to 5 vehicles","Booking management","Email support"]`),
			MaxVehicles:   5,
			MaxBookings:   50,
			MaxUsers:      2,
			FreeTrialDays: 14,
			IsActive:      true,
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		{
			ID:            genID.Generate(),
			Name:          "Business",
			Description:   "Growing rental operations",
			Type:          "fleet",
			Price:         decimal.NewFromInt(1299),
			Currency:      currency,
			BillingCycle:  subscriptiondomain.BillingCycleMonthly,
			Features:      []byte(`["Up to 25 vehicles","Invoicing and receipts","Priority support"]`),
			MaxVehicles:   25,
			MaxBookings:   500,
			MaxUsers:      10,
			FreeTrialDays: 14,
			IsActive:      true,
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		{
			ID:           genID.Generate(),
			Name:         "Enterprise",
			Description:  "Unlimited fleet, billed annually",
			Type:         "fleet",
			Price:        decimal.NewFromInt(12990),
			Currency:     currency,
			BillingCycle: subscriptiondomain.BillingCycleYearly,
			Features:     []byte(`["Unlimited vehicles","Dedicated support","Custom reporting"]`),
			MaxVehicles:  0,
			MaxBookings:  0,
			MaxUsers:     0,
			IsActive:     true,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		{
			ID:           genID.Generate(),
			Name:         "Pay As You Go",
			Description:  "Metered usage, no commitment",
			Type:         "usage",
			Price:        decimal.Zero,
			Currency:     currency,
			BillingCycle: subscriptiondomain.BillingCycleOneTime,
			Features:     []byte(`["Metered billing","No monthly fee"]`),
			UsageRate:    decimal.NewFromFloat(2.50),
			IsActive:     true,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
	}
}
