package service

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/ketukakahala/rentalops/internal/clock"
	subscriptiondomain "github.com/ketukakahala/rentalops/internal/subscription/domain"
	subscriptionrepository "github.com/ketukakahala/rentalops/internal/subscription/repository"
	"github.com/ketukakahala/rentalops/internal/usage/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupUsageService(t *testing.T) (domain.Service, *gorm.DB, *snowflake.Node) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&subscriptiondomain.CustomerSubscription{},
		&domain.UsageRecord{},
	))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	clk := clock.NewFakeClock(time.Date(2026, 7, 15, 9, 30, 0, 0, time.UTC))

	svc := NewService(ServiceParam{
		DB:      db,
		Log:     zap.NewNop(),
		GenID:   node,
		Clock:   clk,
		SubRepo: subscriptionrepository.Provide(),
	})
	return svc, db, node
}

func seedSubscription(t *testing.T, db *gorm.DB, node *snowflake.Node) subscriptiondomain.CustomerSubscription {
	t.Helper()
	now := time.Now().UTC()
	sub := subscriptiondomain.CustomerSubscription{
		ID:                 node.Generate(),
		CustomerID:         node.Generate(),
		PlanID:             node.Generate(),
		Status:             subscriptiondomain.SubscriptionStatusActive,
		StartDate:          now,
		AutoRenew:          true,
		CurrentPeriodStart: now,
		UsageCount:         decimal.Zero,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	require.NoError(t, db.Create(&sub).Error)
	return sub
}

func TestRecordUsage(t *testing.T) {
	svc, db, node := setupUsageService(t)
	sub := seedSubscription(t, db, node)

	resp, err := svc.Record(context.Background(), domain.RecordUsageRequest{
		SubscriptionID: sub.ID.String(),
		CustomerID:     sub.CustomerID.String(),
		UsageType:      "km_driven",
		Quantity:       decimal.NewFromInt(120),
		UnitPrice:      decimal.NewFromFloat(2.50),
		Description:    "Weekend trip",
	})
	require.NoError(t, err)
	require.True(t, resp.Amount.Equal(decimal.NewFromInt(300)))
	require.True(t, resp.Quantity.Equal(decimal.NewFromInt(120)))

	var record domain.UsageRecord
	require.NoError(t, db.First(&record).Error)
	require.Equal(t, sub.ID, record.SubscriptionID)
	require.Equal(t, "km_driven", record.UsageType)
	require.True(t, record.Amount.Equal(decimal.NewFromInt(300)))
	require.Equal(t, time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC), record.RecordDate.UTC())

	var updated subscriptiondomain.CustomerSubscription
	require.NoError(t, db.First(&updated, "id = ?", sub.ID).Error)
	require.True(t, updated.UsageCount.Equal(decimal.NewFromInt(120)))
	// updated_at comes from the injected clock, not the wall clock.
	require.Equal(t, time.Date(2026, 7, 15, 9, 30, 0, 0, time.UTC), updated.UpdatedAt.UTC())
}

func TestRecordUsageAccumulates(t *testing.T) {
	svc, db, node := setupUsageService(t)
	sub := seedSubscription(t, db, node)

	for _, qty := range []int64{10, 25} {
		_, err := svc.Record(context.Background(), domain.RecordUsageRequest{
			SubscriptionID: sub.ID.String(),
			CustomerID:     sub.CustomerID.String(),
			UsageType:      "km_driven",
			Quantity:       decimal.NewFromInt(qty),
			UnitPrice:      decimal.NewFromInt(2),
		})
		require.NoError(t, err)
	}

	var updated subscriptiondomain.CustomerSubscription
	require.NoError(t, db.First(&updated, "id = ?", sub.ID).Error)
	require.True(t, updated.UsageCount.Equal(decimal.NewFromInt(35)))

	var records int64
	require.NoError(t, db.Model(&domain.UsageRecord{}).Count(&records).Error)
	require.EqualValues(t, 2, records)
}

func TestRecordUsageRoundsAmount(t *testing.T) {
	svc, db, node := setupUsageService(t)
	sub := seedSubscription(t, db, node)

	resp, err := svc.Record(context.Background(), domain.RecordUsageRequest{
		SubscriptionID: sub.ID.String(),
		CustomerID:     sub.CustomerID.String(),
		UsageType:      "km_driven",
		Quantity:       decimal.NewFromFloat(3.33),
		UnitPrice:      decimal.NewFromFloat(1.11),
	})
	require.NoError(t, err)
	// 3.33 * 1.11 = 3.6963, rounded to 3.70.
	require.True(t, resp.Amount.Equal(decimal.NewFromFloat(3.70)))
}

func TestRecordUsageValidation(t *testing.T) {
	svc, db, node := setupUsageService(t)
	sub := seedSubscription(t, db, node)

	valid := domain.RecordUsageRequest{
		SubscriptionID: sub.ID.String(),
		CustomerID:     sub.CustomerID.String(),
		UsageType:      "km_driven",
		Quantity:       decimal.NewFromInt(1),
		UnitPrice:      decimal.NewFromInt(1),
	}

	req := valid
	req.SubscriptionID = ""
	_, err := svc.Record(context.Background(), req)
	require.ErrorIs(t, err, domain.ErrInvalidSubscription)

	req = valid
	req.CustomerID = "not-a-number"
	_, err = svc.Record(context.Background(), req)
	require.ErrorIs(t, err, domain.ErrInvalidCustomer)

	req = valid
	req.UsageType = "  "
	_, err = svc.Record(context.Background(), req)
	require.ErrorIs(t, err, domain.ErrInvalidUsageType)

	req = valid
	req.Quantity = decimal.Zero
	_, err = svc.Record(context.Background(), req)
	require.ErrorIs(t, err, domain.ErrInvalidQuantity)

	req = valid
	req.UnitPrice = decimal.Zero
	_, err = svc.Record(context.Background(), req)
	require.ErrorIs(t, err, domain.ErrInvalidUnitPrice)
}

func TestRecordUsageMissingSubscription(t *testing.T) {
	svc, db, node := setupUsageService(t)

	_, err := svc.Record(context.Background(), domain.RecordUsageRequest{
		SubscriptionID: node.Generate().String(),
		CustomerID:     node.Generate().String(),
		UsageType:      "km_driven",
		Quantity:       decimal.NewFromInt(5),
		UnitPrice:      decimal.NewFromInt(2),
	})
	require.ErrorIs(t, err, subscriptiondomain.ErrSubscriptionNotFound)

	// The failed transaction leaves no usage rows behind.
	var records int64
	require.NoError(t, db.Model(&domain.UsageRecord{}).Count(&records).Error)
	require.Zero(t, records)
}
