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
	"github.com/ketukakahala/rentalops/internal/vehicle/domain"
	"github.com/ketukakahala/rentalops/pkg/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupVehicleService(t *testing.T) (domain.Service, *snowflake.Node) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Vehicle{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	svc := NewService(ServiceParam{
		Log:   zap.NewNop(),
		GenID: node,
		Clock: clock.NewFakeClock(time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)),
		Repo:  repository.ProvideStore[domain.Vehicle](db),
	})
	return svc, node
}

func TestCreateVehicleDefaults(t *testing.T) {
	svc, _ := setupVehicleService(t)

	created, err := svc.Create(context.Background(), domain.Vehicle{
		Make:         "Toyota",
		Model:        "Hilux",
		Year:         2024,
		LicensePlate: "N 1234 W",
		DailyRate:    decimal.NewFromFloat(899.999),
	})
	require.NoError(t, err)

	require.NotZero(t, created.ID)
	require.Equal(t, domain.DefaultStatus, created.Status)
	require.True(t, created.DailyRate.Equal(decimal.NewFromInt(900)))

	fetched, err := svc.Get(context.Background(), created.ID.String())
	require.NoError(t, err)
	require.Equal(t, "Hilux", fetched.Model)
	require.Equal(t, domain.DefaultStatus, fetched.Status)
}

func TestUpdateVehicle(t *testing.T) {
	svc, node := setupVehicleService(t)

	created, err := svc.Create(context.Background(), domain.Vehicle{
		Make:         "Toyota",
		Model:        "Hilux",
		Year:         2024,
		LicensePlate: "N 1234 W",
		DailyRate:    decimal.NewFromInt(900),
	})
	require.NoError(t, err)

	created.Status = "maintenance"
	created.Mileage = 42000
	updated, err := svc.Update(context.Background(), created.ID.String(), created)
	require.NoError(t, err)
	require.Equal(t, "maintenance", updated.Status)
	require.Equal(t, 42000, updated.Mileage)

	_, err = svc.Update(context.Background(), node.Generate().String(), created)
	require.ErrorIs(t, err, domain.ErrVehicleNotFound)
}

func TestGetVehicleErrors(t *testing.T) {
	svc, node := setupVehicleService(t)

	_, err := svc.Get(context.Background(), "not-an-id")
	require.ErrorIs(t, err, domain.ErrInvalidID)

	_, err = svc.Get(context.Background(), node.Generate().String())
	require.ErrorIs(t, err, domain.ErrVehicleNotFound)
}

func TestListVehiclesNewestFirst(t *testing.T) {
	svc, _ := setupVehicleService(t)

	first, err := svc.Create(context.Background(), domain.Vehicle{
		Make: "Toyota", Model: "Hilux", Year: 2024, LicensePlate: "N 1111 W", DailyRate: decimal.NewFromInt(900),
	})
	require.NoError(t, err)
	second, err := svc.Create(context.Background(), domain.Vehicle{
		Make: "Ford", Model: "Ranger", Year: 2025, LicensePlate: "N 2222 W", DailyRate: decimal.NewFromInt(950),
	})
	require.NoError(t, err)

	vehicles, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, vehicles, 2)
	require.Equal(t, second.ID, vehicles[0].ID)
	require.Equal(t, first.ID, vehicles[1].ID)
}

func TestDeleteVehicle(t *testing.T) {
	svc, _ := setupVehicleService(t)

	created, err := svc.Create(context.Background(), domain.Vehicle{
		Make: "Toyota", Model: "Hilux", Year: 2024, LicensePlate: "N 1234 W", DailyRate: decimal.NewFromInt(900),
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID.String()))

	_, err = svc.Get(context.Background(), created.ID.String())
	require.ErrorIs(t, err, domain.ErrVehicleNotFound)
}
