package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/ketukakahala/rentalops/internal/clock"
	"github.com/ketukakahala/rentalops/internal/config"
	"github.com/ketukakahala/rentalops/internal/logger"
	"github.com/ketukakahala/rentalops/internal/migration"
	"github.com/ketukakahala/rentalops/internal/server"
	"github.com/ketukakahala/rentalops/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		// Core infrastructure
		config.Module,
		logger.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		clock.Module,

		// Schema and seed data before the server accepts traffic
		migration.Module,

		// HTTP surface plus all domain modules
		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
