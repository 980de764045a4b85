package main

import (
	"github.com/brunowerneck/spiral-erp/internal/config"
	"github.com/brunowerneck/spiral-erp/internal/constants"
	"github.com/brunowerneck/spiral-erp/internal/logger"
	"github.com/brunowerneck/spiral-erp/internal/models"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// Lifecycle ladder. CRIADO at order 0 is required before any batch can
	// be created.
	statuses := []models.Status{
		{Name: constants.StatusNameCreated, SortOrder: constants.StatusOrderCreated},
		{Name: "EM PRODUÇÃO", SortOrder: 10},
		{Name: "FINALIZADO", SortOrder: 80},
		{Name: "CANCELADO", SortOrder: constants.StatusOrderCancelled},
	}

	for _, status := range statuses {
		var existing models.Status
		if err := models.DB.Where("name = ?", status.Name).First(&existing).Error; err != nil {
			if err := models.DB.Create(&status).Error; err != nil {
				stdLog.Printf("Failed to create status %s: %v", status.Name, err)
			} else {
				stdLog.Printf("Created status: %s (order %d)", status.Name, status.SortOrder)
			}
		} else {
			stdLog.Printf("Status already exists: %s", status.Name)
		}
	}

	units := []models.Unit{
		{Name: "Quilograma", Abbreviation: "kg"},
		{Name: "Grama", Abbreviation: "g"},
		{Name: "Litro", Abbreviation: "l"},
		{Name: "Mililitro", Abbreviation: "ml"},
		{Name: "Unidade", Abbreviation: "un"},
	}

	for _, unit := range units {
		var existing models.Unit
		if err := models.DB.Where("name = ?", unit.Name).First(&existing).Error; err != nil {
			if err := models.DB.Create(&unit).Error; err != nil {
				stdLog.Printf("Failed to create unit %s: %v", unit.Name, err)
			} else {
				stdLog.Printf("Created unit: %s (%s)", unit.Name, unit.Abbreviation)
			}
		} else {
			stdLog.Printf("Unit already exists: %s", unit.Name)
		}
	}

	stdLog.Println("Seed finished")
}
