package repository

import (
	"fmt"
	"strings"
	"testing"

	"github.com/brunowerneck/spiral-erp/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	err = db.AutoMigrate(
		&models.Supplier{},
		&models.Unit{},
		&models.Material{},
		&models.Product{},
		&models.Status{},
		&models.Batch{},
		&models.BatchMaterial{},
		&models.BatchStatus{},
	)
	if err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	return db
}

func createSupplier(t *testing.T, db *gorm.DB, name string) *models.Supplier {
	t.Helper()
	supplier := &models.Supplier{Name: name}
	if err := db.Create(supplier).Error; err != nil {
		t.Fatalf("create supplier %s failed: %v", name, err)
	}
	return supplier
}

func createUnit(t *testing.T, db *gorm.DB, name, abbreviation string) *models.Unit {
	t.Helper()
	unit := &models.Unit{Name: name, Abbreviation: abbreviation}
	if err := db.Create(unit).Error; err != nil {
		t.Fatalf("create unit %s failed: %v", name, err)
	}
	return unit
}

func createMaterial(t *testing.T, db *gorm.DB, name string, supplier *models.Supplier, unit *models.Unit, unitValue string) *models.Material {
	t.Helper()
	value, err := decimal.NewFromString(unitValue)
	if err != nil {
		t.Fatalf("parse unit value %q failed: %v", unitValue, err)
	}
	material := &models.Material{
		Name:       name,
		SupplierID: supplier.ID,
		UnitID:     unit.ID,
		UnitValue:  models.NewMoneyFromDecimal(value),
	}
	if err := db.Create(material).Error; err != nil {
		t.Fatalf("create material %s failed: %v", name, err)
	}
	return material
}

func createStatus(t *testing.T, db *gorm.DB, name string, order int) *models.Status {
	t.Helper()
	status := &models.Status{Name: name, SortOrder: order}
	if err := db.Create(status).Error; err != nil {
		t.Fatalf("create status %s failed: %v", name, err)
	}
	return status
}

func createProduct(t *testing.T, db *gorm.DB, name string, materials ...models.Material) *models.Product {
	t.Helper()
	product := &models.Product{Name: name, Materials: materials}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product %s failed: %v", name, err)
	}
	return product
}
