package service

import (
	"fmt"
	"strings"
	"testing"

	"github.com/brunowerneck/spiral-erp/internal/models"
	"github.com/brunowerneck/spiral-erp/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// repos bundles the real repositories over one in-memory database. The
// services are tested against actual persistence, not mocks.
type repos struct {
	db        *gorm.DB
	suppliers repository.SupplierRepository
	units     repository.UnitRepository
	materials repository.MaterialRepository
	products  repository.ProductRepository
	statuses  repository.StatusRepository
	batches   repository.BatchRepository
}

func openTestRepos(t *testing.T) *repos {
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
	return &repos{
		db:        db,
		suppliers: repository.NewSupplierRepository(db),
		units:     repository.NewUnitRepository(db),
		materials: repository.NewMaterialRepository(db),
		products:  repository.NewProductRepository(db),
		statuses:  repository.NewStatusRepository(db),
		batches:   repository.NewBatchRepository(db),
	}
}

func (r *repos) supplier(t *testing.T, name string) *models.Supplier {
	t.Helper()
	supplier := &models.Supplier{Name: name}
	if err := r.db.Create(supplier).Error; err != nil {
		t.Fatalf("create supplier %s failed: %v", name, err)
	}
	return supplier
}

func (r *repos) unit(t *testing.T, name, abbreviation string) *models.Unit {
	t.Helper()
	unit := &models.Unit{Name: name, Abbreviation: abbreviation}
	if err := r.db.Create(unit).Error; err != nil {
		t.Fatalf("create unit %s failed: %v", name, err)
	}
	return unit
}

func (r *repos) material(t *testing.T, name string, supplier *models.Supplier, unit *models.Unit, unitValue string) *models.Material {
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
	if err := r.db.Create(material).Error; err != nil {
		t.Fatalf("create material %s failed: %v", name, err)
	}
	return material
}

func (r *repos) status(t *testing.T, name string, order int) *models.Status {
	t.Helper()
	status := &models.Status{Name: name, SortOrder: order}
	if err := r.db.Create(status).Error; err != nil {
		t.Fatalf("create status %s failed: %v", name, err)
	}
	return status
}

func (r *repos) product(t *testing.T, name string, materials ...models.Material) *models.Product {
	t.Helper()
	product := &models.Product{Name: name, Materials: materials}
	if err := r.db.Create(product).Error; err != nil {
		t.Fatalf("create product %s failed: %v", name, err)
	}
	return product
}
