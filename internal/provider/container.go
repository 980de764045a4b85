package provider

import (
	"github.com/brunowerneck/spiral-erp/internal/config"
	"github.com/brunowerneck/spiral-erp/internal/models"
	"github.com/brunowerneck/spiral-erp/internal/repository"
	"github.com/brunowerneck/spiral-erp/internal/service"
)

// Container dependency injection container
type Container struct {
	Config *config.Config

	// Repositories
	SupplierRepo repository.SupplierRepository
	UnitRepo     repository.UnitRepository
	MaterialRepo repository.MaterialRepository
	ProductRepo  repository.ProductRepository
	StatusRepo   repository.StatusRepository
	BatchRepo    repository.BatchRepository

	// Services
	SupplierService *service.SupplierService
	UnitService     *service.UnitService
	MaterialService *service.MaterialService
	ProductService  *service.ProductService
	StatusService   *service.StatusService
	BatchService    *service.BatchService
}

// NewContainer builds the container on the global database handle.
func NewContainer(cfg *config.Config) *Container {
	c := &Container{Config: cfg}
	c.initRepositories()
	c.initServices()
	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.SupplierRepo = repository.NewSupplierRepository(db)
	c.UnitRepo = repository.NewUnitRepository(db)
	c.MaterialRepo = repository.NewMaterialRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.StatusRepo = repository.NewStatusRepository(db)
	c.BatchRepo = repository.NewBatchRepository(db)
}

func (c *Container) initServices() {
	c.SupplierService = service.NewSupplierService(c.SupplierRepo)
	c.UnitService = service.NewUnitService(c.UnitRepo)
	c.MaterialService = service.NewMaterialService(c.MaterialRepo, c.SupplierRepo, c.UnitRepo)
	c.ProductService = service.NewProductService(c.ProductRepo, c.MaterialRepo)
	c.StatusService = service.NewStatusService(c.StatusRepo)
	c.BatchService = service.NewBatchService(c.BatchRepo, c.ProductRepo, c.UnitRepo, c.StatusRepo, nil)
}
