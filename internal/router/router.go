package router

import (
	"net/http"

	"github.com/brunowerneck/spiral-erp/internal/config"
	"github.com/brunowerneck/spiral-erp/internal/http/handlers/api"
	"github.com/brunowerneck/spiral-erp/internal/http/response"
	"github.com/brunowerneck/spiral-erp/internal/logger"
	"github.com/brunowerneck/spiral-erp/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter wires middleware and the resource routes.
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	handler := api.New(c)

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	r.GET("/", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "ERP FREE")
	})

	batches := r.Group("/batches")
	{
		batches.GET("", handler.GetBatches)
		batches.POST("", handler.CreateBatch)
		batches.GET("/batch/:id", handler.GetBatchByID)
		batches.PATCH("/batch/:id", handler.UpdateBatch)
		batches.PUT("/batch/:id", handler.UpdateBatch)
		batches.DELETE("/batch/:id", handler.DeleteBatch)

		batches.GET("/status", handler.GetStatuses)
		batches.POST("/status", handler.CreateStatus)
		batches.GET("/status/:id", handler.GetStatusByID)
		batches.PATCH("/status/:id", handler.UpdateStatus)
		batches.PUT("/status/:id", handler.UpdateStatus)
		batches.DELETE("/status/:id", handler.DeleteStatus)
	}

	materials := r.Group("/materials")
	{
		materials.GET("", handler.GetMaterials)
		materials.POST("", handler.CreateMaterial)
		materials.GET("/material/:id", handler.GetMaterialByID)
		materials.PATCH("/material/:id", handler.UpdateMaterial)
		materials.PUT("/material/:id", handler.UpdateMaterial)
		materials.DELETE("/material/:id", handler.DeleteMaterial)
	}

	products := r.Group("/products")
	{
		products.GET("", handler.GetProducts)
		products.POST("", handler.CreateProduct)
		products.GET("/product/:id", handler.GetProductByID)
		products.PATCH("/product/:id", handler.UpdateProduct)
		products.PUT("/product/:id", handler.UpdateProduct)
		products.DELETE("/product/:id", handler.DeleteProduct)
	}

	suppliers := r.Group("/suppliers")
	{
		suppliers.GET("", handler.GetSuppliers)
		suppliers.POST("", handler.CreateSupplier)
		suppliers.GET("/supplier/:id", handler.GetSupplierByID)
		suppliers.GET("/supplier/:id/materials", handler.GetSupplierMaterials)
		suppliers.PATCH("/supplier/:id", handler.UpdateSupplier)
		suppliers.PUT("/supplier/:id", handler.UpdateSupplier)
		suppliers.DELETE("/supplier/:id", handler.DeleteSupplier)
	}

	units := r.Group("/units")
	{
		units.GET("", handler.GetUnits)
		units.GET("/paginated", handler.GetUnitsPaginated)
		units.POST("", handler.CreateUnit)
		units.GET("/unit/:id", handler.GetUnitByID)
		units.PATCH("/unit/:id", handler.UpdateUnit)
		units.PUT("/unit/:id", handler.UpdateUnit)
		units.DELETE("/unit/:id", handler.DeleteUnit)
	}

	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(200, gin.H{"status": "ok"})
	})

	r.NoRoute(func(ctx *gin.Context) {
		response.NotFound(ctx, "Recurso não encontrado")
	})

	return r
}
