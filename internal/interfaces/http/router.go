package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-ledger-api/internal/application/alerts"
	"github.com/jhoicas/stock-ledger-api/internal/application/auth"
	"github.com/jhoicas/stock-ledger-api/internal/application/inventory"
	"github.com/jhoicas/stock-ledger-api/internal/application/usecase"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CompanyUC     *usecase.CompanyUseCase
	WarehouseUC   *usecase.WarehouseUseCase
	ProductUC     *usecase.ProductUseCase
	SupplierUC    *usecase.SupplierUseCase
	CreateProduct *inventory.CreateProductUseCase
	AdjustStock   *inventory.AdjustStockUseCase
	TrailingSales *inventory.TrailingSalesUseCase
	Reconcile     *inventory.ReconcileUseCase
	Bundles       *inventory.BundleUseCase
	Alerts        *alerts.LowStockAlertUseCase
	AuthUC        *auth.AuthUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Companies (público por ahora; se puede proteger con AuthMiddleware(deps.JWTSecret))
	companies := api.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:id", companyHandler.GetByID)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Warehouses (protegido)
	warehouses := protected.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Post("/", RequireRole(entity.RoleAdmin), warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)

	// Products (protegido); crear pasa por el coordinador de inventario
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.CreateProduct, deps.ProductUC, deps.Bundles)
	inventoryHandler := NewInventoryHandler(deps.AdjustStock, deps.TrailingSales, deps.Reconcile)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Post("/:id/components", productHandler.AddComponent)
	products.Get("/:id/sales", inventoryHandler.TrailingSales)

	// Inventory (protegido): ajustes, reconciliación y alertas
	invGroup := protected.Group("/inventory")
	invGroup.Post("/adjustments", inventoryHandler.AdjustStock)
	invGroup.Get("/reconcile", inventoryHandler.Reconcile)
	alertHandler := NewAlertHandler(deps.Alerts)
	invGroup.Get("/alerts", alertHandler.ComputeAlerts)

	// Suppliers (protegido)
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Post("/:id/products", supplierHandler.AddProduct)
}
