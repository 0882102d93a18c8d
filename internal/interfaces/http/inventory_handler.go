package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/stock-ledger-api/internal/application/inventory"
	domaininv "github.com/jhoicas/stock-ledger-api/internal/domain/inventory"
)

// InventoryHandler maneja ajustes de stock, ventas y reconciliación (protegido).
type InventoryHandler struct {
	adjustUC    *inventory.AdjustStockUseCase
	salesUC     *inventory.TrailingSalesUseCase
	reconcileUC *inventory.ReconcileUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(adjustUC *inventory.AdjustStockUseCase, salesUC *inventory.TrailingSalesUseCase, reconcileUC *inventory.ReconcileUseCase) *InventoryHandler {
	return &InventoryHandler{adjustUC: adjustUC, salesUC: salesUC, reconcileUC: reconcileUC}
}

// AdjustStock godoc
// @Summary      Ajustar stock (delta con signo + asiento del ledger, atómico)
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdjustStockRequest  true  "product_id, warehouse_id, delta != 0, reason"
// @Success      200   {object}  dto.StockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/adjustments [post]
func (h *InventoryHandler) AdjustStock(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.adjustUC.Adjust(c.Context(), companyID, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// TrailingSales godoc
// @Summary      Ventas de un producto en la ventana móvil
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id           path   string  true   "ID del producto"
// @Param        window_days  query  int     false  "Días de la ventana"  default(30)
// @Success      200  {object}  dto.TrailingSalesResponse
// @Router       /api/products/{id}/sales [get]
func (h *InventoryHandler) TrailingSales(c *fiber.Ctx) error {
	productID := c.Params("id")
	windowDays := domaininv.AlertWindowDays
	if raw := c.Query("window_days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "window_days inválido"})
		}
		windowDays = n
	}
	out, err := h.salesUC.TrailingSales(c.Context(), productID, windowDays)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Reconcile godoc
// @Summary      Reconciliar fila de stock contra el ledger
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        product_id    query  string  true  "ID del producto"
// @Param        warehouse_id  query  string  true  "ID de la bodega"
// @Success      200  {object}  dto.ReconcileResponse
// @Router       /api/inventory/reconcile [get]
func (h *InventoryHandler) Reconcile(c *fiber.Ctx) error {
	out, err := h.reconcileUC.Reconcile(c.Context(), c.Query("product_id"), c.Query("warehouse_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
