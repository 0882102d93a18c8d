package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-ledger-api/internal/application/alerts"
	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
)

// AlertHandler expone el motor de alertas de bajo stock (protegido).
type AlertHandler struct {
	uc *alerts.LowStockAlertUseCase
}

// NewAlertHandler construye el handler.
func NewAlertHandler(uc *alerts.LowStockAlertUseCase) *AlertHandler {
	return &AlertHandler{uc: uc}
}

// ComputeAlerts godoc
// @Summary      Alertas de bajo stock de la empresa
// @Description  Cruza stock actual, umbral por producto y ventas de los
//               últimos 30 días; proyecta el día de quiebre y sugiere el
//               proveedor más barato. Ordenado por urgencia.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.LowStockAlertListResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/inventory/alerts [get]
func (h *AlertHandler) ComputeAlerts(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	out, err := h.uc.ComputeAlerts(c.Context(), companyID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
