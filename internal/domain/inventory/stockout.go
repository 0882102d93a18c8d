package inventory

import "math"

// AlertWindowDays es la ventana fija de ventas para el motor de alertas.
// Supuesto documentado de v1, no configurable.
const AlertWindowDays = 30

// DailyUsage calcula el consumo diario promedio sobre una ventana de días.
// Devuelve 0 si la ventana es inválida.
func DailyUsage(unitsSold int64, windowDays int) float64 {
	if windowDays <= 0 {
		return 0
	}
	return float64(unitsSold) / float64(windowDays)
}

// DaysUntilStockout proyecta en cuántos días se agota el stock al ritmo de
// consumo dado: floor(quantity / dailyUsage). Devuelve nil cuando el consumo
// es 0 (nunca se divide por cero).
func DaysUntilStockout(quantity int64, dailyUsage float64) *int64 {
	if dailyUsage <= 0 {
		return nil
	}
	days := int64(math.Floor(float64(quantity) / dailyUsage))
	return &days
}
