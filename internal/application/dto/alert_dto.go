package dto

// AlertSupplierDTO proveedor sugerido para reponer (puede faltar).
type AlertSupplierDTO struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

// LowStockAlertDTO una alerta de bajo stock para un par (producto, bodega).
// DaysUntilStockout nil significa consumo diario 0 (sin proyección).
type LowStockAlertDTO struct {
	ProductID        string            `json:"product_id"`
	ProductName      string            `json:"product_name"`
	SKU              string            `json:"sku"`
	WarehouseID      string            `json:"warehouse_id"`
	WarehouseName    string            `json:"warehouse_name"`
	CurrentStock     int64             `json:"current_stock"`
	Threshold        int64             `json:"threshold"`
	SalesLast30Days  int64             `json:"sales_last_30d"`
	DaysUntilStockout *int64           `json:"days_until_stockout"`
	Supplier         *AlertSupplierDTO `json:"supplier"`
}

// LowStockAlertListResponse respuesta de GET /api/inventory/alerts.
type LowStockAlertListResponse struct {
	Alerts      []LowStockAlertDTO `json:"alerts"`
	TotalAlerts int                `json:"total_alerts"`
}
