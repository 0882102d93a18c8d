package repository

import (
	"context"

	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
)

// AlertCandidate es el resultado crudo para el motor de alertas: un par
// (producto, bodega) de la empresa con umbral definido y su stock actual.
type AlertCandidate struct {
	ProductID     string
	ProductName   string
	SKU           string
	WarehouseID   string
	WarehouseName string
	Quantity      int64
	Threshold     int64
}

// StockRepository define el puerto para consultar/actualizar stock por
// producto+bodega. Las mutaciones se usan solo dentro de transacciones.
type StockRepository interface {
	Get(ctx context.Context, productID, warehouseID string) (*entity.Stock, error)
	// GetForUpdate bloquea la fila (SELECT FOR UPDATE) para serializar
	// ajustes concurrentes sobre el mismo par. Un par sin fila se
	// materializa en cantidad 0 dentro de la transacción antes de bloquear,
	// para que también el primer ajuste quede serializado.
	GetForUpdate(ctx context.Context, productID, warehouseID string) (*entity.Stock, error)
	Upsert(ctx context.Context, stock *entity.Stock) error
	ListByWarehouse(ctx context.Context, warehouseID string, limit, offset int) ([]*entity.Stock, error)

	// ListAlertCandidates devuelve los pares (producto no-bundle con umbral
	// no nulo, bodega) de la empresa con su cantidad actual.
	ListAlertCandidates(ctx context.Context, companyID string) ([]AlertCandidate, error)
}
