package repository

import (
	"context"

	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
)

// BundleComponentRepository define el puerto para la composición de bundles.
type BundleComponentRepository interface {
	Add(ctx context.Context, component *entity.BundleComponent) error
	// ListComponents devuelve los componentes directos de un bundle.
	ListComponents(ctx context.Context, bundleID string) ([]*entity.BundleComponent, error)
}
