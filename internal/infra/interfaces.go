package infra

import "context"

type CatalogClientInterface interface {
	FindProductsByIDs(ctx context.Context, ids []uint64) (map[uint64]ProductInfo, error)
}

var _ CatalogClientInterface = (*CatalogClient)(nil)
