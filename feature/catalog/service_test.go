package catalog

import (
	"context"
	"testing"

	"catalog-manager/feature/catalog/query"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestService_Product(t *testing.T) {
	svc := NewService(&stubSource{text: testFeed}, zap.NewNop())

	rec, err := svc.Product(context.Background(), 2)
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "Jacket B", rec.ProductName)

	// Mutating the returned record must not touch the cached collection.
	rec.ProductName = "changed"
	again, err := svc.Product(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Jacket B", again.ProductName)

	missing, err := svc.Product(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestService_ProductsReturnsFreshSlice(t *testing.T) {
	svc := NewService(&stubSource{text: testFeed}, zap.NewNop())

	first, err := svc.Products(context.Background(), query.Spec{Sort: query.SortPrice})
	require.NoError(t, err)
	second, err := svc.Products(context.Background(), query.Spec{Sort: query.SortDefault})
	require.NoError(t, err)

	// Each query computes its own ordering over the shared cache.
	assert.Equal(t, 2, first[0].ID)
	assert.Equal(t, 1, second[0].ID)
}
