package production_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Produccion-api/internal/application/production"
	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
)

func newCatalogUC(s *memStore) *production.CatalogUseCase {
	return production.NewCatalogUseCase(s.materials, s.caps, s.labels, s.products)
}

func TestCreateRawMaterial_Defaults(t *testing.T) {
	s := newMemStore()
	uc := newCatalogUC(s)

	material, err := uc.CreateRawMaterial(context.Background(), production.CreateRawMaterialInput{
		ItemName: "Resina PET",
		ItemCode: "PET_RESIN",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.UnitKg, material.Unit, "unidad por defecto Kg")
	assert.True(t, material.CurrentStock.IsZero(), "el alta no trae stock; el stock entra por entradas")
	assert.True(t, material.IsActive)
}

func TestCreateRawMaterial_Validaciones(t *testing.T) {
	s := newMemStore()
	uc := newCatalogUC(s)
	ctx := context.Background()

	_, err := uc.CreateRawMaterial(ctx, production.CreateRawMaterialInput{ItemCode: "X"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.CreateRawMaterial(ctx, production.CreateRawMaterialInput{
		ItemName: "Resina", ItemCode: "X", Unit: "Litros",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "unidad desconocida")

	_, err = uc.CreateRawMaterial(ctx, production.CreateRawMaterialInput{
		ItemName: "Resina", ItemCode: "X", MinStockLevel: decimal.NewFromInt(-1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestCreateCap_ComboUnico(t *testing.T) {
	s := newMemStore()
	uc := newCatalogUC(s)
	ctx := context.Background()

	_, err := uc.CreateCap(ctx, entity.NeckNarrow, "28mm", "azul", decimal.NewFromInt(100), "", "lucia")
	require.NoError(t, err)

	_, err = uc.CreateCap(ctx, entity.NeckNarrow, "28mm", "azul", decimal.Zero, "", "lucia")
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	// Otro color sí es otro SKU.
	_, err = uc.CreateCap(ctx, entity.NeckNarrow, "28mm", "rojo", decimal.Zero, "", "lucia")
	assert.NoError(t, err)
}

func TestCreateCap_NeckTypeInvalido(t *testing.T) {
	s := newMemStore()
	uc := newCatalogUC(s)
	ctx := context.Background()

	_, err := uc.CreateCap(ctx, "medium", "28mm", "azul", decimal.Zero, "", "lucia")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Los valores canónicos llevan la palabra "neck", como en el CHECK de la
	// tabla caps; las formas cortas no son válidas.
	_, err = uc.CreateCap(ctx, "narrow", "28mm", "azul", decimal.Zero, "", "lucia")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.CreateCap(ctx, "wide", "28mm", "azul", decimal.Zero, "", "lucia")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	assert.Equal(t, "narrow neck", entity.NeckNarrow)
	assert.Equal(t, "wide neck", entity.NeckWide)
}

func TestCreateLabel_ComboUnico(t *testing.T) {
	s := newMemStore()
	uc := newCatalogUC(s)
	ctx := context.Background()

	_, err := uc.CreateLabel(ctx, "500ml", "Reva", decimal.NewFromInt(100), "", "lucia")
	require.NoError(t, err)

	_, err = uc.CreateLabel(ctx, "500ml", "Reva", decimal.Zero, "", "lucia")
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCreateProduct(t *testing.T) {
	s := newMemStore()
	uc := newCatalogUC(s)
	ctx := context.Background()

	product, err := uc.CreateProduct(ctx, "Reva", "500ml", 24)
	require.NoError(t, err)
	assert.True(t, product.Boxes.IsZero())

	_, err = uc.CreateProduct(ctx, "Reva", "500ml", 0)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestDiscreteStock_GestionManual(t *testing.T) {
	s := newMemStore()
	seedCap(s, "C1", 100)
	uc := production.NewDiscreteStockUseCase(s.caps, "cap")
	ctx := context.Background()

	newQty, err := uc.Increment(ctx, "C1", decimal.NewFromInt(50), "lucia")
	require.NoError(t, err)
	assert.True(t, newQty.Equal(decimal.NewFromInt(150)))

	newQty, err = uc.TryDecrement(ctx, "C1", decimal.NewFromInt(150), "lucia")
	require.NoError(t, err)
	assert.True(t, newQty.IsZero())

	_, err = uc.TryDecrement(ctx, "C1", decimal.NewFromInt(1), "lucia")
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	require.NoError(t, uc.SetAvailable(ctx, "C1", decimal.NewFromInt(75), "lucia"))
	assert.True(t, s.caps.available("C1").Equal(decimal.NewFromInt(75)))
}
