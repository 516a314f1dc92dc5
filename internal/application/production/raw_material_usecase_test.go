package production_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Produccion-api/internal/application/production"
	"github.com/jhoicas/Produccion-api/internal/domain"
)

func newMaterialUC(s *memStore) *production.RawMaterialUseCase {
	return production.NewRawMaterialUseCase(&fakeTxRunner{s: s}, s.materials, s.entries)
}

func TestAddEntry_SumaStockYAudita(t *testing.T) {
	s := newMemStore()
	seedMaterial(s, "M1", "Resina PET", "PET_RESIN", 100)
	uc := newMaterialUC(s)

	entry, err := uc.AddEntry(context.Background(), "M1", decimal.NewFromInt(40), "recepción proveedor", "lucia")
	require.NoError(t, err)

	assert.True(t, s.materials.stock("M1").Equal(decimal.NewFromInt(140)))
	assert.True(t, entry.Quantity.Equal(decimal.NewFromInt(40)))
	assert.False(t, entry.Manual)
	require.Len(t, s.entries.items, 1)
}

func TestAddEntry_MaterialInexistente(t *testing.T) {
	s := newMemStore()
	uc := newMaterialUC(s)

	_, err := uc.AddEntry(context.Background(), "NOEXISTE", decimal.NewFromInt(10), "", "lucia")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, s.entries.items, "no debe quedar asiento de auditoría")
}

func TestAddEntry_CantidadInvalida(t *testing.T) {
	s := newMemStore()
	seedMaterial(s, "M1", "Resina PET", "PET_RESIN", 100)
	uc := newMaterialUC(s)

	_, err := uc.AddEntry(context.Background(), "M1", decimal.Zero, "", "lucia")
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = uc.AddEntry(context.Background(), "M1", decimal.NewFromInt(-5), "", "lucia")
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestAdjust_Modos(t *testing.T) {
	ctx := context.Background()

	t.Run("add suma y deja delta positivo", func(t *testing.T) {
		s := newMemStore()
		seedMaterial(s, "M1", "Resina PET", "PET_RESIN", 100)
		uc := newMaterialUC(s)

		updated, err := uc.Adjust(ctx, "M1", production.AdjustAdd, decimal.NewFromInt(20), "conteo físico", "lucia")
		require.NoError(t, err)
		assert.True(t, updated.CurrentStock.Equal(decimal.NewFromInt(120)))

		require.Len(t, s.entries.items, 1)
		assert.True(t, s.entries.items[0].Manual)
		assert.True(t, s.entries.items[0].Quantity.Equal(decimal.NewFromInt(20)))
	})

	t.Run("reduce resta y deja delta negativo", func(t *testing.T) {
		s := newMemStore()
		seedMaterial(s, "M1", "Resina PET", "PET_RESIN", 100)
		uc := newMaterialUC(s)

		updated, err := uc.Adjust(ctx, "M1", production.AdjustReduce, decimal.NewFromInt(30), "derrame", "lucia")
		require.NoError(t, err)
		assert.True(t, updated.CurrentStock.Equal(decimal.NewFromInt(70)))
		assert.True(t, s.entries.items[0].Quantity.Equal(decimal.NewFromInt(-30)))
	})

	t.Run("set fija y registra el delta", func(t *testing.T) {
		s := newMemStore()
		seedMaterial(s, "M1", "Resina PET", "PET_RESIN", 100)
		uc := newMaterialUC(s)

		updated, err := uc.Adjust(ctx, "M1", production.AdjustSet, decimal.NewFromInt(85), "conteo físico", "lucia")
		require.NoError(t, err)
		assert.True(t, updated.CurrentStock.Equal(decimal.NewFromInt(85)))
		assert.True(t, s.entries.items[0].Quantity.Equal(decimal.NewFromInt(-15)), "set registra el delta con signo")
	})
}

func TestAdjust_NoDejaStockNegativo(t *testing.T) {
	s := newMemStore()
	seedMaterial(s, "M1", "Resina PET", "PET_RESIN", 100)
	uc := newMaterialUC(s)

	_, err := uc.Adjust(context.Background(), "M1", production.AdjustReduce, decimal.NewFromInt(150), "error", "lucia")
	assert.ErrorIs(t, err, domain.ErrInvalidAdjustment)
	assert.True(t, s.materials.stock("M1").Equal(decimal.NewFromInt(100)), "el stock no debe cambiar")
	assert.Empty(t, s.entries.items)
}

func TestAdjust_ModoDesconocido(t *testing.T) {
	s := newMemStore()
	seedMaterial(s, "M1", "Resina PET", "PET_RESIN", 100)
	uc := newMaterialUC(s)

	_, err := uc.Adjust(context.Background(), "M1", "multiply", decimal.NewFromInt(2), "", "lucia")
	assert.ErrorIs(t, err, domain.ErrInvalidAdjustment)
}

func TestRecordDirectUsage_DescuentaYDejaRegistro(t *testing.T) {
	s := newMemStore()
	seedMaterial(s, "M1", "Alcohol industrial", "ALCOHOL", 50)
	uc := newMaterialUC(s)

	usage, err := uc.RecordDirectUsage(context.Background(), "M1", decimal.NewFromInt(5), "limpieza de molde", "", "lucia")
	require.NoError(t, err)

	assert.True(t, s.materials.stock("M1").Equal(decimal.NewFromInt(45)))
	assert.Equal(t, "limpieza de molde", usage.Purpose)
	require.Len(t, s.usages.items, 1)

	// El asiento de auditoría registra la salida con signo negativo.
	require.Len(t, s.entries.items, 1)
	assert.True(t, s.entries.items[0].Quantity.Equal(decimal.NewFromInt(-5)))
}

func TestRecordDirectUsage_FaltanteNoMutaNada(t *testing.T) {
	s := newMemStore()
	seedMaterial(s, "M1", "Alcohol industrial", "ALCOHOL", 3)
	uc := newMaterialUC(s)

	_, err := uc.RecordDirectUsage(context.Background(), "M1", decimal.NewFromInt(10), "limpieza", "", "lucia")
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.True(t, s.materials.stock("M1").Equal(decimal.NewFromInt(3)))
	assert.Empty(t, s.usages.items)
	assert.Empty(t, s.entries.items)
}

func TestRecordDirectUsage_PropositoObligatorio(t *testing.T) {
	s := newMemStore()
	seedMaterial(s, "M1", "Alcohol industrial", "ALCOHOL", 50)
	uc := newMaterialUC(s)

	_, err := uc.RecordDirectUsage(context.Background(), "M1", decimal.NewFromInt(5), "", "", "lucia")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
