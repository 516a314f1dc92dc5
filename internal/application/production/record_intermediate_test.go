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
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

func newIntermediateUC(s *memStore) *production.RecordIntermediateUseCase {
	return production.NewRecordIntermediateUseCase(&fakeTxRunner{s: s}, s.lots)
}

func preformInput(materials ...production.MaterialLineInput) production.IntermediateInput {
	return production.IntermediateInput{
		GoodType:         entity.GoodTypePreform,
		OutcomeKey:       "9gm",
		Materials:        materials,
		QuantityProduced: decimal.NewFromInt(1000),
		WastageReusable:  decimal.NewFromInt(12),
		WastageScrap:     decimal.NewFromInt(3),
		Actor:            "lucia",
	}
}

func TestRecordIntermediate_CorridaDePreformas(t *testing.T) {
	s := newMemStore()
	seedMaterial(s, "M1", "Resina PET", "PET_RESIN", 500)
	seedMaterial(s, "M2", "Masterbatch", "MASTERBATCH", 50)
	uc := newIntermediateUC(s)

	lot, err := uc.Record(context.Background(), preformInput(
		production.MaterialLineInput{MaterialID: "M1", Quantity: decimal.NewFromInt(9)},
		production.MaterialLineInput{MaterialID: "M2", Quantity: decimal.NewFromInt(1)},
	))
	require.NoError(t, err)

	// Materia prima descontada.
	assert.True(t, s.materials.stock("M1").Equal(decimal.NewFromInt(491)))
	assert.True(t, s.materials.stock("M2").Equal(decimal.NewFromInt(49)))

	// Lote discreto con número del contador atómico.
	assert.Equal(t, int64(1), lot.LotNo)
	assert.Equal(t, "9gm", lot.OutcomeKey)
	assert.True(t, lot.ConsumedQty.IsZero())
	assert.True(t, lot.Available().Equal(decimal.NewFromInt(985)), "disponible = 1000 - 12 - 3")

	// Bitácora anexada y mermas en el libro.
	require.Len(t, s.logs.items, 1)
	assert.Equal(t, lot.ID, s.logs.items[0].LotID)
	wastages, err := s.wastages.List(repository.WastageFilter{})
	require.NoError(t, err)
	require.Len(t, wastages, 2)
	assert.Equal(t, entity.SourcePreform, wastages[0].Source)
}

func TestRecordIntermediate_NumerosDeLoteConsecutivos(t *testing.T) {
	s := newMemStore()
	seedMaterial(s, "M1", "Resina PET", "PET_RESIN", 500)
	uc := newIntermediateUC(s)
	ctx := context.Background()

	in := preformInput(production.MaterialLineInput{MaterialID: "M1", Quantity: decimal.NewFromInt(5)})
	first, err := uc.Record(ctx, in)
	require.NoError(t, err)
	second, err := uc.Record(ctx, in)
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.LotNo)
	assert.Equal(t, int64(2), second.LotNo)
}

func TestRecordIntermediate_FaltanteAbortaSinDescontarNada(t *testing.T) {
	s := newMemStore()
	seedMaterial(s, "M1", "Resina PET", "PET_RESIN", 500)
	seedMaterial(s, "M2", "Masterbatch", "MASTERBATCH", 2)
	uc := newIntermediateUC(s)

	// M2 es deficiente: la corrida completa debe abortar sin tocar M1.
	_, err := uc.Record(context.Background(), preformInput(
		production.MaterialLineInput{MaterialID: "M1", Quantity: decimal.NewFromInt(9)},
		production.MaterialLineInput{MaterialID: "M2", Quantity: decimal.NewFromInt(5)},
	))
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	var insufficient *domain.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, "Masterbatch", insufficient.Resource)
	assert.True(t, insufficient.Available.Equal(decimal.NewFromInt(2)))
	assert.True(t, insufficient.Required.Equal(decimal.NewFromInt(5)))

	assert.True(t, s.materials.stock("M1").Equal(decimal.NewFromInt(500)), "nada debe haberse descontado")
	assert.Empty(t, s.lots.items)
	assert.Empty(t, s.logs.items)
}

func TestRecordIntermediate_LineasRepetidasSeConsolidan(t *testing.T) {
	s := newMemStore()
	seedMaterial(s, "M1", "Resina PET", "PET_RESIN", 100)
	uc := newIntermediateUC(s)

	// Dos líneas del mismo material cuentan como su suma: 60 + 30 = 90.
	lot, err := uc.Record(context.Background(), preformInput(
		production.MaterialLineInput{MaterialID: "M1", Quantity: decimal.NewFromInt(60)},
		production.MaterialLineInput{MaterialID: "M1", Quantity: decimal.NewFromInt(30)},
	))
	require.NoError(t, err)

	assert.True(t, s.materials.stock("M1").Equal(decimal.NewFromInt(10)), "se descuenta el total consolidado")
	require.Len(t, lot.Materials, 1, "el lote guarda una sola línea por material")
	assert.True(t, lot.Materials[0].Quantity.Equal(decimal.NewFromInt(90)))
}

func TestRecordIntermediate_LineasRepetidasValidanContraLaSuma(t *testing.T) {
	s := newMemStore()
	seedMaterial(s, "M1", "Resina PET", "PET_RESIN", 100)
	uc := newIntermediateUC(s)

	// 60 + 60 = 120 > 100: el faltante debe detectarse sobre el total,
	// no línea por línea contra la misma foto del stock.
	_, err := uc.Record(context.Background(), preformInput(
		production.MaterialLineInput{MaterialID: "M1", Quantity: decimal.NewFromInt(60)},
		production.MaterialLineInput{MaterialID: "M1", Quantity: decimal.NewFromInt(60)},
	))
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	var insufficient *domain.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.True(t, insufficient.Available.Equal(decimal.NewFromInt(100)))
	assert.True(t, insufficient.Required.Equal(decimal.NewFromInt(120)))

	assert.True(t, s.materials.stock("M1").Equal(decimal.NewFromInt(100)), "el stock queda intacto")
	assert.Empty(t, s.lots.items)
	assert.Empty(t, s.logs.items)
}

func TestRecordIntermediate_TapasAbonanElPool(t *testing.T) {
	s := newMemStore()
	seedMaterial(s, "M1", "Polipropileno", "PP", 200)
	seedCap(s, "C1", 100)
	uc := newIntermediateUC(s)

	in := production.IntermediateInput{
		GoodType:         entity.GoodTypeCap,
		OutcomeKey:       "28mm-azul",
		CapID:            "C1",
		Materials:        []production.MaterialLineInput{{MaterialID: "M1", Quantity: decimal.NewFromInt(4)}},
		QuantityProduced: decimal.NewFromInt(5000),
		Actor:            "lucia",
	}
	_, err := uc.Record(context.Background(), in)
	require.NoError(t, err)

	assert.True(t, s.caps.available("C1").Equal(decimal.NewFromInt(5100)), "lo producido entra al pool del SKU")
}

func TestRecordIntermediate_Validaciones(t *testing.T) {
	s := newMemStore()
	seedMaterial(s, "M1", "Resina PET", "PET_RESIN", 500)
	uc := newIntermediateUC(s)
	ctx := context.Background()
	line := production.MaterialLineInput{MaterialID: "M1", Quantity: decimal.NewFromInt(5)}

	in := preformInput(line)
	in.GoodType = "bottle"
	_, err := uc.Record(ctx, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "botellas no se registran como bien intermedio")

	in = preformInput(line)
	in.OutcomeKey = "   "
	_, err = uc.Record(ctx, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = preformInput()
	_, err = uc.Record(ctx, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sin líneas de materia prima")

	in = preformInput(line)
	in.QuantityProduced = decimal.Zero
	_, err = uc.Record(ctx, in)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	in = production.IntermediateInput{
		GoodType:         entity.GoodTypeCap,
		OutcomeKey:       "28mm-azul",
		Materials:        []production.MaterialLineInput{line},
		QuantityProduced: decimal.NewFromInt(100),
		Actor:            "lucia",
	}
	_, err = uc.Record(ctx, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "producción de tapas exige el SKU destino")
}

func TestRecordIntermediate_OutcomeKeyNormalizado(t *testing.T) {
	s := newMemStore()
	seedMaterial(s, "M1", "Resina PET", "PET_RESIN", 500)
	uc := newIntermediateUC(s)
	ctx := context.Background()

	in := preformInput(production.MaterialLineInput{MaterialID: "M1", Quantity: decimal.NewFromInt(5)})
	in.OutcomeKey = "  9GM  "
	lot, err := uc.Record(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, "9gm", lot.OutcomeKey)

	// La consulta también normaliza: "9GM" y "9gm" son la misma identidad.
	available, err := uc.GetAvailable(ctx, entity.GoodTypePreform, "9GM")
	require.NoError(t, err)
	assert.True(t, available.Equal(decimal.NewFromInt(985)))
}
