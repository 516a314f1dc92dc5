package production_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Produccion-api/internal/application/production"
)

func newAvailabilityUC(s *memStore) *production.AvailabilityUseCase {
	return production.NewAvailabilityUseCase(s.lots, s.caps, s.labels, s.materials,
		decimal.NewFromInt(50), shrinkCode)
}

func TestAvailabilityCheck_TodoSuficiente(t *testing.T) {
	s := newMemStore()
	seedBottleRun(s, 500, 300, 1000)
	uc := newAvailabilityUC(s)

	report, err := uc.Check(context.Background(), runInput())
	require.NoError(t, err)

	assert.True(t, report.TotalBottles.Equal(decimal.NewFromInt(240)))
	assert.True(t, report.CanProduce)

	assert.True(t, report.Preform.Available.Equal(decimal.NewFromInt(300)))
	assert.True(t, report.Preform.Sufficient)
	assert.True(t, report.Cap.Available.Equal(decimal.NewFromInt(500)))
	assert.True(t, report.Label.Available.Equal(decimal.NewFromInt(300)))
	assert.True(t, report.Shrink.Required.Equal(decimal.NewFromInt(500)))
	assert.True(t, report.Shrink.Sufficient)
	assert.False(t, report.Shrink.NotFound)
}

func TestAvailabilityCheck_ReportaFaltantes(t *testing.T) {
	s := newMemStore()
	seedBottleRun(s, 100, 300, 200) // tapas y shrink deficientes
	uc := newAvailabilityUC(s)

	report, err := uc.Check(context.Background(), runInput())
	require.NoError(t, err, "el chequeo reporta faltantes, no falla")

	assert.False(t, report.CanProduce)
	assert.False(t, report.Cap.Sufficient)
	assert.True(t, report.Cap.Shortage.Equal(decimal.NewFromInt(140)), "faltan 240-100 tapas")
	assert.False(t, report.Shrink.Sufficient)
	assert.True(t, report.Shrink.Shortage.Equal(decimal.NewFromInt(300)))
	assert.True(t, report.Preform.Sufficient, "cada recurso se reporta por separado")
}

func TestAvailabilityCheck_ShrinkInexistenteCuentaComoCero(t *testing.T) {
	s := newMemStore()
	seedPreformLot(s, "B1", 1, "9gm", 1, 500)
	seedCap(s, "C1", 500)
	seedLabel(s, "L1", 500)
	seedProduct(s, "P1", 24)
	uc := newAvailabilityUC(s)

	report, err := uc.Check(context.Background(), runInput())
	require.NoError(t, err)

	// Mismo diagnóstico que daría la corrida real (ErrNotFound): material sin
	// registrar, no un faltante de stock.
	assert.True(t, report.Shrink.NotFound)
	assert.True(t, report.Shrink.Available.IsZero())
	assert.False(t, report.Shrink.Sufficient)
	assert.False(t, report.CanProduce)
}

func TestAvailabilityCheck_NoMutaNada(t *testing.T) {
	s := newMemStore()
	seedBottleRun(s, 500, 300, 1000)
	uc := newAvailabilityUC(s)

	_, err := uc.Check(context.Background(), runInput())
	require.NoError(t, err)

	assert.True(t, s.lots.consumed("B1").IsZero())
	assert.True(t, s.caps.available("C1").Equal(decimal.NewFromInt(500)))
	assert.True(t, s.labels.available("L1").Equal(decimal.NewFromInt(300)))
	assert.True(t, s.materials.stock("SH1").Equal(decimal.NewFromInt(1000)))
}

func TestAvailabilityCheck_CoincideConLaCorrida(t *testing.T) {
	// El preview y el commit derivan el requerimiento con el mismo cálculo:
	// si el chequeo dice que alcanza, la corrida inmediata debe pasar.
	s := newMemStore()
	seedBottleRun(s, 240, 240, 500) // límites exactos
	availability := newAvailabilityUC(s)
	bottle := newBottleUC(s)
	ctx := context.Background()

	report, err := availability.Check(ctx, runInput())
	require.NoError(t, err)
	require.True(t, report.CanProduce)

	_, err = bottle.Record(ctx, runInput())
	assert.NoError(t, err)
}
