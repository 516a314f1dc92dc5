package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jhoicas/Produccion-api/internal/application/production"
	"github.com/jhoicas/Produccion-api/pkg/logger"
)

// Scheduler corre el vigilante de stock mínimo: revisa periódicamente qué
// materias primas están en o por debajo del punto de reorden y lo deja en el log.
type Scheduler struct {
	cron      *cron.Cron
	materials *production.RawMaterialUseCase
	spec      string
	log       *logger.Logger
}

// New construye el scheduler. spec es la expresión cron estándar de 5 campos.
func New(materials *production.RawMaterialUseCase, spec string, log *logger.Logger) *Scheduler {
	return &Scheduler{
		cron:      cron.New(),
		materials: materials,
		spec:      spec,
		log:       log,
	}
}

// Start agenda el vigilante y arranca el cron.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.spec, s.checkLowStock); err != nil {
		return err
	}
	s.cron.Start()
	s.log.Info().Str("cron", s.spec).Msg("vigilante de stock mínimo agendado")
	return nil
}

// Stop detiene el cron esperando los trabajos en vuelo.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.log.Info().Msg("scheduler detenido")
}

func (s *Scheduler) checkLowStock() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	low, err := s.materials.ListLowStock(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("revisión de stock mínimo")
		return
	}
	if len(low) == 0 {
		s.log.Debug().Msg("sin materiales bajo el punto de reorden")
		return
	}
	for _, m := range low {
		s.log.Warn().
			Str("item_code", m.ItemCode).
			Str("item_name", m.ItemName).
			Str("current_stock", m.CurrentStock.String()).
			Str("min_stock_level", m.MinStockLevel.String()).
			Msg("material bajo el punto de reorden")
	}
}
