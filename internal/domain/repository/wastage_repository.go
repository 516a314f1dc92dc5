package repository

import (
	"time"

	"github.com/jhoicas/Produccion-api/internal/domain/entity"
)

// WastageFilter filtros del reporte de mermas. Campos vacíos no filtran.
type WastageFilter struct {
	Source string
	Type   string
	From   time.Time
	To     time.Time
}

// WastageRepository puerto para el libro de mermas.
type WastageRepository interface {
	Create(w *entity.Wastage) error
	GetByID(id string) (*entity.Wastage, error)
	// UpdateReuse persiste QuantityReused/QuantityScrapped/ReuseReference tras ApplyReuse.
	UpdateReuse(w *entity.Wastage) error
	List(filter WastageFilter) ([]*entity.Wastage, error)
}
