package repository

import "github.com/jhoicas/Produccion-api/internal/domain/entity"

// LabelRepository puerto para el catálogo y pool de etiquetas.
type LabelRepository interface {
	DiscretePoolRepository
	Create(label *entity.Label) error
	GetByID(id string) (*entity.Label, error)
	List(onlyActive bool) ([]*entity.Label, error)
	Deactivate(id string) error
}
