package repository

import "github.com/jhoicas/Produccion-api/internal/domain/entity"

// CapRepository puerto para el catálogo y pool de tapas.
type CapRepository interface {
	DiscretePoolRepository
	Create(cap *entity.Cap) error
	GetByID(id string) (*entity.Cap, error)
	List(onlyActive bool) ([]*entity.Cap, error)
	Deactivate(id string) error
}
