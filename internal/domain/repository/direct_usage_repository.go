package repository

import "github.com/jhoicas/Produccion-api/internal/domain/entity"

// DirectUsageRepository puerto para consumos directos de materia prima.
type DirectUsageRepository interface {
	Create(usage *entity.DirectUsage) error
	List(limit int) ([]*entity.DirectUsage, error)
}
