package repository

import "github.com/jhoicas/Produccion-api/internal/domain/entity"

// BottleProductionRepository puerto para registros de corridas de botellas.
// Solo inserción y lectura; el registro es la evidencia de auditoría.
type BottleProductionRepository interface {
	Create(rec *entity.BottleProduction) error
	GetByID(id string) (*entity.BottleProduction, error)
	List(limit int) ([]*entity.BottleProduction, error)
}
