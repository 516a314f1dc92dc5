package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Produccion-api/internal/domain/entity"
)

// RawMaterialRepository puerto de persistencia para materias primas.
// Dueño exclusivo del contador CurrentStock: toda mutación pasa por aquí.
type RawMaterialRepository interface {
	Create(material *entity.RawMaterial) error
	GetByID(id string) (*entity.RawMaterial, error)
	GetByCode(itemCode string) (*entity.RawMaterial, error)
	// GetForUpdate obtiene la materia prima bloqueando la fila (SELECT FOR UPDATE).
	GetForUpdate(id string) (*entity.RawMaterial, error)
	// GetByCodeForUpdate bloquea por itemCode (shrink roll en producción de botellas).
	GetByCodeForUpdate(itemCode string) (*entity.RawMaterial, error)
	UpdateStock(id string, newStock decimal.Decimal) error
	Update(material *entity.RawMaterial) error
	Deactivate(id string) error
	List(onlyActive bool) ([]*entity.RawMaterial, error)
	// ListLowStock devuelve materiales activos con stock en o bajo el punto de reorden.
	ListLowStock() ([]*entity.RawMaterial, error)
}
