package repository

import "github.com/jhoicas/Produccion-api/internal/domain/entity"

// RawMaterialEntryRepository puerto para el libro de auditoría de materia prima.
// Solo inserción y lectura; las entradas nunca se mutan.
type RawMaterialEntryRepository interface {
	Create(entry *entity.RawMaterialEntry) error
	ListByMaterial(materialID string, limit int) ([]*entity.RawMaterialEntry, error)
}
