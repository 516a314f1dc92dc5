package repository

import "github.com/jhoicas/Produccion-api/internal/domain/entity"

// ProductionLogRepository puerto para la bitácora inmutable de producción intermedia.
type ProductionLogRepository interface {
	Create(log *entity.ProductionLog) error
	ListByKey(goodType, outcomeKey string) ([]*entity.ProductionLog, error)
}
