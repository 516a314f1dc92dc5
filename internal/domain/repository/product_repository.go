package repository

import "github.com/jhoicas/Produccion-api/internal/domain/entity"

// ProductRepository puerto para producto terminado (categorías de botella).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	List(onlyActive bool) ([]*entity.Product, error)
	// AddBoxes suma cajas al stock del producto y registra el movimiento en el
	// historial, dentro de la transacción en curso.
	AddBoxes(productID string, log *entity.ProductStockLog) error
}
