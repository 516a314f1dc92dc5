package production

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

// CatalogUseCase CRUD de catálogos: materias primas, tapas, etiquetas y productos.
// Nada aquí mueve stock de producción; solo identidad y baja lógica.
type CatalogUseCase struct {
	materials repository.RawMaterialRepository
	caps      repository.CapRepository
	labels    repository.LabelRepository
	products  repository.ProductRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(
	materials repository.RawMaterialRepository,
	caps repository.CapRepository,
	labels repository.LabelRepository,
	products repository.ProductRepository,
) *CatalogUseCase {
	return &CatalogUseCase{materials: materials, caps: caps, labels: labels, products: products}
}

// CreateRawMaterialInput alta de materia prima.
type CreateRawMaterialInput struct {
	ItemName      string
	ItemCode      string
	Subcategory   string
	Unit          string
	Supplier      string
	MinStockLevel decimal.Decimal
	Remarks       string
}

// CreateRawMaterial da de alta una materia prima con stock cero.
func (uc *CatalogUseCase) CreateRawMaterial(ctx context.Context, input CreateRawMaterialInput) (*entity.RawMaterial, error) {
	if input.ItemName == "" || input.ItemCode == "" {
		return nil, domain.ErrInvalidInput
	}
	switch input.Unit {
	case entity.UnitKg, entity.UnitGm, entity.UnitNos:
	case "":
		input.Unit = entity.UnitKg
	default:
		return nil, domain.ErrInvalidInput
	}
	if input.MinStockLevel.IsNegative() {
		return nil, domain.ErrInvalidQuantity
	}
	material := &entity.RawMaterial{
		ID:            uuid.New().String(),
		ItemName:      input.ItemName,
		ItemCode:      input.ItemCode,
		Subcategory:   input.Subcategory,
		Unit:          input.Unit,
		Supplier:      input.Supplier,
		MinStockLevel: input.MinStockLevel,
		CurrentStock:  decimal.Zero,
		Remarks:       input.Remarks,
		IsActive:      true,
		CreatedAt:     time.Now(),
	}
	if err := uc.materials.Create(material); err != nil {
		return nil, err
	}
	return material, nil
}

// UpdateRawMaterial actualiza datos de catálogo (no stock).
func (uc *CatalogUseCase) UpdateRawMaterial(ctx context.Context, material *entity.RawMaterial) error {
	if material == nil || material.ID == "" {
		return domain.ErrInvalidInput
	}
	existing, err := uc.materials.GetByID(material.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	return uc.materials.Update(material)
}

// DeactivateRawMaterial baja lógica; las materias primas nunca se borran.
func (uc *CatalogUseCase) DeactivateRawMaterial(ctx context.Context, id string) error {
	return uc.materials.Deactivate(id)
}

// ListRawMaterials lista el catálogo con stock vigente.
func (uc *CatalogUseCase) ListRawMaterials(ctx context.Context, onlyActive bool) ([]*entity.RawMaterial, error) {
	return uc.materials.List(onlyActive)
}

// CreateCap da de alta un SKU de tapa. La combinación (neckType, size, color)
// es única; el duplicado sube como ErrDuplicate.
func (uc *CatalogUseCase) CreateCap(ctx context.Context, neckType, size, color string, initialQty decimal.Decimal, remarks, actor string) (*entity.Cap, error) {
	if size == "" || color == "" {
		return nil, domain.ErrInvalidInput
	}
	if neckType != entity.NeckNarrow && neckType != entity.NeckWide {
		return nil, domain.ErrInvalidInput
	}
	if initialQty.IsNegative() {
		return nil, domain.ErrInvalidQuantity
	}
	now := time.Now()
	cap := &entity.Cap{
		ID:                uuid.New().String(),
		NeckType:          neckType,
		Size:              size,
		Color:             color,
		QuantityAvailable: initialQty,
		Remarks:           remarks,
		IsActive:          true,
		CreatedBy:         actor,
		LastUpdatedBy:     actor,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.caps.Create(cap); err != nil {
		return nil, err
	}
	return cap, nil
}

// CreateLabel da de alta un SKU de etiqueta; (bottleCategory, bottleName) es único.
func (uc *CatalogUseCase) CreateLabel(ctx context.Context, bottleCategory, bottleName string, initialQty decimal.Decimal, remarks, actor string) (*entity.Label, error) {
	if bottleCategory == "" || bottleName == "" {
		return nil, domain.ErrInvalidInput
	}
	if initialQty.IsNegative() {
		return nil, domain.ErrInvalidQuantity
	}
	now := time.Now()
	label := &entity.Label{
		ID:                uuid.New().String(),
		BottleCategory:    bottleCategory,
		BottleName:        bottleName,
		QuantityAvailable: initialQty,
		Remarks:           remarks,
		IsActive:          true,
		CreatedBy:         actor,
		LastUpdatedBy:     actor,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.labels.Create(label); err != nil {
		return nil, err
	}
	return label, nil
}

// DeactivateCap baja lógica del SKU de tapa.
func (uc *CatalogUseCase) DeactivateCap(ctx context.Context, id string) error {
	return uc.caps.Deactivate(id)
}

// DeactivateLabel baja lógica del SKU de etiqueta.
func (uc *CatalogUseCase) DeactivateLabel(ctx context.Context, id string) error {
	return uc.labels.Deactivate(id)
}

// ListCaps lista SKUs de tapa.
func (uc *CatalogUseCase) ListCaps(ctx context.Context, onlyActive bool) ([]*entity.Cap, error) {
	return uc.caps.List(onlyActive)
}

// ListLabels lista SKUs de etiqueta.
func (uc *CatalogUseCase) ListLabels(ctx context.Context, onlyActive bool) ([]*entity.Label, error) {
	return uc.labels.List(onlyActive)
}

// CreateProduct da de alta una categoría de botella con stock cero en cajas.
func (uc *CatalogUseCase) CreateProduct(ctx context.Context, name, category string, bottlesPerBox int) (*entity.Product, error) {
	if name == "" || category == "" {
		return nil, domain.ErrInvalidInput
	}
	if bottlesPerBox <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	now := time.Now()
	product := &entity.Product{
		ID:            uuid.New().String(),
		Name:          name,
		Category:      category,
		BottlesPerBox: bottlesPerBox,
		Boxes:         decimal.Zero,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.products.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// ListProducts lista categorías de botella (producto terminado).
func (uc *CatalogUseCase) ListProducts(ctx context.Context, onlyActive bool) ([]*entity.Product, error) {
	return uc.products.List(onlyActive)
}
