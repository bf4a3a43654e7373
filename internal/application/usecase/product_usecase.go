package usecase

import (
	"context"

	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
)

// ProductUseCase consulta el maestro de productos.
type ProductUseCase struct {
	runner ConnRunner
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(runner ConnRunner) *ProductUseCase {
	return &ProductUseCase{runner: runner}
}

// GetByCode busca un producto por su código exacto. Devuelve domain.ErrNotFound si no existe.
func (uc *ProductUseCase) GetByCode(ctx context.Context, code string) (*dto.ProductResponse, error) {
	var product *entity.Product
	err := uc.runner.RunRead(ctx, func(productRepo repository.ProductRepository, _ repository.TransactionRepository) error {
		var err error
		product, err = productRepo.GetByCode(ctx, code)
		return err
	})
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		PrdID: p.ID,
		Code:  p.Code,
		Name:  p.Name,
		Price: p.Price,
	}
}
