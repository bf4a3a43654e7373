package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
)

// MsgTransactionCreated mensaje devuelto al registrar una venta.
const MsgTransactionCreated = "transacción registrada correctamente"

// TransactionUseCase lee y registra ventas (cabecera + detalles).
type TransactionUseCase struct {
	runner ConnRunner
}

// NewTransactionUseCase construye el caso de uso.
func NewTransactionUseCase(runner ConnRunner) *TransactionUseCase {
	return &TransactionUseCase{runner: runner}
}

// GetByID devuelve la cabecera y sus detalles. Si la cabecera no existe no se consultan detalles.
func (uc *TransactionUseCase) GetByID(ctx context.Context, id int64) (*dto.TransactionWithDetailsResponse, error) {
	var header *entity.TransactionHeader
	var details []*entity.TransactionDetail
	err := uc.runner.RunRead(ctx, func(_ repository.ProductRepository, transactionRepo repository.TransactionRepository) error {
		var err error
		header, err = transactionRepo.GetByID(ctx, id)
		if err != nil || header == nil {
			return err
		}
		details, err = transactionRepo.GetDetailsByTransactionID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	if header == nil {
		return nil, domain.ErrNotFound
	}

	out := &dto.TransactionWithDetailsResponse{
		Transaction: dto.TransactionResponse{
			TrdID:    header.ID,
			Datetime: header.Datetime,
			EmpCD:    header.EmpCD,
			StoreCD:  header.StoreCD,
			PosNo:    header.PosNo,
			TotalAmt: header.TotalAmt,
		},
		Details: make([]dto.TransactionDetailResponse, 0, len(details)),
	}
	for _, d := range details {
		out.Details = append(out.Details, dto.TransactionDetailResponse{
			TrdID:    d.TransactionID,
			DtlID:    d.ID,
			PrdID:    d.ProductID,
			PrdCode:  d.ProductCode,
			PrdName:  d.ProductName,
			PrdPrice: d.ProductPrice,
		})
	}
	return out, nil
}

// Create registra la cabecera y, en orden, cada línea de detalle dentro de una sola transacción.
// Si cualquier inserción falla no queda nada persistido.
func (uc *TransactionUseCase) Create(ctx context.Context, in dto.CreateTransactionRequest) (*dto.CreateTransactionResponse, error) {
	header, details, err := fromCreateRequest(in)
	if err != nil {
		return nil, err
	}

	err = uc.runner.RunTx(ctx, func(transactionRepo repository.TransactionRepository) error {
		if err := transactionRepo.Create(ctx, header); err != nil {
			return err
		}
		for i, d := range details {
			d.TransactionID = header.ID
			if err := transactionRepo.CreateDetail(ctx, d); err != nil {
				return fmt.Errorf("detalle %d: %w", i, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.CreateTransactionResponse{
		Message:       MsgTransactionCreated,
		TransactionID: header.ID,
	}, nil
}

func fromCreateRequest(in dto.CreateTransactionRequest) (*entity.TransactionHeader, []*entity.TransactionDetail, error) {
	if in.EmpCD == nil || in.StoreCD == nil || in.PosNo == nil || in.TotalAmt == nil || in.Details == nil {
		return nil, nil, domain.ErrInvalidInput
	}
	header := &entity.TransactionHeader{
		EmpCD:    *in.EmpCD,
		StoreCD:  *in.StoreCD,
		PosNo:    *in.PosNo,
		TotalAmt: *in.TotalAmt,
	}
	details := make([]*entity.TransactionDetail, 0, len(in.Details))
	for _, d := range in.Details {
		if d.PrdID == nil || d.PrdCode == nil || d.PrdName == nil || d.PrdPrice == nil {
			return nil, nil, domain.ErrInvalidInput
		}
		details = append(details, &entity.TransactionDetail{
			ProductID:    *d.PrdID,
			ProductCode:  *d.PrdCode,
			ProductName:  *d.PrdName,
			ProductPrice: *d.PrdPrice,
		})
	}
	return header, details, nil
}
