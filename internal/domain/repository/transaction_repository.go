package repository

import (
	"context"

	"github.com/jhoicas/pos-api/internal/domain/entity"
)

// TransactionRepository define el puerto de persistencia para cabeceras y detalles de venta.
type TransactionRepository interface {
	// Create inserta la cabecera y completa ID y Datetime con los valores generados por la BD.
	Create(ctx context.Context, header *entity.TransactionHeader) error
	CreateDetail(ctx context.Context, detail *entity.TransactionDetail) error
	// GetByID devuelve nil, nil si no existe.
	GetByID(ctx context.Context, id int64) (*entity.TransactionHeader, error)
	// GetDetailsByTransactionID devuelve las líneas en orden de inserción.
	GetDetailsByTransactionID(ctx context.Context, transactionID int64) ([]*entity.TransactionDetail, error)
}
