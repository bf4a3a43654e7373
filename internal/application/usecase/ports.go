package usecase

import (
	"context"

	"github.com/jhoicas/pos-api/internal/domain/repository"
)

// ConnRunner abre una conexión dedicada por operación, entrega repositorios atados a ella
// y la libera al terminar, haya error o no.
type ConnRunner interface {
	// RunRead ejecuta fn sin transacción explícita (solo lectura).
	RunRead(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		transactionRepo repository.TransactionRepository,
	) error) error
	// RunTx ejecuta fn dentro de una transacción: Commit si fn no falla, Rollback en cualquier otro caso.
	RunTx(ctx context.Context, fn func(transactionRepo repository.TransactionRepository) error) error
}
