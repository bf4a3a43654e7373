package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/pos-api/internal/application/usecase"
	"github.com/jhoicas/pos-api/internal/domain/repository"
)

var _ usecase.ConnRunner = (*Connector)(nil)

// RunRead abre una conexión, ejecuta fn con repos atados a ella y la cierra siempre.
func (c *Connector) RunRead(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	transactionRepo repository.TransactionRepository,
) error) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	conn, err := c.connect(ctx)
	if err != nil {
		return err
	}
	defer c.release(conn)

	return fn(NewProductRepository(conn), NewTransactionRepository(conn))
}

// RunTx abre una conexión, inicia una transacción, ejecuta fn y hace Commit o Rollback.
// La conexión se cierra en todos los caminos.
func (c *Connector) RunTx(ctx context.Context, fn func(transactionRepo repository.TransactionRepository) error) (err error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	conn, err := c.connect(ctx)
	if err != nil {
		return err
	}
	defer c.release(conn)

	tx, err := conn.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err == nil {
			return
		}
		rbCtx, rbCancel := context.WithTimeout(context.Background(), releaseTimeout)
		defer rbCancel()
		if rbErr := tx.Rollback(rbCtx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			err = errors.Join(err, fmt.Errorf("rollback: %w", rbErr))
		}
	}()

	if err = fn(NewTransactionRepository(tx)); err != nil {
		return err
	}
	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
