package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementación de TransactionRepository (usable con conexión o tx).
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador. Pasar conexión o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

// Create persiste la cabecera. La fecha la pone el servidor (now()) y el ID lo genera la secuencia.
func (r *TransactionRepo) Create(ctx context.Context, h *entity.TransactionHeader) error {
	const query = `
		INSERT INTO transactions (datetime, emp_cd, store_cd, pos_no, total_amt)
		VALUES (now(), $1, $2, $3, $4)
		RETURNING trd_id, datetime`
	err := r.q.QueryRow(ctx, query, h.EmpCD, h.StoreCD, h.PosNo, h.TotalAmt).Scan(&h.ID, &h.Datetime)
	if err != nil {
		return describe("insert transaction", err)
	}
	return nil
}

// CreateDetail persiste una línea de detalle y completa su ID.
func (r *TransactionRepo) CreateDetail(ctx context.Context, d *entity.TransactionDetail) error {
	const query = `
		INSERT INTO transaction_details (trd_id, prd_id, prd_code, prd_name, prd_price)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING dtl_id`
	err := r.q.QueryRow(ctx, query,
		d.TransactionID, d.ProductID, d.ProductCode, d.ProductName, d.ProductPrice,
	).Scan(&d.ID)
	if err != nil {
		return describe("insert transaction detail", err)
	}
	return nil
}

// GetByID obtiene la cabecera por ID.
func (r *TransactionRepo) GetByID(ctx context.Context, id int64) (*entity.TransactionHeader, error) {
	const query = `
		SELECT trd_id, datetime, emp_cd, store_cd, pos_no, total_amt
		FROM transactions WHERE trd_id = $1`
	var h entity.TransactionHeader
	err := r.q.QueryRow(ctx, query, id).Scan(&h.ID, &h.Datetime, &h.EmpCD, &h.StoreCD, &h.PosNo, &h.TotalAmt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, describe("get transaction", err)
	}
	return &h, nil
}

// GetDetailsByTransactionID obtiene las líneas en orden de inserción.
func (r *TransactionRepo) GetDetailsByTransactionID(ctx context.Context, transactionID int64) ([]*entity.TransactionDetail, error) {
	const query = `
		SELECT trd_id, dtl_id, prd_id, prd_code, prd_name, prd_price
		FROM transaction_details WHERE trd_id = $1 ORDER BY dtl_id`
	rows, err := r.q.Query(ctx, query, transactionID)
	if err != nil {
		return nil, describe("list transaction details", err)
	}
	defer rows.Close()
	var list []*entity.TransactionDetail
	for rows.Next() {
		var d entity.TransactionDetail
		if err := rows.Scan(&d.TransactionID, &d.ID, &d.ProductID, &d.ProductCode, &d.ProductName, &d.ProductPrice); err != nil {
			return nil, fmt.Errorf("scan detail: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}
