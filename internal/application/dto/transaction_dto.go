package dto

import "time"

// CreateTransactionRequest body para POST /transaction.
// Los punteros distinguen "ausente" de "valor cero"; todos los campos son obligatorios.
// Una lista de detalles vacía se acepta.
type CreateTransactionRequest struct {
	EmpCD    *string                    `json:"EMP_CD" validate:"required"`
	StoreCD  *string                    `json:"STORE_CD" validate:"required"`
	PosNo    *string                    `json:"POS_NO" validate:"required"`
	TotalAmt *int64                     `json:"TOTAL_AMT" validate:"required"`
	Details  []TransactionDetailRequest `json:"details" validate:"required,dive"`
}

// TransactionDetailRequest línea de la venta tal como la envía la caja.
type TransactionDetailRequest struct {
	PrdID    *int64  `json:"PRD_ID" validate:"required"`
	PrdCode  *string `json:"PRD_CODE" validate:"required"`
	PrdName  *string `json:"PRD_NAME" validate:"required"`
	PrdPrice *int64  `json:"PRD_PRICE" validate:"required"`
}

// CreateTransactionResponse respuesta de POST /transaction.
type CreateTransactionResponse struct {
	Message       string `json:"message"`
	TransactionID int64  `json:"transaction_id"`
}

// TransactionResponse cabecera de venta.
type TransactionResponse struct {
	TrdID    int64     `json:"TRD_ID"`
	Datetime time.Time `json:"DATETIME"`
	EmpCD    string    `json:"EMP_CD"`
	StoreCD  string    `json:"STORE_CD"`
	PosNo    string    `json:"POS_NO"`
	TotalAmt int64     `json:"TOTAL_AMT"`
}

// TransactionDetailResponse línea de detalle en la respuesta.
type TransactionDetailResponse struct {
	TrdID    int64  `json:"TRD_ID"`
	DtlID    int64  `json:"DTL_ID"`
	PrdID    int64  `json:"PRD_ID"`
	PrdCode  string `json:"PRD_CODE"`
	PrdName  string `json:"PRD_NAME"`
	PrdPrice int64  `json:"PRD_PRICE"`
}

// TransactionWithDetailsResponse respuesta de GET /transaction/:transaction_id.
type TransactionWithDetailsResponse struct {
	Transaction TransactionResponse         `json:"transaction"`
	Details     []TransactionDetailResponse `json:"details"`
}
