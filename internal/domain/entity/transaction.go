package entity

import "time"

// TransactionHeader representa la cabecera de una venta en caja.
// ID y Datetime los asigna la base de datos al insertar.
type TransactionHeader struct {
	ID       int64
	Datetime time.Time
	EmpCD    string
	StoreCD  string
	PosNo    string
	TotalAmt int64
}

// TransactionDetail representa una línea de la venta.
// Nombre y precio son una foto del producto al momento de vender, no una referencia viva.
type TransactionDetail struct {
	TransactionID int64
	ID            int64
	ProductID     int64
	ProductCode   string
	ProductName   string
	ProductPrice  int64
}
