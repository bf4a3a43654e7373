package entity

// Product representa un producto del maestro. Solo lectura para este servicio.
type Product struct {
	ID    int64
	Code  string // clave de negocio (código de barras / JAN)
	Name  string
	Price int64
}
