package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	// ErrUnavailable indica que no se pudo abrir la conexión a la base de datos.
	ErrUnavailable = errors.New("base de datos no disponible")
)
