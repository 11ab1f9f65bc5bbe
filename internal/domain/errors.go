package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrSourceMissing    = errors.New("fuente de datos obligatoria no encontrada")
	ErrUnreadableSource = errors.New("fuente de datos ilegible")
)
