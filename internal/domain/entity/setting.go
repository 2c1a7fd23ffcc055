package entity

import "time"

// Setting es un par clave/valor de configuración del negocio
// (nombre, horario, teléfono...). IsPublic controla si el storefront lo ve.
type Setting struct {
	Key       string
	Value     string
	IsPublic  bool
	UpdatedAt time.Time
}
