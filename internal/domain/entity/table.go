package entity

import "time"

// Estados de una mesa.
const (
	TableFree     = "free"
	TableOccupied = "occupied"
	TableReserved = "reserved"
)

// Table es una mesa física del restaurante.
type Table struct {
	ID        string
	Number    int
	Capacity  int
	Status    string // free, occupied, reserved
	CreatedAt time.Time
	UpdatedAt time.Time
}
