package entity

import "time"

// Estados de una reserva.
const (
	ReservationPending   = "pending"
	ReservationConfirmed = "confirmed"
	ReservationSeated    = "seated"
	ReservationCancelled = "cancelled"
)

// ValidReservationStatus indica si el estado pertenece al ciclo de vida de la reserva.
func ValidReservationStatus(s string) bool {
	switch s {
	case ReservationPending, ReservationConfirmed, ReservationSeated, ReservationCancelled:
		return true
	}
	return false
}

// Reservation es una reserva de mesa. CustomerID vacío = reserva telefónica
// capturada por staff (walk-in con nombre en ContactName).
type Reservation struct {
	ID          string
	CustomerID  string
	TableID     string
	ContactName string
	Phone       string
	ReservedAt  time.Time
	PartySize   int
	Status      string // pending, confirmed, seated, cancelled
	Note        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
