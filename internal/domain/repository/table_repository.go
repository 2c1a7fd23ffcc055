package repository

import (
	"time"

	"github.com/tu-usuario/resto-pro/internal/domain/entity"
)

// TableRepository define el puerto de persistencia para mesas.
type TableRepository interface {
	Create(table *entity.Table) error
	GetByID(id string) (*entity.Table, error)
	GetByNumber(number int) (*entity.Table, error)
	Update(table *entity.Table) error
	SetStatus(id, status string) error
	List() ([]*entity.Table, error)
	Delete(id string) error
}

// ReservationRepository define el puerto de persistencia para reservas.
type ReservationRepository interface {
	Create(reservation *entity.Reservation) error
	GetByID(id string) (*entity.Reservation, error)
	Update(reservation *entity.Reservation) error
	SetStatus(id, status string) error
	List(status string, from, to *time.Time, limit, offset int) ([]*entity.Reservation, error)
	// CountActiveByTableWindow cuenta reservas no canceladas de la mesa cuyo
	// horario cae dentro de la ventana dada (chequeo de solape).
	CountActiveByTableWindow(tableID string, from, to time.Time) (int, error)
	Delete(id string) error
}
