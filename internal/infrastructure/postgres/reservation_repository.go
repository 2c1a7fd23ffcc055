package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/resto-pro/internal/domain/entity"
	"github.com/tu-usuario/resto-pro/internal/domain/repository"
)

var _ repository.ReservationRepository = (*ReservationRepo)(nil)

// ReservationRepo implementación de ReservationRepository sobre PostgreSQL.
type ReservationRepo struct {
	q Querier
}

// NewReservationRepository construye el adaptador de reservas.
func NewReservationRepository(q Querier) *ReservationRepo {
	return &ReservationRepo{q: q}
}

const reservationColumns = `id, COALESCE(customer_id, ''), table_id, contact_name, phone, reserved_at, party_size, status, note, created_at, updated_at`

// Create persiste una reserva.
func (r *ReservationRepo) Create(reservation *entity.Reservation) error {
	query := `
		INSERT INTO reservations (id, customer_id, table_id, contact_name, phone, reserved_at, party_size, status, note, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	customerID := (*string)(nil)
	if reservation.CustomerID != "" {
		customerID = &reservation.CustomerID
	}
	_, err := r.q.Exec(context.Background(), query,
		reservation.ID, customerID, reservation.TableID, reservation.ContactName,
		reservation.Phone, reservation.ReservedAt, reservation.PartySize,
		reservation.Status, reservation.Note, reservation.CreatedAt, reservation.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert reservation: %w", err)
	}
	return nil
}

// GetByID obtiene una reserva por ID.
func (r *ReservationRepo) GetByID(id string) (*entity.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`
	var res entity.Reservation
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&res.ID, &res.CustomerID, &res.TableID, &res.ContactName, &res.Phone,
		&res.ReservedAt, &res.PartySize, &res.Status, &res.Note, &res.CreatedAt, &res.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get reservation: %w", err)
	}
	return &res, nil
}

// Update actualiza los datos de la reserva.
func (r *ReservationRepo) Update(reservation *entity.Reservation) error {
	query := `
		UPDATE reservations
		SET table_id = $2, contact_name = $3, phone = $4, reserved_at = $5, party_size = $6, note = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		reservation.ID, reservation.TableID, reservation.ContactName, reservation.Phone,
		reservation.ReservedAt, reservation.PartySize, reservation.Note, reservation.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update reservation: %w", err)
	}
	return nil
}

// SetStatus cambia el estado de la reserva.
func (r *ReservationRepo) SetStatus(id, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE reservations SET status = $2, updated_at = now() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return fmt.Errorf("set reservation status: %w", err)
	}
	return nil
}

// List lista reservas filtrando por estado y rango de horario.
func (r *ReservationRepo) List(status string, from, to *time.Time, limit, offset int) ([]*entity.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE 1=1`
	args := []any{}
	n := 0
	if status != "" {
		n++
		query += fmt.Sprintf(" AND status = $%d", n)
		args = append(args, status)
	}
	if from != nil {
		n++
		query += fmt.Sprintf(" AND reserved_at >= $%d", n)
		args = append(args, *from)
	}
	if to != nil {
		n++
		query += fmt.Sprintf(" AND reserved_at < $%d", n)
		args = append(args, *to)
	}
	query += fmt.Sprintf(" ORDER BY reserved_at ASC LIMIT $%d OFFSET $%d", n+1, n+2)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Reservation
	for rows.Next() {
		var res entity.Reservation
		if err := rows.Scan(&res.ID, &res.CustomerID, &res.TableID, &res.ContactName, &res.Phone,
			&res.ReservedAt, &res.PartySize, &res.Status, &res.Note, &res.CreatedAt, &res.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		list = append(list, &res)
	}
	return list, rows.Err()
}

// CountActiveByTableWindow cuenta reservas no canceladas de la mesa cuyo
// horario cae dentro de la ventana dada.
func (r *ReservationRepo) CountActiveByTableWindow(tableID string, from, to time.Time) (int, error) {
	const query = `
		SELECT COUNT(*)
		FROM reservations
		WHERE table_id = $1
		  AND status <> 'cancelled'
		  AND reserved_at > $2
		  AND reserved_at < $3`
	var count int
	if err := r.q.QueryRow(context.Background(), query, tableID, from, to).Scan(&count); err != nil {
		return 0, fmt.Errorf("count reservations by table window: %w", err)
	}
	return count, nil
}

// Delete elimina una reserva por ID.
func (r *ReservationRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM reservations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete reservation: %w", err)
	}
	return nil
}
