package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/resto-pro/internal/domain"
	"github.com/tu-usuario/resto-pro/internal/domain/entity"
	"github.com/tu-usuario/resto-pro/internal/domain/repository"
)

var _ repository.TableRepository = (*TableRepo)(nil)

// TableRepo implementación de TableRepository sobre PostgreSQL.
type TableRepo struct {
	q Querier
}

// NewTableRepository construye el adaptador de mesas.
func NewTableRepository(q Querier) *TableRepo {
	return &TableRepo{q: q}
}

const tableColumns = `id, number, capacity, status, created_at, updated_at`

// Create persiste una mesa. El número es único.
func (r *TableRepo) Create(table *entity.Table) error {
	query := `
		INSERT INTO tables (` + tableColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		table.ID, table.Number, table.Capacity, table.Status, table.CreatedAt, table.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert table: %w", err)
	}
	return nil
}

// GetByID obtiene una mesa por ID.
func (r *TableRepo) GetByID(id string) (*entity.Table, error) {
	query := `SELECT ` + tableColumns + ` FROM tables WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get table")
}

// GetByNumber obtiene una mesa por su número de salón.
func (r *TableRepo) GetByNumber(number int) (*entity.Table, error) {
	query := `SELECT ` + tableColumns + ` FROM tables WHERE number = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, number), "get table by number")
}

func (r *TableRepo) scanOne(row pgx.Row, op string) (*entity.Table, error) {
	var t entity.Table
	err := row.Scan(&t.ID, &t.Number, &t.Capacity, &t.Status, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &t, nil
}

// Update actualiza número y capacidad.
func (r *TableRepo) Update(table *entity.Table) error {
	query := `UPDATE tables SET number = $2, capacity = $3, updated_at = $4 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		table.ID, table.Number, table.Capacity, table.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update table: %w", err)
	}
	return nil
}

// SetStatus cambia el estado de la mesa.
func (r *TableRepo) SetStatus(id, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE tables SET status = $2, updated_at = now() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return fmt.Errorf("set table status: %w", err)
	}
	return nil
}

// List lista todas las mesas ordenadas por número.
func (r *TableRepo) List() ([]*entity.Table, error) {
	query := `SELECT ` + tableColumns + ` FROM tables ORDER BY number ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	defer rows.Close()
	var list []*entity.Table
	for rows.Next() {
		var t entity.Table
		if err := rows.Scan(&t.ID, &t.Number, &t.Capacity, &t.Status, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan table: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// Delete elimina una mesa por ID.
func (r *TableRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM tables WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete table: %w", err)
	}
	return nil
}
