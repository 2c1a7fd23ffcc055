package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/resto-pro/internal/domain/entity"
	"github.com/tu-usuario/resto-pro/internal/domain/repository"
)

var _ repository.SettingRepository = (*SettingRepo)(nil)

// SettingRepo implementación de SettingRepository sobre PostgreSQL.
type SettingRepo struct {
	q Querier
}

// NewSettingRepository construye el adaptador de configuración clave/valor.
func NewSettingRepository(q Querier) *SettingRepo {
	return &SettingRepo{q: q}
}

// Get obtiene un setting por clave.
func (r *SettingRepo) Get(key string) (*entity.Setting, error) {
	const query = `SELECT key, value, is_public, updated_at FROM settings WHERE key = $1`
	var s entity.Setting
	err := r.q.QueryRow(context.Background(), query, key).Scan(&s.Key, &s.Value, &s.IsPublic, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get setting: %w", err)
	}
	return &s, nil
}

// Upsert inserta o reemplaza un setting.
func (r *SettingRepo) Upsert(setting *entity.Setting) error {
	const query = `
		INSERT INTO settings (key, value, is_public, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (key)
		DO UPDATE SET value = EXCLUDED.value, is_public = EXCLUDED.is_public, updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		setting.Key, setting.Value, setting.IsPublic, setting.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert setting: %w", err)
	}
	return nil
}

// List lista settings; onlyPublic restringe a los visibles sin autenticación.
func (r *SettingRepo) List(onlyPublic bool) ([]*entity.Setting, error) {
	query := `SELECT key, value, is_public, updated_at FROM settings`
	if onlyPublic {
		query += ` WHERE is_public = true`
	}
	query += ` ORDER BY key ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}
	defer rows.Close()
	var list []*entity.Setting
	for rows.Next() {
		var s entity.Setting
		if err := rows.Scan(&s.Key, &s.Value, &s.IsPublic, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan setting: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Delete elimina un setting por clave.
func (r *SettingRepo) Delete(key string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM settings WHERE key = $1`, key)
	if err != nil {
		return fmt.Errorf("delete setting: %w", err)
	}
	return nil
}
