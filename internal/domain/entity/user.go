package entity

import "time"

// Roles válidos para User (staff del back office).
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// User representa un usuario del back office.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, staff
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
