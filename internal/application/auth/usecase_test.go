package auth_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/resto-pro/internal/application/auth"
	"github.com/tu-usuario/resto-pro/internal/application/dto"
	"github.com/tu-usuario/resto-pro/internal/domain"
	"github.com/tu-usuario/resto-pro/internal/domain/entity"
	pkgjwt "github.com/tu-usuario/resto-pro/pkg/jwt"
)

const testSecret = "auth-test-secret"

type fakeUserRepo struct {
	users map[string]*entity.User // por email
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	cp := *u
	r.users[u.Email] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

type fakeCustomerRepo struct {
	customers map[string]*entity.Customer // por email
}

func (r *fakeCustomerRepo) Create(c *entity.Customer) error {
	cp := *c
	r.customers[c.Email] = &cp
	return nil
}

func (r *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	for _, c := range r.customers {
		if c.ID == id {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCustomerRepo) FindByEmail(email string) (*entity.Customer, error) {
	c, ok := r.customers[email]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCustomerRepo) Update(c *entity.Customer) error {
	cp := *c
	r.customers[c.Email] = &cp
	return nil
}

func (r *fakeCustomerRepo) List(limit, offset int) ([]*entity.Customer, error) { return nil, nil }

func (r *fakeCustomerRepo) Delete(id string) error { return nil }

func buildAuthUC() (*auth.AuthUseCase, *fakeUserRepo, *fakeCustomerRepo) {
	userRepo := &fakeUserRepo{users: make(map[string]*entity.User)}
	customerRepo := &fakeCustomerRepo{customers: make(map[string]*entity.Customer)}
	uc := auth.NewAuthUseCase(userRepo, customerRepo, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "resto-pro-test",
	})
	return uc, userRepo, customerRepo
}

// ── Staff ─────────────────────────────────────────────────────────────────────

func TestRegisterUser_HasheaPasswordYAsignaRolPorDefecto(t *testing.T) {
	uc, userRepo, _ := buildAuthUC()

	resp, err := uc.RegisterUser(dto.RegisterUserRequest{
		Email:    "mesero@resto.test",
		Password: "secreto123",
		Name:     "Mesero Uno",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleStaff, resp.Role, "sin rol explícito se asigna staff")

	stored, _ := userRepo.FindByEmail("mesero@resto.test")
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreto123", stored.PasswordHash, "nunca se guarda el password en claro")
	assert.True(t, strings.HasPrefix(stored.PasswordHash, "$2"), "hash bcrypt")
}

func TestRegisterUser_EmailDuplicado(t *testing.T) {
	uc, _, _ := buildAuthUC()
	in := dto.RegisterUserRequest{Email: "admin@resto.test", Password: "secreto123", Name: "Admin"}

	_, err := uc.RegisterUser(in)
	require.NoError(t, err)

	_, err = uc.RegisterUser(in)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLoginAdmin_TokenConScopeAdminYRol(t *testing.T) {
	uc, _, _ := buildAuthUC()
	_, err := uc.RegisterUser(dto.RegisterUserRequest{
		Email: "admin@resto.test", Password: "secreto123", Name: "Admin", Role: entity.RoleAdmin,
	})
	require.NoError(t, err)

	resp, err := uc.LoginAdmin(dto.LoginRequest{Email: "admin@resto.test", Password: "secreto123"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	userID, role, scope, err := pkgjwt.Parse(testSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, userID)
	assert.Equal(t, entity.RoleAdmin, role)
	assert.Equal(t, pkgjwt.ScopeAdmin, scope)
}

func TestLoginAdmin_CredencialesIncorrectas(t *testing.T) {
	uc, _, _ := buildAuthUC()
	_, err := uc.RegisterUser(dto.RegisterUserRequest{
		Email: "admin@resto.test", Password: "secreto123", Name: "Admin",
	})
	require.NoError(t, err)

	_, err = uc.LoginAdmin(dto.LoginRequest{Email: "admin@resto.test", Password: "otro-password"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.LoginAdmin(dto.LoginRequest{Email: "nadie@resto.test", Password: "secreto123"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// ── Clientes ──────────────────────────────────────────────────────────────────

// El registro de cliente devuelve token listo para usar (scope customer, sin rol).
func TestRegisterCustomer_DevuelveTokenDeCliente(t *testing.T) {
	uc, _, _ := buildAuthUC()

	resp, err := uc.RegisterCustomer(dto.RegisterCustomerRequest{
		Name: "Laura", Email: "laura@mail.test", Password: "clave123",
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Customer)

	userID, role, scope, err := pkgjwt.Parse(testSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.Customer.ID, userID)
	assert.Empty(t, role, "los tokens de cliente no llevan rol")
	assert.Equal(t, pkgjwt.ScopeCustomer, scope)
}

func TestLoginCustomer_ClienteInactivo(t *testing.T) {
	uc, _, customerRepo := buildAuthUC()

	_, err := uc.RegisterCustomer(dto.RegisterCustomerRequest{
		Name: "Laura", Email: "laura@mail.test", Password: "clave123",
	})
	require.NoError(t, err)

	stored, _ := customerRepo.FindByEmail("laura@mail.test")
	stored.IsActive = false
	require.NoError(t, customerRepo.Update(stored))

	_, err = uc.LoginCustomer(dto.LoginRequest{Email: "laura@mail.test", Password: "clave123"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
