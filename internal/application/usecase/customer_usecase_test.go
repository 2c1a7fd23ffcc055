package usecase_test

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/resto-pro/internal/application/usecase"
	"github.com/tu-usuario/resto-pro/internal/domain"
	"github.com/tu-usuario/resto-pro/internal/domain/entity"
)

// Fake de clientes. Como el repositorio SQL, ordena del más reciente al más
// antiguo y con limit <= 0 devuelve todo.
type fakeCustomerRepo struct {
	customers map[string]*entity.Customer
}

func newFakeCustomerRepo(cs ...*entity.Customer) *fakeCustomerRepo {
	r := &fakeCustomerRepo{customers: make(map[string]*entity.Customer)}
	for _, c := range cs {
		cp := *c
		r.customers[c.ID] = &cp
	}
	return r
}

func (r *fakeCustomerRepo) Create(c *entity.Customer) error {
	cp := *c
	r.customers[c.ID] = &cp
	return nil
}

func (r *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCustomerRepo) FindByEmail(email string) (*entity.Customer, error) {
	for _, c := range r.customers {
		if c.Email == email {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCustomerRepo) Update(c *entity.Customer) error {
	cp := *c
	r.customers[c.ID] = &cp
	return nil
}

func (r *fakeCustomerRepo) List(limit, offset int) ([]*entity.Customer, error) {
	var out []*entity.Customer
	for _, c := range r.customers {
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeCustomerRepo) Delete(id string) error {
	delete(r.customers, id)
	return nil
}

func cliente(id, name, email string, daysAgo int) *entity.Customer {
	return &entity.Customer{
		ID:        id,
		Name:      name,
		Email:     email,
		IsActive:  true,
		CreatedAt: time.Now().Add(-time.Duration(daysAgo) * 24 * time.Hour),
	}
}

func buildCustomerUC() *usecase.CustomerUseCase {
	repo := newFakeCustomerRepo(
		cliente("c1", "María Pérez", "maria@example.com", 1),
		cliente("c2", "Martín Gómez", "martin@example.com", 2),
		cliente("c3", "Sofía Núñez", "sofia@example.com", 3),
		cliente("c4", "Mario López", "mario.l@example.com", 4),
	)
	return usecase.NewCustomerUseCase(repo)
}

func TestListCustomers_BusquedaFiltraAntesDePaginar(t *testing.T) {
	uc := buildCustomerUC()

	// Tres coincidencias para "mar"; a dos por página la segunda no queda vacía.
	page1, err := uc.List("mar", 2, 0)
	require.NoError(t, err)
	require.Len(t, page1, 2)
	assert.Equal(t, "María Pérez", page1[0].Name)
	assert.Equal(t, "Martín Gómez", page1[1].Name)

	page2, err := uc.List("mar", 2, 2)
	require.NoError(t, err)
	require.Len(t, page2, 1)
	assert.Equal(t, "Mario López", page2[0].Name)
}

func TestListCustomers_BusquedaPorEmailSinTildes(t *testing.T) {
	uc := buildCustomerUC()

	list, err := uc.List("sofia", 10, 0)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Sofía Núñez", list[0].Name)
}

func TestGetCustomer_Inexistente(t *testing.T) {
	uc := usecase.NewCustomerUseCase(newFakeCustomerRepo())

	_, err := uc.GetByID("fantasma")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
