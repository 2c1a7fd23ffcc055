package inventory_test

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/resto-pro/internal/application/dto"
	appinv "github.com/tu-usuario/resto-pro/internal/application/inventory"
	"github.com/tu-usuario/resto-pro/internal/domain"
	"github.com/tu-usuario/resto-pro/internal/domain/entity"
	"github.com/tu-usuario/resto-pro/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria. El fakeTxRunner no simula aislamiento real; solo pasa los
// mismos repos al callback, que es suficiente para verificar la aritmética del
// saldo y el orden asiento -> saldo.
// ──────────────────────────────────────────────────────────────────────────────

type fakeMovementRepo struct {
	movements map[string]*entity.StockMovement
}

func newFakeMovementRepo() *fakeMovementRepo {
	return &fakeMovementRepo{movements: make(map[string]*entity.StockMovement)}
}

func (r *fakeMovementRepo) Create(m *entity.StockMovement) error {
	cp := *m
	r.movements[m.ID] = &cp
	return nil
}

func (r *fakeMovementRepo) GetByID(id string) (*entity.StockMovement, error) {
	m, ok := r.movements[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

// List replica la semántica del repositorio SQL: ventana [from, to), orden por
// fecha descendente y paginación con LIMIT/OFFSET.
func (r *fakeMovementRepo) List(ingredientID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range r.movements {
		if ingredientID != "" && m.IngredientID != ingredientID {
			continue
		}
		if from != nil && m.MovementDate.Before(*from) {
			continue
		}
		if to != nil && !m.MovementDate.Before(*to) {
			continue
		}
		cp := *m
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MovementDate.After(out[j].MovementDate) })
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeMovementRepo) Delete(id string) error {
	delete(r.movements, id)
	return nil
}

type fakeIngredientRepo struct {
	ingredients map[string]*entity.Ingredient
}

func newFakeIngredientRepo(ings ...*entity.Ingredient) *fakeIngredientRepo {
	r := &fakeIngredientRepo{ingredients: make(map[string]*entity.Ingredient)}
	for _, ing := range ings {
		cp := *ing
		r.ingredients[ing.ID] = &cp
	}
	return r
}

func (r *fakeIngredientRepo) Create(ing *entity.Ingredient) error {
	cp := *ing
	r.ingredients[ing.ID] = &cp
	return nil
}

func (r *fakeIngredientRepo) GetByID(id string) (*entity.Ingredient, error) {
	ing, ok := r.ingredients[id]
	if !ok {
		return nil, nil
	}
	cp := *ing
	return &cp, nil
}

func (r *fakeIngredientRepo) GetForUpdate(id string) (*entity.Ingredient, error) {
	return r.GetByID(id)
}

func (r *fakeIngredientRepo) Update(ing *entity.Ingredient) error {
	cp := *ing
	r.ingredients[ing.ID] = &cp
	return nil
}

func (r *fakeIngredientRepo) UpdateStock(id string, stock decimal.Decimal) error {
	ing, ok := r.ingredients[id]
	if !ok {
		return domain.ErrNotFound
	}
	ing.CurrentStock = stock
	return nil
}

func (r *fakeIngredientRepo) SetActive(id string, active bool) error {
	ing, ok := r.ingredients[id]
	if !ok {
		return domain.ErrNotFound
	}
	ing.IsActive = active
	return nil
}

func (r *fakeIngredientRepo) List(onlyActive bool, limit, offset int) ([]*entity.Ingredient, error) {
	var out []*entity.Ingredient
	for _, ing := range r.ingredients {
		if onlyActive && !ing.IsActive {
			continue
		}
		cp := *ing
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeIngredientRepo) Delete(id string) error {
	delete(r.ingredients, id)
	return nil
}

type fakeTxRunner struct {
	movRepo *fakeMovementRepo
	ingRepo *fakeIngredientRepo
}

func (tr *fakeTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.StockMovementRepository,
	ingRepo repository.IngredientRepository,
) error) error {
	return fn(tr.movRepo, tr.ingRepo)
}

func buildMovementUC(ings ...*entity.Ingredient) (*appinv.MovementUseCase, *fakeTxRunner) {
	tr := &fakeTxRunner{
		movRepo: newFakeMovementRepo(),
		ingRepo: newFakeIngredientRepo(ings...),
	}
	return appinv.NewMovementUseCase(tr, tr.movRepo), tr
}

func harina(stock string) *entity.Ingredient {
	return &entity.Ingredient{
		ID:           "ing-harina",
		Name:         "Harina",
		Unit:         "kg",
		CurrentStock: dec(stock),
		ReorderLevel: dec("10"),
		IsActive:     true,
		CreatedAt:    time.Now(),
	}
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// ── PostMovement ──────────────────────────────────────────────────────────────

func TestPostMovement_EntradaSumaAlSaldo(t *testing.T) {
	uc, tr := buildMovementUC(harina("50"))

	resp, err := uc.PostMovement(context.Background(), "user-1", dto.PostMovementRequest{
		IngredientID: "ing-harina",
		Type:         entity.MovementTypeIN,
		Quantity:     dec("12.5"),
		MovementDate: "2026-08-15",
	})
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.NotEmpty(t, resp.ID)

	ing, _ := tr.ingRepo.GetByID("ing-harina")
	assert.True(t, dec("62.5").Equal(ing.CurrentStock))
}

func TestPostMovement_SalidaPuedeDejarSaldoNegativo(t *testing.T) {
	uc, tr := buildMovementUC(harina("5"))

	_, err := uc.PostMovement(context.Background(), "user-1", dto.PostMovementRequest{
		IngredientID: "ing-harina",
		Type:         entity.MovementTypeOUT,
		Quantity:     dec("8"),
		MovementDate: "2026-08-15",
	})
	require.NoError(t, err, "una salida sobre stock insuficiente se registra igual")

	ing, _ := tr.ingRepo.GetByID("ing-harina")
	assert.True(t, dec("-3").Equal(ing.CurrentStock),
		"el saldo negativo se conserva como señal de error de captura")
}

func TestPostMovement_ValidaEntrada(t *testing.T) {
	uc, _ := buildMovementUC(harina("50"))
	ctx := context.Background()

	cases := []struct {
		name string
		in   dto.PostMovementRequest
	}{
		{"tipo inválido", dto.PostMovementRequest{
			IngredientID: "ing-harina", Type: "TRANSFER", Quantity: dec("1"), MovementDate: "2026-08-15",
		}},
		{"cantidad cero", dto.PostMovementRequest{
			IngredientID: "ing-harina", Type: entity.MovementTypeIN, Quantity: decimal.Zero, MovementDate: "2026-08-15",
		}},
		{"cantidad negativa", dto.PostMovementRequest{
			IngredientID: "ing-harina", Type: entity.MovementTypeIN, Quantity: dec("-1"), MovementDate: "2026-08-15",
		}},
		{"fecha malformada", dto.PostMovementRequest{
			IngredientID: "ing-harina", Type: entity.MovementTypeIN, Quantity: dec("1"), MovementDate: "15/08/2026",
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.PostMovement(ctx, "user-1", tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestPostMovement_IngredienteInexistente(t *testing.T) {
	uc, _ := buildMovementUC()

	_, err := uc.PostMovement(context.Background(), "user-1", dto.PostMovementRequest{
		IngredientID: "no-existe",
		Type:         entity.MovementTypeIN,
		Quantity:     dec("1"),
		MovementDate: "2026-08-15",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPostMovement_IngredienteInactivoSeRechaza(t *testing.T) {
	ing := harina("50")
	ing.IsActive = false
	uc, tr := buildMovementUC(ing)

	_, err := uc.PostMovement(context.Background(), "user-1", dto.PostMovementRequest{
		IngredientID: "ing-harina",
		Type:         entity.MovementTypeIN,
		Quantity:     dec("1"),
		MovementDate: "2026-08-15",
	})
	assert.ErrorIs(t, err, domain.ErrInactive)

	got, _ := tr.ingRepo.GetByID("ing-harina")
	assert.True(t, dec("50").Equal(got.CurrentStock), "el saldo no debe cambiar")
}

// ── DeleteMovement ────────────────────────────────────────────────────────────

// Registrar un movimiento y luego eliminarlo debe dejar el saldo exactamente
// como estaba (la eliminación revierte el efecto, no solo borra el asiento).
func TestDeleteMovement_RevierteElSaldo(t *testing.T) {
	uc, tr := buildMovementUC(harina("50"))
	ctx := context.Background()

	resp, err := uc.PostMovement(ctx, "user-1", dto.PostMovementRequest{
		IngredientID: "ing-harina",
		Type:         entity.MovementTypeOUT,
		Quantity:     dec("20"),
		MovementDate: "2026-08-15",
	})
	require.NoError(t, err)

	ing, _ := tr.ingRepo.GetByID("ing-harina")
	require.True(t, dec("30").Equal(ing.CurrentStock))

	require.NoError(t, uc.DeleteMovement(ctx, resp.ID))

	ing, _ = tr.ingRepo.GetByID("ing-harina")
	assert.True(t, dec("50").Equal(ing.CurrentStock), "el saldo vuelve al valor previo")

	gone, _ := tr.movRepo.GetByID(resp.ID)
	assert.Nil(t, gone, "el asiento queda eliminado")
}

func TestDeleteMovement_EntradaReDebita(t *testing.T) {
	uc, tr := buildMovementUC(harina("50"))
	ctx := context.Background()

	resp, err := uc.PostMovement(ctx, "user-1", dto.PostMovementRequest{
		IngredientID: "ing-harina",
		Type:         entity.MovementTypeIN,
		Quantity:     dec("10"),
		MovementDate: "2026-08-15",
	})
	require.NoError(t, err)
	require.NoError(t, uc.DeleteMovement(ctx, resp.ID))

	ing, _ := tr.ingRepo.GetByID("ing-harina")
	assert.True(t, dec("50").Equal(ing.CurrentStock))
}

func TestListMovements_VentanaDeFechasYPaginacion(t *testing.T) {
	uc, _ := buildMovementUC(harina("100"))
	ctx := context.Background()

	for _, d := range []string{"2026-06-10", "2026-07-05", "2026-07-20", "2026-08-02"} {
		_, err := uc.PostMovement(ctx, "user-1", dto.PostMovementRequest{
			IngredientID: "ing-harina",
			Type:         entity.MovementTypeIN,
			Quantity:     dec("1"),
			MovementDate: d,
		})
		require.NoError(t, err)
	}

	from := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	// Ventana [from, to): julio entra completo, agosto queda fuera.
	list, err := uc.List("ing-harina", &from, &to, 10, 0)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "2026-07-20", list[0].MovementDate, "más reciente primero")
	assert.Equal(t, "2026-07-05", list[1].MovementDate)

	// Paginación dentro de la ventana.
	page, err := uc.List("ing-harina", &from, &to, 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "2026-07-05", page[0].MovementDate)

	// Sin filtros trae todo el historial.
	all, err := uc.List("", nil, nil, 10, 0)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestDeleteMovement_InexistenteNoTocaSaldos(t *testing.T) {
	uc, tr := buildMovementUC(harina("50"))

	err := uc.DeleteMovement(context.Background(), "mov-fantasma")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	ing, _ := tr.ingRepo.GetByID("ing-harina")
	assert.True(t, dec("50").Equal(ing.CurrentStock))
}
