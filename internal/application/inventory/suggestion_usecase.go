package inventory

import (
	"context"
	"fmt"
	"sort"

	"github.com/tu-usuario/resto-pro/internal/application/dto"
	domaininv "github.com/tu-usuario/resto-pro/internal/domain/inventory"
	"github.com/tu-usuario/resto-pro/internal/domain/repository"
)

// SuggestionUseCase genera la lista de compras sugeridas: ingredientes
// activos en o bajo su umbral de reposición, siempre "a hoy" (independiente
// del mes seleccionado en el dashboard).
type SuggestionUseCase struct {
	reportRepo repository.ReportRepository
	policy     domaininv.SuggestionPolicy
}

// NewSuggestionUseCase construye el caso de uso con la política de reposición.
func NewSuggestionUseCase(reportRepo repository.ReportRepository, policy domaininv.SuggestionPolicy) *SuggestionUseCase {
	return &SuggestionUseCase{reportRepo: reportRepo, policy: policy}
}

// GetPurchaseSuggestions devuelve las sugerencias ordenadas: CRITICAL primero,
// luego por déficit (reorder_level − current_stock) descendente.
func (uc *SuggestionUseCase) GetPurchaseSuggestions(ctx context.Context) ([]dto.PurchaseSuggestionDTO, error) {
	rows, err := uc.reportRepo.GetIngredientsBelowReorder(ctx)
	if err != nil {
		return nil, fmt.Errorf("sugerencias de compra: %w", err)
	}

	suggestions := make([]dto.PurchaseSuggestionDTO, 0, len(rows))
	for _, r := range rows {
		suggestions = append(suggestions, dto.PurchaseSuggestionDTO{
			IngredientID:      r.IngredientID,
			IngredientName:    r.Name,
			Unit:              r.Unit,
			CurrentStock:      r.CurrentStock,
			ReorderLevel:      r.ReorderLevel,
			SuggestedQuantity: uc.policy.SuggestedQuantity(r.CurrentStock, r.ReorderLevel),
			Priority:          uc.policy.Priority(r.CurrentStock, r.ReorderLevel),
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		a, b := suggestions[i], suggestions[j]
		if a.Priority != b.Priority {
			return a.Priority == domaininv.PriorityCritical
		}
		defA := domaininv.Deficit(a.CurrentStock, a.ReorderLevel)
		defB := domaininv.Deficit(b.CurrentStock, b.ReorderLevel)
		return defA.GreaterThan(defB)
	})

	return suggestions, nil
}
