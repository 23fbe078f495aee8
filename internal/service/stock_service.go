package service

import (
	"fmt"
	"math"
	"strings"

	"github.com/zxjshishen/CJ-DC/internal/domain"
	"github.com/zxjshishen/CJ-DC/internal/storage"
)

const (
	CategoryDiningRevenue = "dining revenue"
	CategoryProcurement   = "ingredient procurement"
)

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

type StockService struct {
	state    *storage.Session
	finance  FinanceServiceInterface
	gate     *ConfirmGate
	notifier Notifier
}

func NewStockService(state *storage.Session, finance FinanceServiceInterface, gate *ConfirmGate, notifier Notifier) *StockService {
	return &StockService{state: state, finance: finance, gate: gate, notifier: notifier}
}

// Availability reports whether every recipe line of the dish can be covered
// by current stock for a single unit. A dish without a recipe is always
// available.
func (s *StockService) Availability(dishID int) bool {
	recipe, ok := s.state.Recipes[dishID]
	if !ok {
		return true
	}
	for _, line := range recipe {
		ing := s.state.FindIngredient(line.IngredientID)
		if ing == nil || ing.Quantity < line.Amount {
			return false
		}
	}
	return true
}

// Precheck validates the whole batch without mutating anything. The error
// names the first ingredient, in cart order, whose stock would go negative.
func (s *StockService) Precheck(items []domain.OrderItem) error {
	_, err := s.project(items)
	return err
}

// Consume decrements stock for the batch. The entire batch is validated
// first; on any shortfall nothing is decremented.
func (s *StockService) Consume(items []domain.OrderItem) error {
	projected, err := s.project(items)
	if err != nil {
		return err
	}
	for id, quantity := range projected {
		s.state.FindIngredient(id).Quantity = quantity
	}
	return s.state.Flush()
}

// project walks the cart lines in order and computes the post-consumption
// quantity per touched ingredient.
func (s *StockService) project(items []domain.OrderItem) (map[int]float64, error) {
	projected := map[int]float64{}
	for _, item := range items {
		recipe, ok := s.state.Recipes[item.Dish.ID]
		if !ok {
			continue
		}
		for _, line := range recipe {
			ing := s.state.FindIngredient(line.IngredientID)
			if ing == nil {
				return nil, fmt.Errorf("%w: id %d", ErrUnknownIngredient, line.IngredientID)
			}
			if _, seen := projected[ing.ID]; !seen {
				projected[ing.ID] = ing.Quantity
			}
			projected[ing.ID] -= line.Amount * float64(item.Count)
			if projected[ing.ID] < 0 {
				return nil, fmt.Errorf("%w: %s", ErrInsufficientStock, ing.Name)
			}
		}
	}
	return projected, nil
}

// RequestRestock stages a confirmation-gated restock of one ingredient.
// On confirm the quantity is increased and a pending-invoice expense is
// recorded.
func (s *StockService) RequestRestock(ingredientID int, amount float64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	ing := s.state.FindIngredient(ingredientID)
	if ing == nil {
		return ErrIngredientNotFound
	}
	s.gate.Request("Restock", fmt.Sprintf("Restock %s by %.2f %s?", ing.Name, amount, ing.Unit), func() {
		ing := s.state.FindIngredient(ingredientID)
		if ing == nil {
			return
		}
		ing.Quantity += amount
		s.finance.Record(domain.TxExpense, CategoryProcurement, ing.Cost*amount,
			fmt.Sprintf("restock: %s x %.2f%s", ing.Name, amount, ing.Unit), true)
		s.notifier.Notify("restocked " + ing.Name)
		_ = s.state.Flush()
	})
	return nil
}

// ApplyBatchRestock increments every listed ingredient that can be matched;
// unmatched ids are skipped. Returns the aggregate cost and a description
// for the ledger entry.
func (s *StockService) ApplyBatchRestock(list []domain.ProcurementItem) (float64, string) {
	total := 0.0
	parts := make([]string, 0, len(list))
	for _, item := range list {
		ing := s.state.FindIngredient(item.ID)
		if ing == nil || item.SuggestedAmount <= 0 {
			continue
		}
		ing.Quantity += item.SuggestedAmount
		total += item.EstimatedCost
		parts = append(parts, fmt.Sprintf("%s x %.2f%s", ing.Name, item.SuggestedAmount, ing.Unit))
	}
	_ = s.state.Flush()
	return total, "batch procurement: " + strings.Join(parts, ", ")
}

var _ StockServiceInterface = (*StockService)(nil)
