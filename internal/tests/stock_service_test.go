package tests

import (
	"testing"

	"github.com/zxjshishen/CJ-DC/internal/domain"
	"github.com/zxjshishen/CJ-DC/internal/service"

	"github.com/stretchr/testify/assert"
)

func kungPao(f *fixture, count int) []domain.OrderItem {
	return []domain.OrderItem{{Dish: *f.state.FindDish(1), Count: count}}
}

func TestStockService_Availability(t *testing.T) {
	f := newFixture()

	tests := []struct {
		name     string
		dishID   int
		setup    func()
		expected bool
	}{
		{
			name:     "enough stock for one unit",
			dishID:   1,
			setup:    func() {},
			expected: true,
		},
		{
			name:   "stock below single-unit requirement",
			dishID: 1,
			setup: func() {
				f.state.FindIngredient(101).Quantity = 0.1
			},
			expected: false,
		},
		{
			name:   "dish without a recipe is always available",
			dishID: 42,
			setup: func() {
				f.state.Dishes = append(f.state.Dishes, domain.Dish{ID: 42, Name: "House Tea", Price: 8})
			},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			assert.Equal(t, tt.expected, f.stock.Availability(tt.dishID))
		})
	}
}

func TestStockService_Consume_InsufficientStock(t *testing.T) {
	f := newFixture()

	// 30 units need 6.0kg chicken breast against 5.0kg in stock.
	err := f.stock.Consume(kungPao(f, 30))

	assert.ErrorIs(t, err, service.ErrInsufficientStock)
	assert.Contains(t, err.Error(), "chicken breast")

	// The whole batch is rejected, nothing is decremented.
	assert.Equal(t, 5.0, f.state.FindIngredient(101).Quantity)
	assert.Equal(t, 2.0, f.state.FindIngredient(102).Quantity)
	assert.Equal(t, 10.0, f.state.FindIngredient(103).Quantity)
}

func TestStockService_Consume_DecrementsEveryRecipeLine(t *testing.T) {
	f := newFixture()

	err := f.stock.Consume(kungPao(f, 10))

	assert.NoError(t, err)
	assert.InDelta(t, 3.0, f.state.FindIngredient(101).Quantity, 1e-9)
	assert.InDelta(t, 1.0, f.state.FindIngredient(102).Quantity, 1e-9)
	assert.InDelta(t, 9.5, f.state.FindIngredient(103).Quantity, 1e-9)
}

func TestStockService_Consume_SharedIngredientAcrossLines(t *testing.T) {
	f := newFixture()

	// Kung Pao and Braised Chicken both draw chicken breast; the projection
	// has to accumulate across cart lines: 10*0.2 + 6*0.5 = 5.2 > 5.0.
	items := []domain.OrderItem{
		{Dish: *f.state.FindDish(1), Count: 10},
		{Dish: *f.state.FindDish(2), Count: 6},
	}

	err := f.stock.Consume(items)

	assert.ErrorIs(t, err, service.ErrInsufficientStock)
	assert.Equal(t, 5.0, f.state.FindIngredient(101).Quantity)
}

func TestStockService_Consume_UnknownIngredient(t *testing.T) {
	f := newFixture()
	f.state.Dishes = append(f.state.Dishes, domain.Dish{ID: 9, Name: "Mystery Special", Price: 50})
	f.state.Recipes[9] = []domain.RecipeItem{{IngredientID: 999, Amount: 1}}

	err := f.stock.Consume([]domain.OrderItem{{Dish: *f.state.FindDish(9), Count: 1}})

	assert.ErrorIs(t, err, service.ErrUnknownIngredient)
}

func TestStockService_Precheck_DoesNotMutate(t *testing.T) {
	f := newFixture()

	assert.NoError(t, f.stock.Precheck(kungPao(f, 10)))
	assert.Equal(t, 5.0, f.state.FindIngredient(101).Quantity)
}

func TestStockService_RequestRestock(t *testing.T) {
	f := newFixture()

	assert.ErrorIs(t, f.stock.RequestRestock(101, 0), service.ErrInvalidAmount)
	assert.ErrorIs(t, f.stock.RequestRestock(101, -2), service.ErrInvalidAmount)
	assert.ErrorIs(t, f.stock.RequestRestock(999, 1), service.ErrIngredientNotFound)

	assert.NoError(t, f.stock.RequestRestock(101, 3))

	// Nothing happens until the pending action is confirmed.
	_, _, pending := f.gate.Pending()
	assert.True(t, pending)
	assert.Equal(t, 5.0, f.state.FindIngredient(101).Quantity)
	assert.Empty(t, f.state.Transactions)

	f.confirm()

	assert.Equal(t, 8.0, f.state.FindIngredient(101).Quantity)
	if assert.Len(t, f.state.Transactions, 1) {
		tx := f.state.Transactions[0]
		assert.Equal(t, domain.TxExpense, tx.Type)
		assert.Equal(t, service.CategoryProcurement, tx.Category)
		assert.Equal(t, 60.0, tx.Amount)
		assert.Equal(t, domain.InvoicePending, tx.InvoiceStatus)
	}
}

func TestStockService_RequestRestock_CancelDiscards(t *testing.T) {
	f := newFixture()

	assert.NoError(t, f.stock.RequestRestock(102, 5))
	f.gate.Cancel()

	assert.Equal(t, 2.0, f.state.FindIngredient(102).Quantity)
	assert.Empty(t, f.state.Transactions)
	assert.ErrorIs(t, f.gate.Confirm(), service.ErrNoPendingConfirm)
}

func TestStockService_ApplyBatchRestock(t *testing.T) {
	f := newFixture()

	total, description := f.stock.ApplyBatchRestock([]domain.ProcurementItem{
		{Ingredient: domain.Ingredient{ID: 101}, SuggestedAmount: 2, EstimatedCost: 40},
		{Ingredient: domain.Ingredient{ID: 999}, SuggestedAmount: 5, EstimatedCost: 100}, // unmatched, skipped
		{Ingredient: domain.Ingredient{ID: 103}, SuggestedAmount: 0, EstimatedCost: 10},  // non-positive, skipped
		{Ingredient: domain.Ingredient{ID: 102}, SuggestedAmount: 1.5, EstimatedCost: 15},
	})

	assert.Equal(t, 55.0, total)
	assert.Contains(t, description, "chicken breast")
	assert.Contains(t, description, "peanuts")
	assert.NotContains(t, description, "soy sauce")
	assert.Equal(t, 7.0, f.state.FindIngredient(101).Quantity)
	assert.Equal(t, 3.5, f.state.FindIngredient(102).Quantity)
	assert.Equal(t, 10.0, f.state.FindIngredient(103).Quantity)
}
