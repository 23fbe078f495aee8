package tests

import (
	"testing"
	"time"

	"github.com/zxjshishen/CJ-DC/internal/domain"
	"github.com/zxjshishen/CJ-DC/internal/storage"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func newMiniRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func TestRedisSnapshot_SaveLoadRoundTrip(t *testing.T) {
	store := storage.NewRedisSnapshot(newMiniRedis(t))

	saved := &storage.Snapshot{
		Dishes:      []domain.Dish{{ID: 1, Name: "Kung Pao Chicken", Price: 38}},
		Ingredients: []domain.Ingredient{{ID: 101, Name: "chicken breast", Unit: "kg", Quantity: 3.5}},
		Recipes:     map[int][]domain.RecipeItem{1: {{IngredientID: 101, Amount: 0.2}}},
		Orders: []domain.Order{
			{ID: "o1", TableNo: "7", Total: 76, Status: domain.OrderPending, CreatedAt: time.Now().Truncate(time.Second)},
		},
		Transactions: []domain.Transaction{{ID: "t1", Type: domain.TxIncome, Amount: 76}},
		Reservations: []domain.Reservation{{ID: "r1", Date: "2026-09-05", Time: "18:00", Status: domain.ReservationBooked}},
	}
	assert.NoError(t, store.Save(saved))

	loaded, err := store.Load()
	assert.NoError(t, err)
	if assert.Len(t, loaded.Dishes, 1) {
		assert.Equal(t, "Kung Pao Chicken", loaded.Dishes[0].Name)
		assert.Equal(t, 38.0, loaded.Dishes[0].Price)
	}
	assert.Equal(t, 3.5, loaded.Ingredients[0].Quantity)
	assert.Equal(t, saved.Recipes, loaded.Recipes)
	assert.Len(t, loaded.Orders, 1)
	assert.Len(t, loaded.Transactions, 1)
	assert.Equal(t, domain.ReservationBooked, loaded.Reservations[0].Status)
}

func TestRedisSnapshot_LoadEmptyFallsBackToSeeds(t *testing.T) {
	store := storage.NewRedisSnapshot(newMiniRedis(t))

	loaded, err := store.Load()

	assert.NoError(t, err)
	assert.Equal(t, storage.SeedDishes(), loaded.Dishes)
	assert.Equal(t, storage.SeedIngredients(), loaded.Ingredients)
	assert.Equal(t, storage.SeedRecipes(), loaded.Recipes)
	assert.Empty(t, loaded.Orders)
	assert.Empty(t, loaded.Transactions)
	assert.Empty(t, loaded.Reservations)
}

func TestSession_OfflineWriteThrough(t *testing.T) {
	store := storage.NewRedisSnapshot(newMiniRedis(t))
	f := newFixture()
	f.state.UseSnapshot(store)

	_, err := f.catalog.SaveIngredient(domain.Ingredient{Name: "ginger", Unit: "kg", Cost: 8})
	assert.NoError(t, err)

	// A fresh session restored from the same store sees the mutation.
	loaded, err := store.Load()
	assert.NoError(t, err)
	restored := storage.NewSession()
	restored.Restore(loaded)
	assert.Len(t, restored.Ingredients, 5)
	assert.Equal(t, "ginger", restored.Ingredients[4].Name)
}
