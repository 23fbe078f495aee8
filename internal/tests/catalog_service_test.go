package tests

import (
	"testing"

	"github.com/zxjshishen/CJ-DC/internal/domain"
	"github.com/zxjshishen/CJ-DC/internal/service"

	"github.com/stretchr/testify/assert"
)

func TestCatalogService_SaveIngredient(t *testing.T) {
	f := newFixture()

	created, err := f.catalog.SaveIngredient(domain.Ingredient{Quantity: 99, Cost: 12})
	assert.NoError(t, err)
	assert.Equal(t, "unnamed", created.Name)
	assert.Equal(t, "kg", created.Unit)
	assert.Equal(t, 105, created.ID)
	// New ingredients always start empty regardless of the submitted value.
	assert.Equal(t, 0.0, created.Quantity)

	created.Name = "dried chili"
	updated, err := f.catalog.SaveIngredient(*created)
	assert.NoError(t, err)
	assert.Equal(t, "dried chili", f.state.FindIngredient(updated.ID).Name)

	_, err = f.catalog.SaveIngredient(domain.Ingredient{ID: 777})
	assert.ErrorIs(t, err, service.ErrIngredientNotFound)
}

func TestCatalogService_SaveDish_RejectsDanglingRecipe(t *testing.T) {
	f := newFixture()
	before := len(f.state.Dishes)

	_, err := f.catalog.SaveDish(
		domain.Dish{Name: "Ghost Dish", Price: 20},
		[]domain.RecipeItem{{IngredientID: 404, Amount: 0.1}},
	)

	assert.ErrorIs(t, err, service.ErrUnknownIngredient)
	assert.Len(t, f.state.Dishes, before)
}

func TestCatalogService_SaveDish(t *testing.T) {
	f := newFixture()

	dish, err := f.catalog.SaveDish(
		domain.Dish{Name: "Chili Chicken", Price: 42},
		[]domain.RecipeItem{{IngredientID: 101, Amount: 0.3}},
	)
	assert.NoError(t, err)
	assert.Equal(t, 4, dish.ID)
	assert.Equal(t, []domain.RecipeItem{{IngredientID: 101, Amount: 0.3}}, f.catalog.Recipe(dish.ID))

	dish.Price = 45
	updated, err := f.catalog.SaveDish(*dish, []domain.RecipeItem{{IngredientID: 101, Amount: 0.25}})
	assert.NoError(t, err)
	assert.Equal(t, 45.0, updated.Price)
	assert.Equal(t, 0.25, f.catalog.Recipe(dish.ID)[0].Amount)
	assert.Len(t, f.state.Dishes, 4)

	_, err = f.catalog.SaveDish(domain.Dish{ID: 555, Name: "Nope"}, nil)
	assert.ErrorIs(t, err, service.ErrDishNotFound)
}

func TestCatalogService_RequestDeleteDish(t *testing.T) {
	f := newFixture()

	assert.ErrorIs(t, f.catalog.RequestDeleteDish(999), service.ErrDishNotFound)

	assert.NoError(t, f.catalog.RequestDeleteDish(1))
	assert.NotNil(t, f.state.FindDish(1)) // staged, not applied

	f.confirm()

	assert.Nil(t, f.state.FindDish(1))
	assert.Empty(t, f.catalog.Recipe(1))
	assert.Len(t, f.state.Dishes, 2)
}

func TestCatalogService_UpdateDishImage(t *testing.T) {
	f := newFixture()

	assert.ErrorIs(t, f.catalog.UpdateDishImage(999, "/uploads/x.png"), service.ErrDishNotFound)

	assert.NoError(t, f.catalog.UpdateDishImage(1, "/uploads/kungpao.png"))
	assert.Equal(t, "/uploads/kungpao.png", f.state.FindDish(1).Image)
}

func TestCatalogService_ImportIngredients(t *testing.T) {
	f := newFixture()

	tests := []struct {
		name     string
		text     string
		imported int
		wantErr  error
	}{
		{
			name:     "mixed separators and partial garbage",
			text:     "ginger\tkg\t8\t0.5\nscallion，kg，3\nthis is not a row\n| kg | 2\ngarlic|kg|6|1",
			imported: 3,
		},
		{
			name:    "nothing parseable",
			text:    "hello world\n\n",
			wantErr: service.ErrNothingImported,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			n, err := f.catalog.ImportIngredients(tt.text)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.imported, n)
			assert.Len(t, f.state.Ingredients, 4+tt.imported)
		})
	}

	// Parsed fields land on the right columns.
	n, err := f.catalog.ImportIngredients("ginger, kg, 8, 0.5")
	assert.NoError(t, err)
	assert.Equal(t, 1, n)
	ginger := f.state.Ingredients[len(f.state.Ingredients)-1]
	assert.Equal(t, "ginger", ginger.Name)
	assert.Equal(t, 8.0, ginger.Cost)
	assert.Equal(t, 0.5, ginger.Threshold)
	assert.Equal(t, 0.0, ginger.Quantity)
}

func TestCatalogService_ImportDishes(t *testing.T) {
	f := newFixture()

	n, err := f.catalog.ImportDishes("Mapo Tofu, 22\nTwice Cooked Pork|36|🥓")
	assert.NoError(t, err)
	assert.Equal(t, 2, n)

	mapo := f.state.FindDish(4)
	assert.Equal(t, "Mapo Tofu", mapo.Name)
	assert.Equal(t, 22.0, mapo.Price)
	assert.Equal(t, "🍲", mapo.Image) // default when no image column

	pork := f.state.FindDish(5)
	assert.Equal(t, "🥓", pork.Image)

	_, err = f.catalog.ImportDishes("   ")
	assert.ErrorIs(t, err, service.ErrNothingImported)
}
