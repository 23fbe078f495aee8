package storage

import "github.com/zxjshishen/CJ-DC/internal/domain"

// Seed data for a fresh session with no backend and no saved snapshot.

func SeedIngredients() []domain.Ingredient {
	return []domain.Ingredient{
		{ID: 101, Name: "chicken breast", Unit: "kg", Quantity: 5.0, Threshold: 2.0, Cost: 20},
		{ID: 102, Name: "peanuts", Unit: "kg", Quantity: 2.0, Threshold: 1.0, Cost: 10},
		{ID: 103, Name: "soy sauce", Unit: "bottle", Quantity: 10.0, Threshold: 3.0, Cost: 5},
		{ID: 104, Name: "green pepper", Unit: "kg", Quantity: 3.0, Threshold: 1.5, Cost: 6},
	}
}

func SeedDishes() []domain.Dish {
	return []domain.Dish{
		{ID: 1, Name: "Kung Pao Chicken", Price: 38, Image: "🥘"},
		{ID: 2, Name: "Braised Chicken", Price: 45, Image: "🍲"},
		{ID: 3, Name: "Pepper Stir-Fry", Price: 32, Image: "🥗"},
	}
}

func SeedRecipes() map[int][]domain.RecipeItem {
	return map[int][]domain.RecipeItem{
		1: {{IngredientID: 101, Amount: 0.2}, {IngredientID: 102, Amount: 0.1}, {IngredientID: 103, Amount: 0.05}},
		2: {{IngredientID: 101, Amount: 0.5}, {IngredientID: 103, Amount: 0.1}},
		3: {{IngredientID: 101, Amount: 0.15}, {IngredientID: 104, Amount: 0.2}, {IngredientID: 103, Amount: 0.02}},
	}
}
