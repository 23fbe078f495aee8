package service

import (
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"

	"github.com/zxjshishen/CJ-DC/internal/domain"
	"github.com/zxjshishen/CJ-DC/internal/storage"
)

// Batch import rows are split on tab, comma (ASCII or fullwidth) or pipe.
var importFieldSep = regexp.MustCompile(`[\t,，|]`)

type CatalogService struct {
	state    *storage.Session
	gate     *ConfirmGate
	notifier Notifier
}

func NewCatalogService(state *storage.Session, gate *ConfirmGate, notifier Notifier) *CatalogService {
	return &CatalogService{state: state, gate: gate, notifier: notifier}
}

func (s *CatalogService) Dishes() []domain.Dish {
	return s.state.Dishes
}

func (s *CatalogService) Ingredients() []domain.Ingredient {
	return s.state.Ingredients
}

func (s *CatalogService) Recipe(dishID int) []domain.RecipeItem {
	return s.state.Recipes[dishID]
}

// SaveIngredient creates or updates an ingredient. New ingredients start at
// zero stock; quantity changes come through the stock ledger or a direct edit.
func (s *CatalogService) SaveIngredient(ing domain.Ingredient) (*domain.Ingredient, error) {
	if ing.ID != 0 {
		existing := s.state.FindIngredient(ing.ID)
		if existing == nil {
			return nil, ErrIngredientNotFound
		}
		*existing = ing
		s.flush()
		s.notifier.Notify("ingredient updated")
		return existing, nil
	}

	if ing.Name == "" {
		ing.Name = "unnamed"
	}
	if ing.Unit == "" {
		ing.Unit = "kg"
	}
	ing.ID = s.state.NextIngredientID()
	ing.Quantity = 0
	s.state.Ingredients = append(s.state.Ingredients, ing)
	s.flush()
	s.notifier.Notify("ingredient added")
	return &s.state.Ingredients[len(s.state.Ingredients)-1], nil
}

// SaveDish creates or updates a dish together with its recipe. Every recipe
// line must reference a known ingredient; a dangling reference is rejected at
// edit time instead of being silently skipped at order time.
func (s *CatalogService) SaveDish(dish domain.Dish, recipe []domain.RecipeItem) (*domain.Dish, error) {
	for _, line := range recipe {
		if s.state.FindIngredient(line.IngredientID) == nil {
			return nil, fmt.Errorf("%w: id %d", ErrUnknownIngredient, line.IngredientID)
		}
	}

	if dish.ID == 0 {
		dish.ID = s.state.NextDishID()
		s.state.Dishes = append(s.state.Dishes, dish)
		s.notifier.Notify("dish created")
	} else {
		existing := s.state.FindDish(dish.ID)
		if existing == nil {
			return nil, ErrDishNotFound
		}
		*existing = dish
		s.notifier.Notify("dish updated")
	}
	s.state.Recipes[dish.ID] = recipe
	s.flush()
	return s.state.FindDish(dish.ID), nil
}

func (s *CatalogService) RequestDeleteDish(id int) error {
	if s.state.FindDish(id) == nil {
		return ErrDishNotFound
	}
	s.gate.Request("Delete dish", "Delete this dish?", func() {
		dishes := s.state.Dishes[:0]
		for _, d := range s.state.Dishes {
			if d.ID != id {
				dishes = append(dishes, d)
			}
		}
		s.state.Dishes = dishes
		delete(s.state.Recipes, id)
		s.notifier.Notify("dish deleted")
		s.flush()
	})
	return nil
}

func (s *CatalogService) UpdateDishImage(id int, imageURL string) error {
	dish := s.state.FindDish(id)
	if dish == nil {
		return ErrDishNotFound
	}
	dish.Image = imageURL
	s.flush()
	return nil
}

// ImportIngredients parses pasted rows of "name, unit, cost, threshold".
// Lines that parse are imported, the rest are dropped; importing nothing at
// all is an error.
func (s *CatalogService) ImportIngredients(text string) (int, error) {
	imported := 0
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		parts := splitImportRow(line)
		if len(parts) < 2 || parts[0] == "" {
			continue
		}
		ing := domain.Ingredient{
			ID:   s.state.NextIngredientID(),
			Name: parts[0],
			Unit: parts[1],
		}
		if ing.Unit == "" {
			ing.Unit = "kg"
		}
		if len(parts) > 2 {
			ing.Cost, _ = strconv.ParseFloat(parts[2], 64)
		}
		if len(parts) > 3 {
			ing.Threshold, _ = strconv.ParseFloat(parts[3], 64)
		}
		s.state.Ingredients = append(s.state.Ingredients, ing)
		imported++
	}
	if imported == 0 {
		return 0, ErrNothingImported
	}
	s.flush()
	s.notifier.Notify(fmt.Sprintf("imported %d ingredients", imported))
	return imported, nil
}

// ImportDishes parses pasted rows of "name, price, image".
func (s *CatalogService) ImportDishes(text string) (int, error) {
	imported := 0
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		parts := splitImportRow(line)
		if len(parts) < 2 || parts[0] == "" {
			continue
		}
		dish := domain.Dish{
			ID:    s.state.NextDishID(),
			Name:  parts[0],
			Image: "🍲",
		}
		dish.Price, _ = strconv.ParseFloat(parts[1], 64)
		if len(parts) > 2 && parts[2] != "" {
			dish.Image = parts[2]
		}
		s.state.Dishes = append(s.state.Dishes, dish)
		imported++
	}
	if imported == 0 {
		return 0, ErrNothingImported
	}
	s.flush()
	s.notifier.Notify(fmt.Sprintf("imported %d dishes", imported))
	return imported, nil
}

func splitImportRow(line string) []string {
	parts := importFieldSep.Split(line, -1)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func (s *CatalogService) flush() {
	if err := s.state.Flush(); err != nil {
		log.Printf("snapshot flush failed: %v", err)
	}
}

var _ CatalogServiceInterface = (*CatalogService)(nil)
