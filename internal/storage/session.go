package storage

import "github.com/zxjshishen/CJ-DC/internal/domain"

// Snapshot is the full serializable application state, used by the offline
// write-through store.
type Snapshot struct {
	Dishes       []domain.Dish               `json:"dishes"`
	Ingredients  []domain.Ingredient         `json:"ingredients"`
	Recipes      map[int][]domain.RecipeItem `json:"recipes"`
	Orders       []domain.Order              `json:"orders"`
	Transactions []domain.Transaction        `json:"transactions"`
	Reservations []domain.Reservation        `json:"reservations"`
}

type SnapshotStore interface {
	Save(snapshot *Snapshot) error
	Load() (*Snapshot, error)
}

// Session holds all entities for the single application session. State-mutating
// actions are serialized by the HTTP layer, so Session itself carries no lock.
// When offline, every mutation is written through to the snapshot store.
type Session struct {
	Dishes       []domain.Dish
	Ingredients  []domain.Ingredient
	Recipes      map[int][]domain.RecipeItem
	Orders       []domain.Order
	Transactions []domain.Transaction
	Reservations []domain.Reservation

	// Active POS working state.
	Cart            []domain.CartItem
	TableNo         string
	GuestCount      int
	NeedInvoice     bool
	FromReservation bool

	Offline  bool
	snapshot SnapshotStore
}

func NewSession() *Session {
	return &Session{
		Recipes:    map[int][]domain.RecipeItem{},
		GuestCount: 2,
	}
}

// UseSnapshot switches the session to offline mode backed by the given store.
func (s *Session) UseSnapshot(store SnapshotStore) {
	s.Offline = true
	s.snapshot = store
}

// LoadCatalog installs the remotely fetched catalog. Recipes have no remote
// table; the seed definitions apply in online mode too.
func (s *Session) LoadCatalog(dishes []domain.Dish, ingredients []domain.Ingredient) {
	s.Dishes = dishes
	s.Ingredients = ingredients
	s.Recipes = SeedRecipes()
}

// Restore replaces the session's entities with a loaded snapshot.
func (s *Session) Restore(snapshot *Snapshot) {
	s.Dishes = snapshot.Dishes
	s.Ingredients = snapshot.Ingredients
	s.Recipes = snapshot.Recipes
	s.Orders = snapshot.Orders
	s.Transactions = snapshot.Transactions
	s.Reservations = snapshot.Reservations
	if s.Recipes == nil {
		s.Recipes = map[int][]domain.RecipeItem{}
	}
}

// Flush persists the current state when the session is offline. Online, all
// non-catalog entities live purely in session state and there is nothing to do.
func (s *Session) Flush() error {
	if !s.Offline || s.snapshot == nil {
		return nil
	}
	return s.snapshot.Save(&Snapshot{
		Dishes:       s.Dishes,
		Ingredients:  s.Ingredients,
		Recipes:      s.Recipes,
		Orders:       s.Orders,
		Transactions: s.Transactions,
		Reservations: s.Reservations,
	})
}

func (s *Session) FindIngredient(id int) *domain.Ingredient {
	for i := range s.Ingredients {
		if s.Ingredients[i].ID == id {
			return &s.Ingredients[i]
		}
	}
	return nil
}

func (s *Session) FindDish(id int) *domain.Dish {
	for i := range s.Dishes {
		if s.Dishes[i].ID == id {
			return &s.Dishes[i]
		}
	}
	return nil
}

func (s *Session) FindOrder(id string) *domain.Order {
	for i := range s.Orders {
		if s.Orders[i].ID == id {
			return &s.Orders[i]
		}
	}
	return nil
}

func (s *Session) FindTransaction(id string) *domain.Transaction {
	for i := range s.Transactions {
		if s.Transactions[i].ID == id {
			return &s.Transactions[i]
		}
	}
	return nil
}

func (s *Session) FindReservation(id string) *domain.Reservation {
	for i := range s.Reservations {
		if s.Reservations[i].ID == id {
			return &s.Reservations[i]
		}
	}
	return nil
}

// NextIngredientID returns a fresh id for a locally created ingredient.
func (s *Session) NextIngredientID() int {
	next := 1
	for _, ing := range s.Ingredients {
		if ing.ID >= next {
			next = ing.ID + 1
		}
	}
	return next
}

func (s *Session) NextDishID() int {
	next := 1
	for _, d := range s.Dishes {
		if d.ID >= next {
			next = d.ID + 1
		}
	}
	return next
}

// ClearWorkingState resets the active cart and table context after an order
// commits.
func (s *Session) ClearWorkingState() {
	s.Cart = nil
	s.TableNo = ""
	s.GuestCount = 2
	s.NeedInvoice = false
	s.FromReservation = false
}
