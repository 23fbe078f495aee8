package storage

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
)

const (
	keyDishes       = "erp:dishes"
	keyIngredients  = "erp:ingredients"
	keyRecipes      = "erp:recipes"
	keyOrders       = "erp:orders"
	keyTransactions = "erp:transactions"
	keyReservations = "erp:reservations"
)

// RedisSnapshot persists the full session state to the local redis instance,
// one JSON blob per entity collection. It backs offline mode: every mutation
// is written through so a restart resumes where the session left off.
type RedisSnapshot struct {
	Client *redis.Client
	ctx    context.Context
}

func NewRedisSnapshot(client *redis.Client) *RedisSnapshot {
	return &RedisSnapshot{Client: client, ctx: context.Background()}
}

func (s *RedisSnapshot) Save(snapshot *Snapshot) error {
	entries := map[string]interface{}{
		keyDishes:       snapshot.Dishes,
		keyIngredients:  snapshot.Ingredients,
		keyRecipes:      snapshot.Recipes,
		keyOrders:       snapshot.Orders,
		keyTransactions: snapshot.Transactions,
		keyReservations: snapshot.Reservations,
	}
	for key, value := range entries {
		payload, err := json.Marshal(value)
		if err != nil {
			return err
		}
		if err := s.Client.Set(s.ctx, key, payload, 0).Err(); err != nil {
			return err
		}
	}
	return nil
}

// Load reads the saved snapshot; collections never saved fall back to seed
// data for the catalog and to empty for everything else.
func (s *RedisSnapshot) Load() (*Snapshot, error) {
	snapshot := &Snapshot{}

	if err := s.read(keyDishes, &snapshot.Dishes); err != nil {
		return nil, err
	}
	if snapshot.Dishes == nil {
		snapshot.Dishes = SeedDishes()
	}

	if err := s.read(keyIngredients, &snapshot.Ingredients); err != nil {
		return nil, err
	}
	if snapshot.Ingredients == nil {
		snapshot.Ingredients = SeedIngredients()
	}

	if err := s.read(keyRecipes, &snapshot.Recipes); err != nil {
		return nil, err
	}
	if snapshot.Recipes == nil {
		snapshot.Recipes = SeedRecipes()
	}

	if err := s.read(keyOrders, &snapshot.Orders); err != nil {
		return nil, err
	}
	if err := s.read(keyTransactions, &snapshot.Transactions); err != nil {
		return nil, err
	}
	if err := s.read(keyReservations, &snapshot.Reservations); err != nil {
		return nil, err
	}

	return snapshot, nil
}

func (s *RedisSnapshot) read(key string, out interface{}) error {
	payload, err := s.Client.Get(s.ctx, key).Bytes()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(payload, out)
}

var _ SnapshotStore = (*RedisSnapshot)(nil)
