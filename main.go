package main

import (
	"log"
	"os"

	"github.com/zxjshishen/CJ-DC/config"
	httpapi "github.com/zxjshishen/CJ-DC/internal/api/http"
	"github.com/zxjshishen/CJ-DC/internal/service"
	"github.com/zxjshishen/CJ-DC/internal/storage"

	"github.com/redis/go-redis/v9"
)

// bootstrapOnline fills the session from the remote catalog. Recipes have no
// remote table, so the seed definitions apply online as well. Reports false
// when a read fails so the caller can degrade to offline mode.
func bootstrapOnline(state *storage.Session, repo *storage.PostgresRepository) bool {
	dishes, err := repo.GetDishes()
	if err != nil {
		log.Printf("dish catalog read failed: %v", err)
		return false
	}
	ingredients, err := repo.GetIngredients()
	if err != nil {
		log.Printf("ingredient catalog read failed: %v", err)
		return false
	}
	state.LoadCatalog(dishes, ingredients)
	return true
}

// bootstrapOffline restores the session from the local snapshot, seeding
// defaults when nothing was ever saved, and turns on write-through.
func bootstrapOffline(state *storage.Session, rdb *redis.Client) {
	snapshot := storage.NewRedisSnapshot(rdb)
	saved, err := snapshot.Load()
	if err != nil {
		log.Printf("snapshot load failed, seeding defaults: %v", err)
		saved = &storage.Snapshot{
			Dishes:      storage.SeedDishes(),
			Ingredients: storage.SeedIngredients(),
			Recipes:     storage.SeedRecipes(),
		}
	}
	state.Restore(saved)
	state.UseSnapshot(snapshot)
}

func main() {
	state := storage.NewSession()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	var backend service.Backend
	db, err := config.InitPostgres()
	if err != nil {
		log.Printf("backend unreachable, switching to offline mode: %v", err)
		bootstrapOffline(state, rdb)
	} else {
		defer db.Close()
		repo := storage.NewPostgresRepository(db)
		if bootstrapOnline(state, repo) {
			backend = repo
		} else {
			log.Printf("catalog unreadable, switching to offline mode")
			bootstrapOffline(state, rdb)
		}
	}

	var publisher service.OrderPublisher
	if os.Getenv("KAFKA_BROKER") != "" {
		writer := config.NewKafkaWriter("orders")
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)
	}

	notifier := service.LogNotifier{}
	gate := service.NewConfirmGate()

	finance := service.NewFinanceService(state, notifier)
	stock := service.NewStockService(state, finance, gate, notifier)
	orders := service.NewOrderService(state, stock, finance, backend, publisher, notifier,
		service.DefaultQRGenerator{BaseURL: "http://localhost"})
	procurement := service.NewProcurementService(state, stock, finance, gate, notifier)
	reservations := service.NewReservationService(state, gate, notifier)
	catalog := service.NewCatalogService(state, gate, notifier)

	handler := httpapi.NewHandler(state, catalog, stock, orders, finance, procurement, reservations, gate, backend)
	httpapi.StartServer(":8080", httpapi.NewRouter(handler))
}
