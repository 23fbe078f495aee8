package storage

import (
	"database/sql"
	"fmt"

	"github.com/zxjshishen/CJ-DC/internal/domain"
)

// PostgresRepository is the online system of record. Only the catalog reads
// and order writes go remote; transactions and reservations stay in session
// state.
type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) GetDishes() ([]domain.Dish, error) {
	rows, err := r.DB.Query(`
		SELECT id, name, price, COALESCE(image_url, ''), created_at
		FROM dishes
		ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dishes []domain.Dish
	for rows.Next() {
		var dish domain.Dish
		if err := rows.Scan(&dish.ID, &dish.Name, &dish.Price, &dish.Image, &dish.CreatedAt); err != nil {
			continue
		}
		dishes = append(dishes, dish)
	}
	return dishes, nil
}

func (r *PostgresRepository) GetIngredients() ([]domain.Ingredient, error) {
	rows, err := r.DB.Query(`
		SELECT id, name, COALESCE(unit, ''), current_stock, alert_threshold, cost_per_unit
		FROM ingredients
		ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ingredients []domain.Ingredient
	for rows.Next() {
		var ing domain.Ingredient
		if err := rows.Scan(&ing.ID, &ing.Name, &ing.Unit, &ing.Quantity, &ing.Threshold, &ing.Cost); err != nil {
			continue
		}
		ingredients = append(ingredients, ing)
	}
	return ingredients, nil
}

func (r *PostgresRepository) CreateOrder(order *domain.Order) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`
		INSERT INTO orders (id, table_no, guest_count, total_amount, status, is_reservation, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, order.ID, order.TableNo, order.GuestCount, order.Total, order.Status, order.IsReservation, order.CreatedAt); err != nil {
		return err
	}

	for _, item := range order.Items {
		if _, err := tx.Exec(`
			INSERT INTO order_items (order_id, dish_id, dish_name, quantity, price)
			VALUES ($1, $2, $3, $4, $5)
		`, order.ID, item.ID, item.Name, item.Count, item.Price); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *PostgresRepository) InitSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS dishes (
			id SERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			price NUMERIC(10, 2) NOT NULL,
			image_url TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS ingredients (
			id SERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			unit VARCHAR(50),
			current_stock NUMERIC(10, 2) DEFAULT 0,
			alert_threshold NUMERIC(10, 2) DEFAULT 2,
			cost_per_unit NUMERIC(10, 2) DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id VARCHAR(64) PRIMARY KEY,
			table_no VARCHAR(50),
			guest_count INT,
			total_amount NUMERIC(10, 2),
			status VARCHAR(50) DEFAULT 'pending',
			is_reservation BOOLEAN DEFAULT FALSE,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS order_items (
			id SERIAL PRIMARY KEY,
			order_id VARCHAR(64) REFERENCES orders(id),
			dish_id INT,
			dish_name VARCHAR(255),
			quantity INT,
			price NUMERIC(10, 2)
		)`,
	}
	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}
	return nil
}
