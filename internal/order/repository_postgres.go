package order

import (
	"database/sql"

	"github.com/goccy/go-json"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	CreateTableQuery = `
		CREATE TABLE IF NOT EXISTS orders (
			order_id       BIGSERIAL PRIMARY KEY,
			user_id        INT NOT NULL,
			items          JSONB NOT NULL,
			quantity       INT NOT NULL,
			total_price    INT NOT NULL,
			shipping_price INT NOT NULL,
			grand_price    INT NOT NULL,
			status         TEXT NOT NULL,
			shipping_address JSONB,
			created_at     TEXT,
			updated_at     TEXT
		)
	`

	createOrderQuery = `
		INSERT INTO orders (user_id, items, quantity, total_price, shipping_price, grand_price, status, shipping_address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING order_id
	`
	listOrdersQuery = `
		SELECT order_id, items, quantity, total_price, shipping_price, grand_price, status, shipping_address, created_at, updated_at
		FROM orders
		WHERE user_id = $1
		ORDER BY order_id DESC
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(userID int, ord Order) (Order, error) {
	items, err := json.Marshal(ord.Items)
	if err != nil {
		return Order{}, err
	}
	var shipTo any
	if ord.ShippingAddress != nil {
		b, err := json.Marshal(ord.ShippingAddress)
		if err != nil {
			return Order{}, err
		}
		shipTo = b
	}
	err = r.db.QueryRow(createOrderQuery,
		userID, items, ord.Quantity, ord.TotalPrice, ord.ShippingPrice, ord.GrandPrice,
		ord.Status, shipTo, ord.CreatedAt, ord.UpdatedAt,
	).Scan(&ord.OrderID)
	if err != nil {
		return Order{}, err
	}
	return ord, nil
}

func (r *PostgresRepository) ListByUser(userID int) ([]Order, error) {
	rows, err := r.db.Query(listOrdersQuery, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]Order, 0)
	for rows.Next() {
		var (
			ord                  Order
			items, shipTo        []byte
			createdAt, updatedAt sql.NullString
		)
		if err := rows.Scan(&ord.OrderID, &items, &ord.Quantity, &ord.TotalPrice, &ord.ShippingPrice,
			&ord.GrandPrice, &ord.Status, &shipTo, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(items, &ord.Items); err != nil {
			return nil, err
		}
		if len(shipTo) > 0 {
			if err := json.Unmarshal(shipTo, &ord.ShippingAddress); err != nil {
				return nil, err
			}
		}
		ord.CreatedAt = createdAt.String
		ord.UpdatedAt = updatedAt.String
		orders = append(orders, ord)
	}
	return orders, rows.Err()
}
