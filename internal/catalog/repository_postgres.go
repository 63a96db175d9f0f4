package catalog

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	itemColumns = `category, item_id, title, brand, image, price, discount_price, tier, fps_1080, fps_1440, fps_4k, refresh_rate, resolution`

	listItemsQuery = `
		SELECT ` + itemColumns + `
		FROM gaming_product
		ORDER BY position, item_id
	`
	listItemsByCategoryQuery = `
		SELECT ` + itemColumns + `
		FROM gaming_product
		WHERE category = $1
		ORDER BY position, item_id
	`
	getItemQuery = `
		SELECT ` + itemColumns + `
		FROM gaming_product
		WHERE category = $1 AND item_id = $2
	`
	getItemsByKeyQuery = `
		SELECT ` + itemColumns + `
		FROM gaming_product
		WHERE category || ':' || item_id = ANY($1::text[])
		ORDER BY array_position($1::text[], category || ':' || item_id)
	`
	insertItemQuery = `
		INSERT INTO gaming_product (` + itemColumns + `, position)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,
			(SELECT COALESCE(MAX(position), 0) + 1 FROM gaming_product))
		ON CONFLICT (category, item_id) DO NOTHING
		RETURNING item_id
	`
	insertItemAtQuery = `
		INSERT INTO gaming_product (` + itemColumns + `, position)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
	`
	updateItemQuery = `
		UPDATE gaming_product
		SET title = $3,
			brand = $4,
			image = $5,
			price = $6,
			discount_price = $7,
			tier = $8,
			fps_1080 = $9,
			fps_1440 = $10,
			fps_4k = $11,
			refresh_rate = $12,
			resolution = $13
		WHERE category = $1 AND item_id = $2
	`
	deleteItemQuery = `DELETE FROM gaming_product WHERE category = $1 AND item_id = $2`

	// CreateTableQuery is executed at startup by cmd/app.
	CreateTableQuery = `
		CREATE TABLE IF NOT EXISTS gaming_product (
			category TEXT NOT NULL,
			item_id TEXT NOT NULL,
			title TEXT NOT NULL,
			brand TEXT,
			image TEXT,
			price INT NOT NULL,
			discount_price INT NOT NULL,
			tier TEXT NOT NULL,
			fps_1080 INT,
			fps_1440 INT,
			fps_4k INT,
			refresh_rate INT,
			resolution TEXT,
			position INT NOT NULL DEFAULT 0,
			PRIMARY KEY (category, item_id)
		)
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() ([]Item, error) {
	rows, err := r.db.Query(listItemsQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanItems(rows)
}

func (r *PostgresRepository) ListByCategory(cat Category) ([]Item, error) {
	rows, err := r.db.Query(listItemsByCategoryQuery, string(cat))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanItems(rows)
}

func (r *PostgresRepository) Get(cat Category, id string) (Item, error) {
	it, err := scanItem(r.db.QueryRow(getItemQuery, string(cat), id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Item{}, ErrNotFound
		}
		return Item{}, err
	}
	return it, nil
}

func (r *PostgresRepository) GetMany(keys []string) ([]Item, error) {
	if len(keys) == 0 {
		return []Item{}, nil
	}
	rows, err := r.db.Query(getItemsByKeyQuery, pq.Array(keys))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanItems(rows)
}

func (r *PostgresRepository) Create(it Item) (Item, error) {
	var id string
	err := r.db.QueryRow(insertItemQuery, itemArgs(it)...).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Item{}, ErrDuplicate
		}
		return Item{}, err
	}
	return it, nil
}

func (r *PostgresRepository) Update(cat Category, id string, it Item) (Item, error) {
	it.Category = cat
	it.ID = id
	result, err := r.db.Exec(updateItemQuery, itemArgs(it)...)
	if err != nil {
		return Item{}, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return Item{}, err
	}
	if affected == 0 {
		return Item{}, ErrNotFound
	}
	return it, nil
}

func (r *PostgresRepository) Delete(cat Category, id string) error {
	result, err := r.db.Exec(deleteItemQuery, string(cat), id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Reset deletes all items and inserts the provided list in a single
// transaction, numbering positions in slice order.
func (r *PostgresRepository) Reset(items []Item) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.Exec(`DELETE FROM gaming_product`); err != nil {
		return err
	}
	for i, it := range items {
		args := append(itemArgs(it), i+1)
		if _, err := tx.Exec(insertItemAtQuery, args...); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func itemArgs(it Item) []any {
	return []any{
		string(it.Category),
		it.ID,
		it.Title,
		it.Brand,
		nullString(it.Image),
		it.Price,
		it.DiscountPrice,
		string(it.Tier),
		nullInt(it.FPS1080),
		nullInt(it.FPS1440),
		nullInt(it.FPS4K),
		nullInt(it.RefreshRate),
		nullString(string(it.Resolution)),
	}
}

func nullInt(v int) sql.NullInt64 {
	return sql.NullInt64{Int64: int64(v), Valid: v != 0}
}

func nullString(v string) sql.NullString {
	return sql.NullString{String: v, Valid: v != ""}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItems(rows *sql.Rows) ([]Item, error) {
	out := make([]Item, 0)
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func scanItem(scanner rowScanner) (Item, error) {
	var (
		it                     Item
		category, tier         string
		brand, image, res      sql.NullString
		fps1080, fps1440, fps4 sql.NullInt64
		refresh                sql.NullInt64
	)
	if err := scanner.Scan(
		&category,
		&it.ID,
		&it.Title,
		&brand,
		&image,
		&it.Price,
		&it.DiscountPrice,
		&tier,
		&fps1080,
		&fps1440,
		&fps4,
		&refresh,
		&res,
	); err != nil {
		return Item{}, err
	}

	it.Category = Category(category)
	it.Tier = Tier(tier)
	it.Brand = brand.String
	it.Image = image.String
	it.Resolution = Resolution(res.String)
	it.FPS1080 = int(fps1080.Int64)
	it.FPS1440 = int(fps1440.Int64)
	it.FPS4K = int(fps4.Int64)
	it.RefreshRate = int(refresh.Int64)
	return it, nil
}
