package main

import (
	"database/sql"
	"fmt"

	"github.com/MananRadadiya/Gaming-Store-sub001/internal/address"
	"github.com/MananRadadiya/Gaming-Store-sub001/internal/cart"
	"github.com/MananRadadiya/Gaming-Store-sub001/internal/catalog"
	"github.com/MananRadadiya/Gaming-Store-sub001/internal/logging"
	"github.com/MananRadadiya/Gaming-Store-sub001/internal/order"
	"github.com/MananRadadiya/Gaming-Store-sub001/internal/savedbuild"
	"github.com/MananRadadiya/Gaming-Store-sub001/internal/user"
	"github.com/MananRadadiya/Gaming-Store-sub001/internal/wishlist"
)

// stores groups the repositories one server instance runs on.
type stores struct {
	catalog   catalog.Repository
	users     user.Repository
	carts     cart.Repository
	wishlists wishlist.Repository
	builds    savedbuild.Repository
	orders    order.Repository
	addresses address.Repository
}

func memoryStores() stores {
	return stores{
		catalog:   catalog.NewInMemoryRepository(catalog.DefaultItems()),
		users:     user.NewInMemoryRepository(nil),
		carts:     cart.NewInMemoryRepository(),
		wishlists: wishlist.NewInMemoryRepository(),
		builds:    savedbuild.NewInMemoryRepository(),
		orders:    order.NewInMemoryRepository(),
		addresses: address.NewInMemoryRepository(),
	}
}

// postgresStores creates missing tables and seeds an empty catalog with the
// default stock.
func postgresStores(db *sql.DB) (stores, error) {
	for _, q := range []string{
		catalog.CreateTableQuery,
		user.CreateTableQuery,
		cart.CreateTableQuery,
		wishlist.CreateTableQuery,
		savedbuild.CreateTableQuery,
		order.CreateTableQuery,
		address.CreateTableQuery,
	} {
		if _, err := db.Exec(q); err != nil {
			return stores{}, fmt.Errorf("create tables: %w", err)
		}
	}

	catalogRepo := catalog.NewPostgresRepository(db)
	items, err := catalogRepo.List()
	if err != nil {
		return stores{}, fmt.Errorf("load catalog: %w", err)
	}
	if len(items) == 0 {
		if err := catalogRepo.Reset(catalog.DefaultItems()); err != nil {
			return stores{}, fmt.Errorf("seed catalog: %w", err)
		}
		logging.Info().Int("items", len(catalog.DefaultItems())).Msg("seeded empty catalog")
	}

	return stores{
		catalog:   catalogRepo,
		users:     user.NewPostgresRepository(db),
		carts:     cart.NewPostgresRepository(db),
		wishlists: wishlist.NewPostgresRepository(db),
		builds:    savedbuild.NewPostgresRepository(db),
		orders:    order.NewPostgresRepository(db),
		addresses: address.NewPostgresRepository(db),
	}, nil
}
