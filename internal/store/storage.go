package store

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type Storage struct {
	Orders interface {
		LoadOrderItems(ctx context.Context) ([]OrderItemRow, error)
	}
}

func NewStorage(db *sqlx.DB) *Storage {
	return &Storage{
		Orders: &OrdersStore{db: db},
	}
}
