package postgres

import (
	"context"
	"fmt"

	"restaurant/internal/adapters/out/postgres/customerrepo"
	"restaurant/internal/adapters/out/postgres/orderrepo"
	"restaurant/internal/pkg/dberr"

	"gorm.io/gorm"
)

// Migrate creates the clientes and ordenes tables with their constraints
// when absent. It is idempotent and must succeed before the service accepts
// traffic.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(
		&customerrepo.CustomerDTO{},
		&orderrepo.OrderDTO{},
	); err != nil {
		return dberr.Wrap(fmt.Errorf("migrate schema: %w", err))
	}
	return nil
}
