package queries

import (
	"context"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/dberr"

	"gorm.io/gorm"
)

type CountOrdersByStatusQueryHandler struct {
	db *gorm.DB
}

func NewCountOrdersByStatusQueryHandler(db *gorm.DB) CountOrdersByStatusQueryHandler {
	return CountOrdersByStatusQueryHandler{db: db}
}

// Handle returns a count for every allowed status, zero included.
func (h CountOrdersByStatusQueryHandler) Handle(
	ctx context.Context,
	query CountOrdersByStatusQuery,
) (map[order.Status]int64, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	counts := make(map[order.Status]int64, len(order.AllowedStatuses()))
	for _, status := range order.AllowedStatuses() {
		counts[status] = 0
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT estado, COUNT(*)
		FROM ordenes
		GROUP BY estado
	`).Rows()
	if err != nil {
		return nil, dberr.Wrap(err)
	}
	defer rows.Close()

	if err = collectCounts(rows, counts); err != nil {
		return nil, err
	}

	return counts, nil
}
