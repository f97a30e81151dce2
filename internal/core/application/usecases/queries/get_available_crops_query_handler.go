package queries

import (
	"context"

	"farmlink/internal/core/domain/model/crop"
	"farmlink/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAvailableCropsQueryHandler reads the crop catalogue from the database.
type GetAvailableCropsQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableCropsQueryHandler creates a handler for catalogue queries.
func NewGetAvailableCropsQueryHandler(db *gorm.DB) GetAvailableCropsQueryHandler {
	return GetAvailableCropsQueryHandler{db: db}
}

// Handle executes the query. Freshest harvests come first.
func (h GetAvailableCropsQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableCropsQuery,
) ([]GetAvailableCropsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			farmer_id,
			name,
			category,
			price,
			unit,
			available_quantity,
			organic,
			quality,
			harvest_date
		FROM crops
		WHERE status = ?
	`
	args := []any{crop.StatusAvailable}
	if query.Category() != "" {
		sql += " AND category = ?"
		args = append(args, query.Category())
	}
	sql += " ORDER BY harvest_date DESC"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	crops := make([]GetAvailableCropsQueryResponse, 0)
	for rows.Next() {
		var resp GetAvailableCropsQueryResponse
		var id, farmerID uuid.UUID

		if err = rows.Scan(
			&id,
			&farmerID,
			&resp.Name,
			&resp.Category,
			&resp.Price,
			&resp.Unit,
			&resp.AvailableQuantity,
			&resp.Organic,
			&resp.Quality,
			&resp.HarvestDate,
		); err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.FarmerID, err = kernel.UUIDFromBytes(farmerID[:]); err != nil {
			return nil, err
		}
		crops = append(crops, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return crops, nil
}
