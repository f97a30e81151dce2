package http

import (
	"net/http"
	"time"

	"farmlink/internal/core/application/usecases/commands"
	"farmlink/internal/core/application/usecases/queries"
	"farmlink/internal/core/domain/model/crop"
	"farmlink/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

type createCropRequest struct {
	ID            string    `json:"id"`
	FarmerID      string    `json:"farmer_id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	Price         float64   `json:"price"`
	Unit          string    `json:"unit"`
	Quantity      float64   `json:"quantity"`
	WeightPerUnit float64   `json:"weight_per_unit"`
	HarvestDate   time.Time `json:"harvest_date"`
	Lat           float64   `json:"lat"`
	Lon           float64   `json:"lon"`
	Organic       bool      `json:"organic"`
	Quality       string    `json:"quality"`
	Voice         bool      `json:"voice"`
}

type cropListingResponse struct {
	ID                string    `json:"id"`
	FarmerID          string    `json:"farmer_id"`
	Name              string    `json:"name"`
	Category          string    `json:"category"`
	Price             float64   `json:"price"`
	Unit              string    `json:"unit"`
	AvailableQuantity float64   `json:"available_quantity"`
	Organic           bool      `json:"organic"`
	Quality           string    `json:"quality"`
	HarvestDate       time.Time `json:"harvest_date"`
}

// CreateCrop handles POST /api/v1/crops.
func (s *Server) CreateCrop(ctx echo.Context) error {
	var req createCropRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cropID, err := kernel.UUIDFromString(req.ID)
	if err != nil {
		return respondError(ctx, err)
	}
	farmerID, err := kernel.UUIDFromString(req.FarmerID)
	if err != nil {
		return respondError(ctx, err)
	}
	location, err := kernel.NewGeoPoint(req.Lat, req.Lon)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCreateCropCommand(commands.CreateCropParams{
		CropID:        cropID,
		FarmerID:      farmerID,
		Name:          req.Name,
		Description:   req.Description,
		Category:      crop.Category(req.Category),
		Price:         req.Price,
		Unit:          crop.Unit(req.Unit),
		Quantity:      req.Quantity,
		WeightPerUnit: req.WeightPerUnit,
		HarvestDate:   req.HarvestDate,
		Location:      location,
		Organic:       req.Organic,
		Quality:       crop.Quality(req.Quality),
		Voice:         req.Voice,
	})
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.CreateCrop.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetAvailableCrops handles GET /api/v1/crops. An optional category query
// parameter narrows the catalogue.
func (s *Server) GetAvailableCrops(ctx echo.Context) error {
	query, err := queries.NewGetAvailableCropsQuery(crop.Category(ctx.QueryParam("category")))
	if err != nil {
		return respondError(ctx, err)
	}

	crops, err := s.handlers.AvailableCrops.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]cropListingResponse, len(crops))
	for i, c := range crops {
		response[i] = cropListingResponse{
			ID:                c.ID.String(),
			FarmerID:          c.FarmerID.String(),
			Name:              c.Name,
			Category:          c.Category,
			Price:             c.Price,
			Unit:              c.Unit,
			AvailableQuantity: c.AvailableQuantity,
			Organic:           c.Organic,
			Quality:           c.Quality,
			HarvestDate:       c.HarvestDate,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}
