package commands

import (
	"context"

	"farmlink/internal/core/domain/model/crop"
	"farmlink/internal/core/domain/model/party"
	"farmlink/internal/pkg/errs"
)

// CreateCropCommandHandler lists a new crop under an existing farmer.
type CreateCropCommandHandler struct {
	uowFactory MarketUoWFactory
}

// NewCreateCropCommandHandler creates a handler for crop listing.
func NewCreateCropCommandHandler(uowFactory MarketUoWFactory) CreateCropCommandHandler {
	return CreateCropCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the crop listing command.
func (h *CreateCropCommandHandler) Handle(ctx context.Context, cmd CreateCropCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	farmer, err := uow.PartyRepository().Get(ctx, cmd.FarmerID())
	if err != nil {
		return err
	}
	if err = farmer.Validate(); err != nil {
		return err
	}
	if farmer.Role() != party.RoleFarmer {
		return errs.NewObjectNotFoundError(party.RoleFarmer.String(), cmd.FarmerID().String())
	}

	construct := crop.NewCrop
	if cmd.Voice() {
		construct = crop.NewVoiceCrop
	}

	aggregate, err := construct(
		cmd.CropID(), cmd.FarmerID(),
		cmd.Name(), cmd.Description(), cmd.Category(),
		cmd.Price(), cmd.Unit(), cmd.Quantity(), cmd.WeightPerUnit(),
		cmd.HarvestDate(), cmd.Location(), cmd.Organic(), cmd.Quality(),
	)
	if err != nil {
		return err
	}

	if err = uow.CropRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
