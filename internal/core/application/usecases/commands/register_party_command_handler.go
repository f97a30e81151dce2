package commands

import (
	"context"

	"farmlink/internal/core/domain/model/party"
)

// RegisterPartyCommandHandler persists a new marketplace party.
type RegisterPartyCommandHandler struct {
	uowFactory MarketUoWFactory
}

// NewRegisterPartyCommandHandler creates a handler for party registration.
func NewRegisterPartyCommandHandler(uowFactory MarketUoWFactory) RegisterPartyCommandHandler {
	return RegisterPartyCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command.
func (h *RegisterPartyCommandHandler) Handle(ctx context.Context, cmd RegisterPartyCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := party.NewParty(cmd.PartyID(), cmd.Name(), cmd.Phone(), cmd.Role(), cmd.Location())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.PartyRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
