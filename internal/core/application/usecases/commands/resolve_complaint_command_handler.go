package commands

import (
	"context"
	"time"
)

// ResolveComplaintCommandHandler marks a complaint as resolved. The complaint
// stays in the order's log.
type ResolveComplaintCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewResolveComplaintCommandHandler creates a handler for resolving complaints.
func NewResolveComplaintCommandHandler(uowFactory OrderUoWFactory) ResolveComplaintCommandHandler {
	return ResolveComplaintCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the resolution command.
func (h *ResolveComplaintCommandHandler) Handle(ctx context.Context, cmd ResolveComplaintCommand) error {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.ResolveComplaint(cmd.ComplaintID(), cmd.Resolution(), time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate, aggregate.Status()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
