package commands

import (
	"errors"

	"farmlink/internal/core/domain/model/kernel"
	"farmlink/internal/core/domain/model/party"
	"farmlink/internal/pkg/guard"
)

var ErrRegisterPartyCommandIsNotConstructed = errors.New(
	"RegisterPartyCommand must be created via NewRegisterPartyCommand constructor",
)

// RegisterPartyCommand registers a farmer, restaurant, or transporter.
type RegisterPartyCommand struct { //nolint:recvcheck //using for validation
	partyID  kernel.UUID
	name     string
	phone    string
	role     party.Role
	location kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewRegisterPartyCommand creates a command to register a marketplace party.
func NewRegisterPartyCommand(
	partyID kernel.UUID,
	name string,
	phone string,
	role party.Role,
	location kernel.GeoPoint,
) (RegisterPartyCommand, error) {
	cmd := RegisterPartyCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		partyID.Validate(),
		role.Validate(),
		location.Validate(),
	); err != nil {
		return RegisterPartyCommand{}, err
	}

	cmd.partyID = partyID
	cmd.name = name
	cmd.phone = phone
	cmd.role = role
	cmd.location = location
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterPartyCommand) Validate() error {
	return c.guard.Validate(ErrRegisterPartyCommandIsNotConstructed)
}

func (c RegisterPartyCommand) PartyID() kernel.UUID      { return c.partyID }
func (c RegisterPartyCommand) Name() string              { return c.name }
func (c RegisterPartyCommand) Phone() string             { return c.phone }
func (c RegisterPartyCommand) Role() party.Role          { return c.role }
func (c RegisterPartyCommand) Location() kernel.GeoPoint { return c.location }
