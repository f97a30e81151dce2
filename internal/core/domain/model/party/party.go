package party

import (
	"errors"
	"fmt"

	"farmlink/internal/core/domain/model/kernel"
	"farmlink/internal/pkg/errs"
)

// ErrPartyIsNotConstructed is returned when a Party was not created through
// NewParty or RestoreParty.
var ErrPartyIsNotConstructed = errors.New("Party must be created via NewParty or RestoreParty")

// Role distinguishes the three marketplace participants.
type Role string

const (
	RoleFarmer      Role = "farmer"
	RoleRestaurant  Role = "restaurant"
	RoleTransporter Role = "transporter"
)

// Validate checks the role against the known set.
func (r Role) Validate() error {
	switch r {
	case RoleFarmer, RoleRestaurant, RoleTransporter:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%q is not a valid role", string(r)))
	}
}

// String implements fmt.Stringer.
func (r Role) String() string {
	return string(r)
}

// Party is a marketplace participant: a farmer, a restaurant, or a
// transporter. It carries the running totalOrders counter that order
// placement and acceptance bump.
type Party struct {
	id          kernel.UUID
	name        string
	phone       string
	role        Role
	location    kernel.GeoPoint
	totalOrders int

	isConstructed bool
}

// NewParty creates a party with a zero order counter.
func NewParty(
	id kernel.UUID,
	name string,
	phone string,
	role Role,
	location kernel.GeoPoint,
) (*Party, error) {
	p := &Party{isConstructed: true}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setRole(role),
		p.setLocation(location),
	); err != nil {
		return nil, err
	}

	p.phone = phone
	return p, nil
}

// RestoreParty rebuilds a party from persistence.
func RestoreParty(
	id kernel.UUID,
	name string,
	phone string,
	role Role,
	location kernel.GeoPoint,
	totalOrders int,
) (*Party, error) {
	if err := errors.Join(
		id.Validate(),
		role.Validate(),
		location.Validate(),
	); err != nil {
		return nil, err
	}

	return &Party{
		id:            id,
		name:          name,
		phone:         phone,
		role:          role,
		location:      location,
		totalOrders:   totalOrders,
		isConstructed: true,
	}, nil
}

// Validate ensures the party was built through a constructor.
func (p *Party) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPartyIsNotConstructed
	}
	return nil
}

func (p *Party) ID() kernel.UUID           { return p.id }
func (p *Party) Name() string              { return p.name }
func (p *Party) Phone() string             { return p.phone }
func (p *Party) Role() Role                { return p.role }
func (p *Party) Location() kernel.GeoPoint { return p.location }
func (p *Party) TotalOrders() int          { return p.totalOrders }

// IsEqual compares two parties by identifier.
func (p *Party) IsEqual(other *Party) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// IncrementTotalOrders bumps the running order counter.
func (p *Party) IncrementTotalOrders() {
	p.totalOrders++
}

func (p *Party) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Party) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Party) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	p.role = role
	return nil
}

func (p *Party) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	p.location = location
	return nil
}
