package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"farmlink/internal/core/domain/model/kernel"
	"farmlink/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// estimatedDeliveryWindow is the promised delivery window from placement.
const estimatedDeliveryWindow = 24 * time.Hour

// Order is the aggregate root for a farm-to-restaurant delivery order. It
// owns the delivery status state machine, the transporter assignment, the
// quality verification, the complaint log, and the settlement state.
//
// Invariants:
//   - status only moves along the transitions defined on Status
//   - transporterID is set at most once, by Accept
//   - at most one quality verification exists, recorded during picked_up
//   - complaints are append-only
//   - settlement happens once; a repeated settle conflicts
type Order struct {
	id            kernel.UUID
	farmerID      kernel.UUID
	restaurantID  kernel.UUID
	transporterID *kernel.UUID

	lineItems   []LineItem
	totalAmount float64
	totalWeight float64

	distanceKm              float64
	deliveryFee             int
	farmerDeliveryShare     float64
	restaurantDeliveryShare float64

	pickupLocation   kernel.GeoPoint
	deliveryLocation kernel.GeoPoint

	status                Status
	notes                 string
	createdAt             time.Time
	estimatedDeliveryTime time.Time
	actualDeliveryTime    *time.Time

	qualityVerification *QualityVerification
	complaints          []Complaint

	paymentStatus  PaymentStatus
	paymentDetails *PaymentDetails
	refundDetails  *RefundDetails

	isConstructed bool
}

// NewOrder creates an order in pending status. The caller supplies the
// delivery fee and its split, computed by services.DeliveryPricer from the
// same distance and the total weight of the line items.
//
// The estimated delivery time is the placement time plus 24 hours.
func NewOrder(
	id kernel.UUID,
	farmerID kernel.UUID,
	restaurantID kernel.UUID,
	lineItems []LineItem,
	distanceKm float64,
	deliveryFee int,
	farmerDeliveryShare float64,
	restaurantDeliveryShare float64,
	pickupLocation kernel.GeoPoint,
	deliveryLocation kernel.GeoPoint,
	notes string,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:        StatusPending,
		paymentStatus: PaymentPending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setFarmerID(farmerID),
		o.setRestaurantID(restaurantID),
		o.setLineItems(lineItems),
		o.setDistanceKm(distanceKm),
		o.setDeliveryFee(deliveryFee),
		o.setPickupLocation(pickupLocation),
		o.setDeliveryLocation(deliveryLocation),
	); err != nil {
		return nil, err
	}

	o.farmerDeliveryShare = farmerDeliveryShare
	o.restaurantDeliveryShare = restaurantDeliveryShare
	o.notes = notes
	o.createdAt = now
	o.estimatedDeliveryTime = now.Add(estimatedDeliveryWindow)

	for _, li := range o.lineItems {
		o.totalAmount += li.Subtotal()
		o.totalWeight += li.Weight()
	}

	return o, nil
}

// RestoreOrderParams carries every persisted field of an order.
type RestoreOrderParams struct {
	ID            kernel.UUID
	FarmerID      kernel.UUID
	RestaurantID  kernel.UUID
	TransporterID *kernel.UUID

	LineItems   []LineItem
	TotalAmount float64
	TotalWeight float64

	DistanceKm              float64
	DeliveryFee             int
	FarmerDeliveryShare     float64
	RestaurantDeliveryShare float64

	PickupLocation   kernel.GeoPoint
	DeliveryLocation kernel.GeoPoint

	Status                Status
	Notes                 string
	CreatedAt             time.Time
	EstimatedDeliveryTime time.Time
	ActualDeliveryTime    *time.Time

	QualityVerification *QualityVerification
	Complaints          []Complaint

	PaymentStatus  PaymentStatus
	PaymentDetails *PaymentDetails
	RefundDetails  *RefundDetails
}

// RestoreOrder rebuilds an order aggregate from persistence. Business
// invariants were enforced when the row was written; only structural validity
// is re-checked here.
func RestoreOrder(params RestoreOrderParams) (*Order, error) {
	if err := errors.Join(
		params.ID.Validate(),
		params.FarmerID.Validate(),
		params.RestaurantID.Validate(),
		params.Status.Validate(),
		params.PaymentStatus.Validate(),
		params.PickupLocation.Validate(),
		params.DeliveryLocation.Validate(),
	); err != nil {
		return nil, err
	}
	if params.TransporterID != nil {
		if err := params.TransporterID.Validate(); err != nil {
			return nil, err
		}
	}

	return &Order{
		id:                      params.ID,
		farmerID:                params.FarmerID,
		restaurantID:            params.RestaurantID,
		transporterID:           params.TransporterID,
		lineItems:               params.LineItems,
		totalAmount:             params.TotalAmount,
		totalWeight:             params.TotalWeight,
		distanceKm:              params.DistanceKm,
		deliveryFee:             params.DeliveryFee,
		farmerDeliveryShare:     params.FarmerDeliveryShare,
		restaurantDeliveryShare: params.RestaurantDeliveryShare,
		pickupLocation:          params.PickupLocation,
		deliveryLocation:        params.DeliveryLocation,
		status:                  params.Status,
		notes:                   params.Notes,
		createdAt:               params.CreatedAt,
		estimatedDeliveryTime:   params.EstimatedDeliveryTime,
		actualDeliveryTime:      params.ActualDeliveryTime,
		qualityVerification:     params.QualityVerification,
		complaints:              params.Complaints,
		paymentStatus:           params.PaymentStatus,
		paymentDetails:          params.PaymentDetails,
		refundDetails:           params.RefundDetails,
		isConstructed:           true,
	}, nil
}

// Validate ensures the order was built through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) ID() kernel.UUID                  { return o.id }
func (o *Order) FarmerID() kernel.UUID            { return o.farmerID }
func (o *Order) RestaurantID() kernel.UUID        { return o.restaurantID }
func (o *Order) TransporterID() *kernel.UUID      { return o.transporterID }
func (o *Order) LineItems() []LineItem            { return o.lineItems }
func (o *Order) TotalAmount() float64             { return o.totalAmount }
func (o *Order) TotalWeight() float64             { return o.totalWeight }
func (o *Order) DistanceKm() float64              { return o.distanceKm }
func (o *Order) DeliveryFee() int                 { return o.deliveryFee }
func (o *Order) FarmerDeliveryShare() float64     { return o.farmerDeliveryShare }
func (o *Order) RestaurantDeliveryShare() float64 { return o.restaurantDeliveryShare }
func (o *Order) PickupLocation() kernel.GeoPoint  { return o.pickupLocation }
func (o *Order) DeliveryLocation() kernel.GeoPoint {
	return o.deliveryLocation
}
func (o *Order) Status() Status                   { return o.status }
func (o *Order) Notes() string                    { return o.notes }
func (o *Order) CreatedAt() time.Time             { return o.createdAt }
func (o *Order) EstimatedDeliveryTime() time.Time { return o.estimatedDeliveryTime }
func (o *Order) ActualDeliveryTime() *time.Time   { return o.actualDeliveryTime }
func (o *Order) QualityVerification() *QualityVerification {
	return o.qualityVerification
}
func (o *Order) Complaints() []Complaint          { return o.complaints }
func (o *Order) PaymentStatus() PaymentStatus     { return o.paymentStatus }
func (o *Order) PaymentDetails() *PaymentDetails  { return o.paymentDetails }
func (o *Order) RefundDetails() *RefundDetails    { return o.refundDetails }

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// Confirm moves a pending order to confirmed. Only the order's farmer may
// confirm it.
func (o *Order) Confirm(callerID kernel.UUID) error {
	if !callerID.IsEqual(o.farmerID) {
		return errs.NewUnauthorizedError("confirm order")
	}

	newStatus, err := o.status.Confirm()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel moves a pending or confirmed order to cancelled. Only the order's
// farmer may cancel; the reason is appended to the order notes. The caller is
// responsible for releasing the reserved crop quantity.
func (o *Order) Cancel(callerID kernel.UUID, reason string) error {
	if !callerID.IsEqual(o.farmerID) {
		return errs.NewUnauthorizedError("cancel order")
	}

	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	if reason != "" {
		o.appendNote(fmt.Sprintf("cancelled: %s", reason))
	}
	return nil
}

// Accept assigns a confirmed, unassigned order to a transporter. The
// assignment is set-once: accepting an already assigned order fails with a
// conflict, which lets concurrent accepts race safely. The order's status is
// not advanced by acceptance.
func (o *Order) Accept(transporterID kernel.UUID) error {
	if err := transporterID.Validate(); err != nil {
		return err
	}
	if o.transporterID != nil {
		return errs.NewConflictError("order", o.id.String())
	}
	if o.status != StatusConfirmed {
		return errs.NewObjectNotFoundError("order", o.id.String())
	}

	o.transporterID = &transporterID
	return nil
}

// MarkPickedUp records that the assigned transporter collected the order
// from the farm.
func (o *Order) MarkPickedUp(callerID kernel.UUID) error {
	if err := o.validateTransporter(callerID, "mark order picked up"); err != nil {
		return err
	}

	newStatus, err := o.status.PickUp()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// VerifyQuality records the transporter's quality check. It is allowed only
// while the order is picked_up, only by the assigned transporter, and only
// once.
func (o *Order) VerifyQuality(callerID kernel.UUID, score int, notes string, now time.Time) error {
	if err := o.validateTransporter(callerID, "verify quality"); err != nil {
		return err
	}
	if o.status != StatusPickedUp {
		return errs.NewObjectNotFoundError("order", o.id.String())
	}
	if o.qualityVerification != nil {
		return errs.NewConflictError("quality verification", o.id.String())
	}

	qv, err := newQualityVerification(callerID, score, notes, now)
	if err != nil {
		return err
	}

	o.qualityVerification = &qv
	return nil
}

// MarkInTransit records that the transporter is en route to the restaurant.
func (o *Order) MarkInTransit(callerID kernel.UUID) error {
	if err := o.validateTransporter(callerID, "mark order in transit"); err != nil {
		return err
	}

	newStatus, err := o.status.StartTransit()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// MarkDelivered completes the delivery and records the actual delivery time.
func (o *Order) MarkDelivered(callerID kernel.UUID, now time.Time) error {
	if err := o.validateTransporter(callerID, "mark order delivered"); err != nil {
		return err
	}

	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.actualDeliveryTime = &now
	return nil
}

// RaiseComplaint appends a complaint to the order. Only the restaurant or
// the assigned transporter may raise one.
func (o *Order) RaiseComplaint(raisedBy kernel.UUID, description string, now time.Time) (Complaint, error) {
	if !raisedBy.IsEqual(o.restaurantID) &&
		(o.transporterID == nil || !raisedBy.IsEqual(*o.transporterID)) {
		return Complaint{}, errs.NewUnauthorizedError("raise complaint")
	}

	c, err := newComplaint(raisedBy, description, now)
	if err != nil {
		return Complaint{}, err
	}

	o.complaints = append(o.complaints, c)
	return c, nil
}

// ResolveComplaint marks an open complaint as resolved.
func (o *Order) ResolveComplaint(complaintID kernel.UUID, resolution string, now time.Time) error {
	if resolution == "" {
		return errs.NewValueIsRequiredError("resolution")
	}

	for i := range o.complaints {
		if !o.complaints[i].id.IsEqual(complaintID) {
			continue
		}
		if o.complaints[i].resolved {
			return errs.NewConflictError("complaint", complaintID.String())
		}
		o.complaints[i].resolved = true
		o.complaints[i].resolution = resolution
		o.complaints[i].resolvedAt = &now
		return nil
	}

	return errs.NewObjectNotFoundError("complaint", complaintID.String())
}

// Settle records payment for the order. Only the restaurant may settle, and
// only once: settling an already paid order conflicts, so a retried payment
// callback cannot re-open the payout legs.
//
// Settlement opens the farmer's payout leg in processing status. The
// transporter's leg opens in processing when a transporter is assigned and
// completed otherwise; there is nothing to pay out on an unassigned order.
// The deferred completion sweep finishes the processing legs.
func (o *Order) Settle(callerID kernel.UUID, paymentRef string, now time.Time) error {
	if !callerID.IsEqual(o.restaurantID) {
		return errs.NewUnauthorizedError("settle payment")
	}
	if o.paymentStatus == PaymentPaid {
		return errs.NewConflictError("payment", o.id.String())
	}
	if o.paymentStatus != PaymentPending {
		return errs.NewObjectNotFoundError("order", o.id.String())
	}
	if paymentRef == "" {
		return errs.NewValueIsRequiredError("paymentRef")
	}

	transporterLeg := TransferCompleted
	if o.transporterID != nil {
		transporterLeg = TransferProcessing
	}

	o.paymentStatus = PaymentPaid
	o.paymentDetails = &PaymentDetails{
		paymentRef:                paymentRef,
		farmerTransferStatus:      TransferProcessing,
		transporterTransferStatus: transporterLeg,
		settledAt:                 now,
	}
	return nil
}

// CompleteTransfers finishes both payout legs of a settled order. Calling it
// on already completed legs is a no-op.
func (o *Order) CompleteTransfers() error {
	if o.paymentStatus != PaymentPaid || o.paymentDetails == nil {
		return errs.NewObjectNotFoundError("order", o.id.String())
	}

	o.paymentDetails.farmerTransferStatus = TransferCompleted
	o.paymentDetails.transporterTransferStatus = TransferCompleted
	return nil
}

// Refund reverses payment on a paid order. A non-positive amount defaults to
// the goods total plus the restaurant's delivery share, the full sum the
// restaurant paid.
func (o *Order) Refund(amount float64, reason string, now time.Time) error {
	if o.paymentStatus != PaymentPaid {
		return errs.NewObjectNotFoundError("order", o.id.String())
	}
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	if amount <= 0 {
		amount = o.totalAmount + o.restaurantDeliveryShare
	}

	o.paymentStatus = PaymentRefunded
	o.refundDetails = &RefundDetails{
		amount:     amount,
		reason:     reason,
		refundedAt: now,
	}
	return nil
}

func (o *Order) validateTransporter(callerID kernel.UUID, operation string) error {
	if o.transporterID == nil || !callerID.IsEqual(*o.transporterID) {
		return errs.NewUnauthorizedError(operation)
	}
	return nil
}

func (o *Order) appendNote(note string) {
	if o.notes == "" {
		o.notes = note
		return
	}
	o.notes = strings.Join([]string{o.notes, note}, "; ")
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setFarmerID(farmerID kernel.UUID) error {
	if err := farmerID.Validate(); err != nil {
		return err
	}
	o.farmerID = farmerID
	return nil
}

func (o *Order) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	o.restaurantID = restaurantID
	return nil
}

func (o *Order) setLineItems(lineItems []LineItem) error {
	if len(lineItems) == 0 {
		return errs.NewValueIsRequiredError("lineItems")
	}
	o.lineItems = lineItems
	return nil
}

func (o *Order) setDistanceKm(distanceKm float64) error {
	if distanceKm < 0 {
		return errs.NewValueIsInvalidErrorWithCause("distanceKm",
			fmt.Errorf("%v is negative", distanceKm))
	}
	o.distanceKm = distanceKm
	return nil
}

func (o *Order) setDeliveryFee(deliveryFee int) error {
	if deliveryFee < 0 {
		return errs.NewValueIsInvalidErrorWithCause("deliveryFee",
			fmt.Errorf("%d is negative", deliveryFee))
	}
	o.deliveryFee = deliveryFee
	return nil
}

func (o *Order) setPickupLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	o.pickupLocation = location
	return nil
}

func (o *Order) setDeliveryLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	o.deliveryLocation = location
	return nil
}
