package constant

type MovementType string

const (
	MovementReceipt     MovementType = "RECEIPT"
	MovementIssue       MovementType = "ISSUE"
	MovementAdjust      MovementType = "ADJUST"
	MovementTransferOut MovementType = "TRANSFER_OUT"
	MovementTransferIn  MovementType = "TRANSFER_IN"
	MovementReserveSoft MovementType = "RESERVE_SOFT"
	MovementReleaseSoft MovementType = "RELEASE_SOFT"
)

// AffectsOnHand reports whether movements of this type change quantity on hand.
func (m MovementType) AffectsOnHand() bool {
	return m != MovementReserveSoft && m != MovementReleaseSoft
}

type LocationType string

const (
	LocationPicking  LocationType = "picking"
	LocationBulk     LocationType = "bulk"
	LocationInbound  LocationType = "inbound"
	LocationOutbound LocationType = "outbound"
	LocationReturn   LocationType = "return"
	LocationDamaged  LocationType = "damaged"
)

// DefaultLocationCode is the fallback bucket every warehouse gets on demand.
const DefaultLocationCode = "GENERAL"

// LocationTypeRank orders location types for picking. Lower ranks are drained first.
// Damaged locations rank last so they are only drained when nothing else covers the line.
var LocationTypeRank = map[LocationType]int{
	LocationPicking:  1,
	LocationBulk:     2,
	LocationInbound:  3,
	LocationReturn:   4,
	LocationOutbound: 5,
	LocationDamaged:  6,
}

type PickingMode string

const (
	PickingModePicking  PickingMode = "picking"
	PickingModeShipment PickingMode = "shipment"
)
