package constant

type OrderEventType string

const (
	OrderEventConfirmed OrderEventType = "order.confirmed"
	OrderEventUpdated   OrderEventType = "order.updated"
	OrderEventCancelled OrderEventType = "order.cancelled"
)

type ReservationOutcome string

const (
	ReservationFullyReserved     ReservationOutcome = "fully_reserved"
	ReservationPartiallyReserved ReservationOutcome = "partially_reserved"
	ReservationBackordered       ReservationOutcome = "backordered"
	ReservationReleased          ReservationOutcome = "released"
	ReservationUnchanged         ReservationOutcome = "unchanged"
	ReservationSkipped           ReservationOutcome = "skipped"
	ReservationDuplicate         ReservationOutcome = "duplicate"
	ReservationStale             ReservationOutcome = "stale"
)
