package models

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusShipped   OrderStatus = "shipped"
	StatusDelivered OrderStatus = "delivered"
	// StatusDeclined is an early terminal branch a farmer may take instead of
	// confirming. Everything else moves strictly forward.
	StatusDeclined OrderStatus = "declined"
)

func ParseOrderStatus(s string) (OrderStatus, bool) {
	switch OrderStatus(s) {
	case StatusPending, StatusConfirmed, StatusShipped, StatusDelivered, StatusDeclined:
		return OrderStatus(s), true
	}
	return "", false
}

// CanTransitionTo reports whether next is a legal successor of s. The chain is
// pending → confirmed → shipped → delivered, with declined allowed only from
// pending. No skipping, no reversal, terminal states have no successors.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	switch s {
	case StatusPending:
		return next == StatusConfirmed || next == StatusDeclined
	case StatusConfirmed:
		return next == StatusShipped
	case StatusShipped:
		return next == StatusDelivered
	}
	return false
}

func (s OrderStatus) Terminal() bool {
	return s == StatusDelivered || s == StatusDeclined
}
