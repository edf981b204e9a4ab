package models

// EventSummary is a single entry of the catalog's event listing.
type EventSummary struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	StartsAt string `json:"startsAt"`
}

// EventTier is one ticket tier of an event as last reported by a service.
// AvailableQuantity is the remaining inventory at last sync; it is never
// decremented locally, only replaced wholesale by a booking response.
type EventTier struct {
	ID                int64  `json:"id"`
	Code              string `json:"code"`
	DisplayName       string `json:"displayName"`
	PriceCents        int64  `json:"priceCents"`
	AvailableQuantity int    `json:"availableQuantity"`
}

// EventDetail is an event with its full tier list.
type EventDetail struct {
	ID       int64       `json:"id"`
	Name     string      `json:"name"`
	StartsAt string      `json:"startsAt"`
	Tiers    []EventTier `json:"tiers"`
}

// BookingSelection is the user's in-progress selection. TierID == 0 means no
// tier chosen. The card fields are passed through opaquely; only non-emptiness
// is checked before submission.
type BookingSelection struct {
	TierID     int64  `json:"tier_id"`
	Quantity   int    `json:"quantity"`
	CardName   string `json:"card_name"`
	CardNumber string `json:"card_number"`
}

// DefaultSelection returns the selection in its reset state: no tier,
// quantity 1, empty payment fields.
func DefaultSelection() BookingSelection {
	return BookingSelection{Quantity: 1}
}

// PaymentMethodCard is the only payment method this flow supports.
const PaymentMethodCard = "CARD"

// PaymentDetails is the payment block of a booking request.
type PaymentDetails struct {
	PaymentMethod string `json:"paymentMethod"`
	CardName      string `json:"cardName"`
	CardNumber    string `json:"cardNumber"`
	AmountCents   int64  `json:"amountCents"`
}

// BookingRequest is the request body sent to the Booking Service. The
// idempotency key is minted fresh for every attempt; AmountCents is always
// recomputed from the current tier price at build time.
type BookingRequest struct {
	UserID         int64          `json:"userId"`
	TierID         int64          `json:"tierId"`
	Quantity       int            `json:"quantity"`
	IdempotencyKey string         `json:"idempotencyKey"`
	Payment        PaymentDetails `json:"payment"`
}

// Booking is the booking record inside a Booking Service response.
type Booking struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

// BookingResult is the Booking Service's response: the booking outcome plus
// the new authoritative tier list for the event.
type BookingResult struct {
	Booking Booking     `json:"booking"`
	Tiers   []EventTier `json:"tiers"`
}
