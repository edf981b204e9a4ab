package booking

import "errors"

var (
	ErrEventNotLoaded         = errors.New("no event loaded")
	ErrNoTierSelected         = errors.New("no tier selected")
	ErrTierNotFound           = errors.New("selected tier is no longer available")
	ErrInvalidQuantity        = errors.New("quantity must be at least 1")
	ErrQuantityUnavailable    = errors.New("quantity exceeds available tickets")
	ErrPaymentDetailsRequired = errors.New("card name and card number are required")
	ErrSubmissionInFlight     = errors.New("a booking submission is already in progress")
)
