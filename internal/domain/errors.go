package domain

import "errors"

// Errors surfaced by the deal aggregation engine. The booking transaction
// classifies failures inside the repo layer, so these live here rather than in
// a single service package.
var (
	ErrInvalidDeal     = errors.New("invalid deal")
	ErrInvalidQuery    = errors.New("invalid query")
	ErrDealNotFound    = errors.New("deal not found")
	ErrDealClosed      = errors.New("deal is closed")
	ErrDealExpired     = errors.New("deal has expired")
	ErrDealNotYetOpen  = errors.New("deal is not yet open")
	ErrAlreadyBooked   = errors.New("user already booked this deal")
	ErrBookingNotFound = errors.New("booking not found")
	ErrUnknownEvent    = errors.New("unknown booking event")
)
