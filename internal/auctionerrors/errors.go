package auctionerrors

import (
	"errors"
	"fmt"
)

// Repository-level errors
var (
	ErrVehicleNotFound = errors.New("vehicle not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrNoBids          = errors.New("no bids found for vehicle")
	ErrDuplicateLot    = errors.New("lot code already exists")
	ErrDuplicateEmail  = errors.New("email already registered")
	ErrStorageBusy     = errors.New("storage contention")
)

// Business logic errors
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrBidTooLow          = errors.New("bid amount below minimum required")
	ErrAuctionNotActive   = errors.New("auction is not active")
	ErrAlreadyClosed      = errors.New("auction already closed")
	ErrSelfBid            = errors.New("seller cannot bid on own vehicle")
	ErrForbidden          = errors.New("operation not permitted")
	ErrUnauthorized       = errors.New("authentication required")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// BidTooLowError rejects a bid below the current floor and carries the
// numeric context a client needs to retry correctly.
type BidTooLowError struct {
	MinRequired  int64
	Current      int64
	MinIncrement int64
}

func (e *BidTooLowError) Error() string {
	return fmt.Sprintf("bid amount below minimum required %d (current %d, increment %d)",
		e.MinRequired, e.Current, e.MinIncrement)
}

// Unwrap lets callers match the rejection with errors.Is(err, ErrBidTooLow).
func (e *BidTooLowError) Unwrap() error { return ErrBidTooLow }
