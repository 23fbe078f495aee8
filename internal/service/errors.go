package service

import "errors"

var (
	ErrInsufficientStock   = errors.New("insufficient stock")
	ErrMissingTableNo      = errors.New("table number is required")
	ErrEmptyCart           = errors.New("cart is empty")
	ErrMissingSchedule     = errors.New("reservation date and time are required")
	ErrUnknownIngredient   = errors.New("recipe references unknown ingredient")
	ErrInvalidAmount       = errors.New("restock amount must be positive")
	ErrIngredientNotFound  = errors.New("ingredient not found")
	ErrDishNotFound        = errors.New("dish not found")
	ErrOrderNotFound       = errors.New("order not found")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrReservationClosed   = errors.New("reservation is no longer booked")
	ErrInvoiceNotPending   = errors.New("transaction invoice is not pending")
	ErrNothingImported     = errors.New("no rows could be parsed")
	ErrNothingToProcure    = errors.New("procurement list is empty")
	ErrNoPendingConfirm    = errors.New("no pending confirmation")
)
