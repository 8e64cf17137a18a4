package services

import "errors"

var (
	// ErrEmailTaken is returned when registering with an email that exists.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials covers both unknown email and wrong password,
	// so login failures cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrCartNotFound is returned when an operation needs an existing cart.
	ErrCartNotFound = errors.New("cart not found")
	// ErrLineNotFound is returned when the cart has no line for the item.
	ErrLineNotFound = errors.New("item not found in cart")
	// ErrOrderNotFound covers both a missing order and one owned by
	// another user.
	ErrOrderNotFound = errors.New("order not found")
	// ErrInvalidStatus is returned for a value outside the status enum.
	ErrInvalidStatus = errors.New("invalid status")
	// ErrIllegalTransition is returned in strict mode when the requested
	// status is not reachable from the current one.
	ErrIllegalTransition = errors.New("illegal status transition")
)
