package domain

import "errors"

// Recoverable, caller-visible outcomes. Boundary layers map these to status
// codes with errors.Is; wrapped variants carry the specific shortfall or
// validation detail.
var (
	ErrInvalidSelection  = errors.New("invalid catalog selection")
	ErrInvalidQuantity   = errors.New("invalid quantity")
	ErrInvalidTCKN       = errors.New("tckn must be exactly 11 digits")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrSameDistrict      = errors.New("source and target districts are the same")
	ErrUnknownDistrict   = errors.New("unknown district")
	ErrNotFound          = errors.New("request not found")
	ErrAlreadyResolved   = errors.New("request already resolved")
	ErrDuplicateRequest  = errors.New("another resolve for this request is in flight")
	ErrForbidden         = errors.New("role not permitted for this operation")
)
