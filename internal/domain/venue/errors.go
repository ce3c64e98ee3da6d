package venue

import "errors"

var (
	ErrVenueNotFound  = errors.New("venue not found")
	ErrInvalidCatalog = errors.New("invalid venue catalog")
)
