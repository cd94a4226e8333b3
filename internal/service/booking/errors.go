package booking

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrTrackingIDExhausted   = errors.New("could not allocate unique tracking id")
)
