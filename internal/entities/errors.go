package entities

import "errors"

var (
	ErrInvalidTrackingID         = errors.New("invalid tracking id")
	ErrInvalidUnLocode           = errors.New("invalid location code")
	ErrInvalidVoyageNumber       = errors.New("invalid voyage number")
	ErrInvalidLeg                = errors.New("invalid leg")
	ErrInvalidItinerary          = errors.New("invalid itinerary")
	ErrInvalidRouteSpecification = errors.New("invalid route specification")
	ErrInvalidEvent              = errors.New("invalid handling event")

	ErrUnknownCargo    = errors.New("unknown cargo")
	ErrUnknownLocation = errors.New("unknown location")
	ErrUnknownVoyage   = errors.New("unknown voyage")

	ErrVoyageDoesNotServeLeg = errors.New("voyage does not serve leg")
	ErrCargoAlreadyExists    = errors.New("cargo already exists")

	// ошибки хранилищ, сервисы переводят их в ErrUnknown*
	ErrCargoNotFound    = errors.New("cargo not found")
	ErrLocationNotFound = errors.New("location not found")
	ErrVoyageNotFound   = errors.New("voyage not found")
)
