package entities

import (
	"fmt"
	"regexp"
	"strings"
)

// TrackingID - идентификатор груза, назначается при бронировании и больше не меняется.
type TrackingID string

func (id TrackingID) String() string {
	return string(id)
}

func ParseTrackingID(s string) (TrackingID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrInvalidTrackingID
	}
	return TrackingID(strings.ToUpper(s)), nil
}

// UnLocode - код локации UN/LOCODE: страна (2 буквы) + место (3 символа).
type UnLocode string

var unLocodePattern = regexp.MustCompile(`^[A-Z]{2}[A-Z2-9]{3}$`)

func (c UnLocode) String() string {
	return string(c)
}

func ParseUnLocode(s string) (UnLocode, error) {
	code := strings.ToUpper(strings.TrimSpace(s))
	if !unLocodePattern.MatchString(code) {
		return "", fmt.Errorf("%w: %q", ErrInvalidUnLocode, s)
	}
	return UnLocode(code), nil
}

// VoyageNumber - номер рейса. Пустое значение означает "рейса нет".
type VoyageNumber string

func (n VoyageNumber) String() string {
	return string(n)
}

func (n VoyageNumber) IsEmpty() bool {
	return n == ""
}

func ParseVoyageNumber(s string) (VoyageNumber, error) {
	n := strings.TrimSpace(s)
	if n == "" {
		return "", ErrInvalidVoyageNumber
	}
	return VoyageNumber(strings.ToUpper(n)), nil
}
