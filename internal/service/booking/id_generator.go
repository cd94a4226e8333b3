package booking

import (
	"strings"

	"github.com/google/uuid"
	"tracking/internal/entities"
)

// UUIDGenerator выдаёт короткие tracking id: первая группа uuid в верхнем регистре.
type UUIDGenerator struct{}

func NewUUIDGenerator() UUIDGenerator {
	return UUIDGenerator{}
}

func (UUIDGenerator) NextTrackingID() entities.TrackingID {
	s := uuid.NewString()
	return entities.TrackingID(strings.ToUpper(s[:strings.IndexByte(s, '-')]))
}
