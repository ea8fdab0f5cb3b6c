package appointment

import "time"

type AvailabilityInput struct {
	BarbershopID uint
	ServiceID    uint
	Date         time.Time
}

type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Overlaps usa intervalos semiabertos [start, end): encaixe exato
// (um termina quando o outro começa) não conflita.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}
