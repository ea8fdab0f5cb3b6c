package handlers

import (
	"time"

	"github.com/BruksfildServices01/barber-club/internal/models"
	"github.com/BruksfildServices01/barber-club/internal/timezone"
)

// resolve o timezone oficial da barbearia
func locationFromShop(shop *models.Barbershop) *time.Location {
	if shop != nil {
		return timezone.Location(shop.Timezone)
	}
	return timezone.Location("")
}

func parseDateInShop(shop *models.Barbershop, dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02",
		dateStr,
		locationFromShop(shop),
	)
}
