package pricing

import (
	"math"
	"time"

	"github.com/srgjo27/tour_wizard/internal/core/domain"
)

// TierRate returns the per-head rate in effect for headcount n.
func TierRate(tiers []domain.Tier, n int) (int64, bool) {
	for _, t := range tiers {
		if t.Contains(n) {
			return t.Rate, true
		}
	}
	return 0, false
}

// TourAmount prices one tour category for the whole group. Headcounts below
// the first tier price at zero.
func TourAmount(c domain.TourCategory, headcount int) int64 {
	if headcount <= 0 {
		return 0
	}
	rate, ok := TierRate(domain.TourRates(c), headcount)
	if !ok {
		return 0
	}
	return rate * int64(headcount)
}

func IslandTourAmount(headcount int) int64 {
	return TourAmount(domain.TourIsland, headcount)
}

func InlandTourAmount(headcount int) int64 {
	return TourAmount(domain.TourInland, headcount)
}

func SnorkelingTourAmount(headcount int) int64 {
	return TourAmount(domain.TourSnorkeling, headcount)
}

// VehicleAmount sums the daily rate of every selected vehicle over the rental
// days. Unknown ids contribute nothing.
func VehicleAmount(vehicleIDs []string, days int) int64 {
	if days <= 0 {
		return 0
	}
	var daily int64
	for _, id := range vehicleIDs {
		if v, ok := domain.FindVehicle(id); ok {
			daily += v.DailyRate
		}
	}
	return daily * int64(days)
}

// VanAmount looks up the fixed destination price for the trip type. Round
// trips are charged once per day of hire; one-way trips are a single ride.
func VanAmount(v domain.VanRental) int64 {
	if !v.Selected() {
		return 0
	}
	dest, ok := domain.FindVanDestination(v.Destination)
	if !ok {
		return 0
	}
	price := dest.Price(v.Trip)
	if v.Trip == domain.TripRoundTrip && v.Days > 1 {
		price *= int64(v.Days)
	}
	return price
}

func DivingAmount(selected bool, divers int) int64 {
	if !selected || divers <= 0 {
		return 0
	}
	return domain.DivingRatePerDiver * int64(divers)
}

func HotelAmount(hotelID string, nights int) int64 {
	if hotelID == "" || nights <= 0 {
		return 0
	}
	h, ok := domain.FindHotel(hotelID)
	if !ok {
		return 0
	}
	return h.NightlyRate * int64(nights)
}

// StayNights is the number of whole days between arrival and departure,
// rounded up. Zero or negative stays return 0.
func StayNights(arrival, departure time.Time) int {
	if arrival.IsZero() || departure.IsZero() || !departure.After(arrival) {
		return 0
	}
	return int(math.Ceil(departure.Sub(arrival).Hours() / 24))
}
