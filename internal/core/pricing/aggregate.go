package pricing

import (
	"github.com/srgjo27/tour_wizard/internal/core/domain"
)

// Aggregate derives every subtotal from the draft's selections. It does not
// read the stored amounts, so calling it twice yields the same result.
func Aggregate(d domain.BookingDraft) domain.Amounts {
	var a domain.Amounts

	if len(d.Tours.Island) > 0 {
		a.Island = IslandTourAmount(d.TouristCount)
	}
	if len(d.Tours.Inland) > 0 {
		a.Inland = InlandTourAmount(d.TouristCount)
	}
	if len(d.Tours.Snorkeling) > 0 {
		a.Snorkeling = SnorkelingTourAmount(d.TouristCount)
	}
	a.Package = a.Island + a.Inland + a.Snorkeling

	if len(d.Vehicles) > 0 {
		a.Vehicle = VehicleAmount(d.Vehicles, d.RentalDays)
	}
	a.Van = VanAmount(d.Van)
	a.Diving = DivingAmount(d.Diving, d.DiverCount)
	a.Hotel = HotelAmount(d.HotelID, StayNights(d.ArrivalDate, d.DepartureDate))

	a.GrandTotal = a.Package + a.Vehicle + a.Van + a.Diving + a.Hotel
	return a
}

// Recompute re-derives the computed fields of d in place. Inland selections
// are dropped when the group is below the inland minimum; the return value
// reports whether that happened.
func Recompute(d *domain.BookingDraft) bool {
	cleared := false
	if len(d.Tours.Inland) > 0 && d.TouristCount < domain.InlandMinTourists {
		d.Tours.Inland = nil
		cleared = true
	}

	d.HotelNights = 0
	if d.HotelID != "" {
		d.HotelNights = StayNights(d.ArrivalDate, d.DepartureDate)
	}
	d.Amounts = Aggregate(*d)

	return cleared
}
