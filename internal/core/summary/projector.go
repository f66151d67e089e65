package summary

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/srgjo27/tour_wizard/internal/core/domain"
	"github.com/srgjo27/tour_wizard/internal/core/pricing"
)

const dateLayout = "Jan 2, 2006"

var printer = message.NewPrinter(language.English)

// FormatPeso renders whole peso amounts with digit grouping, e.g. ₱3,000.00.
func FormatPeso(amount int64) string {
	return printer.Sprintf("₱%d.00", amount)
}

type Line struct {
	Category    string `json:"category"`
	Label       string `json:"label"`
	Detail      string `json:"detail"`
	Amount      int64  `json:"amount"`
	AmountLabel string `json:"amountLabel"`
	Visible     bool   `json:"visible"`
}

// ViewModel is the read-only summary handed to the presentation layer.
type ViewModel struct {
	GuestName     string `json:"guestName"`
	Email         string `json:"email"`
	ContactNumber string `json:"contactNumber"`
	StayLabel     string `json:"stayLabel"`
	TouristsLabel string `json:"touristsLabel"`

	Lines        []Line `json:"lines"`
	PackageLabel string `json:"packageLabel"`

	GrandTotal      int64  `json:"grandTotal"`
	GrandTotalLabel string `json:"grandTotalLabel"`

	PaymentPlanLabel   string `json:"paymentPlanLabel,omitempty"`
	DownPaymentLabel   string `json:"downPaymentLabel,omitempty"`
	RemainingLabel     string `json:"remainingLabel,omitempty"`
	PaymentMethodLabel string `json:"paymentMethodLabel,omitempty"`

	Reference string `json:"reference,omitempty"`
	Status    string `json:"status"`
}

// Project builds the view model from the stored amounts. It does not
// re-derive any business rule.
func Project(d domain.BookingDraft) ViewModel {
	vm := ViewModel{
		GuestName:     strings.TrimSpace(d.FirstName + " " + d.LastName),
		Email:         d.Email,
		ContactNumber: d.ContactNumber,
		StayLabel:     stayLabel(d),
		TouristsLabel: countLabel(d.TouristCount, "tourist", "tourists"),

		PackageLabel:    FormatPeso(d.Amounts.Package),
		GrandTotal:      d.Amounts.GrandTotal,
		GrandTotalLabel: FormatPeso(d.Amounts.GrandTotal),

		Reference: d.Reference,
		Status:    string(d.Status),
	}
	if vm.Status == "" {
		vm.Status = string(domain.BookingDraftStatus)
	}

	pax := countLabel(d.TouristCount, "pax", "pax")
	vm.Lines = []Line{
		tourLine(domain.TourIsland, "Island Tour", d.Tours.Island, d.Amounts.Island, pax),
		tourLine(domain.TourInland, "Inland Tour", d.Tours.Inland, d.Amounts.Inland, pax),
		tourLine(domain.TourSnorkeling, "Snorkeling Tour", d.Tours.Snorkeling, d.Amounts.Snorkeling, pax),
		vehicleLine(d),
		vanLine(d),
		newLine("diving", "Diving", countLabel(d.DiverCount, "diver", "divers"), d.Amounts.Diving, d.Diving),
		hotelLine(d),
	}

	switch d.PaymentPlan {
	case domain.PlanFull:
		vm.PaymentPlanLabel = "Full payment"
	case domain.PlanDown:
		vm.PaymentPlanLabel = "Down payment"
		vm.DownPaymentLabel = FormatPeso(d.DownPayment)
		vm.RemainingLabel = FormatPeso(d.RemainingBalance)
	}
	if d.PaymentMethod.IsValid() {
		vm.PaymentMethodLabel = d.PaymentMethod.DisplayName()
	}

	return vm
}

func newLine(category, label, detail string, amount int64, selected bool) Line {
	return Line{
		Category:    category,
		Label:       label,
		Detail:      detail,
		Amount:      amount,
		AmountLabel: FormatPeso(amount),
		Visible:     selected,
	}
}

func tourLine(c domain.TourCategory, label string, ids []string, amount int64, pax string) Line {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if item, ok := domain.FindTourItem(c, id); ok {
			names = append(names, item.Name)
		} else {
			names = append(names, id)
		}
	}
	detail := ""
	if len(names) > 0 {
		detail = fmt.Sprintf("%s (%s)", strings.Join(names, ", "), pax)
	}
	return newLine(string(c), label, detail, amount, len(ids) > 0)
}

func vehicleLine(d domain.BookingDraft) Line {
	names := make([]string, 0, len(d.Vehicles))
	for _, id := range d.Vehicles {
		if v, ok := domain.FindVehicle(id); ok {
			names = append(names, v.Name)
		}
	}
	detail := ""
	if len(names) > 0 {
		detail = fmt.Sprintf("%s × %s", strings.Join(names, ", "), countLabel(d.RentalDays, "day", "days"))
	}
	return newLine("vehicle", "Vehicle Rental", detail, d.Amounts.Vehicle, len(d.Vehicles) > 0)
}

func vanLine(d domain.BookingDraft) Line {
	detail := ""
	if dest, ok := domain.FindVanDestination(d.Van.Destination); ok {
		detail = fmt.Sprintf("%s, %s", dest.Name, d.Van.Trip)
		if d.Van.Trip == domain.TripRoundTrip && d.Van.Days > 1 {
			detail += " × " + countLabel(d.Van.Days, "day", "days")
		}
	}
	return newLine("van", "Van Rental", detail, d.Amounts.Van, d.Van.Selected())
}

func hotelLine(d domain.BookingDraft) Line {
	detail := ""
	if h, ok := domain.FindHotel(d.HotelID); ok {
		detail = fmt.Sprintf("%s, %s", h.Name, countLabel(d.HotelNights, "night", "nights"))
	}
	return newLine("hotel", "Hotel", detail, d.Amounts.Hotel, d.HotelID != "")
}

func stayLabel(d domain.BookingDraft) string {
	if d.ArrivalDate.IsZero() || d.DepartureDate.IsZero() {
		return ""
	}
	nights := pricing.StayNights(d.ArrivalDate, d.DepartureDate)
	return fmt.Sprintf("%s to %s (%s)",
		d.ArrivalDate.Format(dateLayout),
		d.DepartureDate.Format(dateLayout),
		countLabel(nights, "night", "nights"),
	)
}

func countLabel(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}
