package domain

import (
	"time"
)

type BookingStatus string

const (
	BookingDraftStatus     BookingStatus = "draft"
	BookingSubmittedStatus BookingStatus = "submitted"
)

type BookingOption string

const (
	OptionPackage BookingOption = "package"
	OptionTour    BookingOption = "tour"
)

func (o BookingOption) IsValid() bool {
	return o == OptionPackage || o == OptionTour
}

// Page is the physical page hosting a range of steps.
type Page string

const (
	PagePackage  Page = "package"
	PageTour     Page = "tour"
	PageCheckout Page = "checkout"
)

// EntryPage returns the page that hosts steps 1 and 2 for the option.
func (o BookingOption) EntryPage() Page {
	if o == OptionTour {
		return PageTour
	}
	return PagePackage
}

type PaymentPlan string

const (
	PlanFull PaymentPlan = "full"
	PlanDown PaymentPlan = "down"
)

func (p PaymentPlan) IsValid() bool {
	return p == PlanFull || p == PlanDown
}

type PaymentMethod string

const (
	MethodGCash   PaymentMethod = "gcash"
	MethodPayMaya PaymentMethod = "paymaya"
	MethodBanking PaymentMethod = "banking"
)

var paymentMethodNames = map[PaymentMethod]string{
	MethodGCash:   "GCash",
	MethodPayMaya: "PayMaya",
	MethodBanking: "Online Banking",
}

func (m PaymentMethod) IsValid() bool {
	_, ok := paymentMethodNames[m]
	return ok
}

func (m PaymentMethod) DisplayName() string {
	return paymentMethodNames[m]
}

type VanTrip string

const (
	TripOneWay    VanTrip = "one-way"
	TripRoundTrip VanTrip = "round-trip"
)

func (t VanTrip) IsValid() bool {
	return t == TripOneWay || t == TripRoundTrip
}

type TourSelections struct {
	Island     []string `json:"island"`
	Inland     []string `json:"inland"`
	Snorkeling []string `json:"snorkeling"`
}

func (t TourSelections) Any() bool {
	return len(t.Island) > 0 || len(t.Inland) > 0 || len(t.Snorkeling) > 0
}

type VanRental struct {
	Destination string  `json:"destination"`
	Trip        VanTrip `json:"trip"`
	Days        int     `json:"days"`
}

func (v VanRental) Selected() bool {
	return v.Destination != ""
}

// Amounts holds the derived subtotals. Package is the sum of the three tour
// categories only.
type Amounts struct {
	Island     int64 `json:"island"`
	Inland     int64 `json:"inland"`
	Snorkeling int64 `json:"snorkeling"`
	Package    int64 `json:"package"`
	Vehicle    int64 `json:"vehicle"`
	Van        int64 `json:"van"`
	Diving     int64 `json:"diving"`
	Hotel      int64 `json:"hotel"`
	GrandTotal int64 `json:"grandTotal"`
}

// BookingDraft is the whole in-progress booking. It is always persisted as a
// single record.
type BookingDraft struct {
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	Email         string    `json:"email"`
	ContactNumber string    `json:"contactNumber"`
	ArrivalDate   time.Time `json:"arrivalDate"`
	DepartureDate time.Time `json:"departureDate"`
	TouristCount  int       `json:"touristCount"`

	Tours       TourSelections `json:"tours"`
	Vehicles    []string       `json:"vehicles"`
	RentalDays  int            `json:"rentalDays"`
	Van         VanRental      `json:"van"`
	Diving      bool           `json:"diving"`
	DiverCount  int            `json:"diverCount"`
	HotelID     string         `json:"hotelId"`
	HotelNights int            `json:"hotelNights"`

	Amounts Amounts `json:"amounts"`

	PaymentMethod    PaymentMethod `json:"paymentMethod"`
	PaymentPlan      PaymentPlan   `json:"paymentPlan"`
	DownPayment      int64         `json:"downPayment"`
	RemainingBalance int64         `json:"remainingBalance"`
	ReceiptPresent   bool          `json:"receiptPresent"`

	Step        Step          `json:"step"`
	LastPage    Page          `json:"lastPage"`
	BookingType BookingOption `json:"bookingType"`

	Reference   string        `json:"reference"`
	Status      BookingStatus `json:"status"`
	SubmittedAt *time.Time    `json:"submittedAt"`
}

func (d *BookingDraft) IsZero() bool {
	return d.Step == 0 && d.LastPage == "" && d.BookingType == "" && d.FirstName == "" &&
		d.TouristCount == 0 && !d.HasService() && d.HotelID == ""
}

// HasService reports whether any of the categories that can complete the
// services step is selected. A hotel alone does not count.
func (d *BookingDraft) HasService() bool {
	return d.Tours.Any() || len(d.Vehicles) > 0 || d.Van.Selected() || d.Diving
}

func (d *BookingDraft) IsSubmitted() bool {
	return d.Status == BookingSubmittedStatus
}
