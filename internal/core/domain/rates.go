package domain

// Tier maps an inclusive headcount range to a per-head rate. Max 0 means the
// tier has no upper bound.
type Tier struct {
	Min  int   `json:"min"`
	Max  int   `json:"max,omitempty"`
	Rate int64 `json:"rate"`
}

func (t Tier) Contains(n int) bool {
	return n >= t.Min && (t.Max == 0 || n <= t.Max)
}

type TourCategory string

const (
	TourIsland     TourCategory = "island"
	TourInland     TourCategory = "inland"
	TourSnorkeling TourCategory = "snorkeling"
)

var TourCategories = []TourCategory{TourIsland, TourInland, TourSnorkeling}

var (
	IslandTourRates = []Tier{
		{Min: 1, Max: 1, Rate: 3000},
		{Min: 2, Max: 2, Rate: 1600},
		{Min: 3, Max: 4, Rate: 1000},
		{Min: 5, Rate: 800},
	}

	InlandTourRates = []Tier{
		{Min: 2, Max: 2, Rate: 1500},
		{Min: 3, Max: 3, Rate: 1100},
		{Min: 4, Max: 4, Rate: 800},
		{Min: 5, Max: 6, Rate: 700},
		{Min: 7, Max: 9, Rate: 600},
		{Min: 10, Rate: 550},
	}

	SnorkelingTourRates = []Tier{
		{Min: 1, Max: 1, Rate: 2400},
		{Min: 2, Max: 2, Rate: 1300},
		{Min: 3, Max: 4, Rate: 1000},
		{Min: 5, Max: 6, Rate: 900},
		{Min: 7, Rate: 800},
	}
)

const (
	InlandMinTourists  = 2
	DivingRatePerDiver = 3500
)

func TourRates(c TourCategory) []Tier {
	switch c {
	case TourIsland:
		return IslandTourRates
	case TourInland:
		return InlandTourRates
	case TourSnorkeling:
		return SnorkelingTourRates
	}
	return nil
}

type TourItem struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Category TourCategory `json:"category"`
}

var TourItems = []TourItem{
	{ID: "big-lagoon", Name: "Big Lagoon", Category: TourIsland},
	{ID: "small-lagoon", Name: "Small Lagoon", Category: TourIsland},
	{ID: "secret-lagoon", Name: "Secret Lagoon", Category: TourIsland},
	{ID: "shimizu-island", Name: "Shimizu Island", Category: TourIsland},
	{ID: "seven-commando", Name: "Seven Commando Beach", Category: TourIsland},
	{ID: "nacpan-beach", Name: "Nacpan Beach", Category: TourInland},
	{ID: "nagkalit-falls", Name: "Nagkalit-kalit Falls", Category: TourInland},
	{ID: "taraw-canopy", Name: "Taraw Cliff Canopy Walk", Category: TourInland},
	{ID: "cabanas-zipline", Name: "Las Cabanas Zipline", Category: TourInland},
	{ID: "helicopter-reef", Name: "Helicopter Island Reef", Category: TourSnorkeling},
	{ID: "tapiutan-strait", Name: "Tapiutan Strait", Category: TourSnorkeling},
	{ID: "matinloc-reef", Name: "Matinloc Shrine Reef", Category: TourSnorkeling},
}

func FindTourItem(c TourCategory, id string) (TourItem, bool) {
	for _, item := range TourItems {
		if item.Category == c && item.ID == id {
			return item, true
		}
	}
	return TourItem{}, false
}

type VehicleClass string

const (
	ClassScooter    VehicleClass = "scooter"
	ClassMotorcycle VehicleClass = "motorcycle"
	ClassCar        VehicleClass = "car"
)

type Vehicle struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Class     VehicleClass `json:"class"`
	DailyRate int64        `json:"dailyRate"`
}

var Vehicles = []Vehicle{
	{ID: "click-125", Name: "Honda Click 125", Class: ClassScooter, DailyRate: 1000},
	{ID: "mio-i125", Name: "Yamaha Mio i125", Class: ClassScooter, DailyRate: 1000},
	{ID: "adv-160", Name: "Honda ADV 160", Class: ClassMotorcycle, DailyRate: 2000},
	{ID: "nmax-155", Name: "Yamaha NMAX 155", Class: ClassMotorcycle, DailyRate: 2000},
	{ID: "xmax-300", Name: "Yamaha XMAX 300", Class: ClassMotorcycle, DailyRate: 2500},
	{ID: "vios", Name: "Toyota Vios", Class: ClassCar, DailyRate: 3000},
}

func FindVehicle(id string) (Vehicle, bool) {
	for _, v := range Vehicles {
		if v.ID == id {
			return v, true
		}
	}
	return Vehicle{}, false
}

// VanDestination prices are fixed per trip type, not per day.
type VanDestination struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	WithinArea     bool   `json:"withinArea"`
	OneWayPrice    int64  `json:"oneWayPrice"`
	RoundTripPrice int64  `json:"roundTripPrice"`
}

func (d VanDestination) Price(trip VanTrip) int64 {
	switch trip {
	case TripOneWay:
		return d.OneWayPrice
	case TripRoundTrip:
		return d.RoundTripPrice
	}
	return 0
}

var VanDestinations = []VanDestination{
	{ID: "town-proper", Name: "Town Proper", WithinArea: true, OneWayPrice: 800, RoundTripPrice: 1500},
	{ID: "corong-corong", Name: "Corong-Corong", WithinArea: true, OneWayPrice: 1000, RoundTripPrice: 1800},
	{ID: "nacpan", Name: "Nacpan Beach", WithinArea: true, OneWayPrice: 2000, RoundTripPrice: 3500},
	{ID: "duli-beach", Name: "Duli Beach", WithinArea: true, OneWayPrice: 2500, RoundTripPrice: 4500},
	{ID: "taytay", Name: "Taytay", WithinArea: false, OneWayPrice: 5000, RoundTripPrice: 9000},
	{ID: "port-barton", Name: "Port Barton", WithinArea: false, OneWayPrice: 7000, RoundTripPrice: 12000},
	{ID: "san-vicente", Name: "San Vicente Long Beach", WithinArea: false, OneWayPrice: 6500, RoundTripPrice: 11000},
	{ID: "puerto-princesa", Name: "Puerto Princesa", WithinArea: false, OneWayPrice: 14000, RoundTripPrice: 25000},
}

func FindVanDestination(id string) (VanDestination, bool) {
	for _, d := range VanDestinations {
		if d.ID == id {
			return d, true
		}
	}
	return VanDestination{}, false
}

type Hotel struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	NightlyRate int64  `json:"nightlyRate"`
}

var Hotels = []Hotel{
	{ID: "seaside-inn", Name: "Seaside Inn", NightlyRate: 1800},
	{ID: "lagoon-view", Name: "Lagoon View Resort", NightlyRate: 3500},
	{ID: "cliffside", Name: "Cliffside Villas", NightlyRate: 5200},
	{ID: "hidden-cove", Name: "Hidden Cove Eco Lodge", NightlyRate: 2600},
}

func FindHotel(id string) (Hotel, bool) {
	for _, h := range Hotels {
		if h.ID == id {
			return h, true
		}
	}
	return Hotel{}, false
}
