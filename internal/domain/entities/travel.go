package entities

type TransportBooking struct {
	ID              int    `json:"id"`
	BookingType     string `json:"booking_type"`
	PickupLocation  string `json:"pickup_locations,omitempty"`
	DropoffLocation string `json:"destination,omitempty"`
	ScheduledTime   string `json:"scheduled_time,omitempty"`
	Status          string `json:"status"`
	VehicleType     string `json:"vehicle_type,omitempty"`
	DriverName      string `json:"driver_name,omitempty"`
	DriverPhone     string `json:"driver_phone,omitempty"`
}

type FlightItinerary struct {
	ID               int    `json:"id"`
	Airline          string `json:"airline,omitempty"`
	FlightNumber     string `json:"flight_number,omitempty"`
	DepartureAirport string `json:"departure_airport,omitempty"`
	ArrivalAirport   string `json:"arrival_airport,omitempty"`
	DepartureDate    string `json:"departure_date,omitempty"`
	ArrivalDate      string `json:"arrival_date,omitempty"`
	ItineraryType    string `json:"itinerary_type,omitempty"`
	Confirmed        bool   `json:"confirmed"`
}

type ChecklistItem struct {
	Key       string `json:"key"`
	Label     string `json:"label,omitempty"`
	Completed bool   `json:"completed"`
}

type ChecklistProgress struct {
	ParticipantID        int             `json:"participant_id"`
	Items                []ChecklistItem `json:"items"`
	CompletionPercentage float64         `json:"completion_percentage"`
}

// AdditionalRequirement is a free-form travel requirement; only Name is
// mandatory.
type AdditionalRequirement struct {
	Name        string `json:"name"`
	Required    bool   `json:"required"`
	Description string `json:"description,omitempty"`
}

// TravelRequirement is the per-tenant requirement matrix row for a country.
type TravelRequirement struct {
	ID                     int                     `json:"id,omitempty"`
	TenantID               int                     `json:"tenant_id,omitempty"`
	Country                string                  `json:"country"`
	VisaRequired           bool                    `json:"visa_required"`
	ETARequired            bool                    `json:"eta_required"`
	PassportRequired       bool                    `json:"passport_required"`
	FlightTicketRequired   bool                    `json:"flight_ticket_required"`
	AdditionalRequirements []AdditionalRequirement `json:"additional_requirements"`
}

// DefaultTravelRequirement returns the matrix row used for a country that
// has no requirements configured yet.
func DefaultTravelRequirement(country string) TravelRequirement {
	return TravelRequirement{
		Country:                country,
		PassportRequired:       true,
		FlightTicketRequired:   true,
		AdditionalRequirements: []AdditionalRequirement{},
	}
}
