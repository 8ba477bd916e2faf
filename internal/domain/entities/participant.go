package entities

import "eventdesk/pkg/apijson"

// Participant is the event registration record as returned by
// /event-registration/participant/{id}. Only the fields eventdesk reads.
type Participant struct {
	ID                  int                `json:"id"`
	EventID             int                `json:"event_id"`
	FullName            string             `json:"full_name"`
	Email               string             `json:"email"`
	Phone               string             `json:"phone_number,omitempty"`
	Status              string             `json:"status"`
	Role                string             `json:"role,omitempty"`
	OC                  string             `json:"oc,omitempty"`
	Position            string             `json:"position,omitempty"`
	Country             string             `json:"country,omitempty"`
	Nationality         string             `json:"nationality,omitempty"`
	Project             string             `json:"project,omitempty"`
	Gender              string             `json:"gender_identity,omitempty"`
	DietaryRequirements string             `json:"dietary_requirements,omitempty"`
	AccommodationNeeds  string             `json:"accommodation_needs,omitempty"`
	CertificateName     string             `json:"certificate_name,omitempty"`
	BadgeName           string             `json:"badge_name,omitempty"`
	TravellingFrom      string             `json:"travelling_from_country,omitempty"`
	PassportDocument    bool               `json:"passport_document"`
	TicketDocument      bool               `json:"ticket_document"`
	RequiresETA         bool               `json:"requires_eta"`
	TenantID            apijson.FlexString `json:"tenant_id,omitempty"`
}

// Event is the subset of the backend event resource used by the panels.
type Event struct {
	ID                          int                `json:"id"`
	Title                       string             `json:"title"`
	Description                 string             `json:"description,omitempty"`
	Location                    string             `json:"location,omitempty"`
	StartDate                   string             `json:"start_date"`
	EndDate                     string             `json:"end_date"`
	Status                      string             `json:"status,omitempty"`
	BannerURL                   string             `json:"banner_url,omitempty"`
	TenantID                    apijson.FlexString `json:"tenant_id,omitempty"`
	RegistrationFormTitle       string             `json:"registration_form_title,omitempty"`
	RegistrationFormDescription string             `json:"registration_form_description,omitempty"`
}

// Tenant is an organisational namespace.
type Tenant struct {
	ID   apijson.FlexString `json:"id"`
	Slug string             `json:"slug"`
	Name string             `json:"name"`
}
