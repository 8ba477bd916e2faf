package entities

// RegistrationForm is the public registration payload. Field names are
// camelCase because public-register expects them that way.
type RegistrationForm struct {
	// personal
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	OC              string `json:"oc"`
	ContractStatus  string `json:"contractStatus"`
	ContractType    string `json:"contractType"`
	GenderIdentity  string `json:"genderIdentity"`
	Sex             string `json:"sex"`
	Pronouns        string `json:"pronouns"`
	CurrentPosition string `json:"currentPosition"`
	CountryOfWork   string `json:"countryOfWork"`
	ProjectOfWork   string `json:"projectOfWork"`

	// contact
	PersonalEmail      string `json:"personalEmail"`
	MSFEmail           string `json:"msfEmail"`
	HRCOEmail          string `json:"hrcoEmail"`
	CareerManagerEmail string `json:"careerManagerEmail"`
	LDManagerEmail     string `json:"ldManagerEmail"`
	LineManagerEmail   string `json:"lineManagerEmail"`
	PhoneNumber        string `json:"phoneNumber"`

	// travel
	TravellingInternationally string   `json:"travellingInternationally"`
	TravellingFromCountry     string   `json:"travellingFromCountry"`
	AccommodationType         string   `json:"accommodationType"`
	DietaryRequirements       string   `json:"dietaryRequirements"`
	AccommodationNeeds        string   `json:"accommodationNeeds"`
	DailyMeals                []string `json:"dailyMeals"`

	// final
	CertificateName           string `json:"certificateName"`
	BadgeName                 string `json:"badgeName"`
	MotivationLetter          string `json:"motivationLetter"`
	CodeOfConductConfirm      string `json:"codeOfConductConfirm"`
	TravelRequirementsConfirm string `json:"travelRequirementsConfirm"`
}

// Field returns the value of the camelCase field name, and false when the
// name is unknown or is not a plain text field.
func (f RegistrationForm) Field(name string) (string, bool) {
	switch name {
	case "firstName":
		return f.FirstName, true
	case "lastName":
		return f.LastName, true
	case "oc":
		return f.OC, true
	case "contractStatus":
		return f.ContractStatus, true
	case "contractType":
		return f.ContractType, true
	case "genderIdentity":
		return f.GenderIdentity, true
	case "sex":
		return f.Sex, true
	case "pronouns":
		return f.Pronouns, true
	case "currentPosition":
		return f.CurrentPosition, true
	case "countryOfWork":
		return f.CountryOfWork, true
	case "projectOfWork":
		return f.ProjectOfWork, true
	case "personalEmail":
		return f.PersonalEmail, true
	case "msfEmail":
		return f.MSFEmail, true
	case "hrcoEmail":
		return f.HRCOEmail, true
	case "careerManagerEmail":
		return f.CareerManagerEmail, true
	case "ldManagerEmail":
		return f.LDManagerEmail, true
	case "lineManagerEmail":
		return f.LineManagerEmail, true
	case "phoneNumber":
		return f.PhoneNumber, true
	case "travellingInternationally":
		return f.TravellingInternationally, true
	case "travellingFromCountry":
		return f.TravellingFromCountry, true
	case "accommodationType":
		return f.AccommodationType, true
	case "dietaryRequirements":
		return f.DietaryRequirements, true
	case "accommodationNeeds":
		return f.AccommodationNeeds, true
	case "certificateName":
		return f.CertificateName, true
	case "badgeName":
		return f.BadgeName, true
	case "motivationLetter":
		return f.MotivationLetter, true
	case "codeOfConductConfirm":
		return f.CodeOfConductConfirm, true
	case "travelRequirementsConfirm":
		return f.TravelRequirementsConfirm, true
	}
	return "", false
}

// PublicRegistration is the public-register request body.
type PublicRegistration struct {
	RegistrationForm
	EventID int `json:"eventId"`
}

// EmailCheckResult is the reply of /check-email-registration.
type EmailCheckResult struct {
	AlreadyRegistered bool   `json:"already_registered"`
	Message           string `json:"message,omitempty"`
	ParticipantID     int    `json:"participant_id,omitempty"`
}
