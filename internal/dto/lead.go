package dto

import "time"

// LeadSource is the channel a lead came in through
type LeadSource string

const (
	LeadSourceWebsite     LeadSource = "website"
	LeadSourceAutoTrack   LeadSource = "autotrack"
	LeadSourceMarktplaats LeadSource = "marktplaats"
	LeadSourceAutoScout24 LeadSource = "autoscout24"
	LeadSourcePhone       LeadSource = "phone"
	LeadSourceEmail       LeadSource = "email"
	LeadSourceWalkIn      LeadSource = "walk_in"
	LeadSourceReferral    LeadSource = "referral"
	LeadSourceSocialMedia LeadSource = "social_media"
	LeadSourceOther       LeadSource = "other"
)

// LeadSources lists every known source in display order
var LeadSources = []LeadSource{
	LeadSourceWebsite,
	LeadSourceAutoTrack,
	LeadSourceMarktplaats,
	LeadSourceAutoScout24,
	LeadSourcePhone,
	LeadSourceEmail,
	LeadSourceWalkIn,
	LeadSourceReferral,
	LeadSourceSocialMedia,
	LeadSourceOther,
}

// Valid reports whether s is one of the known lead sources
func (s LeadSource) Valid() bool {
	for _, known := range LeadSources {
		if s == known {
			return true
		}
	}
	return false
}

var leadSourceLabels = map[LeadSource]string{
	LeadSourceWebsite:     "Website",
	LeadSourceAutoTrack:   "AutoTrack",
	LeadSourceMarktplaats: "Marktplaats",
	LeadSourceAutoScout24: "AutoScout24",
	LeadSourcePhone:       "Telefoon",
	LeadSourceEmail:       "E-mail",
	LeadSourceWalkIn:      "Showroom",
	LeadSourceReferral:    "Doorverwijzing",
	LeadSourceSocialMedia: "Social media",
	LeadSourceOther:       "Overig",
}

// Label returns the Dutch display name of the source
func (s LeadSource) Label() string {
	if label, ok := leadSourceLabels[s]; ok {
		return label
	}
	return leadSourceLabels[LeadSourceOther]
}

// LeadStatus is the position of a lead in the sales pipeline
type LeadStatus string

const (
	LeadStatusNew         LeadStatus = "new"
	LeadStatusContacted   LeadStatus = "contacted"
	LeadStatusQualified   LeadStatus = "qualified"
	LeadStatusProposal    LeadStatus = "proposal"
	LeadStatusNegotiation LeadStatus = "negotiation"
	LeadStatusWon         LeadStatus = "won"
	LeadStatusLost        LeadStatus = "lost"
	LeadStatusArchived    LeadStatus = "archived"
)

// LeadStatuses lists every known status in pipeline order
var LeadStatuses = []LeadStatus{
	LeadStatusNew,
	LeadStatusContacted,
	LeadStatusQualified,
	LeadStatusProposal,
	LeadStatusNegotiation,
	LeadStatusWon,
	LeadStatusLost,
	LeadStatusArchived,
}

// Valid reports whether s is one of the known lead statuses
func (s LeadStatus) Valid() bool {
	for _, known := range LeadStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Lead represents a record from the leads table
// @Description Inbound sales inquiry as stored in the leads table
type Lead struct {
	ID                    string     `json:"id,omitempty"`
	FirstName             string     `json:"first_name,omitempty"`
	LastName              string     `json:"last_name,omitempty"`
	Email                 string     `json:"email,omitempty"`
	Phone                 string     `json:"phone,omitempty"`
	Source                LeadSource `json:"source,omitempty" example:"website"`
	Status                LeadStatus `json:"status,omitempty" example:"new"`
	InterestedVehicle     string     `json:"interested_vehicle,omitempty" example:"Volkswagen Golf"`
	Notes                 string     `json:"notes,omitempty"`
	LeadScore             *int       `json:"lead_score,omitempty"`
	ConversionProbability *float64   `json:"conversion_probability,omitempty"`
	AssignedTo            *string    `json:"assigned_to,omitempty"`
	CreatedAt             *time.Time `json:"created_at,omitempty"`
	UpdatedAt             *time.Time `json:"updated_at,omitempty"`
}

// ParsedLeadInfo holds display fields derived from a lead's free text.
// It is computed on demand and never stored.
// @Description Display fields extracted from a lead's free text
type ParsedLeadInfo struct {
	CustomerName    string `json:"customerName" example:"Jan Jansen"`
	Email           string `json:"email" example:"jan.jansen@example.com"`
	Phone           string `json:"phone" example:"0612345678"`
	VehicleInterest string `json:"vehicleInterest" example:"Volkswagen Golf"`
	Message         string `json:"message"`
	Subject         string `json:"subject" example:"Website Aanvraag"`
}

// LeadContacts lists every distinct email address and phone number found in a lead
// @Description All contact details found in the lead text
type LeadContacts struct {
	Emails []string `json:"emails"`
	Phones []string `json:"phones"`
}

// LeadDetail is a lead together with its derived fields
// @Description Lead with extracted display fields and contact candidates
type LeadDetail struct {
	Lead     *Lead          `json:"lead,omitempty"`
	Parsed   ParsedLeadInfo `json:"parsed"`
	Contacts LeadContacts   `json:"contacts"`
}

// LeadListResponse is returned by the lead list endpoint
// @Description Page of leads with their extracted display fields
type LeadListResponse struct {
	Leads  []LeadDetail `json:"leads"`
	Count  int64        `json:"count"`
	Limit  int          `json:"limit"`
	Offset int          `json:"offset"`
}

// LeadFilter narrows a lead query. Zero values mean "no filter".
type LeadFilter struct {
	Source        LeadSource
	Status        LeadStatus
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
	Limit         int
	Offset        int
}
