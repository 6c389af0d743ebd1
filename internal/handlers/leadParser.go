package handlers

import (
	"regexp"
	"strings"

	"autohuis/backoffice-leads/internal/dto"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// UnknownCustomerName is shown when no name can be found in the lead text
	UnknownCustomerName = "Onbekende klant"
	// DefaultSubject is the subject for sources without a dedicated label
	DefaultSubject = "Lead"
)

// Patterns are compiled once; *regexp.Regexp is safe for concurrent use.
var (
	// "autotrack | Volkswagen Golf 1.5 TSI" in forwarded portal mails
	autotrackSubjectRe = regexp.MustCompile(`(?i)autotrack\s*\|\s*([^\n*|]+)`)

	// two words between an optional "*" bullet and a "*" bullet or the end of the text
	customerNameRe = regexp.MustCompile(`\*?\s*([a-z]+\s+[a-z]+)\s*(?:\*|$)`)

	leadEmailRe = regexp.MustCompile(`(?i)[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}`)

	// +31 6 mobile, +31 landline, local 06 mobile (in that order)
	dutchPhoneRe = regexp.MustCompile(`\+31\s?6\s?\d{8}|\+31\s?\d{2}\s?\d{7}|06\s?\d{8}`)

	vehicleInterestRe = regexp.MustCompile(`(?im)interesse in de\s+(.+?)\s*(?:\.|\bwilt\b|met vriendelijke groet|vriendelijke groet|groeten|\bmvg\b|\*|bekijk|$)`)

	whitespaceRe = regexp.MustCompile(`\s+`)
)

// ParseLeadData derives display fields from a lead's loosely structured text.
//
// Every field falls back to a placeholder when its pattern does not match, so the
// function never fails. It reads nothing but the lead and keeps no state.
func ParseLeadData(lead *dto.Lead) dto.ParsedLeadInfo {
	if lead == nil {
		lead = &dto.Lead{}
	}

	raw := leadSearchText(lead)
	text := strings.ToLower(raw)
	caser := cases.Title(language.Dutch)

	return dto.ParsedLeadInfo{
		CustomerName:    extractCustomerName(text, caser),
		Email:           extractEmail(raw),
		Phone:           extractPhone(text),
		VehicleInterest: extractVehicleInterest(lead, text, caser),
		Message:         text,
		Subject:         extractSubject(text, lead.Source),
	}
}

// SubjectForSource returns the canned subject label for a lead source
func SubjectForSource(source dto.LeadSource) string {
	switch source {
	case dto.LeadSourceWebsite:
		return "Website Aanvraag"
	case dto.LeadSourceAutoTrack:
		return "AutoTrack Lead"
	case dto.LeadSourceMarktplaats:
		return "Marktplaats Lead"
	case dto.LeadSourceAutoScout24:
		return "AutoScout24 Lead"
	case dto.LeadSourcePhone, dto.LeadSourceEmail, dto.LeadSourceWalkIn,
		dto.LeadSourceReferral, dto.LeadSourceSocialMedia, dto.LeadSourceOther:
		return DefaultSubject
	default:
		return DefaultSubject
	}
}

// HasPortalSubject reports whether the lead text carries an "autotrack | ..." subject marker
func HasPortalSubject(lead *dto.Lead) bool {
	if lead == nil {
		return false
	}
	_, ok := portalSubject(leadSearchText(lead))
	return ok
}

// leadSearchText joins the lead's text fields into one buffer, skipping empty ones
func leadSearchText(lead *dto.Lead) string {
	fields := []string{lead.FirstName, lead.LastName, lead.Phone, lead.Email, lead.Notes}
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			parts = append(parts, f)
		}
	}
	return strings.Join(parts, " ")
}

// extractSubject reads the portal marker from the lowercased buffer, so a marker subject is lowercase
func extractSubject(text string, source dto.LeadSource) string {
	if subject, ok := portalSubject(text); ok {
		return subject
	}
	return SubjectForSource(source)
}

func portalSubject(text string) (string, bool) {
	m := autotrackSubjectRe.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	subject := strings.TrimSpace(m[1])
	return subject, subject != ""
}

func extractCustomerName(text string, caser cases.Caser) string {
	m := customerNameRe.FindStringSubmatch(text)
	if m == nil {
		return UnknownCustomerName
	}
	return caser.String(whitespaceRe.ReplaceAllString(m[1], " "))
}

func extractEmail(raw string) string {
	return leadEmailRe.FindString(raw)
}

func extractPhone(text string) string {
	return cleanPhone(dutchPhoneRe.FindString(text))
}

func extractVehicleInterest(lead *dto.Lead, text string, caser cases.Caser) string {
	if lead.InterestedVehicle != "" {
		return lead.InterestedVehicle
	}

	m := vehicleInterestRe.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	vehicle := strings.TrimSpace(m[1])
	if vehicle == "" {
		return ""
	}
	return caser.String(vehicle)
}
