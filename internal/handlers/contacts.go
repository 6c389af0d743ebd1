package handlers

import (
	"strings"

	"autohuis/backoffice-leads/internal/dto"
)

// ExtractContacts returns every distinct email address and Dutch phone number in text,
// in order of first appearance. Slices are never nil so they serialize as [].
func ExtractContacts(text string) dto.LeadContacts {
	return dto.LeadContacts{
		Emails: extractEmailsFromText(text),
		Phones: extractPhonesFromText(text),
	}
}

// LeadContactsFor mines the contact details from all text fields of a lead
func LeadContactsFor(lead *dto.Lead) dto.LeadContacts {
	if lead == nil {
		return ExtractContacts("")
	}
	return ExtractContacts(leadSearchText(lead))
}

// extractEmailsFromText extracts email addresses, keeping the first spelling of each
func extractEmailsFromText(text string) []string {
	matches := leadEmailRe.FindAllString(text, -1)

	seen := make(map[string]bool)
	unique := []string{}
	for _, email := range matches {
		lower := strings.ToLower(email)
		if !seen[lower] {
			seen[lower] = true
			unique = append(unique, email)
		}
	}
	return unique
}

// extractPhonesFromText extracts phone numbers with internal whitespace removed
func extractPhonesFromText(text string) []string {
	matches := dutchPhoneRe.FindAllString(text, -1)

	seen := make(map[string]bool)
	unique := []string{}
	for _, phone := range matches {
		cleaned := cleanPhone(phone)
		if !seen[cleaned] {
			seen[cleaned] = true
			unique = append(unique, cleaned)
		}
	}
	return unique
}

func cleanPhone(phone string) string {
	return whitespaceRe.ReplaceAllString(phone, "")
}
