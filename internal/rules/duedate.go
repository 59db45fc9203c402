package rules

import (
	"regexp"
	"strings"
)

// dueMarkerPattern matches a "Due: YYYY-MM-DD" marker together with the
// whitespace and parentheses wrapped around it.
var dueMarkerPattern = regexp.MustCompile(`\s*\(?\s*Due:\s*(\d{4}-\d{2}-\d{2})\s*\)?`)

// DecodedDescription is a description split into free text and due date
type DecodedDescription struct {
	CleanDescription string `json:"clean_description" yaml:"clean_description"`
	// DueDate is empty when the description carries no marker
	DueDate string `json:"due_date,omitempty" yaml:"due_date,omitempty"`
}

// HasDueDate reports whether a due-date marker was found
func (d DecodedDescription) HasDueDate() bool {
	return d.DueDate != ""
}

// EncodeDueDate appends a "Due: YYYY-MM-DD" marker to a description.
// dueDate must already match YYYY-MM-DD.
func EncodeDueDate(description, dueDate string) string {
	description = strings.TrimSpace(description)
	if description == "" {
		return "Due: " + dueDate
	}
	return description + " (Due: " + dueDate + ")"
}

// DecodeDueDate extracts the due date from a description. The first marker
// supplies the date and every marker is removed from the clean text, so
// re-encoding the result always yields exactly one marker.
// Text without a marker is returned trimmed and never produces an error.
func DecodeDueDate(description string) DecodedDescription {
	first := dueMarkerPattern.FindStringSubmatch(description)
	if first == nil {
		return DecodedDescription{CleanDescription: strings.TrimSpace(description)}
	}

	clean := description
	// Cutting markers out can join text into a new marker, so repeat until none remain
	for dueMarkerPattern.MatchString(clean) {
		clean = removeDueMarkers(clean)
	}

	return DecodedDescription{
		CleanDescription: clean,
		DueDate:          first[1],
	}
}

// removeDueMarkers cuts every marker out of s and joins the remaining text
func removeDueMarkers(s string) string {
	matches := dueMarkerPattern.FindAllStringIndex(s, -1)

	clean := strings.TrimSpace(s[:matches[0][0]])
	for i, m := range matches {
		end := len(s)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		clean = joinAtCut(clean, s[m[1]:end])
	}
	return clean
}

// joinAtCut joins the text on either side of a removed marker. A "(" left
// directly before the cut and a ")" directly after it belonged to the marker
// and are dropped in pairs. Text away from the cut is never touched, so a
// marker appended by EncodeDueDate comes off without changing the rest.
func joinAtCut(before, after string) string {
	before = strings.TrimSpace(before)
	after = strings.TrimSpace(after)
	for strings.HasSuffix(before, "(") && strings.HasPrefix(after, ")") {
		before = strings.TrimSpace(before[:len(before)-1])
		after = strings.TrimSpace(after[1:])
	}

	switch {
	case before == "":
		return after
	case after == "":
		return before
	default:
		return before + " " + after
	}
}
