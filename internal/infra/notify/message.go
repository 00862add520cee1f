// Package notify implements the per-channel delivery capabilities behind the
// dispatcher: email over SMTP, SMS and WhatsApp over HTTP gateways.
package notify

import (
	"fmt"
	"strings"

	"estatex/internal/domain/entity"
)

// matchSummary renders the short one-line message used by the text channels.
func matchSummary(alert *entity.Alert, property *entity.Property) string {
	var b strings.Builder
	fmt.Fprintf(&b, "New listing for %q: %s", alert.Name, property.Title)
	if property.Location != "" {
		fmt.Fprintf(&b, " in %s", property.Location)
	}
	if property.PriceNumeric > 0 {
		fmt.Fprintf(&b, " at ₹%.0f", property.PriceNumeric)
	}

	return b.String()
}

// matchBody renders the multi-line email body.
func matchBody(alert *entity.Alert, property *entity.Property) string {
	lines := []string{
		fmt.Sprintf("Your alert %q has a new match.", alert.Name),
		"",
		"Title:    " + property.Title,
		"Location: " + property.Location,
		"Type:     " + property.PropertyType,
	}
	if property.PriceNumeric > 0 {
		lines = append(lines, fmt.Sprintf("Price:    ₹%.0f", property.PriceNumeric))
	}
	if property.Area > 0 {
		lines = append(lines, fmt.Sprintf("Area:     %.0f sqft", property.Area))
	}
	if len(property.Amenities) > 0 {
		lines = append(lines, "Amenities: "+strings.Join(property.Amenities, ", "))
	}

	return strings.Join(lines, "\r\n")
}
