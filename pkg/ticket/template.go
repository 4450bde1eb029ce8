package ticket

import "strings"

// Placeholders recognized by the title format template.
const (
	PlaceholderPrefix = "%prefix%"
	PlaceholderID     = "%id%"
	PlaceholderTitle  = "%title%"
)

// PlaceholderTicketNumber is the placeholder a ticket link template must
// contain for link composition to produce a message.
const PlaceholderTicketNumber = "%ticketNumber%"

// RenderTitle substitutes the fixed placeholder set of the title format:
// %prefix% becomes the configured ticket prefix, %id% the extracted ticket
// number, and %title% the original title verbatim. Tokens outside this set
// are left untouched.
func RenderTitle(format, prefix, id, title string) string {
	r := strings.NewReplacer(
		PlaceholderPrefix, prefix,
		PlaceholderID, id,
		PlaceholderTitle, title,
	)
	return r.Replace(format)
}

// RenderLink substitutes the ticket number into the link template. It reports
// false when the template lacks the %ticketNumber% placeholder, in which case
// no link message should be produced.
func RenderLink(template, number string) (string, bool) {
	if !strings.Contains(template, PlaceholderTicketNumber) {
		return "", false
	}
	return strings.ReplaceAll(template, PlaceholderTicketNumber, number), true
}
