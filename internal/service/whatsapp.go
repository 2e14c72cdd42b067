package service

import (
	"fmt"
	"net/url"
	"strings"

	"qrmenu/internal/domain"
)

// BuildWhatsAppLink formats a cart as a wa.me deep link. The number keeps
// digits only; amounts render without decimals, matching the public menu.
func BuildWhatsAppLink(number string, entries []domain.CartEntry, subtotal float64, table string) string {
	var digits strings.Builder
	for _, r := range number {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	lines := []string{"New order from QR menu:"}
	for _, entry := range entries {
		lines = append(lines, fmt.Sprintf("• %s x%d = Rs %.0f",
			entry.Name, entry.Quantity, entry.Price*float64(entry.Quantity)))
	}
	lines = append(lines, fmt.Sprintf("Total: Rs %.0f", subtotal))
	if table != "" {
		lines = append(lines, "Table: "+table)
	}

	text := url.QueryEscape(strings.Join(lines, "\n"))
	return "https://wa.me/" + digits.String() + "?text=" + text
}
