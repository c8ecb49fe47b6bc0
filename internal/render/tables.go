// Package render formats report rows as the plain-text result tables.
// Output is deterministic byte-for-byte and is compared against golden
// files by the harness.
package render

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/roach88/donorlens/internal/relation"
	"github.com/roach88/donorlens/internal/report"
)

var money = message.NewPrinter(language.English)

// FormatMoney renders cents as a dollar amount with thousands grouping,
// e.g. 1240000 -> "$12,400.00".
func FormatMoney(m relation.Money) string {
	v := int64(m)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return money.Sprintf("%s$%d.%02d", sign, v/100, v%100)
}

// DonationLeadersTable renders the donation leader report.
func DonationLeadersTable(rows []report.DonationLeader) string {
	var b strings.Builder
	writeTitle(&b, "Top Donation Assignments by Donor Type")

	if len(rows) == 0 {
		b.WriteString("No qualifying donations.\n")
		return b.String()
	}
	for i, row := range rows {
		fmt.Fprintf(&b, "%d. %s (%s) | Region: %s | Donor: %s | Total: %s\n",
			i+1, row.AssignmentName, row.AssignmentID, row.Region, row.DonorType, FormatMoney(row.Total))
	}
	return b.String()
}

// RegionalImpactTable renders the regional impact report.
func RegionalImpactTable(rows []report.RegionalImpactLeader) string {
	var b strings.Builder
	writeTitle(&b, "Regional Impact Leaders")

	if len(rows) == 0 {
		b.WriteString("No regions with funded assignments.\n")
		return b.String()
	}
	for _, row := range rows {
		fmt.Fprintf(&b, "%s: %s (%s) | Impact: %s | Donations: %d\n",
			row.Region, row.AssignmentName, row.AssignmentID, row.Impact, row.DonationCount)
	}
	return b.String()
}

func writeTitle(b *strings.Builder, title string) {
	b.WriteString(title)
	b.WriteByte('\n')
	b.WriteString(strings.Repeat("-", len(title)))
	b.WriteByte('\n')
}
