package components

import (
	"fmt"
	"math"
	"sort"

	"sondreal/domctl/internal/domeneshop"
	"sondreal/domctl/internal/tui/styles"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
)

// chartHeight is the fixed height for the invoice bar chart.
const chartHeight = 8

var (
	paidBarStyle   = lipgloss.NewStyle().Foreground(styles.Green)
	unpaidBarStyle = lipgloss.NewStyle().Foreground(styles.Yellow)
	creditBarStyle = lipgloss.NewStyle().Foreground(styles.Blue)
)

type monthTotals struct {
	paid   float64
	unpaid float64
	credit float64
}

// groupInvoicesByMonth sums invoice amounts per issue month. Credit note
// amounts are taken by magnitude so the credited sum is positive whether
// the API reports them as negative amounts or not. Invoices without a
// parseable issue date are skipped.
func groupInvoicesByMonth(invoices []domeneshop.Invoice) map[string]*monthTotals {
	byMonth := make(map[string]*monthTotals)
	for _, inv := range invoices {
		month := issueMonth(inv)
		if month == "" {
			continue
		}
		totals, ok := byMonth[month]
		if !ok {
			totals = &monthTotals{}
			byMonth[month] = totals
		}
		switch {
		case inv.Type == domeneshop.InvoiceTypeCreditNote:
			totals.credit += math.Abs(float64(inv.Amount))
		case inv.Status == domeneshop.InvoiceStatusUnpaid:
			totals.unpaid += float64(inv.Amount)
		default:
			totals.paid += float64(inv.Amount)
		}
	}
	return byMonth
}

// InvoiceChart renders a bar chart of invoice amounts grouped by issue
// month. Paid and unpaid amounts get separate bars per month; credit
// notes count against the month they were issued. Returns an empty-data
// hint if there is nothing to plot.
func InvoiceChart(invoices []domeneshop.Invoice, width int) string {
	if len(invoices) == 0 {
		return styles.MutedText.Render("invoices: no data")
	}

	byMonth := groupInvoicesByMonth(invoices)
	if len(byMonth) == 0 {
		return styles.MutedText.Render("invoices: no data")
	}

	months := make([]string, 0, len(byMonth))
	for month := range byMonth {
		months = append(months, month)
	}
	sort.Strings(months)

	data := make([]barchart.BarData, 0, len(months))
	for _, month := range months {
		totals := byMonth[month]
		values := []barchart.BarValue{
			{Name: "paid", Value: totals.paid, Style: paidBarStyle},
			{Name: "unpaid", Value: totals.unpaid, Style: unpaidBarStyle},
		}
		if totals.credit > 0 {
			values = append(values, barchart.BarValue{Name: "credit", Value: totals.credit, Style: creditBarStyle})
		}
		data = append(data, barchart.BarData{Label: month, Values: values})
	}

	bc := barchart.New(width, chartHeight)
	bc.PushAll(data)
	bc.Draw()

	legend := styles.MutedText.Render(fmt.Sprintf("  %s paid   %s unpaid",
		paidBarStyle.Render("█"), unpaidBarStyle.Render("█")))

	header := styles.Label.Render("Amounts by month")
	return lipgloss.JoinVertical(lipgloss.Left, header, bc.View(), legend)
}

// issueMonth reduces an issued date (YYYY-MM-DD) to its month (YYYY-MM).
func issueMonth(inv domeneshop.Invoice) string {
	if len(inv.IssuedDate) < 7 {
		return ""
	}
	return inv.IssuedDate[:7]
}
