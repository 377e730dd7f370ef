package analytics

import (
	"fmt"
	"strings"
)

const reportDayLayout = "2006-01-02"

// FormatReport - текстовая сводка для админов в боте
func FormatReport(title string, r Report, top int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "📊 %s\n", title)
	fmt.Fprintf(&b, "%s - %s", r.From.Format(reportDayLayout), r.To.Format(reportDayLayout))
	if r.Country != "" {
		fmt.Fprintf(&b, " (%s)", r.Country)
	}
	b.WriteString("\n\n")

	if r.Total == 0 {
		b.WriteString("Кликов нет")
		return b.String()
	}

	fmt.Fprintf(&b, "Всего кликов: %d\n\n", r.Total)

	b.WriteString("По офферам:\n")
	for _, oc := range TopOffers(r.ByOffer, top) {
		fmt.Fprintf(&b, "• %s: %d\n", oc.OfferSlug, oc.Clicks)
	}

	// дневной ряд показываем только для коротких периодов
	if len(r.Daily) > 1 && len(r.Daily) <= 31 {
		b.WriteString("\nПо дням:\n")
		for _, d := range r.Daily {
			fmt.Fprintf(&b, "%s: %d\n", d.Day.Format(reportDayLayout), d.Clicks)
		}
	}

	return strings.TrimRight(b.String(), "\n")
}
