package report

import (
	"strings"

	"github.com/udisondev/lbsim/internal/game/sim"
)

// barWidth is the length of the bar of the most populated bin.
const barWidth = 40

// Histogram writes one line per bin: the HP label of its lower edge, the
// damage range, a bar scaled to the peak bin and the count.
func (pr *Printer) Histogram(h sim.Histogram) error {
	if len(h.Bins) == 0 {
		return nil
	}
	peak := h.PeakCount()

	rows := make([][]string, 0, len(h.Bins)+1)
	rows = append(rows, []string{"HP", "ダメージ", "", "回数"})
	for _, b := range h.Bins {
		rows = append(rows, []string{
			b.Label,
			pr.p.Sprintf("%.0f - %.0f", b.Lower, b.Upper),
			bar(b.Count, peak),
			pr.p.Sprintf("%d", b.Count),
		})
	}
	return writeTable(pr.out, rows)
}

func bar(count, peak int) string {
	if count == 0 || peak == 0 {
		return strings.Repeat(" ", barWidth)
	}
	n := max(1, count*barWidth/peak)
	return strings.Repeat("#", n) + strings.Repeat(" ", barWidth-n)
}
