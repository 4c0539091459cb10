// Package report renders simulation results as text tables, histograms and
// CSV.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/udisondev/lbsim/internal/game/sim"
)

// Column headers of the quick comparison table.
const (
	cornerHeader  = "平均ダメ (HP割合)"
	attackHeader  = "攻撃バフ %d"
	defenseHeader = "防御バフ %+d"
)

// Printer writes reports with locale-aware number formatting.
type Printer struct {
	out io.Writer
	p   *message.Printer
}

// NewPrinter creates a Printer for a BCP 47 locale such as "ja" or "en-US".
func NewPrinter(out io.Writer, locale string) (*Printer, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parsing locale %q: %w", locale, err)
	}
	return &Printer{out: out, p: message.NewPrinter(tag)}, nil
}

// Header identifies the run. The seed is printed without grouping so it can
// be passed back to -seed.
func (pr *Printer) Header(mode, fingerprint string, seed uint64, trials int) error {
	_, err := pr.p.Fprintf(pr.out, "lbsim %s  fingerprint=%s  seed=%s  trials=%d\n\n",
		mode, fingerprint, strconv.FormatUint(seed, 10), trials)
	return err
}

// Damage writes a single trial.
func (pr *Printer) Damage(damage, targetHP int64) error {
	_, err := pr.p.Fprintf(pr.out, "ダメージ: %d (%.1f%%)\n", damage, sim.HPShaved(float64(damage), targetHP))
	return err
}

// Grid writes the quick comparison table: rows are attack buff levels,
// columns defense buff levels, cells "mean (HP%)".
func (pr *Printer) Grid(g sim.Grid) error {
	rows := make([][]string, 0, len(g.Cells)+1)

	header := []string{cornerHeader}
	for _, def := range g.DefenseLevels {
		header = append(header, fmt.Sprintf(defenseHeader, def))
	}
	rows = append(rows, header)

	for i, row := range g.Cells {
		line := []string{fmt.Sprintf(attackHeader, g.AttackLevels[i])}
		for _, c := range row {
			line = append(line, pr.p.Sprintf("%d (%.1f%%)", c.RoundedMean(), c.HPShaved))
		}
		rows = append(rows, line)
	}

	return writeTable(pr.out, rows)
}

// Summary writes the statistics block of a detail run.
func (pr *Printer) Summary(res sim.DetailResult) error {
	s := res.Summary
	lines := []struct {
		label string
		value string
	}{
		{"最大ダメージ", pr.p.Sprintf("%d", s.Max)},
		{"最小ダメージ", pr.p.Sprintf("%d", s.Min)},
		{"平均ダメージ", pr.p.Sprintf("%d", s.RoundedMean)},
		{"削ったHPの平均(%)", pr.p.Sprintf("%.1f%%", s.HPShaved)},
		{"撃破率", pr.p.Sprintf("%.1f%%", s.OneShotRate)},
		{"標準偏差", pr.p.Sprintf("%.1f", s.StdDev)},
		{"P50 / P90 / P99", pr.p.Sprintf("%d / %d / %d", s.P50, s.P90, s.P99)},
		{"理論範囲", pr.p.Sprintf("%d - %d", res.Lower, res.Upper)},
	}

	rows := make([][]string, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, []string{l.label + ":", l.value})
	}
	return writeTable(pr.out, rows)
}

// writeTable pads every column to its widest cell.
func writeTable(w io.Writer, rows [][]string) error {
	var widths []int
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			widths[i] = max(widths[i], displayWidth(cell))
		}
	}

	var b strings.Builder
	for _, row := range rows {
		for i, cell := range row {
			if i > 0 {
				b.WriteString("  ")
			}
			if i == len(row)-1 {
				b.WriteString(cell)
				continue
			}
			b.WriteString(padRight(cell, widths[i]))
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}
