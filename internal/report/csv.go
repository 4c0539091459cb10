package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/udisondev/lbsim/internal/game/sim"
)

var gridCSVHeader = []string{"attack_level", "defense_level", "mean", "rounded_mean", "hp_shaved_pct"}

// WriteGridCSV writes the grid in long form, one record per cell, with
// locale-independent numbers.
func WriteGridCSV(w io.Writer, g sim.Grid) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(gridCSVHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, row := range g.Cells {
		for _, c := range row {
			record := []string{
				strconv.Itoa(int(c.AttackLevel)),
				strconv.Itoa(int(c.DefenseLevel)),
				strconv.FormatFloat(c.Mean, 'f', 2, 64),
				strconv.FormatInt(c.RoundedMean(), 10),
				strconv.FormatFloat(c.HPShaved, 'f', 2, 64),
			}
			if err := writer.Write(record); err != nil {
				return fmt.Errorf("writing cell atk %+d def %+d: %w", c.AttackLevel, c.DefenseLevel, err)
			}
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}
	return nil
}
