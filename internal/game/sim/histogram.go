package sim

import "fmt"

// OverLabel marks the first bin starting above the target HP.
const OverLabel = "100%+"

// Bin is one histogram bucket [Lower, Upper). The last bin also holds values
// equal to its Upper edge.
type Bin struct {
	Lower float64
	Upper float64
	Count int
	// Label describes Lower as a share of the target HP: "40%" for edges at
	// or below it, OverLabel for the first edge above it, empty afterwards.
	Label string
}

// Histogram is a sample partitioned into bins of TargetHP/10 anchored at 0.
type Histogram struct {
	TargetHP int64
	Width    float64
	Bins     []Bin
}

// binsPerHP is the number of bins covering [0, targetHP].
const binsPerHP = 10

// BuildHistogram bins samples. Bin k spans [k×w, (k+1)×w) with w = hp/10.
// The bins reach at least one width past hp and cover the sample maximum,
// rounded up to the next multiple of w. Counts always sum to len(samples).
func BuildHistogram(samples []int64, targetHP int64) Histogram {
	h := Histogram{TargetHP: targetHP}
	if targetHP <= 0 {
		return h
	}
	h.Width = float64(targetHP) / binsPerHP

	var maxDamage int64
	for _, d := range samples {
		maxDamage = max(maxDamage, d)
	}

	// Edge k is at k×hp/10, so the upper edge index is ceil(10×max/hp),
	// computed on integers to keep every edge an exact multiple of the width.
	bins := max(binsPerHP+1, ceilDiv(binsPerHP*maxDamage, targetHP))

	h.Bins = make([]Bin, bins)
	for k := range h.Bins {
		h.Bins[k] = Bin{
			Lower: h.edge(k),
			Upper: h.edge(k + 1),
			Label: edgeLabel(k),
		}
	}

	for _, d := range samples {
		h.Bins[h.index(d)].Count++
	}
	return h
}

func (h Histogram) edge(k int) float64 {
	return float64(k) * h.Width
}

// index returns the bin holding d. Comparisons use integers so values on an
// edge always land in the upper bin.
func (h Histogram) index(d int64) int {
	if d <= 0 {
		return 0
	}
	k := int(binsPerHP * d / h.TargetHP)
	return min(k, len(h.Bins)-1)
}

func edgeLabel(k int) string {
	switch {
	case k <= binsPerHP:
		return fmt.Sprintf("%d%%", k*100/binsPerHP)
	case k == binsPerHP+1:
		return OverLabel
	default:
		return ""
	}
}

// Edges returns every bin edge from 0 to the last upper edge.
func (h Histogram) Edges() []float64 {
	if len(h.Bins) == 0 {
		return nil
	}
	edges := make([]float64, 0, len(h.Bins)+1)
	for _, b := range h.Bins {
		edges = append(edges, b.Lower)
	}
	return append(edges, h.Bins[len(h.Bins)-1].Upper)
}

// Total returns the number of binned samples.
func (h Histogram) Total() int {
	total := 0
	for _, b := range h.Bins {
		total += b.Count
	}
	return total
}

// PeakCount returns the largest bin count.
func (h Histogram) PeakCount() int {
	peak := 0
	for _, b := range h.Bins {
		peak = max(peak, b.Count)
	}
	return peak
}

func ceilDiv(a, b int64) int {
	return int((a + b - 1) / b)
}
