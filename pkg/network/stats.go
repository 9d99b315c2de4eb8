package network

import (
	"github.com/montanaflynn/stats"
)

// LengthStats summarizes the distribution of section lengths.
// MinSections and MaxSections list every section id attaining the extreme,
// in document order, since ties are common in grid-generated networks.
type LengthStats struct {
	Min         float64  `json:"min" bson:"min"`
	Max         float64  `json:"max" bson:"max"`
	Mean        float64  `json:"mean" bson:"mean"`
	Median      float64  `json:"median" bson:"median"`
	MinSections []string `json:"min_sections" bson:"min_sections"`
	MaxSections []string `json:"max_sections" bson:"max_sections"`
}

// LengthStats computes summary statistics over all section lengths.
// ok is false when the network has no sections.
func (r *Roads) LengthStats() (LengthStats, bool) {
	if len(r.Sections) == 0 {
		return LengthStats{}, false
	}

	lengths := make([]float64, len(r.Sections))
	for i, s := range r.Sections {
		lengths[i] = s.Length
	}

	// Errors only occur on empty input, which is excluded above.
	mean, _ := stats.Mean(lengths)
	median, _ := stats.Median(lengths)
	min, _ := stats.Min(lengths)
	max, _ := stats.Max(lengths)

	ls := LengthStats{Min: min, Max: max, Mean: mean, Median: median}
	for _, s := range r.Sections {
		if s.Length == min {
			ls.MinSections = append(ls.MinSections, s.ID)
		}
		if s.Length == max {
			ls.MaxSections = append(ls.MaxSections, s.ID)
		}
	}
	return ls, true
}

// ConnectivityIndex is the section-to-node ratio, a coarse connectivity
// measure. ok is false when the network declares no nodes.
func (r *Roads) ConnectivityIndex() (float64, bool) {
	if len(r.Nodes) == 0 {
		return 0, false
	}
	return float64(len(r.Sections)) / float64(len(r.Nodes)), true
}

// SectionsPerZone is the average number of sections per declared zone.
// ok is false when the network declares no zones.
func (r *Roads) SectionsPerZone() (float64, bool) {
	if len(r.Zones) == 0 {
		return 0, false
	}
	return float64(len(r.Sections)) / float64(len(r.Zones)), true
}
