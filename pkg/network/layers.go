package network

import "strings"

// LineMatching reports how far a public transport line has been matched
// onto the road graph. A section list is considered matched when none of
// its section ids carries the layer's own prefix - unmatched lines still
// reference synthetic layer-local sections (e.g. "BUS_...") instead of
// road sections.
type LineMatching struct {
	LineID       string  `json:"line_id" bson:"line_id"`
	SectionLists int     `json:"section_lists" bson:"section_lists"`
	Matched      int     `json:"matched" bson:"matched"`
	Rate         float64 `json:"rate" bson:"rate"`
	FullyMatched bool    `json:"fully_matched" bson:"fully_matched"`
}

// MatchingReport aggregates per-line map-matching rates for one layer.
type MatchingReport struct {
	LayerID           string         `json:"layer_id" bson:"layer_id"`
	Lines             []LineMatching `json:"lines" bson:"lines"`
	FullyMatchedLines int            `json:"fully_matched_lines" bson:"fully_matched_lines"`
	AverageRate       float64        `json:"average_rate" bson:"average_rate"`
}

// Matching computes map-matching statistics for the layer. prefix is the
// marker identifying layer-local (unmatched) section ids, typically the
// layer's vehicle type. Lines without section lists count as rate 0.
func (l Layer) Matching(prefix string) MatchingReport {
	rep := MatchingReport{LayerID: l.ID}

	var sum float64
	for _, line := range l.Lines {
		lm := LineMatching{LineID: line.ID, SectionLists: len(line.Sections), FullyMatched: true}
		for _, sections := range line.Sections {
			matched := true
			for _, id := range sections {
				if strings.HasPrefix(id, prefix) {
					matched = false
					lm.FullyMatched = false
				}
			}
			if matched {
				lm.Matched++
			}
		}
		if lm.SectionLists > 0 {
			lm.Rate = float64(lm.Matched) / float64(lm.SectionLists)
		} else {
			lm.FullyMatched = false
		}
		if lm.FullyMatched {
			rep.FullyMatchedLines++
		}
		sum += lm.Rate
		rep.Lines = append(rep.Lines, lm)
	}

	if len(l.Lines) > 0 {
		rep.AverageRate = sum / float64(len(l.Lines))
	}
	return rep
}

// MatchedLines returns the ids of lines whose matching rate reaches the
// given threshold, in line order.
func (r MatchingReport) MatchedLines(threshold float64) []string {
	var out []string
	for _, lm := range r.Lines {
		if lm.Rate >= threshold {
			out = append(out, lm.LineID)
		}
	}
	return out
}
