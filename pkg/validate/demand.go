package validate

import (
	"encoding/csv"
	"fmt"
	"io"
	"maps"
	"math"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/transitlab/netlint/pkg/errors"
)

// departureLayout is the required wall-clock format for DEPARTURE values.
const departureLayout = "15:04:05"

// Demand CSV column names. The file is semicolon separated with a header
// row; MOBILITY SERVICES is optional.
const (
	colID          = "ID"
	colDeparture   = "DEPARTURE"
	colOrigin      = "ORIGIN"
	colDestination = "DESTINATION"
	colServices    = "MOBILITY SERVICES"
)

// DemandOptions tunes trip-level checks.
type DemandOptions struct {
	// Radius is the minimum origin-to-destination distance. Trips shorter
	// than this produce a warning. Zero disables the check.
	Radius float64
}

// DemandReport is the outcome of validating one travel demand file.
type DemandReport struct {
	Result

	Total   int `json:"total" bson:"total"`     // data rows
	Invalid int `json:"invalid" bson:"invalid"` // rows with at least one error
	Warned  int `json:"warned" bson:"warned"`   // rows with at least one warning

	FirstDeparture string `json:"first_departure,omitempty" bson:"first_departure,omitempty"`
	LastDeparture  string `json:"last_departure,omitempty" bson:"last_departure,omitempty"`

	// Services counts occurrences of each declared mobility service.
	Services map[string]int `json:"services,omitempty" bson:"services,omitempty"`
}

// ValidationRate is the share of valid rows, in percent. 100 for an
// empty file.
func (d *DemandReport) ValidationRate() float64 {
	if d.Total == 0 {
		return 100
	}
	return 100 - float64(d.Invalid)*100/float64(d.Total)
}

// Demand validates a semicolon-separated travel demand file. Structural
// problems (missing columns, unreadable CSV) abort the run; row-level
// problems accumulate as issues and every row is checked.
func Demand(r io.Reader, opts DemandOptions) (*DemandReport, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDemand, err, "read demand file")
	}

	rep := &DemandReport{}
	flagEmptyLines(rep, raw)

	cr := csv.NewReader(strings.NewReader(string(raw)))
	cr.Comma = ';'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = false

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDemand, err, "parse demand file")
	}
	if len(rows) == 0 {
		rep.errorf(CheckDemandColumns, "", "file has no header row")
		return rep, nil
	}

	cols, ok := demandColumns(rep, rows[0])
	if !ok {
		return rep, nil
	}

	seen := make(map[string]int)
	var prev time.Time
	havePrev := false

	for i, row := range rows[1:] {
		ref := fmt.Sprintf("row %d", i+2)
		before := len(rep.Issues)
		warnBefore := countWarnings(rep.Issues)
		rep.Total++

		id := field(row, cols[colID])
		if id == "" {
			rep.errorf(CheckDemandColumns, ref, "missing user id")
		} else {
			seen[id]++
		}

		dep, depOK := checkDeparture(rep, ref, field(row, cols[colDeparture]))
		origin, originOK := checkCoordinate(rep, ref, colOrigin, field(row, cols[colOrigin]))
		dest, destOK := checkCoordinate(rep, ref, colDestination, field(row, cols[colDestination]))

		if originOK && destOK {
			checkTrip(rep, ref, origin, dest, opts.Radius)
		}
		if depOK {
			if havePrev && dep.Before(prev) {
				rep.warnf(CheckDemandOrder, ref, "departure %s earlier than previous row", dep.Format(departureLayout))
			}
			prev, havePrev = dep, true

			s := dep.Format(departureLayout)
			if rep.FirstDeparture == "" || s < rep.FirstDeparture {
				rep.FirstDeparture = s
			}
			if s > rep.LastDeparture {
				rep.LastDeparture = s
			}
		}

		if idx := cols[colServices]; idx >= 0 {
			checkServices(rep, ref, field(row, idx))
		}

		if countErrors(rep.Issues[before:]) > 0 {
			rep.Invalid++
		}
		if countWarnings(rep.Issues)-warnBefore > 0 {
			rep.Warned++
		}
	}

	for _, id := range slices.Sorted(maps.Keys(seen)) {
		if n := seen[id]; n > 1 {
			rep.warnf(CheckDemandColumns, id, "user id appears %d times", n)
		}
	}

	return rep, nil
}

// DemandFile validates the demand file at path.
func DemandFile(path string, opts DemandOptions) (*DemandReport, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	defer f.Close()
	return Demand(f, opts)
}

// flagEmptyLines reports blank interior lines, which the CSV reader would
// silently skip. A single trailing newline is fine.
func flagEmptyLines(rep *DemandReport, raw []byte) {
	lines := strings.Split(string(raw), "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) == "" && i != len(lines)-1 {
			rep.errorf(CheckDemandColumns, fmt.Sprintf("row %d", i+1), "empty line")
		}
	}
}

// demandColumns resolves header names to column indexes. Missing required
// columns are errors; a missing MOBILITY SERVICES column is a warning.
func demandColumns(rep *DemandReport, header []string) (map[string]int, bool) {
	cols := map[string]int{
		colID: -1, colDeparture: -1, colOrigin: -1, colDestination: -1, colServices: -1,
	}
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}

	ok := true
	for _, name := range []string{colID, colDeparture, colOrigin, colDestination} {
		if cols[name] < 0 {
			rep.errorf(CheckDemandColumns, name, "required column not found")
			ok = false
		}
	}
	if cols[colServices] < 0 {
		rep.warnf(CheckDemandColumns, colServices, "optional column not found")
	}
	return cols, ok
}

func checkDeparture(rep *DemandReport, ref, value string) (time.Time, bool) {
	if value == "" {
		rep.errorf(CheckDemandDeparture, ref, "missing departure time")
		return time.Time{}, false
	}
	t, err := time.Parse(departureLayout, value)
	if err != nil {
		rep.errorf(CheckDemandDeparture, ref, "departure %q is not HH:MM:SS", value)
		return time.Time{}, false
	}
	return t, true
}

// checkCoordinate parses a space-separated "x y" coordinate pair.
func checkCoordinate(rep *DemandReport, ref, col, value string) ([2]float64, bool) {
	if value == "" {
		rep.errorf(CheckDemandCoordinate, ref, "missing %s", col)
		return [2]float64{}, false
	}
	parts := strings.Fields(value)
	if len(parts) != 2 {
		rep.errorf(CheckDemandCoordinate, ref, "%s %q is not an x y pair", col, value)
		return [2]float64{}, false
	}

	var pair [2]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			rep.errorf(CheckDemandCoordinate, ref, "%s coordinate %q is not a number", col, p)
			return [2]float64{}, false
		}
		pair[i] = f
	}
	return pair, true
}

func checkTrip(rep *DemandReport, ref string, origin, dest [2]float64, radius float64) {
	if origin == dest {
		rep.warnf(CheckDemandTrip, ref, "origin equals destination")
		return
	}
	if radius > 0 {
		d := math.Hypot(dest[0]-origin[0], dest[1]-origin[1])
		if d < radius {
			rep.warnf(CheckDemandTrip, ref, "trip distance %.2f below radius %.2f", d, radius)
		}
	}
}

// checkServices flags empty tokens in a space-separated service list and
// counts occurrences of each service.
func checkServices(rep *DemandReport, ref, value string) {
	if value == "" {
		return
	}
	for _, svc := range strings.Split(value, " ") {
		if svc == "" {
			rep.errorf(CheckDemandColumns, ref, "empty mobility service, check for stray spaces")
			continue
		}
		if rep.Services == nil {
			rep.Services = make(map[string]int)
		}
		rep.Services[svc]++
	}
}

func field(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func countErrors(issues []Issue) int {
	n := 0
	for _, i := range issues {
		if i.Severity == SeverityError {
			n++
		}
	}
	return n
}

func countWarnings(issues []Issue) int {
	n := 0
	for _, i := range issues {
		if i.Severity == SeverityWarning {
			n++
		}
	}
	return n
}
