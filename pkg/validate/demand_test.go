package validate

import (
	"strings"
	"testing"
)

const validDemand = `ID;DEPARTURE;ORIGIN;DESTINATION;MOBILITY SERVICES
U1;07:00:00;0 0;100 200;BUS
U2;07:15:30;50 50;300 120;BUS METRO
U3;08:00:00;10 10;400 0;CAR
`

func TestDemandValid(t *testing.T) {
	rep, err := Demand(strings.NewReader(validDemand), DemandOptions{})
	if err != nil {
		t.Fatalf("Demand: %v", err)
	}

	if !rep.Valid() {
		t.Fatalf("valid file reported errors: %+v", rep.Errors())
	}
	if rep.Total != 3 || rep.Invalid != 0 || rep.Warned != 0 {
		t.Errorf("counts = %d/%d/%d, want 3/0/0", rep.Total, rep.Invalid, rep.Warned)
	}
	if rep.FirstDeparture != "07:00:00" || rep.LastDeparture != "08:00:00" {
		t.Errorf("departures = %s..%s, want 07:00:00..08:00:00", rep.FirstDeparture, rep.LastDeparture)
	}
	if rep.Services["BUS"] != 2 || rep.Services["METRO"] != 1 || rep.Services["CAR"] != 1 {
		t.Errorf("services = %v", rep.Services)
	}
	if rep.ValidationRate() != 100 {
		t.Errorf("ValidationRate = %v, want 100", rep.ValidationRate())
	}
}

func TestDemandMissingColumns(t *testing.T) {
	in := "ID;ORIGIN\nU1;0 0\n"
	rep, err := Demand(strings.NewReader(in), DemandOptions{})
	if err != nil {
		t.Fatalf("Demand: %v", err)
	}

	if rep.Valid() {
		t.Fatal("file without required columns reported valid")
	}
	for _, col := range []string{"DEPARTURE", "DESTINATION"} {
		if !hasIssue(rep.Errors(), CheckDemandColumns, col) {
			t.Errorf("missing column %s not reported", col)
		}
	}
	if !hasIssue(rep.Warnings(), CheckDemandColumns, "MOBILITY SERVICES") {
		t.Error("missing optional column not reported as warning")
	}
	// Column errors abort before row checks.
	if rep.Total != 0 {
		t.Errorf("Total = %d, want 0", rep.Total)
	}
}

func TestDemandRowChecks(t *testing.T) {
	in := `ID;DEPARTURE;ORIGIN;DESTINATION
U1;7h30;0 0;100 200
U2;07:00:00;zero 0;100 200
U3;07:05:00;0 0;onlyone
;07:10:00;0 0;100 200
U5;07:20:00;0 0;100 200
`
	rep, err := Demand(strings.NewReader(in), DemandOptions{})
	if err != nil {
		t.Fatalf("Demand: %v", err)
	}

	if rep.Total != 5 || rep.Invalid != 4 {
		t.Errorf("Total/Invalid = %d/%d, want 5/4", rep.Total, rep.Invalid)
	}
	if !hasIssue(rep.Errors(), CheckDemandDeparture, "row 2") {
		t.Error("bad departure format not reported")
	}
	if !hasIssue(rep.Errors(), CheckDemandCoordinate, "row 3") {
		t.Error("non-numeric origin not reported")
	}
	if !hasIssue(rep.Errors(), CheckDemandCoordinate, "row 4") {
		t.Error("single-value destination not reported")
	}
	if !hasIssue(rep.Errors(), CheckDemandColumns, "row 5") {
		t.Error("missing user id not reported")
	}
	if got := rep.ValidationRate(); got != 20 {
		t.Errorf("ValidationRate = %v, want 20", got)
	}
}

func TestDemandTripWarnings(t *testing.T) {
	in := `ID;DEPARTURE;ORIGIN;DESTINATION
U1;07:00:00;5 5;5 5
U2;07:01:00;0 0;3 4
U3;07:02:00;0 0;300 400
`
	rep, err := Demand(strings.NewReader(in), DemandOptions{Radius: 10})
	if err != nil {
		t.Fatalf("Demand: %v", err)
	}

	if !rep.Valid() {
		t.Fatalf("warnings must not invalidate: %+v", rep.Errors())
	}
	if !hasIssue(rep.Warnings(), CheckDemandTrip, "row 2") {
		t.Error("origin == destination not reported")
	}
	// 3-4-5 triangle: distance 5, below radius 10.
	if !hasIssue(rep.Warnings(), CheckDemandTrip, "row 3") {
		t.Error("trip below radius not reported")
	}
	if hasIssue(rep.Warnings(), CheckDemandTrip, "row 4") {
		t.Error("long trip wrongly reported")
	}
	if rep.Warned != 2 {
		t.Errorf("Warned = %d, want 2", rep.Warned)
	}
}

func TestDemandOrderingAndDuplicates(t *testing.T) {
	in := `ID;DEPARTURE;ORIGIN;DESTINATION
U1;08:00:00;0 0;100 200
U1;07:00:00;0 0;100 200
`
	rep, err := Demand(strings.NewReader(in), DemandOptions{})
	if err != nil {
		t.Fatalf("Demand: %v", err)
	}

	if !hasIssue(rep.Warnings(), CheckDemandOrder, "row 3") {
		t.Error("out-of-order departure not reported")
	}
	if !hasIssue(rep.Warnings(), CheckDemandColumns, "U1") {
		t.Error("duplicate user id not reported")
	}
}

func TestDemandEmptyLine(t *testing.T) {
	in := "ID;DEPARTURE;ORIGIN;DESTINATION\nU1;07:00:00;0 0;100 200\n\nU2;07:01:00;0 0;100 200\n"
	rep, err := Demand(strings.NewReader(in), DemandOptions{})
	if err != nil {
		t.Fatalf("Demand: %v", err)
	}

	if !hasIssue(rep.Errors(), CheckDemandColumns, "row 3") {
		t.Errorf("empty line not reported: %+v", rep.Issues)
	}
}

func TestDemandEmptyServiceToken(t *testing.T) {
	in := "ID;DEPARTURE;ORIGIN;DESTINATION;MOBILITY SERVICES\nU1;07:00:00;0 0;100 200;BUS  METRO\n"
	rep, err := Demand(strings.NewReader(in), DemandOptions{})
	if err != nil {
		t.Fatalf("Demand: %v", err)
	}

	if !hasIssue(rep.Errors(), CheckDemandColumns, "row 2") {
		t.Error("empty service token not reported")
	}
	if rep.Services["BUS"] != 1 || rep.Services["METRO"] != 1 {
		t.Errorf("services = %v", rep.Services)
	}
}

func TestDemandFileMissing(t *testing.T) {
	if _, err := DemandFile(t.TempDir()+"/nope.csv", DemandOptions{}); err == nil {
		t.Fatal("want error for missing file, got nil")
	}
}
