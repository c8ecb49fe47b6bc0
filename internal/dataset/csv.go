package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/roach88/donorlens/internal/relation"
)

// File names LoadDir expects inside a dataset directory.
const (
	DonorsFile      = "donors.csv"
	AssignmentsFile = "assignments.csv"
	DonationsFile   = "donations.csv"
)

// LoadDir reads the three CSV files from dir and returns a validated
// snapshot. Header-only files are valid and yield empty relations.
func LoadDir(dir string, log zerolog.Logger) (*Snapshot, error) {
	donors, err := loadDonors(filepath.Join(dir, DonorsFile))
	if err != nil {
		return nil, err
	}
	assignments, err := loadAssignments(filepath.Join(dir, AssignmentsFile))
	if err != nil {
		return nil, err
	}
	donations, err := loadDonations(filepath.Join(dir, DonationsFile))
	if err != nil {
		return nil, err
	}

	snap, err := New(donors, assignments, donations)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("dir", dir).
		Int("donors", len(donors)).
		Int("assignments", len(assignments)).
		Int("donations", len(donations)).
		Msg("dataset loaded")
	return snap, nil
}

func loadDonors(path string) ([]relation.Donor, error) {
	rows, err := readTable(path, []string{"donor_id", "donor_type"})
	if err != nil {
		return nil, err
	}

	donors := make([]relation.Donor, 0, len(rows))
	for _, r := range rows {
		donorType, err := relation.ParseDonorType(r.get("donor_type"))
		if err != nil {
			return nil, r.wrap(path, err)
		}
		donors = append(donors, relation.Donor{
			ID:   r.get("donor_id"),
			Type: donorType,
		})
	}
	return donors, nil
}

func loadAssignments(path string) ([]relation.Assignment, error) {
	rows, err := readTable(path, []string{"assignment_id", "name", "region", "duration_months", "budget", "impact_score"})
	if err != nil {
		return nil, err
	}

	assignments := make([]relation.Assignment, 0, len(rows))
	for _, r := range rows {
		duration, err := strconv.ParseInt(r.get("duration_months"), 10, 64)
		if err != nil {
			return nil, r.wrap(path, fmt.Errorf("invalid duration_months %q", r.get("duration_months")))
		}
		budget, err := relation.ParseMoney(r.get("budget"))
		if err != nil {
			return nil, r.wrap(path, err)
		}
		impact, err := relation.ParseImpact(r.get("impact_score"))
		if err != nil {
			return nil, r.wrap(path, err)
		}
		assignments = append(assignments, relation.Assignment{
			ID:             r.get("assignment_id"),
			Name:           r.get("name"),
			Region:         r.get("region"),
			DurationMonths: duration,
			Budget:         budget,
			Impact:         impact,
		})
	}
	return assignments, nil
}

func loadDonations(path string) ([]relation.Donation, error) {
	rows, err := readTable(path, []string{"donation_id", "assignment_id", "donor_id", "amount"})
	if err != nil {
		return nil, err
	}

	donations := make([]relation.Donation, 0, len(rows))
	for _, r := range rows {
		amount, err := relation.ParseMoney(r.get("amount"))
		if err != nil {
			return nil, r.wrap(path, err)
		}
		donations = append(donations, relation.Donation{
			ID:           r.get("donation_id"),
			AssignmentID: r.get("assignment_id"),
			DonorID:      r.get("donor_id"),
			Amount:       amount,
		})
	}
	return donations, nil
}

// row is one decoded CSV record plus enough context for diagnostics.
type row struct {
	line   int
	index  map[string]int
	record []string
}

func (r row) get(key string) string {
	pos, ok := r.index[key]
	if !ok || pos >= len(r.record) {
		return ""
	}
	return strings.TrimSpace(r.record[pos])
}

func (r row) wrap(path string, err error) error {
	return fmt.Errorf("%s line %d: %w", filepath.Base(path), r.line, err)
}

// readTable decodes a CSV file and verifies the required headers exist.
// The header row is mandatory even for empty relations.
func readTable(path string, required []string) ([]row, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s: missing header row", filepath.Base(path))
	}
	if err != nil {
		return nil, fmt.Errorf("%s: read header: %w", filepath.Base(path), err)
	}

	index := mapHeaders(header)
	if missing := missingHeaders(required, index); len(missing) > 0 {
		return nil, fmt.Errorf("%s: missing required headers: %s", filepath.Base(path), strings.Join(missing, ", "))
	}

	var rows []row
	line := 1
	for {
		line++
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", filepath.Base(path), line, err)
		}
		rows = append(rows, row{line: line, index: index, record: record})
	}
	return rows, nil
}

func mapHeaders(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(name))
		index[key] = i
	}
	return index
}

func missingHeaders(required []string, index map[string]int) []string {
	var missing []string
	for _, key := range required {
		if _, ok := index[key]; !ok {
			missing = append(missing, key)
		}
	}
	return missing
}
