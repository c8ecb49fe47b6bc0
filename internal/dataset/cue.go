package dataset

import (
	_ "embed"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"

	"github.com/roach88/donorlens/internal/relation"
)

//go:embed schema.cue
var schemaCUE string

// validator holds the compiled CUE definitions used for field-level
// record validation at load time.
type validator struct {
	ctx        *cue.Context
	donor      cue.Value
	assignment cue.Value
	donation   cue.Value
}

func newValidator() (*validator, error) {
	ctx := cuecontext.New()
	schema := ctx.CompileString(schemaCUE)
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("compile schema.cue: %w", err)
	}

	v := &validator{ctx: ctx}
	lookups := []struct {
		path string
		dst  *cue.Value
	}{
		{"#Donor", &v.donor},
		{"#Assignment", &v.assignment},
		{"#Donation", &v.donation},
	}
	for _, l := range lookups {
		val := schema.LookupPath(cue.ParsePath(l.path))
		if !val.Exists() {
			return nil, fmt.Errorf("schema.cue: missing definition %s", l.path)
		}
		*l.dst = val
	}
	return v, nil
}

func (v *validator) checkDonor(d relation.Donor) error {
	return v.check(v.donor, map[string]any{
		"id":         d.ID,
		"donor_type": string(d.Type),
	})
}

func (v *validator) checkAssignment(a relation.Assignment) error {
	return v.check(v.assignment, map[string]any{
		"id":              a.ID,
		"name":            a.Name,
		"region":          a.Region,
		"duration_months": a.DurationMonths,
		"budget_cents":    int64(a.Budget),
		"impact_tenths":   int64(a.Impact),
	})
}

func (v *validator) checkDonation(d relation.Donation) error {
	return v.check(v.donation, map[string]any{
		"id":            d.ID,
		"assignment_id": d.AssignmentID,
		"donor_id":      d.DonorID,
		"amount_cents":  int64(d.Amount),
	})
}

// check unifies a record with its schema definition and validates that
// the result is a concrete, constraint-satisfying value.
func (v *validator) check(schema cue.Value, record map[string]any) error {
	unified := schema.Unify(v.ctx.Encode(record))
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("%w: %v", ErrSchema, err)
	}
	return nil
}
