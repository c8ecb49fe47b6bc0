package harness

import (
	"context"
	"fmt"
	"reflect"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/roach88/donorlens/internal/dataset"
	"github.com/roach88/donorlens/internal/render"
	"github.com/roach88/donorlens/internal/report"
	"github.com/roach88/donorlens/internal/reportsql"
	"github.com/roach88/donorlens/internal/store"
)

// Result captures one scenario run.
type Result struct {
	RunToken string
	Leaders  []report.DonationLeader
	Regional []report.RegionalImpactLeader

	// Rendered result tables, compared against golden files.
	LeadersTable  string
	RegionalTable string
}

// NewRunToken returns a fresh time-ordered run token.
func NewRunToken() string {
	return uuid.Must(uuid.NewV7()).String()
}

// Run executes a scenario: load the dataset, evaluate BOTH report
// formulations against it, and fail if they disagree on any row. When
// the scenario carries expectations, the output is checked against them
// row by row.
func Run(ctx context.Context, scenario *Scenario, log zerolog.Logger) (*Result, error) {
	token := scenario.RunToken
	if token == "" {
		token = NewRunToken()
	}
	log = log.With().Str("scenario", scenario.Name).Str("run_token", token).Logger()

	snap, err := dataset.LoadDir(scenario.Dataset, log)
	if err != nil {
		return nil, err
	}

	topN := scenario.TopN
	if topN == 0 {
		topN = report.DefaultTopN
	}

	leaders := report.DonationLeaders(snap, topN)
	regional := report.RegionalImpactLeaders(snap)

	st, err := store.OpenMemory()
	if err != nil {
		return nil, err
	}
	defer st.Close()
	if err := st.LoadSnapshot(ctx, snap); err != nil {
		return nil, err
	}

	sqlLeaders, err := reportsql.DonationLeaders(ctx, st, topN)
	if err != nil {
		return nil, err
	}
	sqlRegional, err := reportsql.RegionalImpactLeaders(ctx, st)
	if err != nil {
		return nil, err
	}

	if !reflect.DeepEqual(leaders, sqlLeaders) {
		return nil, fmt.Errorf("scenario %s: formulations disagree on donation leaders:\nmemory: %+v\nsql:    %+v",
			scenario.Name, leaders, sqlLeaders)
	}
	if !reflect.DeepEqual(regional, sqlRegional) {
		return nil, fmt.Errorf("scenario %s: formulations disagree on regional impact:\nmemory: %+v\nsql:    %+v",
			scenario.Name, regional, sqlRegional)
	}

	if scenario.Expect != nil {
		if err := checkExpectations(scenario.Expect, leaders, regional); err != nil {
			return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
		}
	}

	log.Info().
		Int("leaders", len(leaders)).
		Int("regions", len(regional)).
		Msg("scenario passed")

	return &Result{
		RunToken:      token,
		Leaders:       leaders,
		Regional:      regional,
		LeadersTable:  render.DonationLeadersTable(leaders),
		RegionalTable: render.RegionalImpactTable(regional),
	}, nil
}
