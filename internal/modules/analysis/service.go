// Package analysis orchestrates one full pipeline run: headline fetch,
// company data, expert overlay, scoring, trigger calculation, report
// rendering and the snapshot write. Stages run strictly sequentially and
// each stage returns a new value; nothing upstream is mutated.
package analysis

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/aristath/pli-alpha/internal/clients/newsapi"
	"github.com/aristath/pli-alpha/internal/config"
	"github.com/aristath/pli-alpha/internal/domain"
	"github.com/aristath/pli-alpha/internal/modules/insights"
	"github.com/aristath/pli-alpha/internal/modules/report"
	"github.com/aristath/pli-alpha/internal/modules/scoring"
	"github.com/aristath/pli-alpha/internal/modules/tracker"
	"github.com/aristath/pli-alpha/internal/modules/triggers"
)

// DefaultQuery is the news search used to anchor every run.
const DefaultQuery = "PLI Scheme OR iPhone exports India"

// CompanyProvider yields the company universe for a run. Static and live
// providers both satisfy it.
type CompanyProvider interface {
	Companies() []domain.Company
}

// Result bundles everything a completed run produced.
type Result struct {
	Analysis     domain.Analysis
	Report       string
	SnapshotPath string
}

// Service runs the analysis pipeline.
type Service struct {
	cfg      *config.Config
	news     *newsapi.Client
	static   CompanyProvider
	live     CompanyProvider
	insights *insights.Insights
	log      zerolog.Logger
}

// New creates the pipeline service.
func New(cfg *config.Config, news *newsapi.Client, static, live CompanyProvider, ins *insights.Insights, log zerolog.Logger) *Service {
	return &Service{
		cfg:      cfg,
		news:     news,
		static:   static,
		live:     live,
		insights: ins,
		log:      log.With().Str("component", "analysis").Logger(),
	}
}

// Run executes one pipeline pass for the given variant and writes the
// JSON snapshot. The rendered report is returned, not printed.
func (s *Service) Run(variant domain.Variant) (*Result, error) {
	started := time.Now()
	s.log.Info().Str("variant", string(variant)).Msg("Starting analysis run")

	headline := s.news.Latest(DefaultQuery)

	a := domain.Analysis{
		RunID:     uuid.New().String(),
		Timestamp: started,
		Variant:   variant,
		Headline:  headline,
	}

	var rendered string
	switch variant {
	case domain.VariantStatic:
		ranking := scoring.NewEarningsScorer(s.log).Rank(s.static.Companies())
		a.Companies = ranking.Companies
		a.Top = ranking.Top

		var plan *triggers.Plan
		if a.Top != nil {
			p := triggers.PlanFor(*a.Top)
			plan = &p
		}
		rendered = report.RenderStatic(a, plan)

	case domain.VariantLive:
		companies := s.live.Companies()
		if len(companies) == 0 {
			return nil, fmt.Errorf("no companies fetched")
		}
		overlaid := s.insights.Apply(companies)
		ranking := scoring.NewAsymmetryScorer(s.insights.IndustryMetrics.AvgDebtEquity, s.log).Rank(overlaid)
		a.Companies = ranking.Companies
		a.Top = ranking.Top

		var levels *triggers.Levels
		if a.Top != nil {
			l := triggers.LiveFor(*a.Top)
			levels = &l
		}
		rendered = report.RenderLive(a, s.insights, levels)

	default:
		return nil, fmt.Errorf("unknown variant: %s", variant)
	}

	path, err := tracker.SaveSnapshot(s.cfg.ReportsDir, a)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("run_id", a.RunID).
		Str("snapshot", path).
		Dur("duration_ms", time.Since(started)).
		Msg("Analysis run complete")

	return &Result{Analysis: a, Report: rendered, SnapshotPath: path}, nil
}
