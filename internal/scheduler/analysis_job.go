package scheduler

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/aristath/pli-alpha/internal/domain"
	"github.com/aristath/pli-alpha/internal/modules/analysis"
	"github.com/aristath/pli-alpha/internal/modules/tracker"
)

// AnalysisJob runs one pipeline pass, prints the report and optionally
// refreshes the README afterwards.
type AnalysisJob struct {
	service *analysis.Service
	variant domain.Variant
	updater *tracker.Updater // nil disables the README refresh
	log     zerolog.Logger
}

// NewAnalysisJob creates a scheduled analysis job.
func NewAnalysisJob(service *analysis.Service, variant domain.Variant, updater *tracker.Updater, log zerolog.Logger) *AnalysisJob {
	return &AnalysisJob{
		service: service,
		variant: variant,
		updater: updater,
		log:     log.With().Str("component", "analysis_job").Logger(),
	}
}

// Name returns the job name
func (j *AnalysisJob) Name() string {
	return "analysis_" + string(j.variant)
}

// Run executes the pipeline once.
func (j *AnalysisJob) Run() error {
	result, err := j.service.Run(j.variant)
	if err != nil {
		return err
	}

	fmt.Println(result.Report)

	if j.updater != nil {
		if err := j.updater.Update(time.Now()); err != nil {
			return err
		}
	}

	return nil
}
