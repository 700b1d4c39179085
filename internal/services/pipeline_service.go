package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"tally/internal/config"
	apperrors "tally/internal/errors"
	"tally/internal/logging"
	"tally/internal/models"
)

// Stage names used in timings, diagnostics, and the run result.
const (
	StageEnvironment = "environment"
	StageLoad        = "load"
	StageSchema      = "schema"
	StageCoerce      = "coerce"
	StageAggregate   = "aggregate"
	StageWrite       = "write"
)

type pipelineService struct {
	cfg        *config.Config
	env        EnvironmentServiceInterface
	loader     DatasetLoaderInterface
	schema     SchemaValidatorInterface
	coercer    ValueCoercerInterface
	summarizer SummaryServiceInterface
	writer     ReportWriterInterface
	logger     *logging.Logger
}

// NewPipelineService creates a new PipelineServiceInterface instance
func NewPipelineService(
	cfg *config.Config,
	env EnvironmentServiceInterface,
	loader DatasetLoaderInterface,
	schema SchemaValidatorInterface,
	coercer ValueCoercerInterface,
	summarizer SummaryServiceInterface,
	writer ReportWriterInterface,
	logger *logging.Logger,
) PipelineServiceInterface {
	return &pipelineService{
		cfg:        cfg,
		env:        env,
		loader:     loader,
		schema:     schema,
		coercer:    coercer,
		summarizer: summarizer,
		writer:     writer,
		logger:     logger,
	}
}

type stage struct {
	name string
	to   models.PipelineState
	run  func() error
}

// Run drives the pipeline through its state machine. Each stage advances the
// state only on success; the first failure transitions directly to FAILED and
// is returned to the caller together with the partial result. Run never
// terminates the process — exiting is the command entrypoint's job.
func (s *pipelineService) Run() (*models.RunResult, error) {
	started := time.Now()
	result := &models.RunResult{
		RunID: uuid.NewString(),
		State: models.StateInit,
	}
	log := s.logger.With("run_id", result.RunID)

	var (
		dataset *models.Dataset
		records []models.Record
		summary models.Summary
	)

	stages := []stage{
		{StageEnvironment, models.StateVersionChecked, func() error {
			return s.env.CheckEnvironment()
		}},
		{StageLoad, models.StateLoaded, func() error {
			var err error
			dataset, err = s.loader.Load(s.cfg.Input.Path)
			if err == nil {
				result.RowCount = dataset.RowCount()
			}
			return err
		}},
		{StageSchema, models.StateValidated, func() error {
			return s.schema.ValidateSchema(dataset)
		}},
		{StageCoerce, models.StateCoerced, func() error {
			var err error
			records, err = s.coercer.Coerce(dataset)
			return err
		}},
		{StageAggregate, models.StateAggregated, func() error {
			summary = s.summarizer.Summarize(records)
			result.CategoryCount = len(summary)
			return nil
		}},
		{StageWrite, models.StateWritten, func() error {
			return s.writer.Write(summary)
		}},
	}

	for _, st := range stages {
		stageStarted := time.Now()
		if err := st.run(); err != nil {
			return s.fail(result, st.name, err, started, log)
		}
		if err := s.advance(result, st.to); err != nil {
			return s.fail(result, st.name, err, started, log)
		}
		result.Timings = append(result.Timings, models.StageTiming{
			Stage:    st.name,
			Duration: time.Since(stageStarted),
		})
		log.Debug("stage complete", "stage", st.name, "state", result.State)
	}

	if err := s.advance(result, models.StateDone); err != nil {
		return s.fail(result, StageWrite, err, started, log)
	}
	result.Elapsed = time.Since(started)

	log.Info("summary written",
		"input", s.cfg.Input.Path,
		"output", s.cfg.Output.Path,
		"rows", result.RowCount,
		"categories", result.CategoryCount,
		"elapsed", result.Elapsed.String(),
	)
	return result, nil
}

// advance moves the run to the next state, guarding against transitions the
// state machine does not allow.
func (s *pipelineService) advance(result *models.RunResult, to models.PipelineState) error {
	if !models.AllowedTransition(result.State, to) {
		return apperrors.NewRunError(apperrors.SystemUnexpectedError,
			apperrors.WithMessage(fmt.Sprintf("disallowed state transition: %s -> %s", result.State, to)))
	}
	result.State = to
	return nil
}

// fail records the failing stage, emits the single diagnostic line for the
// run, and hands the error back to the caller.
func (s *pipelineService) fail(result *models.RunResult, stageName string, err error, started time.Time, log *logging.Logger) (*models.RunResult, error) {
	runErr := asRunError(err)
	result.State = models.StateFailed
	result.FailedStage = stageName
	result.Elapsed = time.Since(started)

	log.Error("run failed",
		"stage", stageName,
		"code", string(runErr.Code),
		"error", runErr.Error(),
	)
	return result, runErr
}

// asRunError normalizes any error into a RunError so every failure carries a
// code.
func asRunError(err error) *apperrors.RunError {
	var runErr *apperrors.RunError
	if errors.As(err, &runErr) {
		return runErr
	}
	return apperrors.NewRunError(apperrors.SystemUnexpectedError, apperrors.WithCause(err))
}
