package minutes

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-actions/internal/domain/entities"
	"github.com/johnquangdev/meeting-actions/pkg/jira"
)

// Service turns a transcript into tracker issues
type Service interface {
	Process(ctx context.Context, transcript string, cfg entities.TrackerConfig) (*entities.RunResult, error)
}

// Summarizer produces minutes from a transcript
type Summarizer interface {
	Summarize(ctx context.Context, transcript string) (string, error)
}

// TrackerFactory opens a tracker for one run's credentials
type TrackerFactory func(cfg entities.TrackerConfig) Tracker

// JiraTrackerFactory returns a factory that builds Jira clients sharing httpClient
func JiraTrackerFactory(httpClient *http.Client) TrackerFactory {
	return func(cfg entities.TrackerConfig) Tracker {
		return jira.NewClient(cfg, httpClient)
	}
}

type minutesService struct {
	summarizer Summarizer
	newTracker TrackerFactory
	logger     *zap.Logger
}

// NewMinutesService constructs the pipeline
func NewMinutesService(summarizer Summarizer, newTracker TrackerFactory, logger *zap.Logger) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &minutesService{
		summarizer: summarizer,
		newTracker: newTracker,
		logger:     logger,
	}
}

// Process runs summarize, extract, resolve project, then resolve and create per item.
// The first failure aborts the run and no partial result is returned. Issues created
// before the failure stay in the tracker; their keys are logged.
func (s *minutesService) Process(ctx context.Context, transcript string, cfg entities.TrackerConfig) (*entities.RunResult, error) {
	logger := s.logger.With(
		zap.String("run_id", uuid.NewString()),
		zap.String("project_name", cfg.ProjectName),
	)

	logger.Info("🤖 Generating minutes", zap.Int("transcript_length", len(transcript)))
	minutes, err := s.summarizer.Summarize(ctx, transcript)
	if err != nil {
		return nil, s.fail(logger, &StageError{Stage: StageSummarize, Err: err}, nil)
	}

	items := ExtractActionItems(minutes)
	logger.Info("📝 Extracted action items", zap.Int("count", len(items)))

	tracker := s.newTracker(cfg)
	resolver := NewResolver(tracker, logger)
	submitter := NewSubmitter(tracker)

	project, err := resolver.ResolveProject(ctx, cfg.ProjectName)
	if err != nil {
		return nil, s.fail(logger, &StageError{Stage: StageResolveProject, Err: err}, nil)
	}
	logger.Info("✅ Resolved project", zap.String("project_key", project.Key))

	result := &entities.RunResult{
		Minutes: minutes,
		Issues:  make([]entities.IssueRecord, 0, len(items)),
	}

	for i, item := range items {
		assignee, err := resolver.ResolveAssignee(ctx, item.AssigneeName)
		if err != nil {
			return nil, s.fail(logger, &StageError{Stage: StageResolveAssignee, Item: i + 1, Assignee: item.AssigneeName, Err: err}, result)
		}

		issue, err := submitter.Submit(ctx, item, project, assignee)
		if err != nil {
			return nil, s.fail(logger, &StageError{Stage: StageCreateIssue, Item: i + 1, Assignee: item.AssigneeName, Err: err}, result)
		}

		logger.Info("✅ Created issue",
			zap.Int("item", i+1),
			zap.String("issue_key", issue.Key),
			zap.String("account_id", assignee.AccountID),
		)
		result.Issues = append(result.Issues, issue)
	}

	logger.Info("🎉 Run finished", zap.Int("issues_created", len(result.Issues)))
	return result, nil
}

func (s *minutesService) fail(logger *zap.Logger, err *StageError, partial *entities.RunResult) error {
	logger.Error("❌ Run aborted",
		zap.String("stage", err.Stage),
		zap.Int("item", err.Item),
		zap.Error(err.Err),
	)
	if partial != nil && len(partial.Issues) > 0 {
		logger.Warn("⚠️ Issues created before the failure remain in the tracker",
			zap.Strings("issue_keys", partial.IssueKeys()),
		)
	}
	return err
}
