package minutes

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-actions/errors"
	"github.com/johnquangdev/meeting-actions/internal/domain/entities"
	"github.com/johnquangdev/meeting-actions/pkg/jira"
)

// Tracker is the subset of the issue tracker API the pipeline uses
type Tracker interface {
	SearchProjects(ctx context.Context) ([]jira.Project, error)
	SearchUsers(ctx context.Context, query string) ([]jira.User, error)
	CreateIssue(ctx context.Context, payload entities.IssuePayload) (entities.IssueRecord, error)
}

// Resolver maps human-readable names to tracker identifiers
type Resolver struct {
	tracker Tracker
	logger  *zap.Logger
}

// NewResolver creates a resolver over a tracker
func NewResolver(tracker Tracker, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{tracker: tracker, logger: logger}
}

// ResolveProject returns the first project whose name equals name, ignoring case
func (r *Resolver) ResolveProject(ctx context.Context, name string) (entities.ProjectRef, error) {
	projects, err := r.tracker.SearchProjects(ctx)
	if err != nil {
		return entities.ProjectRef{}, err
	}

	for _, p := range projects {
		if strings.EqualFold(p.Name, name) {
			return entities.ProjectRef{Name: p.Name, Key: p.Key}, nil
		}
	}
	return entities.ProjectRef{}, errors.ErrNotFound("project", name)
}

// ResolveAssignee returns the first user the tracker's search returns for name.
// Several candidates are not an error; the ambiguity is logged.
func (r *Resolver) ResolveAssignee(ctx context.Context, name string) (entities.ResolvedAssignee, error) {
	users, err := r.tracker.SearchUsers(ctx, name)
	if err != nil {
		return entities.ResolvedAssignee{}, err
	}
	if len(users) == 0 {
		return entities.ResolvedAssignee{}, errors.ErrNotFound("user", name)
	}

	if len(users) > 1 {
		r.logger.Warn("ambiguous assignee, using first search result",
			zap.String("assignee", name),
			zap.Int("candidates", len(users)),
			zap.String("account_id", users[0].AccountID),
		)
	}

	displayName := users[0].DisplayName
	if displayName == "" {
		displayName = name
	}
	return entities.ResolvedAssignee{DisplayName: displayName, AccountID: users[0].AccountID}, nil
}
