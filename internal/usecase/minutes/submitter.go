package minutes

import (
	"context"

	"github.com/johnquangdev/meeting-actions/internal/domain/entities"
)

// Submitter files resolved action items as tracker issues
type Submitter struct {
	tracker Tracker
}

// NewSubmitter creates a submitter over a tracker
func NewSubmitter(tracker Tracker) *Submitter {
	return &Submitter{tracker: tracker}
}

// Submit builds the payload for item and creates exactly one issue.
// Identical items produce separate issues.
func (s *Submitter) Submit(ctx context.Context, item entities.ActionItem, project entities.ProjectRef, assignee entities.ResolvedAssignee) (entities.IssueRecord, error) {
	return s.tracker.CreateIssue(ctx, entities.NewIssuePayload(item, project, assignee))
}
