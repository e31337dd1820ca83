package minutes

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/johnquangdev/meeting-actions/errors"
	"github.com/johnquangdev/meeting-actions/internal/domain/entities"
	"github.com/johnquangdev/meeting-actions/pkg/jira"
)

// fakeTracker serves canned search results and records created payloads
type fakeTracker struct {
	projects    []jira.Project
	users       map[string][]jira.User
	createErrAt int
	created     []entities.IssuePayload
	userQueries []string
}

func (f *fakeTracker) SearchProjects(ctx context.Context) ([]jira.Project, error) {
	return f.projects, nil
}

func (f *fakeTracker) SearchUsers(ctx context.Context, query string) ([]jira.User, error) {
	f.userQueries = append(f.userQueries, query)
	return f.users[query], nil
}

func (f *fakeTracker) CreateIssue(ctx context.Context, p entities.IssuePayload) (entities.IssueRecord, error) {
	f.created = append(f.created, p)
	if f.createErrAt == len(f.created) {
		return entities.IssueRecord{}, errors.ErrService("Jira", 500, "boom")
	}
	return entities.IssueRecord{Key: p.ProjectKey + "-1"}, nil
}

func TestResolveProject_CaseInsensitive(t *testing.T) {
	tracker := &fakeTracker{projects: []jira.Project{
		{Name: "Gemini", Key: "GEM"},
		{Name: "Apollo", Key: "APO"},
	}}
	r := NewResolver(tracker, nil)

	for _, name := range []string{"Apollo", "apollo", "APOLLO"} {
		ref, err := r.ResolveProject(context.Background(), name)
		if err != nil {
			t.Fatalf("%s: unexpected error %v", name, err)
		}
		if ref.Key != "APO" || ref.Name != "Apollo" {
			t.Fatalf("%s: unexpected ref %+v", name, ref)
		}
	}
}

func TestResolveProject_FirstMatchWins(t *testing.T) {
	tracker := &fakeTracker{projects: []jira.Project{
		{Name: "demo", Key: "DEM"},
		{Name: "Demo", Key: "DEM2"},
	}}

	ref, err := NewResolver(tracker, nil).ResolveProject(context.Background(), "DEMO")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if ref.Key != "DEM" {
		t.Fatalf("expected first match DEM, got %s", ref.Key)
	}
}

func TestResolveProject_NotFound(t *testing.T) {
	_, err := NewResolver(&fakeTracker{}, nil).ResolveProject(context.Background(), "Apollo")

	var appErr errors.AppError
	if !errors.As(err, &appErr) || appErr.Code != errors.ErrorCode_NOT_FOUND {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
	if appErr.Details["entity"] != "project" || appErr.Details["term"] != "Apollo" {
		t.Fatalf("unexpected details %v", appErr.Details)
	}
}

func TestResolveAssignee_NotFound(t *testing.T) {
	_, err := NewResolver(&fakeTracker{}, nil).ResolveAssignee(context.Background(), "Alice")

	var appErr errors.AppError
	if !errors.As(err, &appErr) || appErr.Code != errors.ErrorCode_NOT_FOUND {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
	if appErr.Details["entity"] != "user" || appErr.Details["term"] != "Alice" {
		t.Fatalf("unexpected details %v", appErr.Details)
	}
}

func TestResolveAssignee_AmbiguousPicksFirstAndWarns(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	tracker := &fakeTracker{users: map[string][]jira.User{
		"Alex": {{AccountID: "acc-1", DisplayName: "Alex Smith"}, {AccountID: "acc-2", DisplayName: "Alex Jones"}},
	}}

	got, err := NewResolver(tracker, zap.New(core)).ResolveAssignee(context.Background(), "Alex")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if got.AccountID != "acc-1" || got.DisplayName != "Alex Smith" {
		t.Fatalf("unexpected assignee %+v", got)
	}
	if logs.FilterMessage("ambiguous assignee, using first search result").Len() != 1 {
		t.Fatalf("expected one ambiguity warning, got %d logs", logs.Len())
	}
}

func TestSubmitter_OneIssuePerCall(t *testing.T) {
	tracker := &fakeTracker{}
	s := NewSubmitter(tracker)
	item := entities.ActionItem{Description: "Fix login bug", AssigneeName: "Alice"}
	project := entities.ProjectRef{Name: "Demo", Key: "DEM"}
	assignee := entities.ResolvedAssignee{AccountID: "acc-1"}

	for i := 0; i < 2; i++ {
		if _, err := s.Submit(context.Background(), item, project, assignee); err != nil {
			t.Fatalf("unexpected error %v", err)
		}
	}

	if len(tracker.created) != 2 {
		t.Fatalf("identical items must not be deduplicated, got %d creations", len(tracker.created))
	}
	want := entities.IssuePayload{
		ProjectKey:        "DEM",
		Summary:           "Action Item: Fix login bug",
		Description:       "Fix login bug",
		AssigneeAccountID: "acc-1",
	}
	if tracker.created[0] != want {
		t.Fatalf("unexpected payload %+v", tracker.created[0])
	}
}
