package minutes

import "fmt"

// Pipeline stages, used in StageError and logs
const (
	StageSummarize       = "summarize"
	StageResolveProject  = "resolve_project"
	StageResolveAssignee = "resolve_assignee"
	StageCreateIssue     = "create_issue"
)

// StageError records where a run failed. Item is 1-based and zero for run-level stages.
type StageError struct {
	Stage    string
	Item     int
	Assignee string
	Err      error
}

func (e *StageError) Error() string {
	if e.Item > 0 {
		return fmt.Sprintf("%s (item %d, assignee %s): %v", e.Stage, e.Item, e.Assignee, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
