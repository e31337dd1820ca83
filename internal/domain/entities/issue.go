package entities

import "encoding/json"

// IssueSummaryPrefix is prepended to every action item description to form the issue summary
const IssueSummaryPrefix = "Action Item: "

// IssuePayload is everything the tracker needs to create one issue
type IssuePayload struct {
	ProjectKey        string
	Summary           string
	Description       string
	AssigneeAccountID string
}

// NewIssuePayload derives the payload for an action item
func NewIssuePayload(item ActionItem, project ProjectRef, assignee ResolvedAssignee) IssuePayload {
	return IssuePayload{
		ProjectKey:        project.Key,
		Summary:           IssueSummaryPrefix + item.Description,
		Description:       item.Description,
		AssigneeAccountID: assignee.AccountID,
	}
}

// IssueRecord is the tracker's response to a successful creation call.
// ID, Key and Self are read for logging; Raw is the body as the tracker sent it
// and is what the record marshals back to.
type IssueRecord struct {
	ID   string
	Key  string
	Self string
	Raw  json.RawMessage
}

type issueRecordFields struct {
	ID   string `json:"id"`
	Key  string `json:"key"`
	Self string `json:"self,omitempty"`
}

func (r *IssueRecord) UnmarshalJSON(b []byte) error {
	var f issueRecordFields
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	r.ID, r.Key, r.Self = f.ID, f.Key, f.Self
	r.Raw = append(json.RawMessage(nil), b...)
	return nil
}

func (r IssueRecord) MarshalJSON() ([]byte, error) {
	if len(r.Raw) > 0 {
		return r.Raw, nil
	}
	return json.Marshal(issueRecordFields{ID: r.ID, Key: r.Key, Self: r.Self})
}

// RunResult is the output of one pipeline run
type RunResult struct {
	Minutes string        `json:"mom"`
	Issues  []IssueRecord `json:"created_issues"`
}

// IssueKeys lists the keys of the created issues in creation order
func (r *RunResult) IssueKeys() []string {
	keys := make([]string, 0, len(r.Issues))
	for _, issue := range r.Issues {
		keys = append(keys, issue.Key)
	}
	return keys
}
