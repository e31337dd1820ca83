package jira

import (
	"context"
	"net/http"

	"github.com/johnquangdev/meeting-actions/internal/domain/entities"
)

// IssueTypeTask is the issue type of every created action item
const IssueTypeTask = "Task"

type keyRef struct {
	Key string `json:"key"`
}

type nameRef struct {
	Name string `json:"name"`
}

type accountRef struct {
	AccountID string `json:"accountId"`
}

type issueFields struct {
	Project     keyRef     `json:"project"`
	Summary     string     `json:"summary"`
	Description string     `json:"description"`
	IssueType   nameRef    `json:"issuetype"`
	Assignee    accountRef `json:"assignee"`
}

// CreateIssueRequest is the body of POST /rest/api/3/issue
type CreateIssueRequest struct {
	Fields issueFields `json:"fields"`
}

// NewCreateIssueRequest builds the creation body for a payload
func NewCreateIssueRequest(p entities.IssuePayload) CreateIssueRequest {
	return CreateIssueRequest{
		Fields: issueFields{
			Project:     keyRef{Key: p.ProjectKey},
			Summary:     p.Summary,
			Description: p.Description,
			IssueType:   nameRef{Name: IssueTypeTask},
			Assignee:    accountRef{AccountID: p.AssigneeAccountID},
		},
	}
}

// CreateIssue creates one issue; any 2xx response is a success
func (c *Client) CreateIssue(ctx context.Context, p entities.IssuePayload) (entities.IssueRecord, error) {
	var record entities.IssueRecord
	if err := c.do(ctx, http.MethodPost, "/rest/api/3/issue", NewCreateIssueRequest(p), &record); err != nil {
		return entities.IssueRecord{}, err
	}
	return record, nil
}
