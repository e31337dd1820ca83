package minutes

import "github.com/johnquangdev/meeting-actions/internal/domain/entities"

// ProcessTranscriptResponse is returned after a successful run
type ProcessTranscriptResponse struct {
	Minutes       string                 `json:"mom"`
	CreatedIssues []entities.IssueRecord `json:"created_issues"`
}

// NewProcessTranscriptResponse maps a run result to the response shape
func NewProcessTranscriptResponse(result *entities.RunResult) ProcessTranscriptResponse {
	issues := result.Issues
	if issues == nil {
		issues = []entities.IssueRecord{}
	}
	return ProcessTranscriptResponse{
		Minutes:       result.Minutes,
		CreatedIssues: issues,
	}
}
