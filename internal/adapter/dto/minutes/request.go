package minutes

import "github.com/johnquangdev/meeting-actions/internal/domain/entities"

// ProcessTranscriptRequest carries the form fields sent with a transcript upload
type ProcessTranscriptRequest struct {
	JiraEmail       string `form:"jira_email" json:"jira_email" validate:"required,email"`
	JiraAPIToken    string `form:"jira_api_token" json:"jira_api_token" validate:"required"`
	JiraAPIInstance string `form:"jira_api_instance" json:"jira_api_instance" validate:"required,url"`
	ProjectName     string `form:"project_name" json:"project_name" validate:"required"`
}

// TrackerConfig converts the request into the pipeline's tracker config
func (r ProcessTranscriptRequest) TrackerConfig() entities.TrackerConfig {
	return entities.TrackerConfig{
		Email:       r.JiraEmail,
		APIToken:    r.JiraAPIToken,
		InstanceURL: r.JiraAPIInstance,
		ProjectName: r.ProjectName,
	}
}
