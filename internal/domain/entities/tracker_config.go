package entities

import "strings"

// TrackerConfig is the per-run credential and target record for the issue tracker
type TrackerConfig struct {
	Email       string `json:"jira_email"`
	APIToken    string `json:"-"`
	InstanceURL string `json:"jira_api_instance"`
	ProjectName string `json:"project_name"`
}

// BaseURL returns the instance URL without a trailing slash
func (c TrackerConfig) BaseURL() string {
	return strings.TrimRight(c.InstanceURL, "/")
}
