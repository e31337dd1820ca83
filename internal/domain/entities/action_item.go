package entities

import "strings"

// ActionItem is a single task extracted from the generated minutes
type ActionItem struct {
	Description  string `json:"description"`
	AssigneeName string `json:"assignee_name"`
}

// Valid reports whether the item carries a description and an assignee token
func (a ActionItem) Valid() bool {
	return strings.TrimSpace(a.Description) != "" && a.AssigneeName != ""
}

// ProjectRef is a tracker project resolved from its display name
type ProjectRef struct {
	Name string `json:"name"`
	Key  string `json:"key"`
}

// ResolvedAssignee is a tracker user resolved from a display name
type ResolvedAssignee struct {
	DisplayName string `json:"display_name"`
	AccountID   string `json:"account_id"`
}
