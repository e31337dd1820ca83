package jira

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/go-querystring/query"
)

// Project is an entry of the project search result
type Project struct {
	ID   string `json:"id,omitempty"`
	Key  string `json:"key"`
	Name string `json:"name"`
}

// User is an entry of the user search result
type User struct {
	AccountID    string `json:"accountId"`
	DisplayName  string `json:"displayName,omitempty"`
	EmailAddress string `json:"emailAddress,omitempty"`
	Active       bool   `json:"active,omitempty"`
}

// projectPage accepts both the paged {"values":[...]} envelope and a bare array
type projectPage []Project

func (p *projectPage) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '[' {
		var list []Project
		if err := json.Unmarshal(b, &list); err != nil {
			return err
		}
		*p = list
		return nil
	}

	var page struct {
		Values []Project `json:"values"`
	}
	if err := json.Unmarshal(b, &page); err != nil {
		return err
	}
	*p = page.Values
	return nil
}

// SearchProjects returns the projects visible to the authenticated user.
// Only the first page is read.
func (c *Client) SearchProjects(ctx context.Context) ([]Project, error) {
	var page projectPage
	if err := c.do(ctx, http.MethodGet, "/rest/api/3/project/search", nil, &page); err != nil {
		return nil, err
	}
	return page, nil
}

type userSearchParams struct {
	Query string `url:"query"`
}

// SearchUsers runs a free-text user search
func (c *Client) SearchUsers(ctx context.Context, q string) ([]User, error) {
	values, err := query.Values(userSearchParams{Query: q})
	if err != nil {
		return nil, err
	}

	var users []User
	if err := c.do(ctx, http.MethodGet, "/rest/api/3/user/search?"+values.Encode(), nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}
