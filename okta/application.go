package okta

import (
	"context"
	"fmt"
	"time"
)

// Application models the apps in okta.
type Application struct {
	client *Client

	ID          string     `json:"id,omitempty"`
	Name        string     `json:"name,omitempty"`
	Label       string     `json:"label,omitempty"`
	Status      string     `json:"status,omitempty"`
	SignOnMode  string     `json:"signOnMode,omitempty"`
	Created     *time.Time `json:"created,omitempty"`
	LastUpdated *time.Time `json:"lastUpdated,omitempty"`

	Accessibility map[string]interface{} `json:"accessibility,omitempty"`
	Visibility    map[string]interface{} `json:"visibility,omitempty"`
	Features      []string               `json:"features,omitempty"`
	Credentials   map[string]interface{} `json:"credentials,omitempty"`
	Settings      *ApplicationSettings   `json:"settings,omitempty"`
	Links         Links                  `json:"_links,omitempty"`
}

type ApplicationSettings struct {
	App           map[string]interface{} `json:"app,omitempty"`
	Notifications map[string]interface{} `json:"notifications,omitempty"`
	SignOn        map[string]interface{} `json:"signOn,omitempty"`
}

func (a *Application) url() string {
	return fmt.Sprintf("%s/%s", PathApps, a.ID)
}

// Users returns the users assigned to the application.
func (a *Application) Users(ctx context.Context) ([]*User, error) {
	req := &Request{
		Context: ctx,
		Method:  MethodGet,
		Path:    a.url() + "/users",
	}
	if href := a.Links.Href("users"); href != "" {
		req.url = href
	}

	return listUsers(a.client, req)
}

// Groups returns the groups assigned to the application.
func (a *Application) Groups(ctx context.Context) ([]*Group, error) {
	req := &Request{
		Context: ctx,
		Method:  MethodGet,
		Path:    a.url() + "/groups",
	}
	if href := a.Links.Href("groups"); href != "" {
		req.url = href
	}

	return listGroups(a.client, req)
}

func (a *Application) refresh(ctx context.Context) error {
	return a.client.ExecRequest(&Request{
		Context:   ctx,
		Method:    MethodGet,
		Path:      a.url(),
		RespModel: a,
	})
}

func (a *Application) postLifecycle(ctx context.Context, action string) error {
	err := a.client.ExecRequest(&Request{
		Context: ctx,
		Method:  MethodPost,
		Path:    fmt.Sprintf("%s/lifecycle/%s", a.url(), action),
	})
	if err != nil {
		return err
	}

	return a.refresh(ctx)
}

// Activate activates the application. Nothing happens when it already is
// active.
func (a *Application) Activate(ctx context.Context) error {
	if a.Status == StatusActive {
		return nil
	}

	return a.postLifecycle(ctx, "activate")
}

// Deactivate deactivates the application. Nothing happens when it
// already is inactive.
func (a *Application) Deactivate(ctx context.Context) error {
	if a.Status == StatusInactive {
		return nil
	}

	return a.postLifecycle(ctx, "deactivate")
}

// AddGroupByID assigns a group to the application.
func (a *Application) AddGroupByID(ctx context.Context, groupID string) error {
	return a.client.ExecRequest(&Request{
		Context: ctx,
		Method:  MethodPut,
		Path:    fmt.Sprintf("%s/groups/%s", a.url(), groupID),
	})
}

// AddGroupByName assigns the group named groupName to the application.
func (a *Application) AddGroupByName(ctx context.Context, groupName string) error {
	group, err := a.client.GetGroupByName(ctx, groupName)
	if err != nil {
		return err
	}

	return a.AddGroupByID(ctx, group.ID)
}

// RemoveGroupByID removes a group from the application.
func (a *Application) RemoveGroupByID(ctx context.Context, groupID string) error {
	return a.client.ExecRequest(&Request{
		Context: ctx,
		Method:  MethodDelete,
		Path:    fmt.Sprintf("%s/groups/%s", a.url(), groupID),
	})
}

// RemoveGroupByName removes the group named groupName from the
// application.
func (a *Application) RemoveGroupByName(ctx context.Context, groupName string) error {
	group, err := a.client.GetGroupByName(ctx, groupName)
	if err != nil {
		return err
	}

	return a.RemoveGroupByID(ctx, group.ID)
}

func listApplications(c *Client, req *Request) ([]*Application, error) {
	var all []*Application

	page := &Page{Limit: DefaultPageLimit}
	for {
		var batch []*Application
		req.RespModel = &batch

		err := c.ExecRequestPaged(req, page)
		if err != nil && err != ErrNoMorePages {
			return nil, err
		}

		for _, app := range batch {
			app.client = c
		}
		all = append(all, batch...)

		if err == ErrNoMorePages {
			return all, nil
		}
	}
}
