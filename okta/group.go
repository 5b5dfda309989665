package okta

import (
	"context"
	"fmt"
	"time"
)

// Group models the group object of okta.
type Group struct {
	client *Client

	ID                    string       `json:"id,omitempty"`
	Type                  string       `json:"type,omitempty"`
	Created               *time.Time   `json:"created,omitempty"`
	LastUpdated           *time.Time   `json:"lastUpdated,omitempty"`
	LastMembershipUpdated *time.Time   `json:"lastMembershipUpdated,omitempty"`
	ObjectClass           []string     `json:"objectClass,omitempty"`
	Profile               GroupProfile `json:"profile"`
	Links                 Links        `json:"_links,omitempty"`
}

type GroupProfile struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

func (g *Group) url() string {
	return fmt.Sprintf("%s/%s", PathGroups, g.ID)
}

// Users returns the members of the group.
func (g *Group) Users(ctx context.Context) ([]*User, error) {
	req := &Request{
		Context: ctx,
		Method:  MethodGet,
		Path:    g.url() + "/users",
	}
	if href := g.Links.Href("users"); href != "" {
		req.url = href
	}

	return listUsers(g.client, req)
}

// Applications returns the applications the group is assigned to.
func (g *Group) Applications(ctx context.Context) ([]*Application, error) {
	req := &Request{
		Context: ctx,
		Method:  MethodGet,
		Path:    g.url() + "/apps",
	}
	if href := g.Links.Href("apps"); href != "" {
		req.url = href
	}

	return listApplications(g.client, req)
}

// Rename changes the name of the group, keeping its description.
func (g *Group) Rename(ctx context.Context, name string) error {
	return g.updateProfile(ctx, GroupProfile{
		Name:        name,
		Description: g.Profile.Description,
	})
}

// SetDescription changes the description of the group, keeping its name.
func (g *Group) SetDescription(ctx context.Context, description string) error {
	return g.updateProfile(ctx, GroupProfile{
		Name:        g.Profile.Name,
		Description: description,
	})
}

func (g *Group) updateProfile(ctx context.Context, profile GroupProfile) error {
	err := g.client.ExecRequest(&Request{
		Context: ctx,
		Method:  MethodPut,
		Path:    g.url(),
		Body:    map[string]interface{}{"profile": profile},
	})
	if err != nil {
		return err
	}

	return g.refresh(ctx)
}

func (g *Group) refresh(ctx context.Context) error {
	return g.client.ExecRequest(&Request{
		Context:   ctx,
		Method:    MethodGet,
		Path:      g.url(),
		RespModel: g,
	})
}

// Delete removes the group from okta.
func (g *Group) Delete(ctx context.Context) error {
	return g.client.ExecRequest(&Request{
		Context: ctx,
		Method:  MethodDelete,
		Path:    g.url(),
	})
}

// AddUserByID adds a user to the group.
func (g *Group) AddUserByID(ctx context.Context, userID string) error {
	return g.client.ExecRequest(&Request{
		Context: ctx,
		Method:  MethodPut,
		Path:    fmt.Sprintf("%s/users/%s", g.url(), userID),
	})
}

// RemoveUserByID removes a user from the group.
func (g *Group) RemoveUserByID(ctx context.Context, userID string) error {
	return g.client.ExecRequest(&Request{
		Context: ctx,
		Method:  MethodDelete,
		Path:    fmt.Sprintf("%s/users/%s", g.url(), userID),
	})
}

// AddUserByLogin adds the user with the given login to the group. The
// login is matched case-insensitively.
func (g *Group) AddUserByLogin(ctx context.Context, login string) error {
	user, err := g.client.getUserByLoginFold(ctx, login)
	if err != nil {
		return err
	}

	return g.AddUserByID(ctx, user.ID)
}

// RemoveUserByLogin removes the user with the given login from the group.
func (g *Group) RemoveUserByLogin(ctx context.Context, login string) error {
	user, err := g.client.GetUserByLogin(ctx, login)
	if err != nil {
		return err
	}

	return g.RemoveUserByID(ctx, user.ID)
}

// AddToApplicationWithLabel assigns the group to an application.
func (g *Group) AddToApplicationWithLabel(ctx context.Context, label string) error {
	app, err := g.client.GetApplicationByLabel(ctx, label)
	if err != nil {
		return err
	}

	return app.AddGroupByID(ctx, g.ID)
}

// RemoveFromApplicationWithLabel removes the group from an application.
func (g *Group) RemoveFromApplicationWithLabel(ctx context.Context, label string) error {
	app, err := g.client.GetApplicationByLabel(ctx, label)
	if err != nil {
		return err
	}

	return app.RemoveGroupByID(ctx, g.ID)
}

func listGroups(c *Client, req *Request) ([]*Group, error) {
	var all []*Group

	page := &Page{Limit: DefaultPageLimit}
	for {
		var batch []*Group
		req.RespModel = &batch

		err := c.ExecRequestPaged(req, page)
		if err != nil && err != ErrNoMorePages {
			return nil, err
		}

		for _, group := range batch {
			group.client = c
		}
		all = append(all, batch...)

		if err == ErrNoMorePages {
			return all, nil
		}
	}
}
