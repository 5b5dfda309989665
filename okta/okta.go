package okta

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Group types as okta reports them.
const (
	GroupTypeOkta    = "OKTA_GROUP"
	GroupTypeApp     = "APP_GROUP"
	GroupTypeBuiltIn = "BUILT_IN"
)

// Entity status values.
const (
	StatusActive          = "ACTIVE"
	StatusInactive        = "INACTIVE"
	StatusStaged          = "STAGED"
	StatusProvisioned     = "PROVISIONED"
	StatusSuspended       = "SUSPENDED"
	StatusDeprovisioned   = "DEPROVISIONED"
	StatusLockedOut       = "LOCKED_OUT"
	StatusPasswordExpired = "PASSWORD_EXPIRED"
	StatusRecovery        = "RECOVERY"
)

var validate = validator.New()

// Groups returns the groups configured in okta.
func (c *Client) Groups(ctx context.Context) ([]*Group, error) {
	return listGroups(c, &Request{
		Context: ctx,
		Method:  MethodGet,
		Path:    PathGroups,
	})
}

// CreateGroup creates a group in okta.
func (c *Client) CreateGroup(ctx context.Context, name, description string) (*Group, error) {
	profile := GroupProfile{
		Name:        name,
		Description: description,
	}
	if err := validate.StructCtx(ctx, profile); err != nil {
		return nil, err
	}

	group := &Group{}
	err := c.ExecRequest(&Request{
		Context:   ctx,
		Method:    MethodPost,
		Path:      PathGroups,
		Body:      map[string]interface{}{"profile": profile},
		RespModel: group,
	})
	if err != nil {
		return nil, err
	}
	group.client = c

	return group, nil
}

// SearchGroupsByName retrieves the groups (of any type) matching name.
func (c *Client) SearchGroupsByName(ctx context.Context, name string) ([]*Group, error) {
	return listGroups(c, &Request{
		Context:     ctx,
		Method:      MethodGet,
		Path:        PathGroups,
		QueryParams: QueryParams{"q": name},
	})
}

// GetGroupByName retrieves the first group (of any type) named name.
// ErrInvalidGroup is returned when no group matches.
func (c *Client) GetGroupByName(ctx context.Context, name string) (*Group, error) {
	groups, err := c.SearchGroupsByName(ctx, name)
	if err != nil {
		return nil, err
	}

	for _, group := range groups {
		if group.Profile.Name == name {
			return group, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrInvalidGroup, name)
}

// GetGroupTypeByName retrieves the group named name of the given type.
// An empty groupType defaults to OKTA_GROUP.
func (c *Client) GetGroupTypeByName(ctx context.Context, name, groupType string) (*Group, error) {
	if groupType == "" {
		groupType = GroupTypeOkta
	}

	groups, err := c.SearchGroupsByName(ctx, name)
	if err != nil {
		return nil, err
	}

	for _, group := range groups {
		if group.Type == groupType {
			return group, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrInvalidGroup, name)
}

// DeleteGroup deletes the group named name from okta.
func (c *Client) DeleteGroup(ctx context.Context, name string) error {
	group, err := c.GetGroupByName(ctx, name)
	if err != nil {
		return err
	}

	return group.Delete(ctx)
}

// Users returns the users configured in okta.
func (c *Client) Users(ctx context.Context) ([]*User, error) {
	return listUsers(c, &Request{
		Context: ctx,
		Method:  MethodGet,
		Path:    PathUsers,
	})
}

type CreateUserInput struct {
	FirstName string `validate:"required"`
	LastName  string `validate:"required"`
	Email     string `validate:"required,email"`
	Login     string `validate:"required"`
	Password  string

	// Activate controls the activate query parameter. Nil means true.
	Activate *bool
}

// CreateUser creates a user in okta.
func (c *Client) CreateUser(ctx context.Context, input CreateUserInput) (*User, error) {
	if err := validate.StructCtx(ctx, input); err != nil {
		return nil, err
	}

	activate := true
	if input.Activate != nil {
		activate = *input.Activate
	}

	body := map[string]interface{}{
		"profile": UserProfile{
			FirstName: input.FirstName,
			LastName:  input.LastName,
			Email:     input.Email,
			Login:     input.Login,
		},
	}
	if input.Password != "" {
		body["credentials"] = UserCredentials{
			Password: &PasswordCredential{Value: input.Password},
		}
	}

	user := &User{}
	err := c.ExecRequest(&Request{
		Context:     ctx,
		Method:      MethodPost,
		Path:        PathUsers,
		QueryParams: QueryParams{"activate": activate},
		Body:        body,
		RespModel:   user,
	})
	if err != nil {
		return nil, err
	}
	user.client = c

	return user, nil
}

// GetUserByLogin retrieves a user by login. ErrInvalidUser is returned
// when no user matches.
func (c *Client) GetUserByLogin(ctx context.Context, login string) (*User, error) {
	users, err := listUsers(c, &Request{
		Context:     ctx,
		Method:      MethodGet,
		Path:        PathUsers,
		QueryParams: QueryParams{"filter": fmt.Sprintf("profile.login eq %q", login)},
	})
	if err != nil {
		return nil, err
	}

	for _, user := range users {
		if user.Profile.Login == login {
			return user, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrInvalidUser, login)
}

// getUserByLoginFold retrieves a user by login, matching it
// case-insensitively.
func (c *Client) getUserByLoginFold(ctx context.Context, login string) (*User, error) {
	users, err := listUsers(c, &Request{
		Context:     ctx,
		Method:      MethodGet,
		Path:        PathUsers,
		QueryParams: QueryParams{"filter": fmt.Sprintf("profile.login eq %q", login)},
	})
	if err != nil {
		return nil, err
	}

	for _, user := range users {
		if strings.EqualFold(user.Profile.Login, login) {
			return user, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrInvalidUser, login)
}

// SearchUsers retrieves users by looking into first name, last name and
// email.
func (c *Client) SearchUsers(ctx context.Context, value string) ([]*User, error) {
	return listUsers(c, &Request{
		Context:     ctx,
		Method:      MethodGet,
		Path:        PathUsers,
		QueryParams: QueryParams{"q": value},
	})
}

// SearchUsersByEmail retrieves users by email.
func (c *Client) SearchUsersByEmail(ctx context.Context, email string) ([]*User, error) {
	return listUsers(c, &Request{
		Context:     ctx,
		Method:      MethodGet,
		Path:        PathUsers,
		QueryParams: QueryParams{"filter": fmt.Sprintf("profile.email eq %q", email)},
	})
}

// Applications returns the applications configured in okta.
func (c *Client) Applications(ctx context.Context) ([]*Application, error) {
	return listApplications(c, &Request{
		Context: ctx,
		Method:  MethodGet,
		Path:    PathApps,
	})
}

// GetApplicationByID retrieves an application by id.
func (c *Client) GetApplicationByID(ctx context.Context, id string) (*Application, error) {
	app := &Application{}
	err := c.ExecRequest(&Request{
		Context:   ctx,
		Method:    MethodGet,
		Path:      fmt.Sprintf("%s/%s", PathApps, id),
		RespModel: app,
	})
	if err != nil {
		return nil, err
	}
	app.client = c

	return app, nil
}

// GetApplicationByLabel retrieves an application by label,
// case-insensitively. ErrInvalidApplication is returned when no
// application matches.
func (c *Client) GetApplicationByLabel(ctx context.Context, label string) (*Application, error) {
	apps, err := listApplications(c, &Request{
		Context:     ctx,
		Method:      MethodGet,
		Path:        PathApps,
		QueryParams: QueryParams{"q": label},
	})
	if err != nil {
		return nil, err
	}

	for _, app := range apps {
		if strings.EqualFold(app.Label, label) {
			return app, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrInvalidApplication, label)
}

// AssignGroupToApplication assigns the group named groupName to the
// application labeled appLabel.
func (c *Client) AssignGroupToApplication(ctx context.Context, appLabel, groupName string) error {
	app, err := c.GetApplicationByLabel(ctx, appLabel)
	if err != nil {
		return err
	}

	group, err := c.GetGroupByName(ctx, groupName)
	if err != nil {
		return err
	}

	return app.AddGroupByID(ctx, group.ID)
}

// RemoveGroupFromApplication removes the group named groupName from the
// application labeled appLabel.
func (c *Client) RemoveGroupFromApplication(ctx context.Context, appLabel, groupName string) error {
	app, err := c.GetApplicationByLabel(ctx, appLabel)
	if err != nil {
		return err
	}

	group, err := c.GetGroupByName(ctx, groupName)
	if err != nil {
		return err
	}

	return app.RemoveGroupByID(ctx, group.ID)
}
