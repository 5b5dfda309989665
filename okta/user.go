package okta

import (
	"context"
	"fmt"
	"time"
)

// User models the user object of okta.
type User struct {
	client *Client

	ID              string           `json:"id,omitempty"`
	Status          string           `json:"status,omitempty"`
	Created         *time.Time       `json:"created,omitempty"`
	Activated       *time.Time       `json:"activated,omitempty"`
	StatusChanged   *time.Time       `json:"statusChanged,omitempty"`
	LastLogin       *time.Time       `json:"lastLogin,omitempty"`
	LastUpdated     *time.Time       `json:"lastUpdated,omitempty"`
	PasswordChanged *time.Time       `json:"passwordChanged,omitempty"`
	Profile         UserProfile      `json:"profile"`
	Credentials     *UserCredentials `json:"credentials,omitempty"`
	Links           Links            `json:"_links,omitempty"`
}

type UserProfile struct {
	FirstName      string `json:"firstName,omitempty"`
	LastName       string `json:"lastName,omitempty"`
	Email          string `json:"email,omitempty"`
	SecondEmail    string `json:"secondEmail,omitempty"`
	Login          string `json:"login,omitempty"`
	DisplayName    string `json:"displayName,omitempty"`
	Manager        string `json:"manager,omitempty"`
	Title          string `json:"title,omitempty"`
	Locale         string `json:"locale,omitempty"`
	EmployeeNumber string `json:"employeeNumber,omitempty"`
	Organization   string `json:"organization,omitempty"`
	Department     string `json:"department,omitempty"`
	StreetAddress  string `json:"streetAddress,omitempty"`
	City           string `json:"city,omitempty"`
	ZipCode        string `json:"zipCode,omitempty"`
	CountryCode    string `json:"countryCode,omitempty"`
	PrimaryPhone   string `json:"primaryPhone,omitempty"`
	MobilePhone    string `json:"mobilePhone,omitempty"`
}

type UserCredentials struct {
	Password         *PasswordCredential         `json:"password,omitempty"`
	RecoveryQuestion *RecoveryQuestionCredential `json:"recovery_question,omitempty"`
	Provider         map[string]interface{}      `json:"provider,omitempty"`
}

type PasswordCredential struct {
	Value string `json:"value,omitempty"`
}

type RecoveryQuestionCredential struct {
	Question string `json:"question,omitempty"`
	Answer   string `json:"answer,omitempty"`
}

func (u *User) url() string {
	return fmt.Sprintf("%s/%s", PathUsers, u.ID)
}

// Groups lists the groups the user is a member of.
func (u *User) Groups(ctx context.Context) ([]*Group, error) {
	return listGroups(u.client, &Request{
		Context: ctx,
		Method:  MethodGet,
		Path:    u.url() + "/groups",
	})
}

// Delete removes the user from okta. The first delete deactivates the
// user, the second one deletes for real.
func (u *User) Delete(ctx context.Context) error {
	err := u.client.ExecRequest(&Request{
		Context: ctx,
		Method:  MethodDelete,
		Path:    u.url(),
	})
	if err != nil {
		return err
	}

	return u.client.ExecRequest(&Request{
		Context: ctx,
		Method:  MethodDelete,
		Path:    u.url(),
	})
}

func (u *User) refresh(ctx context.Context) error {
	return u.client.ExecRequest(&Request{
		Context:   ctx,
		Method:    MethodGet,
		Path:      u.url(),
		RespModel: u,
	})
}

func (u *User) postLifecycle(ctx context.Context, action string, params QueryParams) error {
	err := u.client.ExecRequest(&Request{
		Context:     ctx,
		Method:      MethodPost,
		Path:        fmt.Sprintf("%s/lifecycle/%s", u.url(), action),
		QueryParams: params,
	})
	if err != nil {
		return err
	}

	return u.refresh(ctx)
}

// Activate activates the user without sending the activation email.
func (u *User) Activate(ctx context.Context) error {
	return u.postLifecycle(ctx, "activate", QueryParams{"sendEmail": false})
}

// Deactivate deactivates the user.
func (u *User) Deactivate(ctx context.Context) error {
	return u.postLifecycle(ctx, "deactivate", nil)
}

// Suspend suspends the user.
func (u *User) Suspend(ctx context.Context) error {
	return u.postLifecycle(ctx, "suspend", nil)
}

// Unsuspend unsuspends the user.
func (u *User) Unsuspend(ctx context.Context) error {
	return u.postLifecycle(ctx, "unsuspend", nil)
}

// Unlock unlocks the user.
func (u *User) Unlock(ctx context.Context) error {
	return u.postLifecycle(ctx, "unlock", nil)
}

// ExpirePassword expires the user's password.
func (u *User) ExpirePassword(ctx context.Context) error {
	return u.postLifecycle(ctx, "expire_password", nil)
}

// ResetPassword resets the user's password without sending the reset
// email.
func (u *User) ResetPassword(ctx context.Context) error {
	return u.postLifecycle(ctx, "reset_password", QueryParams{"sendEmail": false})
}

// SetTemporaryPassword expires the user's password and returns the
// temporary one okta generated.
func (u *User) SetTemporaryPassword(ctx context.Context) (string, error) {
	var resp struct {
		TempPassword string `json:"tempPassword"`
	}

	err := u.client.ExecRequest(&Request{
		Context:     ctx,
		Method:      MethodPost,
		Path:        u.url() + "/lifecycle/expire_password",
		QueryParams: QueryParams{"tempPassword": true},
		RespModel:   &resp,
	})
	if err != nil {
		return "", err
	}

	if err := u.refresh(ctx); err != nil {
		return "", err
	}

	return resp.TempPassword, nil
}

// ChangePassword changes the user's password.
func (u *User) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	return u.client.ExecRequest(&Request{
		Context: ctx,
		Method:  MethodPost,
		Path:    u.url() + "/credentials/change_password",
		Body: map[string]interface{}{
			"oldPassword": PasswordCredential{Value: oldPassword},
			"newPassword": PasswordCredential{Value: newPassword},
		},
	})
}

// UpdateRecoveryQuestion changes the user's security question and answer.
func (u *User) UpdateRecoveryQuestion(ctx context.Context, password, question, answer string) error {
	return u.client.ExecRequest(&Request{
		Context: ctx,
		Method:  MethodPost,
		Path:    u.url() + "/credentials/change_recovery_question",
		Body: map[string]interface{}{
			"password": PasswordCredential{Value: password},
			"recovery_question": RecoveryQuestionCredential{
				Question: question,
				Answer:   answer,
			},
		},
	})
}

// UpdateProfile updates the user's profile with the non-empty fields of
// profile and refreshes the local copy from the response.
func (u *User) UpdateProfile(ctx context.Context, profile UserProfile) error {
	return u.client.ExecRequest(&Request{
		Context:   ctx,
		Method:    MethodPost,
		Path:      u.url(),
		Body:      map[string]interface{}{"profile": profile},
		RespModel: u,
	})
}

func listUsers(c *Client, req *Request) ([]*User, error) {
	var all []*User

	page := &Page{Limit: DefaultPageLimit}
	for {
		var batch []*User
		req.RespModel = &batch

		err := c.ExecRequestPaged(req, page)
		if err != nil && err != ErrNoMorePages {
			return nil, err
		}

		for _, user := range batch {
			user.client = c
		}
		all = append(all, batch...)

		if err == ErrNoMorePages {
			return all, nil
		}
	}
}
