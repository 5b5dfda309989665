package okta

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/suite"
)

type groupTestSuite struct {
	suite.Suite

	client *Client
	ctx    context.Context
}

func TestGroup(t *testing.T) {
	suite.Run(t, &groupTestSuite{
		ctx: context.Background(),
	})
}

func (s *groupTestSuite) SetupTest() {
	httpmock.Activate()
	s.client = newTestClient()
}

func (s *groupTestSuite) TearDownTest() {
	httpmock.DeactivateAndReset()
}

func (s *groupTestSuite) newGroup() *Group {
	return &Group{
		client: s.client,
		ID:     "00g1",
		Type:   GroupTypeOkta,
		Profile: GroupProfile{
			Name:        "admins",
			Description: "org admins",
		},
	}
}

func (s *groupTestSuite) Test_Rename() {
	group := s.newGroup()

	httpmock.RegisterResponder(http.MethodPut, testHost+PathGroups+"/00g1",
		func(req *http.Request) (*http.Response, error) {
			var body struct {
				Profile GroupProfile `json:"profile"`
			}
			s.Require().NoError(json.NewDecoder(req.Body).Decode(&body))
			s.Equal("superadmins", body.Profile.Name)
			s.Equal("org admins", body.Profile.Description)

			return httpmock.NewStringResponse(http.StatusOK, `{}`), nil
		})
	httpmock.RegisterResponder(http.MethodGet, testHost+PathGroups+"/00g1",
		httpmock.NewStringResponder(http.StatusOK,
			`{"id": "00g1", "type": "OKTA_GROUP", "profile": {"name": "superadmins", "description": "org admins"}}`))

	s.Require().NoError(group.Rename(s.ctx, "superadmins"))
	s.Equal("superadmins", group.Profile.Name)
	s.Equal("org admins", group.Profile.Description)
	s.Equal(s.client, group.client)
}

func (s *groupTestSuite) Test_SetDescription() {
	group := s.newGroup()

	httpmock.RegisterResponder(http.MethodPut, testHost+PathGroups+"/00g1",
		func(req *http.Request) (*http.Response, error) {
			var body struct {
				Profile GroupProfile `json:"profile"`
			}
			s.Require().NoError(json.NewDecoder(req.Body).Decode(&body))
			s.Equal("admins", body.Profile.Name)
			s.Equal("the org admins", body.Profile.Description)

			return httpmock.NewStringResponse(http.StatusOK, `{}`), nil
		})
	httpmock.RegisterResponder(http.MethodGet, testHost+PathGroups+"/00g1",
		httpmock.NewStringResponder(http.StatusOK,
			`{"id": "00g1", "type": "OKTA_GROUP", "profile": {"name": "admins", "description": "the org admins"}}`))

	s.Require().NoError(group.SetDescription(s.ctx, "the org admins"))
	s.Equal("the org admins", group.Profile.Description)
}

func (s *groupTestSuite) Test_Delete() {
	httpmock.RegisterResponder(http.MethodDelete, testHost+PathGroups+"/00g1",
		httpmock.NewStringResponder(http.StatusNoContent, ""))

	s.Require().NoError(s.newGroup().Delete(s.ctx))
	s.Equal(1, httpmock.GetTotalCallCount())
}

func (s *groupTestSuite) Test_Users_FollowsLinkHeader() {
	group := s.newGroup()
	s.Require().NoError(json.Unmarshal(
		[]byte(`{"users": {"href": "https://test.okta.com/api/v1/groups/00g1/skinny_users"}}`),
		&group.Links))

	nextURL := testHost + "/api/v1/groups/00g1/skinny_users?after=00u1"

	httpmock.RegisterResponder(http.MethodGet, testHost+"/api/v1/groups/00g1/skinny_users",
		func(req *http.Request) (*http.Response, error) {
			resp := httpmock.NewStringResponse(http.StatusOK,
				`[{"id": "00u1", "profile": {"login": "jdoe@example.com"}}]`)
			resp.Header.Set("Link", fmt.Sprintf(`<%s>; rel="next"`, nextURL))
			return resp, nil
		})
	httpmock.RegisterResponderWithQuery(http.MethodGet, testHost+"/api/v1/groups/00g1/skinny_users",
		map[string]string{"after": "00u1"},
		httpmock.NewStringResponder(http.StatusOK,
			`[{"id": "00u2", "profile": {"login": "asmith@example.com"}}]`))

	users, err := group.Users(s.ctx)
	s.Require().NoError(err)
	s.Require().Equal(2, len(users))
	s.Equal("jdoe@example.com", users[0].Profile.Login)
	s.Equal("asmith@example.com", users[1].Profile.Login)
	s.Equal(s.client, users[0].client)
}

func (s *groupTestSuite) Test_Users_CanonicalPath() {
	httpmock.RegisterResponder(http.MethodGet, testHost+PathGroups+"/00g1/users",
		httpmock.NewStringResponder(http.StatusOK,
			`[{"id": "00u1", "profile": {"login": "jdoe@example.com"}}]`))

	users, err := s.newGroup().Users(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, len(users))
}

func (s *groupTestSuite) Test_Applications() {
	httpmock.RegisterResponder(http.MethodGet, testHost+PathGroups+"/00g1/apps",
		httpmock.NewStringResponder(http.StatusOK,
			`[{"id": "0oa1", "label": "My SAML App", "status": "ACTIVE"}]`))

	apps, err := s.newGroup().Applications(s.ctx)
	s.Require().NoError(err)
	s.Require().Equal(1, len(apps))
	s.Equal("My SAML App", apps[0].Label)
	s.Equal(s.client, apps[0].client)
}

func (s *groupTestSuite) Test_AddUserByID() {
	httpmock.RegisterResponder(http.MethodPut, testHost+PathGroups+"/00g1/users/00u1",
		httpmock.NewStringResponder(http.StatusNoContent, ""))

	s.Require().NoError(s.newGroup().AddUserByID(s.ctx, "00u1"))

	info := httpmock.GetCallCountInfo()
	s.Equal(1, info["PUT "+testHost+PathGroups+"/00g1/users/00u1"])
}

func (s *groupTestSuite) Test_AddUserByLogin() {
	httpmock.RegisterResponderWithQuery(http.MethodGet, testHost+PathUsers,
		map[string]string{"filter": `profile.login eq "jdoe@example.com"`, "limit": "100"},
		httpmock.NewStringResponder(http.StatusOK,
			`[{"id": "00u1", "profile": {"login": "jdoe@example.com"}}]`))
	httpmock.RegisterResponder(http.MethodPut, testHost+PathGroups+"/00g1/users/00u1",
		httpmock.NewStringResponder(http.StatusNoContent, ""))

	s.Require().NoError(s.newGroup().AddUserByLogin(s.ctx, "jdoe@example.com"))

	info := httpmock.GetCallCountInfo()
	s.Equal(1, info["PUT "+testHost+PathGroups+"/00g1/users/00u1"])
}

func (s *groupTestSuite) Test_AddUserByLogin_CaseInsensitive() {
	httpmock.RegisterResponderWithQuery(http.MethodGet, testHost+PathUsers,
		map[string]string{"filter": `profile.login eq "JDoe@Example.com"`, "limit": "100"},
		httpmock.NewStringResponder(http.StatusOK,
			`[{"id": "00u1", "profile": {"login": "jdoe@example.com"}}]`))
	httpmock.RegisterResponder(http.MethodPut, testHost+PathGroups+"/00g1/users/00u1",
		httpmock.NewStringResponder(http.StatusNoContent, ""))

	s.Require().NoError(s.newGroup().AddUserByLogin(s.ctx, "JDoe@Example.com"))

	info := httpmock.GetCallCountInfo()
	s.Equal(1, info["PUT "+testHost+PathGroups+"/00g1/users/00u1"])
}

func (s *groupTestSuite) Test_RemoveUserByLogin_ExactCase() {
	httpmock.RegisterResponderWithQuery(http.MethodGet, testHost+PathUsers,
		map[string]string{"filter": `profile.login eq "JDoe@Example.com"`, "limit": "100"},
		httpmock.NewStringResponder(http.StatusOK,
			`[{"id": "00u1", "profile": {"login": "jdoe@example.com"}}]`))

	err := s.newGroup().RemoveUserByLogin(s.ctx, "JDoe@Example.com")
	s.ErrorIs(err, ErrInvalidUser)
}

func (s *groupTestSuite) Test_RemoveUserByLogin() {
	httpmock.RegisterResponderWithQuery(http.MethodGet, testHost+PathUsers,
		map[string]string{"filter": `profile.login eq "ghost@example.com"`, "limit": "100"},
		httpmock.NewStringResponder(http.StatusOK, `[]`))

	err := s.newGroup().RemoveUserByLogin(s.ctx, "ghost@example.com")
	s.ErrorIs(err, ErrInvalidUser)
}

func (s *groupTestSuite) Test_AddToApplicationWithLabel() {
	httpmock.RegisterResponderWithQuery(http.MethodGet, testHost+PathApps,
		map[string]string{"q": "My SAML App", "limit": "100"},
		httpmock.NewStringResponder(http.StatusOK,
			`[{"id": "0oa1", "label": "My SAML App", "status": "ACTIVE"}]`))
	httpmock.RegisterResponder(http.MethodPut, testHost+PathApps+"/0oa1/groups/00g1",
		httpmock.NewStringResponder(http.StatusOK, `{"id": "00g1"}`))

	s.Require().NoError(s.newGroup().AddToApplicationWithLabel(s.ctx, "My SAML App"))

	info := httpmock.GetCallCountInfo()
	s.Equal(1, info["PUT "+testHost+PathApps+"/0oa1/groups/00g1"])
}
