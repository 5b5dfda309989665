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

const (
	testHost  = "https://test.okta.com"
	testToken = "test-token"
)

type clientTestSuite struct {
	suite.Suite

	ctx context.Context
}

func TestClient(t *testing.T) {
	suite.Run(t, &clientTestSuite{
		ctx: context.Background(),
	})
}

func (s *clientTestSuite) SetupTest() {
	httpmock.Activate()
}

func (s *clientTestSuite) TearDownTest() {
	httpmock.DeactivateAndReset()
}

// newTestClient builds a client without going through the token probe in
// NewClient. The zero-value http client picks up the transport patched
// by httpmock.
func newTestClient() *Client {
	return &Client{
		config: &ClientConfig{
			Host:    testHost,
			Token:   testToken,
			Timeout: DefaultTimeout,
		},
		log:        NewNoopLogger(),
		httpClient: &http.Client{},
	}
}

func (s *clientTestSuite) Test_NewClient() {
	httpmock.RegisterResponder(http.MethodGet, testHost+PathMe,
		func(req *http.Request) (*http.Response, error) {
			s.Equal("SSWS "+testToken, req.Header.Get("Authorization"))
			s.Equal("application/json", req.Header.Get("Accept"))
			return httpmock.NewStringResponse(http.StatusOK, `{"id": "00u1"}`), nil
		})

	c, err := NewClient(&ClientConfig{
		Host:  testHost + "/",
		Token: testToken,
	})
	s.Require().NoError(err)
	s.Equal(testHost, c.config.Host)
	s.Equal(DefaultTimeout, c.config.Timeout)
	s.Equal(1, httpmock.GetTotalCallCount())
}

func (s *clientTestSuite) Test_NewClient_AuthFailed() {
	httpmock.RegisterResponder(http.MethodGet, testHost+PathMe,
		httpmock.NewStringResponder(http.StatusUnauthorized,
			`{"errorCode": "E0000011", "errorSummary": "Invalid token provided"}`))

	c, err := NewClient(&ClientConfig{
		Host:  testHost,
		Token: "bogus",
	})
	s.Nil(c)
	s.Require().Error(err)
	s.ErrorIs(err, ErrAuthFailed)
}

func (s *clientTestSuite) Test_NewClient_ConfigValidation() {
	c, err := NewClient(&ClientConfig{Token: testToken})
	s.Nil(c)
	s.Error(err)

	c, err = NewClient(&ClientConfig{Host: testHost})
	s.Nil(c)
	s.Error(err)
}

func (s *clientTestSuite) Test_ExecRequest() {
	type widget struct {
		ID string `json:"id"`
	}

	httpmock.RegisterResponder(http.MethodPost, testHost+"/api/v1/widgets",
		func(req *http.Request) (*http.Response, error) {
			s.Equal("application/json", req.Header.Get("Content-Type"))

			var body widget
			s.Require().NoError(json.NewDecoder(req.Body).Decode(&body))
			s.Equal("w1", body.ID)

			return httpmock.NewStringResponse(http.StatusOK, `{"id": "w2"}`), nil
		})

	var resp widget
	err := newTestClient().ExecRequest(&Request{
		Context:   s.ctx,
		Method:    MethodPost,
		Path:      "/api/v1/widgets",
		Body:      &widget{ID: "w1"},
		RespModel: &resp,
	})
	s.Require().NoError(err)
	s.Equal("w2", resp.ID)
}

func (s *clientTestSuite) Test_ExecRequest_APIError() {
	httpmock.RegisterResponder(http.MethodGet, testHost+PathGroups+"/00g1",
		httpmock.NewStringResponder(http.StatusNotFound,
			`{"errorCode": "E0000007", "errorSummary": "Not found: 00g1", "errorId": "oae123"}`))

	err := newTestClient().ExecRequest(&Request{
		Context: s.ctx,
		Method:  MethodGet,
		Path:    PathGroups + "/00g1",
	})
	s.Require().Error(err)

	apiErr := &APIError{}
	s.Require().ErrorAs(err, &apiErr)
	s.Equal(http.StatusNotFound, apiErr.StatusCode)
	s.Equal("E0000007", apiErr.Code)
	s.Equal("Not found: 00g1", apiErr.Summary)
	s.Equal("oae123", apiErr.RequestID)
	s.True(IsNotFound(err))
}

func (s *clientTestSuite) Test_ExecRequest_NonJSONError() {
	httpmock.RegisterResponder(http.MethodGet, testHost+PathMe,
		httpmock.NewStringResponder(http.StatusBadGateway, "upstream unavailable"))

	err := newTestClient().ExecRequest(&Request{
		Context: s.ctx,
		Method:  MethodGet,
		Path:    PathMe,
	})
	s.Require().Error(err)

	apiErr := &APIError{}
	s.Require().ErrorAs(err, &apiErr)
	s.Equal(http.StatusBadGateway, apiErr.StatusCode)
	s.Equal("upstream unavailable", apiErr.Summary)
	s.False(IsNotFound(err))
}

func (s *clientTestSuite) Test_ExecRequest_RateLimit() {
	httpmock.RegisterResponder(http.MethodGet, testHost+PathUsers,
		httpmock.NewStringResponder(http.StatusTooManyRequests,
			`{"errorCode": "E0000047", "errorSummary": "API call exceeded rate limit"}`))

	err := newTestClient().ExecRequest(&Request{
		Context: s.ctx,
		Method:  MethodGet,
		Path:    PathUsers,
	})
	s.ErrorIs(err, ErrRateLimitExceeded)
}

func (s *clientTestSuite) Test_ExecRequestPaged() {
	nextURL := testHost + PathGroups + "?after=00g2&limit=2"

	httpmock.RegisterResponderWithQuery(http.MethodGet, testHost+PathGroups,
		map[string]string{"limit": "2"},
		func(req *http.Request) (*http.Response, error) {
			resp := httpmock.NewStringResponse(http.StatusOK,
				`[{"id": "00g1", "profile": {"name": "one"}}, {"id": "00g2", "profile": {"name": "two"}}]`)
			resp.Header.Set("Link", fmt.Sprintf(`<%s>; rel="next"`, nextURL))
			return resp, nil
		})

	httpmock.RegisterResponderWithQuery(http.MethodGet, testHost+PathGroups,
		map[string]string{"after": "00g2", "limit": "2"},
		httpmock.NewStringResponder(http.StatusOK,
			`[{"id": "00g3", "profile": {"name": "three"}}]`))

	c := newTestClient()
	page := &Page{Limit: 2}

	var resp1 []*Group
	err := c.ExecRequestPaged(&Request{
		Context:   s.ctx,
		Method:    MethodGet,
		Path:      PathGroups,
		RespModel: &resp1,
	}, page)
	s.Require().NoError(err)
	s.Require().Equal(2, len(resp1))
	s.Equal(nextURL, page.NextLink)

	var resp2 []*Group
	err = c.ExecRequestPaged(&Request{
		Context:   s.ctx,
		Method:    MethodGet,
		Path:      PathGroups,
		RespModel: &resp2,
	}, page)
	s.Require().ErrorIs(err, ErrNoMorePages)
	s.Require().Equal(1, len(resp2))
	s.Equal("", page.NextLink)
	s.Equal("00g3", resp2[0].ID)
}

func (s *clientTestSuite) Test_ExecRequestPaged_HrefCarriesLimit() {
	href := testHost + PathGroups + "/00g1/skinny_users?expand=stats"

	httpmock.RegisterResponderWithQuery(http.MethodGet, testHost+PathGroups+"/00g1/skinny_users",
		map[string]string{"expand": "stats", "limit": "2"},
		httpmock.NewStringResponder(http.StatusOK,
			`[{"id": "00u1", "profile": {"login": "jdoe@example.com"}}]`))

	var resp []*User
	err := newTestClient().ExecRequestPaged(&Request{
		Context:   s.ctx,
		Method:    MethodGet,
		RespModel: &resp,
		url:       href,
	}, &Page{Limit: 2})
	s.Require().ErrorIs(err, ErrNoMorePages)
	s.Require().Equal(1, len(resp))
	s.Equal("00u1", resp[0].ID)
}

func (s *clientTestSuite) Test_nextLink() {
	resp := &http.Response{Header: http.Header{}}
	s.Equal("", nextLink(resp))

	resp.Header.Add("Link", `<https://test.okta.com/api/v1/users?limit=100>; rel="self"`)
	s.Equal("", nextLink(resp))

	resp.Header.Add("Link", `<https://test.okta.com/api/v1/users?after=00u1&limit=100>; rel="next"`)
	s.Equal("https://test.okta.com/api/v1/users?after=00u1&limit=100", nextLink(resp))

	// both relations folded into a single header value
	resp = &http.Response{Header: http.Header{}}
	resp.Header.Set("Link",
		`<https://test.okta.com/api/v1/users?limit=2>; rel="self", <https://test.okta.com/api/v1/users?after=00u2&limit=2>; rel="next"`)
	s.Equal("https://test.okta.com/api/v1/users?after=00u2&limit=2", nextLink(resp))
}

func (s *clientTestSuite) Test_QueryParams_toQueryString() {
	s.Equal("", QueryParams{}.toQueryString())
	s.Equal("?limit=100", QueryParams{"limit": 100}.toQueryString())
	s.Equal("?activate=false&q=test", QueryParams{"q": "test", "activate": false}.toQueryString())
}

func (s *clientTestSuite) Test_Links_Href() {
	var links Links
	s.Equal("", links.Href("users"))

	raw := `{
		"users": {"href": "https://test.okta.com/api/v1/groups/00g1/users"},
		"logo": [{"name": "medium", "href": "https://ok1static.oktacdn.com/bc/image.png"}]
	}`
	s.Require().NoError(json.Unmarshal([]byte(raw), &links))
	s.Equal("https://test.okta.com/api/v1/groups/00g1/users", links.Href("users"))
	s.Equal("", links.Href("logo"))
	s.Equal("", links.Href("missing"))
}
