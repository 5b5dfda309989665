package okta

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultTimeout = 60 * time.Second

	// DefaultPageLimit is the page size requested from okta for list
	// operations.
	DefaultPageLimit = 100
)

type method string

const (
	MethodGet    method = http.MethodGet
	MethodPost   method = http.MethodPost
	MethodPut    method = http.MethodPut
	MethodDelete method = http.MethodDelete

	PathGroups = "/api/v1/groups"
	PathUsers  = "/api/v1/users"
	PathApps   = "/api/v1/apps"
	PathMe     = "/api/v1/users/me"
)

// Client models the api of okta.
type Client struct {
	config     *ClientConfig
	httpClient *http.Client

	log Logger
}

type ClientConfig struct {
	// Host is the okta org url, e.g. https://example.okta.com
	Host    string
	Token   string
	Timeout time.Duration
	Logger  Logger
}

type Request struct {
	Context     context.Context
	Method      method
	Path        string
	QueryParams QueryParamInterface
	Body        interface{} // error returned if this can't be marshalled to json
	RespModel   interface{} // error returned if this can't be unmarshalled from json

	// url overrides Host+Path when following a pagination cursor or an
	// entity _links href
	url string
}

type QueryParamInterface interface {
	// to query string returns a query string from the queryParams instance
	toQueryString() string
	add(key string, value interface{})
}

type QueryParams map[string]interface{}

func (q QueryParams) toQueryString() string {
	if len(q) == 0 {
		return ""
	}

	values := url.Values{}
	for key, value := range q {
		values.Add(key, fmt.Sprintf("%v", value))
	}

	return "?" + values.Encode()
}

func (q QueryParams) add(key string, value interface{}) {
	q[key] = value
}

func NewClient(config *ClientConfig) (*Client, error) {
	if config.Host == "" {
		return nil, fmt.Errorf("host is required")
	}
	if config.Token == "" {
		return nil, fmt.Errorf("token is required")
	}
	config.Host = strings.TrimRight(config.Host, "/")

	if config.Timeout == 0 {
		config.Timeout = DefaultTimeout
	}

	if config.Logger == nil {
		config.Logger = &noopLogger{}
	}

	c := &Client{
		config: config,
		log:    config.Logger,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}

	// Verify the token before handing the client out
	ctx, cancel := context.WithTimeout(context.Background(), config.Timeout)
	defer cancel()
	err := c.ExecRequest(&Request{
		Context: ctx,
		Method:  MethodGet,
		Path:    PathMe,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuthFailed, err)
	}

	return c, nil
}

func (c *Client) ExecRequest(req *Request) (err error) {
	c.log.Info(req.Context, "executing request", map[string]interface{}{
		"method": req.Method,
		"path":   req.Path,
	})
	defer func() {
		if err != nil {
			c.log.Error(req.Context, "request failed", map[string]interface{}{
				"method": req.Method,
				"path":   req.Path,
				"error":  err.Error(),
			})
		}
	}()

	httpReq, err := c.requestToHTTP(req)
	if err != nil {
		return err
	}

	// Add default timeout
	ctx, cancel := context.WithTimeout(httpReq.Context(), c.config.Timeout)
	defer cancel()

	resp, err := c.httpClient.Do(httpReq.WithContext(ctx))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := checkResponse(resp); err != nil {
		return err
	}

	if req.RespModel != nil {
		return json.NewDecoder(resp.Body).Decode(req.RespModel)
	}

	return nil
}

func (c *Client) requestToHTTP(req *Request) (*http.Request, error) {
	if req.Context == nil {
		req.Context = context.Background()
	}

	url := req.url
	if url == "" {
		url = c.config.Host + req.Path
		if req.QueryParams != nil {
			url += req.QueryParams.toQueryString()
		}
	}

	var body io.Reader
	if req.Body != nil {
		bodyBytes, err := json.Marshal(req.Body)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(bodyBytes)
	}

	httpReq, err := http.NewRequestWithContext(req.Context, string(req.Method), url, body)
	if err != nil {
		return nil, err
	}

	httpReq.Header.Add("Authorization", fmt.Sprintf("SSWS %s", c.config.Token))
	httpReq.Header.Add("Accept", "application/json")

	if body != nil {
		httpReq.Header.Add("Content-Type", "application/json")
	}

	return httpReq, nil
}

type Page struct {
	// Limit is the page size requested from okta
	Limit int

	// NextLink holds the cursor url for the next page, taken from the
	// Link response header of the previous one
	NextLink string
}

// Pagination reference: https://developer.okta.com/docs/api/#pagination
func (c *Client) ExecRequestPaged(req *Request, page *Page) (err error) {
	c.log.Info(req.Context, "executing paged request", map[string]interface{}{
		"method": req.Method,
		"path":   req.Path,
	})
	defer func() {
		if err != nil {
			c.log.Error(req.Context, "paged request failed", map[string]interface{}{
				"method": req.Method,
				"path":   req.Path,
				"error":  err.Error(),
			})
		}
	}()

	if page.Limit <= 0 {
		page.Limit = DefaultPageLimit
	}

	if page.NextLink != "" {
		req.url = page.NextLink
	} else if req.url != "" {
		// first request against an entity _links href carries the limit too
		u, err := url.Parse(req.url)
		if err != nil {
			return err
		}
		query := u.Query()
		query.Set("limit", strconv.Itoa(page.Limit))
		u.RawQuery = query.Encode()
		req.url = u.String()
	} else {
		if req.QueryParams == nil {
			req.QueryParams = QueryParams{}
		}
		req.QueryParams.add("limit", page.Limit)
	}

	httpReq, err := c.requestToHTTP(req)
	if err != nil {
		return err
	}

	// Add default timeout
	ctx, cancel := context.WithTimeout(httpReq.Context(), c.config.Timeout)
	defer cancel()

	resp, err := c.httpClient.Do(httpReq.WithContext(ctx))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := checkResponse(resp); err != nil {
		return err
	}

	if req.RespModel != nil {
		err = json.NewDecoder(resp.Body).Decode(req.RespModel)
		if err != nil {
			return err
		}
	}

	page.NextLink = nextLink(resp)
	if page.NextLink == "" {
		return ErrNoMorePages
	}

	return nil
}

func nextLink(resp *http.Response) string {
	for _, header := range resp.Header.Values("Link") {
		for _, link := range strings.Split(header, ",") {
			if !strings.Contains(link, `rel="next"`) {
				continue
			}
			start := strings.Index(link, "<")
			end := strings.Index(link, ">")
			if start < 0 || end < start {
				continue
			}
			return link[start+1 : end]
		}
	}
	return ""
}

// Links holds the _links object okta attaches to its entities. Values
// are kept raw because okta mixes single objects and arrays in there.
type Links map[string]json.RawMessage

type link struct {
	Href string `json:"href"`
}

// Href returns the href of the named link, or "" when absent.
func (l Links) Href(name string) string {
	raw, ok := l[name]
	if !ok {
		return ""
	}

	var target link
	if err := json.Unmarshal(raw, &target); err != nil {
		return ""
	}

	return target.Href
}
