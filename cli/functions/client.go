package functions

import (
	"os"

	"github.com/schubergphilis/oktalib/cli/config"
	"github.com/schubergphilis/oktalib/okta"
	"github.com/sirupsen/logrus"
)

var client *okta.Client

// Client returns a client for the current context. The OKTA_HOST and
// OKTA_TOKEN environment variables take precedence over the context file.
func Client() *okta.Client {
	if client != nil {
		return client
	}

	host, token := os.Getenv("OKTA_HOST"), os.Getenv("OKTA_TOKEN")
	if host == "" || token == "" {
		_, ctx := config.GetCurrentContext()
		host, token = ctx.Host, ctx.Token
	}

	c, err := okta.NewClient(&okta.ClientConfig{
		Host:   host,
		Token:  token,
		Logger: okta.NewLogrusLogger(logrus.StandardLogger()),
	})
	if err != nil {
		logrus.Fatalf("Unable to connect to okta: %s", err)
	}

	client = c
	return client
}
