package client

import (
	"crypto/tls"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
)

const (
	apiBasePath   = "/api/v1"
	handshakePath = "/is-that-authoria"
)

// Client talks to one authoria instance. It holds no mutable state beyond its
// configuration, so independent calls from multiple goroutines are safe. The
// zero value is not usable; use New or NewClient.
type Client struct {
	baseURL       string
	skipTLSVerify bool
	http          *resty.Client
}

// New returns a client for the given instance. TLS certificate verification
// is skipped, the default for this API.
func New(instance string) (*Client, error) {
	return NewClient(instance, true)
}

// NewClient normalizes the instance URL, then performs one OPTIONS handshake
// to confirm the remote identifies itself as an authoria instance. No usable
// client is returned before the handshake succeeds.
func NewClient(instance string, skipTLSVerify bool) (*Client, error) {
	normalized, err := NormalizeInstanceURL(instance, skipTLSVerify)
	if err != nil {
		return nil, err
	}

	h := resty.New()
	h.SetBaseURL(normalized + apiBasePath)
	h.SetHeader("Accept", "application/json")
	if skipTLSVerify {
		h.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}

	c := &Client{
		baseURL:       normalized + apiBasePath,
		skipTLSVerify: skipTLSVerify,
		http:          h,
	}

	if err := c.handshake(); err != nil {
		return nil, err
	}

	return c, nil
}

// NormalizeInstanceURL validates instance and returns it in absolute form.
// A missing scheme defaults to https when TLS verification is skipped and to
// http when it is enabled.
func NormalizeInstanceURL(instance string, skipTLSVerify bool) (string, error) {
	instance = strings.TrimSuffix(strings.TrimSpace(instance), "/")

	if !strings.Contains(instance, "://") {
		if skipTLSVerify {
			instance = "https://" + instance
		} else {
			instance = "http://" + instance
		}
	}

	u, err := url.Parse(instance)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return "", &ConfigurationError{Reason: "invalid instance URL", Err: err}
	}

	return u.String(), nil
}

// BaseURL returns the API base used for requests, including the version path.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) handshake() error {
	decoded, _, err := c.send(http.MethodOptions, handshakePath, nil, false)
	if err != nil {
		return err
	}

	fields, ok := decoded.(map[string]interface{})
	if !ok || !truthy(fields["authoria"]) {
		return &ConfigurationError{Reason: "not a compatible instance"}
	}

	logrus.Debugf("handshake with %s succeeded", c.baseURL)
	return nil
}

// truthy follows the handshake contract: the authoria field only has to be
// truthy, not strictly boolean.
func truthy(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0
	default:
		return true
	}
}
