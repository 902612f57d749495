package client

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/aljvdi/authoria-dns-lib/types"
)

// DefaultTTL is the verification request lifetime in seconds used when the
// caller does not choose one.
const DefaultTTL = 300

const (
	newPath        = "/new"
	verifyPath     = "/verify"
	bulkVerifyPath = "/bulk-verify"
)

// CreateVerification issues a verification request for domain with DefaultTTL.
func (c *Client) CreateVerification(domain string) (*types.VerificationRequest, error) {
	return c.CreateVerificationTTL(domain, DefaultTTL)
}

// CreateVerificationTTL issues a verification request for domain. Neither
// domain nor ttl is validated locally; the instance rejects bad values and
// the rejection surfaces as a ServerError.
func (c *Client) CreateVerificationTTL(domain string, ttl int) (*types.VerificationRequest, error) {
	data := map[string]string{
		"domain": domain,
		"ttl":    strconv.Itoa(ttl),
	}

	_, raw, err := c.send(http.MethodPost, newPath, data, false)
	if err != nil {
		return nil, err
	}

	var out types.CreateResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, &DecodeError{Body: raw, Err: err}
	}

	if out.Error != "" {
		return nil, &ServerError{Message: out.Error}
	}

	return &types.VerificationRequest{
		ID:           out.ID,
		Token:        out.TXT,
		Instructions: Instructions(out.TXT),
	}, nil
}

// Instructions renders the DNS step a domain owner has to follow for the
// given TXT token.
func Instructions(token string) string {
	return fmt.Sprintf("Add a TXT record with the value '%s' to your domain's DNS records", token)
}

// GetVerificationStatus returns the instance's view of one verification
// request. The status classification comes from the instance untouched.
func (c *Client) GetVerificationStatus(id string) (*types.VerificationStatus, error) {
	path := verifyPath + "?id=" + url.QueryEscape(id)

	_, raw, err := c.send(http.MethodGet, path, nil, false)
	if err != nil {
		return nil, err
	}

	var out types.VerificationStatus
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, &DecodeError{Body: raw, Err: err}
	}

	return &out, nil
}

// BulkGetVerificationStatus resolves many verification requests in one round
// trip. The result keeps whatever order the instance answered with.
func (c *Client) BulkGetVerificationStatus(ids []string) ([]types.VerificationStatus, error) {
	_, raw, err := c.send(http.MethodPost, bulkVerifyPath, types.BulkPayload{IDs: ids}, true)
	if err != nil {
		return nil, err
	}

	out := make([]types.VerificationStatus, 0)
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, &DecodeError{Body: raw, Err: err}
	}

	return out, nil
}
