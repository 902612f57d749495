package client

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// send performs one request against the instance and returns the decoded JSON
// body together with its raw bytes. data is form-urlencoded unless asJSON is
// set, in which case it is marshaled as a JSON body. Only GET, POST, PUT and
// OPTIONS are allowed; anything else fails before a request is made.
func (c *Client) send(method, path string, data interface{}, asJSON bool) (interface{}, []byte, error) {
	switch method {
	case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions:
	default:
		return nil, nil, errors.Errorf("unsupported method: %s", method)
	}

	req := c.http.R()

	if data != nil {
		if asJSON {
			req.SetHeader("Content-Type", "application/json")
			req.SetBody(data)
		} else {
			form, ok := data.(map[string]string)
			if !ok {
				return nil, nil, errors.Errorf("form data must be map[string]string, got %T", data)
			}
			if len(form) > 0 {
				req.SetFormData(form)
			}
		}
	}

	logrus.Debugf("%s %s%s", method, c.baseURL, path)

	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, nil, &TransportError{Err: err}
	}

	body := resp.Body()

	var decoded interface{}
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, nil, &DecodeError{Body: body, Err: err}
	}

	return decoded, body, nil
}
