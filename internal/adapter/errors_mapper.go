package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// detailFields are consulted in order when extracting a readable message from
// an error body.
var detailFields = []string{"detail", "message", "error"}

// interpret applies the response contract: a non-2xx status becomes an
// *HTTPError, a 2xx body is decoded into out unless out is nil or the body is
// empty.
func interpret(resp *resty.Response, out any) error {
	status := resp.StatusCode()
	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return &HTTPError{Status: status, Detail: errorDetail(status, resp.Body())}
	}

	if out == nil || len(strings.TrimSpace(string(resp.Body()))) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	return nil
}

// errorDetail never fails: unparseable or field-less bodies degrade to the
// generic status message.
func errorDetail(status int, body []byte) string {
	var fields map[string]any
	if err := json.Unmarshal(body, &fields); err == nil {
		for _, name := range detailFields {
			if text := stringField(fields[name]); text != "" {
				return text
			}
		}
	}

	return fmt.Sprintf("http %d: %s", status, http.StatusText(status))
}

func stringField(v any) string {
	switch value := v.(type) {
	case string:
		return strings.TrimSpace(value)
	case []any:
		if len(value) > 0 {
			return stringField(value[0])
		}
	}
	return ""
}
