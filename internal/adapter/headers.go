package adapter

import "strings"

const (
	headerContentType   = "Content-Type"
	headerAuthorization = "Authorization"
	headerRequestID     = "X-Request-ID"

	contentTypeJSON = "application/json"
	bearerPrefix    = "Bearer "
)

// buildHeaders returns the request headers for one call.
//
// JSON content type is set unless the body is multipart, where the transport
// writes the boundary itself. The bearer header is added only when auth is
// required and accessSecret is non-blank.
func buildHeaders(accessSecret string, requireAuth, isMultipart bool) map[string]string {
	headers := make(map[string]string, 2)

	if !isMultipart {
		headers[headerContentType] = contentTypeJSON
	}

	if requireAuth {
		if secret := strings.TrimSpace(accessSecret); secret != "" {
			headers[headerAuthorization] = bearerPrefix + secret
		}
	}

	return headers
}
