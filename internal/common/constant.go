// Package common contains the constants shared by the console, the proxy
// and the development backend.
package common

// AuthorizationHeader carries the bearer credential on every authenticated
// request.
const AuthorizationHeader = "Authorization"

// BearerPrefix precedes the token inside AuthorizationHeader.
const BearerPrefix = "Bearer "

// RequestIDHeader is echoed by the proxy for log correlation.
const RequestIDHeader = "X-Request-ID"

// BearerValue formats token as an Authorization header value.
func BearerValue(token string) string {
	return BearerPrefix + token
}
