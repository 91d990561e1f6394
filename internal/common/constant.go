// Package common contains shared constants and sentinel errors used across
// TaskKeeper components.
package common

// AuthHeaderName is the HTTP header that carries the access token on
// inbound requests.
const AuthHeaderName = "Authorization"

// AuthScheme is the expected prefix of the Authorization header value.
const AuthScheme = "Bearer"
