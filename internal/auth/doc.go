// Package auth decides whether a request may reach the API.
//
// A Strategy resolves the caller from request credentials (HTTP Basic or a
// session cookie) and the Gate turns that into one of three outcomes:
// Allow, Unauthorized (no usable credentials) or Forbidden (credentials that
// resolve to no user). Sessions live in a Store; expiry and persistence are
// separate Store implementations that compose instead of inheriting.
package auth
