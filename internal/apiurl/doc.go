// Package apiurl resolves the base URL the client uses for every API call.
//
// The base URL is computed once from prioritized signals and is immutable
// afterwards. An empty base URL means "same origin": paths are sent to the
// server the client already talks to.
package apiurl
