// Package session owns the credentials of a logged-in user. Sessions
// are persisted through the config layer under fixed option keys, one
// section per API host; the request client itself never touches this
// storage and only ever receives the token by parameter.
package session

import "github.com/monetaio/moneta/config"

const (
	tokenKey    = "token"
	usernameKey = "username"
)

// Session holds the opaque bearer token and the username it belongs to.
type Session struct {
	Username string
	Token    string
}

// Load returns the session stored for host. ok is false when no usable
// session (one with a token) is stored.
func Load(host string) (s Session, ok bool) {
	s.Token = config.GetOption(host, tokenKey)
	s.Username = config.GetOption(host, usernameKey)
	return s, s.Token != ""
}

// Save persists the session for host and makes host the default API
// address for subsequent runs.
func Save(host string, s Session) error {
	config.AddOption(host, tokenKey, s.Token)
	config.AddOption(host, usernameKey, s.Username)
	config.Set("host", host)
	return config.Save()
}

// Clear removes any session stored for host. Clearing an absent session
// is not an error.
func Clear(host string) error {
	config.RemoveOption(host, tokenKey)
	config.RemoveOption(host, usernameKey)
	return config.Save()
}
