package jira

import "net/http"

// Authorization selects how an outbound request is authenticated.
// It is a closed set: APIToken and AccessToken are the only variants.
type Authorization interface {
	apply(req *http.Request)
}

// APIToken authenticates with HTTP basic auth, using the API token as
// the password.
type APIToken struct {
	Username string
	Token    string
}

func (a APIToken) apply(req *http.Request) {
	req.SetBasicAuth(a.Username, a.Token)
}

// AccessToken authenticates with a bearer token.
type AccessToken struct {
	Token string
}

func (a AccessToken) apply(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+a.Token)
}
