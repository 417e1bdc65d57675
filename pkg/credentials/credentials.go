package credentials

import "errors"

var ErrInvalidCredentials = errors.New("invalid credentials")

// Entry is the configured principal: the one username/password pair the
// services accept, plus the role attached to it at login time.
type Entry struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	Password string `json:"-"`
}

type Provider interface {
	Check(username, password string) (*Entry, error)
}

// StaticProvider holds exactly one entry injected at construction,
// keeping the comparison logic testable without any storage behind it.
type StaticProvider struct {
	entry Entry
}

func NewStaticProvider(username, password, role string) *StaticProvider {
	return &StaticProvider{entry: Entry{
		Username: username,
		Password: password,
		Role:     role,
	}}
}

// Check is an exact-string comparison on both fields.
func (p *StaticProvider) Check(username, password string) (*Entry, error) {
	if username != p.entry.Username || password != p.entry.Password {
		return nil, ErrInvalidCredentials
	}
	entry := p.entry
	return &entry, nil
}
