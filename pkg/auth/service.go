package auth

import (
	"errors"
	"fmt"

	"authgate/pkg/credentials"
	"authgate/pkg/session"
)

type ServiceInterface interface {
	Login(username, password string) (*session.Session, error)
	Logout(token string) error
}

type Service struct {
	Creds    credentials.Provider
	Sessions session.Repository
}

func NewService(creds credentials.Provider, sessions session.Repository) *Service {
	return &Service{Creds: creds, Sessions: sessions}
}

// Login checks the submitted pair and issues a fresh record. Each login
// gets its own record; an earlier one is neither renewed nor replaced.
func (s *Service) Login(username, password string) (*session.Session, error) {
	entry, err := s.Creds.Check(username, password)
	if err != nil {
		return nil, errors.New("invalid credentials")
	}

	sess, err := s.Sessions.Create(entry.Username, entry.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %s", err)
	}

	return sess, nil
}

// Logout removes the one record the token names. Unknown tokens succeed.
func (s *Service) Logout(token string) error {
	return s.Sessions.Delete(token)
}
