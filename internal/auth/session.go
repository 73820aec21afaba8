package auth

import "github.com/skybi/asset-manager/internal/model"

// Session represents the session state of the local user.
// User is only meaningful alongside a token, but this is not enforced.
type Session struct {
	Token           string
	User            *model.User
	IsAuthenticated bool
}

func newSession(token string, user *model.User) Session {
	return Session{
		Token:           token,
		User:            user,
		IsAuthenticated: token != "",
	}
}
