package i

import (
	"github.com/beka-birhanu/maze-editor/identity"
)

// Authenticator registers authors and signs them in.
type Authenticator interface {
	Register(username, password string) error
	SignIn(username, password string) (*identity.Author, string, error)
}
