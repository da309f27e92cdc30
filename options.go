package meigit

import (
	"errors"
	"strings"

	"github.com/mei-friend/meigit/log"
)

// Option configures a Session at Login.
type Option func(*options) error

type options struct {
	author *Author
	logger log.Logger
}

// WithAuthor overrides the commit identity taken from the hosting profile.
func WithAuthor(name, email string) Option {
	return func(o *options) error {
		if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" {
			return errors.New("author name and email cannot be empty")
		}
		o.author = &Author{Name: name, Email: email}
		return nil
	}
}

// WithLogger sets the logger used by every operation of the session whose
// context does not already carry one.
func WithLogger(logger log.Logger) Option {
	return func(o *options) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		o.logger = logger
		return nil
	}
}
