// Package validation registers the custom form rules used in binding tags.
package validation

import (
	"net/url"
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Validation rule patterns
var (
	// Usernames are a single token of letters, digits and ._-
	UsernamePattern = regexp.MustCompile(`^[A-Za-z0-9._\-]+$`)
)

const (
	TagUsername = "username"
	TagWebLink  = "weblink"
)

var registerOnce sync.Once

// Register adds the custom rules to v
func Register(v *validator.Validate) error {
	if err := v.RegisterValidation(TagUsername, validUsername); err != nil {
		return err
	}
	return v.RegisterValidation(TagWebLink, validWebLink)
}

// RegisterWithGin adds the custom rules to gin's default binding validator.
// Safe to call more than once.
func RegisterWithGin() error {
	var err error
	registerOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			err = Register(v)
		}
	})
	return err
}

func validUsername(fl validator.FieldLevel) bool {
	return UsernamePattern.MatchString(fl.Field().String())
}

// validWebLink accepts an empty value or an absolute http(s) URL
func validWebLink(fl validator.FieldLevel) bool {
	return IsWebLink(fl.Field().String())
}

// IsWebLink reports whether s is empty or an absolute http(s) URL with a host
func IsWebLink(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return true
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
