// Package validation registers the request field rules shared by the HTTP handlers
// on gin's validator engine.
package validation

import (
	"regexp"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const (
	TagPhone = "phone"
	TagEmail = "loose_email"
)

var (
	phonePattern = regexp.MustCompile(`^(\+\d{1,3}[- ]?)?\d{10}$`)
	emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

	once sync.Once
)

// Register installs the custom tags. Safe to call more than once.
func Register() {
	once.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation(TagPhone, matches(phonePattern))
		_ = v.RegisterValidation(TagEmail, matches(emailPattern))
	})
}

func matches(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}

func IsPhone(s string) bool { return phonePattern.MatchString(s) }

func IsEmail(s string) bool { return emailPattern.MatchString(s) }
