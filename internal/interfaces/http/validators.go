package http

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// template names come from a fixed catalog, all lowercase kebab-case
var templateNameRe = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// RegisterValidators installs custom binding validations on Gin's
// validator engine. Call once before handling requests.
func RegisterValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	_ = v.RegisterValidation("template", func(fl validator.FieldLevel) bool {
		return templateNameRe.MatchString(fl.Field().String())
	})
}
