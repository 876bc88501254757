package handlers

import (
	"reflect"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidators adds the custom binding rules used by request payloads.
func RegisterValidators() {
	registerOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			_ = v.RegisterValidation("oneof_option", oneOfOption)
		}
	})
}

// oneOfOption passes when the field equals one of Option1..Option4 on the
// same struct.
func oneOfOption(fl validator.FieldLevel) bool {
	parent := fl.Parent()
	if parent.Kind() == reflect.Ptr {
		parent = parent.Elem()
	}
	if parent.Kind() != reflect.Struct {
		return false
	}
	answer := fl.Field().String()
	for _, name := range []string{"Option1", "Option2", "Option3", "Option4"} {
		opt := parent.FieldByName(name)
		if opt.IsValid() && opt.Kind() == reflect.String && opt.String() == answer {
			return true
		}
	}
	return false
}
