package middleware

import (
	"reflect"
	"slices"
	"strings"

	"github.com/Payphone-Digital/landing-cms/internal/model"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var newsStatuses = []string{model.NewsStatusDraft, model.NewsStatusPublished, model.NewsStatusArchived}

// RegisterValidators memasang tag custom ke validator milik gin. Nama field
// di error mengikuti tag json/form supaya cocok dengan pesan di pkg/validation.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return registerOn(v)
}

func registerOn(v *validator.Validate) error {
	v.RegisterTagNameFunc(fieldName)

	if err := v.RegisterValidation("socialmedia", func(fl validator.FieldLevel) bool {
		return slices.Contains(model.SocialMediaTypes, strings.ToUpper(strings.TrimSpace(fl.Field().String())))
	}); err != nil {
		return err
	}
	return v.RegisterValidation("newsstatus", func(fl validator.FieldLevel) bool {
		return slices.Contains(newsStatuses, fl.Field().String())
	})
}

func fieldName(field reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name, _, _ := strings.Cut(field.Tag.Get(tag), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return field.Name
}
