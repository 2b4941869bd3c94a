package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// Messages menerjemahkan error binding gin menjadi daftar pesan yang bisa
// ditampilkan ke admin.
func Messages(err error) []string {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		out := make([]string, 0, len(validationErrors))
		for _, e := range validationErrors {
			out = append(out, FieldMessage(e))
		}
		return out
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return []string{fmt.Sprintf("%s harus bertipe %s", typeErr.Field, typeErr.Type.String())}
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return []string{"Format JSON tidak valid"}
	}

	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		return []string{fmt.Sprintf("nilai %q harus berupa angka", numErr.Num)}
	}

	return []string{err.Error()}
}

// FieldMessage pesan untuk satu field; custom message didahulukan.
func FieldMessage(e validator.FieldError) string {
	if fieldMessages := CustomMessage(e.Field()); fieldMessages != nil {
		if msg, exists := fieldMessages[e.Tag()]; exists {
			return msg
		}
	}
	return DefaultMessage(e.Field(), e.Tag(), e.Param())
}
