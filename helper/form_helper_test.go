package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signinForm struct {
	Email    string `validate:"required,email,max=64"`
	Password string `validate:"required"`
}

func TestFormErrorsValidPayload(t *testing.T) {
	forms := NewFormHelper()

	errs := forms.FormErrors(signinForm{Email: "user@example.com", Password: "secret"})
	assert.Nil(t, errs)
}

func TestFormErrorsTranslatedByField(t *testing.T) {
	forms := NewFormHelper()

	errs := forms.FormErrors(signinForm{Email: "not-an-email"})
	require.Len(t, errs, 2)
	assert.Contains(t, errs["email"], "valid email")
	assert.Contains(t, errs["password"], "required")
}

func TestUnderscore(t *testing.T) {
	assert.Equal(t, "header", Underscore("Header"))
	assert.Equal(t, "remember_me", Underscore("RememberMe"))
	assert.Equal(t, "tags", Underscore("Tags"))
}
