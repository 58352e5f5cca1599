package helper

import (
	"strings"
	"unicode"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"gopkg.in/go-playground/validator.v9"
	en_translations "gopkg.in/go-playground/validator.v9/translations/en"
)

// FormHelper validates form payloads and translates field errors into
// messages the templates can render next to each input.
type FormHelper struct {
	Validate   *validator.Validate
	Translator ut.Translator
}

func NewFormHelper() *FormHelper {
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")

	validate := validator.New()
	_ = en_translations.RegisterDefaultTranslations(validate, trans)

	return &FormHelper{Validate: validate, Translator: trans}
}

// FormErrors validates the payload and returns a field -> message map,
// keyed by the underscored struct field name. Nil means the payload is
// valid.
func (h *FormHelper) FormErrors(payload interface{}) map[string]string {
	err := h.Validate.Struct(payload)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"form": err.Error()}
	}

	translated := validationErrors.Translate(h.Translator)
	out := make(map[string]string, len(validationErrors))
	for _, fieldErr := range validationErrors {
		out[Underscore(fieldErr.StructField())] = translated[fieldErr.Namespace()]
	}
	return out
}

// Underscore converts a CamelCase struct field name to snake_case.
func Underscore(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
