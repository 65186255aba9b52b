package validator

import (
	"errors"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	govalidator "github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/riyaziyyat/exam-backend/internal/model"
)

// tagOptions is reported when a multiple-choice question has no usable option.
const tagOptions = "mc_options"

// trans is the singleton English translator for validation errors.
var trans ut.Translator

// Setup registers the validator with English translations on Gin's binding engine.
// Call once during application startup.
func Setup() {
	v, ok := binding.Validator.Engine().(*govalidator.Validate)
	if !ok {
		return
	}

	// Use JSON tag name for field names in error messages.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterStructValidation(questionOptions, model.QuestionRequest{})

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ = uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(v, trans)
	_ = v.RegisterTranslation(tagOptions, trans,
		func(ut ut.Translator) error {
			return ut.Add(tagOptions, "{0} must contain at least one non-empty option for multiple-choice questions", true)
		},
		func(ut ut.Translator, fe govalidator.FieldError) string {
			msg, _ := ut.T(tagOptions, fe.Field())
			return msg
		},
	)
}

// questionOptions requires a multiple-choice question to carry at least one
// non-empty option. Free-form questions may send anything; the options are
// dropped when the exam is stored.
func questionOptions(sl govalidator.StructLevel) {
	q := sl.Current().Interface().(model.QuestionRequest)
	if q.Type != model.QuestionMultipleChoice {
		return
	}
	for _, opt := range q.Options {
		if strings.TrimSpace(opt) != "" {
			return
		}
	}
	sl.ReportError(q.Options, "options", "Options", tagOptions, "")
}

// TranslateErrors takes a binding/validation error and returns a map of
// field path → human-readable error message. Nested fields are keyed by
// their JSON path, e.g. "questions[1].options". If the error is not a
// validation error, it returns a single-key map with "detail".
func TranslateErrors(err error) map[string]string {
	fields := make(map[string]string)

	var ve govalidator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			fields[fieldPath(fe)] = fe.Translate(trans)
		}
		return fields
	}

	// Not a validation error (e.g., JSON syntax error).
	fields["detail"] = err.Error()
	return fields
}

// fieldPath drops the root struct name from the error namespace.
func fieldPath(fe govalidator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

// Bind binds and validates the request body into dst.
// Returns nil on success or a translated field error map on failure.
func Bind(c *gin.Context, dst any) map[string]string {
	if err := c.ShouldBindJSON(dst); err != nil {
		return TranslateErrors(err)
	}
	return nil
}
