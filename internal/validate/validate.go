package validate

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/catalogtools/catalog-admin/internal/models"
)

// Fields maps a field's JSON name to the kind of validation failure.
// An empty map means the payload is valid. Expected validation failures
// are values, never panics or exceptions.
type Fields map[string]string

// Failure kinds reported per field
const (
	KindRequired = "required"
	KindTooLong  = "too_long"
	KindTooSmall = "too_small"
	KindInvalid  = "invalid"
)

// FormValidator validates request payloads before they reach the API
type FormValidator struct {
	v *validator.Validate
}

// New creates a form validator that reports fields by their JSON names
func New() *FormValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return &FormValidator{v: v}
}

// CreateCategory validates a category creation payload
func (fv *FormValidator) CreateCategory(req models.CreateCategoryRequest) Fields {
	return fv.check(req)
}

// UpdateCategory validates a category rename payload
func (fv *FormValidator) UpdateCategory(req models.UpdateCategoryRequest) Fields {
	return fv.check(req)
}

// CreateProduct validates a product creation payload
func (fv *FormValidator) CreateProduct(req models.CreateProductRequest) Fields {
	return fv.check(req)
}

// UpdateProduct validates a product update payload
func (fv *FormValidator) UpdateProduct(req models.UpdateProductRequest) Fields {
	return fv.check(req)
}

func (fv *FormValidator) check(payload any) Fields {
	err := fv.v.Struct(payload)
	if err == nil {
		return Fields{}
	}

	fields := Fields{}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// Non-struct input is a programming error; report it generically
		fields["_"] = KindInvalid
		return fields
	}

	for _, fe := range verrs {
		fields[fe.Field()] = kind(fe.Tag())
	}
	return fields
}

// kind maps validator tags to the stable failure kinds the view renders
func kind(tag string) string {
	switch tag {
	case "required":
		return KindRequired
	case "max":
		return KindTooLong
	case "gte", "min":
		return KindTooSmall
	default:
		return KindInvalid
	}
}
