package page

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/goliatone/go-uikit/pkg/model"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	componentTypePattern = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)
	componentIDPattern   = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_.:-]*$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("component_type", func(fl validator.FieldLevel) bool {
			return componentTypePattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("component_id", func(fl validator.FieldLevel) bool {
			return componentIDPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})
	return validateInst
}

// Validator returns the shared validator instance, with the component_type
// and component_id validations registered.
func Validator() *validator.Validate {
	return validatorInstance()
}

// Validate checks document structure: page and component ids are well
// formed and unique, component types are well formed. Whether a type is
// registered is checked when the document is built.
func Validate(doc model.Page) error {
	if err := validatorInstance().Struct(doc); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]struct{})
	var dup string
	doc.Walk(func(c model.Component) bool {
		if c.ID == "" {
			return true
		}
		if _, ok := seen[c.ID]; ok {
			dup = c.ID
			return false
		}
		seen[c.ID] = struct{}{}
		return true
	})
	if dup != "" {
		return fmt.Errorf("page: duplicate component id %q", dup)
	}
	return nil
}

// validateProps runs struct validation on decoded component props.
func validateProps(component model.Component, props any) error {
	if err := validatorInstance().Struct(props); err != nil {
		return fmt.Errorf("page: component %q (%s): %w", component.ID, component.Type, convertValidationError(err))
	}
	return nil
}

func convertValidationError(err error) error {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return err
	}
	messages := make([]string, 0, len(errs))
	for _, fe := range errs {
		messages = append(messages, fmt.Sprintf("%s failed %s", fieldPath(fe.Namespace()), describeTag(fe)))
	}
	return fmt.Errorf("page: invalid document: %s", strings.Join(messages, "; "))
}

func describeTag(fe validator.FieldError) string {
	if fe.Param() == "" {
		return fe.Tag()
	}
	return fe.Tag() + "=" + fe.Param()
}

// fieldPath drops the root struct name from a validator namespace.
func fieldPath(namespace string) string {
	if idx := strings.Index(namespace, "."); idx >= 0 {
		return namespace[idx+1:]
	}
	return namespace
}
