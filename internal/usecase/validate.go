package usecase

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/runoshun/taskpad/internal/domain"
)

// validate checks use case inputs at the UI boundary.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("taskstatus", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseStatus(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("deadline", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseDeadline(fl.Field().String(), nil)
		return err == nil
	})
	return v
}

// validateInput runs the struct validator and maps failures onto domain errors.
func validateInput(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	errs := make([]error, 0, len(verrs))
	for _, fe := range verrs {
		errs = append(errs, fieldError(fe))
	}
	return errors.Join(errs...)
}

func fieldError(fe validator.FieldError) error {
	switch fe.Tag() {
	case "taskstatus":
		return fmt.Errorf("%w: %q", domain.ErrInvalidStatus, fe.Value())
	case "deadline":
		return fmt.Errorf("%w: %q", domain.ErrInvalidDeadline, fe.Value())
	case "required":
		switch fe.Field() {
		case "Name":
			return domain.ErrEmptyName
		case "Title":
			return domain.ErrEmptyTitle
		}
	case "gt":
		if strings.HasSuffix(fe.Field(), "ID") {
			return fmt.Errorf("invalid %s: must be positive", strings.ToLower(fe.Field()))
		}
	}
	return fmt.Errorf("invalid %s: %s", strings.ToLower(fe.Field()), fe.Tag())
}
