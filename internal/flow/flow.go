// Package flow holds the validation decisions behind each screen action.
// Nothing here navigates or raises alerts; screens act on the returned errors.
package flow

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/nfrund/lessonhub/internal/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateLogin succeeds for any non-empty email and password. There is no
// credential check.
func ValidateLogin(form domain.LoginForm) error {
	return classify(validate.Struct(form))
}

// ValidateRegister reports ErrValidation when any field is empty and
// ErrMismatch when the confirmation differs. Missing fields win.
func ValidateRegister(form domain.RegisterForm) error {
	return classify(validate.Struct(form))
}

// ValidateForgotEmail requires a non-empty address for the reset code overlay.
func ValidateForgotEmail(email string) error {
	return classify(validate.Var(email, "required"))
}

// NewResetCode draws a code uniformly from [ResetCodeMin, ResetCodeMax].
// intn returns a value in [0, n); nil uses math/rand/v2.
func NewResetCode(intn func(n int) int) domain.ResetCode {
	if intn == nil {
		intn = rand.IntN
	}
	span := domain.ResetCodeMax - domain.ResetCodeMin + 1
	return domain.ResetCode(strconv.Itoa(domain.ResetCodeMin + intn(span)))
}

// classify maps validator failures onto the domain taxonomy.
func classify(err error) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	var missing []string
	mismatch := false
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			name := fe.Field()
			if name == "" {
				name = "value"
			}
			missing = append(missing, name)
		case "eqfield":
			mismatch = true
		}
	}

	switch {
	case len(missing) > 0:
		return fmt.Errorf("%w: %s", domain.ErrValidation, strings.Join(missing, ", "))
	case mismatch:
		return domain.ErrMismatch
	default:
		return err
	}
}
