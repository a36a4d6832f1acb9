// Package validator wires go-playground/validator into echo's binding flow.
package validator

import (
	"net/http"

	validatorLib "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// echoValidator adapts validator.Validate to echo.Validator.
type echoValidator struct {
	validate *validatorLib.Validate
}

// New creates the request validator used by the echo server.
func New() echo.Validator {
	return &echoValidator{validate: validatorLib.New()}
}

// Validate checks the struct tags on a bound request payload.
func (v *echoValidator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return nil
}
