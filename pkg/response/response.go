package response

import (
	"errors"
	"net/http"

	"github.com/alimikegami/pettech-microservices/pkg/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type ValidationError struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
}

type ErrorResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Errors  interface{} `json:"errors"`
}

// WriteSuccessResponse writes data as the 200 body, or an empty body when data is nil.
func WriteSuccessResponse(c echo.Context, data interface{}) error {
	if data == nil {
		return c.NoContent(http.StatusOK)
	}

	return c.JSON(http.StatusOK, data)
}

func WriteCreatedResponse(c echo.Context, data interface{}) error {
	if data == nil {
		return c.NoContent(http.StatusCreated)
	}

	return c.JSON(http.StatusCreated, data)
}

func WriteErrorResponse(c echo.Context, err error, errors interface{}) error {
	statusCode := errs.GetErrorStatusCode(err)
	resp := ErrorResponse{}
	resp.Status = "error"
	resp.Message = err.Error()
	resp.Errors = errors

	// Store and network failures stay opaque to the caller.
	if statusCode == http.StatusInternalServerError {
		resp.Message = errs.ErrInternalServer.Error()
	}

	return c.JSON(statusCode, resp)
}

// WriteValidationErrorResponse turns validator field errors into a 400 listing each field and failed tag.
func WriteValidationErrorResponse(c echo.Context, err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return WriteErrorResponse(c, errs.ErrClient, nil)
	}

	validationErrs := make([]ValidationError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		validationErrs = append(validationErrs, ValidationError{
			Field: fe.Field(),
			Tag:   fe.Tag(),
		})
	}

	return WriteErrorResponse(c, errs.ErrValidation, validationErrs)
}
