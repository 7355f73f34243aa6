package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alimikegami/pettech-microservices/pkg/errs"
	"github.com/alimikegami/pettech-microservices/pkg/validator"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	return e.NewContext(req, rec), rec
}

func TestWriteErrorResponse_MasksInternalErrors(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, WriteErrorResponse(c, errors.New("pq: password authentication failed"), nil))

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, errs.ErrInternalServer.Error(), resp.Message)
}

func TestWriteErrorResponse_ClientError(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, WriteErrorResponse(c, errs.ErrNotFound, nil))

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, errs.ErrNotFound.Error(), resp.Message)
}

func TestWriteValidationErrorResponse(t *testing.T) {
	type payload struct {
		Price *float64 `json:"price" validate:"required,gte=0"`
		Name  string   `json:"name" validate:"required"`
	}

	price := -1.0
	err := validator.New().Validate(&payload{Price: &price})
	require.Error(t, err)

	c, rec := newContext()
	require.NoError(t, WriteValidationErrorResponse(c, err))

	var resp struct {
		Message string            `json:"message"`
		Errors  []ValidationError `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, errs.ErrValidation.Error(), resp.Message)
	assert.ElementsMatch(t, []ValidationError{
		{Field: "price", Tag: "gte"},
		{Field: "name", Tag: "required"},
	}, resp.Errors)
}

func TestWriteSuccessResponse_EmptyBody(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, WriteSuccessResponse(c, nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}
