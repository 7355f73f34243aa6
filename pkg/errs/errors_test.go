package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetErrorStatusCode(t *testing.T) {
	type TestCase struct {
		Name           string
		Err            error
		ExpectedStatus int
	}

	testCases := []TestCase{
		{Name: "Not found", Err: ErrNotFound, ExpectedStatus: http.StatusNotFound},
		{Name: "Wrapped not found", Err: fmt.Errorf("stock %q: %w", "abc", ErrNotFound), ExpectedStatus: http.StatusNotFound},
		{Name: "Validation", Err: ErrValidation, ExpectedStatus: http.StatusBadRequest},
		{Name: "Expired token", Err: ErrExpiredToken, ExpectedStatus: http.StatusUnauthorized},
		{Name: "Duplicate", Err: ErrUserAlreadyExists, ExpectedStatus: http.StatusConflict},
		{Name: "Provisioning", Err: ErrStockProvisioning, ExpectedStatus: http.StatusBadGateway},
		{Name: "Unknown", Err: errors.New("connection refused"), ExpectedStatus: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			assert.Equal(t, tc.ExpectedStatus, GetErrorStatusCode(tc.Err))
		})
	}
}
