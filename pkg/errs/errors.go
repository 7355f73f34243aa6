package errs

import (
	"errors"
	"net/http"
)

const (
	ErrStatusInternalServer = http.StatusInternalServerError
	ErrStatusClient         = http.StatusBadRequest
	ErrStatusUnauthorized   = http.StatusUnauthorized
	ErrStatusNotFound       = http.StatusNotFound
	ErrStatusConflict       = http.StatusConflict
	ErrStatusBadGateway     = http.StatusBadGateway
)

var (
	ErrInternalServer     = errors.New("Internal server error")
	ErrClient             = errors.New("Bad request")
	ErrValidation         = errors.New("Validation failed")
	ErrNotLoggedIn        = errors.New("Unauthorized access")
	ErrInvalidToken       = errors.New("Invalid token")
	ErrExpiredToken       = errors.New("Token has expired")
	ErrInvalidCredentials = errors.New("Username or password is incorrect")
	ErrNotFound           = errors.New("Resource not found")
	ErrUserAlreadyExists  = errors.New("User already exists")
	ErrDuplicateName      = errors.New("Duplicate name found")
	ErrStockProvisioning  = errors.New("Failed to provision product stock")
)

var errorMap = map[error]int{
	ErrInternalServer:     ErrStatusInternalServer,
	ErrClient:             ErrStatusClient,
	ErrValidation:         ErrStatusClient,
	ErrNotLoggedIn:        ErrStatusUnauthorized,
	ErrInvalidToken:       ErrStatusUnauthorized,
	ErrExpiredToken:       ErrStatusUnauthorized,
	ErrInvalidCredentials: ErrStatusUnauthorized,
	ErrNotFound:           ErrStatusNotFound,
	ErrUserAlreadyExists:  ErrStatusConflict,
	ErrDuplicateName:      ErrStatusConflict,
	ErrStockProvisioning:  ErrStatusBadGateway,
}

// GetErrorStatusCode maps err to an HTTP status. Wrapped sentinels are
// matched too; anything unknown is an internal error.
func GetErrorStatusCode(err error) int {
	if errStatusCode, ok := errorMap[err]; ok {
		return errStatusCode
	}

	for sentinel, errStatusCode := range errorMap {
		if errors.Is(err, sentinel) {
			return errStatusCode
		}
	}

	return errorMap[ErrInternalServer]
}
