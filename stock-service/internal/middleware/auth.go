package middleware

import (
	"github.com/alimikegami/pettech-microservices/pkg/response"
	"github.com/alimikegami/pettech-microservices/pkg/utils"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

const ClaimsContextKey = "user"

// IsLoggedIn rejects requests without a valid "Bearer <jwt>" Authorization
// header signed with secret. On success the claims are stored under ClaimsContextKey.
func IsLoggedIn(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			tokenString, err := utils.ParseBearerHeader(req.Header.Get(echo.HeaderAuthorization))
			if err != nil {
				log.Ctx(req.Context()).Warn().Err(err).Str("component", "IsLoggedIn").
					Str("method", req.Method).Str("path", req.URL.Path).Msg("")
				return response.WriteErrorResponse(c, err, nil)
			}

			claims, err := utils.ParseJWTToken(tokenString, secret)
			if err != nil {
				log.Ctx(req.Context()).Warn().Err(err).Str("component", "IsLoggedIn").
					Str("method", req.Method).Str("path", req.URL.Path).Msg("")
				return response.WriteErrorResponse(c, err, nil)
			}

			c.Set(ClaimsContextKey, claims)

			return next(c)
		}
	}
}
