package httpapi

import (
	"net/http"
	"strings"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
	"github.com/labstack/echo/v4"
)

// userContextKey is the echo context key under which the authenticated user
// is stored by the auth middleware.
const userContextKey = "authenticated_user"

// accessTokenMiddleware extracts the bearer token from the Authorization
// header, verifies it, and stores the resolved user in the request context.
// Requests without a valid token never reach the handler.
func (s *Server) accessTokenMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(common.AuthHeaderName)
		if header == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing token")
		}

		scheme, token, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, common.AuthScheme) || token == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
		}

		user, err := s.users.VerifyToken(c.Request().Context(), token)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
		}

		c.Set(userContextKey, user)
		return next(c)
	}
}

// currentUser returns the user stored by accessTokenMiddleware.
func currentUser(c echo.Context) (*models.User, bool) {
	user, ok := c.Get(userContextKey).(*models.User)
	return user, ok
}
