// Package middleware contains the HTTP middleware for the application.
package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "blooddonor/internal/delivery/context"
	"blooddonor/internal/delivery/http/response"
	"blooddonor/internal/domain/entity"
	domainerrors "blooddonor/internal/domain/errors"
	"blooddonor/internal/domain/repository"
	"blooddonor/internal/domain/service"
	"blooddonor/internal/errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthMiddleware validates session tokens and resolves the authenticated
// subject. Each protected route declares the single role it accepts; the
// token's role claim must match and the subject must still exist in that
// role's identity table. Donor, hospital and admin ids live in separate
// tables, so a token is never resolved against another role's table even
// when the numeric ids collide.
type AuthMiddleware struct {
	tokenSvc     service.TokenService
	donorRepo    repository.DonorRepository
	hospitalRepo repository.HospitalRepository
	adminRepo    repository.AdminRepository
	logger       *slog.Logger
}

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenSvc     service.TokenService
	DonorRepo    repository.DonorRepository
	HospitalRepo repository.HospitalRepository
	AdminRepo    repository.AdminRepository
	Logger       *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		tokenSvc:     params.TokenSvc,
		donorRepo:    params.DonorRepo,
		hospitalRepo: params.HospitalRepo,
		adminRepo:    params.AdminRepo,
		logger:       params.Logger,
	}
}

// Authenticate returns middleware that admits only subjects of the given role.
// Every authentication failure collapses into the same 401 response; a store
// failure during subject resolution is not an authentication verdict and
// surfaces as a generic 500 through the error handler instead.
func (m *AuthMiddleware) Authenticate(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenString, ok := bearerToken(c)
			if !ok {
				return m.reject(c, "missing or malformed Authorization header")
			}

			claims, err := m.tokenSvc.Verify(tokenString)
			if err != nil {
				return m.reject(c, "token verification failed")
			}

			if claims.Role != role {
				return m.reject(c, "token role does not match route")
			}

			if err := m.resolveSubject(c, claims.SubjectID, role); err != nil {
				if isSubjectMissing(err) {
					return m.reject(c, "token subject no longer exists")
				}

				return errors.Wrap(err, "resolve token subject")
			}

			deliverycontext.SetSubject(c, claims.SubjectID, role)

			return next(c)
		}
	}
}

// resolveSubject checks the subject still exists in the role's own identity table.
func (m *AuthMiddleware) resolveSubject(c echo.Context, subjectID int64, role entity.Role) error {
	ctx := c.Request().Context()

	switch role {
	case entity.RoleDonor:
		_, err := m.donorRepo.FindByID(ctx, subjectID)

		return err
	case entity.RoleHospital:
		_, err := m.hospitalRepo.FindByID(ctx, subjectID)

		return err
	case entity.RoleAdmin:
		_, err := m.adminRepo.FindByID(ctx, subjectID)

		return err
	default:
		return domainerrors.ErrInvalidToken
	}
}

// isSubjectMissing reports whether err is one of the per-role not-found
// sentinels, the only resolution outcomes that mean the token's subject is
// gone rather than the store being unavailable.
func isSubjectMissing(err error) bool {
	return errors.Is(err, repository.ErrDonorNotFound) ||
		errors.Is(err, repository.ErrHospitalNotFound) ||
		errors.Is(err, repository.ErrAdminNotFound) ||
		errors.Is(err, domainerrors.ErrInvalidToken)
}

func (m *AuthMiddleware) reject(c echo.Context, reason string) error {
	m.logger.Debug("Rejected request token",
		slog.String("path", c.Request().URL.Path),
		slog.String("reason", reason))

	return response.Unauthorized(c,
		domainerrors.ErrInvalidToken.ErrorCode(),
		domainerrors.ErrInvalidToken.Message())
}

// bearerToken extracts the token from an "Authorization: Bearer <token>" header.
func bearerToken(c echo.Context) (string, bool) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return "", false
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader || tokenString == "" {
		return "", false
	}

	return tokenString, true
}
