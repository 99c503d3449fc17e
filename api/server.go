package api

import (
	"embed"
	"net/http"

	"github.com/brpaz/echozap"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/pallium-care/console/auth"
	"github.com/pallium-care/console/authz"
	"github.com/pallium-care/console/backend"
	"github.com/pallium-care/console/config"
	errs "github.com/pallium-care/console/errors"
)

//go:embed static
var staticFS embed.FS

const csrfFormField = "_csrf"

func NewServer(handler *Handler, healthCheck *HealthCheck, authenticator auth.Authenticator, authorizer authz.RequestAuthorizer, renderer *Renderer, cfg *config.Config, logger *zap.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer
	e.HTTPErrorHandler = handler.errorPages(errs.NewHTTPErrorHandler(logger.Sugar()))

	// Skip sessions and access logs for the readiness probe
	probeSkipper := RouteSkipper([]string{"/ready"})
	publicSkipper := RouteSkipper(publicRoutes)

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
		RequestIDHandler: func(c echo.Context, requestId string) {
			ctx := backend.WithRequestId(c.Request().Context(), requestId)
			c.SetRequest(c.Request().WithContext(ctx))
		},
	}))
	e.Use(skip(probeSkipper, echozap.ZapLogger(logger)))
	e.Use(middleware.Recover())
	e.Use(middleware.CSRFWithConfig(middleware.CSRFConfig{
		Skipper:        probeSkipper,
		TokenLookup:    "form:" + csrfFormField,
		CookiePath:     "/",
		CookieHTTPOnly: true,
		CookieSecure:   cfg.SecureCookies,
		CookieSameSite: http.SameSiteLaxMode,
	}))
	e.Use(auth.NewSessionMiddleware(authenticator, auth.SessionMiddlewareOpts{
		Skipper: publicSkipper,
	}))
	e.Use(authz.NewAuthorizationMiddleware(authorizer, probeSkipper))

	e.GET("/ready", healthCheck.Ready)
	e.StaticFS("/static", echo.MustSubFS(staticFS, "static"))
	RegisterHandlers(e, handler)

	return e
}

func skip(skipper middleware.Skipper, m echo.MiddlewareFunc) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		wrapped := m(next)
		return func(c echo.Context) error {
			if skipper(c) {
				return next(c)
			}
			return wrapped(c)
		}
	}
}

// RegisterHandlers adds the console pages to the router.
func RegisterHandlers(e *echo.Echo, h *Handler) {
	e.GET(auth.AdminLoginPath, h.LoginPage(auth.RoleAdmin))
	e.POST(auth.AdminLoginPath, h.Login(auth.RoleAdmin))
	e.GET(auth.VcmLoginPath, h.LoginPage(auth.RoleVcm))
	e.POST(auth.VcmLoginPath, h.Login(auth.RoleVcm))
	e.GET("/logout", h.Logout)
	e.POST("/logout", h.Logout)

	e.GET("/", h.Dashboard)

	e.GET("/patients/export.xlsx", h.ExportPatients)
	h.patientResource().routes(e)
	h.inNeedResource().routes(e)

	h.volunteerResource().routes(e)
	h.caregiverResource().routes(e)
	h.medicalProfessionalResource().routes(e)
	e.GET("/register", h.RegistrationPage)
	e.POST("/register", h.Register)

	e.GET("/equipment/export.xlsx", h.ExportEquipment)
	h.equipmentResource().routes(e)
	e.POST("/equipment/:id/status", h.SetEquipmentStatus)

	h.scheduleResource().routes(e)

	h.taskResource().routes(e)
	e.POST("/tasks/:id/status", h.SetTaskStatus)

	h.assignmentResource().routes(e)

	e.GET("/emergency-fund/export.xlsx", h.ExportEmergencyFund)
	h.emergencyFundResource().routes(e)
	e.GET("/donate", h.DonationPage)
	e.POST("/donate", h.Donate)
}
