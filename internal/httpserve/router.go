package httpserve

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/omarmohamed58/aws-secure-webapp-terraform-project1/internal/common"
	"github.com/omarmohamed58/aws-secure-webapp-terraform-project1/internal/httpserve/handlers"
	"github.com/omarmohamed58/aws-secure-webapp-terraform-project1/internal/httpserve/middleware"
	"github.com/omarmohamed58/aws-secure-webapp-terraform-project1/pkg/logger"
)

// NewRouter builds the echo instance with the middleware chain and routes.
func NewRouter(cfg *common.Config, h *handlers.StatusHandler, log *logger.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.IPExtractor = clientIPExtractor(cfg)

	e.Use(echomw.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.HTTPAccessLogger(log))
	e.Use(middleware.SecureHeaders())
	e.Use(middleware.RateLimit(cfg.Http.RateLimit))

	return RegisterRoutes(e, h)
}

// clientIPExtractor uses the socket peer address unless trusted proxies are
// configured, in which case X-Forwarded-For is honoured only from those ranges.
func clientIPExtractor(cfg *common.Config) echo.IPExtractor {
	ranges, err := cfg.TrustedProxyRanges()
	if err != nil || len(ranges) == 0 {
		return echo.ExtractIPDirect()
	}
	opts := []echo.TrustOption{
		echo.TrustLoopback(false),
		echo.TrustLinkLocal(false),
		echo.TrustPrivateNet(false),
	}
	for _, r := range ranges {
		opts = append(opts, echo.TrustIPRange(r))
	}
	return echo.ExtractIPFromXFFHeader(opts...)
}

// RegisterRoutes binds the status page to GET /. Other paths and methods
// fall through to echo's default 404 and 405 handling.
func RegisterRoutes(e *echo.Echo, h *handlers.StatusHandler) *echo.Echo {
	e.GET("/", h.Status)
	return e
}
