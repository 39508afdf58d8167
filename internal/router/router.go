// Package router wires the HTTP surface: the authenticated back-office
// group, the rate-limited public ordering flow and the health check.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/tavolo/backoffice/internal/handler"
	"github.com/tavolo/backoffice/internal/middleware"
)

// BackOfficeHandlers bundles everything the authenticated /v1 group serves.
type BackOfficeHandlers struct {
	Reservations *handler.ReservationHandler
	Tables       *handler.TableHandler
	Menu         *handler.MenuHandler
	Orders       *handler.OrderHandler
	Reports      *handler.ReportHandler
}

// RegisterRoutes registers routes that need neither authentication nor rate
// limiting.  Currently that is only the health check, which load balancers
// probe.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterBackOffice registers the staff-facing API under /v1.  Every route
// requires a Bearer token from the identity provider with the MANAGER or
// STAFF role.  cacheMW is the Redis response cache and is applied to the
// read endpoints only; extra may be nil.
func RegisterBackOffice(e *echo.Echo, h BackOfficeHandlers, jwtSecret string, cacheMW echo.MiddlewareFunc) {
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("MANAGER", "STAFF"),
	)

	reads := []echo.MiddlewareFunc{}
	if cacheMW != nil {
		reads = append(reads, cacheMW)
	}

	// Reservation schedule and writes.  The partitioned list and floor
	// plan are the hot paths, hence the cache on their GETs.
	g.GET("/reservations", h.Reservations.List, reads...)
	g.POST("/reservations", h.Reservations.Create)
	g.PUT("/reservations/:id", h.Reservations.Update)
	g.DELETE("/reservations/:id", h.Reservations.Delete)
	g.GET("/reservations/:id/form", h.Reservations.FormValues)
	g.GET("/tables/:id/reservation-form", h.Reservations.NewFormValues)

	g.GET("/tables", h.Tables.Dashboard, reads...)
	g.GET("/floor-plan", h.Tables.FloorPlan, reads...)

	g.GET("/menu", h.Menu.List, reads...)
	g.POST("/menu", h.Menu.Create)
	g.PUT("/menu/:id", h.Menu.Update)
	g.DELETE("/menu/:id", h.Menu.Delete)

	// Orders are served uncached: status moves through the kitchen faster
	// than the cache TTL and the event consumer only purges on reservation
	// writes, so a cached order view would show stale statuses.
	g.GET("/orders", h.Orders.List)
	g.GET("/orders/:id", h.Orders.Get)
	g.PATCH("/orders/:id/status", h.Orders.UpdateStatus)

	g.GET("/reports/summary", h.Reports.Summary, reads...)
}

// RegisterPublic registers the unauthenticated customer ordering flow under
// /public.  rateMW is the Redis token bucket; it may be nil when rate
// limiting is disabled.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler, rateMW echo.MiddlewareFunc) {
	mws := []echo.MiddlewareFunc{}
	if rateMW != nil {
		mws = append(mws, rateMW)
	}
	g := e.Group("/public", mws...)
	g.GET("/menu", p.Menu)
	g.POST("/orders", p.CreateOrder)
	g.GET("/orders/:id", p.OrderStatus)
}
