package server

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/techsummit/backend/internal/catalog"
	"github.com/techsummit/backend/internal/middleware"
	"github.com/techsummit/backend/internal/sessions"
	"github.com/techsummit/backend/internal/speakerforms"
	"github.com/techsummit/backend/internal/speakers"
	"github.com/techsummit/backend/internal/tickets"
	"github.com/techsummit/backend/pkg/response"
)

// Deps are the services the HTTP API is built on.
type Deps struct {
	Catalog     *catalog.Store
	Booker      tickets.Booker
	Forms       speakerforms.Submitter
	CORSOrigins string
	Logger      *zap.Logger
}

// NewRouter wires middleware and all routes.
func NewRouter(d Deps) *gin.Engine {
	logger := d.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.CORS(d.CORSOrigins))
	router.Use(middleware.Logger(logger))

	sessionHandler := sessions.NewHandler(d.Catalog, logger)
	speakerHandler := speakers.NewHandler(d.Catalog)
	ticketHandler := tickets.NewHandler(d.Catalog, d.Booker, logger)
	formHandler := speakerforms.NewHandler(d.Forms, logger)

	router.GET("/health", func(c *gin.Context) {
		snap := d.Catalog.Snapshot()
		response.OK(c, gin.H{
			"status":            "ok",
			"catalog_loaded_at": snap.LoadedAt,
			"sessions":          len(snap.Sessions),
		})
	})

	// Catalog
	router.GET("/sessions", sessionHandler.List)
	router.GET("/sessions/facets", sessionHandler.Facets)
	router.GET("/sessions/:id", sessionHandler.GetByID)
	router.GET("/tracks/:track/sessions", sessionHandler.ByTrack)
	router.GET("/schedule", sessionHandler.Schedule)
	router.GET("/speakers", speakerHandler.List)
	router.GET("/speakers/:id", speakerHandler.GetByID)
	router.GET("/speakers/:id/sessions", speakerHandler.Sessions)
	router.GET("/tickets", ticketHandler.List)
	router.POST("/tickets/quote", ticketHandler.Quote)

	// Submissions
	router.POST("/bookings", ticketHandler.Book)
	router.POST("/speaker-applications", formHandler.Apply)
	router.POST("/speaker-nominations", formHandler.Nominate)

	router.NoRoute(func(c *gin.Context) { response.NotFound(c, "route not found") })
	return router
}
