package routers

import (
	"net/http"
	"time"

	"vitacare-service/internal/app/config"
	"vitacare-service/internal/app/delivery/http/controllers"
	"vitacare-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"go.uber.org/zap"
)

type Controllers struct {
	Slot   *controllers.SlotController
	Visit  *controllers.VisitController
	Review *controllers.ReviewController
}

func SetupRoutes(internalConfig *config.InternalConfig, log *zap.Logger, c Controllers) http.Handler {
	router := chi.NewRouter()

	router.Use(middlewares.RequestID)
	router.Use(middlewares.Logging(log))
	router.Use(middlewares.Recovery(log))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))
	router.Use(httprate.LimitByIP(internalConfig.App.MaxRequests, 1*time.Minute))

	session := middlewares.SessionAuth(log, internalConfig.JWT)

	prefix := internalConfig.App.EndpointPrefix + "/" + internalConfig.App.Version
	router.Route(prefix, func(r chi.Router) {
		r.Route("/slots", func(r chi.Router) {
			// browsing a provider's day is open; publishing requires a session
			r.Get("/", c.Slot.GetSlots)
			r.Group(func(r chi.Router) {
				r.Use(session)
				r.Post("/", c.Slot.CreateSlot)
				r.Post("/recurring", c.Slot.CreateRecurringSlots)
				r.Put("/retime", c.Slot.RetimeSlotRange)
			})
		})

		r.Route("/visits", func(r chi.Router) {
			r.Use(session)
			r.Post("/", c.Visit.BookVisit)
			r.Post("/{visitID}/cancel", c.Visit.CancelVisit)
			r.Post("/{visitID}/reschedule", c.Visit.RescheduleVisit)
			r.Post("/{visitID}/complete", c.Visit.CompleteVisit)
		})

		r.Route("/reviews", func(r chi.Router) {
			r.Use(session)
			r.Post("/", c.Review.SubmitReview)
			r.Put("/{reviewID}", c.Review.UpdateReview)
			r.Delete("/{reviewID}", c.Review.DeleteReview)
		})
	})

	return router
}
