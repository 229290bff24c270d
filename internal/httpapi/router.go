package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"detailbook/internal/api"
	"detailbook/internal/auth"
	"detailbook/internal/booking"
	"detailbook/internal/catalog"
	"detailbook/pkg/config"
)

type Dependencies struct {
	Cfg config.Config
	DB  *pgxpool.Pool
}

func NewRouter(deps Dependencies) http.Handler {
	r := chi.NewRouter()

	bookingsRepo := booking.NewRepository(deps.DB)
	bookingHandlers := booking.Handlers{
		DB:       deps.DB,
		Bookings: bookingsRepo,
	}
	authHandlers := auth.Handlers{Cfg: deps.Cfg}

	r.Route("/api", func(r chi.Router) {
		r.Use(api.CORSMiddleware(api.CORSOptions{
			AllowedOrigins: deps.Cfg.AllowedOrigins,
			AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type", "Authorization"},
			MaxAgeSeconds:  600,
		}))

		r.Get("/health", bookingHandlers.Health)
		r.Get("/services", catalog.List)

		r.Post("/book", bookingHandlers.Submit)
		r.Get("/booking/{id}", bookingHandlers.Get)

		r.Post("/admin/login", authHandlers.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AdminOnly(deps.Cfg))

			r.Get("/admin/bookings", bookingHandlers.List)
			r.Post("/admin/bookings/{id}/accept", bookingHandlers.Accept)
			r.Post("/admin/bookings/{id}/reject", bookingHandlers.Reject)
			r.Delete("/admin/bookings/{id}", bookingHandlers.Delete)
		})
	})

	return r
}
