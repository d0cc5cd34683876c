package routes

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ffliq/ffliq-backend/handlers"
	"github.com/ffliq/ffliq-backend/middleware"
)

type Handlers struct {
	Health    *handlers.HealthHandler
	Users     *handlers.UserHandler
	Players   *handlers.PlayerHandler
	Leagues   *handlers.LeagueHandler
	Teams     *handlers.TeamHandler
	Schedules *handlers.ScheduleHandler
	Media     *handlers.MediaHandler
	WebSocket *handlers.WebSocketHandler
}

type Options struct {
	APIPrefix   string
	CORSOrigins []string
	Tokens      middleware.TokenParser
	Logger      *slog.Logger
}

func SetupRoutes(router chi.Router, h Handlers, opts Options) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(middleware.RequestLogger(opts.Logger))
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	authenticate := middleware.Authenticate(opts.Tokens)

	router.Get("/health", h.Health.Health)
	router.Get("/db-test", h.Health.DBTest)
	router.Get(handlers.DocsPath, handlers.OpenAPI)
	router.Get("/swagger/*", handlers.SwaggerUI())

	router.Route("/ws", func(r chi.Router) {
		r.Get("/news", h.WebSocket.ServeNews)
		r.Get("/players/{playerID}/news", h.WebSocket.ServePlayerNews)
	})

	api := func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Post("/register", h.Users.Register)
			r.Post("/login", h.Users.Login)

			r.Group(func(r chi.Router) {
				r.Use(authenticate)
				r.Get("/me", h.Users.Me)
				r.Get("/me/leagues", h.Users.MyLeagues)
				r.Get("/me/teams", h.Users.MyTeams)
			})
		})

		r.Get("/news", h.Players.ListRecentNews)

		r.Route("/players", func(r chi.Router) {
			r.Get("/", h.Players.ListPlayers)
			r.Get("/{playerID}", h.Players.GetPlayer)
			r.Get("/{playerID}/stats", h.Players.ListStats)
			r.Get("/{playerID}/stats/{week}", h.Players.GetWeekStats)
			r.Get("/{playerID}/projections", h.Players.ListProjections)
			r.Get("/{playerID}/news", h.Players.ListNews)

			r.Group(func(r chi.Router) {
				r.Use(authenticate)
				r.Post("/", h.Players.CreatePlayer)
				r.Post("/stats", h.Players.UpsertStats)
				r.Post("/projections", h.Players.UpsertProjection)
				r.Post("/news", h.Players.CreateNews)
				r.Post("/{playerID}/headshot", h.Media.UploadPlayerHeadshot)
			})
		})

		r.Route("/leagues", func(r chi.Router) {
			r.Get("/", h.Leagues.ListLeagues)
			r.Get("/{leagueID}", h.Leagues.GetLeague)
			r.Get("/{leagueID}/teams", h.Leagues.ListTeams)
			r.Get("/{leagueID}/points", h.Leagues.ListPoints)

			r.Group(func(r chi.Router) {
				r.Use(authenticate)
				r.Post("/", h.Leagues.CreateLeague)
				r.Patch("/{leagueID}", h.Leagues.UpdateLeague)
			})
		})

		r.Route("/teams", func(r chi.Router) {
			r.Get("/{teamID}", h.Teams.GetTeam)
			r.Get("/{teamID}/roster", h.Teams.GetRoster)

			r.Group(func(r chi.Router) {
				r.Use(authenticate)
				r.Post("/", h.Teams.CreateTeam)
				r.Post("/{teamID}/logo", h.Media.UploadTeamLogo)
			})
		})

		r.With(authenticate).Post("/rosters", h.Teams.AddRosterEntry)

		r.Route("/schedules", func(r chi.Router) {
			r.Get("/", h.Schedules.ListGames)
			r.With(authenticate).Post("/", h.Schedules.CreateGame)
		})
	}

	if opts.APIPrefix == "" {
		router.Group(api)
	} else {
		router.Route(opts.APIPrefix, api)
	}

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"the requested resource could not be found"}` + "\n"))
	})
}
