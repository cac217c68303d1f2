package routes

import (
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/amateur-sports/league-system/handlers"
	"github.com/amateur-sports/league-system/middleware"
)

// SetupRoutes mounts the API: spectator reads are public, every mutation
// sits behind the admin JWT middleware.
func SetupRoutes(
	router *chi.Mux,
	jwtSecret string,
	authHandler *handlers.AuthHandler,
	playerHandler *handlers.PlayerHandler,
	teamHandler *handlers.TeamHandler,
	tournamentHandler *handlers.TournamentHandler,
	matchHandler *handlers.MatchHandler,
	tableHandler *handlers.TableHandler,
	newsHandler *handlers.NewsHandler,
	storyHandler *handlers.StoryHandler,
	importHandler *handlers.ImportHandler,
	dashboardHandler *handlers.DashboardHandler,
	mediaHandler *handlers.MediaHandler,
	adminHandler *handlers.AdminHandler,
) {
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	authenticate := middleware.Authenticate([]byte(jwtSecret))

	router.Post("/auth/login", authHandler.Login)
	router.Get("/auth/status", authHandler.Status)

	router.Route("/players", func(r chi.Router) {
		r.Get("/", playerHandler.List)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Post("/", playerHandler.Create)
			r.Put("/{playerID}", playerHandler.Update)
			r.Delete("/{playerID}", playerHandler.Delete)
		})
	})

	router.Route("/teams", func(r chi.Router) {
		r.Get("/", teamHandler.List)
		r.Get("/{teamID}", teamHandler.Profile)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Post("/", teamHandler.Create)
			r.Put("/{teamID}", teamHandler.Update)
			r.Delete("/{teamID}", teamHandler.Delete)
		})
	})

	router.Route("/tournaments", func(r chi.Router) {
		r.Get("/", tournamentHandler.List)
		r.Get("/active", tournamentHandler.GetActive)
		r.Get("/{tournamentID}", tournamentHandler.GetByID)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Post("/", tournamentHandler.Create)
			r.Put("/{tournamentID}", tournamentHandler.Update)
			r.Post("/{tournamentID}/activate", tournamentHandler.SetActive)
			r.Delete("/{tournamentID}", tournamentHandler.Delete)
		})
	})

	router.Route("/matches", func(r chi.Router) {
		r.Get("/", matchHandler.List)
		r.Get("/{matchID}/goals", matchHandler.ListGoals)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Post("/", matchHandler.Create)
			r.Post("/generate", matchHandler.GenerateFixtures)
			r.Put("/{matchID}", matchHandler.Edit)
			r.Delete("/{matchID}", matchHandler.Delete)

			r.Post("/{matchID}/start", matchHandler.Start)
			r.Post("/{matchID}/goals", matchHandler.RecordGoal)
			r.Post("/{matchID}/player-of-the-match", matchHandler.SetPlayerOfTheMatch)
			r.Post("/{matchID}/end", matchHandler.End)
		})
	})

	router.Route("/table", func(r chi.Router) {
		r.Get("/", tableHandler.GetTable)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Put("/override", tableHandler.SaveOverride)
			r.Delete("/override", tableHandler.ResetOverride)
		})
	})

	router.Get("/scorers", tableHandler.TopScorers)

	router.Route("/news", func(r chi.Router) {
		r.Get("/", newsHandler.List)
		// Likes are spectator-facing, no identity attached.
		r.Post("/{postID}/like", newsHandler.Like)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Post("/", newsHandler.Create)
			r.Delete("/{postID}", newsHandler.Delete)
		})
	})

	router.Route("/stories", func(r chi.Router) {
		r.Get("/", storyHandler.ListActive)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Post("/", storyHandler.Create)
			r.Delete("/{storyID}", storyHandler.Delete)
		})
	})

	router.Group(func(r chi.Router) {
		r.Use(authenticate)
		r.Post("/auth/logout", authHandler.Logout)
		r.Post("/import/fixtures", importHandler.ImportFixtures)
		r.Post("/import/teams", importHandler.ImportTeams)
		r.Get("/dashboard", dashboardHandler.GetStats)
		r.Post("/media/{folder}", mediaHandler.Upload)
		r.Post("/admin/reset", adminHandler.ResetStore)
	})
}
