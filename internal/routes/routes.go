package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/aijalabs/aija-backend/internal/handlers"
)

func SetupRoutes(r *chi.Mux) {
	// Auth routes
	r.Post("/api/auth/signup", handlers.Signup)
	r.Post("/api/auth/signin", handlers.Signin)
	r.Post("/api/auth/refresh", handlers.Refresh)
	r.Post("/api/auth/signout", handlers.Signout)
	r.Get("/api/auth/me", handlers.Me)
	r.Post("/api/auth/check-username", handlers.CheckUsername)

	// Journal routes
	r.Post("/api/journals", handlers.CreateJournalEntry)
	r.Get("/api/journals", handlers.ListJournalEntries)
	r.Get("/api/journals/by-date", handlers.GetJournalEntryByDate)
	r.Get("/api/journals/calendar", handlers.GetCalendar)
	r.Get("/api/journals/moodchart", handlers.GetMoodChart)
	r.Get("/api/journals/{id}", handlers.GetJournalEntry)
	r.Put("/api/journals/{id}", handlers.UpdateJournalEntry)
	r.Delete("/api/journals/{id}", handlers.DeleteJournalEntry)

	// Mood taxonomy
	r.Get("/api/moods", handlers.GetMoods)

	// Summary routes
	r.Post("/api/summaries/entry", handlers.SummarizeEntry)
	r.Post("/api/summaries", handlers.SaveSummary)
	r.Get("/api/summaries", handlers.ListSummaries)

	// Chat routes
	r.Post("/api/chat", handlers.Chat)
	r.Get("/ws/chat", handlers.ChatWebSocket)

	// Quiz routes
	r.Post("/api/quiz", handlers.CreateQuiz)
	r.Post("/api/quiz/score", handlers.ScoreQuiz)

	// Profile routes
	r.Get("/api/profile", handlers.GetProfile)
	r.Post("/api/profile/avatar", handlers.UploadAvatar)
}
