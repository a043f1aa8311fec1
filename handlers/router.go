package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"assetledger/config"
	"assetledger/middleware"
	"assetledger/models"
	"assetledger/report"
)

// NewRouter wires every HTTP route. The JWT secret must already be set.
func NewRouter(cfg *config.Config, store Store, mode report.Mode, log *zap.Logger) http.Handler {
	authHandler := NewAuthHandler(cfg, store, log)
	assetHandler := NewAssetHandler(store, log)
	historyHandler := NewHistoryHandler(store, log)
	requestHandler := NewRequestHandler(store, log)
	reportHandler := NewReportHandler(store, mode, log)
	userHandler := NewUserHandler(store, log)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.RequestLogger(log))
	r.Use(chimiddleware.Recoverer)

	r.Post("/login", authHandler.Login)

	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthMiddleware(store))
		r.Use(middleware.RequirePasswordChange("/api/password", "/logout"))
		adminOnly := middleware.RequireRole(models.RoleAdmin)
		manageAssets := middleware.RequirePermission((*models.User).CanManageAssets)
		viewReports := middleware.RequirePermission((*models.User).CanViewReports)

		r.Post("/logout", authHandler.Logout)
		r.Post("/api/password", authHandler.ChangePassword)

		r.Route("/api/users", func(r chi.Router) {
			r.Get("/{id}/history", historyHandler.List)

			r.Group(func(r chi.Router) {
				r.Use(adminOnly)
				r.Get("/", userHandler.List)
				r.Post("/", userHandler.Create)
				r.Put("/{id}", userHandler.Update)
				r.Delete("/{id}", userHandler.Delete)
				r.Post("/{id}/history", historyHandler.Create)
			})
		})

		r.Route("/api/assets", func(r chi.Router) {
			r.Get("/", assetHandler.List)
			r.Get("/{id}", assetHandler.Get)

			r.Group(func(r chi.Router) {
				r.Use(manageAssets)
				r.Post("/", assetHandler.Create)
				r.Put("/{id}", assetHandler.Update)
				r.Delete("/{id}", assetHandler.Delete)
				r.Post("/{id}/assign", assetHandler.Assign)
				r.Post("/{id}/release", assetHandler.Release)
				r.Post("/{id}/repair", assetHandler.Repair)
				r.Post("/{id}/maintenance", assetHandler.Maintenance)
				r.Post("/{id}/dispose", assetHandler.Dispose)
			})
		})

		r.Get("/api/requests", requestHandler.List)
		r.Post("/api/requests", requestHandler.Create)
		r.With(adminOnly).Post("/api/requests/{id}/status", requestHandler.UpdateStatus)

		r.Get("/api/dashboard", reportHandler.Dashboard)

		r.Route("/api/reports", func(r chi.Router) {
			r.Use(viewReports)
			r.Get("/monthly", reportHandler.Monthly)
			r.Get("/monthly/csv", reportHandler.MonthlyCSV)
			r.Get("/monthly/xlsx", reportHandler.MonthlyXLSX)
		})
	})

	return r
}
