// Package api serves an in-memory imitation of the ClickUp v2 REST API.
package api

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/hashicorp/go-hclog"

	"github.com/modelingevolution/clickup/internal/api/handler"
	"github.com/modelingevolution/clickup/internal/api/middleware"
	"github.com/modelingevolution/clickup/internal/store"
)

// NewRouter creates and configures the HTTP router. Requests under /api/v2
// must carry token unless it is empty.
func NewRouter(st *store.Store, logger hclog.Logger, token string) *chi.Mux {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	r := chi.NewRouter()

	// Global middleware chain
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logging(logger.Named("http")))
	r.Use(chimiddleware.RealIP)

	systemHandler := handler.NewSystemHandler()
	hierarchyHandler := handler.NewHierarchyHandler(st)
	taskHandler := handler.NewTaskHandler(st, logger.Named("tasks"))

	r.NotFound(systemHandler.NotFound)
	r.MethodNotAllowed(systemHandler.MethodNotAllowed)
	r.Get("/health", systemHandler.Health)

	r.Route("/api/v2", func(r chi.Router) {
		r.Use(middleware.Auth(token))

		r.Get("/team", hierarchyHandler.ListTeams)
		r.Get("/team/{team_id}/space", hierarchyHandler.ListSpaces)
		r.Post("/team/{team_id}/space", hierarchyHandler.CreateSpace)

		r.Route("/space/{space_id}", func(r chi.Router) {
			r.Get("/", hierarchyHandler.GetSpace)
			r.Put("/", hierarchyHandler.UpdateSpace)
			r.Delete("/", hierarchyHandler.DeleteSpace)
			r.Get("/folder", hierarchyHandler.ListFolders)
			r.Post("/folder", hierarchyHandler.CreateFolder)
			r.Get("/list", hierarchyHandler.ListFolderlessLists)
			r.Post("/list", hierarchyHandler.CreateListInSpace)
		})

		r.Route("/folder/{folder_id}", func(r chi.Router) {
			r.Get("/", hierarchyHandler.GetFolder)
			r.Put("/", hierarchyHandler.UpdateFolder)
			r.Delete("/", hierarchyHandler.DeleteFolder)
			r.Get("/list", hierarchyHandler.ListLists)
			r.Post("/list", hierarchyHandler.CreateListInFolder)
		})

		r.Route("/list/{list_id}", func(r chi.Router) {
			r.Get("/", hierarchyHandler.GetList)
			r.Put("/", hierarchyHandler.UpdateList)
			r.Delete("/", hierarchyHandler.DeleteList)
			r.Get("/task", taskHandler.ListTasks)
			r.Post("/task", taskHandler.CreateTask)
			r.Get("/field", taskHandler.ListFields)
		})

		r.Route("/task/{task_id}", func(r chi.Router) {
			r.Get("/", taskHandler.GetTask)
			r.Put("/", taskHandler.UpdateTask)
			r.Delete("/", taskHandler.DeleteTask)
			r.Post("/field/{field_id}", taskHandler.SetField)
			r.Delete("/field/{field_id}", taskHandler.RemoveField)
		})
	})

	return r
}
