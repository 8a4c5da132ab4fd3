package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"taskmanager/config"
	"taskmanager/middleware"
	"taskmanager/store"
	"taskmanager/web"
)

// NewRouter wires all routes. Task routes sit behind the bearer-token gate;
// signup, login, the welcome page and the embedded client are open.
func NewRouter(cfg *config.Config, users store.UserStore, tasks store.TaskStore, log *slog.Logger) *mux.Router {
	auth := NewAuthHandler(users, cfg, log)
	task := NewTaskHandler(tasks, log)

	r := mux.NewRouter()
	r.Use(middleware.RequestLogger(log))

	r.HandleFunc("/", Home).Methods(http.MethodGet)
	r.HandleFunc("/signup", auth.Signup).Methods(http.MethodPost)
	r.HandleFunc("/login", auth.Login).Methods(http.MethodPost)

	t := r.PathPrefix("/tasks").Subrouter()
	t.Use(middleware.Auth([]byte(cfg.JWTSecret)))
	t.HandleFunc("", task.Create).Methods(http.MethodPost)
	t.HandleFunc("", task.List).Methods(http.MethodGet)
	t.HandleFunc("/{id}", task.Get).Methods(http.MethodGet)
	t.HandleFunc("/{id}", task.Update).Methods(http.MethodPut)
	t.HandleFunc("/{id}", task.Delete).Methods(http.MethodDelete)

	r.PathPrefix("/app/").Handler(http.StripPrefix("/app/", web.Handler()))

	return r
}

// Home answers the unauthenticated welcome route.
func Home(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Welcome to the Task Manager API"))
}
