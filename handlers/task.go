package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"taskmanager/middleware"
	"taskmanager/models"
	"taskmanager/store"
	"taskmanager/utils"
)

type TaskHandler struct {
	tasks store.TaskStore
	log   *slog.Logger
}

func NewTaskHandler(tasks store.TaskStore, log *slog.Logger) *TaskHandler {
	return &TaskHandler{tasks: tasks, log: log}
}

type taskRequest struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Status      models.Status `json:"status"`
	DueDate     string        `json:"dueDate"`
}

// validate checks the required fields and returns the task to persist.
// Status defaults to Pending when omitted. Both create and update share
// these rules: update is a full replacement, not a partial merge.
func (req *taskRequest) validate() (*models.Task, error) {
	if req.Title == "" || req.Description == "" || req.DueDate == "" {
		return nil, errors.New("title, description and dueDate are required")
	}

	status := req.Status
	if status == "" {
		status = models.StatusPending
	}
	if !status.Valid() {
		return nil, errors.New("status must be one of Pending, In Progress, Completed")
	}

	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		return nil, errors.New("dueDate must be a calendar date (YYYY-MM-DD)")
	}

	return &models.Task{
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
		DueDate:     dueDate,
	}, nil
}

// parseDueDate accepts the date-picker format and full RFC 3339 timestamps.
func parseDueDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		utils.ResponseWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req taskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseWithError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	task, err := req.validate()
	if err != nil {
		utils.ResponseWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	task.UserID = userID

	task, err = h.tasks.Create(r.Context(), task)
	if err != nil {
		h.log.Error("create task failed", "error", err)
		utils.ResponseWithErrorDetail(w, http.StatusInternalServerError, "Error creating task", err)
		return
	}

	utils.ResponseWithJson(w, http.StatusCreated, map[string]interface{}{
		"message": "Task created successfully",
		"task":    task,
	})
}

func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		utils.ResponseWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	tasks, err := h.tasks.ListByOwner(r.Context(), userID)
	if err != nil {
		h.log.Error("list tasks failed", "error", err)
		utils.ResponseWithErrorDetail(w, http.StatusInternalServerError, "Error fetching tasks", err)
		return
	}
	if tasks == nil {
		tasks = []models.Task{}
	}

	utils.ResponseWithJson(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"tasks":   tasks,
	})
}

func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		utils.ResponseWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	task, err := h.tasks.GetByID(r.Context(), mux.Vars(r)["id"], userID)
	if errors.Is(err, store.ErrNotFound) {
		utils.ResponseWithError(w, http.StatusNotFound, "Task not found")
		return
	}
	if err != nil {
		h.log.Error("get task failed", "error", err)
		utils.ResponseWithErrorDetail(w, http.StatusInternalServerError, "Error fetching task", err)
		return
	}

	utils.ResponseWithJson(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"task":    task,
	})
}

func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		utils.ResponseWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req taskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseWithError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	task, err := req.validate()
	if err != nil {
		utils.ResponseWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := h.tasks.Replace(r.Context(), mux.Vars(r)["id"], userID, task)
	if errors.Is(err, store.ErrNotFound) {
		utils.ResponseWithError(w, http.StatusNotFound, "Task not found")
		return
	}
	if err != nil {
		h.log.Error("update task failed", "error", err)
		utils.ResponseWithErrorDetail(w, http.StatusInternalServerError, "Error updating task", err)
		return
	}

	utils.ResponseWithJson(w, http.StatusOK, map[string]interface{}{
		"message": "Task updated successfully",
		"task":    updated,
	})
}

func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		utils.ResponseWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	deleted, err := h.tasks.Delete(r.Context(), mux.Vars(r)["id"], userID)
	if errors.Is(err, store.ErrNotFound) {
		utils.ResponseWithError(w, http.StatusNotFound, "Task not found")
		return
	}
	if err != nil {
		h.log.Error("delete task failed", "error", err)
		utils.ResponseWithErrorDetail(w, http.StatusInternalServerError, "Error deleting task", err)
		return
	}

	utils.ResponseWithJson(w, http.StatusOK, map[string]interface{}{
		"message": "Task deleted successfully",
		"task":    deleted,
	})
}
