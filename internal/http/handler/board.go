package handler

import (
	"errors"
	"fmt"
	"net/http"

	"taskboard/internal/core"
	"taskboard/internal/http/handler/middleware"
	"taskboard/internal/http/payload"

	"go.uber.org/zap"
)

var (
	GetDashboard     = "GET /api/dashboard"
	GetTasks         = "GET /api/tasks"
	GetEmployees     = "GET /api/employees"
	GetEmployeeTasks = "GET /api/employees/{id}/tasks"
	CreateTask       = "POST /api/tasks"
	UpdateTask       = "PUT /api/tasks/{id}"
	DeleteTask       = "DELETE /api/tasks/{id}"
	Seed             = "POST /api/seed"
	Health           = "GET /healthz"
)

type BoardHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	board            BoardService
}

func NewBoardHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, boardService BoardService) *BoardHandler {
	return &BoardHandler{
		logs:             logger,
		requestValidator: requestValidator,
		board:            boardService,
	}
}

func (h *BoardHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFromContext(r.Context())

	stats, err := h.board.Dashboard(r.Context())
	if err != nil {
		h.internalError(w, "Could not load dashboard", err, GetDashboard, requestId)
		return
	}

	respond(h.logs, w, payload.NewDashboardResponse(stats), http.StatusOK, requestId)
}

func (h *BoardHandler) HandleGetTasks(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFromContext(r.Context())

	tasks, err := h.board.ListTasks(r.Context())
	if err != nil {
		h.internalError(w, "Could not retrieve tasks", err, GetTasks, requestId)
		return
	}

	respond(h.logs, w, payload.NewExpandedTaskResponses(tasks), http.StatusOK, requestId)
}

func (h *BoardHandler) HandleGetEmployees(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFromContext(r.Context())

	employees, err := h.board.ListEmployees(r.Context())
	if err != nil {
		h.internalError(w, "Could not retrieve employees", err, GetEmployees, requestId)
		return
	}

	respond(h.logs, w, payload.NewEmployeeResponses(employees), http.StatusOK, requestId)
}

func (h *BoardHandler) HandleGetEmployeeTasks(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFromContext(r.Context())

	employeeID, ok := h.pathID(w, r, GetEmployeeTasks, requestId)
	if !ok {
		return
	}

	tasks, err := h.board.ListEmployeeTasks(r.Context(), employeeID)
	if err != nil {
		h.internalError(w, "Could not retrieve employee tasks", err, GetEmployeeTasks, requestId)
		return
	}

	respond(h.logs, w, payload.NewTaskResponses(tasks), http.StatusOK, requestId)
}

func (h *BoardHandler) HandleCreateTask(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFromContext(r.Context())

	var req payload.CreateTaskRequest
	err := h.requestValidator.DecodeJSONPayload(r, &req)
	if err == nil {
		err = req.Validate()
	}
	if err != nil {
		h.badRequest(w, "Could not create task", err, CreateTask, requestId)
		return
	}

	task, err := h.board.CreateTask(r.Context(), req.ToCoreTaskDraft())
	if err != nil {
		h.taskError(w, "Could not create task", err, CreateTask, requestId)
		return
	}

	h.logs.Infow("task created",
		"task_id", task.ID,
		"user_id", userID(r),
		"handler", CreateTask,
		"request_id", requestId)

	respond(h.logs, w, payload.NewTaskResponse(task), http.StatusOK, requestId)
}

func (h *BoardHandler) HandleUpdateTask(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFromContext(r.Context())

	taskID, ok := h.pathID(w, r, UpdateTask, requestId)
	if !ok {
		return
	}

	var req payload.UpdateTaskRequest
	err := h.requestValidator.DecodeJSONPayload(r, &req)
	if err == nil {
		err = req.Validate()
	}
	if err != nil {
		h.badRequest(w, "Could not update task", err, UpdateTask, requestId)
		return
	}

	task, err := h.board.UpdateTask(r.Context(), taskID, req.ToCoreTaskPatch())
	if err != nil {
		h.taskError(w, "Could not update task", err, UpdateTask, requestId)
		return
	}

	h.logs.Infow("task updated",
		"task_id", task.ID,
		"status", task.Status,
		"user_id", userID(r),
		"handler", UpdateTask,
		"request_id", requestId)

	respond(h.logs, w, payload.NewTaskResponse(task), http.StatusOK, requestId)
}

func (h *BoardHandler) HandleDeleteTask(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFromContext(r.Context())

	taskID, ok := h.pathID(w, r, DeleteTask, requestId)
	if !ok {
		return
	}

	if err := h.board.DeleteTask(r.Context(), taskID); err != nil {
		h.taskError(w, "Could not delete task", err, DeleteTask, requestId)
		return
	}

	h.logs.Infow("task deleted",
		"task_id", taskID,
		"user_id", userID(r),
		"handler", DeleteTask,
		"request_id", requestId)

	respond(h.logs, w, Response{Message: "Task deleted successfully"}, http.StatusOK, requestId)
}

func (h *BoardHandler) HandleSeed(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFromContext(r.Context())

	if err := h.board.Seed(r.Context()); err != nil {
		h.internalError(w, "Could not seed database", err, Seed, requestId)
		return
	}

	h.logs.Infow("database seeded",
		"handler", Seed,
		"request_id", requestId)

	respond(h.logs, w, Response{Message: "Database Seeded"}, http.StatusOK, requestId)
}

func (h *BoardHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	respond(h.logs, w, Response{Message: "ok"}, http.StatusOK, middleware.RequestIDFromContext(r.Context()))
}

func (h *BoardHandler) pathID(w http.ResponseWriter, r *http.Request, route, requestId string) (string, bool) {
	param := payload.TaskIDParam{ID: r.PathValue("id")}
	if err := param.Validate(); err != nil {
		h.badRequest(w, "Request failed", fmt.Errorf("invalid id %q: %w", param.ID, err), route, requestId)
		return "", false
	}
	return param.ID, true
}

func (h *BoardHandler) badRequest(w http.ResponseWriter, message string, err error, route, requestId string) {
	respond(h.logs, w, Response{
		Message: message,
		Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
	}, http.StatusBadRequest, requestId)
	h.logs.Errorw("failed to decode and validate request",
		"error", err,
		"handler", route,
		"request_id", requestId)
}

func (h *BoardHandler) taskError(w http.ResponseWriter, message string, err error, route, requestId string) {
	switch {
	case errors.Is(err, core.ErrTaskNotFound):
		respond(h.logs, w, Response{Message: "Task not found"}, http.StatusNotFound, requestId)
		h.logs.Errorw("task not found",
			"error", err,
			"handler", route,
			"request_id", requestId)
	case errors.Is(err, core.ErrInvalidStatus):
		h.badRequest(w, message, err, route, requestId)
	default:
		h.internalError(w, message, err, route, requestId)
	}
}

func (h *BoardHandler) internalError(w http.ResponseWriter, message string, err error, route, requestId string) {
	respond(h.logs, w, Response{
		Message: message,
		Error:   unexpectedErr,
	}, http.StatusInternalServerError, requestId)
	h.logs.Errorw("request failed",
		"error", err,
		"handler", route,
		"request_id", requestId)
}

func userID(r *http.Request) string {
	identity, _ := middleware.IdentityFromContext(r.Context())
	return identity.UserID
}
