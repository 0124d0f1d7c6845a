package payload

import (
	"bytes"
	"encoding/json"
	"errors"
	"time"

	"taskboard/internal/core"

	"github.com/google/uuid"
	"github.com/jellydator/validation"
)

var errNotUUID = errors.New("must be a valid UUID")

// OptionalString tells an absent JSON field apart from an explicit null.
type OptionalString struct {
	Set   bool
	Value *string
}

func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(data, []byte("null")) {
		o.Value = nil
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	o.Value = &s
	return nil
}

type CreateTaskRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	AssignedTo  *string `json:"assignedTo"`
}

func (c CreateTaskRequest) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Title, validation.Required),
		validation.Field(&c.Status, validation.In(statuses()...)),
		validation.Field(&c.AssignedTo, validation.By(uuidOrEmpty)),
	)
}

func (c CreateTaskRequest) ToCoreTaskDraft() core.TaskDraft {
	return core.TaskDraft{
		Title:       c.Title,
		Description: c.Description,
		Status:      c.Status,
		AssignedTo:  c.AssignedTo,
	}
}

type UpdateTaskRequest struct {
	Title       *string        `json:"title"`
	Description *string        `json:"description"`
	Status      *string        `json:"status"`
	AssignedTo  OptionalString `json:"assignedTo"`
}

func (u UpdateTaskRequest) Validate() error {
	return validation.ValidateStruct(&u,
		validation.Field(&u.Title, validation.NilOrNotEmpty),
		validation.Field(&u.Status, validation.NilOrNotEmpty, validation.In(statuses()...)),
		validation.Field(&u.AssignedTo, validation.By(func(value any) error {
			opt, _ := value.(OptionalString)
			return uuidOrEmpty(opt.Value)
		})),
	)
}

func (u UpdateTaskRequest) ToCoreTaskPatch() core.TaskPatch {
	return core.TaskPatch{
		Title:         u.Title,
		Description:   u.Description,
		Status:        u.Status,
		AssignedTo:    u.AssignedTo.Value,
		AssignedToSet: u.AssignedTo.Set,
	}
}

// TaskIDParam validates a task or employee id taken from the URL path.
type TaskIDParam struct {
	ID string
}

func (t TaskIDParam) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.ID, validation.Required, validation.By(uuidOrEmpty)),
	)
}

func statuses() []any {
	out := make([]any, len(core.TaskStatuses))
	for i, s := range core.TaskStatuses {
		out[i] = s
	}
	return out
}

// uuidOrEmpty accepts empty values and otherwise requires a UUID.
func uuidOrEmpty(value any) error {
	var s string
	switch v := value.(type) {
	case string:
		s = v
	case *string:
		if v == nil {
			return nil
		}
		s = *v
	default:
		return nil
	}
	if s == "" {
		return nil
	}
	if err := uuid.Validate(s); err != nil {
		return errNotUUID
	}
	return nil
}

type EmployeeResponse struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Email     string    `json:"email"`
	Avatar    *string   `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TaskResponse.AssignedTo holds either the employee id or, for the board
// listing, the expanded employee. Both may be null.
type TaskResponse struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	AssignedTo  any       `json:"assignedTo"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type DashboardResponse struct {
	Total      int64 `json:"total"`
	Completed  int64 `json:"completed"`
	Pending    int64 `json:"pending"`
	InProgress int64 `json:"inProgress"`
	Rate       int   `json:"rate"`
}

func NewEmployeeResponse(rec core.EmployeeRecord) EmployeeResponse {
	return EmployeeResponse{
		ID:        rec.ID,
		Name:      rec.Name,
		Role:      rec.Role,
		Email:     rec.Email,
		Avatar:    rec.Avatar,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
}

func NewEmployeeResponses(records []core.EmployeeRecord) []EmployeeResponse {
	out := make([]EmployeeResponse, len(records))
	for i, rec := range records {
		out[i] = NewEmployeeResponse(rec)
	}
	return out
}

func NewTaskResponse(rec core.TaskRecord) TaskResponse {
	resp := newTaskResponse(rec)
	if rec.AssignedTo != nil {
		resp.AssignedTo = *rec.AssignedTo
	}
	return resp
}

func NewTaskResponses(records []core.TaskRecord) []TaskResponse {
	out := make([]TaskResponse, len(records))
	for i, rec := range records {
		out[i] = NewTaskResponse(rec)
	}
	return out
}

// NewExpandedTaskResponses renders tasks with the assignee embedded.
func NewExpandedTaskResponses(records []core.TaskRecord) []TaskResponse {
	out := make([]TaskResponse, len(records))
	for i, rec := range records {
		out[i] = newTaskResponse(rec)
		if rec.Assignee != nil {
			out[i].AssignedTo = NewEmployeeResponse(*rec.Assignee)
		}
	}
	return out
}

func newTaskResponse(rec core.TaskRecord) TaskResponse {
	return TaskResponse{
		ID:          rec.ID,
		Title:       rec.Title,
		Description: rec.Description,
		Status:      rec.Status,
		CreatedAt:   rec.CreatedAt,
		UpdatedAt:   rec.UpdatedAt,
	}
}

func NewDashboardResponse(stats core.DashboardStats) DashboardResponse {
	return DashboardResponse{
		Total:      stats.Total,
		Completed:  stats.Completed,
		Pending:    stats.Pending,
		InProgress: stats.InProgress,
		Rate:       stats.Rate,
	}
}
