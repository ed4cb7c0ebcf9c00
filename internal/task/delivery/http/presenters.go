package http

import (
	"time"

	"llm-personal-assistant/internal/model"
	"llm-personal-assistant/internal/task"
)

// --- Request DTOs ---

type createReq struct {
	Title       string     `json:"title"       binding:"required,min=1,max=255"`
	Description string     `json:"description" binding:"max=2000"`
	DueDate     *time.Time `json:"due_date"`
}

func (r createReq) toInput() task.CreateTaskInput {
	return task.CreateTaskInput{
		Title:       r.Title,
		Description: r.Description,
		DueDate:     r.DueDate,
	}
}

type listReq struct {
	Skip  int `form:"skip"`
	Limit int `form:"limit"`
}

func (r listReq) toInput() task.ListTasksInput {
	return task.ListTasksInput{
		Skip:  r.Skip,
		Limit: r.Limit,
	}
}

type updateReq struct {
	ID          string     `json:"-"` // populated from URI param
	Title       *string    `json:"title"       binding:"omitempty,min=1,max=255"`
	Description *string    `json:"description" binding:"omitempty,max=2000"`
	DueDate     *time.Time `json:"due_date"`
	Completed   *bool      `json:"completed"`
}

func (r updateReq) toInput() task.UpdateTaskInput {
	return task.UpdateTaskInput{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		DueDate:     r.DueDate,
		Completed:   r.Completed,
	}
}

// --- Response DTOs ---

type taskResp struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		DueDate:     t.DueDate,
		Completed:   t.Completed,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Total int64      `json:"total"`
	Skip  int        `json:"skip"`
	Limit int        `json:"limit"`
}

func (h *handler) newListResp(out task.ListTasksOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listResp{
		Tasks: tasks,
		Total: out.Total,
		Skip:  out.Skip,
		Limit: out.Limit,
	}
}
