package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"todo-lists.com/todo-lists/internal/constants"
	model "todo-lists.com/todo-lists/internal/models"
)

// TaskFilter is the input of the task listing. OwnerID always comes from the
// caller identity, never from the request.
type TaskFilter struct {
	OwnerID string
	Search  string
	Status  string
	Page    int
}

type Pagination struct {
	CurrentPage int   `json:"current_page"`
	LastPage    int   `json:"last_page"`
	PerPage     int   `json:"per_page"`
	Total       int64 `json:"total"`
	From        *int  `json:"from"`
	To          *int  `json:"to"`
}

type TaskPage struct {
	Data []model.Task `json:"data"`
	Pagination
}

// Paginate returns one page of the owner's tasks, newest first.
func (r *TaskRepository) Paginate(ctx context.Context, filter TaskFilter) (*TaskPage, error) {
	page := filter.Page
	if page < 1 {
		page = 1
	}
	perPage := constants.TasksPerPage

	query := r.db.WithContext(ctx).Model(&model.Task{}).
		Scopes(owned(filter.OwnerID), searchTasks(filter.Search), filterStatus(filter.Status)).
		Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count tasks: %w", err)
	}

	pagination := paginate(total, page, perPage, 0)
	if page > pagination.LastPage {
		return &TaskPage{Data: []model.Task{}, Pagination: pagination}, nil
	}

	tasks := make([]model.Task, 0, perPage)
	err := query.
		Preload("List", selectListSummary).
		Order("tasks.created_at desc").
		Order("tasks.id desc").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return &TaskPage{
		Data:       tasks,
		Pagination: paginate(total, page, perPage, len(tasks)),
	}, nil
}

func searchTasks(search string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		search = strings.TrimSpace(search)
		if search == "" {
			return db
		}

		pattern := "%" + escapeLike(search) + "%"
		return db.Where(`(tasks.title LIKE ? ESCAPE '\' OR tasks.description LIKE ? ESCAPE '\')`, pattern, pattern)
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes the search text match literally inside a LIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// filterStatus keeps the historical fallback: anything that is neither
// "all" nor "completed" lists pending tasks.
func filterStatus(status string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if status == "" || status == constants.FilterAll {
			return db
		}
		return db.Where("tasks.is_completed = ?", status == constants.FilterCompleted)
	}
}

func paginate(total int64, page, perPage, count int) Pagination {
	lastPage := int((total + int64(perPage) - 1) / int64(perPage))
	if lastPage < 1 {
		lastPage = 1
	}

	p := Pagination{
		CurrentPage: page,
		LastPage:    lastPage,
		PerPage:     perPage,
		Total:       total,
	}

	if count > 0 {
		from := (page-1)*perPage + 1
		to := from + count - 1
		p.From = &from
		p.To = &to
	}
	return p
}
