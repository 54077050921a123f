package dto

import "todo-lists.com/todo-lists/internal/services"

type ListRequest struct {
	Name        string  `json:"name" form:"name"`
	Description *string `json:"description" form:"description"`
}

type TaskRequest struct {
	Title       string    `json:"title" form:"title"`
	Description *string   `json:"description" form:"description"`
	DueDate     *string   `json:"due_date" form:"due_date"`
	ListID      string    `json:"list_id" form:"list_id"`
	IsCompleted *FlexBool `json:"is_completed" form:"is_completed"`
}

type TaskIndexQuery struct {
	Search string `query:"search"`
	Filter string `query:"filter"`
	Page   string `query:"page"`
}

func (r ListRequest) Input() services.ListInput {
	return services.ListInput{
		Name:        r.Name,
		Description: r.Description,
	}
}

func (r TaskRequest) Input() services.TaskInput {
	return services.TaskInput{
		Title:       r.Title,
		Description: r.Description,
		DueDate:     r.DueDate,
		ListID:      r.ListID,
		IsCompleted: r.IsCompleted.Ptr(),
	}
}
