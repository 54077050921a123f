package dto

import (
	"todo-lists.com/todo-lists/internal/flash"
	model "todo-lists.com/todo-lists/internal/models"
	repository "todo-lists.com/todo-lists/internal/repositories"
)

type ListsIndexResponse struct {
	Lists []model.TaskList `json:"lists"`
	Flash flash.Flash      `json:"flash"`
}

type Filters struct {
	Search string `json:"search"`
	Filter string `json:"filter"`
}

type TasksIndexResponse struct {
	Tasks   *repository.TaskPage `json:"tasks"`
	Lists   []model.TaskList     `json:"lists"`
	Filters Filters              `json:"filters"`
	Flash   flash.Flash          `json:"flash"`
}
