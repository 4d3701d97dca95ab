// Package board projects a project's tasks into the three status columns
// rendered by Kanban clients.
package board

import "github.com/dmaia/taskboard/internal/models"

// Columns holds a project's tasks grouped by status, each column in arrival
// order.
type Columns struct {
	Todo  []models.Task `json:"todo"`
	Doing []models.Task `json:"doing"`
	Done  []models.Task `json:"done"`
}

// Partition groups tasks deterministically into the three columns. A task
// carrying an unrecognized status is a data-integrity anomaly and is excluded
// from every column rather than crashing the projection.
func Partition(tasks []models.Task) Columns {
	var cols Columns
	for _, task := range tasks {
		switch task.Status {
		case models.StatusTodo:
			cols.Todo = append(cols.Todo, task)
		case models.StatusDoing:
			cols.Doing = append(cols.Doing, task)
		case models.StatusDone:
			cols.Done = append(cols.Done, task)
		}
	}
	return cols
}

// Count returns the number of tasks placed on the board.
func (c Columns) Count() int {
	return len(c.Todo) + len(c.Doing) + len(c.Done)
}
