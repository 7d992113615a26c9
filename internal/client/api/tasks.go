package api

import (
	"context"
	"net/http"

	"github.com/ysemenovs/deskhub/internal/client/models"
)

// ListTasks returns all tasks visible to the session.
func (c *Client) ListTasks(ctx context.Context) ([]models.Task, error) {
	var ws []taskWire
	if err := c.do(ctx, http.MethodGet, "/tasks", nil, &ws); err != nil {
		return nil, err
	}
	tasks := make([]models.Task, 0, len(ws))
	for _, w := range ws {
		tasks = append(tasks, c.normalizeTask(w))
	}
	return tasks, nil
}

func (c *Client) GetTask(ctx context.Context, id models.ID) (models.Task, error) {
	var w taskWire
	if err := c.do(ctx, http.MethodGet, "/tasks/"+id.String(), nil, &w); err != nil {
		return models.Task{}, err
	}
	return c.normalizeTask(w), nil
}

func (c *Client) CreateTask(ctx context.Context, in CreateTaskInput) (models.Task, error) {
	if err := c.validateInput(in); err != nil {
		return models.Task{}, err
	}
	var w taskWire
	if err := c.do(ctx, http.MethodPost, "/tasks", in, &w); err != nil {
		return models.Task{}, err
	}
	return c.normalizeTask(w), nil
}

func (c *Client) UpdateTask(ctx context.Context, id models.ID, in UpdateTaskInput) (models.Task, error) {
	if err := c.validateInput(in); err != nil {
		return models.Task{}, err
	}
	var w taskWire
	if err := c.do(ctx, http.MethodPut, "/tasks/"+id.String(), in, &w); err != nil {
		return models.Task{}, err
	}
	return c.normalizeTask(w), nil
}

func (c *Client) DeleteTask(ctx context.Context, id models.ID) error {
	return c.do(ctx, http.MethodDelete, "/tasks/"+id.String(), nil, nil)
}
