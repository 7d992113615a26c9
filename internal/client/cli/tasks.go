package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ysemenovs/deskhub/internal/client/api"
	"github.com/ysemenovs/deskhub/internal/client/models"
	"github.com/ysemenovs/deskhub/internal/client/store"
)

func (a *App) listTasks(ctx context.Context) {
	if a.currentMode() == ModeOffline {
		a.listLocalTasks(ctx)
		return
	}

	tasks, err := a.client.ListTasks(ctx)
	if err != nil {
		a.printErr(err)
		return
	}
	a.printTasks(tasks)
}

func (a *App) listLocalTasks(ctx context.Context) {
	data, err := a.store.Get(ctx, store.KeyTasks)
	if err != nil {
		a.printErr(err)
		return
	}
	var tasks []models.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		a.printErr(err)
		return
	}
	fmt.Fprintln(a.out, "(local data, server unreachable)")
	a.printTasks(tasks)
}

func (a *App) printTasks(tasks []models.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(a.out, "no tasks")
		return
	}
	for _, t := range tasks {
		assignees := ""
		for i, u := range t.AssignedTo {
			if i > 0 {
				assignees += ", "
			}
			assignees += u.Name
		}
		fmt.Fprintf(a.out, "[%s] %-9s %-11s %s  %s  %s\n",
			t.ID, t.Priority, t.Status, t.Date.Format("2006-01-02"), t.Title, assignees)
	}
}

func (a *App) addTask(ctx context.Context) {
	title, err := GetSimpleText(a.in, "Title", a.out)
	if err != nil {
		a.printErr(err)
		return
	}
	dateStr, err := GetSimpleText(a.in, "Due date (YYYY-MM-DD, empty for tomorrow)", a.out)
	if err != nil {
		a.printErr(err)
		return
	}
	priority, err := GetSimpleText(a.in, "Priority (low/medium/high)", a.out)
	if err != nil {
		a.printErr(err)
		return
	}

	date := timeNow().AddDate(0, 0, 1)
	if dateStr != "" {
		if date, err = time.Parse("2006-01-02", dateStr); err != nil {
			a.printErr(err)
			return
		}
	}
	if priority == "" {
		priority = string(models.PriorityMedium)
	}

	task, err := a.client.CreateTask(ctx, api.CreateTaskInput{
		Title:    title,
		Date:     date,
		Priority: priority,
		Status:   string(models.StatusPending),
	})
	if err != nil {
		a.printErr(err)
		return
	}
	fmt.Fprintf(a.out, "created task %s\n", task.ID)
}

func (a *App) completeTask(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "usage: donetask <id>")
		return
	}

	status := string(models.StatusCompleted)
	task, err := a.client.UpdateTask(ctx, models.ID(args[0]), api.UpdateTaskInput{Status: &status})
	if err != nil {
		a.printErr(err)
		return
	}
	fmt.Fprintf(a.out, "task %s marked %s\n", task.ID, task.Status)
}

func (a *App) deleteTask(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "usage: deltask <id>")
		return
	}
	if err := a.client.DeleteTask(ctx, models.ID(args[0])); err != nil {
		a.printErr(err)
		return
	}
	fmt.Fprintln(a.out, "deleted")
}
