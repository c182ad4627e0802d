// Package tasks provides HTTP handlers for the admin todo list.
package tasks

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"portfolio-api/ent"
	"portfolio-api/ent/task"
	"portfolio-api/internal/httpx/kit"
)

// TaskRequest is the request body for creating or updating a task.
// swagger:model TaskRequest
type TaskRequest struct {
	Title    string `json:"title"`
	Done     *bool  `json:"done,omitempty"`
	Position *int   `json:"position,omitempty"`
}

// ListTasksHandler lists tasks ordered by position.
//
//	@Summary      List tasks
//	@Tags         tasks
//	@Produce      json
//	@Success      200  {object}  map[string]interface{}
//	@Security     BearerAuth
//	@Router       /api/v1/tasks [get]
func ListTasksHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()

		items, err := client.Task.Query().
			Order(ent.Asc(task.FieldPosition), ent.Asc(task.FieldCreatedAt)).
			All(ctx)
		if err != nil {
			return kit.InternalError("query tasks failed", err.Error())
		}
		return kit.OK(c, items)
	}
}

// CreateTaskHandler appends a task to the list.
//
//	@Summary      Create task
//	@Tags         tasks
//	@Accept       json
//	@Produce      json
//	@Param        body  body      tasks.TaskRequest  true  "task payload"
//	@Success      201   {object}  map[string]interface{}
//	@Failure      400   {object}  map[string]interface{}
//	@Security     BearerAuth
//	@Router       /api/v1/tasks [post]
func CreateTaskHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req TaskRequest
		if err := c.BodyParser(&req); err != nil || strings.TrimSpace(req.Title) == "" {
			return kit.BadRequest("title is required", nil)
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		position := 0
		if req.Position != nil {
			position = *req.Position
		} else {
			// append after the current tail
			last, err := client.Task.Query().Order(ent.Desc(task.FieldPosition)).First(ctx)
			if err == nil {
				position = last.Position + 1
			} else if !ent.IsNotFound(err) {
				return kit.InternalError("query tail position failed", err.Error())
			}
		}

		create := client.Task.Create().SetTitle(req.Title).SetPosition(position)
		if req.Done != nil {
			create = create.SetDone(*req.Done)
		}
		created, err := create.Save(ctx)
		if err != nil {
			return kit.InternalError("create task failed", err.Error())
		}
		return kit.Created(c, created)
	}
}

// UpdateTaskHandler patches a task's title, done flag or position.
//
//	@Summary      Update task
//	@Tags         tasks
//	@Accept       json
//	@Produce      json
//	@Param        id    path      string             true  "Task UUID"
//	@Param        body  body      tasks.TaskRequest  true  "task payload"
//	@Success      200   {object}  map[string]interface{}
//	@Failure      400   {object}  map[string]interface{}
//	@Failure      404   {object}  map[string]interface{}
//	@Security     BearerAuth
//	@Router       /api/v1/tasks/{id} [put]
func UpdateTaskHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return kit.BadRequest("invalid task id", c.Params("id"))
		}
		var req TaskRequest
		if err := c.BodyParser(&req); err != nil {
			return kit.BadRequest("invalid request body", nil)
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		upd := client.Task.UpdateOneID(id)
		if strings.TrimSpace(req.Title) != "" {
			upd = upd.SetTitle(req.Title)
		}
		if req.Done != nil {
			upd = upd.SetDone(*req.Done)
		}
		if req.Position != nil {
			upd = upd.SetPosition(*req.Position)
		}
		updated, err := upd.Save(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return kit.NotFound("task not found")
			}
			return kit.InternalError("update task failed", err.Error())
		}
		return kit.OK(c, updated)
	}
}

// DeleteTaskHandler deletes a task.
//
//	@Summary      Delete task
//	@Tags         tasks
//	@Produce      json
//	@Param        id   path      string  true  "Task UUID"
//	@Success      200  {object}  map[string]string
//	@Failure      404  {object}  map[string]interface{}
//	@Security     BearerAuth
//	@Router       /api/v1/tasks/{id} [delete]
func DeleteTaskHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return kit.BadRequest("invalid task id", c.Params("id"))
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		if err := client.Task.DeleteOneID(id).Exec(ctx); err != nil {
			if ent.IsNotFound(err) {
				return kit.NotFound("task not found")
			}
			return kit.InternalError("delete task failed", err.Error())
		}
		return kit.OK(c, fiber.Map{"status": "deleted"})
	}
}
