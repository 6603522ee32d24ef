package main

import (
	"github.com/gofiber/fiber/v2"

	"github.com/oarkflow/script"
)

type evalRequest struct {
	Source string `json:"source"`
}

type evalResponse struct {
	Result string `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

// serve starts a small HTTP front end: POST /eval with {"source": "..."}
// runs the script and reports either its result or the first error
// encountered.
func serve(addr string) error {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	app.Post("/eval", func(c *fiber.Ctx) error {
		var req evalRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(evalResponse{Error: err.Error()})
		}
		value, err := script.EvalString(req.Source)
		if err != nil {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(evalResponse{Error: err.Error()})
		}
		return c.JSON(evalResponse{Result: value.String()})
	})

	return app.Listen(addr)
}
