package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/onespirit/onespirit/internal/pkg/cache"
	"github.com/onespirit/onespirit/internal/pkg/database"
)

// HandleHealth reports per-dependency status. The endpoint answers 200 as
// long as the process is up; degraded dependencies show in the body.
func HandleHealth(c *fiber.Ctx) error {
	dbStatus := "ok"
	if err := database.Ping(); err != nil {
		dbStatus = "unavailable"
	}

	cacheStatus := "ok"
	if err := cache.Ping(); err != nil {
		cacheStatus = "unavailable"
	}

	status := "ok"
	if dbStatus != "ok" || cacheStatus != "ok" {
		status = "degraded"
	}

	return c.JSON(fiber.Map{
		"status": status,
		"checks": fiber.Map{
			"database": dbStatus,
			"cache":    cacheStatus,
		},
	})
}
