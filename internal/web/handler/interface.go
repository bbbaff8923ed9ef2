package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ForageFantasy/ForageFantasy/internal/config"
	"github.com/ForageFantasy/ForageFantasy/internal/gmcm"
)

// Service is the interface for a web handler service.
type Service interface {
	Init(app *fiber.App, cfg *config.Config, menu *gmcm.Menu)
}
