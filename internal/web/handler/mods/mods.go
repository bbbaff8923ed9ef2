// Package mods serves the config menu pages of the loaded mods as JSON.
package mods

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/ForageFantasy/ForageFantasy/internal/config"
	"github.com/ForageFantasy/ForageFantasy/internal/gmcm"
	"github.com/ForageFantasy/ForageFantasy/internal/web/handler"
)

const (
	// Path is the base path of the mods routes.
	Path = handler.APIPath + "/mods"

	idParam   = "id"
	nameParam = "name"
)

// Service is the mods handler service.
type Service struct {
	cfg  *config.Config
	menu *gmcm.Menu
}

// SetRequest is the body of an option update.
type SetRequest struct {
	Value any `json:"value"`
}

var (
	// Handler is the mods handler.
	Handler = Service{}

	_ handler.Service = (*Service)(nil)
)

// Init registers the mods routes.
func (s *Service) Init(app *fiber.App, cfg *config.Config, menu *gmcm.Menu) {
	if app == nil || cfg == nil || menu == nil {
		log.Fatal().Msg(handler.ErrNilACMFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.menu = menu

	group := app.Group(Path)
	group.Get(handler.RootPath, s.List)
	group.Get("/:"+idParam, s.Get)
	group.Put("/:"+idParam+"/options/:"+nameParam, s.Set)
	group.Post("/:"+idParam+"/reset", s.Reset)
	group.Post("/:"+idParam+"/save", s.Save)
}

// List returns a summary of every page.
func (s *Service) List(c *fiber.Ctx) error {
	return c.JSON(s.menu.Pages())
}

// Get returns one page with its current values.
func (s *Service) Get(c *fiber.Ctx) error {
	page, err := s.menu.Page(c.Params(idParam))
	if err != nil {
		return handler.SendError(c, err)
	}

	return c.JSON(page)
}

// Set changes one option through its set accessor.
func (s *Service) Set(c *fiber.Ctx) error {
	// option names contain spaces and colons
	name, err := url.PathUnescape(c.Params(nameParam))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(handler.ErrorBody{Error: err.Error()})
	}

	var req SetRequest
	if err = c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(handler.ErrorBody{Error: err.Error()})
	}

	option, err := s.menu.Set(c.Params(idParam), name, req.Value)
	if err != nil {
		log.Debug().Err(err).Str("mod", c.Params(idParam)).Str("option", name).Msg("option not changed")
		return handler.SendError(c, err)
	}

	return c.JSON(option)
}

// Reset restores the defaults of a mod.
func (s *Service) Reset(c *fiber.Ctx) error {
	page, err := s.menu.Reset(c.Params(idParam))
	if err != nil {
		return handler.SendError(c, err)
	}

	return c.JSON(page)
}

// Save persists the config of a mod.
func (s *Service) Save(c *fiber.Ctx) error {
	page, err := s.menu.Save(c.Params(idParam))
	if err != nil {
		return handler.SendError(c, err)
	}

	return c.JSON(page)
}
