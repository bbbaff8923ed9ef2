package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"github.com/ForageFantasy/ForageFantasy/internal/gmcm"
)

// ErrorBody is the JSON body of every failed API call.
type ErrorBody struct {
	Error string `json:"error"`
}

// Status maps a menu error to its HTTP status code.
func Status(err error) int {
	switch {
	case errors.Is(err, gmcm.ErrModNotRegistered), errors.Is(err, gmcm.ErrOptionNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, gmcm.ErrNotEditable),
		errors.Is(err, gmcm.ErrInvalidValue),
		errors.Is(err, gmcm.ErrInvalidChoice):
		return fiber.StatusBadRequest
	}

	return fiber.StatusInternalServerError
}

// SendError writes err as ErrorBody with the status it maps to.
func SendError(c *fiber.Ctx, err error) error {
	return c.Status(Status(err)).JSON(ErrorBody{Error: err.Error()})
}
