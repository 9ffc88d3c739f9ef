package common

import (
	"context"
	"errors"
	"strings"

	"github.com/bsthun/gut"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"go.scnd.dev/open/grove/grouppath"
	"go.scnd.dev/open/grove/type/response"
	"go.uber.org/fx"
)

func Fiber(lc fx.Lifecycle, config *Config) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler:  FiberError,
		StrictRouting: true,
	})

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				err := app.Listen(*config.WebListen)
				if err != nil {
					gut.Fatal("unable to listen", err)
				}
			}()
			return nil
		},
		OnStop: func(context.Context) error {
			_ = app.Shutdown()
			return nil
		},
	})

	return app
}

func FiberError(c fiber.Ctx, err error) error {
	// * construct success
	success := false

	// * case of `*fiber.Error`
	var fiberError *fiber.Error
	if errors.As(err, &fiberError) {
		return c.Status(fiberError.Code).JSON(&response.ErrorResponse{
			Success: &success,
			Message: &fiberError.Message,
		})
	}

	// * case of `*grouppath.InvalidPathError`
	var invalidPath *grouppath.InvalidPathError
	if errors.As(err, &invalidPath) {
		return c.Status(fiber.StatusBadRequest).JSON(&response.ErrorResponse{
			Success: &success,
			Message: gut.Ptr("invalid path"),
			Error:   gut.Ptr(invalidPath.Error()),
		})
	}

	// * case of `*grouppath.FrozenError`
	var frozen *grouppath.FrozenError
	if errors.As(err, &frozen) {
		return c.Status(fiber.StatusBadRequest).JSON(&response.ErrorResponse{
			Success: &success,
			Message: gut.Ptr("namespace is frozen"),
			Error:   gut.Ptr(frozen.Error()),
		})
	}

	// * case of `*grouppath.KeyNotFoundError`
	var notFound *grouppath.KeyNotFoundError
	if errors.As(err, &notFound) {
		return c.Status(fiber.StatusNotFound).JSON(&response.ErrorResponse{
			Success: &success,
			Message: gut.Ptr("group not found"),
			Error:   gut.Ptr(notFound.Error()),
		})
	}

	// * case of `*grouppath.UnknownChildError`
	var unknownChild *grouppath.UnknownChildError
	if errors.As(err, &unknownChild) {
		return c.Status(fiber.StatusNotFound).JSON(&response.ErrorResponse{
			Success: &success,
			Message: gut.Ptr("unknown child"),
			Error:   gut.Ptr(unknownChild.Error()),
		})
	}

	// * case of `validator.ValidationErrors`
	var validatorErr validator.ValidationErrors
	if errors.As(err, &validatorErr) {
		var lists []string
		for _, err := range validatorErr {
			lists = append(lists, err.Field()+" ("+err.Tag()+")")
		}

		message := strings.Join(lists[:], ", ")

		return c.Status(fiber.StatusBadRequest).JSON(&response.ErrorResponse{
			Success: gut.Ptr(false),
			Message: gut.Ptr("validation failed on " + message),
			Error:   gut.Ptr(validatorErr.Error()),
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(&response.ErrorResponse{
		Success: gut.Ptr(false),
		Message: gut.Ptr("unknown server error"),
		Error:   gut.Ptr(err.Error()),
	})
}
