package controllers

import (
	"context"
	"strings"
	"time"

	"github.com/flowbaker/ticket-classifier/pkg/classifier"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"
)

// TicketClassifier is the classification core as seen by the HTTP layer
type TicketClassifier interface {
	Classify(ctx context.Context, description string) classifier.Result
}

// ClassifyController exposes ticket classification over HTTP. It validates
// the request and returns the classifier result unchanged.
type ClassifyController struct {
	classifier TicketClassifier
	timeout    time.Duration
}

type ClassifyControllerDependencies struct {
	Classifier TicketClassifier

	// Timeout bounds the provider calls of one request. Zero disables it.
	Timeout time.Duration
}

func NewClassifyController(deps ClassifyControllerDependencies) *ClassifyController {
	return &ClassifyController{
		classifier: deps.Classifier,
		timeout:    deps.Timeout,
	}
}

type ClassifyRequest struct {
	Description any `json:"description"`
}

const (
	errFieldRequired  = "This field is required."
	errFieldBlank     = "This field may not be blank."
	errFieldNotString = "Not a valid string."
)

// Classify handles POST /api/tickets/classify/
func (c *ClassifyController) Classify(ctx fiber.Ctx) error {
	var req ClassifyRequest

	if err := ctx.Bind().Body(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	description, problem := validateDescription(req.Description)
	if problem != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"description": []string{problem},
		})
	}

	reqCtx := ctx.Context()
	if c.timeout > 0 {
		var cancel context.CancelFunc
		reqCtx, cancel = context.WithTimeout(reqCtx, c.timeout)
		defer cancel()
	}

	result := c.classifier.Classify(reqCtx, description)

	log.Debug().
		Str("suggested_category", string(result.SuggestedCategory)).
		Str("suggested_priority", string(result.SuggestedPriority)).
		Msg("Classification returned")

	return ctx.Status(fiber.StatusOK).JSON(result)
}

func validateDescription(value any) (string, string) {
	switch v := value.(type) {
	case nil:
		return "", errFieldRequired
	case string:
		description := strings.TrimSpace(v)
		if description == "" {
			return "", errFieldBlank
		}
		return description, ""
	default:
		return "", errFieldNotString
	}
}
