package internal

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/DrGermanius/Receiptmart/internal/model"
)

type Handlers struct {
	Service IService
	logger  *zap.SugaredLogger
}

func NewHandlers(Service IService, logger *zap.SugaredLogger) *Handlers {
	return &Handlers{Service: Service, logger: logger}
}

func (h *Handlers) ProcessReceipt(c *fiber.Ctx) error {
	var raw model.RawReceipt

	if err := c.BodyParser(&raw); err != nil {
		h.logger.Errorf("Error on process receipt request: %s", err.Error())
		if verrs := typeErrors(err); verrs != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid receipt.", "info": verrs})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid receipt."})
	}

	record, err := h.Service.ProcessReceipt(c.Context(), raw)
	if err != nil {
		var verrs ValidationErrors
		if errors.As(err, &verrs) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid receipt.", "info": verrs})
		}
		h.logger.Errorf("Error on process receipt request: %s", err.Error())
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"id": record.ID})
}

func (h *Handlers) GetReceipt(c *fiber.Ctx) error {
	id, err := receiptIDFromParams(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID param."})
	}

	receipt, err := h.Service.GetReceipt(c.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNoRecords) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found."})
		}
		h.logger.Errorf("Error on get receipt request: %s", err.Error())
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.Status(fiber.StatusOK).JSON(receipt)
}

func (h *Handlers) GetPoints(c *fiber.Ctx) error {
	id, err := receiptIDFromParams(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID param."})
	}

	points, err := h.Service.GetPoints(c.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNoRecords) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found."})
		}
		h.logger.Errorf("Error on get points request: %s", err.Error())
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"points": points})
}

// typeErrors maps a wrong-JSON-type decode failure onto the same per-field
// shape the validator produces, so the caller sees one error contract.
func typeErrors(err error) ValidationErrors {
	var typeErr *json.UnmarshalTypeError
	if !errors.As(err, &typeErr) || typeErr.Field == "" {
		return nil
	}

	expected := "string"
	if strings.HasPrefix(typeErr.Type.String(), "[]") {
		expected = "array"
	}

	// Value carries the literal after the kind, e.g. "number 35.35"
	received := typeErr.Value
	if i := strings.IndexByte(received, ' '); i >= 0 {
		received = received[:i]
	}

	return ValidationErrors{{
		Field:   typeErr.Field,
		Message: fmt.Sprintf("Expected %s, received %s.", expected, received),
	}}
}

// ids are opaque to the store but must at least be well-formed uuids,
// so malformed ones turn into a client error before any lookup
func receiptIDFromParams(c *fiber.Ctx) (string, error) {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return "", ErrInvalidReceiptID
	}
	return id, nil
}
