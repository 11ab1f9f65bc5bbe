package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/articulos-centros/internal/application/dto"
	"github.com/jhoicas/articulos-centros/internal/application/webhook"
)

// WebhookHandler expone un adaptador de extracción como endpoint POST.
type WebhookHandler struct {
	adapter webhook.Adapter
}

// NewWebhookHandler construye el handler.
func NewWebhookHandler(adapter webhook.Adapter) *WebhookHandler {
	return &WebhookHandler{adapter: adapter}
}

// Extract acepta JSON (objeto) o formulario urlencoded y devuelve message + conversation_id.
func (h *WebhookHandler) Extract(c *fiber.Ctx) error {
	payload, err := parsePayload(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido: se espera un objeto JSON o un formulario"})
	}
	return c.Status(fiber.StatusOK).JSON(h.adapter.Extract(payload))
}

func parsePayload(c *fiber.Ctx) (map[string]any, error) {
	payload := map[string]any{}
	body := c.Body()
	if len(bytes.TrimSpace(body)) == 0 {
		return payload, nil
	}

	if c.Is("json") {
		dec := json.NewDecoder(bytes.NewReader(body))
		dec.UseNumber()
		if err := dec.Decode(&payload); err != nil {
			return nil, err
		}
		if _, err := dec.Token(); !errors.Is(err, io.EOF) {
			return nil, errors.New("datos extra tras el objeto JSON")
		}
		return payload, nil
	}

	c.Request().PostArgs().VisitAll(func(k, v []byte) {
		payload[string(k)] = string(v)
	})
	return payload, nil
}
