package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/articulos-centros/internal/application/webhook"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Assistant webhook.Adapter
	WhatsApp  webhook.Adapter
	JWTSecret string // vacío = webhooks públicos
}

// Router registra las rutas de webhooks.
func Router(app *fiber.App, deps RouterDeps) {
	hooks := app.Group("/webhooks")
	if deps.JWTSecret != "" {
		hooks.Use(AuthMiddleware(deps.JWTSecret))
	}

	hooks.Post("/assistant", NewWebhookHandler(deps.Assistant).Extract)
	hooks.Post("/whatsapp", NewWebhookHandler(deps.WhatsApp).Extract)
}
