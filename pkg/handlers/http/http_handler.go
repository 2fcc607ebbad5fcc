package http

import "github.com/gofiber/fiber/v2"

type Handler interface {
	Handle(ctx *fiber.Ctx) error
}

type HandlerTransport struct {
	// Ingestion
	CreateAlertHandler     Handler
	DetectInjectionHandler Handler

	// Retrieval
	ListAlertsHandler  Handler
	DeleteAlertHandler Handler
	GetStatsHandler    Handler

	// Service
	HealthHandler Handler
	IndexHandler  Handler
}
