package api

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/aidyn-m/hf-gateway/internal/config"
)

func RegisterRoutes(app *fiber.App, inference Inference, llm LLM, rag DocumentAnswerer, cfg *config.Config) {
	h := NewHandler(inference, llm, rag, cfg)

	app.Get("/health", h.Health)
	app.Get("/models", h.ListModels)

	app.Post("/text-generation", h.TextGeneration)
	app.Post("/sentiment-analysis", h.SentimentAnalysis)
	app.Post("/summarization", h.Summarization)
	app.Post("/question-answering", h.QuestionAnswering)

	app.Post("/langchain-prompt", h.Prompt)
	app.Post("/langchain-chain", h.Chain)
	app.Post("/document-qa", h.DocumentQA)
	app.Post("/text-summarization-chain", h.SummarizationChain)
	app.Post("/sentiment-chain", h.SentimentChain)
	app.Post("/direct-hf-call", h.DirectCall)

	// Terminal catch-all: any unmatched method+path gets the JSON 404.
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Endpoint not found"})
	})
}

// ErrorHandler converts anything escaping a route handler (including panics
// rethrown by the recover middleware) into a generic JSON 500, so a request
// failure can never take the process down or leak a non-JSON response.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) && fe.Code == fiber.StatusNotFound {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Endpoint not found"})
	}
	log.Printf("unhandled error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Something went wrong!"})
}
