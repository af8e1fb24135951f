package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/aidyn-m/hf-gateway/internal/api"
	"github.com/aidyn-m/hf-gateway/internal/config"
	"github.com/aidyn-m/hf-gateway/internal/hf"
	"github.com/aidyn-m/hf-gateway/internal/service"
)

func main() {
	// config
	cfg := config.Load()
	if cfg.APIKey == "" {
		log.Println("HUGGINGFACE_API_KEY is not set, upstream calls may be rejected")
	}

	// clients (process lifetime, read-only after this point)
	inference := hf.NewClient(cfg.HFBaseURL, cfg.APIKey)
	llm := service.NewLLMClient(cfg)
	rag := service.NewRAGService(llm, llm, cfg.TopK)

	// api
	app := fiber.New(fiber.Config{ErrorHandler: api.ErrorHandler})
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(logger.New())
	api.RegisterRoutes(app, inference, llm, rag, cfg)

	log.Printf("🚀 Server started at %s", cfg.ServerAddr)
	log.Fatal(app.Listen(cfg.ServerAddr))
}
