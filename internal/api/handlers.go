package api

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sashabaranov/go-openai"

	"github.com/aidyn-m/hf-gateway/internal/config"
	"github.com/aidyn-m/hf-gateway/internal/hf"
	"github.com/aidyn-m/hf-gateway/internal/model"
	"github.com/aidyn-m/hf-gateway/internal/service"
	"github.com/aidyn-m/hf-gateway/internal/util"
)

// Inference is the slice of the Hugging Face task API the handlers use.
type Inference interface {
	TextGeneration(ctx context.Context, req hf.TextGenerationRequest) (string, error)
	TextClassification(ctx context.Context, model, text string) ([]hf.Classification, error)
	Summarization(ctx context.Context, req hf.SummarizationRequest) (string, error)
	QuestionAnswering(ctx context.Context, model, question, context string) (hf.QAResult, error)
}

// LLM is the OpenAI-compatible side: generation for the chain endpoints
// plus the model listing proxy.
type LLM interface {
	Generate(ctx context.Context, prompt string) (string, error)
	ListModels(ctx context.Context) ([]openai.Model, error)
}

// DocumentAnswerer runs the document question-answering pipeline.
type DocumentAnswerer interface {
	Answer(ctx context.Context, q service.DocumentQuery) (service.DocumentAnswer, error)
}

// Fixed templates for the chain endpoints.
var (
	summaryTemplate = service.NewPromptTemplate(
		"Summarize the following text in approximately {max_length} words:\n\n{text}\n\nSummary:")
	explanationTemplate = service.NewPromptTemplate(
		"Analyze the sentiment of this text and explain why it has a {sentiment} sentiment:\n\nText: \"{text}\"\n\nExplanation:")
)

// Handler holds the process-wide dependencies for all routes.
type Handler struct {
	hf  Inference
	llm LLM
	rag DocumentAnswerer
	cfg *config.Config
}

func NewHandler(inference Inference, llm LLM, rag DocumentAnswerer, cfg *config.Config) *Handler {
	return &Handler{hf: inference, llm: llm, rag: rag, cfg: cfg}
}

// Health is a simple liveness probe.
func (h *Handler) Health(c *fiber.Ctx) error {
	return c.SendString("ok")
}

// ListModels proxies the model list of the OpenAI-compatible endpoint.
func (h *Handler) ListModels(c *fiber.Ctx) error {
	models, err := h.llm.ListModels(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(models)
}

// TextGeneration forwards a prompt to the text-generation task.
func (h *Handler) TextGeneration(c *fiber.Ctx) error {
	var req model.TextGenerationRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid JSON body")
	}
	if strings.TrimSpace(req.Prompt) == "" {
		return badRequest(c, "Prompt is required")
	}

	maxNewTokens, err := positiveInt(req.MaxNewTokens, 100, "max_new_tokens")
	if err != nil {
		return badRequest(c, err.Error())
	}
	temperature, err := nonNegativeFloat(req.Temperature, 0.7, "temperature")
	if err != nil {
		return badRequest(c, err.Error())
	}

	returnFull := false
	generated, err := h.hf.TextGeneration(c.Context(), hf.TextGenerationRequest{
		Model:  h.cfg.ChatModel,
		Inputs: req.Prompt,
		Parameters: hf.TextGenerationParams{
			MaxNewTokens:   maxNewTokens,
			Temperature:    &temperature,
			ReturnFullText: &returnFull,
		},
	})
	if err != nil {
		return h.fail(c, "Text generation", err)
	}

	return c.JSON(fiber.Map{
		"success":        true,
		"prompt":         req.Prompt,
		"generated_text": generated,
		"model":          h.cfg.ChatModel,
	})
}

// SentimentAnalysis classifies the text with the sentiment model.
func (h *Handler) SentimentAnalysis(c *fiber.Ctx) error {
	var req model.SentimentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid JSON body")
	}
	if strings.TrimSpace(req.Text) == "" {
		return badRequest(c, "Text is required")
	}

	labels, err := h.hf.TextClassification(c.Context(), h.cfg.SentimentModel, req.Text)
	if err != nil {
		return h.fail(c, "Sentiment analysis", err)
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"text":      req.Text,
		"sentiment": labels,
	})
}

// Summarization condenses the text via the summarization task.
func (h *Handler) Summarization(c *fiber.Ctx) error {
	var req model.SummarizationRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid JSON body")
	}
	if strings.TrimSpace(req.Text) == "" {
		return badRequest(c, "Text is required")
	}

	maxLength, err := positiveInt(req.MaxLength, 150, "max_length")
	if err != nil {
		return badRequest(c, err.Error())
	}
	minLength, err := positiveInt(req.MinLength, 30, "min_length")
	if err != nil {
		return badRequest(c, err.Error())
	}

	summary, err := h.hf.Summarization(c.Context(), hf.SummarizationRequest{
		Model:  h.cfg.SummaryModel,
		Inputs: req.Text,
		Parameters: hf.SummarizationParams{
			MaxLength: maxLength,
			MinLength: minLength,
		},
	})
	if err != nil {
		return h.fail(c, "Summarization", err)
	}

	return c.JSON(fiber.Map{
		"success":       true,
		"original_text": req.Text,
		"summary":       summary,
	})
}

// QuestionAnswering extracts an answer from the supplied context.
func (h *Handler) QuestionAnswering(c *fiber.Ctx) error {
	var req model.QuestionAnsweringRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid JSON body")
	}
	if strings.TrimSpace(req.Question) == "" || strings.TrimSpace(req.Context) == "" {
		return badRequest(c, "Both question and context are required")
	}

	result, err := h.hf.QuestionAnswering(c.Context(), h.cfg.QAModel, req.Question, req.Context)
	if err != nil {
		return h.fail(c, "Question answering", err)
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"question":   req.Question,
		"context":    req.Context,
		"answer":     result.Answer,
		"confidence": result.Score,
	})
}

// Prompt renders a user template and generates a continuation for it.
func (h *Handler) Prompt(c *fiber.Ctx) error {
	var req model.PromptRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid JSON body")
	}
	if strings.TrimSpace(req.Template) == "" {
		return badRequest(c, "Template is required")
	}

	tmpl := service.NewPromptTemplate(req.Template)
	formatted, err := tmpl.Format(stringifyVars(req.Variables))
	if err != nil {
		return h.fail(c, "LangChain prompt", err)
	}

	result, err := h.llm.Generate(c.Context(), formatted)
	if err != nil {
		return h.fail(c, "LangChain prompt", err)
	}

	return c.JSON(fiber.Map{
		"success":          true,
		"template":         req.Template,
		"variables":        req.Variables,
		"formatted_prompt": formatted,
		"result":           result,
	})
}

// Chain binds the user's template to the model and runs it with the input.
// The template must declare exactly the "input" variable.
func (h *Handler) Chain(c *fiber.Ctx) error {
	var req model.ChainRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid JSON body")
	}
	if strings.TrimSpace(req.Prompt) == "" || strings.TrimSpace(req.Input) == "" {
		return badRequest(c, "Both prompt and input are required")
	}

	chain := service.NewChain(h.llm, service.NewPromptTemplate(req.Prompt))
	result, err := chain.Run(c.Context(), map[string]string{"input": req.Input})
	if err != nil {
		return h.fail(c, "LangChain chain", err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"prompt":  req.Prompt,
		"input":   req.Input,
		"result":  result,
	})
}

// DocumentQA answers a question over a document via the retrieval pipeline.
func (h *Handler) DocumentQA(c *fiber.Ctx) error {
	var req model.DocumentQARequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid JSON body")
	}
	if strings.TrimSpace(req.Document) == "" || strings.TrimSpace(req.Question) == "" {
		return badRequest(c, "Both document and question are required")
	}

	chunkSize, err := positiveInt(req.ChunkSize, 1000, "chunk_size")
	if err != nil {
		return badRequest(c, err.Error())
	}
	chunkOverlap := 200
	if req.ChunkOverlap != nil {
		if *req.ChunkOverlap < 0 {
			return badRequest(c, "chunk_overlap must be a non-negative integer")
		}
		chunkOverlap = *req.ChunkOverlap
	}
	if chunkOverlap >= chunkSize {
		return badRequest(c, "chunk_overlap must be smaller than chunk_size")
	}

	log.Printf("document qa: %d chars, question %q", len(req.Document), util.TruncateRunes(req.Question, 80))

	answer, err := h.rag.Answer(c.Context(), service.DocumentQuery{
		Document:     req.Document,
		Question:     req.Question,
		ChunkSize:    chunkSize,
		ChunkOverlap: chunkOverlap,
	})
	if err != nil {
		return h.fail(c, "Document QA", err)
	}

	return c.JSON(fiber.Map{
		"success":         true,
		"document_length": len(req.Document),
		"chunks_created":  answer.ChunksCreated,
		"question":        req.Question,
		"answer":          answer.Answer,
	})
}

// SummarizationChain summarizes via the fixed summary template and the
// generation model.
func (h *Handler) SummarizationChain(c *fiber.Ctx) error {
	var req model.SummarizationChainRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid JSON body")
	}
	if strings.TrimSpace(req.Text) == "" {
		return badRequest(c, "Text is required")
	}

	maxLength, err := positiveInt(req.MaxLength, 150, "max_length")
	if err != nil {
		return badRequest(c, err.Error())
	}

	chain := service.NewChain(h.llm, summaryTemplate)
	summary, err := chain.Run(c.Context(), map[string]string{
		"text":       req.Text,
		"max_length": strconv.Itoa(maxLength),
	})
	if err != nil {
		return h.fail(c, "Summarization chain", err)
	}

	return c.JSON(fiber.Map{
		"success":       true,
		"original_text": req.Text,
		"max_length":    maxLength,
		"summary":       summary,
	})
}

// SentimentChain classifies the text, then asks the generation model to
// explain the top label. Two independent upstream calls.
func (h *Handler) SentimentChain(c *fiber.Ctx) error {
	var req model.SentimentChainRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid JSON body")
	}
	if strings.TrimSpace(req.Text) == "" {
		return badRequest(c, "Text is required")
	}

	labels, err := h.hf.TextClassification(c.Context(), h.cfg.SentimentModel, req.Text)
	if err != nil {
		return h.fail(c, "Sentiment chain", err)
	}
	if len(labels) == 0 {
		return h.fail(c, "Sentiment chain", fmt.Errorf("classification returned no labels"))
	}

	chain := service.NewChain(h.llm, explanationTemplate)
	explanation, err := chain.Run(c.Context(), map[string]string{
		"text":      req.Text,
		"sentiment": labels[0].Label,
	})
	if err != nil {
		return h.fail(c, "Sentiment chain", err)
	}

	return c.JSON(fiber.Map{
		"success":            true,
		"text":               req.Text,
		"sentiment_analysis": labels,
		"explanation":        explanation,
	})
}

// DirectCall dispatches the text to one task of the closed set.
func (h *Handler) DirectCall(c *fiber.Ctx) error {
	var req model.DirectCallRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid JSON body")
	}
	if strings.TrimSpace(req.Text) == "" {
		return badRequest(c, "Text is required")
	}

	task, err := ParseTask(req.Task)
	if err != nil {
		return badRequest(c, err.Error())
	}

	var result any
	switch task {
	case TaskTextGeneration:
		generated, err := h.hf.TextGeneration(c.Context(), hf.TextGenerationRequest{
			Model:      h.cfg.ChatModel,
			Inputs:     req.Text,
			Parameters: hf.TextGenerationParams{MaxNewTokens: 100},
		})
		if err != nil {
			return h.fail(c, "Direct HF call", err)
		}
		result = fiber.Map{"generated_text": generated}
	case TaskSentimentAnalysis:
		labels, err := h.hf.TextClassification(c.Context(), h.cfg.SentimentModel, req.Text)
		if err != nil {
			return h.fail(c, "Direct HF call", err)
		}
		result = labels
	case TaskSummarization:
		summary, err := h.hf.Summarization(c.Context(), hf.SummarizationRequest{
			Model:  h.cfg.SummaryModel,
			Inputs: req.Text,
		})
		if err != nil {
			return h.fail(c, "Direct HF call", err)
		}
		result = fiber.Map{"summary_text": summary}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"text":    req.Text,
		"task":    string(task),
		"result":  result,
	})
}

// fail logs the error and writes the uniform failure envelope. 500 is for
// downstream failures only; validation uses badRequest.
func (h *Handler) fail(c *fiber.Ctx, op string, err error) error {
	log.Printf("%s error: %v", op, err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":   op + " failed",
		"details": err.Error(),
	})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

func positiveInt(v *int, def int, name string) (int, error) {
	if v == nil {
		return def, nil
	}
	if *v <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer", name)
	}
	return *v, nil
}

func nonNegativeFloat(v *float64, def float64, name string) (float64, error) {
	if v == nil {
		return def, nil
	}
	if *v < 0 {
		return 0, fmt.Errorf("%s must not be negative", name)
	}
	return *v, nil
}

func stringifyVars(vars map[string]any) map[string]string {
	out := make(map[string]string, len(vars))
	for k, v := range vars {
		switch t := v.(type) {
		case string:
			out[k] = t
		default:
			out[k] = fmt.Sprintf("%v", t)
		}
	}
	return out
}
