package hf

import (
	"context"
	"encoding/json"
	"fmt"
)

// TextGenerationParams mirror the task's generation knobs on the wire.
type TextGenerationParams struct {
	MaxNewTokens   int      `json:"max_new_tokens,omitempty"`
	Temperature    *float64 `json:"temperature,omitempty"`
	ReturnFullText *bool    `json:"return_full_text,omitempty"`
}

type TextGenerationRequest struct {
	Model      string
	Inputs     string
	Parameters TextGenerationParams
}

type textGenerationPayload struct {
	Inputs     string               `json:"inputs"`
	Parameters TextGenerationParams `json:"parameters"`
}

type generatedText struct {
	GeneratedText string `json:"generated_text"`
}

// TextGeneration continues a prompt and returns the generated text.
func (c *Client) TextGeneration(ctx context.Context, req TextGenerationRequest) (string, error) {
	var out []generatedText
	payload := textGenerationPayload{Inputs: req.Inputs, Parameters: req.Parameters}
	if err := c.post(ctx, req.Model, payload, &out); err != nil {
		return "", err
	}
	if len(out) == 0 {
		return "", fmt.Errorf("text generation returned no candidates")
	}
	return out[0].GeneratedText, nil
}

// Classification is one label with its score.
type Classification struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

type classificationPayload struct {
	Inputs string `json:"inputs"`
}

// TextClassification scores the text against every label of the model.
// The API wraps the label list in an extra array for single inputs, so both
// shapes are accepted.
func (c *Client) TextClassification(ctx context.Context, model, text string) ([]Classification, error) {
	var raw json.RawMessage
	if err := c.post(ctx, model, classificationPayload{Inputs: text}, &raw); err != nil {
		return nil, err
	}

	var nested [][]Classification
	if err := json.Unmarshal(raw, &nested); err == nil && len(nested) > 0 {
		return nested[0], nil
	}
	var flat []Classification
	if err := json.Unmarshal(raw, &flat); err != nil {
		return nil, fmt.Errorf("decoding classification result: %w", err)
	}
	if len(flat) == 0 {
		return nil, fmt.Errorf("classification returned no labels")
	}
	return flat, nil
}

type SummarizationParams struct {
	MaxLength int `json:"max_length,omitempty"`
	MinLength int `json:"min_length,omitempty"`
}

type SummarizationRequest struct {
	Model      string
	Inputs     string
	Parameters SummarizationParams
}

type summarizationPayload struct {
	Inputs     string              `json:"inputs"`
	Parameters SummarizationParams `json:"parameters"`
}

type summaryText struct {
	SummaryText string `json:"summary_text"`
}

// Summarization condenses the input text.
func (c *Client) Summarization(ctx context.Context, req SummarizationRequest) (string, error) {
	var out []summaryText
	payload := summarizationPayload{Inputs: req.Inputs, Parameters: req.Parameters}
	if err := c.post(ctx, req.Model, payload, &out); err != nil {
		return "", err
	}
	if len(out) == 0 {
		return "", fmt.Errorf("summarization returned no result")
	}
	return out[0].SummaryText, nil
}

type questionAnsweringPayload struct {
	Inputs struct {
		Question string `json:"question"`
		Context  string `json:"context"`
	} `json:"inputs"`
}

// QAResult is an extractive answer with the model's confidence.
type QAResult struct {
	Answer string  `json:"answer"`
	Score  float64 `json:"score"`
}

// QuestionAnswering extracts an answer to the question from the context.
func (c *Client) QuestionAnswering(ctx context.Context, model, question, context string) (QAResult, error) {
	var payload questionAnsweringPayload
	payload.Inputs.Question = question
	payload.Inputs.Context = context

	var out QAResult
	if err := c.post(ctx, model, payload, &out); err != nil {
		return QAResult{}, err
	}
	return out, nil
}
