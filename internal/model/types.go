package model

// Request bodies for every endpoint. Optional numeric fields are pointers so
// an absent value can be told apart from an explicit zero: absent means
// "use the default", an explicit non-positive value is rejected.

type TextGenerationRequest struct {
	Prompt       string   `json:"prompt"`
	MaxNewTokens *int     `json:"max_new_tokens,omitempty"`
	Temperature  *float64 `json:"temperature,omitempty"`
}

type SentimentRequest struct {
	Text string `json:"text"`
}

type SummarizationRequest struct {
	Text      string `json:"text"`
	MaxLength *int   `json:"max_length,omitempty"`
	MinLength *int   `json:"min_length,omitempty"`
}

type QuestionAnsweringRequest struct {
	Question string `json:"question"`
	Context  string `json:"context"`
}

type PromptRequest struct {
	Template  string         `json:"template"`
	Variables map[string]any `json:"variables,omitempty"`
}

type ChainRequest struct {
	Prompt string `json:"prompt"`
	Input  string `json:"input"`
}

type DocumentQARequest struct {
	Document     string `json:"document"`
	Question     string `json:"question"`
	ChunkSize    *int   `json:"chunk_size,omitempty"`
	ChunkOverlap *int   `json:"chunk_overlap,omitempty"`
}

type SummarizationChainRequest struct {
	Text      string `json:"text"`
	MaxLength *int   `json:"max_length,omitempty"`
}

type SentimentChainRequest struct {
	Text string `json:"text"`
}

type DirectCallRequest struct {
	Text string `json:"text"`
	Task string `json:"task,omitempty"`
}
