package config

import (
	"os"
	"strconv"
)

type Config struct {
	ServerAddr string
	APIKey     string

	// HF task API (text generation, classification, summarization, extractive QA)
	HFBaseURL string

	// OpenAI-compatible endpoint for chat generation and embeddings
	LLMBaseURL string
	ChatModel  string
	EmbedModel string

	SentimentModel string
	SummaryModel   string
	QAModel        string

	Temperature float32
	TopK        int
}

func Load() *Config {
	return &Config{
		ServerAddr:     ":" + getenv("PORT", "3000"),
		APIKey:         getenv("HUGGINGFACE_API_KEY", ""),
		HFBaseURL:      getenv("HF_BASE_URL", "https://api-inference.huggingface.co/models"),
		LLMBaseURL:     getenv("LLM_BASE_URL", "https://router.huggingface.co/v1"),
		ChatModel:      getenv("LLM_MODEL", "gpt-model"),
		EmbedModel:     getenv("EMBED_MODEL", "sentence-transformers/all-MiniLM-L6-v2"),
		SentimentModel: getenv("SENTIMENT_MODEL", "cardiffnlp/twitter-roberta-base-sentiment-latest"),
		SummaryModel:   getenv("SUMMARY_MODEL", "facebook/bart-large-cnn"),
		QAModel:        getenv("QA_MODEL", "deepset/roberta-base-squad2"),
		Temperature:    getenvFloat("LLM_TEMPERATURE", 0.7),
		TopK:           getenvInt("TOP_K", 4),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func getenvFloat(k string, def float32) float32 {
	if v := os.Getenv(k); v != "" {
		if f, err := strconv.ParseFloat(v, 32); err == nil && f >= 0 {
			return float32(f)
		}
	}
	return def
}
