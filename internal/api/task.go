package api

import "errors"

// Task is the closed set of operations /direct-hf-call dispatches on.
type Task string

const (
	TaskTextGeneration    Task = "text-generation"
	TaskSentimentAnalysis Task = "sentiment-analysis"
	TaskSummarization     Task = "summarization"
)

var errUnsupportedTask = errors.New("Unsupported task. Use: text-generation, sentiment-analysis, or summarization")

// ParseTask maps a request value onto the task set. An empty value selects
// text generation; anything outside the set is a validation error.
func ParseTask(s string) (Task, error) {
	switch Task(s) {
	case "":
		return TaskTextGeneration, nil
	case TaskTextGeneration, TaskSentimentAnalysis, TaskSummarization:
		return Task(s), nil
	default:
		return "", errUnsupportedTask
	}
}
