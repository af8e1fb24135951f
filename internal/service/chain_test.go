package service

import (
	"context"
	"errors"
	"testing"
)

type fakeModel struct {
	prompts []string
	reply   string
	err     error
}

func (m *fakeModel) Generate(ctx context.Context, prompt string) (string, error) {
	m.prompts = append(m.prompts, prompt)
	return m.reply, m.err
}

func TestChainRunFormatsAndGenerates(t *testing.T) {
	llm := &fakeModel{reply: "a poem about cats"}
	chain := NewChain(llm, NewPromptTemplate("Write a poem about {input}"))

	got, err := chain.Run(context.Background(), map[string]string{"input": "cats"})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if got != "a poem about cats" {
		t.Errorf("unexpected result: %q", got)
	}
	if len(llm.prompts) != 1 || llm.prompts[0] != "Write a poem about cats" {
		t.Errorf("model received wrong prompt: %v", llm.prompts)
	}
}

func TestChainRunMismatchSkipsModel(t *testing.T) {
	llm := &fakeModel{reply: "never"}
	chain := NewChain(llm, NewPromptTemplate("Write a poem about {input}"))

	_, err := chain.Run(context.Background(), map[string]string{"topic": "cats"})
	if err == nil {
		t.Fatal("expected mismatch error")
	}
	var mismatch *MismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected *MismatchError, got %T", err)
	}
	if len(llm.prompts) != 0 {
		t.Error("model must not be called when formatting fails")
	}
}

func TestChainRunPropagatesModelError(t *testing.T) {
	llm := &fakeModel{err: errors.New("upstream down")}
	chain := NewChain(llm, NewPromptTemplate("{input}"))

	_, err := chain.Run(context.Background(), map[string]string{"input": "x"})
	if err == nil || err.Error() != "upstream down" {
		t.Errorf("expected model error, got %v", err)
	}
}
