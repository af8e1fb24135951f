package service

import "context"

// Chain binds a prompt template to a text model: running it renders the
// template and forwards the result to the model in one step.
type Chain struct {
	llm    TextModel
	prompt *PromptTemplate
}

func NewChain(llm TextModel, prompt *PromptTemplate) *Chain {
	return &Chain{llm: llm, prompt: prompt}
}

// Run formats the template with vars and generates a continuation.
func (c *Chain) Run(ctx context.Context, vars map[string]string) (string, error) {
	rendered, err := c.prompt.Format(vars)
	if err != nil {
		return "", err
	}
	return c.llm.Generate(ctx, rendered)
}
