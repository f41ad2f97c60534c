package provider

import (
	"os"

	"github.com/anthropics/anthropic-sdk-go"
)

// NewAnthropicClient returns a client using API key from the env.
func NewAnthropicClient() *anthropic.Client {
	c := anthropic.NewClient()
	return &c
}

const DefaultModel = anthropic.ModelClaude3_7SonnetLatest

// Model returns the model to use, honouring an OMNIBOOK_MODEL override.
func Model() anthropic.Model {
	if v := os.Getenv("OMNIBOOK_MODEL"); v != "" {
		return anthropic.Model(v)
	}
	return DefaultModel
}
