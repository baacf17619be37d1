// Package provider constructs the Messages API client.
package provider

import (
	"os"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// DefaultModel is used when HK_MODEL is unset.
const DefaultModel = anthropic.ModelClaude3_7SonnetLatest

// NewClient returns a client using the API key from the env. HK_BASE_URL
// points it at a gateway or compatible endpoint when set.
func NewClient() *anthropic.Client {
	var opts []option.RequestOption
	if base := os.Getenv("HK_BASE_URL"); base != "" {
		opts = append(opts, option.WithBaseURL(base))
	}
	c := anthropic.NewClient(opts...)
	return &c
}

// Model returns the configured model id.
func Model() anthropic.Model {
	if m := os.Getenv("HK_MODEL"); m != "" {
		return anthropic.Model(m)
	}
	return DefaultModel
}
