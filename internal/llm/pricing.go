package llm

import (
	"regexp"
	"strings"
)

// ModelCost is the list price of a model in USD. Token prices are per
// million tokens; PerImage is charged per call for models billed by the
// picture (DALL·E reports no token usage).
type ModelCost struct {
	InputPerMTok  float64
	OutputPerMTok float64
	PerImage      float64
}

// Cost returns the estimated USD cost of calls requests that used the
// given token totals.
func (c ModelCost) Cost(calls, inputTokens, outputTokens int) float64 {
	return float64(inputTokens)*c.InputPerMTok/1_000_000 +
		float64(outputTokens)*c.OutputPerMTok/1_000_000 +
		float64(calls)*c.PerImage
}

var snapshotSuffix = regexp.MustCompile(`-(\d{8}|\d{4}-\d{2}-\d{2})$`)

// LookupCost returns the pricing for a model ID as recorded in the event
// log, or nil if unknown. OpenRouter vendor prefixes and the Gemini
// "models/" prefix are ignored, and a dated snapshot is priced like its
// alias.
func LookupCost(modelID string) *ModelCost {
	id := strings.ToLower(strings.TrimSpace(modelID))
	id = strings.TrimPrefix(id, "models/")
	if i := strings.LastIndexByte(id, '/'); i >= 0 {
		id = id[i+1:]
	}
	for _, candidate := range []string{id, snapshotSuffix.ReplaceAllString(id, "")} {
		if c, ok := modelCosts[candidate]; ok {
			return &c
		}
	}
	return nil
}

// modelCosts covers the defaults and common alternatives of each
// backend. Last updated: 2026-02-15.
var modelCosts = map[string]ModelCost{
	// Anthropic (text only)
	"claude-3-5-haiku":  {InputPerMTok: 0.8, OutputPerMTok: 4},
	"claude-haiku-4-5":  {InputPerMTok: 1, OutputPerMTok: 5},
	"claude-haiku-4.5":  {InputPerMTok: 1, OutputPerMTok: 5},
	"claude-sonnet-4":   {InputPerMTok: 3, OutputPerMTok: 15},
	"claude-sonnet-4-5": {InputPerMTok: 3, OutputPerMTok: 15},
	"claude-sonnet-4.5": {InputPerMTok: 3, OutputPerMTok: 15},
	"claude-opus-4-1":   {InputPerMTok: 15, OutputPerMTok: 75},
	"claude-opus-4-5":   {InputPerMTok: 5, OutputPerMTok: 25},

	// OpenAI text
	"gpt-4o":       {InputPerMTok: 2.5, OutputPerMTok: 10},
	"gpt-4o-mini":  {InputPerMTok: 0.15, OutputPerMTok: 0.6},
	"gpt-4.1":      {InputPerMTok: 2, OutputPerMTok: 8},
	"gpt-4.1-mini": {InputPerMTok: 0.4, OutputPerMTok: 1.6},
	"gpt-4.1-nano": {InputPerMTok: 0.1, OutputPerMTok: 0.4},
	"gpt-5-mini":   {InputPerMTok: 0.25, OutputPerMTok: 2},
	"gpt-5-nano":   {InputPerMTok: 0.05, OutputPerMTok: 0.4},

	// OpenAI images
	"dall-e-2":         {PerImage: 0.02},
	"dall-e-3":         {PerImage: 0.04},
	"gpt-image-1":      {InputPerMTok: 5, OutputPerMTok: 40},
	"gpt-image-1-mini": {InputPerMTok: 2, OutputPerMTok: 8},

	// Google Gemini text
	"gemini-2.0-flash":      {InputPerMTok: 0.1, OutputPerMTok: 0.4},
	"gemini-2.0-flash-lite": {InputPerMTok: 0.075, OutputPerMTok: 0.3},
	"gemini-2.5-flash":      {InputPerMTok: 0.3, OutputPerMTok: 2.5},
	"gemini-2.5-flash-lite": {InputPerMTok: 0.1, OutputPerMTok: 0.4},
	"gemini-2.5-pro":        {InputPerMTok: 1.25, OutputPerMTok: 10},
	"gemini-flash-latest":   {InputPerMTok: 0.3, OutputPerMTok: 2.5},

	// Google Gemini images; output tokens are the picture.
	"gemini-2.5-flash-image":         {InputPerMTok: 0.3, OutputPerMTok: 30},
	"gemini-2.5-flash-image-preview": {InputPerMTok: 0.3, OutputPerMTok: 30},
}
