// Package enrich calls the external generative service that turns a raw
// lead submission into a formatted summary. The service answers with text
// that must parse as the declared JSON schema; anything else is a failure
// the caller degrades around.
package enrich

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com"
	defaultModel   = "gemini-2.0-flash"
)

type Request struct {
	Name          string
	Email         string
	Budget        string
	Message       string
	ReferenceCode string
}

// Result is the structured output the service is asked to produce.
type Result struct {
	Success        bool   `json:"success"`
	EmailFormatted string `json:"emailFormatted"`
	ReferenceCode  string `json:"referenceCode"`
}

type Client struct {
	baseURL string
	apiKey  string
	model   string
	http    *http.Client
}

func New(baseURL, apiKey, model string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if model == "" {
		model = defaultModel
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
		http:    &http.Client{Timeout: 20 * time.Second},
	}
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMIMEType string `json:"responseMimeType"`
}

// Summarize asks the service for a client-facing summary of the submission.
func (c *Client) Summarize(ctx context.Context, req Request) (Result, error) {
	prompt := fmt.Sprintf(
		"A design studio received a project inquiry. Write a short, friendly summary "+
			"of it suitable for a confirmation email.\n\n"+
			"Name: %s\nEmail: %s\nBudget: %s\nMessage: %s\n\n"+
			"Respond with JSON only, matching exactly: "+
			`{"success": true, "emailFormatted": "<summary text>", "referenceCode": %q}`,
		req.Name, req.Email, req.Budget, req.Message, req.ReferenceCode,
	)

	payload, _ := json.Marshal(generateRequest{
		Contents:         []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{ResponseMIMEType: "application/json"},
	})

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return Result{}, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return Result{}, fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Result{}, fmt.Errorf("enrichment service: status %d", resp.StatusCode)
	}

	var body struct {
		Candidates []struct {
			Content struct {
				Parts []part `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Result{}, fmt.Errorf("decode response: %w", err)
	}
	if len(body.Candidates) == 0 || len(body.Candidates[0].Content.Parts) == 0 {
		return Result{}, fmt.Errorf("enrichment service: empty response")
	}

	var result Result
	if err := json.Unmarshal([]byte(body.Candidates[0].Content.Parts[0].Text), &result); err != nil {
		return Result{}, fmt.Errorf("parse result: %w", err)
	}
	if !result.Success || result.EmailFormatted == "" || result.ReferenceCode == "" {
		return Result{}, fmt.Errorf("enrichment service: incomplete result")
	}

	return result, nil
}
