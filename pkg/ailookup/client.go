// Package ailookup autofills medicine details from a model API. The upstream
// service takes a medicine name and returns structured attributes used to
// pre-populate the inventory form.
package ailookup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// MedicineDetails holds the attributes the lookup service can autofill
type MedicineDetails struct {
	GenericName      string  `json:"generic_name"`
	Manufacturer     string  `json:"manufacturer"`
	Category         string  `json:"category"`
	HSNCode          string  `json:"hsn_code"`
	StorageCondition string  `json:"storage_condition"`
	GSTPercentage    float64 `json:"gst_percentage"`
	Description      string  `json:"description"`
}

// Client calls the generative model REST endpoint
type Client struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
}

const defaultEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/gemini-1.5-flash:generateContent"

// New creates a lookup client. Returns nil when apiKey is empty so callers
// can treat the feature as disabled.
func New(apiKey string) *Client {
	if apiKey == "" {
		return nil
	}
	return &Client{
		apiKey:   apiKey,
		endpoint: defaultEndpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// NewWithEndpoint creates a lookup client against a custom endpoint (tests)
func NewWithEndpoint(apiKey, endpoint string) *Client {
	c := New(apiKey)
	if c != nil && endpoint != "" {
		c.endpoint = endpoint
	}
	return c
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

const promptTemplate = `You are a pharmacy inventory assistant. For the medicine named %q, reply with ONLY a JSON object (no markdown) with these keys: generic_name, manufacturer, category (one of Tablet, Syrup, Injection, Ointment, Drops), hsn_code, storage_condition, gst_percentage (number), description.`

// LookupMedicine asks the model for details of the named medicine
func (c *Client) LookupMedicine(ctx context.Context, name string) (*MedicineDetails, error) {
	reqBody := generateRequest{
		Contents: []content{{Parts: []part{{Text: fmt.Sprintf(promptTemplate, name)}}}},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	url := c.endpoint + "?key=" + c.apiKey
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ailookup: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ailookup: upstream returned status %d", resp.StatusCode)
	}

	var genResp generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		return nil, fmt.Errorf("ailookup: decoding response: %w", err)
	}

	if len(genResp.Candidates) == 0 || len(genResp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("ailookup: empty response")
	}

	text := genResp.Candidates[0].Content.Parts[0].Text
	text = strings.TrimSpace(text)
	// Models sometimes wrap JSON in a fenced code block despite instructions
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	var details MedicineDetails
	if err := json.Unmarshal([]byte(text), &details); err != nil {
		return nil, fmt.Errorf("ailookup: parsing model output: %w", err)
	}

	return &details, nil
}
