// Package gemini is a thin client for the generative parse endpoint. The
// model itself is an external service; this package only shapes the request
// and decodes the structured response.
package gemini

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const baseURL = "https://generativelanguage.googleapis.com/v1beta/models"

// ParsedEvent is one event extracted from free text or a flyer image. All
// fields are best-effort; callers validate and cross-reference them.
type ParsedEvent struct {
	EventName        string `json:"event_name"`
	EventDateTime    string `json:"event_date_time"`
	EventAddress     string `json:"event_address"`
	EventCountryCode string `json:"event_country_code"`
	VenueName        string `json:"venue_name"`
	PerformerName    string `json:"performer_name"`
	Description      string `json:"event_description"`
	RegistrationURL  string `json:"registration_url"`
	SocialImage      string `json:"social_image"`
}

type Client struct {
	httpClient *http.Client
	apiKey     string
	model      string
}

func NewClient(apiKey, model string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		apiKey:     apiKey,
		model:      model,
	}
}

const parsePrompt = `Extract all events from the provided details.
Respond with a JSON array only, one object per event, with these keys:
event_name, event_date_time (ISO 8601), event_address, event_country_code,
venue_name, performer_name, event_description, registration_url.
Use empty strings for unknown values.`

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
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

// ParseEvent sends the free-text details and optional image to the model and
// returns the extracted events.
func (c *Client) ParseEvent(ctx context.Context, details string, image []byte, imageMime string) ([]*ParsedEvent, error) {
	parts := []part{{Text: parsePrompt}}
	if details != "" {
		parts = append(parts, part{Text: details})
	}
	if len(image) != 0 {
		parts = append(parts, part{InlineData: &inlineData{
			MimeType: imageMime,
			Data:     base64.StdEncoding.EncodeToString(image),
		}})
	}

	body, err := json.Marshal(&generateRequest{Contents: []content{{Parts: parts}}})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/%s:generateContent?key=%s", baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call model: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("model returned status %d: %s", resp.StatusCode, msg)
	}

	var gr generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("empty model response")
	}

	return decodeEvents(gr.Candidates[0].Content.Parts[0].Text)
}

// decodeEvents tolerates the model wrapping its JSON in a markdown fence.
func decodeEvents(text string) ([]*ParsedEvent, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	var events []*ParsedEvent
	if err := json.Unmarshal([]byte(text), &events); err != nil {
		// Single-object responses happen for single-event flyers.
		single := &ParsedEvent{}
		if err2 := json.Unmarshal([]byte(text), single); err2 != nil {
			return nil, fmt.Errorf("decode events: %w", err)
		}
		events = []*ParsedEvent{single}
	}

	return events, nil
}
