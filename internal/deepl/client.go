// Package deepl is a minimal client for the DeepL v2 API: translate,
// rephrase, glossary catalog, usage, and target languages. One request per
// call, blocking, no retries; failures are classified into APIError kinds.
package deepl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/vkozar/redraft/internal/lang"
)

const (
	defaultBaseURL = "https://api.deepl.com"
	freeBaseURL    = "https://api-free.deepl.com"
)

type Client struct {
	authKey string
	baseURL string
	client  *http.Client
}

// NewClient builds a client for the given auth key. serverURL overrides the
// API host; when empty, keys with the ":fx" suffix go to the free-tier host.
func NewClient(authKey, serverURL string) *Client {
	if serverURL == "" {
		serverURL = defaultBaseURL
		if strings.HasSuffix(authKey, ":fx") {
			serverURL = freeBaseURL
		}
	}
	return &Client{
		authKey: authKey,
		baseURL: strings.TrimSuffix(serverURL, "/"),
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// TranslationRequest describes one translate call. SourceLang is optional
// unless GlossaryID is set; glossaries are directional and the provider
// refuses to guess the source side.
type TranslationRequest struct {
	Text       string
	TargetLang lang.Code
	SourceLang lang.Code
	GlossaryID string
	Options    Options
}

// Translation is the first candidate of a translate response. The provider
// may return several; the rest are discarded.
type Translation struct {
	Text                   string    `json:"text"`
	DetectedSourceLanguage lang.Code `json:"detected_source_language"`
}

type translateBody struct {
	Text               []string `json:"text"`
	TargetLang         string   `json:"target_lang"`
	SourceLang         string   `json:"source_lang,omitempty"`
	SplitSentences     string   `json:"split_sentences,omitempty"`
	PreserveFormatting bool     `json:"preserve_formatting,omitempty"`
	Formality          string   `json:"formality,omitempty"`
	GlossaryID         string   `json:"glossary_id,omitempty"`
	ModelType          string   `json:"model_type,omitempty"`
}

// Translate performs one provider request and returns the first translation
// candidate. Empty (post-trim) input is rejected before any network I/O.
func (c *Client) Translate(ctx context.Context, req TranslationRequest) (*Translation, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, fmt.Errorf("nothing to translate: empty input")
	}
	if req.TargetLang == "" {
		return nil, fmt.Errorf("target language required")
	}
	if req.GlossaryID != "" && req.SourceLang == "" {
		return nil, fmt.Errorf("glossary %q requires an explicit source language", req.GlossaryID)
	}

	body := translateBody{
		Text:               []string{req.Text},
		TargetLang:         string(req.TargetLang),
		SourceLang:         string(req.SourceLang),
		SplitSentences:     req.Options.Split.wire(),
		PreserveFormatting: req.Options.PreserveFormatting,
		Formality:          req.Options.Formality.wire(),
		GlossaryID:         req.GlossaryID,
		ModelType:          req.Options.Model.wire(),
	}

	var resp struct {
		Translations []Translation `json:"translations"`
	}
	if err := c.post(ctx, "/v2/translate", body, &resp); err != nil {
		return nil, err
	}
	if len(resp.Translations) == 0 {
		return nil, fmt.Errorf("provider returned no translations")
	}

	t := resp.Translations[0]
	t.Text = repairMojibake(t.Text)
	return &t, nil
}

// RephraseRequest describes one write/rephrase call. At most one of Style
// and Tone may be set; the two parameters are mutually exclusive on the wire.
type RephraseRequest struct {
	Text       string
	TargetLang lang.Code
	Style      string
	Tone       string
}

type rephraseBody struct {
	Text         []string `json:"text"`
	TargetLang   string   `json:"target_lang,omitempty"`
	WritingStyle string   `json:"writing_style,omitempty"`
	Tone         string   `json:"tone,omitempty"`
}

// Rephrase rewrites text via the write endpoint and returns the first
// improvement.
func (c *Client) Rephrase(ctx context.Context, req RephraseRequest) (string, error) {
	if strings.TrimSpace(req.Text) == "" {
		return "", fmt.Errorf("nothing to rephrase: empty input")
	}
	if req.Style != "" && req.Tone != "" {
		return "", fmt.Errorf("writing_style and tone are mutually exclusive")
	}

	body := rephraseBody{
		Text:         []string{req.Text},
		TargetLang:   string(req.TargetLang),
		WritingStyle: req.Style,
		Tone:         req.Tone,
	}

	var resp struct {
		Improvements []struct {
			Text string `json:"text"`
		} `json:"improvements"`
	}
	if err := c.post(ctx, "/v2/write/rephrase", body, &resp); err != nil {
		return "", err
	}
	if len(resp.Improvements) == 0 {
		return "", fmt.Errorf("provider returned no improvements")
	}
	return repairMojibake(resp.Improvements[0].Text), nil
}

// Glossary is one catalog entry. Language codes are base forms; a glossary
// is directional.
type Glossary struct {
	ID         string    `json:"glossary_id"`
	Name       string    `json:"name"`
	SourceLang lang.Code `json:"source_lang"`
	TargetLang lang.Code `json:"target_lang"`
}

// ListGlossaries enumerates the account's glossaries.
func (c *Client) ListGlossaries(ctx context.Context) ([]Glossary, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v2/glossaries", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "DeepL-Auth-Key "+c.authKey)

	var resp struct {
		Glossaries []Glossary `json:"glossaries"`
	}
	if err := c.do(httpReq, &resp); err != nil {
		return nil, err
	}
	return resp.Glossaries, nil
}

// Usage is the account's character quota status.
type Usage struct {
	CharacterCount int64 `json:"character_count"`
	CharacterLimit int64 `json:"character_limit"`
}

func (c *Client) Usage(ctx context.Context) (*Usage, error) {
	var u Usage
	if err := c.post(ctx, "/v2/usage", map[string]string{"type": "target"}, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Language is one supported target language.
type Language struct {
	Code              lang.Code `json:"language"`
	Name              string    `json:"name"`
	SupportsFormality bool      `json:"supports_formality"`
}

// TargetLanguages lists the languages the provider can translate into.
func (c *Client) TargetLanguages(ctx context.Context) ([]Language, error) {
	var langs []Language
	if err := c.post(ctx, "/v2/languages", map[string]string{"type": "target"}, &langs); err != nil {
		return nil, err
	}
	return langs, nil
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "DeepL-Auth-Key "+c.authKey)
	return c.do(httpReq, out)
}

func (c *Client) do(httpReq *http.Request, out any) error {
	resp, err := c.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return classify(resp.StatusCode, readErrorMessage(resp.Body))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// readErrorMessage extracts the provider's {"message": ...} error text,
// falling back to the raw body.
func readErrorMessage(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil {
		return ""
	}
	var payload struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(raw, &payload) == nil && payload.Message != "" {
		return payload.Message
	}
	return strings.TrimSpace(string(raw))
}
