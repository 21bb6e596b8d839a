package deepl

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

// newTestClient points a Client at an httptest server.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient("test-key", server.URL)
}

func TestTranslate_FirstCandidateOnly(t *testing.T) {
	var calls int
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if r.URL.Path != "/v2/translate" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "DeepL-Auth-Key test-key" {
			t.Errorf("unexpected auth header %q", got)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"translations": []map[string]string{
				{"detected_source_language": "DE", "text": "Hello world"},
				{"detected_source_language": "DE", "text": "Hi world"},
			},
		})
	})

	result, err := client.Translate(context.Background(), TranslationRequest{
		Text:       "Hallo Welt",
		TargetLang: "EN-US",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Text != "Hello world" {
		t.Errorf("expected first candidate, got %q", result.Text)
	}
	if result.DetectedSourceLanguage != "DE" {
		t.Errorf("expected detected source DE, got %q", result.DetectedSourceLanguage)
	}
	if calls != 1 {
		t.Errorf("expected exactly one provider call, got %d", calls)
	}
}

func TestTranslate_RequestParameters(t *testing.T) {
	var body map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"translations": []map[string]string{{"text": "ok"}},
		})
	})

	_, err := client.Translate(context.Background(), TranslationRequest{
		Text:       "Hallo",
		TargetLang: "EN-US",
		SourceLang: "DE",
		GlossaryID: "g-123",
		Options: Options{
			Split:              SplitNoNewlines,
			PreserveFormatting: true,
			Formality:          FormalityMore,
			Model:              ModelPreferQuality,
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	texts, _ := body["text"].([]any)
	if len(texts) != 1 || texts[0] != "Hallo" {
		t.Errorf("unexpected text field %v", body["text"])
	}
	want := map[string]string{
		"target_lang":     "EN-US",
		"source_lang":     "DE",
		"glossary_id":     "g-123",
		"split_sentences": "nonewlines",
		"formality":       "more",
		"model_type":      "prefer_quality_optimized",
	}
	for key, val := range want {
		if body[key] != val {
			t.Errorf("%s = %v, want %q", key, body[key], val)
		}
	}
	if body["preserve_formatting"] != true {
		t.Errorf("preserve_formatting = %v, want true", body["preserve_formatting"])
	}
}

func TestTranslate_SplitModeEncodings(t *testing.T) {
	tests := []struct {
		mode SplitMode
		want string
	}{
		{SplitAll, "1"},
		{SplitNone, "0"},
		{SplitNoNewlines, "nonewlines"},
	}
	for _, tt := range tests {
		var body map[string]any
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			json.NewDecoder(r.Body).Decode(&body)
			json.NewEncoder(w).Encode(map[string]any{
				"translations": []map[string]string{{"text": "ok"}},
			})
		})
		_, err := client.Translate(context.Background(), TranslationRequest{
			Text:       "x",
			TargetLang: "EN",
			Options:    Options{Split: tt.mode},
		})
		if err != nil {
			t.Fatalf("split mode %v: unexpected error: %v", tt.mode, err)
		}
		if body["split_sentences"] != tt.want {
			t.Errorf("split mode %v encoded as %v, want %q", tt.mode, body["split_sentences"], tt.want)
		}
	}
}

func TestTranslate_DefaultSplitModeOmitted(t *testing.T) {
	var body map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&body)
		json.NewEncoder(w).Encode(map[string]any{
			"translations": []map[string]string{{"text": "ok"}},
		})
	})

	_, err := client.Translate(context.Background(), TranslationRequest{Text: "x", TargetLang: "EN"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, present := body["split_sentences"]; present {
		t.Errorf("split_sentences must be omitted for the zero option set, got %v", body["split_sentences"])
	}
}

func TestTranslate_EmptyInputRejectedBeforeNetwork(t *testing.T) {
	var calls int
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
	})

	if _, err := client.Translate(context.Background(), TranslationRequest{Text: "   \n", TargetLang: "EN"}); err == nil {
		t.Error("expected error for blank input")
	}
	if calls != 0 {
		t.Errorf("expected no provider call, got %d", calls)
	}
}

func TestTranslate_GlossaryRequiresSourceLang(t *testing.T) {
	var calls int
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
	})

	_, err := client.Translate(context.Background(), TranslationRequest{
		Text:       "Hallo",
		TargetLang: "EN",
		GlossaryID: "g-1",
	})
	if err == nil {
		t.Error("expected error when glossary set without source language")
	}
	if calls != 0 {
		t.Errorf("expected no provider call, got %d", calls)
	}
}

func TestTranslate_ErrorClassification(t *testing.T) {
	tests := []struct {
		status int
		kind   Kind
	}{
		{400, KindBadRequest},
		{403, KindUnauthorized},
		{404, KindNotFound},
		{413, KindPayloadTooLarge},
		{429, KindRateLimited},
		{456, KindQuotaExceeded},
		{503, KindServiceUnavailable},
		{500, KindInternal},
		{418, KindInternal},
	}
	for _, tt := range tests {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tt.status)
			json.NewEncoder(w).Encode(map[string]string{"message": "provider says no"})
		})

		_, err := client.Translate(context.Background(), TranslationRequest{Text: "x", TargetLang: "EN"})
		if err == nil {
			t.Fatalf("status %d: expected error", tt.status)
		}

		var apiErr *APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("status %d: expected *APIError, got %T", tt.status, err)
		}
		if apiErr.Kind != tt.kind {
			t.Errorf("status %d: kind = %v, want %v", tt.status, apiErr.Kind, tt.kind)
		}
		if apiErr.Message != "provider says no" {
			t.Errorf("status %d: provider message not preserved: %q", tt.status, apiErr.Message)
		}
	}
}

func TestTranslate_MojibakeRepaired(t *testing.T) {
	// UTF-8 "Müller" decoded as Latin-1 arrives as "MÃ¼ller".
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"translations": []map[string]string{{"text": "MÃ¼ller"}},
		})
	})

	result, err := client.Translate(context.Background(), TranslationRequest{Text: "x", TargetLang: "DE"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Text != "Müller" {
		t.Errorf("mojibake not repaired: %q", result.Text)
	}
}

func TestRephrase_StyleAndToneMutuallyExclusive(t *testing.T) {
	client := NewClient("k", "http://unused.invalid")

	_, err := client.Rephrase(context.Background(), RephraseRequest{
		Text:  "hello",
		Style: "prefer_academic",
		Tone:  "prefer_friendly",
	})
	if err == nil {
		t.Error("expected error when both style and tone set")
	}
}

func TestRephrase_RequestAndResponse(t *testing.T) {
	var body map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2/write/rephrase" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&body)
		json.NewEncoder(w).Encode(map[string]any{
			"improvements": []map[string]string{{"text": "Greetings"}},
		})
	})

	got, err := client.Rephrase(context.Background(), RephraseRequest{
		Text:  "hello",
		Style: "prefer_business",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Greetings" {
		t.Errorf("expected first improvement, got %q", got)
	}
	if body["writing_style"] != "prefer_business" {
		t.Errorf("writing_style = %v", body["writing_style"])
	}
	if _, present := body["tone"]; present {
		t.Error("tone must be absent when writing_style is set")
	}
}

func TestListGlossaries(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/v2/glossaries" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"glossaries": []map[string]string{
				{"glossary_id": "g-1", "name": "tech", "source_lang": "de", "target_lang": "en"},
			},
		})
	})

	glossaries, err := client.ListGlossaries(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(glossaries) != 1 || glossaries[0].ID != "g-1" || glossaries[0].Name != "tech" {
		t.Errorf("unexpected glossaries %+v", glossaries)
	}
}

func TestUsage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v2/usage" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["type"] != "target" {
			t.Errorf("expected type=target, got %v", body)
		}
		json.NewEncoder(w).Encode(map[string]int64{
			"character_count": 12345,
			"character_limit": 500000,
		})
	})

	u, err := client.Usage(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.CharacterCount != 12345 || u.CharacterLimit != 500000 {
		t.Errorf("unexpected usage %+v", u)
	}
}

func TestTargetLanguages(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]map[string]any{
			{"language": "EN-US", "name": "English (American)", "supports_formality": false},
			{"language": "DE", "name": "German", "supports_formality": true},
		})
	})

	langs, err := client.TargetLanguages(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(langs) != 2 || langs[1].Code != "DE" || !langs[1].SupportsFormality {
		t.Errorf("unexpected languages %+v", langs)
	}
}

func TestNewClient_FreeKeyHost(t *testing.T) {
	c := NewClient("abc:fx", "")
	if c.baseURL != freeBaseURL {
		t.Errorf("free-tier key should select %s, got %s", freeBaseURL, c.baseURL)
	}
	c = NewClient("abc", "")
	if c.baseURL != defaultBaseURL {
		t.Errorf("paid key should select %s, got %s", defaultBaseURL, c.baseURL)
	}
}
