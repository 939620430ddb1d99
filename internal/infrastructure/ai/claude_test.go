package ai

import (
	"errors"
	"testing"
)

func TestNewClaudeService(t *testing.T) {
	t.Run("missing api key", func(t *testing.T) {
		_, err := NewClaudeService("", "")
		if !errors.Is(err, ErrMissingAnthropicAPIKey) {
			t.Fatalf("expected ErrMissingAnthropicAPIKey, got %v", err)
		}
	})

	t.Run("default model", func(t *testing.T) {
		svc, err := NewClaudeService("key", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if svc.model != defaultModel {
			t.Fatalf("expected %q, got %q", defaultModel, svc.model)
		}
	})
}

func TestDecodeJSONReply(t *testing.T) {
	t.Run("plain json", func(t *testing.T) {
		var out struct {
			Material string `json:"material"`
		}
		if err := decodeJSONReply(`{"material":"steel"}`, &out); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Material != "steel" {
			t.Fatalf("expected steel, got %q", out.Material)
		}
	})

	t.Run("json wrapped in prose and fences", func(t *testing.T) {
		reply := "Here is the extraction:\n```json\n{\"material\":\"aluminum\",\"complexity\":3}\n```\nLet me know if you need more."
		var out struct {
			Material   string `json:"material"`
			Complexity int    `json:"complexity"`
		}
		if err := decodeJSONReply(reply, &out); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Material != "aluminum" || out.Complexity != 3 {
			t.Fatalf("unexpected decode: %+v", out)
		}
	})

	t.Run("no json object", func(t *testing.T) {
		var out map[string]any
		if err := decodeJSONReply("I could not read the drawing.", &out); err == nil {
			t.Fatalf("expected an error")
		}
	})
}

func TestNormalizeConfidence(t *testing.T) {
	cases := map[float64]float64{
		85:   0.85,
		100:  1,
		150:  1,
		0.85: 0.85,
		1:    1,
		0:    0,
		-5:   0,
	}
	for in, want := range cases {
		if got := normalizeConfidence(in); got != want {
			t.Fatalf("confidence %v: expected %v, got %v", in, want, got)
		}
	}
}

func TestNormalizeImageMediaType(t *testing.T) {
	if got := normalizeImageMediaType("image/png"); got != "image/png" {
		t.Fatalf("expected image/png, got %q", got)
	}
	if got := normalizeImageMediaType("application/octet-stream"); got != "image/jpeg" {
		t.Fatalf("expected jpeg fallback, got %q", got)
	}
}
