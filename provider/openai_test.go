package provider

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ZaguanLabs/lexiloc"
)

func TestBuildSystemPrompt(t *testing.T) {
	p := NewOpenAIFiller(OpenAIConfig{APIKey: "test"})

	req := FillRequest{
		TargetLang: "es_ES",
		SourceLang: "en",
	}

	prompt := p.buildSystemPrompt(req)

	if !strings.Contains(prompt, "European Spanish") && !strings.Contains(prompt, "Spanish") {
		t.Error("Prompt should contain target language name")
	}
	if !strings.Contains(prompt, "translations") {
		t.Error("Prompt should describe the expected JSON shape")
	}
}

func TestBuildSystemPrompt_DefaultSourceLang(t *testing.T) {
	p := NewOpenAIFiller(OpenAIConfig{APIKey: "test"})

	prompt := p.buildSystemPrompt(FillRequest{TargetLang: "de_DE"})

	if !strings.Contains(prompt, "short en phrases") {
		t.Errorf("Prompt should default the source language to en:\n%s", prompt)
	}
}

func TestBuildUserMessage(t *testing.T) {
	p := NewOpenAIFiller(OpenAIConfig{APIKey: "test"})

	req := FillRequest{
		Phrases: []string{"Orokin Vault", "Void"},
	}

	msg := p.buildUserMessage(req)

	if msg != `["Orokin Vault","Void"]` {
		t.Errorf("Expected JSON array, got: %s", msg)
	}
}

func TestParseFillResponse_TranslationsKey(t *testing.T) {
	content := `{"translations": ["奥罗金宝库", "虚空"]}`
	result, err := ParseFillResponse(content, 2)

	if err != nil {
		t.Fatalf("ParseFillResponse failed: %v", err)
	}

	if len(result) != 2 {
		t.Fatalf("Expected 2 translations, got %d", len(result))
	}

	if result[0] != "奥罗金宝库" || result[1] != "虚空" {
		t.Errorf("Unexpected translations: %v", result)
	}
}

func TestParseFillResponse_DirectArray(t *testing.T) {
	content := `["奥罗金宝库", "虚空"]`
	result, err := ParseFillResponse(content, 2)

	if err != nil {
		t.Fatalf("ParseFillResponse failed: %v", err)
	}

	if result[0] != "奥罗金宝库" || result[1] != "虚空" {
		t.Errorf("Unexpected translations: %v", result)
	}
}

func TestParseFillResponse_FallbackArrayKey(t *testing.T) {
	// Some models return with a different key
	content := `{"results": ["奥罗金宝库", "虚空"]}`
	result, err := ParseFillResponse(content, 2)

	if err != nil {
		t.Fatalf("ParseFillResponse failed: %v", err)
	}

	if result[0] != "奥罗金宝库" || result[1] != "虚空" {
		t.Errorf("Unexpected translations: %v", result)
	}
}

func TestParseFillResponse_CountMismatch(t *testing.T) {
	content := `{"translations": ["奥罗金宝库"]}`
	_, err := ParseFillResponse(content, 2)

	var mismatch *lexiloc.CountMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("err = %v, want CountMismatchError", err)
	}
	if mismatch.Expected != 2 || mismatch.Got != 1 {
		t.Errorf("mismatch = %+v", mismatch)
	}
}

func TestParseFillResponse_Invalid(t *testing.T) {
	_, err := ParseFillResponse(`not json at all`, 1)

	var fillErr *lexiloc.FillError
	if !errors.As(err, &fillErr) {
		t.Fatalf("err = %v, want FillError", err)
	}
	if fillErr.Retryable {
		t.Error("malformed response should not be retryable")
	}
}

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		msg  string
		want bool
	}{
		{"rate limit exceeded", true},
		{"context deadline exceeded (timeout)", true},
		{"status code 429", true},
		{"status code 503", true},
		{"invalid api key", false},
		{"model not found", false},
	}

	for _, tt := range tests {
		if got := isRetryableError(errors.New(tt.msg)); got != tt.want {
			t.Errorf("isRetryableError(%q) = %v, want %v", tt.msg, got, tt.want)
		}
	}
}

func TestMockFiller(t *testing.T) {
	m := NewMockFiller()

	req := FillRequest{
		Phrases:    []string{"Orokin", "Unknown phrase"},
		TargetLang: "zh_CN",
	}

	result, err := m.Fill(context.Background(), req)
	if err != nil {
		t.Fatalf("MockFiller.Fill failed: %v", err)
	}

	if result[0] != "奥罗金" {
		t.Errorf("Expected '奥罗金', got %q", result[0])
	}

	if result[1] != "[Unknown phrase]" {
		t.Errorf("Expected '[Unknown phrase]', got %q", result[1])
	}

	if m.CallCount != 1 {
		t.Errorf("Expected CallCount 1, got %d", m.CallCount)
	}
	if m.LastRequest == nil || m.LastRequest.TargetLang != "zh_CN" {
		t.Errorf("LastRequest = %+v", m.LastRequest)
	}

	m.Reset()
	if m.CallCount != 0 || m.LastRequest != nil {
		t.Error("Reset should clear call state")
	}
}
