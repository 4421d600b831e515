package strategy

import (
	"context"
	"errors"
	"testing"

	"abcresearch-be/internal/dto"
	"abcresearch-be/pkg/llm"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

type stubProvider struct {
	response string
	err      error
}

func (s stubProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	return s.response, s.err
}

func (s stubProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return s.response, s.err
}

func TestGenerateParsesEnvelope(t *testing.T) {
	response := `{"strategies":[
		{"query":"GLP-1 receptor agonist","description":"Mechanism","priority":"high","searchType":"mechanism"},
		{"query":"semaglutide diabetes","description":"Indication","priority":"medium","searchType":"indication"}
	]}`

	g := NewGenerator(stubProvider{response: response}, nopLogger{})
	strategies := g.Generate(context.Background(), "GLP-1 diabetes")

	if len(strategies) != 2 {
		t.Fatalf("strategies length = %d, want 2", len(strategies))
	}
	if strategies[0].Query != "GLP-1 receptor agonist" {
		t.Errorf("first query = %q", strategies[0].Query)
	}
	if strategies[1].SearchType != dto.SearchTypeIndication {
		t.Errorf("second searchType = %q, want indication", strategies[1].SearchType)
	}
}

func TestGenerateParsesFencedJSON(t *testing.T) {
	response := "```json\n{\"strategies\":[{\"query\":\"semaglutide\",\"priority\":\"high\",\"searchType\":\"broad\"}]}\n```"

	g := NewGenerator(stubProvider{response: response}, nopLogger{})
	strategies := g.Generate(context.Background(), "semaglutide")

	if len(strategies) != 1 {
		t.Fatalf("strategies length = %d, want 1", len(strategies))
	}
	if strategies[0].Query != "semaglutide" {
		t.Errorf("query = %q, want semaglutide", strategies[0].Query)
	}
}

func TestGenerateParsesBareArray(t *testing.T) {
	response := `[{"query":"obesity trials","priority":"low","searchType":"broad"}]`

	g := NewGenerator(stubProvider{response: response}, nopLogger{})
	strategies := g.Generate(context.Background(), "obesity")

	if len(strategies) != 1 {
		t.Fatalf("strategies length = %d, want 1", len(strategies))
	}
}

func TestGenerateNormalizesLegacyShape(t *testing.T) {
	response := `{"primary":"semaglutide obesity","alternative":"GLP-1 weight loss","broad":"incretin therapy"}`

	g := NewGenerator(stubProvider{response: response}, nopLogger{})
	strategies := g.Generate(context.Background(), "semaglutide")

	if len(strategies) != 3 {
		t.Fatalf("strategies length = %d, want 3", len(strategies))
	}
	if strategies[0].Query != "semaglutide obesity" || strategies[0].Priority != dto.PriorityHigh {
		t.Errorf("primary not normalized: %+v", strategies[0])
	}
	if strategies[2].SearchType != dto.SearchTypeBroad {
		t.Errorf("broad searchType = %q, want broad", strategies[2].SearchType)
	}
}

func TestGenerateCapsAtFive(t *testing.T) {
	response := `{"strategies":[
		{"query":"one"},{"query":"two"},{"query":"three"},
		{"query":"four"},{"query":"five"},{"query":"six"},{"query":"seven"}
	]}`

	g := NewGenerator(stubProvider{response: response}, nopLogger{})
	strategies := g.Generate(context.Background(), "anything")

	if len(strategies) != 5 {
		t.Errorf("strategies length = %d, want 5", len(strategies))
	}
}

func TestGenerateFallbackOnProviderError(t *testing.T) {
	g := NewGenerator(stubProvider{err: errors.New("upstream down")}, nopLogger{})
	strategies := g.Generate(context.Background(), "GLP-1 receptor agonist diabetes")

	if len(strategies) != 1 {
		t.Fatalf("strategies length = %d, want 1 fallback", len(strategies))
	}
	if strategies[0].Query != "GLP-1 receptor agonist diabetes" {
		t.Errorf("fallback query = %q, want the original query verbatim", strategies[0].Query)
	}
	if strategies[0].Priority != dto.PriorityHigh {
		t.Errorf("fallback priority = %q, want high", strategies[0].Priority)
	}
	if strategies[0].SearchType != dto.SearchTypeBroad {
		t.Errorf("fallback searchType = %q, want broad", strategies[0].SearchType)
	}
}

func TestGenerateFallbackOnMalformedResponse(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{"prose", "I cannot produce JSON for that."},
		{"truncated", `{"strategies":[{"query":"x"`},
		{"empty strategies", `{"strategies":[]}`},
		{"blank queries only", `{"strategies":[{"query":"  "}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGenerator(stubProvider{response: tt.response}, nopLogger{})
			strategies := g.Generate(context.Background(), "original query")

			if len(strategies) != 1 {
				t.Fatalf("strategies length = %d, want 1 fallback", len(strategies))
			}
			if strategies[0].Query != "original query" {
				t.Errorf("fallback query = %q, want original", strategies[0].Query)
			}
		})
	}
}

func TestGenerateFillsDefaults(t *testing.T) {
	response := `{"strategies":[{"query":"semaglutide"}]}`

	g := NewGenerator(stubProvider{response: response}, nopLogger{})
	strategies := g.Generate(context.Background(), "semaglutide")

	if strategies[0].Priority != dto.PriorityMedium {
		t.Errorf("default priority = %q, want medium", strategies[0].Priority)
	}
	if strategies[0].SearchType != dto.SearchTypeBroad {
		t.Errorf("default searchType = %q, want broad", strategies[0].SearchType)
	}
}
