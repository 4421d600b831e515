package strategy

import (
	"context"
	"encoding/json"
	"strings"

	"abcresearch-be/internal/dto"
	"abcresearch-be/internal/pkg/logger"
	"abcresearch-be/pkg/llm"
)

const maxStrategies = 5

const strategyPrompt = `You are a biomedical search expert. Given a research query, produce up to 5 independent search strategies that approach the same intent from different angles (mechanism of action, indication, development stage, synonyms, broad).

Respond with JSON only, no prose, in this shape:
{"strategies":[{"query":"...","description":"...","priority":"high|medium|low","searchType":"mechanism|indication|stage|synonym|broad"}]}

Research query: `

// Generator expands one user query into up to 5 search strategies
// via an LLM call. It never hard-fails: any upstream or parse failure
// degrades to a single broad strategy carrying the original query.
type Generator struct {
	provider llm.LLMProvider
	logger   logger.ILogger
}

func NewGenerator(provider llm.LLMProvider, logger logger.ILogger) *Generator {
	return &Generator{
		provider: provider,
		logger:   logger,
	}
}

type strategyEnvelope struct {
	Strategies []dto.SearchStrategy `json:"strategies"`
}

// legacyEnvelope is the older triple-query response shape some prompts
// still produce. It is normalized into the strategy list shape.
type legacyEnvelope struct {
	Primary     string `json:"primary"`
	Alternative string `json:"alternative"`
	Broad       string `json:"broad"`
}

func (g *Generator) Generate(ctx context.Context, query string) []dto.SearchStrategy {
	raw, err := g.provider.Generate(ctx, strategyPrompt+query)
	if err != nil {
		g.logger.Warn("strategy", "strategy generation failed, using fallback", map[string]interface{}{
			"error": err.Error(),
		})
		return fallback(query)
	}

	strategies := parseStrategies(raw)
	if len(strategies) == 0 {
		g.logger.Warn("strategy", "strategy response unparseable, using fallback", map[string]interface{}{
			"response": raw,
		})
		return fallback(query)
	}

	if len(strategies) > maxStrategies {
		strategies = strategies[:maxStrategies]
	}
	return strategies
}

func fallback(query string) []dto.SearchStrategy {
	return []dto.SearchStrategy{
		{
			Query:       query,
			Description: "Direct search on the original query",
			Priority:    dto.PriorityHigh,
			SearchType:  dto.SearchTypeBroad,
		},
	}
}

// parseStrategies accepts the current envelope shape, a bare array,
// and the legacy {primary,alternative,broad} triple.
func parseStrategies(raw string) []dto.SearchStrategy {
	cleaned := stripCodeFences(raw)

	var envelope strategyEnvelope
	if err := json.Unmarshal([]byte(cleaned), &envelope); err == nil && len(envelope.Strategies) > 0 {
		return valid(envelope.Strategies)
	}

	var list []dto.SearchStrategy
	if err := json.Unmarshal([]byte(cleaned), &list); err == nil && len(list) > 0 {
		return valid(list)
	}

	var legacy legacyEnvelope
	if err := json.Unmarshal([]byte(cleaned), &legacy); err == nil {
		return normalizeLegacy(legacy)
	}

	return nil
}

func valid(strategies []dto.SearchStrategy) []dto.SearchStrategy {
	out := make([]dto.SearchStrategy, 0, len(strategies))
	for _, s := range strategies {
		if strings.TrimSpace(s.Query) == "" {
			continue
		}
		if s.Priority == "" {
			s.Priority = dto.PriorityMedium
		}
		if s.SearchType == "" {
			s.SearchType = dto.SearchTypeBroad
		}
		out = append(out, s)
	}
	return out
}

func normalizeLegacy(legacy legacyEnvelope) []dto.SearchStrategy {
	var out []dto.SearchStrategy
	if q := strings.TrimSpace(legacy.Primary); q != "" {
		out = append(out, dto.SearchStrategy{
			Query:       q,
			Description: "Primary search",
			Priority:    dto.PriorityHigh,
			SearchType:  dto.SearchTypeIndication,
		})
	}
	if q := strings.TrimSpace(legacy.Alternative); q != "" {
		out = append(out, dto.SearchStrategy{
			Query:       q,
			Description: "Alternative phrasing",
			Priority:    dto.PriorityMedium,
			SearchType:  dto.SearchTypeSynonym,
		})
	}
	if q := strings.TrimSpace(legacy.Broad); q != "" {
		out = append(out, dto.SearchStrategy{
			Query:       q,
			Description: "Broad search",
			Priority:    dto.PriorityLow,
			SearchType:  dto.SearchTypeBroad,
		})
	}
	return out
}

func stripCodeFences(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if idx := strings.LastIndex(s, "```"); idx >= 0 {
			s = s[:idx]
		}
	}
	return strings.TrimSpace(s)
}
