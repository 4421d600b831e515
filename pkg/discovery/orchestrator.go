package discovery

import (
	"context"
	"errors"
	"strings"
	"sync"

	"abcresearch-be/internal/dto"
	"abcresearch-be/internal/pkg/logger"
)

var ErrEmptyQuery = errors.New("query must not be empty")

// StrategyGenerator expands one user query into up to 5 strategies.
// Implementations never hard-fail; they degrade to a single fallback
// strategy instead.
type StrategyGenerator interface {
	Generate(ctx context.Context, query string) []dto.SearchStrategy
}

type TrialSearcher interface {
	SearchTrials(ctx context.Context, query string, pageSize int) ([]dto.TrialRecord, int, error)
}

type PaperSearcher interface {
	SearchPapers(ctx context.Context, query string, maxResults int) ([]dto.PaperRecord, error)
}

type ReleaseSearcher interface {
	SearchReleases(ctx context.Context, query string, maxResults int) ([]dto.PressRelease, error)
}

type FilingSearcher interface {
	SearchFilings(ctx context.Context, query string, maxResults int) ([]dto.Filing, error)
}

// Limits bounds the per-source result sizes.
type Limits struct {
	TrialPageSize   int
	PaperMaxResults int
	NewsMaxResults  int
	FilingsMax      int
}

// Orchestrator runs the multi-strategy discovery pipeline: strategy
// generation once, then a parallel fan-out of trial and paper searches
// across all strategies, with press-release and filing searches on the
// raw query running alongside. Merging and ranking happen after the join.
//
// There are no retries anywhere in the pipeline. A failed per-strategy
// call is logged and absorbed into an empty list for that strategy only.
type Orchestrator struct {
	strategies StrategyGenerator
	trials     TrialSearcher
	papers     PaperSearcher
	releases   ReleaseSearcher
	filings    FilingSearcher
	limits     Limits
	logger     logger.ILogger
}

func NewOrchestrator(
	strategies StrategyGenerator,
	trials TrialSearcher,
	papers PaperSearcher,
	releases ReleaseSearcher,
	filings FilingSearcher,
	limits Limits,
	logger logger.ILogger,
) *Orchestrator {
	return &Orchestrator{
		strategies: strategies,
		trials:     trials,
		papers:     papers,
		releases:   releases,
		filings:    filings,
		limits:     limits,
		logger:     logger,
	}
}

func (o *Orchestrator) Discover(ctx context.Context, query string) (*dto.DiscoveryResponse, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}

	strategies := o.strategies.Generate(ctx, query)

	trialLists := make([][]dto.TrialRecord, len(strategies))
	paperLists := make([][]dto.PaperRecord, len(strategies))

	var pressReleases []dto.PressRelease
	var irDecks []dto.Filing

	var wg sync.WaitGroup

	// Each branch writes only its own slot, so the fan-out needs no locks.
	for i, strat := range strategies {
		wg.Add(2)

		go func(i int, strat dto.SearchStrategy) {
			defer wg.Done()
			trials, _, err := o.trials.SearchTrials(ctx, strat.Query, o.limits.TrialPageSize)
			if err != nil {
				o.logger.Warn("discovery", "trial search failed for strategy", map[string]interface{}{
					"strategy": strat.Query,
					"error":    err.Error(),
				})
				return
			}
			trialLists[i] = trials
		}(i, strat)

		go func(i int, strat dto.SearchStrategy) {
			defer wg.Done()
			papers, err := o.papers.SearchPapers(ctx, strat.Query, o.limits.PaperMaxResults)
			if err != nil {
				o.logger.Warn("discovery", "paper search failed for strategy", map[string]interface{}{
					"strategy": strat.Query,
					"error":    err.Error(),
				})
				return
			}
			paperLists[i] = papers
		}(i, strat)
	}

	// Press releases and filings search the raw query, not the expanded
	// strategies, and run alongside the strategy fan-out.
	wg.Add(2)

	go func() {
		defer wg.Done()
		releases, err := o.releases.SearchReleases(ctx, query, o.limits.NewsMaxResults)
		if err != nil {
			o.logger.Warn("discovery", "press release search failed", map[string]interface{}{
				"error": err.Error(),
			})
			return
		}
		pressReleases = releases
	}()

	go func() {
		defer wg.Done()
		filings, err := o.filings.SearchFilings(ctx, query, o.limits.FilingsMax)
		if err != nil {
			o.logger.Warn("discovery", "filing search failed", map[string]interface{}{
				"error": err.Error(),
			})
			return
		}
		irDecks = filings
	}()

	wg.Wait()

	mergedTrials := MergeTrials(trialLists)
	mergedPapers := MergePapers(paperLists)
	ranked := RankTrials(mergedTrials, query)

	strategyResults := make([]dto.StrategyResult, len(strategies))
	for i, strat := range strategies {
		strategyResults[i] = dto.StrategyResult{
			Strategy: strat,
			Trials:   trialLists[i],
			Count:    len(trialLists[i]),
		}
	}

	if ranked == nil {
		ranked = []dto.RankedTrialRecord{}
	}
	if mergedPapers == nil {
		mergedPapers = []dto.PaperRecord{}
	}
	if pressReleases == nil {
		pressReleases = []dto.PressRelease{}
	}
	if irDecks == nil {
		irDecks = []dto.Filing{}
	}

	return &dto.DiscoveryResponse{
		Trials:           ranked,
		Papers:           mergedPapers,
		PressReleases:    pressReleases,
		IRDecks:          irDecks,
		TotalCount:       len(ranked) + len(mergedPapers),
		SearchStrategies: strategyResults,
		StrategiesUsed:   len(strategies),
	}, nil
}
