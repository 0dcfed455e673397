package agent

import (
	"fmt"
	"isolation/config"
	"isolation/game"
	"isolation/searcher"
)

// FromConfig builds the agent described by cfg. seed only affects random agents.
func FromConfig(cfg config.AgentConfig, seed uint64) (Agent, error) {
	if cfg.Kind == config.KindRandom {
		return NewRandomAgent(seed), nil
	}

	evaluatorName := cfg.Evaluator
	if evaluatorName == "" {
		evaluatorName = "improved"
	}
	evaluator, err := game.EvaluatorByName(evaluatorName)
	if err != nil {
		return nil, fmt.Errorf("agent %q: %w", cfg.Name, err)
	}
	method, err := searcher.ParseMethod(cfg.Method)
	if err != nil {
		return nil, fmt.Errorf("agent %q: %w", cfg.Name, err)
	}

	options := []searcher.Option{searcher.WithMethod(method), searcher.WithMetrics()}
	if cfg.Depth > 0 {
		options = append(options, searcher.WithFixedDepth(cfg.Depth))
	}
	if cfg.Margin > 0 {
		options = append(options, searcher.WithMargin(cfg.Margin))
	}
	return NewSearchAgent(searcher.NewSearcher(evaluator, options...)), nil
}
