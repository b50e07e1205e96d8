package search

// Requirements describes what a caller needs from a strategy when it does
// not name one explicitly.
type Requirements struct {
	PreferOptimal   bool `json:"prefer_optimal"`
	NeedPreferences bool `json:"need_preferences"`
	NeedParallel    bool `json:"need_parallel"`
	PreferOptimizer bool `json:"prefer_optimizer"`
}

// Select scores every registered strategy's metadata against the
// requirements and returns the best match. Preference support weighs
// heaviest, then optimality, then parallel and optimizer fit; ties keep the
// earlier registration. When nothing scores, the complete DFS strategy is
// the default.
func Select(req Requirements) Strategy {
	var best Strategy
	bestScore := 0

	for _, reg := range registrations {
		strategy := reg.build()
		md := strategy.Metadata()

		score := 0
		if req.NeedPreferences && md.SupportsPreferences {
			score += 4
		}
		if req.PreferOptimal && md.Optimal {
			score += 3
		}
		if req.NeedParallel && md.SupportsParallel {
			score += 2
		}
		if req.PreferOptimizer && md.Optimizer {
			score += 2
		}
		if score > bestScore {
			bestScore = score
			best = strategy
		}
	}

	if best == nil {
		return NewDFS()
	}
	return best
}
