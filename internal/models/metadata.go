package models

// AlgorithmCategory buckets strategies by search family.
type AlgorithmCategory string

const (
	CategoryCompleteSearch AlgorithmCategory = "complete-search"
	CategoryInformedSearch AlgorithmCategory = "informed-search"
	CategoryLocalSearch    AlgorithmCategory = "local-search"
	CategoryPopulation     AlgorithmCategory = "population"
	CategoryConstraint     AlgorithmCategory = "constraint-programming"
)

// AlgorithmMetadata is the static descriptor the registry and selector work
// from. Instances are built once at registration and never mutated.
type AlgorithmMetadata struct {
	Name                string            `json:"name"`
	Category            AlgorithmCategory `json:"category"`
	Complexity          string            `json:"complexity"`
	Optimal             bool              `json:"optimal"`
	SupportsPreferences bool              `json:"supports_preferences"`
	SupportsParallel    bool              `json:"supports_parallel"`
	Optimizer           bool              `json:"optimizer"`
}
