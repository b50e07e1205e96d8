package dto

import (
	"github.com/TurkishKEBAB/SchedularDeprecatedV1-sub001/internal/models"
)

// WeightsRequest overrides individual objective weights. Zero values fall
// back to the engine defaults, so callers only set what they care about.
type WeightsRequest struct {
	FreeDay         float64 `json:"freeDay" validate:"omitempty,min=0"`
	Compactness     float64 `json:"compactness" validate:"omitempty,min=0"`
	GapPenalty      float64 `json:"gapPenalty" validate:"omitempty,min=0"`
	Consecutive     float64 `json:"consecutive" validate:"omitempty,min=0"`
	ConflictPenalty float64 `json:"conflictPenalty" validate:"omitempty,min=0"`
}

// PreferencesRequest carries the caller's soft and hard scheduling wishes.
// Day names are uppercase English ("MONDAY".."SUNDAY").
type PreferencesRequest struct {
	FreeDays       []string        `json:"freeDays" validate:"omitempty,dive,required"`
	StrictFreeDays bool            `json:"strictFreeDays"`
	MaxDailySlots  int             `json:"maxDailySlots" validate:"omitempty,min=1,max=16"`
	MaxWeeklySlots int             `json:"maxWeeklySlots" validate:"omitempty,min=1"`
	Weights        *WeightsRequest `json:"weights" validate:"omitempty"`
}

// RequirementsRequest describes what matters to the caller when no explicit
// algorithm is named, so the selector can pick one.
type RequirementsRequest struct {
	PreferOptimal   bool `json:"preferOptimal"`
	NeedPreferences bool `json:"needPreferences"`
	NeedParallel    bool `json:"needParallel"`
	PreferOptimizer bool `json:"preferOptimizer"`
}

// GenerateRequest instructs the engine to build schedules for a course set.
type GenerateRequest struct {
	Algorithm      string               `json:"algorithm" validate:"omitempty"`
	MandatoryCodes []string             `json:"mandatoryCodes" validate:"required,min=1,dive,required"`
	OptionalCodes  []string             `json:"optionalCodes" validate:"omitempty,dive,required"`
	MaxResults     int                  `json:"maxResults" validate:"omitempty,min=1,max=100"`
	MaxCredits     float64              `json:"maxCredits" validate:"omitempty,gt=0"`
	AllowConflicts bool                 `json:"allowConflicts"`
	MaxConflicts   int                  `json:"maxConflicts" validate:"omitempty,min=1"`
	TimeoutSeconds int                  `json:"timeoutSeconds" validate:"omitempty,min=1,max=300"`
	Seed           int64                `json:"seed"`
	Preferences    *PreferencesRequest  `json:"preferences" validate:"omitempty"`
	Requirements   *RequirementsRequest `json:"requirements" validate:"omitempty"`
}

// SectionView is the outward shape of a scheduled section.
type SectionView struct {
	Code       string   `json:"code"`
	MainCode   string   `json:"mainCode"`
	Name       string   `json:"name"`
	Credits    float64  `json:"credits"`
	Type       string   `json:"type"`
	Instructor string   `json:"instructor,omitempty"`
	Slots      []string `json:"slots"`
}

// ScheduleView is one ranked schedule in a generation response.
type ScheduleView struct {
	Rank          int           `json:"rank"`
	TotalCredits  float64       `json:"totalCredits"`
	ConflictCount int           `json:"conflictCount"`
	Score         float64       `json:"score"`
	FreeDays      []string      `json:"freeDays"`
	Sections      []SectionView `json:"sections"`
}

// RunStatsView summarizes the work a strategy performed.
type RunStatsView struct {
	NodesExplored  int   `json:"nodesExplored"`
	BranchesPruned int   `json:"branchesPruned"`
	Iterations     int   `json:"iterations"`
	Restarts       int   `json:"restarts"`
	ElapsedMs      int64 `json:"elapsedMs"`
	TimedOut       bool  `json:"timedOut"`
}

// GenerateResponse is the full outcome of one generation run.
type GenerateResponse struct {
	RunID       string         `json:"runId"`
	Algorithm   string         `json:"algorithm"`
	Status      string         `json:"status"`
	Cached      bool           `json:"cached"`
	Schedules   []ScheduleView `json:"schedules"`
	Stats       RunStatsView   `json:"stats"`
	Diagnostics []string       `json:"diagnostics,omitempty"`
}

// CompareRequest runs several algorithms over the same course set.
// An empty Algorithms list means every registered algorithm.
type CompareRequest struct {
	Algorithms     []string            `json:"algorithms" validate:"omitempty,dive,required"`
	MandatoryCodes []string            `json:"mandatoryCodes" validate:"required,min=1,dive,required"`
	OptionalCodes  []string            `json:"optionalCodes" validate:"omitempty,dive,required"`
	MaxResults     int                 `json:"maxResults" validate:"omitempty,min=1,max=100"`
	MaxCredits     float64             `json:"maxCredits" validate:"omitempty,gt=0"`
	AllowConflicts bool                `json:"allowConflicts"`
	MaxConflicts   int                 `json:"maxConflicts" validate:"omitempty,min=1"`
	TimeoutSeconds int                 `json:"timeoutSeconds" validate:"omitempty,min=1,max=300"`
	Seed           int64               `json:"seed"`
	Preferences    *PreferencesRequest `json:"preferences" validate:"omitempty"`
	Sequential     bool                `json:"sequential"`
}

// CompareEntry is one algorithm's row in a comparison.
type CompareEntry struct {
	Algorithm     string        `json:"algorithm"`
	Status        string        `json:"status"`
	ElapsedMs     int64         `json:"elapsedMs"`
	Best          *ScheduleView `json:"best,omitempty"`
	ScheduleCount int           `json:"scheduleCount"`
	Stats         RunStatsView  `json:"stats"`
	Diagnostics   []string      `json:"diagnostics,omitempty"`
}

// CompareResponse aggregates per-algorithm comparison rows.
type CompareResponse struct {
	RunID   string         `json:"runId"`
	Entries []CompareEntry `json:"entries"`
}

// AlgorithmsResponse lists every registered algorithm with its metadata.
type AlgorithmsResponse struct {
	Algorithms []models.AlgorithmMetadata `json:"algorithms"`
}
