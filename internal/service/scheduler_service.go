package service

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/TurkishKEBAB/SchedularDeprecatedV1-sub001/internal/dto"
	"github.com/TurkishKEBAB/SchedularDeprecatedV1-sub001/internal/models"
	"github.com/TurkishKEBAB/SchedularDeprecatedV1-sub001/internal/scoring"
	"github.com/TurkishKEBAB/SchedularDeprecatedV1-sub001/internal/search"
	appErrors "github.com/TurkishKEBAB/SchedularDeprecatedV1-sub001/pkg/errors"
	"github.com/TurkishKEBAB/SchedularDeprecatedV1-sub001/pkg/metrics"
)

type resultCache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

// SchedulerService is the facade over the search engine: it validates
// requests, resolves a strategy, merges engine defaults with request
// overrides, consults the result cache, and shapes engine output into DTOs.
type SchedulerService struct {
	groups    map[string]*models.CourseGroup
	cache     resultCache
	cacheTTL  time.Duration
	metrics   *metrics.Metrics
	validator *validator.Validate
	logger    *zap.Logger
	defaults  search.Config
}

// SchedulerConfig governs facade behaviour.
type SchedulerConfig struct {
	Defaults search.Config
	CacheTTL time.Duration
}

// NewSchedulerService wires the scheduler facade. A nil cache disables
// result caching; a nil metrics collector disables instrumentation.
func NewSchedulerService(
	groups map[string]*models.CourseGroup,
	cache resultCache,
	collector *metrics.Metrics,
	validate *validator.Validate,
	logger *zap.Logger,
	cfg SchedulerConfig,
) *SchedulerService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 15 * time.Minute
	}
	return &SchedulerService{
		groups:    groups,
		cache:     cache,
		cacheTTL:  cfg.CacheTTL,
		metrics:   collector,
		validator: validate,
		logger:    logger,
		defaults:  cfg.Defaults,
	}
}

// GenerateSchedules runs one strategy over the catalog and returns ranked
// schedules. Results for identical requests are served from the cache when
// one is wired.
func (s *SchedulerService) GenerateSchedules(ctx context.Context, req dto.GenerateRequest) (*dto.GenerateResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid schedule generation payload")
	}

	prefs, err := preferencesFromRequest(req.Preferences)
	if err != nil {
		return nil, err
	}

	strategy, err := s.resolveStrategy(req)
	if err != nil {
		return nil, err
	}
	algorithm := strategy.Metadata().Name

	key := cacheKey(algorithm, req)
	if s.cache != nil {
		start := time.Now()
		var cached dto.GenerateResponse
		lookupErr := s.cache.Get(ctx, key, &cached)
		if lookupErr == nil {
			s.metrics.RecordCacheOperation(true, time.Since(start))
			cached.Cached = true
			return &cached, nil
		}
		s.metrics.RecordCacheOperation(false, time.Since(start))
		if !errors.Is(lookupErr, appErrors.ErrCacheMiss) {
			s.logger.Warn("result cache lookup failed", zap.String("key", key), zap.Error(lookupErr))
		}
	}

	cfg := s.searchConfig(req, prefs)
	result := search.Generate(ctx, strategy, s.groups, req.MandatoryCodes, req.OptionalCodes, cfg)

	s.metrics.ObserveRun(
		result.Algorithm,
		string(result.Status),
		len(result.Schedules),
		result.Stats.NodesExplored,
		result.Stats.BranchesPruned,
		result.Stats.TimedOut,
		result.Stats.Elapsed,
	)

	resp := &dto.GenerateResponse{
		RunID:       uuid.NewString(),
		Algorithm:   result.Algorithm,
		Status:      string(result.Status),
		Schedules:   scheduleViews(result.Schedules, prefs),
		Stats:       statsView(result.Stats),
		Diagnostics: result.Diagnostics,
	}

	if s.cache != nil && result.Status == search.StatusOK {
		start := time.Now()
		if err := s.cache.Set(ctx, key, resp, s.cacheTTL); err != nil {
			s.logger.Warn("result cache write failed", zap.String("key", key), zap.Error(err))
		} else {
			s.metrics.ObserveCacheWrite(time.Since(start))
		}
	}

	s.logger.Info("schedule generation finished",
		zap.String("run_id", resp.RunID),
		zap.String("algorithm", resp.Algorithm),
		zap.String("status", resp.Status),
		zap.Int("schedules", len(resp.Schedules)),
		zap.Duration("elapsed", result.Stats.Elapsed),
	)
	return resp, nil
}

// Compare runs several strategies over the same input and reports one row
// per strategy. An empty algorithm list compares every registered strategy;
// Sequential switches from the parallel runner to the benchmark loop.
func (s *SchedulerService) Compare(ctx context.Context, req dto.CompareRequest) (*dto.CompareResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid comparison payload")
	}

	prefs, err := preferencesFromRequest(req.Preferences)
	if err != nil {
		return nil, err
	}

	names := req.Algorithms
	if len(names) == 0 {
		names = search.Names()
	}

	cfg := s.searchConfig(dto.GenerateRequest{
		MaxResults:     req.MaxResults,
		MaxCredits:     req.MaxCredits,
		AllowConflicts: req.AllowConflicts,
		MaxConflicts:   req.MaxConflicts,
		TimeoutSeconds: req.TimeoutSeconds,
		Seed:           req.Seed,
	}, prefs)

	resp := &dto.CompareResponse{
		RunID:   uuid.NewString(),
		Entries: make([]dto.CompareEntry, 0, len(names)),
	}

	if req.Sequential {
		for _, entry := range search.Benchmark(ctx, names, s.groups, req.MandatoryCodes, req.OptionalCodes, cfg) {
			resp.Entries = append(resp.Entries, s.compareEntry(entry.Algorithm, entry.Result, entry.Elapsed, prefs))
		}
	} else {
		for i, result := range search.CompareParallel(ctx, names, s.groups, req.MandatoryCodes, req.OptionalCodes, cfg) {
			resp.Entries = append(resp.Entries, s.compareEntry(names[i], result, result.Stats.Elapsed, prefs))
		}
	}

	s.logger.Info("algorithm comparison finished",
		zap.String("run_id", resp.RunID),
		zap.Int("algorithms", len(resp.Entries)),
		zap.Bool("sequential", req.Sequential),
	)
	return resp, nil
}

// Algorithms lists every registered strategy with its metadata.
func (s *SchedulerService) Algorithms() dto.AlgorithmsResponse {
	return dto.AlgorithmsResponse{Algorithms: search.Algorithms()}
}

func (s *SchedulerService) compareEntry(algorithm string, result *search.Result, elapsed time.Duration, prefs *models.Preferences) dto.CompareEntry {
	s.metrics.ObserveRun(
		algorithm,
		string(result.Status),
		len(result.Schedules),
		result.Stats.NodesExplored,
		result.Stats.BranchesPruned,
		result.Stats.TimedOut,
		result.Stats.Elapsed,
	)

	entry := dto.CompareEntry{
		Algorithm:     algorithm,
		Status:        string(result.Status),
		ElapsedMs:     elapsed.Milliseconds(),
		ScheduleCount: len(result.Schedules),
		Stats:         statsView(result.Stats),
		Diagnostics:   result.Diagnostics,
	}
	if len(result.Schedules) > 0 {
		best := scheduleView(1, result.Schedules[0], prefs)
		entry.Best = &best
	}
	return entry
}

func (s *SchedulerService) resolveStrategy(req dto.GenerateRequest) (search.Strategy, error) {
	if req.Algorithm != "" {
		strategy, err := search.New(req.Algorithm)
		if err != nil {
			return nil, appErrors.Clone(appErrors.ErrUnknownAlgorithm, err.Error())
		}
		return strategy, nil
	}

	var reqs search.Requirements
	if req.Requirements != nil {
		reqs = search.Requirements{
			PreferOptimal:   req.Requirements.PreferOptimal,
			NeedPreferences: req.Requirements.NeedPreferences,
			NeedParallel:    req.Requirements.NeedParallel,
			PreferOptimizer: req.Requirements.PreferOptimizer,
		}
	} else if req.Preferences != nil {
		reqs.NeedPreferences = true
	}
	return search.Select(reqs), nil
}

// searchConfig merges engine defaults with per-request overrides. Zero
// request values keep the default; booleans are taken from the request.
func (s *SchedulerService) searchConfig(req dto.GenerateRequest, prefs *models.Preferences) search.Config {
	cfg := s.defaults
	if req.MaxResults > 0 {
		cfg.MaxResults = req.MaxResults
	}
	if req.MaxCredits > 0 {
		cfg.MaxCredits = req.MaxCredits
	}
	cfg.AllowConflicts = req.AllowConflicts
	if req.MaxConflicts > 0 {
		cfg.MaxConflicts = req.MaxConflicts
	}
	if req.TimeoutSeconds > 0 {
		cfg.Timeout = time.Duration(req.TimeoutSeconds) * time.Second
	}
	if req.Seed != 0 {
		cfg.Seed = req.Seed
	}
	cfg.Preferences = prefs
	cfg.Logger = s.logger
	return cfg
}

func preferencesFromRequest(req *dto.PreferencesRequest) (*models.Preferences, error) {
	if req == nil {
		return nil, nil
	}

	prefs := &models.Preferences{
		StrictFreeDays: req.StrictFreeDays,
		MaxDailySlots:  req.MaxDailySlots,
		MaxWeeklySlots: req.MaxWeeklySlots,
		Weights:        models.DefaultWeights(),
	}
	for _, name := range req.FreeDays {
		day := models.ParseDay(name)
		if !day.Valid() {
			return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown day name %q", name))
		}
		prefs.FreeDays = append(prefs.FreeDays, day)
	}
	if req.Weights != nil {
		applyWeight(&prefs.Weights.FreeDay, req.Weights.FreeDay)
		applyWeight(&prefs.Weights.Compactness, req.Weights.Compactness)
		applyWeight(&prefs.Weights.GapPenalty, req.Weights.GapPenalty)
		applyWeight(&prefs.Weights.Consecutive, req.Weights.Consecutive)
		applyWeight(&prefs.Weights.ConflictPenalty, req.Weights.ConflictPenalty)
	}
	return prefs, nil
}

func applyWeight(dst *float64, value float64) {
	if value > 0 {
		*dst = value
	}
}

// cacheKey fingerprints the full request so any knob change produces a
// distinct key. The resolved algorithm is part of the key because the
// selector may pick different strategies for otherwise equal requests.
func cacheKey(algorithm string, req dto.GenerateRequest) string {
	payload, err := json.Marshal(req)
	if err != nil {
		payload = []byte(fmt.Sprintf("%+v", req))
	}
	sum := sha256.Sum256(payload)
	return fmt.Sprintf("scheduler:result:%s:%x", algorithm, sum[:8])
}

func scheduleViews(schedules []*models.Schedule, prefs *models.Preferences) []dto.ScheduleView {
	views := make([]dto.ScheduleView, 0, len(schedules))
	for i, schedule := range schedules {
		views = append(views, scheduleView(i+1, schedule, prefs))
	}
	return views
}

func scheduleView(rank int, schedule *models.Schedule, prefs *models.Preferences) dto.ScheduleView {
	view := dto.ScheduleView{
		Rank:          rank,
		TotalCredits:  schedule.TotalCredits(),
		ConflictCount: schedule.ConflictCount(),
		Score:         scoring.Score(schedule, prefs),
		Sections:      make([]dto.SectionView, 0, schedule.Len()),
	}
	for _, day := range scoring.FreeDays(schedule) {
		view.FreeDays = append(view.FreeDays, day.String())
	}
	for _, section := range schedule.Sections() {
		view.Sections = append(view.Sections, sectionView(section))
	}
	return view
}

func sectionView(section *models.Section) dto.SectionView {
	view := dto.SectionView{
		Code:       section.Code,
		MainCode:   section.MainCode,
		Name:       section.Name,
		Credits:    section.Credits,
		Type:       string(section.Type),
		Instructor: section.Instructor,
		Slots:      make([]string, 0, len(section.Slots)),
	}
	for _, slot := range section.Slots {
		view.Slots = append(view.Slots, slot.String())
	}
	return view
}

func statsView(stats search.Stats) dto.RunStatsView {
	return dto.RunStatsView{
		NodesExplored:  stats.NodesExplored,
		BranchesPruned: stats.BranchesPruned,
		Iterations:     stats.Iterations,
		Restarts:       stats.Restarts,
		ElapsedMs:      stats.Elapsed.Milliseconds(),
		TimedOut:       stats.TimedOut,
	}
}
