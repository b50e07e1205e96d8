package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/TurkishKEBAB/SchedularDeprecatedV1-sub001/internal/catalog"
	"github.com/TurkishKEBAB/SchedularDeprecatedV1-sub001/internal/dto"
	"github.com/TurkishKEBAB/SchedularDeprecatedV1-sub001/internal/search"
	"github.com/TurkishKEBAB/SchedularDeprecatedV1-sub001/internal/service"
	"github.com/TurkishKEBAB/SchedularDeprecatedV1-sub001/pkg/cache"
	"github.com/TurkishKEBAB/SchedularDeprecatedV1-sub001/pkg/config"
	"github.com/TurkishKEBAB/SchedularDeprecatedV1-sub001/pkg/logger"
	"github.com/TurkishKEBAB/SchedularDeprecatedV1-sub001/pkg/metrics"
)

func main() {
	var (
		catalogPath    = flag.String("catalog", "", "course catalog CSV path (overrides CATALOG_PATH)")
		algorithm      = flag.String("algorithm", "", "algorithm name, or comma list with -compare (empty: auto-select)")
		mandatory      = flag.String("mandatory", "", "comma-separated mandatory course codes")
		optional       = flag.String("optional", "", "comma-separated optional course codes (empty: rest of catalog)")
		maxResults     = flag.Int("max-results", 0, "maximum schedules to keep")
		maxCredits     = flag.Float64("max-credits", 0, "credit cap, 0 for unlimited")
		allowConflicts = flag.Bool("allow-conflicts", false, "tolerate time-slot conflicts")
		maxConflicts   = flag.Int("max-conflicts", 0, "conflict budget when conflicts are allowed")
		timeoutSecs    = flag.Int("timeout", 0, "per-run timeout in seconds")
		seed           = flag.Int64("seed", 0, "random seed, 0 for time-based")
		freeDays       = flag.String("free-days", "", "comma-separated preferred free days (MONDAY..SUNDAY)")
		strictFreeDays = flag.Bool("strict-free-days", false, "reject schedules that occupy a preferred free day")
		maxDailySlots  = flag.Int("max-daily-slots", 0, "daily load cap in periods")
		maxWeeklySlots = flag.Int("max-weekly-slots", 0, "weekly load cap in periods")
		compareMode    = flag.Bool("compare", false, "run several algorithms over the same input")
		sequential     = flag.Bool("sequential", false, "with -compare, run algorithms one at a time")
		listMode       = flag.Bool("list", false, "list registered algorithms and exit")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if *listMode {
		printAlgorithms()
		return
	}

	mandatoryCodes := splitCodes(*mandatory)
	if len(mandatoryCodes) == 0 {
		fmt.Fprintln(os.Stderr, "at least one mandatory course code is required (-mandatory)")
		flag.Usage()
		os.Exit(2)
	}

	path := cfg.Catalog.Path
	if *catalogPath != "" {
		path = *catalogPath
	}
	groups, err := catalog.LoadCSVFile(path)
	if err != nil {
		logr.Sugar().Fatalw("failed to load course catalog", "path", path, "error", err)
	}

	var store *cache.Repository
	if cfg.Cache.Enabled {
		client, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, result caching disabled", zap.Error(err))
		} else {
			store = cache.NewRepository(client, logr)
		}
	}

	var collector *metrics.Metrics
	if cfg.Metrics.Enabled {
		collector = metrics.New(cfg.Metrics.Namespace)
	}

	svc := service.NewSchedulerService(groups, store, collector, nil, logr, service.SchedulerConfig{
		Defaults: engineDefaults(cfg),
		CacheTTL: cfg.Cache.TTL,
	})

	prefs := preferenceFlags(*freeDays, *strictFreeDays, *maxDailySlots, *maxWeeklySlots)
	ctx := context.Background()

	if *compareMode {
		resp, err := svc.Compare(ctx, dto.CompareRequest{
			Algorithms:     splitCodes(*algorithm),
			MandatoryCodes: mandatoryCodes,
			OptionalCodes:  splitCodes(*optional),
			MaxResults:     *maxResults,
			MaxCredits:     *maxCredits,
			AllowConflicts: *allowConflicts,
			MaxConflicts:   *maxConflicts,
			TimeoutSeconds: *timeoutSecs,
			Seed:           *seed,
			Preferences:    prefs,
			Sequential:     *sequential,
		})
		if err != nil {
			logr.Sugar().Fatalw("comparison failed", "error", err)
		}
		printComparison(resp)
	} else {
		resp, err := svc.GenerateSchedules(ctx, dto.GenerateRequest{
			Algorithm:      *algorithm,
			MandatoryCodes: mandatoryCodes,
			OptionalCodes:  splitCodes(*optional),
			MaxResults:     *maxResults,
			MaxCredits:     *maxCredits,
			AllowConflicts: *allowConflicts,
			MaxConflicts:   *maxConflicts,
			TimeoutSeconds: *timeoutSecs,
			Seed:           *seed,
			Preferences:    prefs,
		})
		if err != nil {
			logr.Sugar().Fatalw("schedule generation failed", "error", err)
		}
		printGeneration(resp)
	}

	if collector != nil {
		snapshot, err := json.Marshal(collector.Snapshot())
		if err == nil {
			fmt.Printf("\nmetrics: %s\n", snapshot)
		}
	}
}

// engineDefaults maps the environment configuration onto the engine's
// run configuration. CLI flags override these per run.
func engineDefaults(cfg *config.Config) search.Config {
	return search.Config{
		MaxResults:      cfg.Engine.MaxResults,
		MaxCredits:      cfg.Engine.MaxCredits,
		AllowConflicts:  cfg.Engine.AllowConflicts,
		MaxConflicts:    cfg.Engine.MaxConflicts,
		Timeout:         cfg.Engine.Timeout,
		Seed:            cfg.Engine.Seed,
		DepthIncrement:  cfg.Engine.DepthIncrement,
		MaxIterations:   cfg.Engine.MaxIterations,
		InitialTemp:     cfg.Anneal.InitialTemp,
		CoolingRate:     cfg.Anneal.CoolingRate,
		StagnationLimit: cfg.Anneal.StagnationLimit,
		PopulationSize:  cfg.Genetic.PopulationSize,
		Generations:     cfg.Genetic.Generations,
		CrossoverRate:   cfg.Genetic.CrossoverRate,
		MutationRate:    cfg.Genetic.MutationRate,
		SwarmSize:       cfg.Swarm.Size,
		Inertia:         cfg.Swarm.Inertia,
		Cognitive:       cfg.Swarm.Cognitive,
		Social:          cfg.Swarm.Social,
		TabuTenure:      cfg.Tabu.Tenure,
	}
}

func preferenceFlags(freeDays string, strict bool, maxDaily, maxWeekly int) *dto.PreferencesRequest {
	days := splitCodes(freeDays)
	if len(days) == 0 && !strict && maxDaily == 0 && maxWeekly == 0 {
		return nil
	}
	return &dto.PreferencesRequest{
		FreeDays:       days,
		StrictFreeDays: strict,
		MaxDailySlots:  maxDaily,
		MaxWeeklySlots: maxWeekly,
	}
}

func splitCodes(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	codes := make([]string, 0, len(parts))
	for _, part := range parts {
		if code := strings.TrimSpace(part); code != "" {
			codes = append(codes, code)
		}
	}
	return codes
}

func printAlgorithms() {
	fmt.Printf("%-28s %-26s %-16s %s\n", "NAME", "CATEGORY", "COMPLEXITY", "TRAITS")
	for _, meta := range search.Algorithms() {
		var traits []string
		if meta.Optimal {
			traits = append(traits, "optimal")
		}
		if meta.SupportsPreferences {
			traits = append(traits, "preferences")
		}
		if meta.Optimizer {
			traits = append(traits, "optimizer")
		}
		if meta.SupportsParallel {
			traits = append(traits, "parallel")
		}
		fmt.Printf("%-28s %-26s %-16s %s\n", meta.Name, meta.Category, meta.Complexity, strings.Join(traits, ","))
	}
}

func printGeneration(resp *dto.GenerateResponse) {
	fmt.Printf("run %s algorithm=%s status=%s schedules=%d elapsed=%dms cached=%t\n",
		resp.RunID, resp.Algorithm, resp.Status, len(resp.Schedules), resp.Stats.ElapsedMs, resp.Cached)
	for _, diag := range resp.Diagnostics {
		fmt.Printf("  note: %s\n", diag)
	}
	for _, schedule := range resp.Schedules {
		printSchedule(schedule)
	}
}

func printSchedule(view dto.ScheduleView) {
	free := "none"
	if len(view.FreeDays) > 0 {
		free = strings.Join(view.FreeDays, ",")
	}
	fmt.Printf("#%d credits=%.1f conflicts=%d score=%.1f free=%s\n",
		view.Rank, view.TotalCredits, view.ConflictCount, view.Score, free)
	for _, section := range view.Sections {
		line := fmt.Sprintf("   %-12s %-8s %-24s %s", section.Code, section.Type, section.Name, strings.Join(section.Slots, " "))
		if section.Instructor != "" {
			line += "  " + section.Instructor
		}
		fmt.Println(line)
	}
}

func printComparison(resp *dto.CompareResponse) {
	fmt.Printf("comparison %s\n", resp.RunID)
	fmt.Printf("%-28s %-22s %10s %10s %12s\n", "ALGORITHM", "STATUS", "SCHEDULES", "BEST", "ELAPSED(MS)")
	for _, entry := range resp.Entries {
		best := "-"
		if entry.Best != nil {
			best = fmt.Sprintf("%.1f", entry.Best.Score)
		}
		fmt.Printf("%-28s %-22s %10d %10s %12d\n",
			entry.Algorithm, entry.Status, entry.ScheduleCount, best, entry.ElapsedMs)
		for _, diag := range entry.Diagnostics {
			fmt.Printf("   note: %s\n", diag)
		}
	}
}
