package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/LAWSA07/ProFel/internal/aggregate"
	"github.com/LAWSA07/ProFel/internal/observability"
	"github.com/LAWSA07/ProFel/internal/sources"
	"github.com/LAWSA07/ProFel/internal/types"
)

var combineCommand = &cobra.Command{
	Use:   "combine",
	Short: "Merge multi-platform profiles into one candidate",
	Long: `Merges profiles from several platforms into a single combined candidate.
Profiles come either from JSON files (--profiles) or are fetched live by
platform and username (--fetch github:torvalds --fetch leetcode:alice).
With --job, the combined candidate is scored against the posting.`,
	RunE: runCombineCmd,
}

var (
	combineConfigPath   string
	combineProfilePaths []string
	combineFetchSpecs   []string
	combineProfileDir   string
	combineJobPath      string
	combineOutputPath   string
	combineVerbose      bool
)

func init() {
	combineCommand.Flags().StringVar(&combineConfigPath, "config", "", "Path to config.json file")
	combineCommand.Flags().StringArrayVarP(&combineProfilePaths, "profiles", "p", nil, "Platform profile JSON files (repeatable)")
	combineCommand.Flags().StringArrayVar(&combineFetchSpecs, "fetch", nil, "Profiles to fetch as platform:username (repeatable)")
	combineCommand.Flags().StringVar(&combineProfileDir, "profile-dir", "", "Directory of stored profiles for file-backed fetching")
	combineCommand.Flags().StringVarP(&combineJobPath, "job", "j", "", "Score the combined profile against this job posting")
	combineCommand.Flags().StringVarP(&combineOutputPath, "output", "o", "", "Write result JSON to this path instead of stdout")
	combineCommand.Flags().BoolVarP(&combineVerbose, "verbose", "v", false, "Print a formatted summary")

	rootCmd.AddCommand(combineCommand)
}

func runCombineCmd(cmd *cobra.Command, _ []string) error {
	if len(combineProfilePaths) == 0 && len(combineFetchSpecs) == 0 {
		return fmt.Errorf("at least one --profiles file or --fetch spec is required")
	}

	cfg, err := loadConfig(combineConfigPath)
	if err != nil {
		return err
	}
	cfg.Verbose = cfg.Verbose || combineVerbose
	log := newLogger(cfg)

	ctx := context.Background()

	profiles := make([]types.PlatformProfile, 0, len(combineProfilePaths)+len(combineFetchSpecs))
	for _, path := range combineProfilePaths {
		var profile types.PlatformProfile
		if err := readJSONFile(path, &profile); err != nil {
			return err
		}
		profiles = append(profiles, profile)
	}

	if len(combineFetchSpecs) > 0 {
		requests, err := parseFetchSpecs(combineFetchSpecs)
		if err != nil {
			return err
		}
		registry := buildRegistry(cfg, combineProfileDir)
		fetched, err := registry.FetchAll(ctx, requests, log)
		if err != nil {
			return err
		}
		profiles = append(profiles, fetched...)
	}

	printer := observability.NewPrinter(os.Stdout)
	combined := aggregate.Combine(profiles)
	if cfg.Verbose {
		printer.PrintCombinedProfile(&combined)
	}

	if combineJobPath == "" {
		return writeOutput(cmd, combineOutputPath, combined)
	}

	var job types.RawRecord
	if err := readJSONFile(combineJobPath, &job); err != nil {
		return err
	}

	scorer, _, cleanup, err := buildScorer(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	score := scorer.CombinedProfiles(ctx, profiles, job)
	if cfg.Verbose {
		printer.PrintMatchScore(&score)
	}
	return writeOutput(cmd, combineOutputPath, score)
}

// parseFetchSpecs turns platform:username strings into fetch requests.
func parseFetchSpecs(specs []string) ([]sources.Request, error) {
	requests := make([]sources.Request, 0, len(specs))
	for _, spec := range specs {
		platform, username, ok := splitSpec(spec)
		if !ok {
			return nil, fmt.Errorf("invalid fetch spec %q, expected platform:username", spec)
		}
		requests = append(requests, sources.Request{Platform: platform, Username: username})
	}
	return requests, nil
}

func splitSpec(spec string) (platform, username string, ok bool) {
	for i, r := range spec {
		if r == ':' {
			platform, username = spec[:i], spec[i+1:]
			return platform, username, platform != "" && username != ""
		}
	}
	return "", "", false
}
