package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/LAWSA07/ProFel/internal/observability"
	"github.com/LAWSA07/ProFel/internal/schemas"
	"github.com/LAWSA07/ProFel/internal/types"
)

var matchCommand = &cobra.Command{
	Use:   "match",
	Short: "Match a candidate profile against one or more job postings",
	Long: `Runs the weighted skill matcher for a profile against a job posting.
With --jobs, the profile is scored against every posting in the file and the
results are ranked best first.`,
	RunE: runMatchCmd,
}

var (
	matchConfigPath  string
	matchProfilePath string
	matchJobPath     string
	matchJobsPath    string
	matchOutputPath  string
	matchVerbose     bool
)

func init() {
	matchCommand.Flags().StringVar(&matchConfigPath, "config", "", "Path to config.json file")
	matchCommand.Flags().StringVarP(&matchProfilePath, "profile", "p", "", "Path to profile JSON file (required)")
	matchCommand.Flags().StringVarP(&matchJobPath, "job", "j", "", "Path to job posting JSON file (mutually exclusive with --jobs)")
	matchCommand.Flags().StringVar(&matchJobsPath, "jobs", "", "Path to JSON file holding an array of job postings")
	matchCommand.Flags().StringVarP(&matchOutputPath, "output", "o", "", "Write result JSON to this path instead of stdout")
	matchCommand.Flags().BoolVarP(&matchVerbose, "verbose", "v", false, "Print a formatted summary")
	_ = matchCommand.MarkFlagRequired("profile")

	rootCmd.AddCommand(matchCommand)
}

func runMatchCmd(cmd *cobra.Command, _ []string) error {
	if matchJobPath == "" && matchJobsPath == "" {
		return fmt.Errorf("either --job or --jobs is required")
	}
	if matchJobPath != "" && matchJobsPath != "" {
		return fmt.Errorf("--job and --jobs are mutually exclusive")
	}

	cfg, err := loadConfig(matchConfigPath)
	if err != nil {
		return err
	}
	cfg.Verbose = cfg.Verbose || matchVerbose
	log := newLogger(cfg)

	var profile types.RawRecord
	if err := readJSONFile(matchProfilePath, &profile); err != nil {
		return err
	}
	if err := schemas.ValidateProfileRecord(profile); err != nil {
		return fmt.Errorf("invalid profile: %w", err)
	}

	ctx := context.Background()
	scorer, _, cleanup, err := buildScorer(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	printer := observability.NewPrinter(os.Stdout)

	if matchJobPath != "" {
		var job types.RawRecord
		if err := readJSONFile(matchJobPath, &job); err != nil {
			return err
		}
		if err := schemas.ValidateJobRecord(job); err != nil {
			return fmt.Errorf("invalid job: %w", err)
		}

		result := scorer.Score(ctx, profile, job)
		if cfg.Verbose {
			printer.PrintMatchResult(&result)
		}
		return writeOutput(cmd, matchOutputPath, result)
	}

	var jobRecords []types.RawRecord
	if err := readJSONFile(matchJobsPath, &jobRecords); err != nil {
		return err
	}
	for i, job := range jobRecords {
		if err := schemas.ValidateJobRecord(job); err != nil {
			return fmt.Errorf("invalid job at index %d: %w", i, err)
		}
	}

	matches := scorer.MatchProfileToJobs(ctx, profile, jobRecords)
	if cfg.Verbose {
		printer.PrintProfileMatches(&matches)
	}
	return writeOutput(cmd, matchOutputPath, matches)
}
