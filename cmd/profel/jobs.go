package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/LAWSA07/ProFel/internal/jobs"
	"github.com/LAWSA07/ProFel/internal/observability"
	"github.com/LAWSA07/ProFel/internal/types"
)

var jobsCommand = &cobra.Command{
	Use:   "jobs",
	Short: "Work with job postings",
}

var jobsBuildCommand = &cobra.Command{
	Use:   "build",
	Short: "Build a full job posting from a sparse spec",
	Long: `Builds a complete job posting from a title, company, and skill list.
Skills are listed most-important first; importance is derived from position.
A description is generated from the title's seniority level.`,
	RunE: runJobsBuildCmd,
}

var (
	jobsBuildSpecPath   string
	jobsBuildTitle      string
	jobsBuildCompany    string
	jobsBuildLocation   string
	jobsBuildSkillsText string
	jobsBuildOutputPath string
	jobsBuildVerbose    bool
)

func init() {
	jobsBuildCommand.Flags().StringVar(&jobsBuildSpecPath, "spec", "", "Path to job spec JSON file")
	jobsBuildCommand.Flags().StringVarP(&jobsBuildTitle, "title", "t", "", "Job title")
	jobsBuildCommand.Flags().StringVarP(&jobsBuildCompany, "company", "c", "", "Company name")
	jobsBuildCommand.Flags().StringVarP(&jobsBuildLocation, "location", "l", "", "Job location")
	jobsBuildCommand.Flags().StringVarP(&jobsBuildSkillsText, "skills", "s", "", "Skills, most important first, separated by commas or semicolons")
	jobsBuildCommand.Flags().StringVarP(&jobsBuildOutputPath, "output", "o", "", "Write the job JSON to this path instead of stdout")
	jobsBuildCommand.Flags().BoolVarP(&jobsBuildVerbose, "verbose", "v", false, "Print a formatted summary")

	jobsCommand.AddCommand(jobsBuildCommand)
	rootCmd.AddCommand(jobsCommand)
}

func runJobsBuildCmd(cmd *cobra.Command, _ []string) error {
	var spec types.JobSpec

	if jobsBuildSpecPath != "" {
		if err := readJSONFile(jobsBuildSpecPath, &spec); err != nil {
			return err
		}
	}

	// Flags override the spec file.
	if cmd.Flags().Changed("title") {
		spec.Title = jobsBuildTitle
	}
	if cmd.Flags().Changed("company") {
		spec.Company = jobsBuildCompany
	}
	if cmd.Flags().Changed("location") {
		spec.Location = jobsBuildLocation
	}
	if cmd.Flags().Changed("skills") {
		spec.Skills = nil
		for _, name := range jobs.SplitSkills(jobsBuildSkillsText) {
			spec.Skills = append(spec.Skills, types.Skill{Name: name})
		}
	}

	if spec.Title == "" {
		return fmt.Errorf("a job title is required (--title or --spec)")
	}
	if spec.Company == "" {
		return fmt.Errorf("a company is required (--company or --spec)")
	}

	job := jobs.Build(spec)
	if jobsBuildVerbose {
		observability.NewPrinter(os.Stdout).PrintJob(&job)
	}
	return writeOutput(cmd, jobsBuildOutputPath, job)
}
