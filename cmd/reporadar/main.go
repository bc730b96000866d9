package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/reporadar/reporadar/internal/analysis"
	"github.com/reporadar/reporadar/internal/config"
	"github.com/reporadar/reporadar/internal/github"
	"github.com/reporadar/reporadar/internal/models"
	"github.com/reporadar/reporadar/pkg/utils"
)

func main() {
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:           "reporadar",
		Short:         "GitHub repository dashboard and originality check",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(analyzeCmd(), originalityCmd(), searchCmd())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

type env struct {
	cfg    *config.Config
	logger *logrus.Logger
	client *github.GitHubClient
}

func setup() (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	// Keep stderr quiet unless asked for more.
	if level == logrus.InfoLevel {
		level = logrus.WarnLevel
	}
	logger.SetLevel(level)

	client := github.NewGitHubClient(
		cfg.GitHub.Token,
		logger,
		github.WithBaseURL(cfg.GitHub.APIBaseURL),
		github.WithTimeout(cfg.GitHub.Timeout.ToDuration()),
	)
	return &env{cfg: cfg, logger: logger, client: client}, nil
}

func analyzeCmd() *cobra.Command {
	var asJSON bool
	var top int

	cmd := &cobra.Command{
		Use:   "analyze [github-url]",
		Short: "Fetch a repository and print its dashboard",
		Args:  cobra.MatchAll(cobra.ExactArgs(1), repoURLArg),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("top") {
				e.cfg.Fetch.TopN = top
			}

			aggregator := github.NewAggregator(e.client, &e.cfg.Fetch, e.logger)
			report, err := aggregator.Report(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, report)
			}
			printReport(out, report)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the report as JSON")
	cmd.Flags().IntVar(&top, "top", 10, "Number of contributors and committers to show")
	return cmd
}

func originalityCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "originality [github-url]",
		Short: "Ask the analysis backend for an originality verdict",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup()
			if err != nil {
				return err
			}

			client := analysis.NewClient(&e.cfg.Backend, e.logger)
			result, err := client.Submit(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, result)
			}
			printAnalysis(out, result)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")
	return cmd
}

func searchCmd() *cobra.Command {
	var language, sortBy string
	var page, perPage int
	var details, asJSON bool

	cmd := &cobra.Command{
		Use:   "search [name]",
		Short: "Search GitHub repositories by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup()
			if err != nil {
				return err
			}

			searcher := github.NewSearcher(e.client, &e.cfg.Search, e.logger)
			q := models.SearchQuery{
				Name:     args[0],
				Language: language,
				Sort:     models.SearchSort(sortBy),
				Page:     page,
				PerPage:  perPage,
			}
			out := cmd.OutOrStdout()

			if details {
				result, err := searcher.SearchDetailed(cmd.Context(), q)
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(out, result)
				}
				printDetailedSearch(out, result)
				return nil
			}

			result, err := searcher.Search(cmd.Context(), q)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(out, result)
			}
			printSearch(out, result)
			return nil
		},
	}
	cmd.Flags().StringVarP(&language, "language", "l", "", "Only repositories in this language")
	cmd.Flags().StringVarP(&sortBy, "sort", "s", "stars", "Sort by stars, forks or updated")
	cmd.Flags().IntVarP(&page, "page", "p", 1, "Result page")
	cmd.Flags().IntVar(&perPage, "per-page", 0, "Results per page")
	cmd.Flags().BoolVar(&details, "details", false, "Include contributor, commit and language details")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the results as JSON")
	return cmd
}

// repoURLArg rejects anything but an https://github.com/{owner}/{repo} link
// before any request is made.
func repoURLArg(cmd *cobra.Command, args []string) error {
	if !utils.IsValidGitHubURL(args[0]) {
		return fmt.Errorf("%q is not a GitHub repository URL (https://github.com/{owner}/{repo})", args[0])
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
