package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/reporadar/reporadar/internal/models"
)

func orDash(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

func printReport(w io.Writer, r *models.Report) {
	repo := r.Repository
	fmt.Fprintf(w, "%s\n", repo.FullName)
	fmt.Fprintf(w, "  %s\n", orDash(repo.Description))
	fmt.Fprintf(w, "  %s\n\n", repo.HTMLURL)

	fmt.Fprintf(w, "Stars:    %d\n", repo.StargazersCount)
	fmt.Fprintf(w, "Forks:    %d\n", repo.ForksCount)
	fmt.Fprintf(w, "Watchers: %d\n", repo.WatchersCount)
	fmt.Fprintf(w, "Issues:   %d open\n", repo.OpenIssuesCount)
	fmt.Fprintf(w, "Language: %s\n", orDash(repo.Language))
	fmt.Fprintf(w, "License:  %s\n", orDash(repo.License))
	fmt.Fprintf(w, "Branch:   %s\n", repo.DefaultBranch)
	fmt.Fprintf(w, "Created:  %s\n", repo.CreatedAt.Format("2006-01-02"))
	fmt.Fprintf(w, "Updated:  %s\n", repo.UpdatedAt.Format("2006-01-02"))

	if len(r.Stats.Languages) > 0 {
		fmt.Fprintln(w, "\nLanguages:")
		for _, l := range r.Stats.Languages {
			fmt.Fprintf(w, "  %-20s %5.1f%%\n", l.Name, l.Percentage)
		}
	}

	if len(r.Stats.TopContributors) > 0 {
		fmt.Fprintln(w, "\nTop contributors:")
		for i, c := range r.Stats.TopContributors {
			fmt.Fprintf(w, "  %2d. %-25s %d\n", i+1, c.Login, c.Contributions)
		}
	}

	if len(r.Stats.TopCommitters) > 0 {
		fmt.Fprintf(w, "\nTop committers (last %d commits):\n", len(r.Commits))
		for i, c := range r.Stats.TopCommitters {
			fmt.Fprintf(w, "  %2d. %-25s %d\n", i+1, c.Name, c.Commits)
		}
	}

	fmt.Fprintf(w, "\nIssues: %d open, %d closed\n", r.Stats.Issues.Open, r.Stats.Issues.Closed)
}

func printAnalysis(w io.Writer, a *models.AnalysisResult) {
	if a == nil {
		fmt.Fprintln(w, "No analysis results")
		return
	}

	fmt.Fprintf(w, "Originality: %.1f/100 (%s)\n", a.OriginalityScore, a.Rating())
	fmt.Fprintf(w, "Verdict:     %s\n", a.Verdict)
	if a.IdeaSummary != "" {
		fmt.Fprintf(w, "\n%s\n", a.IdeaSummary)
	}

	if len(a.CopiedBlocks) > 0 {
		fmt.Fprintln(w, "\nSimilar code:")
		for _, b := range a.CopiedBlocks {
			fmt.Fprintf(w, "  [%s %.1f%%] %s\n", b.SimilarityBand(), b.SimilarityPercent(), b.SimilarTo)
		}
	}

	if len(a.SimilarProjects) > 0 {
		fmt.Fprintln(w, "\nSimilar projects:")
		for _, p := range a.SimilarProjects {
			fmt.Fprintf(w, "  %s\n", p)
		}
	}

	if a.ReportURL != nil {
		fmt.Fprintf(w, "\nReport: %s\n", *a.ReportURL)
	}
}

func printSearch(w io.Writer, p *models.SearchPage) {
	if len(p.Items) == 0 {
		fmt.Fprintln(w, "No repositories found")
		return
	}

	fmt.Fprintf(w, "%d repositories (page %d)\n\n", p.TotalCount, p.Page)
	for i, item := range p.Items {
		printItem(w, (p.Page-1)*p.PerPage+i+1, item)
		fmt.Fprintln(w)
	}
}

func printDetailedSearch(w io.Writer, p *models.DetailedSearchPage) {
	if len(p.Items) == 0 {
		fmt.Fprintln(w, "No repositories found")
		return
	}

	fmt.Fprintf(w, "%d repositories (page %d)\n\n", p.TotalCount, p.Page)
	for i, d := range p.Items {
		printItem(w, (p.Page-1)*p.PerPage+i+1, d.SearchResultItem)
		fmt.Fprintf(w, "   Contributors: %d  Commits: %d\n", d.ContributorsCount, d.CommitCount)
		if len(d.LanguageNames) > 0 {
			fmt.Fprintf(w, "   Languages: %s\n", strings.Join(d.LanguageNames, ", "))
		}
		fmt.Fprintln(w)
	}
}

func printItem(w io.Writer, n int, item models.SearchResultItem) {
	fmt.Fprintf(w, "%d. %s  ★ %d  forks %d  [%s]\n", n, item.FullName, item.Stars, item.Forks, item.Language)
	fmt.Fprintf(w, "   %s\n", item.HTMLURL)
	fmt.Fprintf(w, "   %s\n", item.Description)
	if len(item.Topics) > 0 {
		fmt.Fprintf(w, "   Topics: %s\n", strings.Join(item.Topics, ", "))
	}
}
