package stats

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reporadar/reporadar/internal/models"
)

func TestLanguagePercentages(t *testing.T) {
	t.Run("two languages", func(t *testing.T) {
		shares := LanguagePercentages(models.LanguageBreakdown{"Go": 700, "Shell": 300})
		require.Len(t, shares, 2)
		assert.Equal(t, models.LanguageShare{Name: "Go", Bytes: 700, Percentage: 70.0}, shares[0])
		assert.Equal(t, models.LanguageShare{Name: "Shell", Bytes: 300, Percentage: 30.0}, shares[1])
	})

	t.Run("sum within rounding tolerance", func(t *testing.T) {
		shares := LanguagePercentages(models.LanguageBreakdown{"A": 1, "B": 1, "C": 1})
		var sum float64
		for _, s := range shares {
			assert.Equal(t, 33.3, s.Percentage)
			sum += s.Percentage
		}
		assert.InDelta(t, 100.0, sum, 0.1*float64(len(shares)))
		assert.Equal(t, []string{"A", "B", "C"}, names(shares))
	})

	t.Run("zero total", func(t *testing.T) {
		shares := LanguagePercentages(models.LanguageBreakdown{"Go": 0, "C": 0})
		require.Len(t, shares, 2)
		for _, s := range shares {
			assert.Zero(t, s.Percentage)
		}
	})

	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, LanguagePercentages(models.LanguageBreakdown{}))
	})
}

func names(shares []models.LanguageShare) []string {
	out := make([]string, 0, len(shares))
	for _, s := range shares {
		out = append(out, s.Name)
	}
	return out
}

func TestTopContributors(t *testing.T) {
	t.Run("keeps the ten largest of fifteen", func(t *testing.T) {
		records := make([]models.ContributorRecord, 0, 15)
		for i := 1; i <= 15; i++ {
			records = append(records, models.ContributorRecord{
				Login:         fmt.Sprintf("user%02d", i),
				Contributions: i * 10,
			})
		}

		top := TopContributors(records, 10)
		require.Len(t, top, 10)
		assert.Equal(t, "user15", top[0].Login)
		assert.Equal(t, 150, top[0].Contributions)
		assert.Equal(t, "user06", top[9].Login)
		for i := 1; i < len(top); i++ {
			assert.GreaterOrEqual(t, top[i-1].Contributions, top[i].Contributions)
		}
	})

	t.Run("ties ordered by login", func(t *testing.T) {
		top := TopContributors([]models.ContributorRecord{
			{Login: "zed", Contributions: 5},
			{Login: "amy", Contributions: 5},
			{Login: "max", Contributions: 9},
		}, 10)
		require.Len(t, top, 3)
		assert.Equal(t, "max", top[0].Login)
		assert.Equal(t, "amy", top[1].Login)
		assert.Equal(t, "zed", top[2].Login)
	})

	t.Run("does not reorder input", func(t *testing.T) {
		records := []models.ContributorRecord{{Login: "a", Contributions: 1}, {Login: "b", Contributions: 2}}
		TopContributors(records, 1)
		assert.Equal(t, "a", records[0].Login)
	})
}

func TestTopCommitters(t *testing.T) {
	commits := []models.CommitRecord{
		{SHA: "1", AuthorName: "alice"},
		{SHA: "2", AuthorName: "alice"},
		{SHA: "3", AuthorName: "alice"},
		{SHA: "4", AuthorName: "bob"},
		{SHA: "5", AuthorName: "bob"},
		{SHA: "6", AuthorName: "carol"},
	}

	top := TopCommitters(commits, 10)
	assert.Equal(t, []models.CommitterRank{
		{Name: "alice", Commits: 3},
		{Name: "bob", Commits: 2},
		{Name: "carol", Commits: 1},
	}, top)

	t.Run("limit", func(t *testing.T) {
		assert.Len(t, TopCommitters(commits, 2), 2)
	})

	t.Run("tie below first place breaks by name", func(t *testing.T) {
		var commits []models.CommitRecord
		add := func(name string, n int) {
			for i := 0; i < n; i++ {
				commits = append(commits, models.CommitRecord{SHA: fmt.Sprintf("%s-%d", name, i), AuthorName: name})
			}
		}
		add("carol", 3)
		add("alice", 5)
		add("bob", 3)

		for run := 0; run < 20; run++ {
			assert.Equal(t, []models.CommitterRank{
				{Name: "alice", Commits: 5},
				{Name: "bob", Commits: 3},
				{Name: "carol", Commits: 3},
			}, TopCommitters(commits, 10))
		}
	})

	t.Run("unknown author and ties", func(t *testing.T) {
		top := TopCommitters([]models.CommitRecord{
			{SHA: "1", AuthorName: ""},
			{SHA: "2", AuthorName: "dave"},
		}, 10)
		assert.Equal(t, []models.CommitterRank{
			{Name: UnknownAuthor, Commits: 1},
			{Name: "dave", Commits: 1},
		}, top)
	})
}

func TestCountIssues(t *testing.T) {
	totals := CountIssues([]models.IssueRecord{
		{Number: 1, State: models.IssueOpen},
		{Number: 2, State: models.IssueClosed},
		{Number: 3, State: models.IssueOpen, IsPullRequest: true},
	})
	assert.Equal(t, models.IssueTotals{Open: 2, Closed: 1}, totals)
}

func TestCompute(t *testing.T) {
	result := models.NewAggregateResult(&models.RepositorySummary{Name: "repo"})
	result.Languages = models.LanguageBreakdown{"Go": 10}
	result.Commits = []models.CommitRecord{{SHA: "a", AuthorName: "x"}}

	s := Compute(result, 5)
	require.Len(t, s.Languages, 1)
	assert.Equal(t, 100.0, s.Languages[0].Percentage)
	assert.Len(t, s.TopCommitters, 1)
	assert.Empty(t, s.TopContributors)
	assert.Equal(t, models.IssueTotals{}, s.Issues)

	empty := Compute(nil, 5)
	assert.NotNil(t, empty.Languages)
}
