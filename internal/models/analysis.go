package models

import "math"

// CopiedBlock is a code fragment the analysis backend flagged as similar to
// another source. Lower distance means more similar.
type CopiedBlock struct {
	TargetBlock string  `json:"target_block"`
	SimilarTo   string  `json:"similar_to"`
	Distance    float64 `json:"distance"`
}

// SimilarityPercent returns the distance as a percentage with one decimal.
func (b CopiedBlock) SimilarityPercent() float64 {
	return math.Round(b.Distance*1000) / 10
}

// SimilarityBand buckets the block for display: "low" below 0.30,
// "medium" below 0.60, "high" otherwise.
func (b CopiedBlock) SimilarityBand() string {
	switch pct := b.Distance * 100; {
	case pct < 30:
		return "low"
	case pct < 60:
		return "medium"
	default:
		return "high"
	}
}

// AnalysisResult is the originality verdict returned by the analysis backend.
type AnalysisResult struct {
	OriginalityScore float64       `json:"originality_score"`
	Verdict          string        `json:"verdict"`
	IdeaSummary      string        `json:"idea_summary"`
	CopiedBlocks     []CopiedBlock `json:"copied_blocks"`
	SimilarProjects  []string      `json:"similar_projects"`
	ReportURL        *string       `json:"report_url,omitempty"`
}

// Rating turns the originality score into the label shown next to it.
func (r *AnalysisResult) Rating() string {
	switch {
	case r.OriginalityScore > 80:
		return "Highly Original"
	case r.OriginalityScore > 60:
		return "Moderately Original"
	default:
		return "Low Originality"
	}
}
