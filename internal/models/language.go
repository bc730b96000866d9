package models

// LanguageBreakdown maps a language name to the number of bytes of code in it.
type LanguageBreakdown map[string]int64

// Total returns the sum of all byte counts.
func (b LanguageBreakdown) Total() int64 {
	var total int64
	for _, bytes := range b {
		total += bytes
	}
	return total
}

// LanguageShare is one entry of the language distribution chart.
type LanguageShare struct {
	Name       string  `json:"name"`
	Bytes      int64   `json:"bytes"`
	Percentage float64 `json:"percentage"`
}
