// Package ats estimates how an applicant tracking system would score a
// resume: weighted keyword coverage, format heuristics, readability, and an
// optional job-description overlap, combined into one bounded percentage.
package ats

import (
	"regexp"
	"strings"

	"resumetric/internal/types"
)

// Composite weights and the empirical keyword ceiling.
const (
	keywordWeight     = 0.4
	formatWeight      = 0.3
	readabilityWeight = 0.2
	jobMatchWeight    = 0.1

	keywordCeiling = 200

	friendlyThreshold  = 70
	maxMissingKeywords = 10
)

var (
	nonASCIIPattern = regexp.MustCompile(`[^\x00-\x7F]`)
	yearPattern     = regexp.MustCompile(`\d{4}`)
	sentenceEnd     = regexp.MustCompile(`[.!?]+`)
)

// Scorer computes ATS reports. It is stateless and safe for concurrent use.
type Scorer struct{}

// NewScorer returns an ATS scorer.
func NewScorer() *Scorer {
	return &Scorer{}
}

// Score produces the full ATS report for the resume text, optionally matched
// against a job description. It never fails; degenerate input yields neutral
// component scores.
func (s *Scorer) Score(text, jobDescription string) types.ATSReport {
	matches, subtotals, total := matchKeywords(text)
	formatScore := formatScore(text)
	readability := readabilityScore(text)

	jobMatch := 0
	if jobDescription != "" {
		jobMatch = jobMatchScore(text, jobDescription)
	}

	keywordScore := min(100.0, float64(total)/keywordCeiling*100)

	composite := int(keywordScore*keywordWeight +
		float64(formatScore)*formatWeight +
		float64(readability)*readabilityWeight +
		float64(jobMatch)*jobMatchWeight)

	return types.ATSReport{
		ATSScore:         composite,
		KeywordScore:     int(keywordScore),
		KeywordMatches:   matches,
		FormatScore:      formatScore,
		ReadabilityScore: readability,
		JobMatchScore:    jobMatch,
		Recommendations:  recommendations(composite, subtotals, matches, formatScore),
		MissingKeywords:  missingKeywords(text),
		ATSFriendly:      composite >= friendlyThreshold,
		Issues:           ScanIssues(text),
	}
}

// matchKeywords scans for each weighted keyword as a case-insensitive
// substring and accumulates per-category subtotals.
func matchKeywords(text string) (map[string]types.KeywordCategoryMatch, map[string]int, int) {
	textLower := strings.ToLower(text)

	matches := make(map[string]types.KeywordCategoryMatch, len(categoryOrder))
	subtotals := make(map[string]int, len(categoryOrder))
	total := 0

	for _, category := range categoryOrder {
		var matched []string
		subtotal := 0
		for _, keyword := range keywordOrder[category] {
			if strings.Contains(textLower, keyword) {
				matched = append(matched, keyword)
				subtotal += keywordWeights[category][keyword]
			}
		}
		matches[category] = types.KeywordCategoryMatch{Matched: matched, Subtotal: subtotal}
		subtotals[category] = subtotal
		total += subtotal
	}
	return matches, subtotals, total
}

// formatScore applies layout heuristics: penalties for exotic characters,
// single-block text, and tab-heavy layouts; bonuses for standard section
// names and year mentions.
func formatScore(text string) int {
	score := 100

	if len(nonASCIIPattern.FindAllString(text, -1)) > 50 {
		score -= 10
	}
	if len(strings.Split(text, "\n")) < 10 {
		score -= 15
	}
	if strings.Count(text, "\t") > 20 {
		score -= 10
	}

	textLower := strings.ToLower(text)
	for _, section := range []string{"experience", "education", "skills"} {
		if strings.Contains(textLower, section) {
			score += 10
			break
		}
	}
	if yearPattern.MatchString(text) {
		score += 5
	}

	return max(0, min(100, score))
}

// readabilityScore bands average words per sentence. Zero sentences returns
// the neutral 50 rather than dividing by zero.
func readabilityScore(text string) int {
	words := len(strings.Fields(text))
	sentences := len(sentenceEnd.FindAllString(text, -1))

	if sentences == 0 {
		return 50
	}

	avg := float64(words) / float64(sentences)
	switch {
	case avg >= 15 && avg <= 20:
		return 100
	case avg >= 10 && avg <= 25:
		return 80
	default:
		return 60
	}
}

// jobMatchScore is the share of meaningful job-description tokens (longer
// than 3 characters) also present in the resume.
func jobMatchScore(resumeText, jobDescription string) int {
	resumeWords := tokenSet(resumeText)
	jobWords := tokenSet(jobDescription)

	if len(jobWords) == 0 {
		return 0
	}

	matches := 0
	for word := range jobWords {
		if resumeWords[word] {
			matches++
		}
	}
	return min(100, matches*100/len(jobWords))
}

func tokenSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, word := range strings.Fields(strings.ToLower(text)) {
		if len(word) > 3 {
			set[word] = true
		}
	}
	return set
}

func recommendations(score int, subtotals map[string]int, matches map[string]types.KeywordCategoryMatch, formatScore int) []string {
	var recs []string

	if score < friendlyThreshold {
		recs = append(recs, "Improve overall ATS compatibility - score below 70%")
	}
	if subtotals[CategoryTechnical] < 30 {
		recs = append(recs, "Add more technical keywords relevant to your field")
	}
	if subtotals[CategorySoftSkills] < 20 {
		recs = append(recs, "Include soft skills like leadership, communication, teamwork")
	}
	if formatScore < 80 {
		recs = append(recs, "Improve resume formatting - use standard sections and clear structure")
	}
	if len(matches[CategoryExperience].Matched) < 3 {
		recs = append(recs, "Include more experience-related keywords (senior, lead, manager)")
	}

	return recs
}

func missingKeywords(text string) []string {
	textLower := strings.ToLower(text)

	var missing []string
	for _, keyword := range highValueKeywords {
		if !strings.Contains(textLower, keyword) {
			missing = append(missing, keyword)
		}
	}
	if len(missing) > maxMissingKeywords {
		missing = missing[:maxMissingKeywords]
	}
	return missing
}
