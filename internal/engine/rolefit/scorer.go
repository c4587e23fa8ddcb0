// Package rolefit scores a candidate's extracted skills against the role
// catalog and ranks the best-fitting roles.
package rolefit

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"resumetric/internal/engine/roles"
	"resumetric/internal/engine/skills"
	"resumetric/internal/types"
)

// Category multipliers in the skill score formula: a core match counts three
// times a tool match.
const (
	coreWeight      = 3
	frameworkWeight = 2
	databaseWeight  = 2
	toolWeight      = 1
	weightDivisor   = 8
)

const (
	gatePenalty        = 20
	diversityBonus     = 5
	projectSkillsBonus = 5
	maxProjectHits     = 10
	maxMissingCritical = 5
	topMatches         = 3
)

var yearsPattern = regexp.MustCompile(`(?i)(\d+)\+?\s*(?:years?|yrs?)\s*(?:of\s*)?(?:experience|exp)`)

// Input carries the pre-extracted signals the scorer works from.
type Input struct {
	Text          string   // raw resume text, used for project indicators and years mining
	AllSkills     []string // canonical skills extracted from the whole resume
	ProjectSkills []string // skills attributed to the projects section
}

// Scorer ranks role profiles for a candidate. It holds only the read-only
// catalog and is safe for concurrent use.
type Scorer struct {
	catalog *roles.Catalog
}

// NewScorer creates a role-fit scorer over the given catalog.
func NewScorer(catalog *roles.Catalog) *Scorer {
	return &Scorer{catalog: catalog}
}

// Score computes a RoleMatch for every profile in catalog order, then
// returns the top 3 sorted by match percentage descending. The sort is
// stable, so equal percentages keep catalog order. Score never fails; empty
// input degrades to low gated scores.
func (s *Scorer) Score(in Input) []types.RoleMatch {
	candidate := lowerAll(in.AllSkills)

	matches := make([]types.RoleMatch, 0, s.catalog.Len())
	for _, profile := range s.catalog.Profiles() {
		matches = append(matches, s.scoreProfile(&profile, in, candidate))
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchPercentage > matches[j].MatchPercentage
	})

	if len(matches) > topMatches {
		matches = matches[:topMatches]
	}
	return matches
}

func (s *Scorer) scoreProfile(profile *roles.Profile, in Input, candidate []string) types.RoleMatch {
	coreMatches := countMatches(candidate, profile.CoreSkills)
	frameworkMatches := countMatches(candidate, profile.FrameworkSkills)
	databaseMatches := countMatches(candidate, profile.DatabaseSkills)
	toolMatches := countMatches(candidate, profile.ToolSkills)

	skillScore := float64(coreMatches*coreWeight+frameworkMatches*frameworkWeight+
		databaseMatches*databaseWeight+toolMatches*toolWeight) / weightDivisor

	projectRelevance := projectRelevance(in.Text, profile.ProjectIndicators)
	projectScore := float64(projectRelevance) / float64(maxProjectHits)

	experienceScore := experienceScore(in.Text, profile.Seniority)

	finalScore := (skillScore*profile.Weights.Skills +
		projectScore*profile.Weights.Projects +
		experienceScore*profile.Weights.Experience) * 100

	totalMatches := coreMatches + frameworkMatches + databaseMatches + toolMatches
	if totalMatches < profile.MinSkills {
		finalScore = max(finalScore-gatePenalty, 0)
	}

	if len(distinct(candidate)) > 10 {
		finalScore += diversityBonus
	}
	if len(in.ProjectSkills) > 3 {
		finalScore += projectSkillsBonus
	}

	percentage := min(int(finalScore), 100)

	matching := matchingSkills(candidate, profile)
	missing := missingCriticalSkills(candidate, profile)

	return types.RoleMatch{
		JobTitle:              profile.Title,
		MatchPercentage:       percentage,
		MatchingSkills:        matching,
		MissingCriticalSkills: missing,
		SkillBreakdown: map[string]types.CategoryBreakdown{
			roles.CategoryCore:      {Matched: coreMatches, Total: len(profile.CoreSkills)},
			roles.CategoryFramework: {Matched: frameworkMatches, Total: len(profile.FrameworkSkills)},
			roles.CategoryDatabase:  {Matched: databaseMatches, Total: len(profile.DatabaseSkills)},
			roles.CategoryTool:      {Matched: toolMatches, Total: len(profile.ToolSkills)},
		},
		Assessment:     assessment(percentage, projectRelevance, profile.Title, matching),
		Recommendation: recommendation(percentage, profile.Title),
	}
}

// countMatches counts how many required skills the candidate covers. Each
// required skill contributes at most one match.
func countMatches(candidate []string, required []string) int {
	matches := 0
	for _, req := range required {
		for _, cand := range candidate {
			if skills.Equivalent(req, cand) {
				matches++
				break
			}
		}
	}
	return matches
}

// projectRelevance counts indicator phrase hits in the raw text, capped.
func projectRelevance(text string, indicators []string) int {
	hits := 0
	for _, indicator := range indicators {
		pattern := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(indicator) + `\b`)
		if pattern.MatchString(text) {
			hits++
		}
	}
	return min(hits, maxProjectHits)
}

// experienceScore mines "N years of experience" phrases and maps the
// maximum N into the profile's seniority band. Missing or out-of-band years
// lower the score rather than zeroing it; experience is advisory.
func experienceScore(text, seniority string) float64 {
	maxYears := 0
	for _, m := range yearsPattern.FindAllStringSubmatch(text, -1) {
		if years, err := strconv.Atoi(m[1]); err == nil && years > maxYears {
			maxYears = years
		}
	}

	switch seniority {
	case roles.SeniorityJunior:
		if maxYears <= 2 {
			return 1.0
		}
		return 0.8
	case roles.SeniorityMid:
		if maxYears >= 2 && maxYears <= 5 {
			return 1.0
		}
		return 0.7
	case roles.SenioritySenior:
		if maxYears >= 5 {
			return 1.0
		}
		return 0.6
	}
	return 0.7
}

// matchingSkills lists the required skills the candidate covers, in
// required-skill order, deduplicated.
func matchingSkills(candidate []string, profile *roles.Profile) []string {
	allRequired := make([]string, 0,
		len(profile.CoreSkills)+len(profile.FrameworkSkills)+len(profile.DatabaseSkills)+len(profile.ToolSkills))
	allRequired = append(allRequired, profile.CoreSkills...)
	allRequired = append(allRequired, profile.FrameworkSkills...)
	allRequired = append(allRequired, profile.DatabaseSkills...)
	allRequired = append(allRequired, profile.ToolSkills...)

	var matching []string
	seen := make(map[string]bool)
	for _, req := range allRequired {
		if seen[req] {
			continue
		}
		for _, cand := range candidate {
			if skills.Equivalent(req, cand) {
				matching = append(matching, req)
				seen[req] = true
				break
			}
		}
	}
	return matching
}

// missingCriticalSkills lists unmatched core skills plus the first two
// unmatched framework skills, capped at 5.
func missingCriticalSkills(candidate []string, profile *roles.Profile) []string {
	critical := make([]string, 0, len(profile.CoreSkills)+2)
	critical = append(critical, profile.CoreSkills...)
	critical = append(critical, profile.FrameworkSkills[:min(2, len(profile.FrameworkSkills))]...)

	var missing []string
	for _, skill := range critical {
		found := false
		for _, cand := range candidate {
			if skills.Equivalent(skill, cand) {
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, skill)
		}
	}

	if len(missing) > maxMissingCritical {
		missing = missing[:maxMissingCritical]
	}
	return missing
}

func assessment(score, projectRelevance int, title string, matching []string) []string {
	var out []string

	out = append(out, roleTierSentence(score, title))

	switch n := len(matching); {
	case n >= 8:
		out = append(out, fmt.Sprintf("Comprehensive skill portfolio with %d relevant technologies", n))
	case n >= 4:
		out = append(out, fmt.Sprintf("Solid technical skill set covering %d key areas", n))
	case n >= 1:
		out = append(out, fmt.Sprintf("Foundational skills present in %d core areas", n))
	}

	if projectRelevance >= 6 {
		out = append(out, "Strong project portfolio demonstrates hands-on experience and practical application")
	} else if projectRelevance >= 3 {
		out = append(out, "Relevant project experience shows practical skill application")
	}

	return out
}

func roleTierSentence(score int, title string) string {
	tier := "low"
	if score >= 75 {
		tier = "high"
	} else if score >= 50 {
		tier = "medium"
	}

	if sentences, ok := roleAssessments[title]; ok {
		return sentences[tier]
	}

	switch tier {
	case "high":
		return "Strong technical alignment with excellent skill match"
	case "medium":
		return "Good technical foundation with solid skill coverage"
	default:
		return "Basic technical skills with significant growth potential"
	}
}

func recommendation(score int, title string) string {
	switch {
	case score >= 85:
		return fmt.Sprintf("Highly recommend for %s - excellent fit", title)
	case score >= 70:
		return fmt.Sprintf("Recommend for %s - good candidate", title)
	case score >= 55:
		return fmt.Sprintf("Consider for %s - with some training", title)
	default:
		return fmt.Sprintf("Not recommended for %s - significant skill gaps", title)
	}
}

func lowerAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(s)
	}
	return out
}

func distinct(in []string) []string {
	seen := make(map[string]bool, len(in))
	var out []string
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
