// Package assessment renders the narrative feedback of an analysis: skill
// strengths, gaps, and improvement suggestions, templated in the resume's
// detected language with an English fallback.
package assessment

import (
	"fmt"
	"regexp"
	"strings"

	"resumetric/internal/types"
)

const (
	maxSuggestions  = 8
	maxWeakCategory = 2

	strongThreshold    = 3
	diversityThreshold = 10
	narrowThreshold    = 5
	gapThreshold       = 8
	targetProjects     = 3
)

// skillCategory buckets extracted skills by marker substrings, in a fixed
// reporting order.
type skillCategory struct {
	name    string
	markers []string
}

var skillCategories = []skillCategory{
	{"Programming Languages", []string{"python", "java", "javascript", "php", "ruby", "go", "rust", "swift", "kotlin", "scala", "c++", "c#", "typescript"}},
	{"Web Technologies", []string{"react", "angular", "vue", "html", "css", "node", "express", "django", "flask", "spring"}},
	{"Databases", []string{"sql", "mongodb", "postgresql", "mysql", "redis", "elasticsearch", "oracle", "sqlite"}},
	{"Cloud & DevOps", []string{"aws", "azure", "gcp", "docker", "kubernetes", "jenkins", "terraform", "ansible", "devops"}},
	{"AI & Machine Learning", []string{"machine learning", "deep learning", "ai", "tensorflow", "pytorch", "pandas", "numpy", "scikit"}},
	{"Tools & Platforms", []string{"git", "jira", "confluence", "figma", "photoshop", "office", "tableau", "powerbi"}},
}

// Categories a candidate is expected to cover; empty ones become weaknesses.
var coreCategories = []string{"Programming Languages", "Web Technologies", "Databases", "Cloud & DevOps"}

var trendingSkills = []string{"Python", "React", "AWS", "Docker", "Kubernetes", "Machine Learning", "TypeScript", "Node.js"}

// certificationTracks pair a track with its marker skills; the first track
// the candidate already touches yields one certification suggestion.
var certificationTracks = []struct {
	skills []string
}{
	{[]string{"AWS", "Azure", "Google Cloud", "Docker", "Kubernetes"}},
	{[]string{"React", "Angular", "Vue.js", "JavaScript", "TypeScript"}},
	{[]string{"Python", "Java", "Node.js", "C#", "Go"}},
	{[]string{"Python", "SQL", "Machine Learning", "Data Science", "Analytics"}},
}

var industryKeywords = []string{"Agile", "Scrum", "CI/CD", "DevOps", "API", "Microservices", "Cloud", "Security"}

var (
	leadershipKeywords = []string{"lead", "manage", "team", "mentor", "coordinate", "supervise"}
	learningKeywords   = []string{"course", "certification", "workshop", "training", "bootcamp", "udemy", "coursera"}
)

var metricsPattern = regexp.MustCompile(`\d+%|\d+x|\d+ users|\d+ million|\d+ thousand|\$\d+`)

// Input carries the resume text plus the profile already extracted from it.
type Input struct {
	Text    string
	Profile types.CandidateProfile
}

// Generator produces templated assessments. Stateless and safe for
// concurrent use.
type Generator struct{}

// NewGenerator returns an assessment generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate builds the strengths, weaknesses, and capped suggestion list for
// the candidate, localized to the profile's language.
func (g *Generator) Generate(in Input) types.Assessment {
	t := templatesFor(in.Profile.Language)
	buckets := categorize(in.Profile.Skills)

	return types.Assessment{
		Strengths:   strengths(t, buckets, len(in.Profile.Skills)),
		Weaknesses:  weaknesses(t, buckets, len(in.Profile.Skills)),
		Suggestions: suggestions(t, in),
	}
}

// categorize assigns each skill to every category whose marker it contains.
// A skill can land in several buckets.
func categorize(skills []string) map[string][]string {
	buckets := make(map[string][]string, len(skillCategories))
	for _, skill := range skills {
		skillLower := strings.ToLower(skill)
		for _, cat := range skillCategories {
			for _, marker := range cat.markers {
				if strings.Contains(skillLower, marker) {
					buckets[cat.name] = append(buckets[cat.name], skill)
					break
				}
			}
		}
	}
	return buckets
}

func strengths(t templateSet, buckets map[string][]string, total int) []string {
	var out []string

	for _, cat := range skillCategories {
		switch n := len(buckets[cat.name]); {
		case n >= strongThreshold:
			out = append(out, fmt.Sprintf(t.strongExpertise, cat.name, n))
		case n >= 1:
			out = append(out, fmt.Sprintf(t.goodFoundation, cat.name))
		}
	}
	if total >= diversityThreshold {
		out = append(out, fmt.Sprintf(t.diverseSkillset, total))
	}

	if len(out) == 0 {
		return []string{t.basicFoundation}
	}
	return out
}

func weaknesses(t templateSet, buckets map[string][]string, total int) []string {
	var out []string

	for _, name := range coreCategories {
		if len(buckets[name]) == 0 {
			out = append(out, fmt.Sprintf(t.limitedExperience, name))
			if len(out) == maxWeakCategory {
				break
			}
		}
	}
	if total < narrowThreshold {
		out = append(out, t.expandSkillset)
	}

	if len(out) == 0 {
		return []string{t.wellRounded}
	}
	return out
}

// suggestions walks a fixed sequence of triggers and keeps the first
// maxSuggestions hits, so higher-priority advice survives the cap.
func suggestions(t templateSet, in Input) []string {
	var out []string

	textLower := strings.ToLower(in.Text)
	skillsJoined := strings.ToLower(strings.Join(in.Profile.Skills, " "))

	switch {
	case in.Profile.Contact.LinkedIn == "":
		out = append(out, fmt.Sprintf(t.missingContact, "LinkedIn profile"))
	case in.Profile.Contact.GitHub == "":
		out = append(out, fmt.Sprintf(t.missingContact, "GitHub profile"))
	case in.Profile.Contact.Website == "":
		out = append(out, fmt.Sprintf(t.missingContact, "portfolio website"))
	}

	if len(in.Profile.Projects) < targetProjects {
		out = append(out, fmt.Sprintf(t.enhanceProjects, targetProjects-len(in.Profile.Projects)))
	}

	for _, skill := range trendingSkills {
		if !strings.Contains(skillsJoined, strings.ToLower(skill)) {
			out = append(out, fmt.Sprintf(t.learnTrending, skill))
			break
		}
	}

	metricsScope := strings.Join(in.Profile.Projects, " ")
	if metricsScope == "" {
		metricsScope = in.Text
	}
	if !metricsPattern.MatchString(metricsScope) {
		out = append(out, fmt.Sprintf(t.quantifyImpact, "projects and experience"))
	}

tracks:
	for _, track := range certificationTracks {
		for _, skill := range track.skills {
			if strings.Contains(skillsJoined, strings.ToLower(skill)) {
				out = append(out, fmt.Sprintf(t.addCertifications, skill))
				break tracks
			}
		}
	}

	if in.Profile.Contact.LinkedIn == "" {
		out = append(out, fmt.Sprintf(t.networking, "LinkedIn"))
	}

	if hasPortfolioSignal(in.Profile.Projects) {
		out = append(out, t.portfolioWebsite)
	}

	if len(in.Profile.Skills) > 0 {
		out = append(out, fmt.Sprintf(t.openSource, in.Profile.Skills[0]))
	}

	var absent []string
	for _, kw := range industryKeywords {
		if !strings.Contains(textLower, strings.ToLower(kw)) {
			absent = append(absent, kw)
		}
	}
	if len(absent) > 0 {
		if len(absent) > 3 {
			absent = absent[:3]
		}
		out = append(out, fmt.Sprintf(t.addKeywords, strings.Join(absent, ", ")))
	}

	if !containsAny(textLower, leadershipKeywords) {
		out = append(out, t.leadership)
	}
	if !containsAny(textLower, learningKeywords) {
		out = append(out, t.continuousLearning)
	}
	if len(in.Profile.Skills) < gapThreshold {
		out = append(out, fmt.Sprintf(t.skillGap, "technical skills"))
	}

	if len(out) > maxSuggestions {
		out = out[:maxSuggestions]
	}
	return out
}

// hasPortfolioSignal reports whether the project list is substantial enough
// to warrant a portfolio-website suggestion.
func hasPortfolioSignal(projects []string) bool {
	if len(projects) >= 2 {
		return true
	}
	for _, p := range projects {
		pLower := strings.ToLower(p)
		if strings.Contains(pLower, "web") || strings.Contains(pLower, "app") {
			return true
		}
	}
	return false
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
