// Package sections locates named resume sections (skills, projects,
// experience, ...) inside free text using header line heuristics.
package sections

import (
	"regexp"
	"strings"
)

// sectionKeywords are the known section names used to detect where a located
// section ends: a header line naming a different section terminates the body.
var sectionKeywords = []string{
	"experience", "education", "projects", "skills", "certifications",
	"awards", "achievements", "qualifications", "summary", "objective", "contact",
}

var (
	titleCasePattern = regexp.MustCompile(`^[A-Z][^a-z]*$`)
	separatorPattern = regexp.MustCompile(`^\s*[-=*]{2,}`)
)

// Keyword groups for the standard sections callers ask about.
var (
	SkillsKeywords     = []string{"skills", "technical skills", "competencies", "technologies", "expertise", "proficiencies", "core competencies"}
	ProjectsKeywords   = []string{"projects", "project experience", "portfolio", "work samples", "personal projects"}
	ExperienceKeywords = []string{"experience", "work experience", "professional experience", "employment", "career history"}
	EducationKeywords  = []string{"education", "academic background", "degrees", "university", "studies"}
)

// Locate returns the substring of text from the first header line matching
// one of keywords through the line before the next different section header,
// or through end of text. Returns "" when no header is found; callers treat
// empty as section absent, never as an error.
func Locate(text string, keywords []string) string {
	lines := strings.Split(text, "\n")

	startIdx := -1
	for i, line := range lines {
		clean := strings.ToLower(strings.TrimSpace(line))
		if clean == "" {
			continue
		}
		for _, kw := range keywords {
			if strings.Contains(clean, strings.ToLower(kw)) && looksLikeHeader(line, clean) {
				startIdx = i
				break
			}
		}
		if startIdx != -1 {
			break
		}
	}

	if startIdx == -1 {
		return ""
	}

	endIdx := len(lines)
	for i := startIdx + 1; i < len(lines); i++ {
		clean := strings.ToLower(strings.TrimSpace(lines[i]))
		if clean == "" {
			continue
		}
		if !looksLikeHeader(lines[i], clean) {
			continue
		}
		for _, kw := range sectionKeywords {
			if strings.Contains(clean, kw) && !containsAny(clean, keywords) {
				endIdx = i
				break
			}
		}
		if endIdx != len(lines) {
			break
		}
	}

	return strings.Join(lines[startIdx:endIdx], "\n")
}

// looksLikeHeader applies the header heuristics: short line, trailing colon,
// all uppercase, title-case-only, or a decorative separator.
func looksLikeHeader(raw, clean string) bool {
	trimmed := strings.TrimSpace(raw)
	return len(clean) < 80 ||
		strings.HasSuffix(clean, ":") ||
		isAllUpper(trimmed) ||
		titleCasePattern.MatchString(trimmed) ||
		separatorPattern.MatchString(raw)
}

func isAllUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		if r >= 'a' && r <= 'z' {
			return false
		}
		if r >= 'A' && r <= 'Z' {
			hasLetter = true
		}
	}
	return hasLetter
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
