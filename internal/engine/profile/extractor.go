// Package profile mines structured candidate data out of raw resume text:
// name and contact details, skills, project and education lines, a rough
// experience figure, and the resume's language.
package profile

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/abadojack/whatlanggo"

	"resumetric/internal/engine/sections"
	"resumetric/internal/engine/skills"
	"resumetric/internal/types"
)

const (
	nameScanLines = 10
	maxProjects   = 10
	maxEducation  = 3

	// Below this length detection is noise; default to English.
	minDetectionLength = 20
)

var (
	emailPattern    = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	linkedinPattern = regexp.MustCompile(`(?i)linkedin\.com/in/([^\s)\]|;,]+)`)
	githubPattern   = regexp.MustCompile(`(?i)github\.com/([^\s)\]|;,]+)`)

	// Only labelled links count as a portfolio; bare URLs are too noisy.
	websitePattern = regexp.MustCompile(`(?i)(?:portfolio|website|personal site)[:\s]*(?:https?://)?([\w.-]+\.[a-z]{2,})/?`)

	// Hosts already covered by the dedicated contact fields.
	excludedWebsiteDomains = []string{"linkedin", "github", "gmail", "yahoo", "hotmail", "outlook"}

	// Tried in order; the first hit wins.
	phonePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\+\d{1,3}[-.\s]?\d{1,4}[-.\s]?\d{1,4}[-.\s]?\d{1,9}`),
		regexp.MustCompile(`\(\d{3}\)\s?\d{3}[-.\s]?\d{4}`),
		regexp.MustCompile(`\d{3}[-.\s]?\d{3}[-.\s]?\d{4}`),
	}

	namePatterns = []*regexp.Regexp{
		regexp.MustCompile(`^[A-Z][a-z]+ [A-Z][a-z]+$`),
		regexp.MustCompile(`^[A-Z][a-z]+ [A-Z]\. [A-Z][a-z]+$`),
		regexp.MustCompile(`^[A-Z][a-z]+ [A-Z][a-z]+ [A-Z][a-z]+$`),
	}

	digitRunPattern = regexp.MustCompile(`\d{3,}`)
	yearsPattern    = regexp.MustCompile(`(?i)(\d+)\+?\s*(?:years?|yrs?)\s*(?:of\s*)?(?:experience|exp)`)

	educationPattern = regexp.MustCompile(`(?i)\b(?:bachelor|master|phd|ph\.d|b\.sc|m\.sc|b\.s\.|m\.s\.|b\.a\.|m\.a\.|mba|degree|university|college|diploma)\b`)

	headerWords = []string{"resume", "cv", "curriculum", "profile"}
)

// Extractor builds candidate profiles. It shares a skill extractor with the
// scoring pipeline so both see identical skill lists.
type Extractor struct {
	skills *skills.Extractor
}

// NewExtractor returns a profile extractor backed by the given skill
// extractor.
func NewExtractor(sk *skills.Extractor) *Extractor {
	return &Extractor{skills: sk}
}

// Extract mines the resume text into a structured profile. languageHint, if
// non-empty, overrides detection.
func (e *Extractor) Extract(text, languageHint string) types.CandidateProfile {
	language := languageHint
	if language == "" {
		language = detectLanguage(text)
	}

	return types.CandidateProfile{
		Contact:    extractContact(text),
		Skills:     e.skills.Extract(text),
		Projects:   extractProjects(text),
		Experience: extractExperience(text),
		Education:  extractEducation(text),
		Language:   language,
	}
}

// detectLanguage narrows detection to the languages the assessment templates
// cover; everything else falls back to English.
func detectLanguage(text string) string {
	if len(strings.TrimSpace(text)) <= minDetectionLength {
		return "en"
	}
	switch whatlanggo.Detect(text).Lang {
	case whatlanggo.Deu:
		return "de"
	case whatlanggo.Spa:
		return "es"
	case whatlanggo.Fra:
		return "fr"
	default:
		return "en"
	}
}

func extractContact(text string) types.ContactInfo {
	contact := types.ContactInfo{
		Name:  extractName(text),
		Email: emailPattern.FindString(text),
	}

	for _, p := range phonePatterns {
		if m := p.FindString(text); m != "" {
			contact.Phone = m
			break
		}
	}

	if m := linkedinPattern.FindStringSubmatch(text); m != nil {
		if user := cleanHandle(m[1]); user != "" {
			contact.LinkedIn = "https://linkedin.com/in/" + user
		}
	}
	if m := githubPattern.FindStringSubmatch(text); m != nil {
		if user := cleanHandle(m[1]); user != "" {
			contact.GitHub = "https://github.com/" + user
		}
	}
	contact.Website = extractWebsite(text)

	return contact
}

// extractWebsite picks up a labelled portfolio link, skipping hosts the other
// contact fields already cover.
func extractWebsite(text string) string {
	m := websitePattern.FindStringSubmatch(text)
	if m == nil {
		return ""
	}

	site := strings.TrimSpace(m[1])
	if len(site) <= 4 {
		return ""
	}
	lower := strings.ToLower(site)
	for _, domain := range excludedWebsiteDomains {
		if strings.Contains(lower, domain) {
			return ""
		}
	}
	return "https://" + site
}

// extractName scans the top of the resume for a line that looks like a
// person's name rather than a heading or contact detail.
func extractName(text string) string {
	lines := strings.Split(text, "\n")
	if len(lines) > nameScanLines {
		lines = lines[:nameScanLines]
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if len(line) <= 2 || len(line) >= 50 {
			continue
		}
		if strings.Contains(line, "@") || digitRunPattern.MatchString(line) {
			continue
		}
		for _, p := range namePatterns {
			if p.MatchString(line) {
				return line
			}
		}
		if !containsHeaderWord(line) {
			return line
		}
	}
	return "Unknown"
}

func containsHeaderWord(line string) bool {
	for _, word := range strings.Fields(strings.ToLower(line)) {
		for _, header := range headerWords {
			if word == header {
				return true
			}
		}
	}
	return false
}

// extractProjects returns the non-trivial lines of the projects section,
// stripped of bullet markers.
func extractProjects(text string) []string {
	section := sections.Locate(text, sections.ProjectsKeywords)
	if section == "" {
		return nil
	}

	// First line is the section header itself.
	lines := strings.SplitN(section, "\n", 2)
	if len(lines) < 2 {
		return nil
	}

	var projects []string
	for _, line := range strings.Split(lines[1], "\n") {
		line = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "-*•\t "))
		if len(line) < 6 {
			continue
		}
		projects = append(projects, line)
		if len(projects) == maxProjects {
			break
		}
	}
	return projects
}

// extractExperience reports the largest explicit years-of-experience mention,
// or "Not specified" when the resume never states one.
func extractExperience(text string) string {
	years := 0
	found := false
	for _, m := range yearsPattern.FindAllStringSubmatch(text, -1) {
		if n, err := strconv.Atoi(m[1]); err == nil {
			found = true
			if n > years {
				years = n
			}
		}
	}
	if !found {
		return "Not specified"
	}
	if years == 1 {
		return "1 year"
	}
	return fmt.Sprintf("%d years", years)
}

func extractEducation(text string) []string {
	var education []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if len(line) < 6 || !educationPattern.MatchString(line) {
			continue
		}
		education = append(education, line)
		if len(education) == maxEducation {
			break
		}
	}
	return education
}

// cleanHandle trims URL residue and rejects values that cannot be a profile
// handle.
func cleanHandle(raw string) string {
	handle := strings.TrimRight(strings.TrimSpace(raw), "/.")
	if len(handle) < 3 || len(handle) > 50 {
		return ""
	}
	if !isLetter(handle[0]) {
		return ""
	}
	lower := strings.ToLower(handle)
	if strings.HasPrefix(lower, "http") || strings.HasPrefix(lower, "www") {
		return ""
	}
	for _, suffix := range []string{".com", ".net", ".org"} {
		if strings.HasSuffix(lower, suffix) {
			return ""
		}
	}
	return handle
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
