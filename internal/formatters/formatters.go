package formatters

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"resumetric/internal/types"
)

// Formatter interface for different output formats
type Formatter interface {
	Format(data any) (string, error)
	SupportedType() string
}

// FormatterRegistry manages all available formatters
type FormatterRegistry struct {
	formatters map[string]map[string]Formatter // format -> type -> formatter
}

// NewFormatterRegistry creates a new formatter registry with default formatters
func NewFormatterRegistry() *FormatterRegistry {
	registry := &FormatterRegistry{
		formatters: make(map[string]map[string]Formatter),
	}

	// Register default formatters
	registry.RegisterFormatter("json", "any", &JSONFormatter{})
	registry.RegisterFormatter("text", "AnalyzeResumeOutput", &AnalyzeTextFormatter{})
	registry.RegisterFormatter("markdown", "AnalyzeResumeOutput", &AnalyzeMarkdownFormatter{})
	registry.RegisterFormatter("text", "ATSReport", &ATSTextFormatter{})
	registry.RegisterFormatter("markdown", "ATSReport", &ATSMarkdownFormatter{})
	registry.RegisterFormatter("text", "RolesOutput", &RolesTextFormatter{})
	registry.RegisterFormatter("markdown", "RolesOutput", &RolesMarkdownFormatter{})

	return registry
}

// RegisterFormatter registers a new formatter for a specific format and data type
func (fr *FormatterRegistry) RegisterFormatter(format, dataType string, formatter Formatter) {
	if fr.formatters[format] == nil {
		fr.formatters[format] = make(map[string]Formatter)
	}
	fr.formatters[format][dataType] = formatter
}

// Format formats data using the appropriate formatter
func (fr *FormatterRegistry) Format(data any, format string) (string, error) {
	dataType := getDataType(data)

	// Try specific formatter first
	if formatters, exists := fr.formatters[format]; exists {
		if formatter, exists := formatters[dataType]; exists {
			return formatter.Format(data)
		}
		// Fall back to generic formatter
		if formatter, exists := formatters["any"]; exists {
			return formatter.Format(data)
		}
	}

	return "", fmt.Errorf("no formatter found for format '%s' and type '%s'", format, dataType)
}

// GetSupportedFormats returns all supported formats
func (fr *FormatterRegistry) GetSupportedFormats() []string {
	formats := make([]string, 0, len(fr.formatters))
	for format := range fr.formatters {
		formats = append(formats, format)
	}
	return formats
}

func getDataType(data any) string {
	switch data.(type) {
	case types.AnalyzeResumeOutput:
		return "AnalyzeResumeOutput"
	case types.ATSReport:
		return "ATSReport"
	case types.RolesOutput:
		return "RolesOutput"
	default:
		return "any"
	}
}

// JSONFormatter handles JSON formatting for any data type
type JSONFormatter struct{}

func (jf *JSONFormatter) Format(data any) (string, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", err
	}
	return string(jsonData), nil
}

func (jf *JSONFormatter) SupportedType() string {
	return "any"
}

// AnalyzeTextFormatter handles text formatting for full analysis results
type AnalyzeTextFormatter struct{}

func (atf *AnalyzeTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.AnalyzeResumeOutput)
	if !ok {
		return "", fmt.Errorf("expected AnalyzeResumeOutput, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== CANDIDATE PROFILE ===\n")
	writeContactText(&output, result.Profile.Contact)
	output.WriteString(fmt.Sprintf("Experience: %s\n", result.Profile.Experience))
	output.WriteString(fmt.Sprintf("Language: %s\n", result.Profile.Language))
	if len(result.Profile.Skills) > 0 {
		output.WriteString(fmt.Sprintf("Skills (%d): %s\n", len(result.Profile.Skills), strings.Join(result.Profile.Skills, ", ")))
	}
	if len(result.Profile.Education) > 0 {
		output.WriteString("Education:\n")
		for _, edu := range result.Profile.Education {
			output.WriteString(fmt.Sprintf("- %s\n", edu))
		}
	}
	output.WriteString("\n")

	output.WriteString("=== ROLE MATCHES ===\n")
	for i, match := range result.RoleMatches {
		output.WriteString(fmt.Sprintf("%d. %s (%d%%)\n", i+1, match.JobTitle, match.MatchPercentage))
		output.WriteString(fmt.Sprintf("   Recommendation: %s\n", match.Recommendation))
		if len(match.MatchingSkills) > 0 {
			output.WriteString(fmt.Sprintf("   Matching skills: %s\n", strings.Join(match.MatchingSkills, ", ")))
		}
		if len(match.MissingCriticalSkills) > 0 {
			output.WriteString(fmt.Sprintf("   Missing critical skills: %s\n", strings.Join(match.MissingCriticalSkills, ", ")))
		}
		for _, line := range match.Assessment {
			output.WriteString(fmt.Sprintf("   %s\n", line))
		}
	}
	output.WriteString("\n")

	output.WriteString("=== ATS COMPATIBILITY ===\n")
	writeATSSummaryText(&output, result.ATS)
	output.WriteString("\n")

	output.WriteString("=== ASSESSMENT ===\n")
	writeBulletSection(&output, "Strengths:", result.Assessment.Strengths)
	writeBulletSection(&output, "Weaknesses:", result.Assessment.Weaknesses)
	writeBulletSection(&output, "Suggestions:", result.Assessment.Suggestions)

	if rec := result.SkillRecommendation; rec != nil {
		output.WriteString("\n=== SKILL RECOMMENDATION ===\n")
		output.WriteString(fmt.Sprintf("Target role: %s (%s)\n", rec.Role, rec.CompatibilityRating))
		output.WriteString(fmt.Sprintf("Priority skills: %s\n", strings.Join(rec.MissingSkills, ", ")))
		output.WriteString(fmt.Sprintf("Projected match after learning: %d%%\n", rec.ProjectedImprovement))
	}

	return output.String(), nil
}

func (atf *AnalyzeTextFormatter) SupportedType() string {
	return "AnalyzeResumeOutput"
}

// AnalyzeMarkdownFormatter handles markdown formatting for full analysis results
type AnalyzeMarkdownFormatter struct{}

func (amf *AnalyzeMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.AnalyzeResumeOutput)
	if !ok {
		return "", fmt.Errorf("expected AnalyzeResumeOutput, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Resume Analysis\n\n")

	output.WriteString("## Candidate Profile\n\n")
	writeContactMarkdown(&output, result.Profile.Contact)
	output.WriteString(fmt.Sprintf("**Experience:** %s\n\n", result.Profile.Experience))
	output.WriteString(fmt.Sprintf("**Language:** %s\n\n", result.Profile.Language))
	if len(result.Profile.Skills) > 0 {
		output.WriteString(fmt.Sprintf("**Skills (%d):** %s\n\n", len(result.Profile.Skills), strings.Join(result.Profile.Skills, ", ")))
	}
	if len(result.Profile.Education) > 0 {
		output.WriteString("**Education:**\n")
		for _, edu := range result.Profile.Education {
			output.WriteString(fmt.Sprintf("- %s\n", edu))
		}
		output.WriteString("\n")
	}

	output.WriteString("## Role Matches\n\n")
	for i, match := range result.RoleMatches {
		output.WriteString(fmt.Sprintf("### %d. %s (%d%%)\n\n", i+1, match.JobTitle, match.MatchPercentage))
		output.WriteString(fmt.Sprintf("**Recommendation:** %s\n\n", match.Recommendation))
		if len(match.MatchingSkills) > 0 {
			output.WriteString(fmt.Sprintf("**Matching skills:** %s\n\n", strings.Join(match.MatchingSkills, ", ")))
		}
		if len(match.MissingCriticalSkills) > 0 {
			output.WriteString(fmt.Sprintf("**Missing critical skills:** %s\n\n", strings.Join(match.MissingCriticalSkills, ", ")))
		}
		for _, line := range match.Assessment {
			output.WriteString(fmt.Sprintf("- %s\n", line))
		}
		if len(match.Assessment) > 0 {
			output.WriteString("\n")
		}
	}

	output.WriteString("## ATS Compatibility\n\n")
	writeATSSummaryMarkdown(&output, result.ATS)

	output.WriteString("## Assessment\n\n")
	writeMarkdownBulletSection(&output, "### Strengths", result.Assessment.Strengths)
	writeMarkdownBulletSection(&output, "### Weaknesses", result.Assessment.Weaknesses)
	writeMarkdownBulletSection(&output, "### Suggestions", result.Assessment.Suggestions)

	if rec := result.SkillRecommendation; rec != nil {
		output.WriteString("## Skill Recommendation\n\n")
		output.WriteString(fmt.Sprintf("**Target role:** %s (%s)\n\n", rec.Role, rec.CompatibilityRating))
		output.WriteString(fmt.Sprintf("**Priority skills:** %s\n\n", strings.Join(rec.MissingSkills, ", ")))
		output.WriteString(fmt.Sprintf("**Projected match after learning:** %d%%\n", rec.ProjectedImprovement))
	}

	return output.String(), nil
}

func (amf *AnalyzeMarkdownFormatter) SupportedType() string {
	return "AnalyzeResumeOutput"
}

// ATSTextFormatter handles text formatting for standalone ATS reports
type ATSTextFormatter struct{}

func (atf *ATSTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.ATSReport)
	if !ok {
		return "", fmt.Errorf("expected ATSReport, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== ATS COMPATIBILITY REPORT ===\n")
	writeATSSummaryText(&output, result)

	if len(result.KeywordMatches) > 0 {
		output.WriteString("\nKeyword matches:\n")
		for _, category := range sortedKeys(result.KeywordMatches) {
			match := result.KeywordMatches[category]
			output.WriteString(fmt.Sprintf("- %s (%d): %s\n", category, match.Subtotal, strings.Join(match.Matched, ", ")))
		}
	}

	if result.Issues.IssuesFound > 0 {
		output.WriteString(fmt.Sprintf("\nIssues found (%d):\n", result.Issues.IssuesFound))
		for _, issue := range result.Issues.Issues {
			output.WriteString(fmt.Sprintf("- %s\n", issue))
		}
	}

	return output.String(), nil
}

func (atf *ATSTextFormatter) SupportedType() string {
	return "ATSReport"
}

// ATSMarkdownFormatter handles markdown formatting for standalone ATS reports
type ATSMarkdownFormatter struct{}

func (amf *ATSMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.ATSReport)
	if !ok {
		return "", fmt.Errorf("expected ATSReport, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# ATS Compatibility Report\n\n")
	writeATSSummaryMarkdown(&output, result)

	if len(result.KeywordMatches) > 0 {
		output.WriteString("## Keyword Matches\n\n")
		for _, category := range sortedKeys(result.KeywordMatches) {
			match := result.KeywordMatches[category]
			output.WriteString(fmt.Sprintf("- **%s** (%d): %s\n", category, match.Subtotal, strings.Join(match.Matched, ", ")))
		}
		output.WriteString("\n")
	}

	if result.Issues.IssuesFound > 0 {
		output.WriteString(fmt.Sprintf("## Issues Found (%d)\n\n", result.Issues.IssuesFound))
		for _, issue := range result.Issues.Issues {
			output.WriteString(fmt.Sprintf("- %s\n", issue))
		}
	}

	return output.String(), nil
}

func (amf *ATSMarkdownFormatter) SupportedType() string {
	return "ATSReport"
}

// RolesTextFormatter handles text formatting for the role catalog listing
type RolesTextFormatter struct{}

func (rtf *RolesTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.RolesOutput)
	if !ok {
		return "", fmt.Errorf("expected RolesOutput, got %T", data)
	}

	var output strings.Builder

	output.WriteString(fmt.Sprintf("=== ROLE CATALOG (%d roles) ===\n\n", len(result.Roles)))
	for _, role := range result.Roles {
		output.WriteString(fmt.Sprintf("%s [%s]\n", role.Title, role.Seniority))
		output.WriteString(fmt.Sprintf("  Minimum matched skills: %d\n", role.MinSkills))
		for _, category := range sortedKeys(role.Categories) {
			output.WriteString(fmt.Sprintf("  %s: %s\n", category, strings.Join(role.Categories[category], ", ")))
		}
		output.WriteString("\n")
	}

	return output.String(), nil
}

func (rtf *RolesTextFormatter) SupportedType() string {
	return "RolesOutput"
}

// RolesMarkdownFormatter handles markdown formatting for the role catalog listing
type RolesMarkdownFormatter struct{}

func (rmf *RolesMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.RolesOutput)
	if !ok {
		return "", fmt.Errorf("expected RolesOutput, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Role Catalog\n\n")
	output.WriteString(fmt.Sprintf("%d roles available.\n\n", len(result.Roles)))
	for _, role := range result.Roles {
		output.WriteString(fmt.Sprintf("## %s\n\n", role.Title))
		output.WriteString(fmt.Sprintf("**Seniority:** %s\n\n", role.Seniority))
		output.WriteString(fmt.Sprintf("**Minimum matched skills:** %d\n\n", role.MinSkills))
		for _, category := range sortedKeys(role.Categories) {
			output.WriteString(fmt.Sprintf("- **%s:** %s\n", category, strings.Join(role.Categories[category], ", ")))
		}
		output.WriteString("\n")
	}

	return output.String(), nil
}

func (rmf *RolesMarkdownFormatter) SupportedType() string {
	return "RolesOutput"
}

func writeContactText(output *strings.Builder, contact types.ContactInfo) {
	if contact.Name != "" {
		output.WriteString(fmt.Sprintf("Name: %s\n", contact.Name))
	}
	if contact.Email != "" {
		output.WriteString(fmt.Sprintf("Email: %s\n", contact.Email))
	}
	if contact.Phone != "" {
		output.WriteString(fmt.Sprintf("Phone: %s\n", contact.Phone))
	}
	if contact.LinkedIn != "" {
		output.WriteString(fmt.Sprintf("LinkedIn: %s\n", contact.LinkedIn))
	}
	if contact.GitHub != "" {
		output.WriteString(fmt.Sprintf("GitHub: %s\n", contact.GitHub))
	}
	if contact.Website != "" {
		output.WriteString(fmt.Sprintf("Website: %s\n", contact.Website))
	}
}

func writeContactMarkdown(output *strings.Builder, contact types.ContactInfo) {
	if contact.Name != "" {
		output.WriteString(fmt.Sprintf("**Name:** %s\n\n", contact.Name))
	}
	if contact.Email != "" {
		output.WriteString(fmt.Sprintf("**Email:** %s\n\n", contact.Email))
	}
	if contact.Phone != "" {
		output.WriteString(fmt.Sprintf("**Phone:** %s\n\n", contact.Phone))
	}
	if contact.LinkedIn != "" {
		output.WriteString(fmt.Sprintf("**LinkedIn:** %s\n\n", contact.LinkedIn))
	}
	if contact.GitHub != "" {
		output.WriteString(fmt.Sprintf("**GitHub:** %s\n\n", contact.GitHub))
	}
	if contact.Website != "" {
		output.WriteString(fmt.Sprintf("**Website:** %s\n\n", contact.Website))
	}
}

func writeATSSummaryText(output *strings.Builder, report types.ATSReport) {
	output.WriteString(fmt.Sprintf("ATS Score: %d/100 (friendly: %t)\n", report.ATSScore, report.ATSFriendly))
	output.WriteString(fmt.Sprintf("Keyword Score: %d/100\n", report.KeywordScore))
	output.WriteString(fmt.Sprintf("Format Score: %d/100\n", report.FormatScore))
	output.WriteString(fmt.Sprintf("Readability Score: %d/100\n", report.ReadabilityScore))
	output.WriteString(fmt.Sprintf("Job Match Score: %d/100\n", report.JobMatchScore))
	if len(report.Recommendations) > 0 {
		output.WriteString("Recommendations:\n")
		for _, rec := range report.Recommendations {
			output.WriteString(fmt.Sprintf("- %s\n", rec))
		}
	}
	if len(report.MissingKeywords) > 0 {
		output.WriteString(fmt.Sprintf("Missing keywords: %s\n", strings.Join(report.MissingKeywords, ", ")))
	}
}

func writeATSSummaryMarkdown(output *strings.Builder, report types.ATSReport) {
	output.WriteString(fmt.Sprintf("**ATS Score:** %d/100 (friendly: %t)\n\n", report.ATSScore, report.ATSFriendly))
	output.WriteString(fmt.Sprintf("**Keyword Score:** %d/100\n\n", report.KeywordScore))
	output.WriteString(fmt.Sprintf("**Format Score:** %d/100\n\n", report.FormatScore))
	output.WriteString(fmt.Sprintf("**Readability Score:** %d/100\n\n", report.ReadabilityScore))
	output.WriteString(fmt.Sprintf("**Job Match Score:** %d/100\n\n", report.JobMatchScore))
	if len(report.Recommendations) > 0 {
		output.WriteString("**Recommendations:**\n")
		for _, rec := range report.Recommendations {
			output.WriteString(fmt.Sprintf("- %s\n", rec))
		}
		output.WriteString("\n")
	}
	if len(report.MissingKeywords) > 0 {
		output.WriteString(fmt.Sprintf("**Missing keywords:** %s\n\n", strings.Join(report.MissingKeywords, ", ")))
	}
}

func writeBulletSection(output *strings.Builder, header string, items []string) {
	if len(items) == 0 {
		return
	}
	output.WriteString(header + "\n")
	for _, item := range items {
		output.WriteString(fmt.Sprintf("- %s\n", item))
	}
}

func writeMarkdownBulletSection(output *strings.Builder, header string, items []string) {
	if len(items) == 0 {
		return
	}
	output.WriteString(header + "\n\n")
	for _, item := range items {
		output.WriteString(fmt.Sprintf("- %s\n", item))
	}
	output.WriteString("\n")
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Global formatter registry
var GlobalRegistry = NewFormatterRegistry()
