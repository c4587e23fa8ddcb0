package ats

import (
	"regexp"
	"strings"

	"resumetric/internal/types"
)

const issueFriendlyLimit = 3

var (
	specialCharPattern = regexp.MustCompile(`[^\w\s\-.,()@/:]`)
	emailPattern       = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phonePattern       = regexp.MustCompile(`\b\d{3}[-.]?\d{3}[-.]?\d{4}\b`)
)

// ScanIssues flags coarse parsing hazards: table-like pipe formatting,
// excessive special characters, and missing contact patterns. This is a
// separate, blunter signal than the main ATS score; both are reported.
func ScanIssues(text string) types.IssueScan {
	var issues []string

	if strings.Count(text, "|") > 10 {
		issues = append(issues, "Contains table formatting that may not parse correctly")
	}
	if len(specialCharPattern.FindAllString(text, -1)) > 20 {
		issues = append(issues, "Contains many special characters that may cause parsing errors")
	}
	if !emailPattern.MatchString(text) {
		issues = append(issues, "Missing email address")
	}
	if !phonePattern.MatchString(text) {
		issues = append(issues, "Missing phone number")
	}

	return types.IssueScan{
		IssuesFound: len(issues),
		Issues:      issues,
		ATSFriendly: len(issues) < issueFriendlyLimit,
	}
}
