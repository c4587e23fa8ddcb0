package ats

import (
	"strings"
	"testing"
)

const wellFormedResume = `Jane Doe
jane.doe@example.com
555-123-4567

EXPERIENCE
Senior developer with leadership experience since 2018. Led a team building REST services in Python and Java. Managed Docker and AWS deployments with strong communication skills and teamwork.

EDUCATION
Bachelor degree in computer science, 2016.

SKILLS
Python, Java, JavaScript, SQL, Docker, AWS, Git, API design, problem solving.
Delivered analytical dashboards. Organized agile ceremonies with scrum teams.
`

func TestScoreBounds(t *testing.T) {
	s := NewScorer()

	texts := []string{
		"",
		"short",
		wellFormedResume,
		strings.Repeat("python java aws docker kubernetes leadership senior master phd ", 50),
	}

	for _, text := range texts {
		report := s.Score(text, "")
		if report.ATSScore < 0 || report.ATSScore > 100 {
			t.Errorf("ATSScore = %d out of [0,100] for %q...", report.ATSScore, trim(text))
		}
		if report.KeywordScore < 0 || report.KeywordScore > 100 {
			t.Errorf("KeywordScore = %d out of [0,100]", report.KeywordScore)
		}
		if report.FormatScore < 0 || report.FormatScore > 100 {
			t.Errorf("FormatScore = %d out of [0,100]", report.FormatScore)
		}
		if len(report.MissingKeywords) > 10 {
			t.Errorf("missing keywords %d exceeds cap", len(report.MissingKeywords))
		}
		if report.ATSFriendly != (report.ATSScore >= 70) {
			t.Errorf("ATSFriendly = %v inconsistent with score %d", report.ATSFriendly, report.ATSScore)
		}
	}
}

func TestKeywordCaseInsensitive(t *testing.T) {
	s := NewScorer()

	variants := []string{"PYTHON developer", "python developer", "Python developer"}
	base := s.Score(variants[0], "")
	for _, v := range variants[1:] {
		r := s.Score(v, "")
		if r.KeywordScore != base.KeywordScore {
			t.Errorf("keyword score differs across case variants: %d vs %d", r.KeywordScore, base.KeywordScore)
		}
	}
}

func TestReadabilityScore(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"no sentences", "just words without any terminator", 50},
		{"optimal band", strings.Repeat("one two three four five six seven eight nine ten eleven twelve thirteen fourteen fifteen sixteen. ", 3), 100},
		{"acceptable band", "short sentence here with twelve words in it okay right now done.", 80},
		{"too short", "Tiny. Bits. Of. Text.", 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := readabilityScore(tt.text); got != tt.want {
				t.Errorf("readabilityScore = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestJobMatchScore(t *testing.T) {
	t.Run("no job description yields zero", func(t *testing.T) {
		report := NewScorer().Score(wellFormedResume, "")
		if report.JobMatchScore != 0 {
			t.Errorf("JobMatchScore = %d, want 0", report.JobMatchScore)
		}
	})

	t.Run("full overlap", func(t *testing.T) {
		if got := jobMatchScore("python docker kubernetes", "python docker kubernetes"); got != 100 {
			t.Errorf("jobMatchScore = %d, want 100", got)
		}
	})

	t.Run("short tokens ignored", func(t *testing.T) {
		if got := jobMatchScore("go api sql", "go api sql"); got != 0 {
			t.Errorf("jobMatchScore = %d, want 0 (all tokens <= 3 chars)", got)
		}
	})
}

func TestMissingKeywordsAllPresent(t *testing.T) {
	text := strings.Join(highValueKeywords, " ")
	if missing := missingKeywords(text); len(missing) != 0 {
		t.Errorf("missing = %v, want empty when all high-value phrases present", missing)
	}
}

func TestFormatScoreComponents(t *testing.T) {
	t.Run("single block penalized", func(t *testing.T) {
		oneLine := "experience " + strings.Repeat("word ", 100)
		multiLine := "experience\n" + strings.Repeat("word\n", 15)
		if formatScore(oneLine) >= formatScore(multiLine) {
			t.Error("single-block text should score below multi-line text")
		}
	})

	t.Run("year bonus", func(t *testing.T) {
		// Short text keeps the base under the clamp so the bonus is visible.
		base := "experience\nskills"
		if formatScore(base+" 2023") <= formatScore(base) {
			t.Error("year mention should add to format score")
		}
	})
}

func TestScanIssues(t *testing.T) {
	t.Run("pipes flagged", func(t *testing.T) {
		text := strings.Repeat("a | b | c | d | e | f ", 3) // 15 pipes, past the >10 threshold
		scan := ScanIssues(text)
		found := false
		for _, issue := range scan.Issues {
			if strings.Contains(issue, "table formatting") {
				found = true
			}
		}
		if !found {
			t.Errorf("expected table formatting issue, got %v", scan.Issues)
		}
		// No email, no phone: 3 issues total flips the verdict.
		if scan.ATSFriendly {
			t.Errorf("expected unfriendly verdict with %d issues", scan.IssuesFound)
		}
	})

	t.Run("clean text", func(t *testing.T) {
		scan := ScanIssues("Reach me at jane@example.com or 555-123-4567.")
		if scan.IssuesFound != 0 || !scan.ATSFriendly {
			t.Errorf("expected no issues, got %+v", scan)
		}
	})
}

func TestScoreDeterministic(t *testing.T) {
	s := NewScorer()
	first := s.Score(wellFormedResume, "python engineer with docker experience")
	for i := 0; i < 3; i++ {
		again := s.Score(wellFormedResume, "python engineer with docker experience")
		if again.ATSScore != first.ATSScore || again.JobMatchScore != first.JobMatchScore {
			t.Fatalf("non-deterministic ATS result: %+v vs %+v", again, first)
		}
	}
}

func trim(s string) string {
	if len(s) > 40 {
		return s[:40]
	}
	return s
}
