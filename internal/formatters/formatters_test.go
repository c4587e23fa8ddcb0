package formatters

import (
	"strings"
	"testing"

	"resumetric/internal/types"
)

func sampleOutput() types.AnalyzeResumeOutput {
	return types.AnalyzeResumeOutput{
		Profile: types.CandidateProfile{
			Contact:    types.ContactInfo{Name: "Jane Doe", Email: "jane@example.com"},
			Skills:     []string{"Python", "Docker"},
			Experience: "5 years",
			Language:   "en",
		},
		RoleMatches: []types.RoleMatch{{
			JobTitle:        "Backend Developer",
			MatchPercentage: 82,
			MatchingSkills:  []string{"Python", "Docker"},
			Recommendation:  "Good fit - interview recommended",
		}},
		ATS: types.ATSReport{ATSScore: 74, ATSFriendly: true},
		Assessment: types.Assessment{
			Strengths: []string{"Solid technical foundation"},
		},
	}
}

func TestRegistryDispatch(t *testing.T) {
	registry := NewFormatterRegistry()

	t.Run("json works for any type", func(t *testing.T) {
		out, err := registry.Format(sampleOutput(), "json")
		if err != nil {
			t.Fatalf("Format: %v", err)
		}
		if !strings.Contains(out, `"atsScore": 74`) {
			t.Errorf("json output missing ats score:\n%s", out)
		}
	})

	t.Run("unknown format errors", func(t *testing.T) {
		if _, err := registry.Format(sampleOutput(), "yaml"); err == nil {
			t.Error("expected error for unregistered format")
		}
	})
}

func TestAnalyzeTextFormatter(t *testing.T) {
	out, err := (&AnalyzeTextFormatter{}).Format(sampleOutput())
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	for _, want := range []string{
		"=== CANDIDATE PROFILE ===",
		"Name: Jane Doe",
		"1. Backend Developer (82%)",
		"ATS Score: 74/100",
		"Solid technical foundation",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	if _, err := (&AnalyzeTextFormatter{}).Format("wrong type"); err == nil {
		t.Error("expected type mismatch error")
	}
}

func TestAnalyzeMarkdownFormatter(t *testing.T) {
	out, err := (&AnalyzeMarkdownFormatter{}).Format(sampleOutput())
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if !strings.Contains(out, "# Resume Analysis") {
		t.Errorf("missing title:\n%s", out)
	}
	if !strings.Contains(out, "### 1. Backend Developer (82%)") {
		t.Errorf("missing role heading:\n%s", out)
	}
}

func TestRolesTextFormatter(t *testing.T) {
	roles := types.RolesOutput{Roles: []types.RoleSummary{{
		Title:     "Data Scientist",
		Seniority: "mid",
		MinSkills: 2,
		Categories: map[string][]string{
			"core": {"Python", "Statistics"},
		},
	}}}

	out, err := (&RolesTextFormatter{}).Format(roles)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if !strings.Contains(out, "Data Scientist [mid]") {
		t.Errorf("missing role line:\n%s", out)
	}
	if !strings.Contains(out, "core: Python, Statistics") {
		t.Errorf("missing category line:\n%s", out)
	}
}

func TestATSTextFormatter(t *testing.T) {
	report := types.ATSReport{
		ATSScore:     60,
		KeywordScore: 40,
		KeywordMatches: map[string]types.KeywordCategoryMatch{
			"technical": {Matched: []string{"python"}, Subtotal: 1},
		},
		Issues: types.IssueScan{
			IssuesFound: 1,
			Issues:      []string{"Resume contains many special characters"},
		},
	}

	out, err := (&ATSTextFormatter{}).Format(report)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if !strings.Contains(out, "technical (1): python") {
		t.Errorf("missing keyword category:\n%s", out)
	}
	if !strings.Contains(out, "Issues found (1):") {
		t.Errorf("missing issues section:\n%s", out)
	}
}
