package assessment

import (
	"strings"
	"testing"

	"resumetric/internal/types"
)

func TestStrengths(t *testing.T) {
	g := NewGenerator()

	t.Run("strong expertise with three skills in a category", func(t *testing.T) {
		a := g.Generate(Input{Profile: types.CandidateProfile{
			Skills: []string{"Python", "Ruby", "Kotlin"},
		}})
		want := "Strong expertise in Programming Languages (3 skills)"
		if !contains(a.Strengths, want) {
			t.Errorf("strengths = %v, want to include %q", a.Strengths, want)
		}
	})

	t.Run("good foundation with a single skill", func(t *testing.T) {
		a := g.Generate(Input{Profile: types.CandidateProfile{
			Skills: []string{"MongoDB"},
		}})
		want := "Good foundation in Databases"
		if !contains(a.Strengths, want) {
			t.Errorf("strengths = %v, want to include %q", a.Strengths, want)
		}
	})

	t.Run("diversity bonus at ten skills", func(t *testing.T) {
		skills := []string{"Python", "Ruby", "Kotlin", "React", "Vue", "MySQL", "Redis", "AWS", "Docker", "Git"}
		a := g.Generate(Input{Profile: types.CandidateProfile{Skills: skills}})
		want := "Diverse technical skill set with 10 technologies"
		if !contains(a.Strengths, want) {
			t.Errorf("strengths = %v, want to include %q", a.Strengths, want)
		}
	})

	t.Run("fallback with no recognized skills", func(t *testing.T) {
		a := g.Generate(Input{Profile: types.CandidateProfile{}})
		if len(a.Strengths) != 1 || a.Strengths[0] != "Solid technical foundation" {
			t.Errorf("strengths = %v, want only the fallback", a.Strengths)
		}
	})
}

func TestWeaknesses(t *testing.T) {
	g := NewGenerator()

	t.Run("empty profile lists gaps", func(t *testing.T) {
		a := g.Generate(Input{Profile: types.CandidateProfile{}})
		// Two capped category gaps plus the narrow-skillset note.
		if len(a.Weaknesses) != 3 {
			t.Fatalf("weaknesses = %v, want 3 entries", a.Weaknesses)
		}
		if a.Weaknesses[0] != "Limited experience in Programming Languages" {
			t.Errorf("first weakness = %q", a.Weaknesses[0])
		}
	})

	t.Run("covered profile is well rounded", func(t *testing.T) {
		a := g.Generate(Input{Profile: types.CandidateProfile{
			Skills: []string{"Python", "React", "PostgreSQL", "Docker", "Git"},
		}})
		if len(a.Weaknesses) != 1 || a.Weaknesses[0] != "Well-rounded skill profile" {
			t.Errorf("weaknesses = %v, want only the well-rounded note", a.Weaknesses)
		}
	})
}

func TestSuggestions(t *testing.T) {
	g := NewGenerator()

	t.Run("capped at eight", func(t *testing.T) {
		a := g.Generate(Input{Profile: types.CandidateProfile{}})
		if len(a.Suggestions) != maxSuggestions {
			t.Errorf("suggestions = %d entries, want cap of %d:\n%v", len(a.Suggestions), maxSuggestions, a.Suggestions)
		}
	})

	t.Run("missing linkedin triggers visibility and networking advice", func(t *testing.T) {
		a := g.Generate(Input{Profile: types.CandidateProfile{}})
		if !contains(a.Suggestions, "Add LinkedIn profile to improve professional visibility") {
			t.Errorf("expected visibility suggestion, got %v", a.Suggestions)
		}
		if !contains(a.Suggestions, "Build professional network through LinkedIn") {
			t.Errorf("expected networking suggestion, got %v", a.Suggestions)
		}
	})

	t.Run("present linkedin suggests github instead", func(t *testing.T) {
		a := g.Generate(Input{Profile: types.CandidateProfile{
			Contact: types.ContactInfo{LinkedIn: "https://linkedin.com/in/jane"},
		}})
		if !contains(a.Suggestions, "Add GitHub profile to improve professional visibility") {
			t.Errorf("expected github suggestion, got %v", a.Suggestions)
		}
		if contains(a.Suggestions, "Build professional network through LinkedIn") {
			t.Errorf("networking advice should not fire with linkedin present: %v", a.Suggestions)
		}
	})

	t.Run("linkedin and github present suggest a portfolio site", func(t *testing.T) {
		a := g.Generate(Input{Profile: types.CandidateProfile{
			Contact: types.ContactInfo{
				LinkedIn: "https://linkedin.com/in/jane",
				GitHub:   "https://github.com/jane",
			},
		}})
		if !contains(a.Suggestions, "Add portfolio website to improve professional visibility") {
			t.Errorf("expected portfolio suggestion, got %v", a.Suggestions)
		}
	})

	t.Run("trending skill skips what the candidate has", func(t *testing.T) {
		a := g.Generate(Input{Profile: types.CandidateProfile{
			Skills: []string{"Python"},
		}})
		if contains(a.Suggestions, "Learn Python - high demand in current job market") {
			t.Errorf("should not suggest a skill already present: %v", a.Suggestions)
		}
		if !contains(a.Suggestions, "Learn React - high demand in current job market") {
			t.Errorf("expected next trending skill, got %v", a.Suggestions)
		}
	})

	t.Run("metrics in projects suppress the quantify advice", func(t *testing.T) {
		a := g.Generate(Input{Profile: types.CandidateProfile{
			Projects: []string{"Scaled checkout service to 50000 users", "Cut latency by 40%", "Billing portal"},
		}})
		if contains(a.Suggestions, "Include metrics (users, performance, revenue) in projects and experience") {
			t.Errorf("quantify advice should not fire: %v", a.Suggestions)
		}
	})
}

func TestLocalization(t *testing.T) {
	g := NewGenerator()

	t.Run("german templates", func(t *testing.T) {
		a := g.Generate(Input{Profile: types.CandidateProfile{Language: "de"}})
		if a.Strengths[0] != "Solide technische Grundlage" {
			t.Errorf("strengths[0] = %q, want German fallback", a.Strengths[0])
		}
		foundGerman := false
		for _, s := range a.Suggestions {
			if strings.HasPrefix(s, "Fügen Sie") {
				foundGerman = true
			}
		}
		if !foundGerman {
			t.Errorf("expected German suggestions, got %v", a.Suggestions)
		}
	})

	t.Run("unsupported language falls back to english", func(t *testing.T) {
		a := g.Generate(Input{Profile: types.CandidateProfile{Language: "zz"}})
		if a.Strengths[0] != "Solid technical foundation" {
			t.Errorf("strengths[0] = %q, want English fallback", a.Strengths[0])
		}
	})
}

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
