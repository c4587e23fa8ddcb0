package profile

import (
	"testing"

	"resumetric/internal/engine/skills"
)

const sampleResume = `Jane Doe
jane.doe@example.com | 555-123-4567
linkedin.com/in/janedoe | github.com/janedoe

SKILLS
Python, Django, PostgreSQL, Docker, AWS

PROJECTS
- Checkout service rewrite in Python
- Internal metrics dashboard with React

EXPERIENCE
Backend engineer with 6 years of experience building APIs.

EDUCATION
Bachelor of Science in Computer Science, 2016
`

func newExtractor() *Extractor {
	return NewExtractor(skills.NewExtractor())
}

func TestExtractContact(t *testing.T) {
	contact := newExtractor().Extract(sampleResume, "en").Contact

	tests := []struct {
		field string
		got   string
		want  string
	}{
		{"name", contact.Name, "Jane Doe"},
		{"email", contact.Email, "jane.doe@example.com"},
		{"phone", contact.Phone, "555-123-4567"},
		{"linkedin", contact.LinkedIn, "https://linkedin.com/in/janedoe"},
		{"github", contact.GitHub, "https://github.com/janedoe"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %q, want %q", tt.field, tt.got, tt.want)
		}
	}
}

func TestExtractWebsite(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"labelled portfolio", "Portfolio: janedoe.dev", "https://janedoe.dev"},
		{"label with scheme", "website: https://jane.codes/", "https://jane.codes"},
		{"profile host skipped", "Website: github.com/janedoe", ""},
		{"unlabelled url ignored", "See janedoe.dev for more.", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractWebsite(tt.text); got != tt.want {
				t.Errorf("extractWebsite(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestExtractName(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"plain name", "John Smith\njohn@example.com", "John Smith"},
		{"skips heading", "RESUME\nJohn Smith\n", "John Smith"},
		{"skips contact line", "john@example.com\nJohn Smith\n", "John Smith"},
		{"nothing usable", "RESUME\n12345 Main Street 90210\n", "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractName(tt.text); got != tt.want {
				t.Errorf("extractName = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractProjects(t *testing.T) {
	projects := newExtractor().Extract(sampleResume, "en").Projects
	if len(projects) != 2 {
		t.Fatalf("projects = %v, want 2 entries", projects)
	}
	if projects[0] != "Checkout service rewrite in Python" {
		t.Errorf("projects[0] = %q, bullet marker should be stripped", projects[0])
	}
}

func TestExtractExperience(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"years mention", "6 years of experience", "6 years"},
		{"takes maximum", "2 years of experience in QA, 8 yrs experience in Go", "8 years"},
		{"singular", "1 year of experience", "1 year"},
		{"absent", "seasoned engineer", "Not specified"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractExperience(tt.text); got != tt.want {
				t.Errorf("extractExperience(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestExtractEducation(t *testing.T) {
	education := newExtractor().Extract(sampleResume, "en").Education
	if len(education) != 1 {
		t.Fatalf("education = %v, want 1 entry", education)
	}
	if education[0] != "Bachelor of Science in Computer Science, 2016" {
		t.Errorf("education[0] = %q", education[0])
	}
}

func TestLanguage(t *testing.T) {
	e := newExtractor()

	t.Run("hint wins over detection", func(t *testing.T) {
		if got := e.Extract(sampleResume, "fr").Language; got != "fr" {
			t.Errorf("language = %q, want hint fr", got)
		}
	})

	t.Run("short text defaults to english", func(t *testing.T) {
		if got := e.Extract("kurz", "").Language; got != "en" {
			t.Errorf("language = %q, want en", got)
		}
	})

	t.Run("english resume detected", func(t *testing.T) {
		if got := e.Extract(sampleResume, "").Language; got != "en" {
			t.Errorf("language = %q, want en", got)
		}
	})

	t.Run("german resume detected", func(t *testing.T) {
		text := `Erfahrener Softwareentwickler mit langjähriger Erfahrung in der Entwicklung
von verteilten Systemen. Verantwortlich für Entwurf und Betrieb mehrerer
Dienste. Schwerpunkte sind Datenbanken, Nachrichtenwarteschlangen und die
Automatisierung von Auslieferungen in der Cloud.`
		if got := e.Extract(text, "").Language; got != "de" {
			t.Errorf("language = %q, want de", got)
		}
	})
}
