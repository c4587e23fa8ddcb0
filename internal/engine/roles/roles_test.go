package roles

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultCatalogValid(t *testing.T) {
	c := DefaultCatalog()
	if err := c.Validate(); err != nil {
		t.Fatalf("built-in catalog failed validation: %v", err)
	}
	if c.Len() != 24 {
		t.Errorf("expected 24 built-in profiles, got %d", c.Len())
	}
}

func TestDefaultCatalogOrder(t *testing.T) {
	c := DefaultCatalog()
	profiles := c.Profiles()
	if profiles[0].Title != "Senior Software Engineer" {
		t.Errorf("first profile = %q, want Senior Software Engineer", profiles[0].Title)
	}
	if profiles[len(profiles)-1].Title != "Technical Writer" {
		t.Errorf("last profile = %q, want Technical Writer", profiles[len(profiles)-1].Title)
	}
}

func TestValidate(t *testing.T) {
	valid := Profile{
		Title:      "Backend Developer",
		CoreSkills: []string{"Go"},
		Weights:    Weights{Experience: 0.35, Skills: 0.4, Projects: 0.25},
		MinSkills:  2,
		Seniority:  SeniorityMid,
	}

	tests := []struct {
		name    string
		mutate  func(p *Profile)
		wantErr bool
	}{
		{name: "valid profile", mutate: func(p *Profile) {}, wantErr: false},
		{name: "weights off", mutate: func(p *Profile) { p.Weights.Skills = 0.5 }, wantErr: true},
		{name: "negative min skills", mutate: func(p *Profile) { p.MinSkills = -1 }, wantErr: true},
		{name: "bad seniority", mutate: func(p *Profile) { p.Seniority = "principal" }, wantErr: true},
		{name: "empty title", mutate: func(p *Profile) { p.Title = "" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.mutate(&p)
			_, err := NewCatalog([]Profile{p})
			if (err != nil) != tt.wantErr {
				t.Errorf("NewCatalog() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDuplicateTitles(t *testing.T) {
	p := Profile{
		Title:     "QA Engineer",
		Weights:   Weights{Experience: 0.3, Skills: 0.4, Projects: 0.3},
		Seniority: SeniorityMid,
	}
	if _, err := NewCatalog([]Profile{p, p}); err == nil {
		t.Error("expected duplicate title error")
	}
}

func TestLoadCatalog(t *testing.T) {
	profiles := []Profile{
		{
			Title:      "Platform Engineer",
			CoreSkills: []string{"Go", "Kubernetes"},
			Weights:    Weights{Experience: 0.4, Skills: 0.4, Projects: 0.2},
			MinSkills:  2,
			Seniority:  SenioritySenior,
		},
	}
	data, err := json.Marshal(profiles)
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "catalog.json")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	c, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog() error = %v", err)
	}
	if c.Len() != 1 || c.Profiles()[0].Title != "Platform Engineer" {
		t.Errorf("unexpected catalog contents: %+v", c.Profiles())
	}
}

func TestLoadCatalogMissingFile(t *testing.T) {
	if _, err := LoadCatalog(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("expected error for missing catalog file")
	}
}
