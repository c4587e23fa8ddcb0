package rolefit

import (
	"testing"

	"resumetric/internal/engine/roles"
	"resumetric/internal/engine/skills"
)

func singleProfileCatalog(t *testing.T, p roles.Profile) *roles.Catalog {
	t.Helper()
	c, err := roles.NewCatalog([]roles.Profile{p})
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	return c
}

func profileByTitle(t *testing.T, title string) roles.Profile {
	t.Helper()
	for _, p := range roles.DefaultCatalog().Profiles() {
		if p.Title == title {
			return p
		}
	}
	t.Fatalf("profile %q not in default catalog", title)
	return roles.Profile{}
}

func TestScoreTopThree(t *testing.T) {
	s := NewScorer(roles.DefaultCatalog())
	in := Input{
		Text:      "Built backend services in Go with PostgreSQL and Docker. 4 years of experience.",
		AllSkills: []string{"Go", "PostgreSQL", "Docker", "Git"},
	}

	matches := s.Score(in)
	if len(matches) != 3 {
		t.Fatalf("expected 3 matches from a 24-role catalog, got %d", len(matches))
	}
	for i := 1; i < len(matches); i++ {
		if matches[i].MatchPercentage > matches[i-1].MatchPercentage {
			t.Errorf("matches not sorted descending: %d before %d",
				matches[i-1].MatchPercentage, matches[i].MatchPercentage)
		}
	}
	for _, m := range matches {
		if m.MatchPercentage < 0 || m.MatchPercentage > 100 {
			t.Errorf("%s: match percentage %d out of [0,100]", m.JobTitle, m.MatchPercentage)
		}
		if len(m.MissingCriticalSkills) > 5 {
			t.Errorf("%s: missing critical skills %d exceeds cap", m.JobTitle, len(m.MissingCriticalSkills))
		}
		if m.Recommendation == "" {
			t.Errorf("%s: empty recommendation", m.JobTitle)
		}
	}
}

func TestScoreDeterministic(t *testing.T) {
	s := NewScorer(roles.DefaultCatalog())
	in := Input{
		Text:      "Python developer, 3 years of experience with Django and MySQL.",
		AllSkills: []string{"Python", "Django", "MySQL"},
	}

	first := s.Score(in)
	for i := 0; i < 3; i++ {
		again := s.Score(in)
		for j := range first {
			if first[j].JobTitle != again[j].JobTitle || first[j].MatchPercentage != again[j].MatchPercentage {
				t.Fatalf("non-deterministic result: %+v vs %+v", first[j], again[j])
			}
		}
	}
}

func TestGatePenalty(t *testing.T) {
	base := roles.Profile{
		Title:      "Gate Role",
		CoreSkills: []string{"Go"},
		Weights:    roles.Weights{Skills: 1.0},
		MinSkills:  1,
		Seniority:  roles.SeniorityMid,
	}
	gated := base
	gated.MinSkills = 2

	in := Input{AllSkills: []string{"Go"}}

	passing := NewScorer(singleProfileCatalog(t, base)).Score(in)[0].MatchPercentage
	penalized := NewScorer(singleProfileCatalog(t, gated)).Score(in)[0].MatchPercentage

	if passing-penalized != gatePenalty {
		t.Errorf("gate penalty = %d, want exactly %d (passing=%d, penalized=%d)",
			passing-penalized, gatePenalty, passing, penalized)
	}
}

func TestGateFloorsAtZero(t *testing.T) {
	p := roles.Profile{
		Title:      "Floor Role",
		CoreSkills: []string{"Haskell"},
		Weights:    roles.Weights{Skills: 1.0},
		MinSkills:  5,
		Seniority:  roles.SeniorityJunior,
	}

	got := NewScorer(singleProfileCatalog(t, p)).Score(Input{})[0]
	if got.MatchPercentage < 0 {
		t.Errorf("score %d below zero", got.MatchPercentage)
	}
}

func TestBackendDeveloperScenario(t *testing.T) {
	text := "5 years of experience with Python, Django, PostgreSQL, Docker, AWS, Git"
	extracted := skills.NewExtractor().Extract(text)

	profile := profileByTitle(t, "Backend Developer")
	if got := experienceScore(text, profile.Seniority); got < 0.9 {
		t.Errorf("experience score = %v, want high band (>= 0.9)", got)
	}

	m := NewScorer(singleProfileCatalog(t, profile)).Score(Input{Text: text, AllSkills: extracted})[0]

	total := 0
	for _, b := range m.SkillBreakdown {
		total += b.Matched
	}
	if total < profile.MinSkills {
		t.Errorf("matched skills %d below min_skills %d, gate should be satisfied", total, profile.MinSkills)
	}
}

func TestNoSkillsStillRanked(t *testing.T) {
	s := NewScorer(roles.DefaultCatalog())
	matches := s.Score(Input{Text: "A short note with no technologies mentioned."})

	if len(matches) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(matches))
	}
	for _, m := range matches {
		if m.MatchPercentage < 0 || m.MatchPercentage > 100 {
			t.Errorf("%s: score %d out of bounds", m.JobTitle, m.MatchPercentage)
		}
	}
}

func TestExperienceScoreBands(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		seniority string
		want      float64
	}{
		{"junior in band", "1 year of experience", roles.SeniorityJunior, 1.0},
		{"junior over band", "6 years of experience", roles.SeniorityJunior, 0.8},
		{"mid in band", "3 years of experience", roles.SeniorityMid, 1.0},
		{"mid out of band", "10 years of experience", roles.SeniorityMid, 0.7},
		{"senior in band", "7+ yrs experience", roles.SenioritySenior, 1.0},
		{"senior under band", "2 years of experience", roles.SenioritySenior, 0.6},
		{"no mention is zero years", "seasoned engineer", roles.SeniorityMid, 0.7},
		{"takes the maximum", "2 years of experience in QA, 8 years of experience in Go", roles.SenioritySenior, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := experienceScore(tt.text, tt.seniority); got != tt.want {
				t.Errorf("experienceScore(%q, %s) = %v, want %v", tt.text, tt.seniority, got, tt.want)
			}
		})
	}
}

func TestMissingCriticalSkillsCapped(t *testing.T) {
	p := roles.Profile{
		Title:           "Wide Role",
		CoreSkills:      []string{"Erlang", "Haskell", "Fortran", "COBOL", "Julia", "Elixir"},
		FrameworkSkills: []string{"Phoenix", "Yesod"},
		Weights:         roles.Weights{Skills: 1.0},
		Seniority:       roles.SeniorityMid,
	}

	m := NewScorer(singleProfileCatalog(t, p)).Score(Input{AllSkills: []string{"Python"}})[0]
	if len(m.MissingCriticalSkills) != 5 {
		t.Errorf("missing critical = %d, want capped at 5", len(m.MissingCriticalSkills))
	}
}

func TestRecommendationTiers(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{90, "Highly recommend for Backend Developer - excellent fit"},
		{72, "Recommend for Backend Developer - good candidate"},
		{60, "Consider for Backend Developer - with some training"},
		{30, "Not recommended for Backend Developer - significant skill gaps"},
	}
	for _, tt := range tests {
		if got := recommendation(tt.score, "Backend Developer"); got != tt.want {
			t.Errorf("recommendation(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}
