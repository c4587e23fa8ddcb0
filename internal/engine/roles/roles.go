// Package roles defines the job-role catalog: per-role required skills by
// category, scoring weights, the minimum-skill gate, and the target
// seniority band.
package roles

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// Seniority bands used to interpret years-of-experience signals.
const (
	SeniorityJunior = "junior"
	SeniorityMid    = "mid"
	SenioritySenior = "senior"
)

// Skill category names. Iteration over categories always uses this order.
const (
	CategoryCore      = "core"
	CategoryFramework = "frameworks"
	CategoryDatabase  = "databases"
	CategoryTool      = "tools"
)

// Weights control how the three score components combine. They must sum to
// 1.0 per profile; Catalog.Validate enforces this at load time.
type Weights struct {
	Experience float64 `json:"experience"`
	Skills     float64 `json:"skills"`
	Projects   float64 `json:"projects"`
}

// Profile is one catalog entry.
type Profile struct {
	Title             string   `json:"title"`
	CoreSkills        []string `json:"coreSkills"`
	FrameworkSkills   []string `json:"frameworkSkills"`
	DatabaseSkills    []string `json:"databaseSkills"`
	ToolSkills        []string `json:"toolSkills"`
	ProjectIndicators []string `json:"projectIndicators"`
	Weights           Weights  `json:"weights"`
	MinSkills         int      `json:"minSkills"`
	Seniority         string   `json:"seniority"`
}

// Categories returns the categorized required-skill lists in scoring order.
func (p *Profile) Categories() map[string][]string {
	return map[string][]string{
		CategoryCore:      p.CoreSkills,
		CategoryFramework: p.FrameworkSkills,
		CategoryDatabase:  p.DatabaseSkills,
		CategoryTool:      p.ToolSkills,
	}
}

// Catalog is an ordered, read-only set of role profiles. Iteration order is
// preserved and serves as the ranking tie-break.
type Catalog struct {
	profiles []Profile
}

// NewCatalog validates the given profiles and wraps them in a Catalog.
func NewCatalog(profiles []Profile) (*Catalog, error) {
	c := &Catalog{profiles: profiles}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Profiles returns the profiles in catalog order. Callers must not mutate
// the returned slice.
func (c *Catalog) Profiles() []Profile {
	return c.profiles
}

// Len returns the number of profiles.
func (c *Catalog) Len() int {
	return len(c.profiles)
}

// Validate checks catalog data quality: unique titles, non-negative
// MinSkills, a known seniority band, and weights summing to 1.0.
func (c *Catalog) Validate() error {
	if len(c.profiles) == 0 {
		return fmt.Errorf("catalog has no profiles")
	}

	titles := make(map[string]bool)
	for i := range c.profiles {
		p := &c.profiles[i]
		if p.Title == "" {
			return fmt.Errorf("profile %d has an empty title", i)
		}
		if titles[p.Title] {
			return fmt.Errorf("duplicate profile title: %s", p.Title)
		}
		titles[p.Title] = true

		if p.MinSkills < 0 {
			return fmt.Errorf("profile %s: minSkills must be non-negative, got %d", p.Title, p.MinSkills)
		}

		switch p.Seniority {
		case SeniorityJunior, SeniorityMid, SenioritySenior:
		default:
			return fmt.Errorf("profile %s: unknown seniority %q", p.Title, p.Seniority)
		}

		sum := p.Weights.Experience + p.Weights.Skills + p.Weights.Projects
		if math.Abs(sum-1.0) > 1e-9 {
			return fmt.Errorf("profile %s: weights must sum to 1.0, got %.4f", p.Title, sum)
		}
	}
	return nil
}

// LoadCatalog reads a catalog override from a JSON file: an array of
// Profile objects. The result is validated with the same rules as the
// built-in catalog.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	var profiles []Profile
	if err := json.Unmarshal(data, &profiles); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}

	return NewCatalog(profiles)
}
