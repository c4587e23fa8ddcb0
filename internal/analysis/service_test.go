package analysis

import (
	"context"
	"log/slog"
	"testing"

	"resumetric/internal/engine/roles"
	apperrors "resumetric/internal/errors"
	"resumetric/internal/types"
)

const sampleResume = `Jane Doe
jane.doe@example.com | 555-123-4567

SKILLS
Python, Django, PostgreSQL, Docker, AWS, Git, REST API

PROJECTS
- Built a REST API for order processing in Django
- Deployed microservices with Docker and AWS

EXPERIENCE
Backend engineer with 5 years of experience designing scalable services.
Led a small team and managed deployment automation.

EDUCATION
Bachelor of Science in Computer Science
`

func newService(t *testing.T) *Service {
	t.Helper()
	return NewService(roles.DefaultCatalog(), apperrors.NewLogger(slog.LevelError))
}

func TestAnalyzeResume(t *testing.T) {
	svc := newService(t)

	out, stats, err := svc.AnalyzeResume(context.Background(), types.AnalyzeResumeInput{Text: sampleResume})
	if err != nil {
		t.Fatalf("AnalyzeResume: %v", err)
	}

	if out.Profile.Contact.Email != "jane.doe@example.com" {
		t.Errorf("email = %q", out.Profile.Contact.Email)
	}
	if len(out.Profile.Skills) == 0 {
		t.Error("no skills extracted")
	}
	if len(out.RoleMatches) != 3 {
		t.Errorf("role matches = %d, want 3", len(out.RoleMatches))
	}
	if out.ATS.ATSScore < 0 || out.ATS.ATSScore > 100 {
		t.Errorf("ats score %d out of bounds", out.ATS.ATSScore)
	}
	if len(out.Assessment.Strengths) == 0 {
		t.Error("assessment has no strengths")
	}

	if stats == nil {
		t.Fatal("stats missing")
	}
	if stats.RolesEvaluated != 24 {
		t.Errorf("roles evaluated = %d, want full catalog", stats.RolesEvaluated)
	}
	if stats.SkillsExtracted != len(out.Profile.Skills) {
		t.Errorf("stats skills = %d, profile skills = %d", stats.SkillsExtracted, len(out.Profile.Skills))
	}
}

func TestAnalyzeResumeRejectsShortText(t *testing.T) {
	svc := newService(t)

	_, _, err := svc.AnalyzeResume(context.Background(), types.AnalyzeResumeInput{Text: "  hi  "})
	if err == nil {
		t.Fatal("expected validation error for short text")
	}
	appErr, ok := err.(*apperrors.AppError)
	if !ok || appErr.Code != apperrors.ErrCodeInvalidRequest {
		t.Errorf("err = %v, want %s", err, apperrors.ErrCodeInvalidRequest)
	}
}

func TestAnalyzeATS(t *testing.T) {
	svc := newService(t)

	report, stats, err := svc.AnalyzeATS(context.Background(), types.ATSInput{
		Text:           sampleResume,
		JobDescription: "python engineer with docker and postgresql experience",
	})
	if err != nil {
		t.Fatalf("AnalyzeATS: %v", err)
	}
	if report.JobMatchScore == 0 {
		t.Error("expected nonzero job match with overlapping description")
	}
	if stats == nil || stats.TextLength != len(sampleResume) {
		t.Errorf("stats = %+v", stats)
	}
}

func TestListRoles(t *testing.T) {
	svc := newService(t)

	out := svc.ListRoles(context.Background())
	if len(out.Roles) != 24 {
		t.Fatalf("roles = %d, want 24", len(out.Roles))
	}
	if out.Roles[0].Title != "Senior Software Engineer" {
		t.Errorf("first role = %q, want catalog order preserved", out.Roles[0].Title)
	}
	for _, r := range out.Roles {
		if r.Seniority == "" {
			t.Errorf("%s: empty seniority", r.Title)
		}
	}
}

func TestSkillRecommendation(t *testing.T) {
	t.Run("nil when nothing missing", func(t *testing.T) {
		rec := skillRecommendation([]types.RoleMatch{{JobTitle: "X", MatchPercentage: 90}})
		if rec != nil {
			t.Errorf("rec = %+v, want nil", rec)
		}
	})

	t.Run("caps skills and projects improvement", func(t *testing.T) {
		rec := skillRecommendation([]types.RoleMatch{{
			JobTitle:              "Backend Developer",
			MatchPercentage:       88,
			MissingCriticalSkills: []string{"a", "b", "c", "d"},
		}})
		if rec == nil {
			t.Fatal("rec missing")
		}
		if len(rec.MissingSkills) != 3 {
			t.Errorf("missing skills = %d, want cap of 3", len(rec.MissingSkills))
		}
		if rec.ProjectedImprovement != 95 {
			t.Errorf("projected improvement = %d, want ceiling 95", rec.ProjectedImprovement)
		}
		if rec.CompatibilityRating != "Excellent" {
			t.Errorf("rating = %q", rec.CompatibilityRating)
		}
	})

	t.Run("rating tiers", func(t *testing.T) {
		tests := []struct {
			score int
			want  string
		}{
			{85, "Excellent"}, {70, "Good"}, {50, "Needs Improvement"}, {49, "Poor"},
		}
		for _, tt := range tests {
			if got := compatibilityRating(tt.score); got != tt.want {
				t.Errorf("compatibilityRating(%d) = %q, want %q", tt.score, got, tt.want)
			}
		}
	})
}
