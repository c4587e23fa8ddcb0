// Package analysis orchestrates the engine packages into the two
// user-facing operations: full resume analysis and the standalone ATS check.
package analysis

import (
	"context"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"resumetric/internal/engine/assessment"
	"resumetric/internal/engine/ats"
	"resumetric/internal/engine/profile"
	"resumetric/internal/engine/rolefit"
	"resumetric/internal/engine/roles"
	"resumetric/internal/engine/sections"
	"resumetric/internal/engine/skills"
	apperrors "resumetric/internal/errors"
	"resumetric/internal/types"
)

const (
	recommendationBoost = 15
	recommendationCeil  = 95
	maxPrioritySkills   = 3
	minAnalyzableLength = 10
)

// EngineStats reports what one operation actually did; the command runner
// and server surface it alongside results.
type EngineStats struct {
	SkillsExtracted int           `json:"skillsExtracted"`
	RolesEvaluated  int           `json:"rolesEvaluated"`
	TextLength      int           `json:"textLength"`
	Duration        time.Duration `json:"duration"`
}

// Service wires the engine packages together. All components are read-only
// after construction, so a single Service serves concurrent requests.
type Service struct {
	catalog  *roles.Catalog
	skills   *skills.Extractor
	profiles *profile.Extractor
	rolefit  *rolefit.Scorer
	ats      *ats.Scorer
	assessor *assessment.Generator
	logger   *apperrors.Logger
}

// NewService builds an analysis service over the given role catalog.
func NewService(catalog *roles.Catalog, logger *apperrors.Logger) *Service {
	sk := skills.NewExtractor()
	return &Service{
		catalog:  catalog,
		skills:   sk,
		profiles: profile.NewExtractor(sk),
		rolefit:  rolefit.NewScorer(catalog),
		ats:      ats.NewScorer(),
		assessor: assessment.NewGenerator(),
		logger:   logger,
	}
}

// AnalyzeResume runs the full pipeline: profile extraction, role-fit
// ranking, ATS scoring, and assessment generation.
func (s *Service) AnalyzeResume(ctx context.Context, in types.AnalyzeResumeInput) (types.AnalyzeResumeOutput, *EngineStats, error) {
	start := time.Now()
	var out types.AnalyzeResumeOutput

	if len(strings.TrimSpace(in.Text)) < minAnalyzableLength {
		return out, nil, apperrors.NewValidationError(apperrors.ErrCodeInvalidRequest,
			"resume text is too short to analyze", nil)
	}

	tracer := otel.Tracer("resumetric.analysis")
	ctx, span := tracer.Start(ctx, "analysis.AnalyzeResume")
	defer span.End()
	span.SetAttributes(
		attribute.Int("resume.length", len(in.Text)),
		attribute.Bool("resume.has_job_description", in.JobDescription != ""),
	)

	_, profileSpan := tracer.Start(ctx, "analysis.ExtractProfile")
	candidate := s.profiles.Extract(in.Text, in.Language)
	profileSpan.SetAttributes(
		attribute.Int("profile.skills", len(candidate.Skills)),
		attribute.String("profile.language", candidate.Language),
	)
	profileSpan.End()

	_, rolefitSpan := tracer.Start(ctx, "analysis.ScoreRoles")
	matches := s.rolefit.Score(rolefit.Input{
		Text:          in.Text,
		AllSkills:     candidate.Skills,
		ProjectSkills: s.projectSkills(in.Text),
	})
	rolefitSpan.SetAttributes(attribute.Int("rolefit.matches", len(matches)))
	rolefitSpan.End()

	_, atsSpan := tracer.Start(ctx, "analysis.ScoreATS")
	atsReport := s.ats.Score(in.Text, in.JobDescription)
	atsSpan.SetAttributes(attribute.Int("ats.score", atsReport.ATSScore))
	atsSpan.End()

	_, assessSpan := tracer.Start(ctx, "analysis.GenerateAssessment")
	narrative := s.assessor.Generate(assessment.Input{Text: in.Text, Profile: candidate})
	assessSpan.End()

	out = types.AnalyzeResumeOutput{
		Profile:             candidate,
		RoleMatches:         matches,
		ATS:                 atsReport,
		Assessment:          narrative,
		SkillRecommendation: skillRecommendation(matches),
	}

	stats := &EngineStats{
		SkillsExtracted: len(candidate.Skills),
		RolesEvaluated:  s.catalog.Len(),
		TextLength:      len(in.Text),
		Duration:        time.Since(start),
	}

	s.logger.Debug("Resume analysis completed",
		"skills", stats.SkillsExtracted,
		"roles", stats.RolesEvaluated,
		"ats_score", atsReport.ATSScore,
		"language", candidate.Language,
		"duration", stats.Duration)

	return out, stats, nil
}

// AnalyzeATS runs the standalone ATS compatibility check.
func (s *Service) AnalyzeATS(ctx context.Context, in types.ATSInput) (types.ATSReport, *EngineStats, error) {
	start := time.Now()

	if len(strings.TrimSpace(in.Text)) < minAnalyzableLength {
		return types.ATSReport{}, nil, apperrors.NewValidationError(apperrors.ErrCodeInvalidRequest,
			"resume text is too short to analyze", nil)
	}

	tracer := otel.Tracer("resumetric.analysis")
	_, span := tracer.Start(ctx, "analysis.AnalyzeATS")
	defer span.End()

	report := s.ats.Score(in.Text, in.JobDescription)
	span.SetAttributes(
		attribute.Int("ats.score", report.ATSScore),
		attribute.Bool("ats.friendly", report.ATSFriendly),
	)

	stats := &EngineStats{
		TextLength: len(in.Text),
		Duration:   time.Since(start),
	}

	s.logger.Debug("ATS analysis completed",
		"ats_score", report.ATSScore,
		"friendly", report.ATSFriendly,
		"duration", stats.Duration)

	return report, stats, nil
}

// ListRoles returns the catalog as role summaries, in catalog order.
func (s *Service) ListRoles(ctx context.Context) types.RolesOutput {
	_, span := otel.Tracer("resumetric.analysis").Start(ctx, "analysis.ListRoles")
	defer span.End()

	profiles := s.catalog.Profiles()
	out := types.RolesOutput{Roles: make([]types.RoleSummary, 0, len(profiles))}
	for _, p := range profiles {
		out.Roles = append(out.Roles, types.RoleSummary{
			Title:      p.Title,
			Seniority:  p.Seniority,
			MinSkills:  p.MinSkills,
			Categories: p.Categories(),
		})
	}
	return out
}

// projectSkills extracts the skills attributed to the projects section,
// feeding the project-diversity bonus.
func (s *Service) projectSkills(text string) []string {
	section := sections.Locate(text, sections.ProjectsKeywords)
	if section == "" {
		return nil
	}
	return s.skills.Extract(section)
}

// skillRecommendation turns the best role's skill gaps into a learning
// recommendation; nil when the top role has no missing critical skills.
func skillRecommendation(matches []types.RoleMatch) *types.SkillRecommendation {
	if len(matches) == 0 {
		return nil
	}

	top := matches[0]
	if len(top.MissingCriticalSkills) == 0 {
		return nil
	}

	missing := top.MissingCriticalSkills
	if len(missing) > maxPrioritySkills {
		missing = missing[:maxPrioritySkills]
	}

	return &types.SkillRecommendation{
		Role:                 top.JobTitle,
		MissingSkills:        missing,
		ProjectedImprovement: min(top.MatchPercentage+recommendationBoost, recommendationCeil),
		CompatibilityRating:  compatibilityRating(top.MatchPercentage),
	}
}

func compatibilityRating(score int) string {
	switch {
	case score >= 85:
		return "Excellent"
	case score >= 70:
		return "Good"
	case score >= 50:
		return "Needs Improvement"
	default:
		return "Poor"
	}
}
