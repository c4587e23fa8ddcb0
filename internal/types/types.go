package types

// AnalyzeResumeInput represents the input for a full resume analysis
type AnalyzeResumeInput struct {
	Text           string `json:"text"`
	JobDescription string `json:"jobDescription,omitempty"`
	Language       string `json:"language,omitempty"` // ISO-639-1, empty means auto-detect
}

// ATSInput represents the input for a standalone ATS compatibility check
type ATSInput struct {
	Text           string `json:"text"`
	JobDescription string `json:"jobDescription,omitempty"`
}

// ContactInfo holds contact details mined from the resume text
type ContactInfo struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
	Website  string `json:"website,omitempty"`
}

// CandidateProfile is the structured profile extracted upstream of scoring
type CandidateProfile struct {
	Contact    ContactInfo `json:"contact"`
	Skills     []string    `json:"skills"`
	Projects   []string    `json:"projects"`
	Experience string      `json:"experience"` // "N years" or "Not specified"
	Education  []string    `json:"education"`
	Language   string      `json:"language"` // detected ISO-639-1 code
}

// CategoryBreakdown reports matched vs required skills for one category
type CategoryBreakdown struct {
	Matched int `json:"matched"`
	Total   int `json:"total"`
}

// RoleMatch is one ranked role-fit result
type RoleMatch struct {
	JobTitle              string                       `json:"jobTitle"`
	MatchPercentage       int                          `json:"matchPercentage"`
	MatchingSkills        []string                     `json:"matchingSkills"`
	MissingCriticalSkills []string                     `json:"missingCriticalSkills"`
	SkillBreakdown        map[string]CategoryBreakdown `json:"skillBreakdown"`
	Assessment            []string                     `json:"assessment"`
	Recommendation        string                       `json:"recommendation"`
}

// KeywordCategoryMatch reports one ATS keyword category
type KeywordCategoryMatch struct {
	Matched  []string `json:"matched"`
	Subtotal int      `json:"subtotal"`
}

// IssueScan is the coarse ATS issue report, independent of the main score
type IssueScan struct {
	IssuesFound int      `json:"issuesFound"`
	Issues      []string `json:"issues"`
	ATSFriendly bool     `json:"atsFriendly"`
}

// ATSReport is the full ATS compatibility result
type ATSReport struct {
	ATSScore         int                             `json:"atsScore"`
	KeywordScore     int                             `json:"keywordScore"`
	KeywordMatches   map[string]KeywordCategoryMatch `json:"keywordMatches"`
	FormatScore      int                             `json:"formatScore"`
	ReadabilityScore int                             `json:"readabilityScore"`
	JobMatchScore    int                             `json:"jobMatchScore"`
	Recommendations  []string                        `json:"recommendations"`
	MissingKeywords  []string                        `json:"missingKeywords"`
	ATSFriendly      bool                            `json:"atsFriendly"`
	Issues           IssueScan                       `json:"issues"`
}

// Assessment holds the templated narrative feedback
type Assessment struct {
	Strengths   []string `json:"strengths"`
	Weaknesses  []string `json:"weaknesses"`
	Suggestions []string `json:"suggestions"`
}

// SkillRecommendation suggests skills to close the gap to the best-fit role
type SkillRecommendation struct {
	Role                 string   `json:"role"`
	MissingSkills        []string `json:"missingSkills"`
	ProjectedImprovement int      `json:"projectedImprovement"`
	CompatibilityRating  string   `json:"compatibilityRating"`
}

// AnalyzeResumeOutput is the assembled analysis response
type AnalyzeResumeOutput struct {
	Profile             CandidateProfile     `json:"profile"`
	RoleMatches         []RoleMatch          `json:"roleMatches"`
	ATS                 ATSReport            `json:"ats"`
	Assessment          Assessment           `json:"assessment"`
	SkillRecommendation *SkillRecommendation `json:"skillRecommendation,omitempty"`
}

// RoleSummary is one catalog entry in the roles listing
type RoleSummary struct {
	Title      string              `json:"title"`
	Seniority  string              `json:"seniority"`
	MinSkills  int                 `json:"minSkills"`
	Categories map[string][]string `json:"categories"`
}

// RolesOutput is the role catalog listing response
type RolesOutput struct {
	Roles []RoleSummary `json:"roles"`
}
