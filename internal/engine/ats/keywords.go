package ats

// Keyword category names, in scoring order.
const (
	CategoryTechnical  = "technical"
	CategorySoftSkills = "soft_skills"
	CategoryExperience = "experience"
	CategoryEducation  = "education"
)

var categoryOrder = []string{CategoryTechnical, CategorySoftSkills, CategoryExperience, CategoryEducation}

// keywordWeights is the ATS keyword database: keyword presence adds its
// weight to the category subtotal.
var keywordWeights = map[string]map[string]int{
	CategoryTechnical: {
		"python": 10, "java": 10, "javascript": 10, "react": 9, "angular": 9,
		"node.js": 9, "sql": 8, "mongodb": 7, "aws": 9, "docker": 8,
		"kubernetes": 8, "git": 7, "api": 7, "rest": 6, "json": 5,
	},
	CategorySoftSkills: {
		"leadership": 8, "communication": 7, "teamwork": 7, "problem solving": 8,
		"analytical": 6, "creative": 5, "adaptable": 6, "organized": 5,
	},
	CategoryExperience: {
		"senior": 9, "lead": 8, "manager": 9, "architect": 8, "developer": 7,
		"engineer": 7, "analyst": 6, "consultant": 6, "specialist": 6,
	},
	CategoryEducation: {
		"bachelor": 6, "master": 8, "phd": 9, "mba": 7, "certification": 5,
		"degree": 5, "computer science": 8, "engineering": 7,
	},
}

// keywordOrder preserves a stable iteration order per category so matched
// keyword lists are deterministic.
var keywordOrder = map[string][]string{
	CategoryTechnical: {
		"python", "java", "javascript", "react", "angular", "node.js", "sql",
		"mongodb", "aws", "docker", "kubernetes", "git", "api", "rest", "json",
	},
	CategorySoftSkills: {
		"leadership", "communication", "teamwork", "problem solving",
		"analytical", "creative", "adaptable", "organized",
	},
	CategoryExperience: {
		"senior", "lead", "manager", "architect", "developer", "engineer",
		"analyst", "consultant", "specialist",
	},
	CategoryEducation: {
		"bachelor", "master", "phd", "mba", "certification", "degree",
		"computer science", "engineering",
	},
}

// highValueKeywords are commonly screened phrases; the ones absent from the
// resume become the missing-keywords list.
var highValueKeywords = []string{
	"leadership", "management", "project management", "team lead",
	"problem solving", "analytical", "communication", "collaboration",
	"agile", "scrum", "ci/cd", "devops", "cloud", "api",
}
