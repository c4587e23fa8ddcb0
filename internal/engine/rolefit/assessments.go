package rolefit

// roleAssessments holds the role-specific tier sentences. Roles without an
// entry fall back to generic tier sentences.
var roleAssessments = map[string]map[string]string{
	"Senior Software Engineer": {
		"high":   "Demonstrates senior-level expertise with strong architectural and system design capabilities",
		"medium": "Shows solid engineering fundamentals with room for senior-level growth",
		"low":    "Has basic programming skills but lacks senior-level system design experience",
	},
	"Full Stack Developer": {
		"high":   "Excellent full-stack capabilities spanning frontend, backend, and database technologies",
		"medium": "Good foundation in web development with balanced frontend/backend skills",
		"low":    "Limited full-stack experience, stronger in either frontend or backend development",
	},
	"Data Scientist": {
		"high":   "Strong analytical skills with proven machine learning and statistical modeling expertise",
		"medium": "Solid data analysis foundation with growing ML/AI capabilities",
		"low":    "Basic data skills present but lacks advanced statistical and ML experience",
	},
	"DevOps Engineer": {
		"high":   "Comprehensive DevOps expertise in cloud infrastructure, automation, and CI/CD pipelines",
		"medium": "Good understanding of deployment and infrastructure with developing automation skills",
		"low":    "Basic infrastructure knowledge but limited experience with advanced DevOps practices",
	},
	"Frontend Developer": {
		"high":   "Exceptional UI/UX development skills with modern framework expertise and design sensibility",
		"medium": "Solid frontend development capabilities with good framework knowledge",
		"low":    "Basic web development skills but needs growth in modern frontend frameworks",
	},
	"Backend Developer": {
		"high":   "Strong server-side development expertise with robust API design and database optimization skills",
		"medium": "Good backend fundamentals with solid API development experience",
		"low":    "Basic server-side programming but lacks advanced backend architecture experience",
	},
	"Mobile Developer": {
		"high":   "Comprehensive mobile development expertise across platforms with strong app architecture skills",
		"medium": "Good mobile development foundation with platform-specific knowledge",
		"low":    "Basic mobile development skills but limited cross-platform experience",
	},
	"Data Engineer": {
		"high":   "Excellent data pipeline and ETL expertise with strong big data processing capabilities",
		"medium": "Solid data engineering fundamentals with growing pipeline development skills",
		"low":    "Basic data processing knowledge but lacks advanced pipeline architecture experience",
	},
	"Machine Learning Engineer": {
		"high":   "Outstanding ML engineering skills with production model deployment and MLOps expertise",
		"medium": "Good ML fundamentals with developing model deployment capabilities",
		"low":    "Basic ML knowledge but limited experience in production ML systems",
	},
	"Cloud Architect": {
		"high":   "Exceptional cloud architecture expertise with multi-cloud strategy and enterprise-scale design",
		"medium": "Solid cloud platform knowledge with growing architectural design skills",
		"low":    "Basic cloud familiarity but lacks comprehensive architectural experience",
	},
}
