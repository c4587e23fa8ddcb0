package roles

// DefaultCatalog returns the built-in role catalog. The profile order is
// deliberate: it is the tie-break order when match percentages are equal.
func DefaultCatalog() *Catalog {
	return &Catalog{profiles: defaultProfiles}
}

var defaultProfiles = []Profile{
	// Software engineering
	{
		Title:             "Senior Software Engineer",
		CoreSkills:        []string{"Python", "Java", "JavaScript", "C++", "C#", "Go", "Rust"},
		FrameworkSkills:   []string{"React", "Angular", "Vue.js", "Django", "Flask", "Spring", "Express"},
		DatabaseSkills:    []string{"SQL", "PostgreSQL", "MySQL", "MongoDB", "Redis"},
		ToolSkills:        []string{"Git", "Docker", "Kubernetes", "Jenkins", "AWS", "Azure"},
		ProjectIndicators: []string{"architecture", "scalable", "microservices", "api", "full-stack", "backend", "frontend"},
		Weights:           Weights{Experience: 0.4, Skills: 0.35, Projects: 0.25},
		MinSkills:         8,
		Seniority:         SenioritySenior,
	},
	{
		Title:             "Full Stack Developer",
		CoreSkills:        []string{"JavaScript", "TypeScript", "Python", "Java", "C#"},
		FrameworkSkills:   []string{"React", "Angular", "Vue.js", "Node.js", "Express", "Django", "Flask"},
		DatabaseSkills:    []string{"SQL", "MongoDB", "PostgreSQL", "MySQL"},
		ToolSkills:        []string{"Git", "REST API", "GraphQL", "HTML", "CSS", "Bootstrap"},
		ProjectIndicators: []string{"full-stack", "web application", "frontend", "backend", "responsive", "spa"},
		Weights:           Weights{Experience: 0.3, Skills: 0.4, Projects: 0.3},
		MinSkills:         6,
		Seniority:         SeniorityMid,
	},
	{
		Title:             "Frontend Developer",
		CoreSkills:        []string{"JavaScript", "TypeScript", "HTML", "CSS"},
		FrameworkSkills:   []string{"React", "Angular", "Vue.js", "Next.js", "Nuxt.js"},
		DatabaseSkills:    []string{"REST API", "GraphQL", "Firebase"},
		ToolSkills:        []string{"Git", "Webpack", "Sass", "Bootstrap", "Tailwind", "Figma"},
		ProjectIndicators: []string{"frontend", "ui", "responsive", "spa", "pwa", "user interface", "web design"},
		Weights:           Weights{Experience: 0.25, Skills: 0.45, Projects: 0.3},
		MinSkills:         5,
		Seniority:         SeniorityMid,
	},
	{
		Title:             "Backend Developer",
		CoreSkills:        []string{"Python", "Java", "Node.js", "C#", "Go", "PHP"},
		FrameworkSkills:   []string{"Django", "Flask", "Spring", "Express", "FastAPI", "Laravel"},
		DatabaseSkills:    []string{"SQL", "PostgreSQL", "MySQL", "MongoDB", "Redis"},
		ToolSkills:        []string{"Git", "Docker", "REST API", "GraphQL", "Microservices"},
		ProjectIndicators: []string{"backend", "api", "server", "database", "microservices", "rest", "graphql"},
		Weights:           Weights{Experience: 0.35, Skills: 0.4, Projects: 0.25},
		MinSkills:         6,
		Seniority:         SeniorityMid,
	},
	{
		Title:             "Junior Software Developer",
		CoreSkills:        []string{"Python", "Java", "JavaScript", "C++", "C#"},
		FrameworkSkills:   []string{"React", "Django", "Flask", "Spring"},
		DatabaseSkills:    []string{"SQL", "MySQL", "PostgreSQL"},
		ToolSkills:        []string{"Git", "HTML", "CSS"},
		ProjectIndicators: []string{"programming", "coding", "development", "software"},
		Weights:           Weights{Experience: 0.2, Skills: 0.5, Projects: 0.3},
		MinSkills:         3,
		Seniority:         SeniorityJunior,
	},

	// Data and AI
	{
		Title:             "Data Scientist",
		CoreSkills:        []string{"Python", "R", "SQL", "Statistics", "Machine Learning"},
		FrameworkSkills:   []string{"Pandas", "NumPy", "Scikit-learn", "TensorFlow", "PyTorch", "Keras"},
		DatabaseSkills:    []string{"SQL", "PostgreSQL", "MongoDB", "BigQuery", "Snowflake"},
		ToolSkills:        []string{"Jupyter", "Git", "Docker", "AWS", "Azure", "Tableau", "Power BI"},
		ProjectIndicators: []string{"machine learning", "data analysis", "predictive model", "classification", "regression", "deep learning", "nlp", "computer vision"},
		Weights:           Weights{Experience: 0.35, Skills: 0.35, Projects: 0.3},
		MinSkills:         7,
		Seniority:         SeniorityMid,
	},
	{
		Title:             "Machine Learning Engineer",
		CoreSkills:        []string{"Python", "Machine Learning", "Deep Learning", "TensorFlow", "PyTorch"},
		FrameworkSkills:   []string{"Scikit-learn", "Keras", "MLflow", "Kubeflow", "Apache Spark"},
		DatabaseSkills:    []string{"SQL", "MongoDB", "Redis", "BigQuery"},
		ToolSkills:        []string{"Docker", "Kubernetes", "AWS", "Git", "Jupyter", "MLOps"},
		ProjectIndicators: []string{"ml model", "deep learning", "neural network", "ai", "model deployment", "mlops"},
		Weights:           Weights{Experience: 0.3, Skills: 0.4, Projects: 0.3},
		MinSkills:         6,
		Seniority:         SeniorityMid,
	},
	{
		Title:             "Data Engineer",
		CoreSkills:        []string{"Python", "SQL", "Apache Spark", "Hadoop", "Kafka"},
		FrameworkSkills:   []string{"Airflow", "Pandas", "NumPy", "Databricks"},
		DatabaseSkills:    []string{"PostgreSQL", "MongoDB", "Redis", "Snowflake", "BigQuery"},
		ToolSkills:        []string{"Docker", "Kubernetes", "AWS", "Azure", "Git", "ETL"},
		ProjectIndicators: []string{"data pipeline", "etl", "data warehouse", "big data", "streaming"},
		Weights:           Weights{Experience: 0.35, Skills: 0.35, Projects: 0.3},
		MinSkills:         6,
		Seniority:         SeniorityMid,
	},
	{
		Title:             "Data Analyst",
		CoreSkills:        []string{"SQL", "Python", "R", "Statistics", "Excel"},
		FrameworkSkills:   []string{"Pandas", "NumPy", "Matplotlib", "Seaborn"},
		DatabaseSkills:    []string{"SQL", "PostgreSQL", "MySQL"},
		ToolSkills:        []string{"Tableau", "Power BI", "Jupyter", "Git"},
		ProjectIndicators: []string{"data analysis", "reporting", "dashboard", "visualization", "insights"},
		Weights:           Weights{Experience: 0.3, Skills: 0.4, Projects: 0.3},
		MinSkills:         4,
		Seniority:         SeniorityJunior,
	},

	// DevOps and infrastructure
	{
		Title:             "DevOps Engineer",
		CoreSkills:        []string{"Linux", "Python", "Bash", "Docker", "Kubernetes"},
		FrameworkSkills:   []string{"Terraform", "Ansible", "Chef", "Puppet"},
		DatabaseSkills:    []string{"SQL", "PostgreSQL", "MongoDB", "Redis"},
		ToolSkills:        []string{"AWS", "Azure", "GCP", "Jenkins", "GitLab CI", "Git", "Monitoring"},
		ProjectIndicators: []string{"infrastructure", "deployment", "ci/cd", "automation", "cloud", "containerization", "orchestration"},
		Weights:           Weights{Experience: 0.4, Skills: 0.3, Projects: 0.3},
		MinSkills:         6,
		Seniority:         SeniorityMid,
	},
	{
		Title:             "Cloud Architect",
		CoreSkills:        []string{"AWS", "Azure", "GCP", "Cloud Architecture", "Microservices"},
		FrameworkSkills:   []string{"Terraform", "CloudFormation", "Kubernetes", "Docker"},
		DatabaseSkills:    []string{"DynamoDB", "RDS", "CosmosDB", "BigQuery"},
		ToolSkills:        []string{"Jenkins", "Git", "Monitoring", "Security", "Networking"},
		ProjectIndicators: []string{"cloud migration", "architecture", "scalability", "high availability", "disaster recovery"},
		Weights:           Weights{Experience: 0.45, Skills: 0.3, Projects: 0.25},
		MinSkills:         7,
		Seniority:         SenioritySenior,
	},
	{
		Title:             "Site Reliability Engineer",
		CoreSkills:        []string{"Linux", "Python", "Go", "Monitoring", "Incident Response"},
		FrameworkSkills:   []string{"Prometheus", "Grafana", "Kubernetes", "Docker"},
		DatabaseSkills:    []string{"SQL", "Redis", "InfluxDB"},
		ToolSkills:        []string{"AWS", "Git", "Terraform", "Ansible", "Alerting"},
		ProjectIndicators: []string{"reliability", "monitoring", "sla", "incident", "automation", "performance"},
		Weights:           Weights{Experience: 0.4, Skills: 0.3, Projects: 0.3},
		MinSkills:         6,
		Seniority:         SeniorityMid,
	},

	// Mobile development
	{
		Title:             "Mobile Developer",
		CoreSkills:        []string{"Swift", "Kotlin", "Java", "Dart", "JavaScript"},
		FrameworkSkills:   []string{"React Native", "Flutter", "Xamarin", "Ionic"},
		DatabaseSkills:    []string{"SQLite", "Firebase", "Realm", "Core Data"},
		ToolSkills:        []string{"Xcode", "Android Studio", "Git", "REST API"},
		ProjectIndicators: []string{"mobile", "ios", "android", "app", "react native", "flutter"},
		Weights:           Weights{Experience: 0.3, Skills: 0.4, Projects: 0.3},
		MinSkills:         4,
		Seniority:         SeniorityMid,
	},
	{
		Title:             "iOS Developer",
		CoreSkills:        []string{"Swift", "Objective-C", "iOS", "Xcode"},
		FrameworkSkills:   []string{"SwiftUI", "UIKit", "Core Data", "Combine"},
		DatabaseSkills:    []string{"Core Data", "SQLite", "Firebase"},
		ToolSkills:        []string{"Xcode", "Git", "TestFlight", "App Store Connect"},
		ProjectIndicators: []string{"ios", "iphone", "ipad", "app store", "swift"},
		Weights:           Weights{Experience: 0.3, Skills: 0.4, Projects: 0.3},
		MinSkills:         4,
		Seniority:         SeniorityMid,
	},
	{
		Title:             "Android Developer",
		CoreSkills:        []string{"Kotlin", "Java", "Android", "Android Studio"},
		FrameworkSkills:   []string{"Jetpack Compose", "Room", "Retrofit", "Dagger"},
		DatabaseSkills:    []string{"Room", "SQLite", "Firebase"},
		ToolSkills:        []string{"Android Studio", "Git", "Google Play Console", "Gradle"},
		ProjectIndicators: []string{"android", "google play", "kotlin", "mobile app"},
		Weights:           Weights{Experience: 0.3, Skills: 0.4, Projects: 0.3},
		MinSkills:         4,
		Seniority:         SeniorityMid,
	},

	// Design and UX
	{
		Title:             "UI/UX Designer",
		CoreSkills:        []string{"Figma", "Sketch", "Adobe XD", "User Research", "Prototyping"},
		FrameworkSkills:   []string{"Design Systems", "Wireframing", "User Testing", "Information Architecture"},
		DatabaseSkills:    []string{"User Analytics", "A/B Testing"},
		ToolSkills:        []string{"Photoshop", "Illustrator", "InVision", "Principle", "Zeplin"},
		ProjectIndicators: []string{"ui design", "ux design", "user experience", "interface", "usability", "design system"},
		Weights:           Weights{Experience: 0.3, Skills: 0.4, Projects: 0.3},
		MinSkills:         4,
		Seniority:         SeniorityMid,
	},
	{
		Title:             "Product Designer",
		CoreSkills:        []string{"Figma", "User Research", "Product Strategy", "Design Thinking"},
		FrameworkSkills:   []string{"Prototyping", "User Journey Mapping", "Design Systems"},
		DatabaseSkills:    []string{"Analytics", "User Data"},
		ToolSkills:        []string{"Sketch", "Adobe Creative Suite", "Miro", "Notion"},
		ProjectIndicators: []string{"product design", "user journey", "product strategy", "design thinking"},
		Weights:           Weights{Experience: 0.35, Skills: 0.35, Projects: 0.3},
		MinSkills:         4,
		Seniority:         SeniorityMid,
	},

	// Security
	{
		Title:             "Cybersecurity Analyst",
		CoreSkills:        []string{"Cybersecurity", "Network Security", "Incident Response", "Risk Assessment"},
		FrameworkSkills:   []string{"SIEM", "Penetration Testing", "Vulnerability Assessment", "Forensics"},
		DatabaseSkills:    []string{"SQL", "Log Analysis"},
		ToolSkills:        []string{"Wireshark", "Nmap", "Metasploit", "Burp Suite", "Splunk"},
		ProjectIndicators: []string{"security", "penetration test", "vulnerability", "incident response", "threat analysis"},
		Weights:           Weights{Experience: 0.4, Skills: 0.35, Projects: 0.25},
		MinSkills:         5,
		Seniority:         SeniorityMid,
	},

	// Quality assurance
	{
		Title:             "QA Engineer",
		CoreSkills:        []string{"Testing", "Test Automation", "Selenium", "Quality Assurance"},
		FrameworkSkills:   []string{"Cypress", "Jest", "TestNG", "JUnit", "Playwright"},
		DatabaseSkills:    []string{"SQL", "Database Testing"},
		ToolSkills:        []string{"JIRA", "Git", "Postman", "Jenkins", "TestRail"},
		ProjectIndicators: []string{"testing", "automation", "quality assurance", "test cases", "bug tracking"},
		Weights:           Weights{Experience: 0.3, Skills: 0.4, Projects: 0.3},
		MinSkills:         4,
		Seniority:         SeniorityMid,
	},

	// Business and product
	{
		Title:             "Product Manager",
		CoreSkills:        []string{"Product Strategy", "Roadmap Planning", "Stakeholder Management", "Market Research"},
		FrameworkSkills:   []string{"Agile", "Scrum", "User Stories", "A/B Testing"},
		DatabaseSkills:    []string{"Analytics", "SQL", "Data Analysis"},
		ToolSkills:        []string{"JIRA", "Confluence", "Figma", "Google Analytics", "Mixpanel"},
		ProjectIndicators: []string{"product management", "roadmap", "feature", "user story", "market research"},
		Weights:           Weights{Experience: 0.4, Skills: 0.3, Projects: 0.3},
		MinSkills:         5,
		Seniority:         SeniorityMid,
	},
	{
		Title:             "Business Analyst",
		CoreSkills:        []string{"Business Analysis", "Requirements Gathering", "Process Improvement", "Stakeholder Management"},
		FrameworkSkills:   []string{"Agile", "Waterfall", "BPMN", "Use Cases"},
		DatabaseSkills:    []string{"SQL", "Data Analysis", "Reporting"},
		ToolSkills:        []string{"Excel", "Visio", "JIRA", "Confluence", "Power BI"},
		ProjectIndicators: []string{"business analysis", "requirements", "process improvement", "stakeholder"},
		Weights:           Weights{Experience: 0.4, Skills: 0.3, Projects: 0.3},
		MinSkills:         4,
		Seniority:         SeniorityMid,
	},

	// Specialized roles
	{
		Title:             "Game Developer",
		CoreSkills:        []string{"Unity", "C#", "Unreal Engine", "C++", "Game Design"},
		FrameworkSkills:   []string{"3D Graphics", "Physics", "AI", "Networking"},
		DatabaseSkills:    []string{"Game Databases", "Player Data"},
		ToolSkills:        []string{"Blender", "Maya", "Git", "Perforce", "Visual Studio"},
		ProjectIndicators: []string{"game development", "unity", "unreal", "3d", "gaming", "interactive"},
		Weights:           Weights{Experience: 0.3, Skills: 0.4, Projects: 0.3},
		MinSkills:         5,
		Seniority:         SeniorityMid,
	},
	{
		Title:             "Blockchain Developer",
		CoreSkills:        []string{"Solidity", "Blockchain", "Smart Contracts", "Web3", "Ethereum"},
		FrameworkSkills:   []string{"Truffle", "Hardhat", "React", "Node.js"},
		DatabaseSkills:    []string{"IPFS", "MongoDB", "Graph Databases"},
		ToolSkills:        []string{"MetaMask", "Git", "Remix", "Ganache"},
		ProjectIndicators: []string{"blockchain", "smart contract", "defi", "nft", "cryptocurrency", "web3"},
		Weights:           Weights{Experience: 0.3, Skills: 0.4, Projects: 0.3},
		MinSkills:         5,
		Seniority:         SeniorityMid,
	},
	{
		Title:             "Technical Writer",
		CoreSkills:        []string{"Technical Writing", "Documentation", "API Documentation", "Content Strategy"},
		FrameworkSkills:   []string{"Markdown", "Git", "Content Management", "Information Architecture"},
		DatabaseSkills:    []string{"Content Databases", "CMS"},
		ToolSkills:        []string{"Confluence", "Notion", "GitBook", "Swagger", "Postman"},
		ProjectIndicators: []string{"documentation", "technical writing", "api docs", "user guide", "content"},
		Weights:           Weights{Experience: 0.3, Skills: 0.4, Projects: 0.3},
		MinSkills:         3,
		Seniority:         SeniorityJunior,
	},
}
