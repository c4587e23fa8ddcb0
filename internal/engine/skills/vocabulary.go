package skills

// vocabulary is the canonical skill database matched against resume text.
// Entries keep their display capitalization; matching is case-insensitive.
var vocabulary = []string{
	// Programming languages
	"Python", "Java", "JavaScript", "TypeScript", "C++", "C#", "PHP", "Ruby", "Go", "Rust",
	"Swift", "Kotlin", "Scala", "R", "MATLAB", "Perl", "Dart", "Lua", "Objective-C", "C",
	"Assembly", "Fortran", "COBOL", "Haskell", "Clojure", "Erlang", "F#", "VB.NET", "Julia",
	"Groovy", "Elixir",

	// Web frontend
	"React", "Angular", "Vue.js", "Vue", "Svelte", "Next.js", "Nuxt.js", "Gatsby", "Ember.js",
	"jQuery", "HTML", "HTML5", "CSS", "CSS3", "SASS", "SCSS", "LESS", "Bootstrap",
	"Tailwind CSS", "Tailwind", "Material-UI", "Ant Design", "Webpack", "Vite", "Babel",
	"ESLint", "Prettier",

	// Web backend
	"Node.js", "Express", "Koa", "Fastify", "NestJS", "Django", "Flask", "FastAPI", "Spring",
	"Spring Boot", "Hibernate", "Laravel", "Symfony", "CodeIgniter", "Rails", "Ruby on Rails",
	"ASP.NET", "ASP.NET Core", ".NET", ".NET Core", "Gin", "Echo", "Fiber",

	// Databases
	"MySQL", "PostgreSQL", "SQLite", "Oracle", "SQL Server", "MariaDB", "MongoDB", "CouchDB",
	"Redis", "Memcached", "Cassandra", "HBase", "Neo4j", "InfluxDB", "DynamoDB", "Firebase",
	"Firestore", "SQL", "NoSQL", "GraphQL",

	// Cloud platforms
	"AWS", "Amazon Web Services", "Azure", "Microsoft Azure", "Google Cloud", "GCP",
	"Google Cloud Platform", "IBM Cloud", "DigitalOcean", "Heroku", "Netlify", "Vercel",

	// DevOps and infrastructure
	"Docker", "Kubernetes", "K8s", "Jenkins", "GitLab CI", "GitHub Actions", "CircleCI",
	"Travis CI", "Terraform", "CloudFormation", "Ansible", "Chef", "Puppet", "Vagrant",
	"NGINX", "Apache",

	// Version control
	"Git", "GitHub", "GitLab", "Bitbucket", "SVN", "Mercurial",

	// AI/ML and data science
	"Machine Learning", "Deep Learning", "Neural Networks", "Artificial Intelligence",
	"Data Science", "Data Analysis", "Statistics", "TensorFlow", "PyTorch", "Keras",
	"Scikit-learn", "XGBoost", "Pandas", "NumPy", "SciPy", "Matplotlib", "Seaborn", "OpenCV",
	"NLTK", "spaCy", "Computer Vision", "NLP", "Natural Language Processing", "Jupyter",
	"Apache Spark", "Hadoop", "Kafka", "Airflow",

	// Mobile
	"iOS", "Android", "React Native", "Flutter", "Xamarin", "Ionic", "Unity", "Xcode",
	"Android Studio", "SwiftUI", "UIKit",

	// Testing
	"Jest", "Mocha", "Chai", "Jasmine", "Cypress", "Selenium", "TestNG", "JUnit", "PyTest",
	"RSpec", "PHPUnit", "Postman", "JMeter",

	// Operating systems
	"Linux", "Ubuntu", "CentOS", "RHEL", "Debian", "Unix", "macOS", "Windows", "Windows Server",

	// Shells and scripting
	"Bash", "PowerShell", "Shell Scripting", "AWK", "Sed",

	// IDEs and editors
	"VS Code", "Visual Studio", "IntelliJ IDEA", "PyCharm", "WebStorm", "Eclipse", "NetBeans",
	"Atom", "Sublime Text", "Vim", "Emacs",

	// Design and UI/UX
	"Figma", "Sketch", "Adobe XD", "Photoshop", "Illustrator", "UI/UX", "User Experience",
	"User Interface", "Wireframing", "Prototyping",

	// Project management
	"Agile", "Scrum", "Kanban", "JIRA", "Trello", "Asana", "Slack", "Microsoft Teams",

	// Security
	"Cybersecurity", "Information Security", "OWASP", "Penetration Testing", "OAuth", "JWT",
	"SSL/TLS",

	// Other technologies
	"REST API", "REST", "API", "Microservices", "SOA", "WebSocket", "Blockchain", "IoT", "AR",
	"VR", "PWA", "SPA", "Serverless", "Lambda", "Event-Driven Architecture", "Message Queues",
	"RabbitMQ", "WebRTC", "Apollo", "Prisma",
}

// variations maps lowercased canonical names to alias spellings that also
// count as a match for that skill.
var variations = map[string][]string{
	"javascript":                  {"js", "ecmascript"},
	"typescript":                  {"ts"},
	"react":                       {"reactjs", "react.js"},
	"vue":                         {"vuejs", "vue.js"},
	"node.js":                     {"nodejs", "node"},
	"postgresql":                  {"postgres"},
	"mongodb":                     {"mongo"},
	"kubernetes":                  {"k8s"},
	"machine learning":            {"ml"},
	"artificial intelligence":     {"ai"},
	"natural language processing": {"nlp"},
	"user interface":              {"ui"},
	"user experience":             {"ux"},
	"amazon web services":         {"aws"},
	"google cloud platform":       {"gcp"},
	"microsoft azure":             {"azure"},
}

// aliasPairs feed the Equivalent predicate: two lowercased skill strings are
// similar when both belong to the same pair.
var aliasPairs = [][2]string{
	{"javascript", "js"},
	{"typescript", "ts"},
	{"react", "reactjs"},
	{"node.js", "nodejs"},
	{"vue.js", "vuejs"},
	{"angular", "angularjs"},
	{"postgresql", "postgres"},
	{"mongodb", "mongo"},
}
