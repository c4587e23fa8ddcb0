package assessment

// templateSet holds one language's sentence templates. Placeholders follow
// fmt verbs; argument order matters for the two-argument templates.
type templateSet struct {
	strongExpertise string // category, count
	goodFoundation  string // category
	diverseSkillset string // count
	basicFoundation string

	limitedExperience string // category
	expandSkillset    string
	wellRounded       string

	missingContact     string // contact type
	enhanceProjects    string // count
	quantifyImpact     string // section
	learnTrending      string // skill
	addCertifications  string // skill
	addKeywords        string // comma-joined keywords
	portfolioWebsite   string
	openSource         string // technology
	networking         string // platform
	skillGap           string // area
	leadership         string
	continuousLearning string
}

var templates = map[string]templateSet{
	"en": {
		strongExpertise: "Strong expertise in %s (%d skills)",
		goodFoundation:  "Good foundation in %s",
		diverseSkillset: "Diverse technical skill set with %d technologies",
		basicFoundation: "Solid technical foundation",

		limitedExperience: "Limited experience in %s",
		expandSkillset:    "Could expand technical skill set",
		wellRounded:       "Well-rounded skill profile",

		missingContact:     "Add %s to improve professional visibility",
		enhanceProjects:    "Add %d more projects to showcase diverse skills",
		quantifyImpact:     "Include metrics (users, performance, revenue) in %s",
		learnTrending:      "Learn %s - high demand in current job market",
		addCertifications:  "Get certified in %s to validate expertise",
		addKeywords:        "Include industry keywords: %s",
		portfolioWebsite:   "Create a portfolio website to showcase your work",
		openSource:         "Contribute to open source projects in %s",
		networking:         "Build professional network through %s",
		skillGap:           "Bridge skill gap in %s for better job matching",
		leadership:         "Highlight leadership experience and team management",
		continuousLearning: "Show continuous learning through courses/workshops",
	},
	"de": {
		strongExpertise: "Starke Expertise in %s (%d Fähigkeiten)",
		goodFoundation:  "Gute Grundlage in %s",
		diverseSkillset: "Vielfältiges technisches Skill-Set mit %d Technologien",
		basicFoundation: "Solide technische Grundlage",

		limitedExperience: "Begrenzte Erfahrung in %s",
		expandSkillset:    "Könnte technisches Skill-Set erweitern",
		wellRounded:       "Ausgewogenes Fähigkeitsprofil",

		missingContact:     "Fügen Sie %s hinzu, um die berufliche Sichtbarkeit zu verbessern",
		enhanceProjects:    "Fügen Sie %d weitere Projekte hinzu, um vielfältige Fähigkeiten zu zeigen",
		quantifyImpact:     "Fügen Sie Metriken (Nutzer, Leistung, Umsatz) in %s hinzu",
		learnTrending:      "Lernen Sie %s - hohe Nachfrage im aktuellen Arbeitsmarkt",
		addCertifications:  "Lassen Sie sich in %s zertifizieren, um Expertise zu validieren",
		addKeywords:        "Fügen Sie Branchenschlüsselwörter hinzu: %s",
		portfolioWebsite:   "Erstellen Sie eine Portfolio-Website, um Ihre Arbeit zu präsentieren",
		openSource:         "Tragen Sie zu Open-Source-Projekten in %s bei",
		networking:         "Bauen Sie ein professionelles Netzwerk über %s auf",
		skillGap:           "Schließen Sie die Qualifikationslücke in %s für besseres Job-Matching",
		leadership:         "Heben Sie Führungserfahrung und Teammanagement hervor",
		continuousLearning: "Zeigen Sie kontinuierliches Lernen durch Kurse/Workshops",
	},
	"es": {
		strongExpertise: "Fuerte experiencia en %s (%d habilidades)",
		goodFoundation:  "Buena base en %s",
		diverseSkillset: "Conjunto diverso de habilidades técnicas con %d tecnologías",
		basicFoundation: "Base técnica sólida",

		limitedExperience: "Experiencia limitada en %s",
		expandSkillset:    "Podría ampliar el conjunto de habilidades técnicas",
		wellRounded:       "Perfil de habilidades bien equilibrado",

		missingContact:     "Agregue %s para mejorar la visibilidad profesional",
		enhanceProjects:    "Agregue %d proyectos más para mostrar habilidades diversas",
		quantifyImpact:     "Incluya métricas (usuarios, rendimiento, ingresos) en %s",
		learnTrending:      "Aprenda %s - alta demanda en el mercado laboral actual",
		addCertifications:  "Certifíquese en %s para validar experiencia",
		addKeywords:        "Incluya palabras clave de la industria: %s",
		portfolioWebsite:   "Cree un sitio web de portafolio para mostrar su trabajo",
		openSource:         "Contribuya a proyectos de código abierto en %s",
		networking:         "Construya una red profesional a través de %s",
		skillGap:           "Cierre la brecha de habilidades en %s para mejor coincidencia laboral",
		leadership:         "Destaque la experiencia de liderazgo y gestión de equipos",
		continuousLearning: "Muestre aprendizaje continuo a través de cursos/talleres",
	},
	"fr": {
		strongExpertise: "Forte expertise en %s (%d compétences)",
		goodFoundation:  "Bonne base en %s",
		diverseSkillset: "Ensemble diversifié de compétences techniques avec %d technologies",
		basicFoundation: "Base technique solide",

		limitedExperience: "Expérience limitée en %s",
		expandSkillset:    "Pourrait élargir l'ensemble de compétences techniques",
		wellRounded:       "Profil de compétences bien équilibré",

		missingContact:     "Ajoutez %s pour améliorer la visibilité professionnelle",
		enhanceProjects:    "Ajoutez %d projets supplémentaires pour montrer des compétences diverses",
		quantifyImpact:     "Incluez des métriques (utilisateurs, performance, revenus) dans %s",
		learnTrending:      "Apprenez %s - forte demande sur le marché du travail actuel",
		addCertifications:  "Obtenez une certification en %s pour valider l'expertise",
		addKeywords:        "Incluez des mots-clés de l'industrie: %s",
		portfolioWebsite:   "Créez un site web de portfolio pour présenter votre travail",
		openSource:         "Contribuez aux projets open source en %s",
		networking:         "Construisez un réseau professionnel via %s",
		skillGap:           "Comblez l'écart de compétences en %s pour un meilleur matching d'emploi",
		leadership:         "Mettez en avant l'expérience de leadership et la gestion d'équipe",
		continuousLearning: "Montrez l'apprentissage continu par des cours/ateliers",
	},
}

// templatesFor falls back to English for unsupported language codes.
func templatesFor(language string) templateSet {
	if t, ok := templates[language]; ok {
		return t
	}
	return templates["en"]
}
