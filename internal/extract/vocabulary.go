package extract

// TechSkills is the fixed, ordered vocabulary scanned against job
// descriptions. Matching is substring based, so compound tokens like
// "machine learning" hit as written in postings.
var TechSkills = []string{
	"python", "javascript", "java", "c++", "react", "angular",
	"vue", "node.js", "django", "flask", "spring", "sql",
	"mongodb", "aws", "azure", "docker", "kubernetes", "git",
	"linux", "machine learning", "data science", "ai",
}

// RequirementPhrases is the qualification-phrase vocabulary used for the
// common-requirements ranking.
var RequirementPhrases = []string{
	"degree", "bachelor", "master", "phd", "experience",
	"years", "certification", "certified", "knowledge of",
	"proficient in", "strong understanding", "familiar with",
}
