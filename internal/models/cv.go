package models

// GenerationMode selects what the generator is asked to emit: structured
// JSON or a full standalone HTML document.
type GenerationMode string

const (
	ModeJSON GenerationMode = "json"
	ModeHTML GenerationMode = "html"
)

type SkillLevel string

const (
	SkillBeginner     SkillLevel = "beginner"
	SkillIntermediate SkillLevel = "intermediate"
	SkillAdvanced     SkillLevel = "advanced"
	SkillExpert       SkillLevel = "expert"
)

type SkillCategory string

const (
	CategoryCore       SkillCategory = "core"
	CategoryRelevant   SkillCategory = "relevant"
	CategoryAdditional SkillCategory = "additional"
	CategoryTechnical  SkillCategory = "technical"
	CategorySoft       SkillCategory = "soft"
	CategoryLanguage   SkillCategory = "language"
	CategoryTool       SkillCategory = "tool"
)

// CV is the structured resume produced by a generation attempt.
// Experience and education keep the order returned by the generator
// (relevance-ranked, highest first); nothing downstream reorders them.
type CV struct {
	PersonalInfo   PersonalInfo     `json:"personalInfo"`
	Summary        string           `json:"summary"`
	Experience     []WorkExperience `json:"experience"`
	Education      []Education      `json:"education"`
	Skills         []Skill          `json:"skills"`
	Certifications []Certification  `json:"certifications,omitempty"`
	Languages      []Language       `json:"languages,omitempty"`
	Photo          string           `json:"photo,omitempty"`
	HTMLContent    string           `json:"htmlContent,omitempty"`
}

type PersonalInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	LinkedIn string `json:"linkedin,omitempty"`
	Website  string `json:"website,omitempty"`
}

type WorkExperience struct {
	ID          string   `json:"id"`
	Company     string   `json:"company"`
	Position    string   `json:"position"`
	Location    string   `json:"location"`
	StartDate   string   `json:"startDate"`
	EndDate     *string  `json:"endDate"`
	Current     bool     `json:"current"`
	Description string   `json:"description"`
	Achievements []string `json:"achievements"`
	Technologies []string `json:"technologies"`
	// Advisory 1-10 fit rating; used for emphasis only, never enforced
	// against list order.
	RelevanceScore *float64 `json:"relevanceScore,omitempty"`
}

type Education struct {
	ID              string   `json:"id"`
	Institution     string   `json:"institution"`
	Degree          string   `json:"degree"`
	Field           string   `json:"field"`
	StartDate       string   `json:"startDate"`
	EndDate         *string  `json:"endDate"`
	Current         bool     `json:"current"`
	GPA             string   `json:"gpa,omitempty"`
	RelevantCourses []string `json:"relevantCourses,omitempty"`
}

// Skill carries a proficiency level and a presentation category. Duplicate
// skill names across entries are legal.
type Skill struct {
	Name     string        `json:"name"`
	Level    SkillLevel    `json:"level"`
	Category SkillCategory `json:"category"`
	Priority string        `json:"priority,omitempty"`
}

type Certification struct {
	Name         string  `json:"name"`
	Issuer       string  `json:"issuer"`
	Date         string  `json:"date"`
	ExpiryDate   *string `json:"expiryDate,omitempty"`
	CredentialID string  `json:"credentialId,omitempty"`
}

type Language struct {
	Name  string `json:"name"`
	Level string `json:"level"`
}

// Analysis is the generator's assessment of how well the tailored CV
// matches the target job.
type Analysis struct {
	MatchScore      float64  `json:"matchScore"`
	Strengths       []string `json:"strengths"`
	Improvements    []string `json:"improvements"`
	TailoredSummary string   `json:"tailoredSummary,omitempty"`
}

// GenerationRequest is the immutable input to one generation attempt.
// Photo is an optional data URL carried through to the rendered CV; it is
// never sent to the generator.
type GenerationRequest struct {
	OriginalCV     string
	JobDescription string
	Photo          string
}

// GenerationData is the single result of one generation attempt: the
// parsed `{cv, analysis}` envelope in JSON mode, or a CV carrying only
// HTMLContent in HTML mode.
type GenerationData struct {
	CV       CV       `json:"cv"`
	Analysis Analysis `json:"analysis"`
	// CVText is a plain-text rendition of the tailored CV, derived after
	// parsing; it is not part of the generator's JSON envelope.
	CVText string `json:"cvText,omitempty"`
}
