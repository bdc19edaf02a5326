package services

import (
	"fmt"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildTailoredCVPrompt creates the JSON-mode prompt. Both inputs are
// embedded verbatim; the literal schema example tells the model exactly
// which fields to emit. No length limits are enforced here; truncation,
// if any, happens at the generation endpoint.
func (pb *PromptBuilder) BuildTailoredCVPrompt(originalCV, jobDescription string) string {
	return fmt.Sprintf(`You are an expert CV writer and career consultant specializing in creating targeted, professional resumes. Your task is to analyze a job description and an original CV, then generate a tailored CV that intelligently prioritizes and emphasizes relevant experience. Do not fabricate qualifications or overstate experience.

JOB DESCRIPTION:
%s

ORIGINAL CV:
%s

INSTRUCTIONS:
1. Score each experience item 1-10 for relevance to the job and reorder the experience list by that score, highest first. Give relevant roles full detail; keep less relevant roles brief. Do not remove any experience.
2. Categorize skills as core (direct match to job requirements), relevant, additional, technical, soft, language, or tool.
3. Tailor the summary to lead with the most relevant experience and skills.
4. Keep all dates, companies, and positions accurate.

Return your response in the following JSON format:
{
  "cv": {
    "personalInfo": {
      "name": "string",
      "email": "string",
      "phone": "string",
      "location": "string",
      "linkedin": "string (optional)",
      "website": "string (optional)"
    },
    "summary": "string (tailored to job requirements)",
    "experience": [
      {
        "id": "string",
        "company": "string",
        "position": "string",
        "location": "string",
        "startDate": "string (YYYY-MM)",
        "endDate": "string (YYYY-MM) or null",
        "current": "boolean",
        "description": "string",
        "achievements": ["string (prioritized by relevance)"],
        "technologies": ["string (prioritized by relevance)"],
        "relevanceScore": "number (1-10, for internal use)"
      }
    ],
    "education": [
      {
        "id": "string",
        "institution": "string",
        "degree": "string",
        "field": "string",
        "startDate": "string (YYYY-MM)",
        "endDate": "string (YYYY-MM) or null",
        "current": "boolean",
        "gpa": "string (optional)",
        "relevantCourses": ["string (optional)"]
      }
    ],
    "skills": [
      {
        "name": "string",
        "level": "beginner|intermediate|advanced|expert",
        "category": "core|relevant|additional|technical|soft|language|tool",
        "priority": "high|medium|low"
      }
    ],
    "certifications": [
      {
        "name": "string",
        "issuer": "string",
        "date": "string (YYYY-MM)",
        "expiryDate": "string (YYYY-MM) or null",
        "credentialId": "string (optional)"
      }
    ],
    "languages": [
      {
        "name": "string",
        "level": "basic|conversational|fluent|native"
      }
    ]
  },
  "analysis": {
    "matchScore": "number (0-100)",
    "strengths": ["string"],
    "improvements": ["string"],
    "tailoredSummary": "string (how well the CV matches the job)"
  }
}

IMPORTANT: Return only the JSON object, no additional text or formatting.`,
		jobDescription, originalCV)
}

// BuildHTMLCVPrompt creates the HTML-mode prompt: the model is asked for
// a full standalone HTML5 document instead of structured JSON.
func (pb *PromptBuilder) BuildHTMLCVPrompt(originalCV, jobDescription string) string {
	return fmt.Sprintf(`You are a professional CV-to-HTML converter. Read the candidate's raw CV content, even if loosely structured, and produce a tailored resume for the job below. Do not fabricate qualifications or overstate experience.

JOB DESCRIPTION:
%s

ORIGINAL CV:
%s

Generate a complete standalone HTML document with:
- Semantic HTML5 structure (<section>, <h1>, <ul>, ...)
- Modern, clean design with light inline CSS
- Clear sections for summary, experience, skills, education, certifications and languages
- Experience ordered by relevance to the job description

Return only the complete HTML document, no additional text or explanations.`,
		jobDescription, originalCV)
}
