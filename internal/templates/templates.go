// Package templates holds the static HTML documents and the CV JSON
// schema used by the generation pipeline. Templates use a minimal
// mustache-like grammar: {{field}} scalars and non-nested
// {{#list}}...{{/list}} repeated blocks.
package templates

// DefaultDocument wraps raw generator text when no HTML region could be
// extracted from the response. The single %s receives the raw text.
const DefaultDocument = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Professional Resume</title>
    <style>
        body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; line-height: 1.6; color: #333; max-width: 800px; margin: 0 auto; padding: 20px; }
        h1 { color: #2c3e50; border-bottom: 2px solid #3498db; padding-bottom: 10px; }
        h2 { color: #34495e; margin-top: 30px; }
        .section { margin-bottom: 25px; }
        .contact-info { text-align: center; margin-bottom: 30px; }
    </style>
</head>
<body>
    <div class="contact-info">
        <h1>Professional Resume</h1>
        <p>Generated from your input</p>
    </div>
    <div class="section">
        <h2>Summary</h2>
        <p>%s</p>
    </div>
</body>
</html>`

// TailoredCV is the template filled from structured generation data
// without any further model call.
const TailoredCV = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>{{name}} - Tailored CV</title>
    <style>
        body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; line-height: 1.5; color: #222; max-width: 800px; margin: 2rem auto; padding: 1rem 2rem; }
        h1, h2, h3 { color: #0a3d62; margin-bottom: 0.3rem; }
        h2 { font-size: 1.4rem; border-bottom: 2px solid #0a3d62; padding-bottom: 0.3rem; margin-top: 2rem; }
        .contact-info { margin-bottom: 1rem; font-size: 0.9rem; color: #555; }
        .photo { float: right; width: 120px; height: 120px; object-fit: cover; border-radius: 8px; margin-left: 1rem; }
        .experience-item { margin-bottom: 1.2rem; }
        .experience-date { color: #666; font-size: 0.9em; }
        ul { list-style-type: disc; margin-left: 1.5rem; }
    </style>
</head>
<body>
    {{photoHtml}}
    <h1>{{name}}</h1>
    <div class="contact-info">
        <p>{{email}} | {{phone}} | {{location}}</p>
        <p>{{linkedin}}</p>
    </div>

    <h2>Professional Summary</h2>
    <p>{{summary}}</p>

    <h2>Professional Experience</h2>
    {{#experience}}
    <div class="experience-item">
        <h3>{{position}}</h3>
        <div>{{company}} — {{location}}</div>
        <div class="experience-date">{{startDate}} - {{endDate}}</div>
        <p>{{description}}</p>
        <ul>{{achievementsHtml}}</ul>
        <div>{{technologiesLine}}</div>
    </div>
    {{/experience}}

    <h2>Education</h2>
    {{#education}}
    <div class="experience-item">
        <h3>{{degree}} in {{field}}</h3>
        <div>{{institution}}</div>
        <div class="experience-date">{{startDate}} - {{endDate}}</div>
    </div>
    {{/education}}

    <h2>Skills</h2>
    <ul>{{#skills}}<li>{{.}}</li>{{/skills}}</ul>

    <h2>Certifications</h2>
    {{#certifications}}
    <div class="experience-item">
        <h3>{{certName}}</h3>
        <div>{{issuer}} — {{date}}</div>
    </div>
    {{/certifications}}

    <h2>Languages</h2>
    <ul>{{#languages}}<li>{{.}}</li>{{/languages}}</ul>
</body>
</html>`

// CVSchema is the best-effort schema for the cv/analysis envelope; it
// mirrors the format the JSON-mode prompt asks the model for.
const CVSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["cv", "analysis"],
  "properties": {
    "cv": {
      "type": "object",
      "properties": {
        "personalInfo": {
          "type": "object",
          "properties": {
            "name": {"type": "string"},
            "email": {"type": "string"},
            "phone": {"type": "string"},
            "location": {"type": "string"},
            "linkedin": {"type": "string"},
            "website": {"type": "string"}
          }
        },
        "summary": {"type": "string"},
        "experience": {
          "type": "array",
          "items": {
            "type": "object",
            "properties": {
              "company": {"type": "string"},
              "position": {"type": "string"},
              "location": {"type": "string"},
              "startDate": {"type": "string"},
              "endDate": {"type": ["string", "null"]},
              "current": {"type": "boolean"},
              "description": {"type": "string"},
              "achievements": {"type": "array", "items": {"type": "string"}},
              "technologies": {"type": "array", "items": {"type": "string"}},
              "relevanceScore": {"type": "number", "minimum": 1, "maximum": 10}
            }
          }
        },
        "education": {"type": "array"},
        "skills": {
          "type": "array",
          "items": {
            "type": "object",
            "properties": {
              "name": {"type": "string"},
              "level": {"enum": ["beginner", "intermediate", "advanced", "expert"]},
              "category": {"enum": ["core", "relevant", "additional", "technical", "soft", "language", "tool"]}
            }
          }
        },
        "certifications": {"type": "array"},
        "languages": {"type": "array"}
      }
    },
    "analysis": {
      "type": "object",
      "properties": {
        "matchScore": {"type": "number", "minimum": 0, "maximum": 100},
        "strengths": {"type": "array", "items": {"type": "string"}},
        "improvements": {"type": "array", "items": {"type": "string"}},
        "tailoredSummary": {"type": "string"}
      }
    }
  }
}`
