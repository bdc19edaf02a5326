package services

import (
	"fmt"
	"regexp"
	"strings"

	"rashedaq/cv-tailor/internal/models"
)

var (
	blockRe  = regexp.MustCompile(`(?s)\{\{#(\w+)\}\}(.*?)\{\{/(\w+)\}\}`)
	scalarRe = regexp.MustCompile(`\{\{(\w+)\}\}`)
	dotRe    = regexp.MustCompile(`\{\{\.\}\}`)
)

// FillTemplate substitutes {{key}} scalars and expands {{#key}}...{{/key}}
// repeated blocks from data. Blocks are not nested: one level of list
// expansion per marker name. A block marker whose key is absent or not a
// list is left in place as literal text; an absent scalar key renders as
// the empty string. No HTML escaping is performed here.
func FillTemplate(template string, data map[string]any) string {
	result := blockRe.ReplaceAllStringFunc(template, func(match string) string {
		parts := blockRe.FindStringSubmatch(match)
		open, inner, closing := parts[1], parts[2], parts[3]
		if open != closing {
			return match
		}

		list, ok := asList(data[open])
		if !ok {
			return match
		}

		var out strings.Builder
		for _, element := range list {
			out.WriteString(renderElement(inner, element))
		}
		return out.String()
	})

	return scalarRe.ReplaceAllStringFunc(result, func(match string) string {
		key := scalarRe.FindStringSubmatch(match)[1]
		return stringify(data[key])
	})
}

func renderElement(inner string, element any) string {
	switch el := element.(type) {
	case map[string]any:
		return scalarRe.ReplaceAllStringFunc(inner, func(match string) string {
			key := scalarRe.FindStringSubmatch(match)[1]
			return stringify(el[key])
		})
	default:
		return dotRe.ReplaceAllString(inner, stringify(element))
	}
}

func asList(v any) ([]any, bool) {
	switch list := v.(type) {
	case []any:
		return list, true
	case []string:
		out := make([]any, len(list))
		for i, s := range list {
			out[i] = s
		}
		return out, true
	case []map[string]any:
		out := make([]any, len(list))
		for i, m := range list {
			out[i] = m
		}
		return out, true
	default:
		return nil, false
	}
}

func stringify(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	default:
		return fmt.Sprintf("%v", v)
	}
}

// cvTemplateData flattens a generation result into the shape TailoredCV
// expects. List-valued fields inside a repeated block (achievements,
// technologies) are pre-rendered into scalar strings because the template
// grammar does not support nested blocks.
func cvTemplateData(data *models.GenerationData) map[string]any {
	cv := data.CV

	experience := make([]map[string]any, 0, len(cv.Experience))
	for _, exp := range cv.Experience {
		var achievements strings.Builder
		for _, a := range exp.Achievements {
			achievements.WriteString("<li>" + a + "</li>")
		}

		experience = append(experience, map[string]any{
			"position":         exp.Position,
			"company":          exp.Company,
			"location":         exp.Location,
			"startDate":        exp.StartDate,
			"endDate":          endDateLabel(exp.EndDate, exp.Current),
			"description":      exp.Description,
			"achievementsHtml": achievements.String(),
			"technologiesLine": strings.Join(exp.Technologies, ", "),
		})
	}

	education := make([]map[string]any, 0, len(cv.Education))
	for _, edu := range cv.Education {
		education = append(education, map[string]any{
			"degree":      edu.Degree,
			"field":       edu.Field,
			"institution": edu.Institution,
			"startDate":   edu.StartDate,
			"endDate":     endDateLabel(edu.EndDate, edu.Current),
		})
	}

	skills := make([]string, 0, len(cv.Skills))
	for _, skill := range cv.Skills {
		skills = append(skills, skill.Name)
	}

	certifications := make([]map[string]any, 0, len(cv.Certifications))
	for _, cert := range cv.Certifications {
		certifications = append(certifications, map[string]any{
			"certName": cert.Name,
			"issuer":   cert.Issuer,
			"date":     cert.Date,
		})
	}

	languages := make([]string, 0, len(cv.Languages))
	for _, lang := range cv.Languages {
		languages = append(languages, fmt.Sprintf("%s (%s)", lang.Name, lang.Level))
	}

	jobTitle := ""
	if len(cv.Experience) > 0 {
		jobTitle = cv.Experience[0].Position
	}

	// The grammar has no conditionals, so the photo is pre-rendered: an
	// empty photo leaves nothing behind in the document.
	photoHTML := ""
	if cv.Photo != "" {
		photoHTML = fmt.Sprintf(`<img src="%s" alt="%s" class="photo">`, cv.Photo, cv.PersonalInfo.Name)
	}

	return map[string]any{
		"photoHtml":      photoHTML,
		"name":           cv.PersonalInfo.Name,
		"jobTitle":       jobTitle,
		"email":          cv.PersonalInfo.Email,
		"phone":          cv.PersonalInfo.Phone,
		"location":       cv.PersonalInfo.Location,
		"linkedin":       cv.PersonalInfo.LinkedIn,
		"website":        cv.PersonalInfo.Website,
		"summary":        cv.Summary,
		"experience":     experience,
		"education":      education,
		"skills":         skills,
		"certifications": certifications,
		"languages":      languages,
	}
}

func endDateLabel(endDate *string, current bool) string {
	if current || endDate == nil || *endDate == "" {
		return "Present"
	}
	return *endDate
}
