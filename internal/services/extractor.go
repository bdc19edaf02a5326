package services

import (
	"encoding/json"
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"rashedaq/cv-tailor/internal/models"
	"rashedaq/cv-tailor/internal/templates"
)

// The extractor is the only defense against unreliable generator output:
// it recovers a JSON or HTML payload from whatever text came back.

var (
	doctypeRe = regexp.MustCompile(`(?is)<!DOCTYPE html>.*</html>`)
	htmlRe    = regexp.MustCompile(`(?is)<html.*</html>`)
	bodyRe    = regexp.MustCompile(`(?is)<body.*</body>`)
)

// ExtractJSON strips markdown fences and returns the first balanced
// `{...}` region of the text. Braces inside string values do not count
// toward balance. No region at all is ErrMalformedResponse.
func ExtractJSON(text string) (string, error) {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	start := strings.Index(text, "{")
	if start == -1 {
		return "", fmt.Errorf("%w: no JSON object found", ErrMalformedResponse)
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], nil
			}
		}
	}

	return "", fmt.Errorf("%w: unbalanced JSON object", ErrMalformedResponse)
}

// ParseGeneration parses JSON-mode generator output into the cv/analysis
// envelope. Surrounding noise is discarded; a missing envelope is a hard
// failure. Schema conformance beyond the two required keys is checked
// best-effort only.
func ParseGeneration(raw string) (*models.GenerationData, error) {
	jsonStr, err := ExtractJSON(raw)
	if err != nil {
		return nil, err
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal([]byte(jsonStr), &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if _, ok := envelope["cv"]; !ok {
		return nil, fmt.Errorf("%w: missing cv key", ErrMalformedResponse)
	}
	if _, ok := envelope["analysis"]; !ok {
		return nil, fmt.Errorf("%w: missing analysis key", ErrMalformedResponse)
	}

	var data models.GenerationData
	if err := json.Unmarshal([]byte(jsonStr), &data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	validateAgainstSchema(jsonStr)

	return &data, nil
}

// validateAgainstSchema reports schema violations without failing the
// parse; the generator is never trusted to conform exactly.
func validateAgainstSchema(jsonStr string) {
	schemaLoader := gojsonschema.NewStringLoader(templates.CVSchema)
	docLoader := gojsonschema.NewStringLoader(jsonStr)

	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		log.Printf("⚠️  Schema validation skipped: %v\n", err)
		return
	}

	for _, violation := range result.Errors() {
		log.Printf("⚠️  CV schema violation: %s\n", violation.String())
	}
}

// ExtractHTML returns the first full HTML region of the text. When no
// region is found the raw text is wrapped in the default document instead
// of failing, the lenient counterpart to JSON mode's hard error.
func ExtractHTML(text string) string {
	for _, re := range []*regexp.Regexp{doctypeRe, htmlRe, bodyRe} {
		if match := re.FindString(text); match != "" {
			return match
		}
	}

	return fmt.Sprintf(templates.DefaultDocument, text)
}
