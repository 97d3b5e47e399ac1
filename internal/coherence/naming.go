package coherence

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/artifactqa/quality-assessment/internal/model"
)

// NamingClass is the bucket an identifier's spelling falls into. Checked in
// the fixed priority order kebab, camel, snake, pascal — the first pattern
// that matches wins, so a plain lowercase word like "confirm" is kebab-case
// (trivially, with zero hyphens) rather than falling through to camel.
type NamingClass string

const (
	NamingKebab        NamingClass = "kebab-case"
	NamingCamel        NamingClass = "camel-case"
	NamingSnake        NamingClass = "snake-case"
	NamingPascal       NamingClass = "pascal-case"
	NamingInconsistent NamingClass = "inconsistent"
)

var (
	kebabPattern   = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	camelPattern   = regexp.MustCompile(`^[a-z][a-zA-Z0-9]*$`)
	snakePattern   = regexp.MustCompile(`^[a-z0-9]+(_[a-z0-9]+)+$`)
	pascalPattern  = regexp.MustCompile(`^[A-Z][a-zA-Z0-9]*$`)
	numericPattern = regexp.MustCompile(`^[0-9]+$`)
)

func classifyName(s string) NamingClass {
	switch {
	case kebabPattern.MatchString(s):
		return NamingKebab
	case camelPattern.MatchString(s):
		return NamingCamel
	case snakePattern.MatchString(s):
		return NamingSnake
	case pascalPattern.MatchString(s):
		return NamingPascal
	default:
		return NamingInconsistent
	}
}

func isPurelyNumeric(s string) bool {
	return numericPattern.MatchString(s)
}

// toKebabCase mechanically converts any of the recognized classes to
// kebab-case: underscores become hyphens, and an uppercase letter not at the
// very start of the string gets a hyphen inserted before it (boundary
// insertion), lowercased. Idempotent: re-applying it to its own output is a
// no-op, since the output has no uppercase letters or underscores left.
func toKebabCase(s string) string {
	s = strings.ReplaceAll(s, "_", "-")

	var b strings.Builder
	lastWritten := rune(0)
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 && lastWritten != '-' {
				b.WriteByte('-')
				lastWritten = '-'
			}
			lower := unicode.ToLower(r)
			b.WriteRune(lower)
			lastWritten = lower
			continue
		}
		b.WriteRune(r)
		lastWritten = r
	}
	return b.String()
}

// NamingConsistencyResult is the §4.3.4 non-scoring-maturity naming report.
type NamingConsistencyResult struct {
	IDScore      float64
	StepIDScore  float64
	FileScore    float64
	OverallScore float64
}

// Rename is a non-kebab identifier paired with its mechanically converted
// replacement, the input the recommendation engine turns into a naming
// recommendation.
type Rename struct {
	ID    string
	Class NamingClass
	Kebab string
}

func collectArtifactIDs(c *model.Collection) []string {
	var ids []string
	for _, r := range c.BusinessRequirements {
		ids = append(ids, r.ID)
	}
	for _, a := range c.Actors {
		ids = append(ids, a.ID)
	}
	for _, u := range c.UseCases {
		ids = append(ids, u.ID)
	}
	for _, s := range c.Screens {
		ids = append(ids, s.ID)
	}
	for _, f := range c.ScreenFlows {
		ids = append(ids, f.ID)
	}
	for _, v := range c.ValidationRules {
		ids = append(ids, v.ID)
	}
	return ids
}

func idNamingScore(ids []string) float64 {
	if len(ids) == 0 {
		return 100
	}
	kebabCount := 0
	for _, id := range ids {
		if classifyName(id) == NamingKebab {
			kebabCount++
		}
	}
	return float64(kebabCount) / float64(len(ids)) * 100
}

func useCaseStepIDs(uc *model.UseCase) []string {
	var ids []string
	for _, s := range uc.MainFlow {
		if s.StepID != "" {
			ids = append(ids, s.StepID)
		}
	}
	for _, alt := range uc.AlternativeFlows {
		for _, s := range alt.Steps {
			if s.StepID != "" {
				ids = append(ids, s.StepID)
			}
		}
	}
	return ids
}

// stepIDScore starts from the same kebab-ratio formula as idNamingScore, but
// over every stepId in the collection, then subtracts 5 for each use case
// whose own stepIds mix more than one naming class or contain a purely
// numeric id, clamped at 0.
func stepIDScore(c *model.Collection) float64 {
	var all []string
	for i := range c.UseCases {
		all = append(all, useCaseStepIDs(&c.UseCases[i])...)
	}
	score := idNamingScore(all)

	for i := range c.UseCases {
		ids := useCaseStepIDs(&c.UseCases[i])
		if len(ids) == 0 {
			continue
		}
		classes := make(map[NamingClass]bool)
		numeric := false
		for _, id := range ids {
			classes[classifyName(id)] = true
			if isPurelyNumeric(id) {
				numeric = true
			}
		}
		if len(classes) > 1 || numeric {
			score -= 5
		}
	}

	if score < 0 {
		return 0
	}
	return score
}

// checkNamingConsistency computes the naming-consistency report. The file
// naming score has no source in core data (file layout is a loader concern,
// out of scope here) so it defaults to fully compliant; see DESIGN.md.
func checkNamingConsistency(c *model.Collection) NamingConsistencyResult {
	const fileScore = 100

	idScore := idNamingScore(collectArtifactIDs(c))
	stepScore := stepIDScore(c)

	return NamingConsistencyResult{
		IDScore:      idScore,
		StepIDScore:  stepScore,
		FileScore:    fileScore,
		OverallScore: 0.5*idScore + 0.4*stepScore + 0.1*fileScore,
	}
}

// NonKebabRenames returns every top-level artifact id that isn't already
// kebab-case, paired with its mechanically converted replacement — input
// for the recommendation engine's naming recommendations.
func NonKebabRenames(c *model.Collection) []Rename {
	var out []Rename
	for _, id := range collectArtifactIDs(c) {
		class := classifyName(id)
		if class == NamingKebab {
			continue
		}
		out = append(out, Rename{ID: id, Class: class, Kebab: toKebabCase(id)})
	}
	return out
}
