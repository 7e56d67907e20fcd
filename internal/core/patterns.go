package core

import (
	"regexp"
	"strings"
)

// patternCategory tags a rule with the signal it contributes to scoring
type patternCategory string

const (
	categoryDate     patternCategory = "date"
	categoryTime     patternCategory = "time"
	categoryLocation patternCategory = "location"
)

// patternRule is a single (pattern, category) entry. Rules of the same
// category form an ordered family: extraction runs every rule in order and
// concatenates all matches, duplicates included. Matching is substring
// based with no calendar or clock validation; accepting "40/40/9999" as a
// date is the intended heuristic behavior.
type patternRule struct {
	re       *regexp.Regexp
	category patternCategory
}

var patternRules = []patternRule{
	// Absolute numeric dates in three delimiter styles
	{regexp.MustCompile(`\d{1,2}/\d{1,2}/\d{2,4}`), categoryDate},
	{regexp.MustCompile(`\d{1,2}\.\d{1,2}\.\d{2,4}`), categoryDate},
	{regexp.MustCompile(`\d{1,2}-\d{1,2}-\d{2,4}`), categoryDate},
	// Hebrew weekday names, with or without the leading "יום"
	{regexp.MustCompile(`(?:יום )?(?:ראשון|שלישי|רביעי|חמישי|שישי|שבת|שני)`), categoryDate},
	// Hebrew month names
	{regexp.MustCompile(`(?i)(?:ינואר|פברואר|מרץ|אפריל|מאי|יוני|יולי|אוגוסט|ספטמבר|אוקטובר|נובמבר|דצמבר)`), categoryDate},
	// Hebrew relative-day terms
	{regexp.MustCompile(`(?:מחר|היום|אתמול|השבוע|שבוע הבא)`), categoryDate},
	// English weekday names
	{regexp.MustCompile(`(?i)\b(?:sunday|monday|tuesday|wednesday|thursday|friday|saturday)\b`), categoryDate},
	// English month names
	{regexp.MustCompile(`(?i)\b(?:january|february|march|april|may|june|july|august|september|october|november|december)\b`), categoryDate},
	// English relative-day terms
	{regexp.MustCompile(`(?i)\b(?:tomorrow|today|yesterday|this week|next week)\b`), categoryDate},

	// Bare clock forms, colon and dot delimited
	{regexp.MustCompile(`\d{1,2}:\d{2}`), categoryTime},
	{regexp.MustCompile(`\d{1,2}\.\d{2}`), categoryTime},
	// Hebrew "at HH:MM" phrasing
	{regexp.MustCompile(`בשעה \d{1,2}:\d{2}`), categoryTime},
	// English "at HH:MM" phrasing
	{regexp.MustCompile(`(?i)\bat \d{1,2}:\d{2}`), categoryTime},
	// Bare am/pm forms
	{regexp.MustCompile(`(?i)\b\d{1,2} ?(?:am|pm)\b`), categoryTime},

	// Hebrew locative phrases
	{regexp.MustCompile(`(?:במשרד|בבית קפה|בבית|בחדר \S+|במסעדה)`), categoryLocation},
	// English platform and place nouns
	{regexp.MustCompile(`(?i)\b(?:zoom|teams|meet|skype|office|home|restaurant|cafe)\b`), categoryLocation},
	// Hebrew street/address phrases, greedy word capture
	{regexp.MustCompile(`ברחוב .+`), categoryLocation},
	{regexp.MustCompile(`בכתובת: .+`), categoryLocation},
}

// extractCategory returns every match of every rule in the given category,
// in rule order then text order. Callers wanting "the first match" take
// index 0.
func extractCategory(text string, category patternCategory) []string {
	var matches []string
	for _, rule := range patternRules {
		if rule.category != category {
			continue
		}
		matches = append(matches, rule.re.FindAllString(text, -1)...)
	}
	return matches
}

// ExtractDates returns all date-like substrings in text
func ExtractDates(text string) []string {
	return extractCategory(text, categoryDate)
}

// ExtractTimes returns all time-like substrings in text
func ExtractTimes(text string) []string {
	return extractCategory(text, categoryTime)
}

// ExtractLocations returns all location-like substrings in text
func ExtractLocations(text string) []string {
	return extractCategory(text, categoryLocation)
}

// eventKeywords are the terms whose presence signals that a message likely
// describes a schedulable event. Containment is tested case-insensitively
// over subject+snippet.
var eventKeywords = []string{
	"פגישה", "ישיבה", "מפגש", "אירוע", "דחוף", "תזכורת", "יומן",
	"בשעה", "השבוע", "מחר", "היום",
	"meeting", "appointment", "conference", "event", "urgent",
	"reminder", "schedule", "calendar", "tomorrow", "today", "this week",
}

// containsEventKeyword reports whether text contains any event keyword
func containsEventKeyword(text string) bool {
	lowered := strings.ToLower(text)
	for _, kw := range eventKeywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}
