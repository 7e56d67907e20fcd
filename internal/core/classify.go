package core

import (
	"strings"
)

// classifierRule pairs an event type with the terms that select it
type classifierRule struct {
	eventType EventType
	terms     []string
}

// classifierRules are evaluated in order, short-circuiting on the first
// rule with any term contained in the text. The Hebrew "עבודה" appears in
// both the task and the work rules on purpose: task is checked first, so a
// message mentioning it always classifies as task. Do not merge or
// deduplicate the rules.
var classifierRules = []classifierRule{
	{EventTypeMeeting, []string{"פגישה", "ישיבה", "meeting", "conference"}},
	{EventTypeTask, []string{"משימה", "task", "עבודה", "deadline"}},
	{EventTypePayment, []string{"תשלום", "כסף", "payment", "invoice"}},
	{EventTypeWork, []string{"עבודה", "work", "משרד", "office"}},
}

// ClassifyEventType assigns an event type to a message by substring
// containment over the lowercased subject+snippet. Falls back to personal
// when no rule matches.
func ClassifyEventType(subject, snippet string) EventType {
	text := strings.ToLower(subject + " " + snippet)
	for _, rule := range classifierRules {
		for _, term := range rule.terms {
			if strings.Contains(text, term) {
				return rule.eventType
			}
		}
	}
	return EventTypePersonal
}
