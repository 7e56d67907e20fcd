package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyEventType(t *testing.T) {
	tests := []struct {
		name    string
		subject string
		snippet string
		want    EventType
	}{
		{"hebrew meeting", "פגישה עם הצוות", "", EventTypeMeeting},
		{"hebrew sitting", "ישיבה שבועית", "", EventTypeMeeting},
		{"english meeting", "Team Meeting", "", EventTypeMeeting},
		{"conference", "", "annual conference invite", EventTypeMeeting},
		{"hebrew task", "משימה חדשה", "", EventTypeTask},
		{"deadline", "", "project deadline approaching", EventTypeTask},
		{"hebrew payment", "תשלום חשבון", "", EventTypePayment},
		{"hebrew money", "", "העברת כסף דחופה", EventTypePayment},
		{"invoice", "Invoice #42", "", EventTypePayment},
		{"english work", "work schedule", "", EventTypeWork},
		{"hebrew office", "עדכון מהמשרד", "", EventTypeWork},
		{"english office", "Office hours", "", EventTypeWork},
		{"default personal", "ברכות ליום הולדת", "", EventTypePersonal},
		{"empty", "", "", EventTypePersonal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyEventType(tt.subject, tt.snippet))
		})
	}
}

func TestClassifyOrderResolvesOverlap(t *testing.T) {
	// The Hebrew word for work appears in both the task and the work
	// groups; the task group is checked first so it always wins.
	assert.Equal(t, EventTypeTask, ClassifyEventType("עבודה על הפרויקט", ""))

	// A text hitting both the meeting and the task groups classifies as
	// meeting because that group is checked first.
	assert.Equal(t, EventTypeMeeting, ClassifyEventType("פגישה על משימה", ""))
}
