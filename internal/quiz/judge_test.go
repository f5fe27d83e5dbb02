package quiz

import (
	"errors"
	"testing"
)

func saludosMC() Question {
	return Question{
		ID:      "q1",
		Kind:    KindMultipleChoice,
		Prompt:  "¿Cómo se dice \"Hola\" en Aymara?",
		Options: []string{"Kamisaraki", "Jikisiñkama", "Waliki", "Aski urukipan"},
		Answer:  "Kamisaraki",
	}
}

func saludosMatching() Question {
	return Question{
		ID:     "q4",
		Kind:   KindMatching,
		Prompt: "Relaciona las palabras con su significado",
		Pairs: []Pair{
			{Left: "Kamisaraki", Right: "¿Cómo estás?"},
			{Left: "Waliki", Right: "Bien"},
			{Left: "Jikisiñkama", Right: "Hasta luego"},
		},
	}
}

func TestJudgeChoiceKinds(t *testing.T) {
	tests := []struct {
		name   string
		q      Question
		choice string
		want   bool
	}{
		{"mc correct", saludosMC(), "Kamisaraki", true},
		{"mc wrong", saludosMC(), "Waliki", false},
		{"mc case sensitive", saludosMC(), "kamisaraki", false},
		{
			"completion correct",
			Question{Kind: KindCompletion, Options: []string{"Aski", "Suma"}, Answer: "Aski"},
			"Aski", true,
		},
		{
			"completion wrong",
			Question{Kind: KindCompletion, Options: []string{"Aski", "Suma"}, Answer: "Aski"},
			"Suma", false,
		},
		{"true-false correct", Question{Kind: KindTrueFalse, Answer: "true"}, "true", true},
		{"true-false wrong", Question{Kind: KindTrueFalse, Answer: "true"}, "false", false},
	}

	for _, tt := range tests {
		got, err := Judge(tt.q, ChoiceSubmission(tt.choice))
		if err != nil {
			t.Errorf("%s: unexpected error %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%s: Judge = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestJudgeMatching(t *testing.T) {
	q := saludosMatching()

	full := map[string]string{
		"Kamisaraki":  "¿Cómo estás?",
		"Waliki":      "Bien",
		"Jikisiñkama": "Hasta luego",
	}

	tests := []struct {
		name    string
		matches map[string]string
		want    bool
	}{
		{"all correct", full, true},
		{
			"one wrong right-item",
			map[string]string{
				"Kamisaraki":  "Bien",
				"Waliki":      "¿Cómo estás?",
				"Jikisiñkama": "Hasta luego",
			},
			false,
		},
		{
			"missing pair",
			map[string]string{
				"Kamisaraki": "¿Cómo estás?",
				"Waliki":     "Bien",
			},
			false,
		},
		{
			"extra key does not compensate",
			map[string]string{
				"Kamisaraki": "¿Cómo estás?",
				"Waliki":     "Bien",
				"Suma":       "Hasta luego",
			},
			false,
		},
	}

	for _, tt := range tests {
		got, err := Judge(q, MatchSubmission(tt.matches))
		if err != nil {
			t.Errorf("%s: unexpected error %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%s: Judge = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestJudgeRejectsWrongShape(t *testing.T) {
	var invalid InvalidSubmissionError

	_, err := Judge(saludosMC(), MatchSubmission(map[string]string{"a": "b"}))
	if !errors.As(err, &invalid) {
		t.Errorf("matching map against mc question: got %v, want InvalidSubmissionError", err)
	}

	_, err = Judge(saludosMatching(), ChoiceSubmission("Kamisaraki"))
	if !errors.As(err, &invalid) {
		t.Errorf("choice against matching question: got %v, want InvalidSubmissionError", err)
	}

	_, err = Judge(saludosMC(), Submission{})
	if !errors.As(err, &invalid) {
		t.Errorf("empty submission: got %v, want InvalidSubmissionError", err)
	}
}

func TestQuestionValidate(t *testing.T) {
	bad := []Question{
		{ID: "x", Kind: KindMultipleChoice, Answer: "a"},
		{ID: "x", Kind: KindCompletion, Options: []string{"a"}},
		{ID: "x", Kind: KindTrueFalse, Answer: "yes"},
		{ID: "x", Kind: KindMatching},
		{ID: "x", Kind: "essay"},
	}
	for _, q := range bad {
		if err := q.Validate(); err == nil {
			t.Errorf("Validate(%s %s) = nil, want error", q.Kind, q.ID)
		}
	}

	if err := saludosMC().Validate(); err != nil {
		t.Errorf("valid question rejected: %v", err)
	}
}
