package domain

import "time"

// DetectionTestCase pairs an input text with its known-correct persona.
// ExpectedPersona may be empty; such cases run but are excluded from the
// accuracy denominator.
type DetectionTestCase struct {
	Text            string `json:"text"`
	ExpectedPersona string `json:"expectedPersona,omitempty"`
}

// TestOutcome records the result of one test case
type TestOutcome struct {
	Text       string  `json:"text"`
	Expected   string  `json:"expected,omitempty"`
	Detected   string  `json:"detected,omitempty"`
	Confidence float64 `json:"confidence"`
	Correct    bool    `json:"correct"`
	Error      string  `json:"error,omitempty"`
}

// TestSummary aggregates a bulk test run. OverallAccuracy is a percentage
// rounded to 2 decimal places; cases without an expected label or with an
// error are excluded from the denominator.
type TestSummary struct {
	Total           int           `json:"total"`
	Evaluated       int           `json:"evaluated"`
	Correct         int           `json:"correct"`
	Failed          int           `json:"failed"`
	OverallAccuracy float64       `json:"overallAccuracy"`
	Outcomes        []TestOutcome `json:"outcomes,omitempty"`
}

// DetectionRecord is one row in the performance store, written whenever a
// detection outcome is observed alongside a ground-truth label
type DetectionRecord struct {
	ID         string          `json:"id"`
	InputHash  string          `json:"inputHash"`
	Detected   string          `json:"detected"`
	Expected   string          `json:"expected"`
	Confidence float64         `json:"confidence"`
	Method     DetectionMethod `json:"method"`
	Correct    bool            `json:"correct"`
	CreatedAt  time.Time       `json:"createdAt"`
}
