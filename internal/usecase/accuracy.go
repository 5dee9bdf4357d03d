package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log"
	"math"
	"sync"
	"time"

	"github.com/cornndawwg/icatalyst-production-sub001/internal/domain"
)

// Detector is the piece of the detection service the tracker needs; it is
// an interface so bulk tests can run against a fake
type Detector interface {
	DetectPersona(ctx context.Context, text, extraContext string) (domain.DetectionResult, error)
}

// AccuracyTracker records detection outcomes against known-correct labels
// for offline calibration. The log is append-only and safe for concurrent
// writers; Summarize reads a copied snapshot, never the live slice.
type AccuracyTracker struct {
	mu       sync.Mutex
	outcomes []domain.TestOutcome
	store    domain.PerformanceStore
}

// NewAccuracyTracker creates a tracker. store may be nil; outcomes are then
// kept in memory only.
func NewAccuracyTracker(store domain.PerformanceStore) *AccuracyTracker {
	return &AccuracyTracker{store: store}
}

// Record appends one detection outcome. Outcomes with an expected label are
// also forwarded to the performance store; store failures are logged, never
// propagated.
func (t *AccuracyTracker) Record(ctx context.Context, result domain.DetectionResult, text, expected string, caseErr error) domain.TestOutcome {
	outcome := domain.TestOutcome{
		Text:       text,
		Expected:   expected,
		Detected:   result.Persona,
		Confidence: result.Confidence,
		Correct:    caseErr == nil && expected != "" && result.Persona == expected,
	}
	if caseErr != nil {
		outcome.Error = caseErr.Error()
	}

	t.mu.Lock()
	t.outcomes = append(t.outcomes, outcome)
	t.mu.Unlock()

	if t.store != nil && expected != "" && caseErr == nil {
		rec := domain.DetectionRecord{
			InputHash:  hashInput(text),
			Detected:   result.Persona,
			Expected:   expected,
			Confidence: result.Confidence,
			Method:     result.Method,
			Correct:    outcome.Correct,
			CreatedAt:  time.Now().UTC(),
		}
		if err := t.store.Append(ctx, rec); err != nil {
			log.Printf("[ACCURACY] performance store append failed: %v", err)
		}
	}

	return outcome
}

// Snapshot returns a copy of the recorded outcomes
func (t *AccuracyTracker) Snapshot() []domain.TestOutcome {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]domain.TestOutcome, len(t.outcomes))
	copy(out, t.outcomes)
	return out
}

// RunBulkTest classifies every test case and aggregates a summary. A
// failing case is recorded with its own error and excluded from the
// accuracy denominator; it never aborts the batch.
func (t *AccuracyTracker) RunBulkTest(ctx context.Context, detector Detector, cases []domain.DetectionTestCase) domain.TestSummary {
	outcomes := make([]domain.TestOutcome, 0, len(cases))
	for _, tc := range cases {
		result, err := detector.DetectPersona(ctx, tc.Text, "")
		outcomes = append(outcomes, t.Record(ctx, result, tc.Text, tc.ExpectedPersona, err))
	}
	return Summarize(outcomes)
}

// Summarize computes accuracy over outcomes that carry an expected label
// and no error. The accuracy is a percentage rounded to 2 decimal places.
func Summarize(outcomes []domain.TestOutcome) domain.TestSummary {
	summary := domain.TestSummary{
		Total:    len(outcomes),
		Outcomes: outcomes,
	}
	for _, o := range outcomes {
		if o.Error != "" {
			summary.Failed++
			continue
		}
		if o.Expected == "" {
			continue
		}
		summary.Evaluated++
		if o.Correct {
			summary.Correct++
		}
	}
	if summary.Evaluated > 0 {
		pct := float64(summary.Correct) / float64(summary.Evaluated) * 100
		summary.OverallAccuracy = math.Round(pct*100) / 100
	}
	return summary
}

// hashInput produces a stable, privacy-preserving key for raw input text
func hashInput(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
