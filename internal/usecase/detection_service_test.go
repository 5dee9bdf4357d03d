package usecase

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cornndawwg/icatalyst-production-sub001/internal/domain"
)

// fakeExternal serves a canned result, optionally failing or sleeping first
type fakeExternal struct {
	result *domain.DetectionResult
	err    error
	delay  time.Duration
	calls  atomic.Int32
}

func (f *fakeExternal) Classify(ctx context.Context, _ string) (*domain.DetectionResult, error) {
	f.calls.Add(1)
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	out := *f.result
	return &out, nil
}

// fakeCache is a minimal in-memory DetectionCache
type fakeCache struct {
	mu   sync.Mutex
	data map[string]*domain.DetectionResult
	hits int
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string]*domain.DetectionResult)}
}

func (c *fakeCache) Get(_ context.Context, key string) (*domain.DetectionResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if r, ok := c.data[key]; ok {
		c.hits++
		return r, nil
	}
	return nil, domain.ErrCacheMiss
}

func (c *fakeCache) Set(_ context.Context, key string, result *domain.DetectionResult, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = result
	return nil
}

func (c *fakeCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

func TestDetectionService(t *testing.T) {
	ctx := context.Background()

	t.Run("rule-based only when no external classifier is configured", func(t *testing.T) {
		svc := NewDetectionService(testRegistry(t), nil, nil, DetectionServiceConfig{})
		result, err := svc.DetectPersona(ctx, "cameras for my house", "")
		if err != nil {
			t.Fatalf("DetectPersona() error = %v", err)
		}
		if result.Persona != "homeowner" || result.Method != domain.MethodRuleBased {
			t.Errorf("got %s/%s, want homeowner/rule-based", result.Persona, result.Method)
		}
		if result.Confidence != 0.63 {
			t.Errorf("Confidence = %v, want 0.63", result.Confidence)
		}
	})

	t.Run("extra context joins the text before scoring", func(t *testing.T) {
		svc := NewDetectionService(testRegistry(t), nil, nil, DetectionServiceConfig{})
		result, err := svc.DetectPersona(ctx, "need cameras", "for my house")
		if err != nil {
			t.Fatalf("DetectPersona() error = %v", err)
		}
		if result.Persona != "homeowner" {
			t.Errorf("Persona = %s, want homeowner from the extra context", result.Persona)
		}
	})

	t.Run("agreeing external result upgrades to hybrid", func(t *testing.T) {
		external := &fakeExternal{result: &domain.DetectionResult{
			Persona: "homeowner", Confidence: 0.9, Method: domain.MethodExternal,
		}}
		svc := NewDetectionService(testRegistry(t), external, nil, DetectionServiceConfig{})
		result, err := svc.DetectPersona(ctx, "cameras for my house", "")
		if err != nil {
			t.Fatalf("DetectPersona() error = %v", err)
		}
		if result.Method != domain.MethodHybrid {
			t.Errorf("Method = %s, want hybrid", result.Method)
		}
		if result.Confidence != 0.9 {
			t.Errorf("Confidence = %v, want 0.9", result.Confidence)
		}
	})

	t.Run("external failure degrades to rule-based", func(t *testing.T) {
		external := &fakeExternal{err: domain.ErrExternalUnavailable}
		svc := NewDetectionService(testRegistry(t), external, nil, DetectionServiceConfig{})
		result, err := svc.DetectPersona(ctx, "cameras for my house", "")
		if err != nil {
			t.Fatalf("DetectPersona() error = %v", err)
		}
		if result.Persona != "homeowner" || result.Method != domain.MethodRuleBased {
			t.Errorf("got %s/%s, want homeowner/rule-based", result.Persona, result.Method)
		}
	})

	t.Run("slow external call is cut off at the timeout", func(t *testing.T) {
		external := &fakeExternal{
			result: &domain.DetectionResult{Persona: "business-owner", Confidence: 0.95, Method: domain.MethodExternal},
			delay:  200 * time.Millisecond,
		}
		svc := NewDetectionService(testRegistry(t), external, nil, DetectionServiceConfig{
			ExternalTimeout: 20 * time.Millisecond,
		})

		start := time.Now()
		result, err := svc.DetectPersona(ctx, "cameras for my house", "")
		if err != nil {
			t.Fatalf("DetectPersona() error = %v", err)
		}
		if elapsed := time.Since(start); elapsed > 150*time.Millisecond {
			t.Errorf("detection took %v, should be bounded by the external timeout", elapsed)
		}
		if result.Persona != "homeowner" || result.Method != domain.MethodRuleBased {
			t.Errorf("got %s/%s, want the rule-based result after timeout", result.Persona, result.Method)
		}
	})

	t.Run("external results are cached by normalized text", func(t *testing.T) {
		external := &fakeExternal{result: &domain.DetectionResult{
			Persona: "homeowner", Confidence: 0.9, Method: domain.MethodExternal,
		}}
		cache := newFakeCache()
		svc := NewDetectionService(testRegistry(t), external, cache, DetectionServiceConfig{})

		for i := 0; i < 3; i++ {
			// Same text modulo case and punctuation
			if _, err := svc.DetectPersona(ctx, "Cameras for my house!", ""); err != nil {
				t.Fatalf("run %d: DetectPersona() error = %v", i, err)
			}
		}
		if calls := external.calls.Load(); calls != 1 {
			t.Errorf("external called %d times, want 1 (cache serves the rest)", calls)
		}
		if cache.hits != 2 {
			t.Errorf("cache hits = %d, want 2", cache.hits)
		}
	})

	t.Run("empty input skips the external classifier", func(t *testing.T) {
		external := &fakeExternal{result: &domain.DetectionResult{
			Persona: "homeowner", Confidence: 0.9, Method: domain.MethodExternal,
		}}
		svc := NewDetectionService(testRegistry(t), external, nil, DetectionServiceConfig{})
		result, err := svc.DetectPersona(ctx, "", "")
		if err != nil {
			t.Fatalf("DetectPersona() error = %v", err)
		}
		if external.calls.Load() != 0 {
			t.Error("external classifier should not be consulted for empty input")
		}
		if result.Persona != "homeowner" || result.Confidence != 0.5 {
			t.Errorf("got %s at %v, want the homeowner fallback at 0.5", result.Persona, result.Confidence)
		}
	})

	t.Run("concurrent detections do not race", func(t *testing.T) {
		external := &fakeExternal{result: &domain.DetectionResult{
			Persona: "business-owner", Confidence: 0.9, Method: domain.MethodExternal,
		}}
		svc := NewDetectionService(testRegistry(t), external, newFakeCache(), DetectionServiceConfig{})

		var wg sync.WaitGroup
		texts := []string{"cameras for my house", "my business needs cameras", "whole home audio", ""}
		for i := 0; i < 8; i++ {
			for _, text := range texts {
				wg.Add(1)
				go func(text string) {
					defer wg.Done()
					if _, err := svc.DetectPersona(ctx, text, ""); err != nil {
						t.Errorf("DetectPersona(%q) error = %v", text, err)
					}
				}(text)
			}
		}
		wg.Wait()
	})
}

func TestDetectionServiceLookups(t *testing.T) {
	svc := NewDetectionService(testRegistry(t), nil, nil, DetectionServiceConfig{})

	t.Run("get persona config", func(t *testing.T) {
		persona, err := svc.GetPersonaConfig("business-owner")
		if err != nil {
			t.Fatalf("GetPersonaConfig() error = %v", err)
		}
		if persona.DisplayName != "Business Owner" {
			t.Errorf("DisplayName = %s, want Business Owner", persona.DisplayName)
		}
		if _, err := svc.GetPersonaConfig("nobody"); err != domain.ErrPersonaNotFound {
			t.Errorf("error = %v, want ErrPersonaNotFound", err)
		}
	})

	t.Run("list personas with optional type filter", func(t *testing.T) {
		all, err := svc.ListPersonas("")
		if err != nil {
			t.Fatalf("ListPersonas() error = %v", err)
		}
		if len(all) != 2 {
			t.Errorf("got %d personas, want 2", len(all))
		}

		commercial, err := svc.ListPersonas("commercial")
		if err != nil {
			t.Fatalf("ListPersonas(commercial) error = %v", err)
		}
		if len(commercial) != 1 || commercial[0].Name != "business-owner" {
			t.Errorf("commercial personas = %+v, want business-owner only", commercial)
		}

		if _, err := svc.ListPersonas("industrial"); err != domain.ErrInvalidRequest {
			t.Errorf("error = %v, want ErrInvalidRequest", err)
		}
	})
}
