package location

import (
	"context"
	"testing"
)

func TestStaticProviderResolve(t *testing.T) {
	p := NewStaticProvider()

	result := p.Resolve(context.Background(), "203.0.113.10")
	if !result.OK {
		t.Fatalf("static lookup failed: %s", result.Err)
	}
	if result.Location.Address == "" || result.Location.Coordinates == nil {
		t.Fatalf("incomplete location: %+v", result.Location)
	}
	if result.Location.AccuracySource != "static" {
		t.Errorf("AccuracySource = %s", result.Location.AccuracySource)
	}
}

func TestIPAPIProviderRequiresHint(t *testing.T) {
	p := NewIPAPIProvider()

	result := p.Resolve(context.Background(), "")
	if result.OK {
		t.Fatal("expected failure without an IP hint")
	}
	if result.Err == "" {
		t.Fatal("expected an error message")
	}
}
