package memory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/csg33k/surat-generator/internal/adapters/memory"
	"github.com/csg33k/surat-generator/internal/ports"
)

var _ ports.StateStore = (*memory.Store)(nil)

func TestStore(t *testing.T) {
	ctx := context.Background()
	s := memory.New()

	if _, ok, _ := s.Get(ctx, "k"); ok {
		t.Fatal("empty store returned a value")
	}
	_ = s.Set(ctx, "k", "v")
	if v, ok, _ := s.Get(ctx, "k"); !ok || v != "v" {
		t.Fatalf("Get = %q, %v", v, ok)
	}

	s.FailWrites(true)
	if err := s.Set(ctx, "k", "w"); !errors.Is(err, memory.ErrWriteRefused) {
		t.Errorf("Set with FailWrites: err = %v", err)
	}
	if v, _, _ := s.Get(ctx, "k"); v != "v" {
		t.Errorf("refused write changed the value to %q", v)
	}

	s.FailWrites(false)
	_ = s.Delete(ctx, "k")
	if _, ok, _ := s.Get(ctx, "k"); ok {
		t.Error("value survived Delete")
	}
}
