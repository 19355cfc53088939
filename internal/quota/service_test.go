package quota

import (
	"context"
	"testing"
)

func TestCanConsumeWithinLimit(t *testing.T) {
	svc := NewService()
	ctx := context.Background()

	ok, q, err := svc.CanConsume(ctx, "user-1", 1)
	if err != nil {
		t.Fatalf("CanConsume: %v", err)
	}
	if !ok {
		t.Fatalf("fresh quota must allow consumption")
	}
	if q.Plan != "Free" || q.Limit != 20 || q.Used != 0 {
		t.Fatalf("unexpected defaults: %+v", q)
	}
}

func TestConsumeUntilLimitReached(t *testing.T) {
	svc := NewService()
	ctx := context.Background()

	for i := 0; i < 20; i++ {
		if _, err := svc.Consume(ctx, "user-1", 1); err != nil {
			t.Fatalf("Consume %d: %v", i, err)
		}
	}
	if _, err := svc.Consume(ctx, "user-1", 1); err != ErrLimitReached {
		t.Fatalf("expected ErrLimitReached, got %v", err)
	}

	ok, q, err := svc.CanConsume(ctx, "user-1", 1)
	if err != nil {
		t.Fatalf("CanConsume: %v", err)
	}
	if ok {
		t.Fatalf("exhausted quota must not allow consumption, got %+v", q)
	}
}

func TestResetRestoresAllowance(t *testing.T) {
	svc := NewService()
	ctx := context.Background()

	if _, err := svc.Consume(ctx, "user-1", 5); err != nil {
		t.Fatalf("Consume: %v", err)
	}
	q, err := svc.Reset(ctx, "user-1")
	if err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if q.Used != 0 {
		t.Fatalf("expected used reset to 0, got %d", q.Used)
	}
}

func TestConsumeZeroIsNoop(t *testing.T) {
	svc := NewService()
	ctx := context.Background()

	q, err := svc.Consume(ctx, "user-1", 0)
	if err != nil {
		t.Fatalf("Consume: %v", err)
	}
	if q.Used != 0 {
		t.Fatalf("expected no consumption, got %d", q.Used)
	}
}
