package chat

import (
	"testing"
	"time"

	"snabbit/models"
)

func fixedNow() time.Time {
	return time.Date(2026, 8, 1, 14, 30, 0, 0, time.UTC)
}

func TestSeedThread(t *testing.T) {
	svc := NewMemoryService()
	svc.Now = fixedNow

	svc.SeedThread("b1", models.HelperProfile{Name: "Sarah Johnson", ArrivalMinutes: 12})

	msgs, err := svc.GetThread("b1")
	if err != nil {
		t.Fatalf("GetThread: %v", err)
	}
	if len(msgs) != 3 {
		t.Fatalf("got %d seeded messages, want 3", len(msgs))
	}
	if msgs[0].Sender != "helper" || msgs[1].Sender != "customer" {
		t.Errorf("unexpected senders: %s, %s", msgs[0].Sender, msgs[1].Sender)
	}
	if msgs[2].Text != "No problem! I can be there in 12 minutes with my toolkit." {
		t.Errorf("arrival message = %q", msgs[2].Text)
	}
}

func TestSeedThreadIsIdempotent(t *testing.T) {
	svc := NewMemoryService()
	svc.SeedThread("b1", models.HelperProfile{ArrivalMinutes: 5})
	svc.Append("b1", "customer", "extra")
	svc.SeedThread("b1", models.HelperProfile{ArrivalMinutes: 5})

	msgs, _ := svc.GetThread("b1")
	if len(msgs) != 4 {
		t.Fatalf("re-seeding changed the thread: %d messages", len(msgs))
	}
}

func TestAppend(t *testing.T) {
	svc := NewMemoryService()
	svc.SeedThread("b1", models.HelperProfile{ArrivalMinutes: 5})

	msg, err := svc.Append("b1", "customer", "On my way down.")
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if msg.ID != 4 {
		t.Errorf("message ID = %d, want 4", msg.ID)
	}

	if _, err := svc.Append("b1", "customer", ""); err == nil {
		t.Fatal("expected error for empty message")
	}
	if _, err := svc.Append("missing", "customer", "hi"); err == nil {
		t.Fatal("expected error for unknown thread")
	}
}

func TestGetThreadUnknownBooking(t *testing.T) {
	svc := NewMemoryService()
	if _, err := svc.GetThread("missing"); err == nil {
		t.Fatal("expected error for unknown thread")
	}
}
