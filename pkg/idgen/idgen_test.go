package idgen

import (
	"regexp"
	"sync"
	"testing"

	"github.com/google/uuid"
)

func TestTaskID_Format(t *testing.T) {
	pattern := regexp.MustCompile(`^86[0-9a-z]{7}$`)

	id, err := TaskID()
	if err != nil {
		t.Fatalf("TaskID() returned error: %v", err)
	}

	if !pattern.MatchString(id) {
		t.Errorf("TaskID() = %v, want format 86[0-9a-z]{7}", id)
	}
}

func TestTaskID_Unique(t *testing.T) {
	ids := make(map[string]bool)
	count := 100

	for i := 0; i < count; i++ {
		id := MustTaskID()
		if ids[id] {
			t.Errorf("TaskID() returned duplicate ID: %v", id)
		}
		ids[id] = true
	}
}

func TestFieldID_IsUUID(t *testing.T) {
	id := FieldID()
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("FieldID() = %q, not a UUID: %v", id, err)
	}
}

func TestSequence(t *testing.T) {
	seq := NewSequence(90000)

	if got := seq.Next(); got != "90000" {
		t.Errorf("first Next() = %q, want 90000", got)
	}
	if got := seq.Next(); got != "90001" {
		t.Errorf("second Next() = %q, want 90001", got)
	}
}

func TestSequence_Concurrent(t *testing.T) {
	seq := NewSequence(1)
	var mu sync.Mutex
	seen := make(map[string]bool)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := seq.Next()
			mu.Lock()
			defer mu.Unlock()
			if seen[id] {
				t.Errorf("duplicate ID %s", id)
			}
			seen[id] = true
		}()
	}
	wg.Wait()

	if len(seen) != 50 {
		t.Errorf("got %d distinct IDs, want 50", len(seen))
	}
}
