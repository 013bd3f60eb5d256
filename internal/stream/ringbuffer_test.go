package stream

import "testing"

func TestRingBufferGetAllOrdersChronologically(t *testing.T) {
	rb := newEventRingBuffer(3)
	for _, kind := range []string{"a", "b", "c"} {
		rb.Add(Event{Kind: kind})
	}

	got := rb.GetAll()
	if len(got) != 3 {
		t.Fatalf("GetAll() returned %d events, want 3", len(got))
	}
	for i, want := range []string{"a", "b", "c"} {
		if got[i].Kind != want {
			t.Errorf("GetAll()[%d].Kind = %q, want %q", i, got[i].Kind, want)
		}
	}
}

func TestRingBufferWrapsAtCapacity(t *testing.T) {
	rb := newEventRingBuffer(2)
	for _, kind := range []string{"a", "b", "c"} {
		rb.Add(Event{Kind: kind})
	}

	got := rb.GetAll()
	if len(got) != 2 {
		t.Fatalf("GetAll() returned %d events, want 2", len(got))
	}
	if got[0].Kind != "b" || got[1].Kind != "c" {
		t.Fatalf("GetAll() = %+v, want [b c]", got)
	}
	if n := rb.GetCount(); n != 2 {
		t.Errorf("GetCount() = %d, want 2", n)
	}
}

func TestRingBufferEmptyReturnsEmptySlices(t *testing.T) {
	rb := newEventRingBuffer(4)
	if got := rb.GetAll(); len(got) != 0 {
		t.Errorf("GetAll() on empty buffer = %+v, want empty", got)
	}
	if got := rb.GetBulkNDJSON(); len(got) != 0 {
		t.Errorf("GetBulkNDJSON() on empty buffer = %q, want empty", got)
	}
}

func TestRingBufferGetBulkNDJSONOneLinePerEvent(t *testing.T) {
	rb := newEventRingBuffer(4)
	rb.Add(Event{Kind: KindLevel})
	rb.Add(Event{Kind: KindMDCOP})

	data := rb.GetBulkNDJSON()
	lines := 0
	for _, b := range data {
		if b == '\n' {
			lines++
		}
	}
	if lines != 2 {
		t.Fatalf("GetBulkNDJSON() has %d newlines, want 2", lines)
	}
}

func TestNewEventRingBufferDefaultsOnNonPositiveSize(t *testing.T) {
	rb := newEventRingBuffer(0)
	if rb.size <= 0 {
		t.Fatalf("size = %d, want positive default", rb.size)
	}
}
