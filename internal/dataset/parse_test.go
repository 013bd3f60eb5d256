package dataset

import (
	"bytes"
	"compress/gzip"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/integeruser/closedmdcop-miner/internal/instance"
)

const sample = `A 0 0 0
B 0 0 0
A 1 1 0
this is not a valid line
B 5 5 1
A 2 2 1
`

func TestParseBasic(t *testing.T) {
	d, err := Parse(strings.NewReader(sample), nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if got, want := d.ObjectCount(), 5; got != want {
		t.Fatalf("ObjectCount() = %d, want %d", got, want)
	}
	if got, want := d.EventTypes(), []string{"A", "B"}; !equalStrings(got, want) {
		t.Fatalf("EventTypes() = %v, want %v", got, want)
	}
	if got, want := d.TimeSlotCount(), 2; got != want {
		t.Fatalf("TimeSlotCount() = %d, want %d", got, want)
	}

	as := d.ObjectsByEventType("A")
	if len(as) != 3 {
		t.Fatalf("len(ObjectsByEventType(A)) = %d, want 3", len(as))
	}
	for i, a := range as {
		if int(a.ID) != i {
			t.Fatalf("ids not assigned consecutively in line order: %v", as)
		}
	}

	slot0 := d.ObjectsByTimeSlot(instance.TimeSlot(0))
	if len(slot0) != 3 {
		t.Fatalf("len(ObjectsByTimeSlot(0)) = %d, want 3", len(slot0))
	}
}

func TestParseSkipsMalformedLines(t *testing.T) {
	var warnings bytes.Buffer
	logger := log.New(&warnings, "", 0)

	_, err := Parse(strings.NewReader(sample), logger)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !strings.Contains(warnings.String(), "skipping malformed line") {
		t.Fatalf("expected a warning about the malformed line, got: %q", warnings.String())
	}
}

func TestOpenGzip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dataset.txt.gz")

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	gz := gzip.NewWriter(f)
	if _, err := gz.Write([]byte(sample)); err != nil {
		t.Fatalf("gzip Write: %v", err)
	}
	if err := gz.Close(); err != nil {
		t.Fatalf("gzip Close: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	d, err := Open(path, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if got, want := d.ObjectCount(), 5; got != want {
		t.Fatalf("ObjectCount() = %d, want %d", got, want)
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
