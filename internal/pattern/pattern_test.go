package pattern

import (
	"reflect"
	"testing"
)

func TestNewCanonicalOrder(t *testing.T) {
	p := New("C", "A", "B")
	want := []string{"A", "B", "C"}
	if got := p.Types(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Types() = %v, want %v", got, want)
	}
	if p.Size() != 3 {
		t.Fatalf("Size() = %d, want 3", p.Size())
	}
}

func TestEquality(t *testing.T) {
	a := New("A", "B")
	b := New("B", "A")
	if a != b {
		t.Fatalf("expected %v == %v (same event types regardless of construction order)", a, b)
	}
}

func TestLastAndDropLast(t *testing.T) {
	p := New("A", "B", "C")
	if p.Last() != "C" {
		t.Fatalf("Last() = %s, want C", p.Last())
	}
	prefix := p.DropLast()
	if got := prefix.Types(); !reflect.DeepEqual(got, []string{"A", "B"}) {
		t.Fatalf("DropLast().Types() = %v", got)
	}
	single := Single("A")
	if single.DropLast() != "" {
		t.Fatalf("DropLast() of singleton = %q, want empty", single.DropLast())
	}
}

func TestSamePrefix(t *testing.T) {
	p := New("A", "B", "C")
	q := New("A", "B", "D")
	if !SamePrefix(p, q) {
		t.Fatalf("expected %v and %v to share a prefix", p, q)
	}
	r := New("A", "X", "D")
	if SamePrefix(p, r) {
		t.Fatalf("did not expect %v and %v to share a prefix", p, r)
	}
}

func TestIsSubsetOf(t *testing.T) {
	p := New("A", "B")
	q := New("A", "B", "C")
	if !p.IsSubsetOf(q) {
		t.Fatalf("expected %v to be a subset of %v", p, q)
	}
	if q.IsSubsetOf(p) {
		t.Fatalf("did not expect %v to be a subset of %v", q, p)
	}
	if !p.IsSubsetOf(p) {
		t.Fatalf("expected a pattern to be a subset of itself")
	}
}

func TestUnion(t *testing.T) {
	p := New("A", "B")
	q := New("A", "C")
	u := Union(p, q)
	if got := u.Types(); !reflect.DeepEqual(got, []string{"A", "B", "C"}) {
		t.Fatalf("Union().Types() = %v", got)
	}
}

func TestStringRendersEventTypes(t *testing.T) {
	p := New("B", "A")
	if got, want := p.String(), "{A, B}"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
