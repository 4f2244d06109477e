package intern

import "testing"

func TestInternDeduplicates(t *testing.T) {
	p := New()
	a := p.Intern("hello")
	b := p.Intern("hello")
	if a != b {
		t.Fatal("equal byte strings must intern to the same canonical copy")
	}
	if p.Len() != 1 {
		t.Fatalf("expected 1 distinct entry, got %d", p.Len())
	}
}

func TestInternDistinctContent(t *testing.T) {
	p := New()
	p.Intern("foo")
	p.Intern("bar")
	if p.Len() != 2 {
		t.Fatalf("expected 2 distinct entries, got %d", p.Len())
	}
}
