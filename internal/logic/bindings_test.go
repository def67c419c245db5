package logic

import "testing"

func TestBindReturnsCopy(t *testing.T) {
	s := NewSession()
	a := s.NewTerm("A")
	b := s.NewTerm("B")

	empty := NewBindings()
	one := empty.Bind("x", a)
	two := one.Bind("y", b)

	if empty.Len() != 0 {
		t.Errorf("original bindings grew: Len() = %d, want 0", empty.Len())
	}
	if one.Len() != 1 {
		t.Errorf("first extension Len() = %d, want 1", one.Len())
	}
	if _, ok := one.Lookup("y"); ok {
		t.Errorf("first extension sees binding added to its own extension")
	}
	if got, _ := two.Lookup("x"); got != a {
		t.Errorf("second extension lost earlier binding")
	}
}

func TestBindReplacesInCopyOnly(t *testing.T) {
	s := NewSession()
	a := s.NewTerm("A")
	b := s.NewTerm("B")

	one := NewBindings().Bind("x", a)
	rebound := one.Bind("x", b)

	if got, _ := one.Lookup("x"); got != a {
		t.Errorf("rebinding mutated the original")
	}
	if got, _ := rebound.Lookup("x"); got != b {
		t.Errorf("rebinding did not take effect in the copy")
	}
}

func TestBindingsString(t *testing.T) {
	s := NewSession()

	tests := []struct {
		name string
		b    Bindings
		want string
	}{
		{"empty", NewBindings(), "{}"},
		{"single", NewBindings().Bind("y", s.NewTerm("MATH22")), "{y=MATH22}"},
		{
			"sorted by name",
			NewBindings().Bind("y", s.NewTerm("B")).Bind("x", s.NewTerm("A")),
			"{x=A, y=B}",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.b.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBindingsNamesSorted(t *testing.T) {
	s := NewSession()
	b := NewBindings().
		Bind("z", s.NewTerm("C")).
		Bind("x", s.NewTerm("A")).
		Bind("y", s.NewTerm("B"))

	want := []string{"x", "y", "z"}
	got := b.Names()
	if len(got) != len(want) {
		t.Fatalf("Names() returned %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}
