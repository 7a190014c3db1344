package option

import "testing"

func TestFromPtr(t *testing.T) {
	v := 7
	if got := FromPtr(&v); got != Some(7) {
		t.Errorf("got %v", got)
	}
	if got := FromPtr[int](nil); got.IsSome() {
		t.Errorf("got %v", got)
	}
}

func TestFromPtrUnwrapOrRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		ptr  *int
		want int
	}{
		{"present", func() *int { v := 3; return &v }(), 3},
		{"nil", nil, 42},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := FromPtr(tc.ptr).UnwrapOr(42); got != tc.want {
				t.Errorf("got %d, want %d", got, tc.want)
			}
		})
	}
}

func TestToPtr(t *testing.T) {
	o := Some(5)
	p := o.ToPtr()
	if p == nil || *p != 5 {
		t.Fatalf("got %v", p)
	}
	// The pointer targets a copy; writing through it must not affect the Option.
	*p = 9
	if o.Unwrap() != 5 {
		t.Error("Option mutated through ToPtr result")
	}

	if None[int]().ToPtr() != nil {
		t.Error("expected nil for None")
	}
}

func TestToSlice(t *testing.T) {
	got := Some("v").ToSlice()
	if len(got) != 1 || got[0] != "v" {
		t.Errorf("got %v", got)
	}
	if got := None[string]().ToSlice(); len(got) != 0 {
		t.Errorf("got %v", got)
	}
}

func TestAll(t *testing.T) {
	collect := func(o Option[int]) []int {
		var out []int
		for v := range o.All() {
			out = append(out, v)
		}
		return out
	}

	o := Some(5)
	if got := collect(o); len(got) != 1 || got[0] != 5 {
		t.Errorf("got %v", got)
	}
	// Restartable: a second pass yields the same sequence.
	if got := collect(o); len(got) != 1 || got[0] != 5 {
		t.Errorf("second pass got %v", got)
	}

	if got := collect(None[int]()); len(got) != 0 {
		t.Errorf("got %v", got)
	}
}

func TestAllEarlyStop(t *testing.T) {
	for range Some(1).All() {
		break
	}
}
