package option

import (
	"errors"
	"strconv"
	"testing"
)

func TestSomeUnwrap(t *testing.T) {
	for _, v := range []int{0, 1, -5, 42} {
		if got := Some(v).Unwrap(); got != v {
			t.Errorf("Some(%d).Unwrap() = %d", v, got)
		}
	}
}

func TestNoneUnwrapPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		ue, ok := r.(*UnwrapError)
		if !ok {
			t.Fatalf("expected *UnwrapError, got %T", r)
		}
		if ue.Msg != "called Unwrap on None" {
			t.Errorf("unexpected message %q", ue.Msg)
		}
	}()
	None[int]().Unwrap()
}

func TestExpect(t *testing.T) {
	t.Run("some returns value", func(t *testing.T) {
		if got := Some("x").Expect("should be present"); got != "x" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("none panics with message verbatim", func(t *testing.T) {
		const msg = "feature column must exist"
		defer func() {
			r := recover()
			ue, ok := r.(*UnwrapError)
			if !ok {
				t.Fatalf("expected *UnwrapError, got %T", r)
			}
			if ue.Msg != msg {
				t.Errorf("expected %q, got %q", msg, ue.Msg)
			}
		}()
		None[string]().Expect(msg)
	})
}

func TestUnwrapErrorIsError(t *testing.T) {
	var err error = &UnwrapError{Msg: "boom"}
	if err.Error() != "option: boom" {
		t.Errorf("got %q", err.Error())
	}
	var ue *UnwrapError
	if !errors.As(err, &ue) {
		t.Error("expected errors.As to match *UnwrapError")
	}
}

func TestIsSomeIsNone(t *testing.T) {
	if !Some(1).IsSome() || Some(1).IsNone() {
		t.Error("Some misreports presence")
	}
	if None[int]().IsSome() || !None[int]().IsNone() {
		t.Error("None misreports absence")
	}
}

func TestIsSomeAnd(t *testing.T) {
	even := func(n int) bool { return n%2 == 0 }

	if !Some(4).IsSomeAnd(even) {
		t.Error("Some(4) should satisfy even")
	}
	if Some(3).IsSomeAnd(even) {
		t.Error("Some(3) should not satisfy even")
	}
	if None[int]().IsSomeAnd(func(int) bool {
		t.Error("predicate invoked on None")
		return true
	}) {
		t.Error("None should never satisfy a predicate")
	}
}

func TestGet(t *testing.T) {
	if v, ok := Some(7).Get(); !ok || v != 7 {
		t.Errorf("got (%d, %v)", v, ok)
	}
	if v, ok := None[int]().Get(); ok || v != 0 {
		t.Errorf("got (%d, %v)", v, ok)
	}
}

func TestUnwrapOr(t *testing.T) {
	if got := Some(2).UnwrapOr(9); got != 2 {
		t.Errorf("got %d", got)
	}
	if got := None[int]().UnwrapOr(9); got != 9 {
		t.Errorf("got %d", got)
	}
}

func TestUnwrapOrElse(t *testing.T) {
	t.Run("some does not invoke thunk", func(t *testing.T) {
		got := Some(4).UnwrapOrElse(func() int {
			t.Error("thunk invoked on Some")
			return 0
		})
		if got != 4 {
			t.Errorf("got %d", got)
		}
	})

	t.Run("none invokes thunk exactly once", func(t *testing.T) {
		calls := 0
		got := None[int]().UnwrapOrElse(func() int {
			calls++
			return 9
		})
		if got != 9 || calls != 1 {
			t.Errorf("got %d with %d calls", got, calls)
		}
	})
}

func TestInspect(t *testing.T) {
	var seen []int
	o := Some(5).Inspect(func(v int) { seen = append(seen, v) })
	if o != Some(5) {
		t.Error("Inspect must return the Option unchanged")
	}
	if len(seen) != 1 || seen[0] != 5 {
		t.Errorf("seen = %v", seen)
	}

	None[int]().Inspect(func(int) { t.Error("fn invoked on None") })
}

func TestMapIdentity(t *testing.T) {
	id := func(n int) int { return n }
	for _, v := range []int{0, 1, 42} {
		if Some(v).Map(id) != Some(v) {
			t.Errorf("Some(%d).Map(id) != Some(%d)", v, v)
		}
	}
}

func TestMapComposition(t *testing.T) {
	f := func(n int) int { return n + 1 }
	g := func(n int) int { return n * 3 }

	o := Some(5)
	chained := o.Map(f).Map(g)
	composed := o.Map(func(n int) int { return g(f(n)) })
	if chained != composed {
		t.Errorf("chained %v != composed %v", chained, composed)
	}
	if chained != Some(18) {
		t.Errorf("got %v", chained)
	}
}

func TestMapOnNone(t *testing.T) {
	got := None[int]().Map(func(int) int {
		t.Error("fn invoked on None")
		return 0
	})
	if got.IsSome() {
		t.Error("expected None")
	}
}

func TestMapCrossType(t *testing.T) {
	if got := Map(Some(42), strconv.Itoa); got != Some("42") {
		t.Errorf("got %v", got)
	}
	got := Map(None[int](), func(int) string {
		t.Error("fn invoked on None")
		return ""
	})
	if got != None[string]() {
		t.Errorf("got %v", got)
	}
}

func TestMapOr(t *testing.T) {
	if got := MapOr(Some(2), "d", strconv.Itoa); got != "2" {
		t.Errorf("got %q", got)
	}
	if got := MapOr(None[int](), "d", strconv.Itoa); got != "d" {
		t.Errorf("got %q", got)
	}
}

func TestMapOrElse(t *testing.T) {
	t.Run("some invokes only fn", func(t *testing.T) {
		got := MapOrElse(Some(2), func() string {
			t.Error("default thunk invoked on Some")
			return ""
		}, strconv.Itoa)
		if got != "2" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("none invokes only default thunk", func(t *testing.T) {
		got := MapOrElse(None[int](), func() string { return "d" }, func(int) string {
			t.Error("fn invoked on None")
			return ""
		})
		if got != "d" {
			t.Errorf("got %q", got)
		}
	})
}

func TestFilter(t *testing.T) {
	even := func(n int) bool { return n%2 == 0 }

	tests := []struct {
		name string
		in   Option[int]
		want Option[int]
	}{
		{"some passing", Some(4), Some(4)},
		{"some failing", Some(3), None[int]()},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.Filter(even); got != tc.want {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}

	t.Run("none never invokes predicate", func(t *testing.T) {
		got := None[int]().Filter(func(int) bool {
			t.Error("predicate invoked on None")
			return true
		})
		if got.IsSome() {
			t.Error("expected None")
		}
	})
}

func TestAndThen(t *testing.T) {
	half := func(n int) Option[int] {
		if n%2 == 0 {
			return Some(n / 2)
		}
		return None[int]()
	}

	if got := Some(8).AndThen(half); got != Some(4) {
		t.Errorf("got %v", got)
	}
	if got := Some(3).AndThen(half); got.IsSome() {
		t.Errorf("got %v", got)
	}
	None[int]().AndThen(func(int) Option[int] {
		t.Error("fn invoked on None")
		return None[int]()
	})

	parse := func(s string) Option[int] {
		n, err := strconv.Atoi(s)
		if err != nil {
			return None[int]()
		}
		return Some(n)
	}
	if got := AndThen(Some("12"), parse); got != Some(12) {
		t.Errorf("got %v", got)
	}
	if got := AndThen(Some("x"), parse); got.IsSome() {
		t.Errorf("got %v", got)
	}
}

func TestOrElse(t *testing.T) {
	got := Some(1).OrElse(func() Option[int] {
		t.Error("fn invoked on Some")
		return None[int]()
	})
	if got != Some(1) {
		t.Errorf("got %v", got)
	}

	if got := None[int]().OrElse(func() Option[int] { return Some(9) }); got != Some(9) {
		t.Errorf("got %v", got)
	}
}

func TestCallerFuncPanicsPropagate(t *testing.T) {
	defer func() {
		if r := recover(); r != "user failure" {
			t.Errorf("expected user panic to propagate unchanged, got %v", r)
		}
	}()
	Some(1).Map(func(int) int { panic("user failure") })
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Option[int]
		want bool
	}{
		{"some equal", Some(3), Some(3), true},
		{"some unequal", Some(3), Some(4), false},
		{"some vs none", Some(3), None[int](), false},
		{"none vs none", None[int](), None[int](), true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Equal(tc.a, tc.b); got != tc.want {
				t.Errorf("Equal(%v, %v) = %v", tc.a, tc.b, got)
			}
		})
	}
}

func TestOptionAsMapKey(t *testing.T) {
	m := map[Option[string]]int{
		Some("a"):      1,
		None[string](): 2,
	}
	if m[Some("a")] != 1 {
		t.Error("Some key lookup failed")
	}
	if m[None[string]()] != 2 {
		t.Error("None key lookup failed")
	}
	// The zero value is None, so independently constructed Nones collide.
	var zero Option[string]
	if m[zero] != 2 {
		t.Error("zero value should equal None")
	}
}

func TestString(t *testing.T) {
	if got := Some(3).String(); got != "Some(3)" {
		t.Errorf("got %q", got)
	}
	if got := None[int]().String(); got != "None" {
		t.Errorf("got %q", got)
	}
}
