package elem

import (
	"strings"
	"testing"

	"github.com/kylelemons/godebug/pretty"
)

func TestDefaults(t *testing.T) {
	tr := Build[string](nil)

	if got := tr.New(); got != "" {
		t.Errorf("TestDefaults: New() = %q, want zero value", got)
	}
	if got := tr.Copy("hello"); got != "hello" {
		t.Errorf("TestDefaults: Copy() = %q, want %q", got, "hello")
	}
	v := "keep"
	tr.Destroy(&v)
	if v != "keep" {
		t.Errorf("TestDefaults: default Destroy() modified its argument")
	}

	defer func() {
		r := recover()
		if r == nil {
			t.Errorf("TestDefaults: Equal() without an equality function did not panic")
			return
		}
		if !strings.Contains(r.(string), "without an equality function") {
			t.Errorf("TestDefaults: unexpected panic: %v", r)
		}
	}()
	tr.Equal("a", "b")
}

func TestComparable(t *testing.T) {
	tr := Comparable[int]()
	if !tr.Equal(1, 1) || tr.Equal(1, 2) {
		t.Errorf("TestComparable: Equal() is not ==")
	}

	tr = Comparable(WithEqual(func(a, b int) bool { return a%10 == b%10 }))
	if !tr.Equal(1, 11) {
		t.Errorf("TestComparable: WithEqual() did not override ==")
	}
}

func TestBulkHooks(t *testing.T) {
	var destroyed []int
	n := 0
	tr := Comparable(
		WithNew(func() int { n++; return n * 100 }),
		WithCopy(func(src int) int { return src + 1 }),
		WithDestroy(func(v *int) { destroyed = append(destroyed, *v) }),
	)

	s := make([]int, 3)
	tr.Construct(s)
	if diff := pretty.Compare([]int{100, 200, 300}, s); diff != "" {
		t.Errorf("TestBulkHooks: Construct(): -want/+got:\n%s", diff)
	}

	dst := make([]int, 3)
	tr.CopyAll(dst, s)
	if diff := pretty.Compare([]int{101, 201, 301}, dst); diff != "" {
		t.Errorf("TestBulkHooks: CopyAll(): -want/+got:\n%s", diff)
	}

	tr.DestroyAll(dst[:2])
	if diff := pretty.Compare([]int{101, 201}, destroyed); diff != "" {
		t.Errorf("TestBulkHooks: DestroyAll(): -want/+got:\n%s", diff)
	}
}
