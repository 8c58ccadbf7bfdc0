package errors

import (
	"path/filepath"
	"testing"

	"github.com/gostdlib/base/context"
)

func TestE(t *testing.T) {
	tests := []struct {
		name     string
		err      Error
		wantIs   error
		wantCat  Category
		wantType Type
		wantMsg  string
	}{
		{
			name:     "Bounds",
			err:      Bounds(5, 2),
			wantIs:   ErrOutOfBounds,
			wantCat:  CatUser,
			wantType: TypeBounds,
			wantMsg:  "index 5, length 2: index out of bounds",
		},
		{
			name:     "Full",
			err:      Full(3),
			wantIs:   ErrFull,
			wantCat:  CatUser,
			wantType: TypeCapacity,
			wantMsg:  "capacity 3: container is at capacity",
		},
		{
			name:     "Modified",
			err:      Modified(),
			wantIs:   ErrModified,
			wantCat:  CatUser,
			wantType: TypeModified,
			wantMsg:  "container modified during iteration",
		},
		{
			name:     "Bug",
			err:      Bug("count %d > capacity %d", 4, 2),
			wantCat:  CatInternal,
			wantType: TypeBug,
			wantMsg:  "count 4 > capacity 2",
		},
	}

	for _, test := range tests {
		var err error = test.err
		if test.wantIs != nil && !Is(err, test.wantIs) {
			t.Errorf("TestE(%s): errors.Is(%v) = false, want true", test.name, test.wantIs)
		}
		var e Error
		if !As(err, &e) {
			t.Errorf("TestE(%s): errors.As() = false, want true", test.name)
			continue
		}
		if e.Category != test.wantCat {
			t.Errorf("TestE(%s): Category = %v, want %s", test.name, e.Category, test.wantCat)
		}
		if e.Type != test.wantType {
			t.Errorf("TestE(%s): Type = %v, want %s", test.name, e.Type, test.wantType)
		}
		if err.Error() != test.wantMsg {
			t.Errorf("TestE(%s): Error() = %q, want %q", test.name, err.Error(), test.wantMsg)
		}
		// The helpers are wrappers, the recorded location is their caller.
		if filepath.Base(e.File) != "errors_test.go" {
			t.Errorf("TestE(%s): File = %q, want errors_test.go", test.name, e.File)
		}
	}
}

func TestEPassthrough(t *testing.T) {
	ctx := context.Background()

	e := E(ctx, CatInternal, TypeUnknown, New("boom"))
	if filepath.Base(e.File) != "errors_test.go" {
		t.Errorf("TestEPassthrough: File = %q, want errors_test.go", e.File)
	}

	again := E(ctx, CatUser, TypeParameter, e)
	if again.Category != CatInternal || again.Line != e.Line {
		t.Errorf("TestEPassthrough: E() of an Error did not return it unchanged")
	}

	if E(ctx, CatUser, TypeParameter, nil).Error() == "" {
		t.Errorf("TestEPassthrough: E(nil).Error() is empty")
	}
}

func TestJoin(t *testing.T) {
	if Join(nil, nil) != nil {
		t.Errorf("TestJoin: Join(nil, nil) != nil")
	}
	err := Join(ErrFull, ErrModified)
	if !Is(err, ErrFull) || !Is(err, ErrModified) {
		t.Errorf("TestJoin: Join() lost a wrapped error")
	}
	if Unwrap(Bounds(1, 0).Msg) == nil {
		t.Errorf("TestJoin: Unwrap() of a wrapped bounds error returned nil")
	}
}
