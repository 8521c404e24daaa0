package viewer

import (
	"reflect"
	"testing"
)

func TestOpenLetterStartsAtFirstPage(t *testing.T) {
	state := OpenLetter([]string{"p1", "p2", "p3"}, "2024.03.05")

	if state.Mode != ModeLetter {
		t.Fatalf("expected letter mode, got %s", state.Mode)
	}
	if state.Index != 0 {
		t.Errorf("expected index 0, got %d", state.Index)
	}
	if state.Date != "2024.03.05" {
		t.Errorf("expected date carried over, got %q", state.Date)
	}
}

func TestNextWrapsPastLastPage(t *testing.T) {
	state := OpenLetter([]string{"p1", "p2"}, "")

	indices := []int{}
	for i := 0; i < 4; i++ {
		state = state.Next()
		indices = append(indices, state.Index)
	}

	want := []int{1, 0, 1, 0}
	for i := range want {
		if indices[i] != want[i] {
			t.Fatalf("expected index sequence %v, got %v", want, indices)
		}
	}
}

func TestPrevWrapsBeforeFirstPage(t *testing.T) {
	state := OpenLetter([]string{"p1", "p2", "p3"}, "")

	state = state.Prev()
	if state.Index != 2 {
		t.Errorf("expected wrap to last page, got %d", state.Index)
	}
	state = state.Prev()
	if state.Index != 1 {
		t.Errorf("expected index 1, got %d", state.Index)
	}
}

func TestNavigationIgnoredOutsideLetterMode(t *testing.T) {
	for _, state := range []State{Closed(), OpenPhoto("url", "2024.03.05")} {
		if got := state.Next(); !reflect.DeepEqual(got, state) {
			t.Errorf("Next changed state in %s mode: %+v", state.Mode, got)
		}
		if got := state.Prev(); !reflect.DeepEqual(got, state) {
			t.Errorf("Prev changed state in %s mode: %+v", state.Mode, got)
		}
	}
}

func TestNavigationIgnoredOnEmptyLetter(t *testing.T) {
	state := OpenLetter(nil, "")
	if got := state.Next(); got.Index != 0 {
		t.Errorf("expected index to stay 0, got %d", got.Index)
	}
}

func TestCloseFromAnywhere(t *testing.T) {
	states := []State{
		OpenPhoto("url", "2024.03.05"),
		OpenLetter([]string{"p1"}, "").Next(),
		Closed(),
	}
	for _, state := range states {
		closed := state.Close()
		if closed.Mode != ModeClosed {
			t.Errorf("expected closed mode, got %s", closed.Mode)
		}
		if closed.URL != "" || closed.Index != 0 || closed.Pages != nil {
			t.Errorf("expected a clean closed state, got %+v", closed)
		}
	}
}
