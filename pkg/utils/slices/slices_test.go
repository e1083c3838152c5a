package slices_test

import (
	"sort"
	"strconv"
	"testing"

	"github.com/kinoplex/kinoplex/pkg/utils/cmp"
	"github.com/kinoplex/kinoplex/pkg/utils/slices"
)

func TestMap(t *testing.T) {
	t.Run("it converts each element in order", func(t *testing.T) {
		actual := slices.Map([]int{3, 1, 4}, strconv.Itoa)
		if !cmp.SliceEq(actual, []string{"3", "1", "4"}) {
			t.Errorf("unexpected result: %v", actual)
		}
	})

	t.Run("an empty slice maps to an empty slice", func(t *testing.T) {
		actual := slices.Map([]int{}, strconv.Itoa)
		if len(actual) != 0 {
			t.Errorf("unexpected result: %v", actual)
		}
	})
}

func TestKeysOf(t *testing.T) {
	actual := slices.KeysOf(map[string]int{"b": 2, "a": 1, "c": 3})
	sort.Strings(actual)
	if !cmp.SliceEq(actual, []string{"a", "b", "c"}) {
		t.Errorf("unexpected keys: %v", actual)
	}
}

func TestFirst(t *testing.T) {
	even := func(v int) bool { return v%2 == 0 }

	t.Run("it finds the first match", func(t *testing.T) {
		found, ok := slices.First([]int{3, 1, 4, 6}, even)
		if !ok || found != 4 {
			t.Errorf("unexpected result: %v, %v", found, ok)
		}
	})

	t.Run("no match is reported", func(t *testing.T) {
		_, ok := slices.First([]int{3, 1, 5}, even)
		if ok {
			t.Error("phantom match")
		}
	})
}

func TestToMap(t *testing.T) {
	type record struct {
		ID    string
		Value int
	}

	t.Run("it keys elements with getkey", func(t *testing.T) {
		actual := slices.ToMap(
			[]record{{ID: "a", Value: 1}, {ID: "b", Value: 2}},
			func(r record) string { return r.ID },
		)
		if !cmp.MapEq(actual, map[string]record{
			"a": {ID: "a", Value: 1},
			"b": {ID: "b", Value: 2},
		}) {
			t.Errorf("unexpected result: %v", actual)
		}
	})

	t.Run("on key collision, the later element wins", func(t *testing.T) {
		actual := slices.ToMap(
			[]record{{ID: "a", Value: 1}, {ID: "a", Value: 2}},
			func(r record) string { return r.ID },
		)
		if actual["a"].Value != 2 {
			t.Errorf("unexpected result: %v", actual)
		}
	})
}
