package cmp_test

import (
	"strings"
	"testing"

	"github.com/kinoplex/kinoplex/pkg/utils/cmp"
)

func TestSliceEq(t *testing.T) {
	for name, testcase := range map[string]struct {
		a, b     []int
		expected bool
	}{
		"equal slices":     {[]int{1, 2, 3}, []int{1, 2, 3}, true},
		"different order":  {[]int{1, 2, 3}, []int{3, 2, 1}, false},
		"different length": {[]int{1, 2}, []int{1, 2, 3}, false},
		"both empty":       {[]int{}, []int{}, true},
		"nil and empty":    {nil, []int{}, true},
	} {
		t.Run(name, func(t *testing.T) {
			if actual := cmp.SliceEq(testcase.a, testcase.b); actual != testcase.expected {
				t.Errorf("SliceEq(%v, %v) = %v", testcase.a, testcase.b, actual)
			}
		})
	}
}

func TestSliceEqWith(t *testing.T) {
	caseless := func(a, b string) bool { return strings.EqualFold(a, b) }

	if !cmp.SliceEqWith([]string{"AKT1", "tp53"}, []string{"akt1", "TP53"}, caseless) {
		t.Error("equal slices reported unequal")
	}
	if cmp.SliceEqWith([]string{"AKT1"}, []string{"TP53"}, caseless) {
		t.Error("unequal slices reported equal")
	}
}

func TestMapEq(t *testing.T) {
	for name, testcase := range map[string]struct {
		a, b     map[string]float64
		expected bool
	}{
		"equal maps":      {map[string]float64{"AKT1": 1, "CDK2": 2}, map[string]float64{"CDK2": 2, "AKT1": 1}, true},
		"different value": {map[string]float64{"AKT1": 1}, map[string]float64{"AKT1": 2}, false},
		"missing key":     {map[string]float64{"AKT1": 1}, map[string]float64{"CDK2": 1}, false},
		"both empty":      {map[string]float64{}, map[string]float64{}, true},
	} {
		t.Run(name, func(t *testing.T) {
			if actual := cmp.MapEq(testcase.a, testcase.b); actual != testcase.expected {
				t.Errorf("MapEq(%v, %v) = %v", testcase.a, testcase.b, actual)
			}
		})
	}
}
