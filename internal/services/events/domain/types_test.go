package domain

import (
	"reflect"
	"testing"
)

func TestAdd_CreatesLevels(t *testing.T) {
	r := Record{}
	r.Add("3-15", "2020", "laurea")
	r.Add("3-15", "2020", "trasloco")
	r.Add("3-15", "2021", "matrimonio")

	want := map[string][]string{
		"2020": {"laurea", "trasloco"},
		"2021": {"matrimonio"},
	}
	if !reflect.DeepEqual(r.Day("3-15"), want) {
		t.Fatalf("day = %v", r.Day("3-15"))
	}
}

func TestRemove_EmptiesLevelsBottomUp(t *testing.T) {
	r := Record{}
	r.Add("3-15", "2020", "laurea")
	r.Add("3-15", "2020", "trasloco")
	r.Add("3-15", "2021", "matrimonio")
	r.Add("7-1", "1999", "nascita")

	removed, ok := r.Remove("3-15", "2020", 0)
	if !ok || removed != "laurea" {
		t.Fatalf("Remove = %q, %v", removed, ok)
	}
	if got := r.Day("3-15")["2020"]; !reflect.DeepEqual(got, []string{"trasloco"}) {
		t.Fatalf("2020 = %v", got)
	}

	// last event of a year removes the year
	if _, ok := r.Remove("3-15", "2020", 0); !ok {
		t.Fatal("second remove failed")
	}
	if _, found := r.Day("3-15")["2020"]; found {
		t.Fatal("emptied year still present")
	}

	// last year of a day removes the day
	if _, ok := r.Remove("3-15", "2021", 0); !ok {
		t.Fatal("third remove failed")
	}
	if r.Day("3-15") != nil {
		t.Fatalf("emptied day still present: %v", r.Day("3-15"))
	}
	// the other day is untouched
	if r.Day("7-1") == nil {
		t.Fatal("unrelated day lost")
	}
}

func TestRemove_BadTargets(t *testing.T) {
	r := Record{}
	r.Add("3-15", "2020", "laurea")

	cases := []struct {
		day, year string
		index     int
	}{
		{"4-1", "2020", 0},
		{"3-15", "1999", 0},
		{"3-15", "2020", 1},
		{"3-15", "2020", -1},
	}
	for _, tc := range cases {
		if _, ok := r.Remove(tc.day, tc.year, tc.index); ok {
			t.Fatalf("Remove(%q, %q, %d) succeeded", tc.day, tc.year, tc.index)
		}
	}
	// record unchanged after failed removes
	if got := r.Day("3-15")["2020"]; !reflect.DeepEqual(got, []string{"laurea"}) {
		t.Fatalf("record mutated: %v", got)
	}
}

func TestReplace(t *testing.T) {
	r := Record{}
	r.Add("3-15", "2020", "laurea")

	old, ok := r.Replace("3-15", "2020", 0, "laurea magistrale")
	if !ok || old != "laurea" {
		t.Fatalf("Replace = %q, %v", old, ok)
	}
	if got := r.Day("3-15")["2020"][0]; got != "laurea magistrale" {
		t.Fatalf("event = %q", got)
	}

	if _, ok := r.Replace("3-15", "2020", 3, "x"); ok {
		t.Fatal("Replace out of range succeeded")
	}
}

func TestYears_SortedChronologically(t *testing.T) {
	r := Record{}
	r.Add("3-15", "2021", "a")
	r.Add("3-15", "0987", "b")
	r.Add("3-15", "2020", "c")

	want := []string{"0987", "2020", "2021"}
	if got := r.Years("3-15"); !reflect.DeepEqual(got, want) {
		t.Fatalf("Years = %v", got)
	}
	if r.Years("9-9") != nil {
		t.Fatal("Years of absent day should be nil")
	}
}
