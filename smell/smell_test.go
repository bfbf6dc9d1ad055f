package smell

import (
	"sort"
	"strings"
	"testing"
)

func TestCatalogIsComplete(t *testing.T) {
	ids := IDs()
	if len(ids) != 9 {
		t.Errorf("Expected 9 smell categories, got %d", len(ids))
	}
	if !sort.StringsAreSorted(ids) {
		t.Error("Expected IDs to be sorted")
	}
}

func TestLookup(t *testing.T) {
	s, err := Lookup(LongMethod)
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if s.Name != "Long Method" {
		t.Errorf("Expected Long Method, got %s", s.Name)
	}
}

func TestLookupUnknownSmell(t *testing.T) {
	_, err := Lookup("spaghetti")
	if err == nil {
		t.Fatal("Expected an error for an unknown smell")
	}
	if !strings.Contains(err.Error(), LongMethod) {
		t.Errorf("Expected the error to list valid values, got: %v", err)
	}
}

func TestRenderSubstitutesCode(t *testing.T) {
	s, err := Lookup(DataClass)
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}

	code := "public class Point { int x; int y; }"
	prompt := s.Render(code)

	if !strings.Contains(prompt, "```java\n"+code+"\n```") {
		t.Error("Expected the code sample inside a java fence")
	}
	if !strings.Contains(prompt, `"Data Class" code smell`) {
		t.Error("Expected the smell name in the prompt")
	}
	if !strings.Contains(prompt, s.Definition) {
		t.Error("Expected the smell definition in the prompt")
	}
	if !strings.Contains(prompt, "1. Many Fields:") {
		t.Error("Expected numbered questions in the prompt")
	}
	if !strings.Contains(prompt, `"YES, I found Data Class"`) {
		t.Error("Expected the YES/NO instruction in the prompt")
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	s, err := Lookup(ShotgunSurgery)
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}

	code := "class A {}"
	if s.Render(code) != s.Render(code) {
		t.Error("Expected identical prompts for identical input")
	}
}

func TestRenderOverrides(t *testing.T) {
	// Shotgun Surgery scopes the analysis to patterns that may repeat in
	// other files; Refused Bequest closes with its own instruction.
	ss, _ := Lookup(ShotgunSurgery)
	if !strings.Contains(ss.Render("x"), "if they are present in other files as well") {
		t.Error("Expected the Shotgun Surgery scope sentence")
	}

	rb, _ := Lookup(RefusedBequest)
	if !strings.Contains(rb.Render("x"), "state the main evidence in a short phrase or sentence") {
		t.Error("Expected the Refused Bequest closing instruction")
	}
}
