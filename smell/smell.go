// Package smell holds the code smell catalog and renders the per-category
// analysis prompts. Templates are fixed at authoring time; the only
// substitution point is the code sample itself.
package smell

import (
	"fmt"
	"sort"
	"strings"
)

// SystemPrompt is shared by every smell category.
const SystemPrompt = "You are a helpful assistant specialized in Java code smell detection."

const defaultScope = "Since you only have access to this file, focus on local patterns and structures that could contribute to this smell."

// Question is one numbered step of a smell template.
type Question struct {
	Title string
	Body  string
}

// Smell describes one code smell category and its prompt template.
type Smell struct {
	// ID is the identifier accepted by the --smell flag, e.g. "long-method".
	ID string
	// Name is the display name used inside the prompt, e.g. "Long Method".
	Name string
	// Definition is the one-paragraph description of the smell.
	Definition string
	// Scope overrides the standard single-file scoping sentence when set.
	Scope string
	// Questions are answered step by step by the model.
	Questions []Question
	// Instruction overrides the standard YES/NO closing instruction when set.
	Instruction string
}

func (s Smell) scope() string {
	if s.Scope != "" {
		return s.Scope
	}
	return defaultScope
}

func (s Smell) instruction() string {
	if s.Instruction != "" {
		return s.Instruction
	}
	return fmt.Sprintf(`Please start your answer with "YES, I found %s" if you detect symptoms that could indicate this smell, or "NO, I did not find %s" if you do not. Do not explain your reasoning in detail, just answer the questions and provide the summary as instructed.`,
		s.Name, s.Name)
}

// Render builds the user prompt for one code sample.
func (s Smell) Render(code string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are analyzing the following Java file for symptoms that may indicate the %q code smell.\n", s.Name)
	b.WriteString(s.Definition)
	b.WriteString("\n")
	b.WriteString(s.scope())
	b.WriteString("\n\nPlease answer the following questions step by step:\n")

	for i, q := range s.Questions {
		fmt.Fprintf(&b, "\n%d. %s:\n%s\n", i+1, q.Title, q.Body)
	}

	b.WriteString("\nInstructions:\n")
	b.WriteString(s.instruction())
	b.WriteString("\n\n```java\n")
	b.WriteString(code)
	b.WriteString("\n```")

	return b.String()
}

// All returns the catalog ordered by ID.
func All() []Smell {
	smells := make([]Smell, 0, len(catalog))
	for _, s := range catalog {
		smells = append(smells, s)
	}
	sort.Slice(smells, func(i, j int) bool {
		return smells[i].ID < smells[j].ID
	})
	return smells
}

// IDs returns the valid smell identifiers ordered alphabetically.
func IDs() []string {
	smells := All()
	ids := make([]string, len(smells))
	for i, s := range smells {
		ids[i] = s.ID
	}
	return ids
}

// Lookup resolves a smell identifier to its catalog entry.
func Lookup(id string) (Smell, error) {
	s, ok := catalog[id]
	if !ok {
		return Smell{}, fmt.Errorf("unknown smell %q, valid values: %s", id, strings.Join(IDs(), ", "))
	}
	return s, nil
}
