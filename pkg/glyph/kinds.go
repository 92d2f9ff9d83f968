// Package glyph maps journey item kinds to their terminal glyphs.
package glyph

import (
	"fmt"
	"strings"
)

// Kind identifies the behavior and rendering of a journey item. The string
// values are the wire format used in persisted map documents.
type Kind string

const (
	// Step is a customer-facing journey step.
	Step Kind = "step"
	// System is an automated/back-end step. It renders distinctly but
	// behaves identically to Step.
	System Kind = "system"
	// Section is a divider that groups the steps below it.
	Section Kind = "section"
)

// Glyph describes how a kind is presented in the CLI and TUI.
type Glyph struct {
	Kind    Kind
	Symbol  string
	Noun    string
	Meaning string
	Aliases []string
}

// DefaultGlyphs returns the presentation table for all kinds.
func DefaultGlyphs() []Glyph {
	return []Glyph{
		{
			Kind:    Step,
			Symbol:  "●",
			Noun:    "step",
			Meaning: "journey step",
			Aliases: []string{"step", "steps", "s"},
		},
		{
			Kind:    System,
			Symbol:  "⚙",
			Noun:    "system",
			Meaning: "automated system step",
			Aliases: []string{"system", "sys", "action"},
		},
		{
			Kind:    Section,
			Symbol:  "§",
			Noun:    "section",
			Meaning: "section divider",
			Aliases: []string{"section", "sections", "divider"},
		},
	}
}

// AllKinds returns the supported kinds in display order.
func AllKinds() []Kind {
	return []Kind{Step, System, Section}
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	switch k {
	case Step, System, Section:
		return true
	}
	return false
}

// Glyph returns the presentation entry for the kind.
func (k Kind) Glyph() Glyph {
	for _, g := range DefaultGlyphs() {
		if g.Kind == k {
			return g
		}
	}
	return Glyph{Kind: k, Symbol: "?", Noun: string(k)}
}

func (k Kind) String() string {
	return k.Glyph().Symbol
}

// KindForAlias resolves user input ("step", "sys", "divider", ...) to a Kind.
func KindForAlias(alias string) (Kind, error) {
	needle := strings.ToLower(strings.TrimSpace(alias))
	if needle == "" {
		return "", fmt.Errorf("glyph: empty kind")
	}
	for _, g := range DefaultGlyphs() {
		for _, a := range g.Aliases {
			if a == needle {
				return g.Kind, nil
			}
		}
	}
	return "", fmt.Errorf("glyph: unknown kind %q", alias)
}

const (
	escape    = "\x1b"
	resetCode = 0
	boldCode  = 1
	underCode = 4
)

func Bold(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, boldCode, in, escape, resetCode)
}

func Underline(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, underCode, in, escape, resetCode)
}
