package intent

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed rules.yaml
var defaultRules []byte

var (
	ErrNoRules           = errors.New("rule table is empty")
	ErrFallbackMissing   = errors.New("last rule must be a fallback without keywords")
	ErrMisplacedFallback = errors.New("only the last rule may have no keywords")
	ErrDuplicateName     = errors.New("duplicate rule name")
	ErrBlankKeyword      = errors.New("keyword is blank after normalization")
)

// Navigation tells the caller where to route after showing the reply.
type Navigation struct {
	Target       string `yaml:"target" validate:"required"`
	RequiresAuth bool   `yaml:"requires_auth"`
}

type Rule struct {
	Name       string      `yaml:"name" validate:"required"`
	Keywords   []string    `yaml:"keywords" validate:"dive,required"`
	Reply      string      `yaml:"reply" validate:"required"`
	Navigation *Navigation `yaml:"navigation" validate:"omitempty"`
}

type file struct {
	Rules []Rule `yaml:"rules" validate:"required,dive"`
}

// Table is an ordered, read-only rule set. Safe for concurrent use.
type Table struct {
	rules    []Rule
	fallback Rule
}

// Default returns the built-in rule table.
func Default() Table {
	t, err := Parse(defaultRules)
	if err != nil {
		panic(fmt.Sprintf("intent: built-in rules are invalid: %v", err))
	}
	return t
}

// Load reads a rule table from path, or returns Default when path is empty.
func Load(path string) (Table, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("read rules: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (Table, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Table{}, fmt.Errorf("decode rules: %w", err)
	}
	if len(f.Rules) == 0 {
		return Table{}, ErrNoRules
	}
	if err := validator.New().Struct(f); err != nil {
		return Table{}, fmt.Errorf("validate rules: %w", err)
	}

	seen := make(map[string]struct{}, len(f.Rules))
	last := len(f.Rules) - 1
	for i := range f.Rules {
		r := &f.Rules[i]
		if _, dup := seen[r.Name]; dup {
			return Table{}, fmt.Errorf("%w: %s", ErrDuplicateName, r.Name)
		}
		seen[r.Name] = struct{}{}

		switch {
		case i == last && len(r.Keywords) > 0:
			return Table{}, ErrFallbackMissing
		case i == last && r.Navigation != nil:
			return Table{}, fmt.Errorf("%w: fallback cannot navigate", ErrFallbackMissing)
		case i != last && len(r.Keywords) == 0:
			return Table{}, fmt.Errorf("%w: %s", ErrMisplacedFallback, r.Name)
		}

		for k, kw := range r.Keywords {
			norm := Normalize(kw)
			if norm == "" {
				return Table{}, fmt.Errorf("%w: %s %q", ErrBlankKeyword, r.Name, kw)
			}
			r.Keywords[k] = norm
		}
	}

	return Table{rules: f.Rules[:last], fallback: f.Rules[last]}, nil
}

// IsZero reports whether t was never loaded.
func (t Table) IsZero() bool {
	return len(t.rules) == 0 && t.fallback.Name == ""
}

// Rules returns a copy of the keyword rules followed by the fallback.
func (t Table) Rules() []Rule {
	out := make([]Rule, 0, len(t.rules)+1)
	out = append(out, t.rules...)
	return append(out, t.fallback)
}
