package classify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/scanvault/scanvault/constants"
)

// Keyword is one weighted phrase of a classification rule.
type Keyword struct {
	Phrase string `json:"phrase"`
	Weight int    `json:"weight"`
}

// Rule maps a document type to its ordered weighted keyword list.
type Rule struct {
	Type     string    `json:"type"`
	Keywords []Keyword `json:"keywords"`
}

// RuleTable is the static classification configuration. Declared order
// is significant: ties between equal scores go to the type declared
// first. The table is immutable after construction.
type RuleTable struct {
	rules []Rule
}

// Rules returns the rules in declared order.
func (t *RuleTable) Rules() []Rule {
	return t.rules
}

// Types returns the configured type labels in declared order.
func (t *RuleTable) Types() []string {
	out := make([]string, len(t.rules))
	for i, r := range t.rules {
		out[i] = r.Type
	}
	return out
}

// tableSchema validates the on-disk rule table: at least one type, each
// with a non-empty keyword list, every weight a positive integer.
const tableSchema = `{
  "type": "object",
  "required": ["types"],
  "properties": {
    "types": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["type", "keywords"],
        "properties": {
          "type": {"type": "string", "minLength": 1},
          "keywords": {
            "type": "array",
            "minItems": 1,
            "items": {
              "type": "object",
              "required": ["phrase", "weight"],
              "properties": {
                "phrase": {"type": "string", "minLength": 1},
                "weight": {"type": "integer", "minimum": 1}
              }
            }
          }
        }
      }
    }
  }
}`

type tableFile struct {
	Types []Rule `json:"types"`
}

// NewRuleTable validates rules and builds an immutable table.
func NewRuleTable(rules []Rule) (*RuleTable, error) {
	if len(rules) == 0 {
		return nil, fmt.Errorf("rule table: no types declared")
	}
	seen := make(map[string]struct{}, len(rules))
	for _, r := range rules {
		if strings.TrimSpace(r.Type) == "" {
			return nil, fmt.Errorf("rule table: empty type label")
		}
		if _, dup := seen[r.Type]; dup {
			return nil, fmt.Errorf("rule table: duplicate type %q", r.Type)
		}
		seen[r.Type] = struct{}{}
		if r.Type == constants.TypeUnclassified {
			return nil, fmt.Errorf("rule table: %q is reserved", r.Type)
		}
		if len(r.Keywords) == 0 {
			return nil, fmt.Errorf("rule table: type %q has no keywords", r.Type)
		}
		for _, kw := range r.Keywords {
			if strings.TrimSpace(kw.Phrase) == "" {
				return nil, fmt.Errorf("rule table: type %q has an empty keyword", r.Type)
			}
			if kw.Weight <= 0 {
				return nil, fmt.Errorf("rule table: type %q keyword %q has non-positive weight %d", r.Type, kw.Phrase, kw.Weight)
			}
		}
	}
	cp := make([]Rule, len(rules))
	copy(cp, rules)
	return &RuleTable{rules: cp}, nil
}

// LoadTable reads and validates a JSON rule table.
func LoadTable(r io.Reader) (*RuleTable, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read rule table: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("ruletable.json", bytes.NewReader([]byte(tableSchema))); err != nil {
		return nil, fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("ruletable.json")
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("parse rule table: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return nil, fmt.Errorf("rule table does not match schema: %w", err)
	}

	var tf tableFile
	if err := json.Unmarshal(raw, &tf); err != nil {
		return nil, fmt.Errorf("decode rule table: %w", err)
	}
	return NewRuleTable(tf.Types)
}

// LoadTableFile loads a rule table from path, falling back to the
// built-in default table when path is empty.
func LoadTableFile(path string) (*RuleTable, error) {
	if path == "" {
		return DefaultTable(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open rule table: %w", err)
	}
	defer func() { _ = f.Close() }()
	return LoadTable(f)
}
