package rules

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"core/internal/model"
)

// Store is an immutable in-memory mapping from class label to disposal
// guidance. It is loaded once at startup and safe for unlimited
// concurrent readers.
type Store struct {
	rules map[string]model.DisposalRule
}

// Load reads disposal rules from a JSON file. A missing or malformed
// file is a fatal configuration error: serving wrong disposal steps is
// worse than refusing to start.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read disposal rules from %s: %w", path, err)
	}

	var rules map[string]model.DisposalRule
	if err := json.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("failed to parse disposal rules from %s: %w", path, err)
	}

	if len(rules) == 0 {
		return nil, fmt.Errorf("disposal rules file %s contains no rules", path)
	}

	// disposal_steps may be empty but is never absent
	for label, rule := range rules {
		if rule.DisposalSteps == nil {
			rule.DisposalSteps = []string{}
			rules[label] = rule
		}
	}

	return &Store{rules: rules}, nil
}

// NewStore creates a store from an in-memory rule map (used by tests)
func NewStore(rules map[string]model.DisposalRule) *Store {
	copied := make(map[string]model.DisposalRule, len(rules))
	for label, rule := range rules {
		if rule.DisposalSteps == nil {
			rule.DisposalSteps = []string{}
		}
		copied[label] = rule
	}
	return &Store{rules: copied}
}

// Get returns the rule for a class label
func (s *Store) Get(label string) (model.DisposalRule, bool) {
	rule, ok := s.rules[label]
	return rule, ok
}

// Has reports whether a rule exists for a class label
func (s *Store) Has(label string) bool {
	_, ok := s.rules[label]
	return ok
}

// Len returns the number of loaded rules
func (s *Store) Len() int {
	return len(s.rules)
}

// Labels returns all rule class labels in lexicographic order
func (s *Store) Labels() []string {
	labels := make([]string, 0, len(s.rules))
	for label := range s.rules {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// Summaries returns short listing entries for all rules, ordered by label
func (s *Store) Summaries() []model.RuleSummary {
	summaries := make([]model.RuleSummary, 0, len(s.rules))
	for _, label := range s.Labels() {
		rule := s.rules[label]
		summaries = append(summaries, model.RuleSummary{
			Class:       label,
			DisplayName: rule.DisplayName,
			Category:    rule.Category,
		})
	}
	return summaries
}
