package migrate

import (
	"fmt"

	"github.com/azuracast/envmigrate/internal/legacy"
	"github.com/azuracast/envmigrate/internal/settings"
)

// ChangeKind classifies a Change.
type ChangeKind string

const (
	// ChangeRenamed means a deprecated key was copied to its canonical name.
	ChangeRenamed ChangeKind = "renamed"
	// ChangeDropped means a deprecated key was removed without being copied.
	ChangeDropped ChangeKind = "dropped"
	// ChangeDefaulted means a missing or empty key received its default.
	ChangeDefaulted ChangeKind = "defaulted"
	// ChangeNormalized means a sentinel value was replaced.
	ChangeNormalized ChangeKind = "normalized"
	// ChangeOverridden means a conditional rule replaced an existing value.
	ChangeOverridden ChangeKind = "overridden"
)

// Change records one decision Merge made beyond plain folding.
type Change struct {
	Kind ChangeKind
	Key  string
	From string
	To   string
}

// String renders the change for reports.
func (c Change) String() string {
	switch c.Kind {
	case ChangeRenamed:
		return fmt.Sprintf("renamed %s to %s", c.From, c.Key)
	case ChangeDropped:
		return fmt.Sprintf("dropped %s in favor of %s", c.From, c.Key)
	case ChangeDefaulted:
		return fmt.Sprintf("defaulted %s to %q", c.Key, c.To)
	case ChangeNormalized:
		return fmt.Sprintf("normalized %s from %q to %q", c.Key, c.From, c.To)
	case ChangeOverridden:
		return fmt.Sprintf("overrode %s with %q", c.Key, c.To)
	default:
		return fmt.Sprintf("%s %s", c.Kind, c.Key)
	}
}

// Merge folds partials in order using rules, then applies renames and
// defaults. It is total: missing keys and empty partials are never errors.
func Merge(partials []legacy.Partial, rules Rules) (*settings.Mapping, []Change) {
	merged := settings.New()
	var changes []Change

	for _, partial := range partials {
		changes = append(changes, fold(merged, partial, rules.Sources)...)
	}
	changes = append(changes, applyRenames(merged, rules.Renames)...)
	changes = append(changes, applyDefaults(merged, rules.Defaults)...)
	return merged, changes
}

// fold applies every rule registered for the partial's source kind.
func fold(merged *settings.Mapping, partial legacy.Partial, rules []Rule) []Change {
	if partial.Values == nil {
		return nil
	}
	var changes []Change
	for _, rule := range rules {
		if rule.Source != partial.Kind {
			continue
		}
		if rule.Field == "" {
			partial.Values.Each(func(key string, value string) {
				if change, ok := apply(merged, rule, key, value); ok {
					changes = append(changes, change)
				}
			})
			continue
		}
		value, ok := partial.Values.Get(rule.Field)
		if !ok {
			continue
		}
		target := rule.Target
		if target == "" {
			target = rule.Field
		}
		if change, ok := apply(merged, rule, target, value); ok {
			changes = append(changes, change)
		}
	}
	return changes
}

// apply writes value under key according to rule.Mode. It returns a Change when
// a conditional rule replaced an existing, different value.
func apply(merged *settings.Mapping, rule Rule, key string, value string) (Change, bool) {
	switch rule.Mode {
	case ModeIfUnset:
		merged.SetIfUnset(key, value)
	case ModeOverrideWhenEquals:
		if value != rule.Match {
			return Change{}, false
		}
		previous, existed := merged.Get(key)
		merged.Set(key, value)
		if existed && previous != value {
			return Change{Kind: ChangeOverridden, Key: key, From: previous, To: value}, true
		}
	default:
		merged.Set(key, value)
	}
	return Change{}, false
}

// applyRenames copies each non-empty deprecated key to its canonical name when
// that name is unset, and always removes the deprecated key.
func applyRenames(merged *settings.Mapping, renames []Rename) []Change {
	var changes []Change
	for _, rename := range renames {
		old, ok := merged.Get(rename.From)
		if !ok {
			continue
		}
		switch {
		case old != "" && merged.SetIfUnset(rename.To, old):
			changes = append(changes, Change{Kind: ChangeRenamed, Key: rename.To, From: rename.From, To: old})
		default:
			changes = append(changes, Change{Kind: ChangeDropped, Key: rename.To, From: rename.From})
		}
		merged.Delete(rename.From)
	}
	return changes
}

// applyDefaults fills unset or empty keys and replaces sentinel values.
func applyDefaults(merged *settings.Mapping, defaults []Default) []Change {
	var changes []Change
	for _, def := range defaults {
		current := merged.Value(def.Key)
		if current == "" {
			merged.Set(def.Key, def.Value)
			changes = append(changes, Change{Kind: ChangeDefaulted, Key: def.Key, To: def.Value})
			continue
		}
		for _, sentinel := range def.Sentinels {
			if current == sentinel && current != def.Value {
				merged.Set(def.Key, def.Value)
				changes = append(changes, Change{Kind: ChangeNormalized, Key: def.Key, From: current, To: def.Value})
				break
			}
		}
	}
	return changes
}
