/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package validate

// Predicate reports whether an AI's data satisfies a business rule.
type Predicate func(data string) bool

type constraint struct {
	id   string
	pred Predicate
}

// Config is a validation policy. Build one with a Builder; once built, it's
// never modified, so a single Config may be shared by many goroutines.
//
// The zero Config has no rules beyond the check digit and date checks that
// always apply, and collects every error rather than failing fast.
type Config struct {
	failFast    bool
	required    []string
	forbidden   []string
	constraints []constraint
}

// FailFast returns true if validation stops after the first rule that fails.
func (c Config) FailFast() bool {
	return c.failFast
}

// Required returns a copy of the AIs that must be present.
func (c Config) Required() []string {
	return append([]string(nil), c.required...)
}

// Forbidden returns a copy of the AIs that must be absent.
func (c Config) Forbidden() []string {
	return append([]string(nil), c.forbidden...)
}

// Constrained returns the AIs which have a constraint, in the order they
// were added.
func (c Config) Constrained() []string {
	ids := make([]string, len(c.constraints))
	for i, con := range c.constraints {
		ids[i] = con.id
	}
	return ids
}

// Builder accumulates rules for a Config.
//
// A Builder is not safe for concurrent use, but the Configs it builds are
// independent of it and of each other.
type Builder struct {
	cfg        Config
	required   map[string]bool
	forbidden  map[string]bool
	constraint map[string]int
}

// NewBuilder returns a Builder for an empty policy.
func NewBuilder() *Builder {
	return &Builder{
		required:   map[string]bool{},
		forbidden:  map[string]bool{},
		constraint: map[string]int{},
	}
}

// FailFast sets whether validation should stop after the first failing rule.
func (b *Builder) FailFast(failFast bool) *Builder {
	b.cfg.failFast = failFast
	return b
}

// Require adds AIs which must be present. Repeats are ignored.
func (b *Builder) Require(ids ...string) *Builder {
	for _, id := range ids {
		if !b.required[id] {
			b.required[id] = true
			b.cfg.required = append(b.cfg.required, id)
		}
	}
	return b
}

// Forbid adds AIs which must not be present. Repeats are ignored.
func (b *Builder) Forbid(ids ...string) *Builder {
	for _, id := range ids {
		if !b.forbidden[id] {
			b.forbidden[id] = true
			b.cfg.forbidden = append(b.cfg.forbidden, id)
		}
	}
	return b
}

// Constrain sets the predicate the data of AI id must satisfy when the AI is
// present, replacing any previous predicate for it. A constraint does not
// make the AI required.
//
// It panics if p is nil.
func (b *Builder) Constrain(id string, p Predicate) *Builder {
	if p == nil {
		panic("nil predicate for AI " + id)
	}
	if idx, ok := b.constraint[id]; ok {
		b.cfg.constraints[idx].pred = p
		return b
	}
	b.constraint[id] = len(b.cfg.constraints)
	b.cfg.constraints = append(b.cfg.constraints, constraint{id: id, pred: p})
	return b
}

// Build returns a Config with the rules added so far. Later use of the
// Builder does not affect it.
func (b *Builder) Build() Config {
	return Config{
		failFast:    b.cfg.failFast,
		required:    append([]string(nil), b.cfg.required...),
		forbidden:   append([]string(nil), b.cfg.forbidden...),
		constraints: append([]constraint(nil), b.cfg.constraints...),
	}
}
