/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// Package policy loads validation policies from JSON or YAML documents and
// compiles them into validate.Configs.
//
// A policy document looks like this:
//     {
//       "failFast": false,
//       "required": ["01", "21"],
//       "forbidden": ["90"],
//       "constraints": {
//         "10": { "pattern": "[A-Z0-9]+", "maxLength": 10 },
//         "3102": { "numeric": true }
//       }
//     }
// Every key is optional. Documents are checked against Schema before use.
package policy

import (
	"encoding/json"
	"fmt"
	"github.com/intel/rsp-sw-toolkit-im-suite-gojsonschema"
	"github.com/intel/rsp-sw-toolkit-im-suite-gs1barcode/ai"
	"github.com/intel/rsp-sw-toolkit-im-suite-gs1barcode/validate"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
	"io/ioutil"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// Document is the decoded form of a policy document.
type Document struct {
	FailFast    bool                  `json:"failFast" yaml:"failFast"`
	Required    []string              `json:"required" yaml:"required"`
	Forbidden   []string              `json:"forbidden" yaml:"forbidden"`
	Constraints map[string]Constraint `json:"constraints" yaml:"constraints"`
}

// Constraint restricts the data of one AI. Data must satisfy every condition
// that is set.
type Constraint struct {
	// Pattern is a regular expression the whole data must match.
	Pattern   string   `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	MinLength *int     `json:"minLength,omitempty" yaml:"minLength,omitempty"`
	MaxLength *int     `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
	OneOf     []string `json:"oneOf,omitempty" yaml:"oneOf,omitempty"`
	Numeric   bool     `json:"numeric,omitempty" yaml:"numeric,omitempty"`
}

// SchemaError lists the ways a document fails to match Schema.
type SchemaError struct {
	Problems []string
}

func (e *SchemaError) Error() string {
	return "policy does not match schema: " + strings.Join(e.Problems, "; ")
}

var compiledSchema = func() *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(Schema))
	if err != nil {
		panic(fmt.Sprintf("invalid policy schema: %v", err))
	}
	return s
}()

func checkSchema(doc gojsonschema.JSONLoader) error {
	result, err := compiledSchema.Validate(doc)
	if err != nil {
		return errors.Wrap(err, "unable to check policy against schema")
	}
	if result.Valid() {
		return nil
	}
	problems := make([]string, len(result.Errors()))
	for i, desc := range result.Errors() {
		problems[i] = desc.String()
	}
	return &SchemaError{Problems: problems}
}

// ParseJSON decodes a JSON policy document.
func ParseJSON(data []byte) (Document, error) {
	if err := checkSchema(gojsonschema.NewBytesLoader(data)); err != nil {
		return Document{}, err
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, errors.Wrap(err, "unable to decode JSON policy")
	}
	return doc, nil
}

// ParseYAML decodes a YAML policy document. AIs used as mapping keys must be
// quoted, or YAML reads them as numbers.
func ParseYAML(data []byte) (Document, error) {
	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Document{}, errors.Wrap(err, "unable to decode YAML policy")
	}
	if raw == nil {
		raw = map[string]interface{}{}
	}
	if err := checkSchema(gojsonschema.NewGoLoader(stringKeys(raw))); err != nil {
		return Document{}, err
	}
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Document{}, errors.Wrap(err, "unable to decode YAML policy")
	}
	return doc, nil
}

// Load reads a policy document from a file, choosing the format by the file's
// extension: .json, .yaml or .yml.
func Load(path string) (Document, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return Document{}, errors.Wrap(err, "unable to read policy")
	}

	var doc Document
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		doc, err = ParseJSON(data)
	case ".yaml", ".yml":
		doc, err = ParseYAML(data)
	default:
		return Document{}, errors.Errorf("policy files must be .json, .yaml, "+
			"or .yml, but %q has extension %q", path, ext)
	}
	return doc, errors.Wrapf(err, "invalid policy %q", path)
}

// LoadConfig loads a policy document from a file and compiles it.
func LoadConfig(path string) (validate.Config, error) {
	doc, err := Load(path)
	if err != nil {
		return validate.Config{}, err
	}
	return doc.Config()
}

// Config compiles the document into a validate.Config. It returns an error if
// the document names an AI that GS1 hasn't allocated or a constraint can't
// be compiled.
func (doc Document) Config() (validate.Config, error) {
	b := validate.NewBuilder().FailFast(doc.FailFast)

	for _, id := range doc.Required {
		if !ai.IsCompliant(id) {
			return validate.Config{}, errors.Errorf("required AI %q is not allocated", id)
		}
	}
	b.Require(doc.Required...)

	for _, id := range doc.Forbidden {
		if !ai.IsCompliant(id) {
			return validate.Config{}, errors.Errorf("forbidden AI %q is not allocated", id)
		}
	}
	b.Forbid(doc.Forbidden...)

	ids := make([]string, 0, len(doc.Constraints))
	for id := range doc.Constraints {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		if !ai.IsCompliant(id) {
			return validate.Config{}, errors.Errorf("constrained AI %q is not allocated", id)
		}
		pred, err := doc.Constraints[id].Predicate()
		if err != nil {
			return validate.Config{}, errors.Wrapf(err, "invalid constraint for AI (%s)", id)
		}
		b.Constrain(id, pred)
	}

	log.WithFields(log.Fields{
		"Method":      "policy.Config",
		"FailFast":    doc.FailFast,
		"Required":    doc.Required,
		"Forbidden":   doc.Forbidden,
		"Constrained": ids,
	}).Debug("Compiled validation policy")

	return b.Build(), nil
}

// Predicate compiles the constraint.
func (c Constraint) Predicate() (validate.Predicate, error) {
	if c.MinLength != nil && c.MaxLength != nil && *c.MinLength > *c.MaxLength {
		return nil, errors.Errorf("minLength %d exceeds maxLength %d",
			*c.MinLength, *c.MaxLength)
	}

	var re *regexp.Regexp
	if c.Pattern != "" {
		var err error
		if re, err = regexp.Compile(`^(?:` + c.Pattern + `)$`); err != nil {
			return nil, errors.Wrapf(err, "invalid pattern %q", c.Pattern)
		}
	}

	var oneOf map[string]bool
	if len(c.OneOf) > 0 {
		oneOf = make(map[string]bool, len(c.OneOf))
		for _, s := range c.OneOf {
			oneOf[s] = true
		}
	}

	minLen, maxLen := -1, -1
	if c.MinLength != nil {
		minLen = *c.MinLength
	}
	if c.MaxLength != nil {
		maxLen = *c.MaxLength
	}
	numeric := c.Numeric

	return func(data string) bool {
		switch {
		case minLen >= 0 && len(data) < minLen,
			maxLen >= 0 && len(data) > maxLen,
			numeric && !isNumeric(data),
			oneOf != nil && !oneOf[data],
			re != nil && !re.MatchString(data):
			return false
		}
		return true
	}, nil
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// stringKeys converts any maps with non-string keys into maps with string
// keys so the value can be marshaled as JSON.
func stringKeys(v interface{}) interface{} {
	switch v := v.(type) {
	case map[string]interface{}:
		for k, e := range v {
			v[k] = stringKeys(e)
		}
		return v
	case map[interface{}]interface{}:
		m := make(map[string]interface{}, len(v))
		for k, e := range v {
			m[fmt.Sprint(k)] = stringKeys(e)
		}
		return m
	case []interface{}:
		for i, e := range v {
			v[i] = stringKeys(e)
		}
		return v
	}
	return v
}
