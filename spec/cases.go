// Package spec loads the golden recipe-source-to-output fixtures used by
// spec_test.go: a YAML-driven set of canonical named cases, each pairing a
// recipe source with the stdin and stdout an interpreter run over it
// must produce.
package spec

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// CanonicalCases is the top-level shape of testdata/canonical.yaml: a named
// map of test cases.
type CanonicalCases struct {
	Cases map[string]Case `yaml:"cases"`
}

// Case is one golden fixture: a recipe source, optional stdin for any Take
// statements, and the exact bytes the evaluator must write to stdout.
type Case struct {
	Source string `yaml:"source"`
	Stdin  string `yaml:"stdin"`
	Output string `yaml:"output"`
}

// ParseCasesFile reads and unmarshals a canonical cases YAML file.
func ParseCasesFile(path string) (*CanonicalCases, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read cases file %s: %w", path, err)
	}
	return ParseCasesData(data)
}

// ParseCasesData unmarshals cases YAML held in memory.
func ParseCasesData(data []byte) (*CanonicalCases, error) {
	var out CanonicalCases
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("unmarshal cases: %w", err)
	}
	return &out, nil
}
