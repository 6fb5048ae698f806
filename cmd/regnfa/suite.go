package main

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"
)

// suite is the on-disk form of a check file:
//
//	pattern: "a(bc*|de)fg"
//	checks:
//	  - input: abfg
//	    want: true
//
// Files are decoded with YAML 1.1 rules, so an input spelled like a boolean
// (y, n, yes, no, on, off, true, false) must be quoted: input: "y".
type suite struct {
	Pattern string  `json:"pattern,omitempty"`
	Checks  []check `json:"checks"`
}

type check struct {
	Input string `json:"input"`
	Want  bool   `json:"want"`
}

// defaultChecks run against defaultPattern when no other input is given.
var defaultChecks = []check{
	{"abfg", true},
	{"abcfg", true},
	{"abccccccfg", true},
	{"adefg", true},
	{"hiij", true},
	{"hij", true},
	{"hj", true},
	{"", false},
	{"acfg", false},
	{"abcdefg", false},
	{"abefg", false},
	{"hhij", false},
	{"j", false},
}

func loadSuite(path string) (*suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read checks: %w", err)
	}
	var s suite
	if err := yaml.UnmarshalStrict(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse checks %s: %w", path, err)
	}
	return &s, nil
}
