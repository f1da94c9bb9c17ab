package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/gosperlife/hashlife"
	"github.com/gosperlife/hashlife/internal/bigint"
)

// demoPatterns are small RLE bodies bundled with the binary so the CLI has
// something to run without requiring a pattern file on disk.
var demoPatterns = map[string]string{
	"blinker": "x = 3, y = 1\n3o!\n",
	"block":   "x = 2, y = 2\n2o$2o!\n",
	"glider":  "x = 3, y = 3\nbo$2bo$3o!\n",
	"acorn":   "x = 7, y = 3\nbo5b$3bo3b$2o2b3o!\n",
}

// loadUniverse builds a Universe from exactly one of patternPath or demoName
// (patternPath wins if both are set), applying ruleStr unless the pattern's
// own RLE header carries a rule= clause.
func loadUniverse(patternPath, demoName, ruleStr string) (*hashlife.Universe, error) {
	rule, err := hashlife.ParseRule(ruleStr)
	if err != nil {
		return nil, err
	}
	u := hashlife.NewUniverse(rule)

	var body string
	switch {
	case patternPath != "":
		data, err := os.ReadFile(patternPath)
		if err != nil {
			return nil, fmt.Errorf("reading pattern file: %w", err)
		}
		body = string(data)
	case demoName != "":
		rle, ok := demoPatterns[strings.ToLower(demoName)]
		if !ok {
			return nil, fmt.Errorf("unknown demo pattern %q (known: blinker, block, glider, acorn)", demoName)
		}
		body = rle
	default:
		return nil, fmt.Errorf("one of --pattern or --demo is required")
	}

	if _, err := u.LoadRLE(strings.NewReader(body), bigint.IntZero, bigint.IntZero, true); err != nil {
		return nil, fmt.Errorf("loading pattern: %w", err)
	}
	return u, nil
}
