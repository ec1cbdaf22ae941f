// Package testhelper loads golden summary cases and compares rendered
// Markdown against them.
//
// A case is a JSON file naming an input report, the rendering options and the
// expected Markdown file, all relative to the case file:
//
//	{
//	  "description": "GoogleTest report with defaults",
//	  "input": {"xml": "../fixtures/gtest.xml", "max_fail": 50},
//	  "output": "../fixtures/gtest.md"
//	}
package testhelper

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// TestCase is a single golden case loaded from a JSON file.
type TestCase struct {
	// Name is the case name (derived from filename).
	Name string `json:"-"`

	// Dir is the directory holding the case file. Paths resolve against it.
	Dir string `json:"-"`

	Input       Input  `json:"input"`
	Output      string `json:"output"`
	Description string `json:"description,omitempty"`
	Skip        bool   `json:"skip,omitempty"`
}

// Input selects the report and rendering options of a case. Unset options
// keep the command defaults.
type Input struct {
	XML             string  `json:"xml"`
	Title           *string `json:"title,omitempty"`
	MaxFail         *int    `json:"max_fail,omitempty"`
	TruncateMessage *int    `json:"truncate_message,omitempty"`
	ShowPassed      bool    `json:"show_passed,omitempty"`
	NoEmoji         bool    `json:"no_emoji,omitempty"`
}

// XMLPath returns the absolute path of the input report.
func (tc *TestCase) XMLPath() string {
	return tc.resolve(tc.Input.XML)
}

// Expected reads the golden Markdown. Line endings are normalized to LF.
func (tc *TestCase) Expected() (string, error) {
	data, err := os.ReadFile(tc.resolve(tc.Output))
	if err != nil {
		return "", err
	}
	return strings.ReplaceAll(string(data), "\r\n", "\n"), nil
}

func (tc *TestCase) resolve(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(tc.Dir, filepath.FromSlash(p))
}

// LoadSuite loads all cases from dir/*.json, in filename order.
func LoadSuite(dir string) ([]TestCase, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, err
	}

	var cases []TestCase
	for _, f := range files {
		tc, err := LoadTestCase(f)
		if err != nil {
			return nil, err
		}
		cases = append(cases, *tc)
	}
	return cases, nil
}

// LoadTestCase loads a single case from a JSON file.
func LoadTestCase(path string) (*TestCase, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var tc TestCase
	if err := json.Unmarshal(data, &tc); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if tc.Input.XML == "" || tc.Output == "" {
		return nil, fmt.Errorf("%s: input.xml and output are required", path)
	}

	tc.Name = strings.TrimSuffix(filepath.Base(path), ".json")
	tc.Dir = filepath.Dir(path)
	return &tc, nil
}

// FindProjectRoot walks up from the working directory to the directory
// containing go.mod.
func FindProjectRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return FindProjectRootFrom(cwd)
}

// FindProjectRootFrom finds the project root starting from a specific directory.
func FindProjectRootFrom(startDir string) (string, error) {
	dir := startDir

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", &ProjectNotFoundError{StartDir: startDir}
}

// ProjectNotFoundError indicates go.mod was not found.
type ProjectNotFoundError struct {
	StartDir string
}

func (e *ProjectNotFoundError) Error() string {
	return "go.mod not found (searched from " + e.StartDir + ")"
}
