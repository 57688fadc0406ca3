// Package templates renders the solution and test stubs written for each day.
// Built-in templates are embedded; a repository can override either one by
// placing solution.tmpl or test.tmpl in its configured templates directory.
package templates

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"text/template"
)

//go:embed defaults/*.tmpl
var embeddedTemplates embed.FS

// Template file names, shared by the embedded defaults and override directories
const (
	SolutionFile = "solution.tmpl"
	TestFile     = "test.tmpl"
)

// SolutionData holds the variables available to the solution template
type SolutionData struct {
	Year int
	Day  int
}

// TestData holds the variables available to the test template
type TestData struct {
	Year          int
	Day           int
	ZeroPaddedDay string
}

// Renderer turns a (year, day) pair into file contents
type Renderer interface {
	RenderSolution(data SolutionData) (string, error)
	RenderTest(data TestData) (string, error)
}

// Set is a parsed pair of solution and test templates
type Set struct {
	solution *template.Template
	test     *template.Template
}

// Default returns the embedded templates
func Default() (*Set, error) {
	return Load("")
}

// Load returns templates, preferring files in overrideDir over the embedded
// defaults. An empty overrideDir means embedded only.
func Load(overrideDir string) (*Set, error) {
	solution, err := parse(overrideDir, SolutionFile)
	if err != nil {
		return nil, err
	}
	test, err := parse(overrideDir, TestFile)
	if err != nil {
		return nil, err
	}
	return &Set{solution: solution, test: test}, nil
}

// Parse builds a Set from raw template text
func Parse(solutionText, testText string) (*Set, error) {
	solution, err := newTemplate(SolutionFile, solutionText)
	if err != nil {
		return nil, err
	}
	test, err := newTemplate(TestFile, testText)
	if err != nil {
		return nil, err
	}
	return &Set{solution: solution, test: test}, nil
}

// RenderSolution renders the solution stub for one day
func (s *Set) RenderSolution(data SolutionData) (string, error) {
	return execute(s.solution, data)
}

// RenderTest renders the test stub for one day
func (s *Set) RenderTest(data TestData) (string, error) {
	return execute(s.test, data)
}

func parse(overrideDir, name string) (*template.Template, error) {
	text, err := read(overrideDir, name)
	if err != nil {
		return nil, err
	}
	return newTemplate(name, text)
}

func newTemplate(name, text string) (*template.Template, error) {
	tmpl, err := template.New(name).Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return tmpl, nil
}

func read(overrideDir, name string) (string, error) {
	if overrideDir != "" {
		content, err := os.ReadFile(filepath.Join(overrideDir, name))
		if err == nil {
			return string(content), nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("failed to read template %s: %w", name, err)
		}
	}

	content, err := embeddedTemplates.ReadFile("defaults/" + name)
	if err != nil {
		return "", fmt.Errorf("template %s not found: %w", name, err)
	}
	return string(content), nil
}

func execute(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", tmpl.Name(), err)
	}
	return buf.String(), nil
}
