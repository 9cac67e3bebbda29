// Package report collects puzzle answers with their timings and prints
// them as text, JSON or YAML.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned by Write for formats other than text, json and yaml.
var ErrUnknownFormat = errors.New("report: unknown output format")

// Duration marshals as its String form.
type Duration time.Duration

func (d Duration) String() string { return time.Duration(d).String() }

// MarshalJSON implements json.Marshaler.
func (d Duration) MarshalJSON() ([]byte, error) { return json.Marshal(d.String()) }

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (interface{}, error) { return d.String(), nil }

// Answer is the outcome of one puzzle part.
type Answer struct {
	Part    int      `json:"part" yaml:"part"`
	Name    string   `json:"name" yaml:"name"`
	Value   any      `json:"value,omitempty" yaml:"value,omitempty"`
	Detail  string   `json:"detail,omitempty" yaml:"detail,omitempty"`
	Error   string   `json:"error,omitempty" yaml:"error,omitempty"`
	Elapsed Duration `json:"elapsed" yaml:"elapsed"`
}

// Report is everything one command prints.
type Report struct {
	Command  string   `json:"command" yaml:"command"`
	Input    string   `json:"input" yaml:"input"`
	ReadTime Duration `json:"read_time" yaml:"read_time"`
	Answers  []Answer `json:"answers" yaml:"answers"`
	Map      string   `json:"map,omitempty" yaml:"map,omitempty"`
}

// New starts a report for command on input.
func New(command, input string) *Report {
	return &Report{Command: command, Input: input}
}

// Read times fn as the input-reading step.
func (r *Report) Read(fn func() error) error {
	start := time.Now()
	err := fn()
	r.ReadTime = Duration(time.Since(start))

	return err
}

// Solve times fn and records its value and detail, or its error.
func (r *Report) Solve(part int, name string, fn func() (value any, detail string, err error)) *Answer {
	start := time.Now()
	v, detail, err := fn()
	a := Answer{Part: part, Name: name, Elapsed: Duration(time.Since(start))}
	if err != nil {
		a.Error = err.Error()
	} else {
		a.Value, a.Detail = v, detail
	}
	r.Answers = append(r.Answers, a)

	return &r.Answers[len(r.Answers)-1]
}

// Failed reports whether any answer carries an error.
func (r *Report) Failed() bool {
	for _, a := range r.Answers {
		if a.Error != "" {
			return true
		}
	}

	return false
}

// Write renders r to w in format.
func Write(w io.Writer, r *Report, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case "text", "":
		_, err := io.WriteString(w, formatText(r))
		return err
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func formatText(r *Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: read %s in %s\n", r.Command, r.Input, r.ReadTime)
	for _, a := range r.Answers {
		fmt.Fprintf(&b, "part %d (%s): ", a.Part, a.Name)
		if a.Error != "" {
			fmt.Fprintf(&b, "error: %s", a.Error)
		} else {
			fmt.Fprintf(&b, "%v", a.Value)
			if a.Detail != "" {
				fmt.Fprintf(&b, " [%s]", a.Detail)
			}
		}
		fmt.Fprintf(&b, " in %s\n", a.Elapsed)
	}
	if r.Map != "" {
		b.WriteString(r.Map)
		b.WriteByte('\n')
	}

	return b.String()
}
