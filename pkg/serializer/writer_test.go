package serializer

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

type testParam struct {
	Name     string  `json:"name" yaml:"name"`
	Required bool    `json:"required" yaml:"required"`
	Default  *string `json:"default,omitempty" yaml:"default,omitempty"`
}

type testCommand struct {
	Name     string        `json:"name" yaml:"name"`
	Help     string        `json:"help,omitempty" yaml:"help,omitempty"`
	Params   []testParam   `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	Commands []testCommand `json:"commands,omitempty" yaml:"commands,omitempty"`
}

func sampleTree() testCommand {
	def := "2.4"
	return testCommand{
		Name: "foo",
		Help: "Sample commands.\n\nCommands:\n  combo",
		Commands: []testCommand{
			{
				Name: "combo",
				Params: []testParam{
					{Name: "first", Required: true},
					{Name: "second", Default: &def},
				},
			},
		},
	}
}

func TestWriter_SerializeJSON(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatJSON, &buf)

	if err := writer.Serialize(context.Background(), sampleTree()); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var result testCommand
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal JSON: %v", err)
	}
	if len(result.Commands) != 1 || len(result.Commands[0].Params) != 2 {
		t.Fatalf("Unexpected data: %+v", result)
	}
	if result.Commands[0].Params[1].Default == nil || *result.Commands[0].Params[1].Default != "2.4" {
		t.Errorf("Expected default 2.4, got %+v", result.Commands[0].Params[1])
	}
}

func TestWriter_SerializeYAML(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatYAML, &buf)

	if err := writer.Serialize(context.Background(), sampleTree()); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var result testCommand
	if err := yaml.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal YAML: %v", err)
	}
	if result.Name != "foo" || result.Commands[0].Name != "combo" {
		t.Errorf("Unexpected data: %+v", result)
	}
	if !strings.Contains(result.Help, "Commands:") {
		t.Errorf("Expected multi-line help to survive, got %q", result.Help)
	}
}

func TestWriter_SerializeTable(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	if err := writer.Serialize(context.Background(), sampleTree()); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "FIELD") || !strings.Contains(output, "VALUE") {
		t.Error("Expected table header not found")
	}
	if !strings.Contains(output, "commands.[0].parameters.[1].default") {
		t.Errorf("Expected json-tag keys, got:\n%s", output)
	}
	if !strings.Contains(output, "Sample commands. ...") {
		t.Errorf("Expected multi-line help truncated to one row, got:\n%s", output)
	}
	if strings.Contains(output, "commands.[0].parameters.[0].default") {
		t.Error("nil default should not produce a row")
	}
}

func TestWriter_SerializeTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := NewWriter(FormatTable, &buf).Serialize(context.Background(), struct{}{}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "<empty>" {
		t.Errorf("Expected <empty>, got %q", buf.String())
	}
}

func TestWriter_UnknownFormatFallsBackToJSON(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter("invalid", &buf)

	if err := writer.Serialize(context.Background(), sampleTree()); err != nil {
		t.Fatalf("Serialize should not fail with unknown format (falls back to JSON): %v", err)
	}

	var result testCommand
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal as JSON: %v", err)
	}
}

func TestWriter_Close(t *testing.T) {
	writer := NewWriter(FormatJSON, nil)
	if err := writer.Close(); err != nil {
		t.Errorf("Close on stdout writer should not error: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Errorf("Multiple Close calls should not error: %v", err)
	}
}

func TestNewFileWriterOrStdout(t *testing.T) {
	path := t.TempDir() + "/grammar.yaml"

	writer := NewFileWriterOrStdout(FormatYAML, path)
	if err := writer.Serialize(context.Background(), sampleTree()); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read output file: %v", err)
	}
	if !strings.Contains(string(data), "name: combo") {
		t.Errorf("Unexpected file content:\n%s", data)
	}
}

func TestNewFileWriterOrStdout_EmptyPath(t *testing.T) {
	for _, path := range []string{"", "  ", "\t"} {
		writer := NewFileWriterOrStdout(FormatJSON, path)
		if writer == nil {
			t.Fatalf("Expected non-nil writer for empty path %q", path)
		}
		if err := writer.Close(); err != nil {
			t.Errorf("Close failed for empty path writer: %v", err)
		}
	}
}

func TestFormat_IsUnknown(t *testing.T) {
	for _, f := range SupportedFormats() {
		if Format(f).IsUnknown() {
			t.Errorf("format %q should be known", f)
		}
	}
	if !Format("xml").IsUnknown() {
		t.Error("xml should be unknown")
	}
}
