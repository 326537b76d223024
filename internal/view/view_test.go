package view

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantErr bool
	}{
		{"empty (default)", "", false},
		{"table", "table", false},
		{"json", "json", false},
		{"plain", "plain", false},
		{"invalid", "invalid", true},
		{"yaml", "yaml", true},
		{"TABLE uppercase", "TABLE", true}, // case-sensitive
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFormat(tt.format)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "invalid output format")
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidFormats(t *testing.T) {
	assert.Equal(t, []string{"table", "json", "plain"}, ValidFormats())
}

func TestNewRenderer_DefaultFormat(t *testing.T) {
	assert.Equal(t, FormatTable, NewRenderer("", true).Format())
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{"short string", "hello", 10, "hello"},
		{"exact length", "hello", 5, "hello"},
		{"truncate with ellipsis", "hello world", 8, "hello..."},
		{"very short max", "hello", 3, "hel"},
		{"empty string", "", 10, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truncate(tt.input, tt.maxLen))
		})
	}
}

func TestRenderer_RenderTable_Table(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(FormatTable, true)
	r.SetWriter(&buf)

	r.RenderTable([]string{"LEVEL", "HEADING"}, [][]string{
		{"1", "Guide"},
		{"2", "Install"},
	})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "LEVEL  HEADING", lines[0])
	assert.Equal(t, "1      Guide", lines[1])
	assert.Equal(t, "2      Install", lines[2])
}

func TestRenderer_RenderTable_JSON(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(FormatJSON, true)
	r.SetWriter(&buf)

	r.RenderTable([]string{"MODE", "EXAMPLE"}, [][]string{
		{"snake", "hello_world"},
		{"camel", "helloWorld"},
	})

	var result []map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	assert.Len(t, result, 2)
	assert.Equal(t, "snake", result[0]["mode"])
	assert.Equal(t, "helloWorld", result[1]["example"])
}

func TestRenderer_RenderTable_Plain(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(FormatPlain, true)
	r.SetWriter(&buf)

	r.RenderTable([]string{"ID", "NAME"}, [][]string{
		{"1", "First"},
		{"2", "Second"},
	})

	// Plain format uses tabs and omits headers
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, []string{"1\tFirst", "2\tSecond"}, lines)
}

func TestRenderer_EmptyTable(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(FormatTable, true)
	r.SetWriter(&buf)

	r.RenderTable([]string{"ID", "NAME"}, nil)

	// Should still print headers
	assert.Equal(t, "ID  NAME\n", buf.String())
}

func TestRenderer_EmptyTable_JSON(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(FormatJSON, true)
	r.SetWriter(&buf)

	r.RenderTable([]string{"ID", "NAME"}, nil)

	assert.Equal(t, "[]", strings.TrimSpace(buf.String()))
}

func TestRenderer_RowWithFewerColumns(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(FormatJSON, true)
	r.SetWriter(&buf)

	r.RenderTable([]string{"ID", "NAME", "STATUS"}, [][]string{
		{"1", "First"}, // Missing STATUS
	})

	var result []map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	assert.Equal(t, "First", result[0]["name"])
	_, exists := result[0]["status"]
	assert.False(t, exists)
}

func TestRenderer_RenderJSON(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(FormatJSON, true)
	r.SetWriter(&buf)

	require.NoError(t, r.RenderJSON(map[string]string{"markdown": "# Hi"}))

	var result map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	assert.Equal(t, "# Hi", result["markdown"])
}

func TestRenderer_RenderText(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(FormatTable, true)
	r.SetWriter(&buf)

	r.RenderText("Hello, World!")

	assert.Equal(t, "Hello, World!\n", buf.String())
}

func TestRenderer_RenderKeyValue(t *testing.T) {
	t.Run("table", func(t *testing.T) {
		var buf bytes.Buffer
		r := NewRenderer(FormatTable, true)
		r.SetWriter(&buf)

		r.RenderKeyValue("Sessions", "4")
		assert.Equal(t, "Sessions: 4\n", buf.String())
	})

	t.Run("json escapes values", func(t *testing.T) {
		var buf bytes.Buffer
		r := NewRenderer(FormatJSON, true)
		r.SetWriter(&buf)

		r.RenderKeyValue("path", `C:\"x"`)

		var result map[string]string
		require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
		assert.Equal(t, `C:\"x"`, result["path"])
	})
}

func TestRenderer_SuccessAndError(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(FormatTable, true)
	r.SetWriter(&buf)

	r.Success("Configuration saved")
	r.Error("Something went wrong")

	output := buf.String()
	assert.Contains(t, output, "✓ Configuration saved")
	assert.Contains(t, output, "✗ Something went wrong")
}

func TestRenderMarkdown(t *testing.T) {
	out, err := RenderMarkdown("# Title\n\nHello **world**", StyleAuto, 80, true)
	require.NoError(t, err)
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "world")
}

func TestRenderMarkdown_UnknownStyle(t *testing.T) {
	_, err := RenderMarkdown("# Title", "no-such-style", 80, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create markdown renderer")
}
