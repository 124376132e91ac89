// Package formatter renders a parsed JSON value tree as canonical indented
// text, and exposes the full text-to-text pipeline on top of the tokenizer
// and parser.
package formatter

import (
	"fmt"
	"os"
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/mcastle/jsonfmt/internal/errors"
	"github.com/mcastle/jsonfmt/internal/models"
	"github.com/mcastle/jsonfmt/internal/parser"
)

// Formatter renders value trees. The zero configuration produces two-space
// indentation with string content emitted verbatim.
type Formatter struct {
	indent        string
	escapeStrings bool
	keyCase       string
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithIndent sets the number of spaces per indent level. Default is 2.
// Values below 1 are ignored.
func WithIndent(width int) Option {
	return func(f *Formatter) {
		if width >= 1 {
			f.indent = strings.Repeat(" ", width)
		}
	}
}

// WithEscapeStrings makes the formatter escape quotes, backslashes and
// control characters in output strings and keys, guaranteeing valid JSON.
// Off by default: the default output reproduces decoded string content
// verbatim, so content containing such characters yields invalid JSON.
func WithEscapeStrings(escape bool) Option {
	return func(f *Formatter) {
		f.escapeStrings = escape
	}
}

// WithKeyCase rewrites object keys to the given case style: "snake",
// "camel", "pascal", "kebab" or "screaming". Empty leaves keys untouched.
func WithKeyCase(style string) Option {
	return func(f *Formatter) {
		f.keyCase = style
	}
}

// NewFormatter creates a Formatter with the given options applied over the
// defaults.
func NewFormatter(opts ...Option) *Formatter {
	f := &Formatter{indent: "  "}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Format renders the value tree. It is total: every value the parser can
// produce renders without error. The indent level starts at 1 for the
// root's immediate children.
func (f *Formatter) Format(v models.Value) string {
	return f.formatValue(v, 1)
}

func (f *Formatter) formatValue(v models.Value, level int) string {
	switch val := v.(type) {
	case models.Null:
		return "null"
	case models.Bool:
		if val {
			return "true"
		}
		return "false"
	case models.Number:
		return models.FormatNumber(float64(val))
	case models.String:
		return `"` + f.renderString(string(val)) + `"`
	case models.Array:
		return f.formatArray(val, level)
	case models.Object:
		return f.formatObject(val, level)
	}
	// Only reachable with a value that did not come from the parser.
	panic(fmt.Sprintf("formatter: unknown value type %T", v))
}

func (f *Formatter) formatArray(arr models.Array, level int) string {
	if len(arr) == 0 {
		return "[]"
	}

	lines := make([]string, 0, len(arr))
	for _, v := range arr {
		lines = append(lines, strings.Repeat(f.indent, level)+f.formatValue(v, level+1))
	}
	return "[\n" + strings.Join(lines, ",\n") + "\n" + strings.Repeat(f.indent, level-1) + "]"
}

func (f *Formatter) formatObject(obj models.Object, level int) string {
	if len(obj) == 0 {
		return "{}"
	}

	lines := make([]string, 0, len(obj))
	for _, m := range obj {
		key := f.renderString(f.convertKey(m.Key))
		lines = append(lines,
			fmt.Sprintf("%s\"%s\": %s", strings.Repeat(f.indent, level), key, f.formatValue(m.Value, level+1)))
	}
	return "{\n" + strings.Join(lines, ",\n") + "\n" + strings.Repeat(f.indent, level-1) + "}"
}

func (f *Formatter) convertKey(key string) string {
	switch f.keyCase {
	case "snake":
		return strcase.ToSnake(key)
	case "camel":
		return strcase.ToLowerCamel(key)
	case "pascal":
		return strcase.ToCamel(key)
	case "kebab":
		return strcase.ToKebab(key)
	case "screaming":
		return strcase.ToScreamingSnake(key)
	}
	return key
}

// renderString prepares decoded string content for output. Without the
// escape option the content passes through verbatim.
func (f *Formatter) renderString(s string) string {
	if !f.escapeStrings {
		return s
	}

	var b strings.Builder
	for _, c := range s {
		switch c {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if c < 0x20 {
				fmt.Fprintf(&b, `\u%04x`, c)
			} else {
				b.WriteRune(c)
			}
		}
	}
	return b.String()
}

// FormatString runs the full pipeline on raw JSON text: tokenize, parse,
// format. This is the single entry point the CLI and tests consume.
func (f *Formatter) FormatString(content string) (string, error) {
	value, err := parser.ParseString(content)
	if err != nil {
		return "", err
	}
	return f.Format(value), nil
}

// FormatFile reads a file and formats its contents
func (f *Formatter) FormatFile(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", errors.NewInputError("file path is empty", errors.ErrInvalidFilePath)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.NewInputError(
				fmt.Sprintf("file '%s' not found", path),
				errors.ErrFileNotFound,
			)
		}
		return "", errors.NewInputError(
			fmt.Sprintf("failed to read file '%s'", path),
			err,
		)
	}
	if len(data) == 0 {
		return "", errors.NewInputError(
			fmt.Sprintf("input file '%s' is empty", path),
			errors.ErrFileEmpty,
		)
	}

	return f.FormatString(string(data))
}
