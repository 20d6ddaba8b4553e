package repl

import (
	"bytes"
	"strings"
	"testing"

	"newt/internal/arith"
	"newt/internal/util"
	"newt/internal/value"
)

func testEval(t *testing.T, line string) value.Value {
	t.Helper()
	return Eval(arith.New(util.DefaultConfiguration()), line)
}

func TestEval(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"1 + 2", "3"},
		{"1 + 2 * 3", "7"},
		{"(1 + 2) * 3", "9"},
		{"10 - 4 - 3", "3"},
		{"7 % 2", "1"},
		{"1 / 4", "0.25"},
		{"2 ** 10", "1024"},
		{"2 ** 3 ** 2", "512"}, // right associative
		{"-2 ** 2", "4"},       // unary binds tighter here
		{"- -5", "5"},
		{"+\"3\"", "3"},
		{"\"a\" + 1", "a1"},
		{"1 + \"a\"", "1a"},
		{"\"foo\" + \"bar\"", "foobar"},
		{"{} + {}", "[object Object][object Object]"},
		{"1n + 1n", "2n"},
		{"2n * 3n - 1n", "5n"},
		{"7n / 2n", "3n"},
		{"-7n % 2n", "-1n"},
		{"1 / 0", "Infinity"},
		{"0 / 0", "NaN"},
		{"12345678901234567890n * 10n", "123456789012345678900n"},
	}

	for _, c := range cases {
		t.Run(c.input, func(t *testing.T) {
			result := testEval(t, c.input)
			if value.IsError(result) {
				t.Fatalf("unexpected error: %s", result.Inspect())
			}
			if result.Inspect() != c.expected {
				t.Errorf("expected %s, got %s", c.expected, result.Inspect())
			}
		})
	}
}

func TestEvalErrors(t *testing.T) {
	cases := []struct {
		input string
		kind  string
	}{
		{"1n + 1", value.TYPE_ERROR},
		{"+1n", value.TYPE_ERROR},
		{"2n ** 3n", value.TYPE_ERROR},
		{"1n / 0n", value.RANGE_ERROR},
		{"1 +", value.COMMON_ERROR},
		{"(1 + 2", value.COMMON_ERROR},
		{"1 2", value.COMMON_ERROR},
		{"* 3", value.COMMON_ERROR},
		{"{1}", value.COMMON_ERROR},
	}

	for _, c := range cases {
		t.Run(c.input, func(t *testing.T) {
			result := testEval(t, c.input)
			err, ok := result.(*value.Error)
			if !ok {
				t.Fatalf("expected an error, got %s", result.Inspect())
			}
			if err.Kind != c.kind {
				t.Errorf("expected %s, got %s: %s", c.kind, err.Kind, err.Message)
			}
		})
	}
}

func TestStart(t *testing.T) {
	in := strings.NewReader("1 + 2\n\n2 ** 4\n1n + 1\n")
	var out bytes.Buffer

	Start(util.DefaultConfiguration(), in, &out)

	output := out.String()
	for _, expected := range []string{"3\n", "16\n", "TypeError"} {
		if !strings.Contains(output, expected) {
			t.Errorf("output missing %q: %q", expected, output)
		}
	}
}
