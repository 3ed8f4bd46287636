package param

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, format string, args ...Value) string {
	t.Helper()
	p, err := Compile(format)
	require.NoError(t, err)
	out, err := p.Sprint(NewContext(), args...)
	require.NoError(t, err)
	return out
}

func TestRenderLiteralIsVerbatim(t *testing.T) {
	argSets := [][]Value{
		nil,
		{Int(1), Int(2)},
		{Text("x"), Char('y'), Int(-3)},
	}
	for _, format := range []string{"", "hello", "\x1b[H\x1b[2J", "tab\there\x00nul"} {
		for _, args := range argSets {
			assert.Equal(t, format, render(t, format, args...))
		}
	}
}

func TestRenderPercent(t *testing.T) {
	assert.Equal(t, "%", render(t, "%%"))
	assert.Equal(t, "100%", render(t, "%p1%d%%", Int(100)))
	assert.Equal(t, "a%b%%c", render(t, "a%%b%%%%c"))
}

func TestRenderDeterministic(t *testing.T) {
	const format = "\x1b[%?%p1%{8}%<%t3%p1%d%e%p1%{16}%<%t9%p1%{8}%-%d%e38;5;%p1%d%;m"
	a := MustCompile(format)
	b := MustCompile(format)
	assert.Equal(t, a.Instructions, b.Instructions)
	for _, n := range []int{0, 7, 8, 15, 16, 255} {
		ra, err := a.Sprint(NewContext(), Int(n))
		require.NoError(t, err)
		rb, err := b.Sprint(NewContext(), Int(n))
		require.NoError(t, err)
		assert.Equal(t, ra, rb)
	}
}

func TestRender(t *testing.T) {
	tcs := []struct {
		name     string
		format   string
		args     []Value
		expected string
	}{
		{name: "increment", format: "%i%p1%d%p2%d", args: []Value{Int(0), Int(0)}, expected: "11"},
		{name: "increment without args", format: "%i%p1%d%p2%d", expected: "11"},
		{name: "increment skips non-integers", format: "%i%p1%d%p2%c", args: []Value{Int(0), Char('a')}, expected: "0a"},
		{name: "width", format: "%p1%3d", args: []Value{Int(5)}, expected: "  5"},
		{name: "left justify", format: "%p1%-3d", args: []Value{Int(5)}, expected: "5  "},
		{name: "escaped left justify", format: "%p1%:-3d", args: []Value{Int(5)}, expected: "5  "},
		{name: "forced sign", format: "%p1%:+d", args: []Value{Int(5)}, expected: "+5"},
		{name: "forced sign negative", format: "%p1%:+d", args: []Value{Int(-5)}, expected: "-5"},
		{name: "sign and width", format: "%p1%:-+5d|", args: []Value{Int(3)}, expected: "+3   |"},
		{name: "signed width without colon", format: "%p1%+4d", args: []Value{Int(7)}, expected: "  +7"},
		{name: "subtract then literal digit", format: "%p1%p2%-3", args: []Value{Int(9), Int(4)}, expected: "3"},
		{name: "decimal of character", format: "%p1%d", args: []Value{Char('A')}, expected: "65"},
		{name: "decimal of high character", format: "%p1%d", args: []Value{Char(0xff)}, expected: "255"},
		{name: "decimal of text", format: "%p1%d", args: []Value{Text("abc")}, expected: "0"},
		{name: "hex", format: "%p1%x", args: []Value{Int(255)}, expected: "ff"},
		{name: "upper hex", format: "%p1%X", args: []Value{Int(255)}, expected: "FF"},
		{name: "alt hex", format: "%p1%#x", args: []Value{Int(255)}, expected: "0xff"},
		{name: "alt upper hex", format: "%p1%#X", args: []Value{Int(171)}, expected: "0XAB"},
		{name: "alt hex of zero", format: "%p1%#x", args: []Value{Int(0)}, expected: "0"},
		{name: "alt hex with width", format: "%p1%#6x", args: []Value{Int(255)}, expected: "  0xff"},
		{name: "negative hex", format: "%p1%x", args: []Value{Int(-1)}, expected: "ffffffff"},
		{name: "signed hex", format: "%p1%:+x", args: []Value{Int(10)}, expected: "+a"},
		{name: "octal", format: "%p1%o", args: []Value{Int(8)}, expected: "10"},
		{name: "alt octal", format: "%p1%#o", args: []Value{Int(8)}, expected: "010"},
		{name: "string", format: "%p1%s", args: []Value{Text("hello")}, expected: "hello"},
		{name: "string precision", format: "%p1%.2s", args: []Value{Text("hello")}, expected: "he"},
		{name: "string width and precision", format: "[%p1%5.2s]", args: []Value{Text("hello")}, expected: "[   he]"},
		{name: "string left", format: "[%p1%:-6s]", args: []Value{Text("ab")}, expected: "[ab    ]"},
		{name: "string of integer", format: "%p1%s", args: []Value{Int(-42)}, expected: "-42"},
		{name: "string of character", format: "%p1%s", args: []Value{Char('z')}, expected: "z"},
		{name: "char of integer", format: "%p1%c", args: []Value{Int(0x141)}, expected: "A"},
		{name: "char of character", format: "%'Q'%c", expected: "Q"},
		{name: "char of text", format: "%p1%c", args: []Value{Text("xyz")}, expected: "x"},
		{name: "char of empty text", format: "%p1%c", args: []Value{Text("")}, expected: "\x00"},
		{name: "integer literal", format: "%{-42}%d", expected: "-42"},
		{name: "empty braces", format: "%{}%{7}%d", expected: "7"},
		{name: "strlen text", format: "%p1%l%d", args: []Value{Text("hello")}, expected: "5"},
		{name: "strlen integer", format: "%p1%l%d", args: []Value{Int(-12)}, expected: "3"},
		{name: "strlen character", format: "%p1%l%d", args: []Value{Char('c')}, expected: "1"},
		{name: "add", format: "%p1%p2%+%d", args: []Value{Int(2), Int(3)}, expected: "5"},
		{name: "sub order", format: "%p1%p2%-%d", args: []Value{Int(2), Int(3)}, expected: "-1"},
		{name: "mul", format: "%p1%p2%*%d", args: []Value{Int(6), Int(7)}, expected: "42"},
		{name: "div order", format: "%p1%p2%/%d", args: []Value{Int(7), Int(2)}, expected: "3"},
		{name: "mod", format: "%p1%p2%m%d", args: []Value{Int(7), Int(3)}, expected: "1"},
		{name: "char arithmetic", format: "%'a'%{1}%+%c", expected: "b"},
		{name: "wraparound", format: "%{2147483647}%{1}%+%d", expected: "-2147483648"},
		{name: "bitwise", format: "%{12}%{10}%&%d %{12}%{10}%|%d %{12}%{10}%^%d", expected: "8 14 6"},
		{name: "complement", format: "%{0}%~%d", expected: "-1"},
		{name: "relational", format: "%{1}%{2}%<%d%{1}%{2}%>%d", expected: "10"},
		{name: "equality", format: "%{3}%'\x03'%=%d", expected: "1"},
		{name: "text equality", format: "%p1%p2%=%d", args: []Value{Text("ab"), Text("ab")}, expected: "1"},
		{name: "text inequality", format: "%p1%p2%=%d", args: []Value{Text("ab"), Text("ac")}, expected: "0"},
		{name: "logical", format: "%{2}%{0}%A%d%{2}%{0}%O%d", expected: "01"},
		{name: "logical text", format: "%p1%{1}%A%d", args: []Value{Text("x")}, expected: "1"},
		{name: "not", format: "%{0}%!%d%{5}%!%d", expected: "10"},
		{name: "not text", format: "%p1%!%d%p2%!%d", args: []Value{Text(""), Text("\x00a")}, expected: "11"},
		{name: "dynamic variable", format: "%p1%Pa%ga%ga%+%d", args: []Value{Int(4)}, expected: "8"},
		{name: "unset dynamic reads zero", format: "%gq%d", expected: "0"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, render(t, tc.format, tc.args...))
		})
	}
}

func TestRenderConditionals(t *testing.T) {
	tcs := []struct {
		name     string
		format   string
		args     []Value
		expected string
	}{
		{name: "else taken branch", format: "%?%p1%t1%e0%;", args: []Value{Int(1)}, expected: "1"},
		{name: "else untaken branch", format: "%?%p1%t1%e0%;", args: []Value{Int(0)}, expected: "0"},
		{name: "else pushes taken", format: "%?%p1%t%{1}%d%e%{0}%d%;", args: []Value{Int(1)}, expected: "1"},
		{name: "else pushes untaken", format: "%?%p1%t%{1}%d%e%{0}%d%;", args: []Value{Int(0)}, expected: "0"},
		{name: "no else true", format: "[%?%p1%tyes%;]", args: []Value{Int(3)}, expected: "[yes]"},
		{name: "no else false", format: "[%?%p1%tyes%;]", args: []Value{Int(0)}, expected: "[]"},
		{name: "text predicate", format: "%?%p1%ty%en%;", args: []Value{Text("a")}, expected: "y"},
		{name: "empty text predicate", format: "%?%p1%ty%en%;", args: []Value{Text("")}, expected: "n"},
		{name: "nul text predicate", format: "%?%p1%ty%en%;", args: []Value{Text("\x00x")}, expected: "n"},
		{name: "character predicate", format: "%?%p1%ty%en%;", args: []Value{Char(0)}, expected: "n"},
		{name: "chain first", format: "%?%p1%{1}%=%tA%e%p1%{2}%=%tB%eC%;", args: []Value{Int(1)}, expected: "A"},
		{name: "chain second", format: "%?%p1%{1}%=%tA%e%p1%{2}%=%tB%eC%;", args: []Value{Int(2)}, expected: "B"},
		{name: "chain fallback", format: "%?%p1%{1}%=%tA%e%p1%{2}%=%tB%eC%;", args: []Value{Int(9)}, expected: "C"},
		{name: "nested both", format: "%?%p1%t<%?%p2%tb%;>%;", args: []Value{Int(1), Int(1)}, expected: "<b>"},
		{name: "nested inner false", format: "%?%p1%t<%?%p2%tb%;>%;", args: []Value{Int(1), Int(0)}, expected: "<>"},
		{name: "nested outer false skips inner", format: "%?%p1%t<%?%p2%tb%;>%;x", args: []Value{Int(0), Int(1)}, expected: "x"},
		{name: "nested in else", format: "%?%p1%tA%e%?%p2%tB%eC%;%;", args: []Value{Int(0), Int(0)}, expected: "C"},
		{name: "unterminated true", format: "%?%p1%tA", args: []Value{Int(1)}, expected: "A"},
		{name: "unterminated false", format: "%?%p1%tA", args: []Value{Int(0)}, expected: ""},
		{name: "terminal discards top", format: "%{7}%{9}%?%{1}%t%;%d", expected: "7"},
		{name: "terminal on empty stack", format: "%?%{1}%tx%;", expected: "x"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, render(t, tc.format, tc.args...))
		})
	}
}

func TestRenderTerminalCapabilities(t *testing.T) {
	const (
		cup   = "\x1b[%i%p1%d;%p2%dH"
		setaf = "\x1b[%?%p1%{8}%<%t3%p1%d%e%p1%{16}%<%t9%p1%{8}%-%d%e38;5;%p1%d%;m"
		// xterm sgr with attributes p1..p9
		sgr = "%?%p9%t\x1b(0%e\x1b(B%;\x1b[0%?%p6%t;1%;%?%p5%t;2%;%?%p2%t;4%;%?%p1%p3%|%t;7%;%?%p4%t;5%;%?%p7%t;8%;m"
	)
	tcs := []struct {
		name     string
		format   string
		args     []Value
		expected string
	}{
		{name: "cup origin", format: cup, args: []Value{Int(0), Int(0)}, expected: "\x1b[1;1H"},
		{name: "cup", format: cup, args: []Value{Int(4), Int(9)}, expected: "\x1b[5;10H"},
		{name: "setaf basic", format: setaf, args: []Value{Int(1)}, expected: "\x1b[31m"},
		{name: "setaf bright", format: setaf, args: []Value{Int(12)}, expected: "\x1b[94m"},
		{name: "setaf indexed", format: setaf, args: []Value{Int(200)}, expected: "\x1b[38;5;200m"},
		{name: "sgr plain", format: sgr, expected: "\x1b(B\x1b[0m"},
		{
			name:     "sgr bold underline",
			format:   sgr,
			args:     []Value{Int(0), Int(1), Int(0), Int(0), Int(0), Int(1)},
			expected: "\x1b(B\x1b[0;1;4m",
		},
		{
			name:     "sgr reverse acs",
			format:   sgr,
			args:     []Value{Int(0), Int(0), Int(1), Int(0), Int(0), Int(0), Int(0), Int(0), Int(1)},
			expected: "\x1b(0\x1b[0;7m",
		},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, render(t, tc.format, tc.args...))
		})
	}
}

func TestStaticVariablesPersist(t *testing.T) {
	ctx := NewContext()
	set := MustCompile("%p1%PA")
	get := MustCompile("%gA%d")

	out, err := set.Sprint(ctx, Int(7))
	require.NoError(t, err)
	assert.Empty(t, out)

	out, err = get.Sprint(ctx)
	require.NoError(t, err)
	assert.Equal(t, "7", out)

	out, err = get.Sprint(ctx)
	require.NoError(t, err)
	assert.Equal(t, "7", out)
	assert.Equal(t, Int(7), ctx.Static(0))

	// dynamics do not carry over between calls
	_, err = MustCompile("%p1%Pa").Sprint(ctx, Int(5))
	require.NoError(t, err)
	out, err = MustCompile("%ga%d").Sprint(ctx)
	require.NoError(t, err)
	assert.Equal(t, "0", out)

	ctx.ResetStatics()
	out, err = get.Sprint(ctx)
	require.NoError(t, err)
	assert.Equal(t, "0", out)
}

func TestRenderOperandTypeErrors(t *testing.T) {
	tcs := []struct {
		name    string
		format  string
		args    []Value
		message string
	}{
		{name: "add text", format: "%p1%{3}%+", args: []Value{Text("abc")}, message: `cannot add a text operand: "abc" + 3`},
		{name: "text on the right", format: "%{3}%p1%*", args: []Value{Text("x")}, message: `cannot multiply a text operand: 3 * "x"`},
		{name: "bitwise", format: "%p1%p2%&", args: []Value{Char('a'), Text("b")}, message: `cannot bitwise-and a text operand: 'a' & "b"`},
		{name: "relational", format: "%p1%{1}%>", args: []Value{Text("b")}, message: `cannot compare (>) a text operand: "b" > 1`},
		{name: "mixed equality", format: "%p1%{1}%=", args: []Value{Text("b")}, message: `cannot compare mixed text/numeric operands: "b" == 1`},
		{name: "complement", format: "%p1%~", args: []Value{Text("b")}, message: `cannot bitwise complement a text operand: ~"b"`},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			ctx := NewContext()
			out, err := MustCompile(tc.format).Sprint(ctx, tc.args...)
			require.Error(t, err)
			assert.Empty(t, out)
			assert.True(t, errors.Is(err, ErrOperandType))

			var opErr *OperandTypeError
			require.True(t, errors.As(err, &opErr))
			assert.Equal(t, tc.message, opErr.Error())

			var execErr *ExecError
			require.True(t, errors.As(err, &execErr))
			assert.Equal(t, opErr.Op, execErr.Op)
			assert.Zero(t, ctx.Depth())
		})
	}
}

func TestRenderExecErrors(t *testing.T) {
	tcs := []struct {
		name   string
		format string
		target error
		index  int
		op     Op
	}{
		{name: "underflow on write", format: "%d", target: ErrStackUnderflow, index: 0, op: OpWriteDec},
		{name: "underflow on binary", format: "%{1}%+", target: ErrStackUnderflow, index: 1, op: OpAdd},
		{name: "underflow on then", format: "%?%t%;", target: ErrStackUnderflow, index: 1, op: OpThen},
		{name: "underflow on set", format: "%{1}%{2}%Pa%Pb%Pc", target: ErrStackUnderflow, index: 4, op: OpSetDynamic},
		{name: "divide by zero", format: "%{1}%{2}%{0}%/", target: ErrDivideByZero, index: 3, op: OpDiv},
		{name: "mod by zero", format: "%{1}%{0}%m", target: ErrDivideByZero, index: 2, op: OpMod},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			ctx := NewContext()
			buf := new(bytes.Buffer)
			err := MustCompile(tc.format).Render(buf, ctx)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.target))

			var execErr *ExecError
			require.True(t, errors.As(err, &execErr))
			assert.Equal(t, tc.index, execErr.Index)
			assert.Equal(t, tc.op, execErr.Op)

			assert.Zero(t, ctx.Depth(), "stack must be empty after a failed render")
			assert.Zero(t, buf.Len(), "sink must not see partial output")
		})
	}
}

func TestRenderErrorKeepsStatics(t *testing.T) {
	ctx := NewContext()
	_, err := MustCompile("%{5}%PB%{1}%{0}%/").Sprint(ctx)
	require.Error(t, err)
	assert.Equal(t, Int(5), ctx.Static(1))

	// the next render on the same context is unaffected
	out, err := MustCompile("%{1}%{2}%+%d").Sprint(ctx)
	require.NoError(t, err)
	assert.Equal(t, "3", out)
}

func TestRenderTooManyArgs(t *testing.T) {
	args := make([]Value, NumParams+1)
	_, err := MustCompile("x").Sprint(NewContext(), args...)
	assert.True(t, errors.Is(err, ErrTooManyArgs))

	// values left by an earlier render are dropped by the failed call
	ctx := NewContext()
	_, err = MustCompile("%p1").Sprint(ctx, Int(1))
	require.NoError(t, err)
	require.Equal(t, 1, ctx.Depth())
	_, err = MustCompile("%p1").Sprint(ctx, args...)
	assert.True(t, errors.Is(err, ErrTooManyArgs))
	assert.Zero(t, ctx.Depth())

	out, err := MustCompile("%p9%d").Sprint(NewContext(), args[:NumParams]...)
	require.NoError(t, err)
	assert.Equal(t, "0", out)
}

func TestRenderToWriter(t *testing.T) {
	buf := new(bytes.Buffer)
	ctx := NewContext()
	p := MustCompile("\x1b[%p1%dA")
	require.NoError(t, Render(buf, p, ctx, Int(3)))
	require.NoError(t, p.Render(buf, ctx, Int(12)))
	assert.Equal(t, "\x1b[3A\x1b[12A", buf.String())
}

func TestZeroContext(t *testing.T) {
	var ctx Context
	out, err := MustCompile("%p1%{1}%+%d").Sprint(&ctx, Int(1))
	require.NoError(t, err)
	assert.Equal(t, "2", out)
}
