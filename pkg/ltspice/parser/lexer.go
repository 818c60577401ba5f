package parser

import (
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// LineLexer defines the lexical structure of one LTspice source line.
// Keywords and symbol names are plain words; a ';' or '!' starts a marker
// that runs to the end of the line (TEXT comments and directives).
var LineLexer = lexer.MustSimple([]lexer.SimpleRule{
	// Comment or SPICE directive marker plus its content
	{Name: "Marker", Pattern: `[;!][^\r\n]*`},

	// Numbers (integer, decimal, exponent)
	{Name: "Number", Pattern: `[-+]?(?:\d+\.?\d*|\.\d+)(?:[eE][-+]?\d+)?\b`},

	// Anything else up to whitespace or a marker
	{Name: "Word", Pattern: `[^\s;!]+`},

	{Name: "whitespace", Pattern: `[ \t\r\n]+`},
})

var (
	tokMarker = LineLexer.Symbols()["Marker"]
	tokNumber = LineLexer.Symbols()["Number"]
)

// sourceLine is one non-empty input line and its tokens
type sourceLine struct {
	num  int
	text string
	toks []lexer.Token
}

// tokenize lexes a single line, dropping the EOF token
func tokenize(num int, text string) (*sourceLine, error) {
	lex, err := LineLexer.LexString("", text)
	if err != nil {
		return nil, err
	}
	toks, err := lexer.ConsumeAll(lex)
	if err != nil {
		return nil, err
	}
	if n := len(toks); n > 0 && toks[n-1].EOF() {
		toks = toks[:n-1]
	}
	return &sourceLine{num: num, text: text, toks: toks}, nil
}

func (l *sourceLine) keyword() string {
	if len(l.toks) == 0 {
		return ""
	}
	return l.toks[0].Value
}

func (l *sourceLine) has(i int) bool {
	return i < len(l.toks)
}

func (l *sourceLine) word(i int) (string, bool) {
	if !l.has(i) || l.toks[i].Type == tokMarker {
		return "", false
	}
	return l.toks[i].Value, true
}

func (l *sourceLine) float(i int) (float64, bool) {
	if !l.has(i) || l.toks[i].Type != tokNumber {
		return 0, false
	}
	v, err := strconv.ParseFloat(l.toks[i].Value, 64)
	return v, err == nil
}

func (l *sourceLine) int(i int) (int, bool) {
	if !l.has(i) || l.toks[i].Type != tokNumber {
		return 0, false
	}
	v, err := strconv.Atoi(l.toks[i].Value)
	return v, err == nil
}

func (l *sourceLine) marker(i int) (byte, string, bool) {
	if !l.has(i) || l.toks[i].Type != tokMarker {
		return 0, "", false
	}
	v := l.toks[i].Value
	return v[0], v[1:], true
}

// rest returns the raw line text from token i to the end of the line
func (l *sourceLine) rest(i int) string {
	if !l.has(i) {
		return ""
	}
	return strings.TrimRight(l.text[l.toks[i].Pos.Offset:], " \t\r")
}

// floats reads n consecutive numbers starting at token i
func (l *sourceLine) floats(i, n int) ([]float64, bool) {
	out := make([]float64, n)
	for k := range out {
		v, ok := l.float(i + k)
		if !ok {
			return nil, false
		}
		out[k] = v
	}
	return out, true
}
