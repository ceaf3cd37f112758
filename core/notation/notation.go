// Package notation reads and writes roots in the compact text form used by
// the CLI and test tables:
//
//	"かえ" GodanRu: Te
//	Kuru: Masu Ta
//	"あい" SpecialSuru:
//
// The quoted stem text is optional and defaults to empty. Kind and step
// names are the String forms from package conj.
package notation

import (
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/FocuswithJustin/kanaconj/core/conj"
	apperrors "github.com/FocuswithJustin/kanaconj/core/errors"
)

// rootGrammar is the participle grammar for one root.
//
//nolint:govet // participle grammar tags are not standard struct tags
type rootGrammar struct {
	Text  *string  `parser:"@String?"`
	Kind  string   `parser:"@Ident \":\""`
	Steps []string `parser:"@Ident*"`
}

var rootLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "String", Pattern: `"(\\.|[^"\\])*"`},
	{Name: "Ident", Pattern: `[A-Za-z]+`},
	{Name: "Punct", Pattern: `:`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var rootParser = participle.MustBuild[rootGrammar](
	participle.Lexer(rootLexer),
	participle.Unquote("String"),
	participle.Elide("Whitespace"),
)

// Parse reads a root in notation form. Syntax errors come back as
// *errors.ParseError; unknown kind or step names as *errors.NotFoundError.
func Parse(s string) (conj.Root, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return conj.Root{}, apperrors.NewParse("root notation", s, "empty input")
	}

	parsed, err := rootParser.ParseString("", s)
	if err != nil {
		return conj.Root{}, apperrors.NewParse("root notation", s, err.Error())
	}

	kind, err := conj.ParseRootKind(parsed.Kind)
	if err != nil {
		return conj.Root{}, err
	}

	root := conj.Root{Kind: kind, Steps: make([]conj.Step, 0, len(parsed.Steps))}
	if parsed.Text != nil {
		root.Text = *parsed.Text
	}
	for i, name := range parsed.Steps {
		step, err := conj.ParseStep(name)
		if err != nil {
			return conj.Root{}, apperrors.Wrapf(err, "step %d", i+1)
		}
		root.Steps = append(root.Steps, step)
	}
	return root, nil
}

// MustParse is Parse for literals known to be valid. It panics on error.
func MustParse(s string) conj.Root {
	r, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return r
}

// Format writes r in notation form. Empty text is omitted, so
// Format(MustParse(s)) is canonical.
func Format(r conj.Root) string {
	var sb strings.Builder
	if r.Text != "" {
		sb.WriteString(strconv.Quote(r.Text))
		sb.WriteByte(' ')
	}
	sb.WriteString(r.Kind.String())
	sb.WriteByte(':')
	for _, s := range r.Steps {
		sb.WriteByte(' ')
		sb.WriteString(s.String())
	}
	return sb.String()
}
