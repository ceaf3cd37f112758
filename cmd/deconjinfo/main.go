// Command deconjinfo deconjugates Japanese words from the command line.
// It prints every candidate root with its dictionary form and the
// conjugation rebuilt from it, and can render or cite roots given in
// notation form.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/kong"
	"github.com/ulikunitz/xz"

	"github.com/FocuswithJustin/kanaconj/core/conj"
	apperrors "github.com/FocuswithJustin/kanaconj/core/errors"
	"github.com/FocuswithJustin/kanaconj/core/notation"
	"github.com/FocuswithJustin/kanaconj/internal/logging"
)

const version = "0.1.0"

// maxWordRunes bounds the words analyze accepts. Candidate counts grow
// exponentially with repeated られ, so longer input can stall the search.
const maxWordRunes = 32

// CLI defines the command-line interface for deconjinfo.
type CLI struct {
	// Global flags
	LogLevel  string `name:"log-level" help:"Log level (debug, info, warn, error)" default:"warn" enum:"debug,info,warn,error"`
	LogFormat string `name:"log-format" help:"Log format (json, text)" default:"text" enum:"json,text"`

	Analyze AnalyzeCmd `cmd:"" default:"withargs" help:"List candidate roots for a conjugated word"`
	Render  RenderCmd  `cmd:"" help:"Conjugate a root given in notation form"`
	Dict    DictCmd    `cmd:"" help:"Print the dictionary forms of a root given in notation form"`
	Labels  LabelsCmd  `cmd:"" help:"List every root kind and step"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

// AnalyzeCmd deconjugates one word, or every line of a file.
type AnalyzeCmd struct {
	Word   string `arg:"" optional:"" help:"Conjugated word to analyze"`
	File   string `short:"f" help:"Read words from a file, one per line (.xz compressed files are accepted)" type:"path"`
	JSON   bool   `name:"json" help:"Write candidates to stdout as JSON"`
	Labels bool   `help:"Include display labels for kinds and steps"`
}

type analysis struct {
	Word       string      `json:"word"`
	Candidates []candidate `json:"candidates"`
}

type candidate struct {
	conj.Root
	Dict       []string `json:"dict"`
	Conjugated string   `json:"conjugated,omitempty"`
	Error      string   `json:"error,omitempty"`
	KindLabel  string   `json:"kind_label,omitempty"`
	StepLabels []string `json:"step_labels,omitempty"`
}

func (c *AnalyzeCmd) Run(ctx *kong.Context) error {
	words, err := c.words()
	if err != nil {
		return err
	}

	results := make([]analysis, 0, len(words))
	for _, w := range words {
		results = append(results, analyze(w, c.Labels))
	}

	if c.JSON {
		enc := json.NewEncoder(ctx.Stdout)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return apperrors.Wrap(enc.Encode(results), "encode analysis")
	}

	for _, a := range results {
		fmt.Fprintf(ctx.Stderr, "%s: %d candidates\n", a.Word, len(a.Candidates))
		for _, cand := range a.Candidates {
			fmt.Fprintf(ctx.Stderr, "  %s\n", cand.Root)
			fmt.Fprintf(ctx.Stderr, "    dict: %s\n", strings.Join(cand.Dict, ", "))
			if cand.Error != "" {
				fmt.Fprintf(ctx.Stderr, "    conj: (%s)\n", cand.Error)
			} else {
				fmt.Fprintf(ctx.Stderr, "    conj: %s\n", cand.Conjugated)
			}
			if c.Labels {
				fmt.Fprintf(ctx.Stderr, "    kind: %s\n", cand.KindLabel)
				fmt.Fprintf(ctx.Stderr, "    steps: %s\n", strings.Join(cand.StepLabels, " > "))
			}
		}
	}
	return nil
}

func (c *AnalyzeCmd) words() ([]string, error) {
	if utf8.RuneCountInString(c.Word) > maxWordRunes {
		return nil, apperrors.NewValidation("word", fmt.Sprintf("longer than %d characters", maxWordRunes))
	}
	if c.File == "" {
		if c.Word == "" {
			return nil, apperrors.NewValidation("word", "a word or --file is required")
		}
		return []string{c.Word}, nil
	}

	data, err := readWordList(c.File)
	if err != nil {
		return nil, err
	}
	var words []string
	if c.Word != "" {
		words = append(words, c.Word)
	}
	n := len(words)
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "":
		case utf8.RuneCountInString(line) > maxWordRunes:
			logging.Warn("skipping long word", "path", c.File, "word", line)
		default:
			words = append(words, line)
		}
	}
	if len(words) == n {
		logging.Warn("word list is empty", "path", c.File)
	}
	return words, nil
}

// readWordList reads a word list, decompressing it when the name ends in .xz.
// Other compressed formats are refused rather than read as text.
func readWordList(path string) ([]byte, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".gz", ".bz2", ".zst", ".lz4", ".zip":
		return nil, apperrors.NewUnsupported("word list compression", ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.NewIO("read", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if ext == ".xz" {
		xr, err := xz.NewReader(f)
		if err != nil {
			return nil, apperrors.NewIO("decompress", path, err)
		}
		r = xr
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, apperrors.NewIO("read", path, err)
	}
	logging.Debug("word list loaded", "path", path, "compressed", ext == ".xz", "bytes", len(data))
	return data, nil
}

func analyze(word string, labels bool) analysis {
	roots := conj.Deconjugate(word)
	a := analysis{Word: word, Candidates: make([]candidate, 0, len(roots))}
	for _, r := range roots {
		cand := candidate{Root: r, Dict: r.DictForms()}
		if s, err := r.Conjugated(); err != nil {
			cand.Error = err.Error()
		} else {
			cand.Conjugated = s
		}
		if labels {
			cand.KindLabel = r.Kind.Label()
			for _, s := range r.Steps {
				cand.StepLabels = append(cand.StepLabels, s.Label())
			}
		}
		a.Candidates = append(a.Candidates, cand)
	}
	return a
}

// RenderCmd conjugates a root.
type RenderCmd struct {
	Root string `arg:"" help:"Root in notation form, e.g. '\"かえ\" GodanRu: Te'"`
}

func (c *RenderCmd) Run(ctx *kong.Context) error {
	root, err := notation.Parse(c.Root)
	if err != nil {
		return err
	}
	s, err := root.Conjugated()
	if err != nil {
		return err
	}
	fmt.Fprintln(ctx.Stdout, s)
	return nil
}

// DictCmd prints every citation form a dictionary may list a root under.
type DictCmd struct {
	Root string `arg:"" help:"Root in notation form"`
}

func (c *DictCmd) Run(ctx *kong.Context) error {
	root, err := notation.Parse(c.Root)
	if err != nil {
		return err
	}
	for _, form := range root.DictForms() {
		fmt.Fprintln(ctx.Stdout, form)
	}
	return nil
}

// LabelsCmd lists the taxonomy.
type LabelsCmd struct{}

func (c *LabelsCmd) Run(ctx *kong.Context) error {
	fmt.Fprintln(ctx.Stdout, "Root kinds:")
	for _, k := range conj.AllRootKinds() {
		fmt.Fprintf(ctx.Stdout, "  %-14s %-6s %s\n", k, conj.DictSuffix(k), k.Label())
	}
	fmt.Fprintln(ctx.Stdout)
	fmt.Fprintln(ctx.Stdout, "Steps:")
	for _, s := range conj.AllSteps() {
		derived := ""
		if k, ok := conj.RootKindOf(s); ok {
			derived = "-> " + k.String()
		}
		fmt.Fprintf(ctx.Stdout, "  %-14s %-16s %s\n", s, derived, s.Label())
	}
	return nil
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run(ctx *kong.Context) error {
	fmt.Fprintf(ctx.Stdout, "deconjinfo version %s\n", version)
	return nil
}

// run parses args and executes the selected command. It returns the
// process exit code: 0 on success, 1 when the command fails, 2 on a usage
// error.
func run(args []string, stdout, stderr io.Writer) int {
	var cli CLI
	exitCode := -1
	parser, err := kong.New(&cli,
		kong.Name("deconjinfo"),
		kong.Description("Japanese verb and adjective deconjugator"),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) { exitCode = code }),
	)
	if err != nil {
		fmt.Fprintf(stderr, "deconjinfo: %v\n", err)
		return 2
	}

	ctx, err := parser.Parse(args)
	if exitCode >= 0 {
		// --help and friends already printed and asked to exit.
		return exitCode
	}
	if err != nil {
		fmt.Fprintf(stderr, "deconjinfo: error: %v\n", err)
		return 2
	}

	// Both values were validated by kong's enum check.
	level, _ := logging.ParseLevel(cli.LogLevel)
	format, _ := logging.ParseFormat(cli.LogFormat)
	logging.InitLoggerWriter(stderr, level, format)

	if err := ctx.Run(); err != nil {
		logging.CommandError(ctx.Command(), err)
		var ve *apperrors.ValidationError
		if apperrors.As(err, &ve) {
			fmt.Fprintf(stderr, "deconjinfo: %v (see --help)\n", err)
		} else {
			fmt.Fprintf(stderr, "deconjinfo: %v\n", err)
		}
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
