package conj

import (
	"strconv"
	"strings"
)

// Root is one candidate decomposition of a surface form: the residual stem
// text, its conjugation class, and the steps applied to it.
//
// Steps are innermost first: Steps[0] is applied directly to the root and
// every later step is applied to the result of the one before it.
//
// A Root is only a proposal. Use a dictionary to decide whether the word
// actually exists.
type Root struct {
	Text  string   `json:"text"`
	Kind  RootKind `json:"kind"`
	Steps []Step   `json:"steps"`
}

// Equal reports whether r and o have the same text, kind and step chain.
func (r Root) Equal(o Root) bool {
	if r.Text != o.Text || r.Kind != o.Kind || len(r.Steps) != len(o.Steps) {
		return false
	}
	for i := range r.Steps {
		if r.Steps[i] != o.Steps[i] {
			return false
		}
	}
	return true
}

// String returns a debug form such as `"かえ" GodanRu: Te`.
func (r Root) String() string {
	var sb strings.Builder
	sb.WriteString(strconv.Quote(r.Text))
	sb.WriteByte(' ')
	sb.WriteString(r.Kind.String())
	sb.WriteByte(':')
	for _, s := range r.Steps {
		sb.WriteByte(' ')
		sb.WriteString(s.String())
	}
	return sb.String()
}

// DictString returns the dictionary citation form, e.g. しゃべ + Ichidan = しゃべる.
func (r Root) DictString() string {
	return r.Text + DictSuffix(r.Kind)
}

// DictForms returns every citation form a dictionary might list the root
// under. Suru verbs are tried both with and without する.
func (r Root) DictForms() []string {
	if r.Kind.IsSuru() {
		if r.Text == "" {
			return []string{r.DictString()}
		}
		return []string{r.DictString(), r.Text}
	}
	return []string{r.DictString()}
}

// RenderSuffix returns the text that must be appended to r.Text to
// reproduce the conjugated form.
func (r Root) RenderSuffix() (string, error) {
	return Render(r.Kind, r.Steps)
}

// Conjugated returns r.Text followed by its rendered suffix.
func (r Root) Conjugated() (string, error) {
	suffix, err := r.RenderSuffix()
	if err != nil {
		return "", err
	}
	return r.Text + suffix, nil
}

// Contains reports whether roots holds a root equal to want.
func Contains(roots []Root, want Root) bool {
	for _, r := range roots {
		if r.Equal(want) {
			return true
		}
	}
	return false
}
