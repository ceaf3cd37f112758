package conj

import (
	apperrors "github.com/FocuswithJustin/kanaconj/core/errors"
)

// RootKind is the conjugation class of a root word.
type RootKind int

const (
	// Ichidan is a vowel-stem verb (食べる, 見る).
	Ichidan RootKind = iota
	GodanBu
	GodanMu
	GodanNu
	GodanRu
	GodanSu
	GodanTsu
	GodanU
	GodanGu
	GodanKu
	// Iku is the irregular 行く. Its text is the stem without the final く.
	Iku
	// Kuru is the irregular 来る. Its text never contains the こ/き/く stem
	// kana; the conjugation tables supply it.
	Kuru
	// Suru is a する verb or suru-compound noun.
	//
	// Some dictionaries list suru verbs with the する suffix and some without,
	// so lookups need to try both. See Root.DictForms.
	Suru
	// SpecialSuru is a suru verb that conjugates differently in some forms
	// (愛する). The same dictionary caveat as Suru applies.
	SpecialSuru
	IAdjective
	NaAdjective

	numRootKinds int = iota
)

var kindNames = [numRootKinds]string{
	Ichidan:     "Ichidan",
	GodanBu:     "GodanBu",
	GodanMu:     "GodanMu",
	GodanNu:     "GodanNu",
	GodanRu:     "GodanRu",
	GodanSu:     "GodanSu",
	GodanTsu:    "GodanTsu",
	GodanU:      "GodanU",
	GodanGu:     "GodanGu",
	GodanKu:     "GodanKu",
	Iku:         "Iku",
	Kuru:        "Kuru",
	Suru:        "Suru",
	SpecialSuru: "SpecialSuru",
	IAdjective:  "IAdjective",
	NaAdjective: "NaAdjective",
}

var dictSuffixes = [numRootKinds]string{
	Ichidan:     "る",
	GodanBu:     "ぶ",
	GodanMu:     "む",
	GodanNu:     "ぬ",
	GodanRu:     "る",
	GodanSu:     "す",
	GodanTsu:    "つ",
	GodanU:      "う",
	GodanGu:     "ぐ",
	GodanKu:     "く",
	Iku:         "く",
	Kuru:        "くる",
	Suru:        "する",
	SpecialSuru: "する",
	IAdjective:  "い",
	NaAdjective: "",
}

// AllRootKinds returns every root kind in declaration order.
func AllRootKinds() []RootKind {
	kinds := make([]RootKind, numRootKinds)
	for i := range kinds {
		kinds[i] = RootKind(i)
	}
	return kinds
}

// Valid reports whether k is one of the declared kinds.
func (k RootKind) Valid() bool {
	return k >= 0 && int(k) < numRootKinds
}

func (k RootKind) String() string {
	if !k.Valid() {
		return "RootKind(?)"
	}
	return kindNames[k]
}

// ParseRootKind returns the kind whose String form is name.
func ParseRootKind(name string) (RootKind, error) {
	for i, n := range kindNames {
		if n == name {
			return RootKind(i), nil
		}
	}
	return 0, apperrors.NewNotFound("root kind", name)
}

// DictSuffix returns the ending that turns a root's text into its dictionary
// form. Na-adjectives are cited bare.
func DictSuffix(kind RootKind) string {
	if !kind.Valid() {
		return ""
	}
	return dictSuffixes[kind]
}

// IsSuru reports whether k is one of the two する classes.
func (k RootKind) IsSuru() bool {
	return k == Suru || k == SpecialSuru
}

// IsAdjective reports whether k is an adjective class.
func (k RootKind) IsAdjective() bool {
	return k == IAdjective || k == NaAdjective
}

// MarshalText encodes the kind by name.
func (k RootKind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, apperrors.NewNotFound("root kind", k.String())
	}
	return []byte(kindNames[k]), nil
}

// UnmarshalText decodes a kind name.
func (k *RootKind) UnmarshalText(b []byte) error {
	v, err := ParseRootKind(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}
