package conj

import (
	apperrors "github.com/FocuswithJustin/kanaconj/core/errors"
)

// Step is one grammatical transformation layered onto a root.
type Step int

const (
	// Te is the ~て form.
	Te Step = iota
	// Nai is the casual present negative.
	Nai
	// Nu is the archaic negative ぬ.
	Nu
	// Naide is "without doing" (ないで); not simply Nai followed by Te.
	Naide
	// Nakatta is the casual past negative.
	Nakatta
	// Ta is the casual past.
	Ta
	// Volitional is the よう/おう form.
	Volitional
	// AdverbialKu is the adjective adverbial く.
	AdverbialKu
	// Imperative is the plain command form.
	Imperative
	// Masu is the polite form.
	Masu
	// Masen is the polite negative.
	Masen
	// Invitational is ~ましょう.
	Invitational
	// Continuous is ~ている (after Te).
	Continuous
	// ContRuAbbrev is ~てる, the contracted continuous.
	ContRuAbbrev
	// Zu is the literary negative ず.
	Zu
	// Ka is the question particle.
	Ka
	// Tari lists actions ("such things as").
	Tari
	// Tara is the conditional/temporal たら.
	Tara
	// Nasai is the soft command なさい.
	Nasai
	// Nagara is "while doing".
	Nagara
	Causative
	Passive
	// Tai is "want to".
	Tai
	// Ba is the provisional conditional.
	Ba
	Potential
	// Chau is the てしまう/でしまう contraction.
	Chau
	// Na is the attributive な of na-adjectives.
	Na
	// Katta is the i-adjective past.
	Katta
	// Stem takes the continuative stem of a verb.
	Stem
	// Ki is the archaic attributive き of i-adjectives.
	Ki
	// Nda is the contracted のだ.
	Nda
	// Kereba is the i-adjective conditional ければ.
	Kereba
	// Nakya is the contracted なければ.
	Nakya
	// Sa is the i-adjective nominalizer さ.
	Sa
	// TeIkuAbbrev is ていく contracted to てく.
	TeIkuAbbrev
	// TeOkuAbbrev is ておく contracted to とく.
	TeOkuAbbrev

	numSteps int = iota
)

var stepNames = [numSteps]string{
	Te:           "Te",
	Nai:          "Nai",
	Nu:           "Nu",
	Naide:        "Naide",
	Nakatta:      "Nakatta",
	Ta:           "Ta",
	Volitional:   "Volitional",
	AdverbialKu:  "AdverbialKu",
	Imperative:   "Imperative",
	Masu:         "Masu",
	Masen:        "Masen",
	Invitational: "Invitational",
	Continuous:   "Continuous",
	ContRuAbbrev: "ContRuAbbrev",
	Zu:           "Zu",
	Ka:           "Ka",
	Tari:         "Tari",
	Tara:         "Tara",
	Nasai:        "Nasai",
	Nagara:       "Nagara",
	Causative:    "Causative",
	Passive:      "Passive",
	Tai:          "Tai",
	Ba:           "Ba",
	Potential:    "Potential",
	Chau:         "Chau",
	Na:           "Na",
	Katta:        "Katta",
	Stem:         "Stem",
	Ki:           "Ki",
	Nda:          "Nda",
	Kereba:       "Kereba",
	Nakya:        "Nakya",
	Sa:           "Sa",
	TeIkuAbbrev:  "TeIkuAbbrev",
	TeOkuAbbrev:  "TeOkuAbbrev",
}

// AllSteps returns every step in declaration order.
func AllSteps() []Step {
	steps := make([]Step, numSteps)
	for i := range steps {
		steps[i] = Step(i)
	}
	return steps
}

// Valid reports whether s is one of the declared steps.
func (s Step) Valid() bool {
	return s >= 0 && int(s) < numSteps
}

func (s Step) String() string {
	if !s.Valid() {
		return "Step(?)"
	}
	return stepNames[s]
}

// ParseStep returns the step whose String form is name.
func ParseStep(name string) (Step, error) {
	for i, n := range stepNames {
		if n == name {
			return Step(i), nil
		}
	}
	return 0, apperrors.NewNotFound("step", name)
}

// RootKindOf reports the kind a step's result conjugates as when further
// steps are layered on top of it. Particles and terminal forms have none.
func RootKindOf(s Step) (RootKind, bool) {
	switch s {
	case Te, Continuous, ContRuAbbrev, Potential, Causative:
		return Ichidan, true
	case Nai, Tai:
		return IAdjective, true
	case Masu:
		return GodanSu, true
	case Chau:
		return GodanU, true
	case TeIkuAbbrev:
		return Iku, true
	case TeOkuAbbrev:
		return GodanKu, true
	}
	return 0, false
}

// MarshalText encodes the step by name.
func (s Step) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, apperrors.NewNotFound("step", s.String())
	}
	return []byte(stepNames[s]), nil
}

// UnmarshalText decodes a step name.
func (s *Step) UnmarshalText(b []byte) error {
	v, err := ParseStep(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
