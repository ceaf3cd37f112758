package conj

import (
	"fmt"
	"strings"

	apperrors "github.com/FocuswithJustin/kanaconj/core/errors"
	"github.com/FocuswithJustin/kanaconj/internal/logging"
)

// CombinationError reports a step the rule set cannot render for the kind
// it is applied to. It unwraps to errors.ErrUnsupported, so a caller
// rendering many candidates can skip the failures and keep the rest.
type CombinationError struct {
	// Kind is the acting kind at the failing step. Meaningless when
	// HasKind is false.
	Kind    RootKind
	HasKind bool
	// Prev is the step before the failing one when HasKind is false.
	Prev  Step
	Step  Step
	Index int
}

func (e *CombinationError) Error() string {
	if !e.HasKind {
		return fmt.Sprintf("unsupported conjugation: %s after %s (step %d)", e.Step, e.Prev, e.Index)
	}
	return fmt.Sprintf("unsupported conjugation: %s + %s (step %d)", e.Kind, e.Step, e.Index)
}

func (e *CombinationError) Unwrap() error {
	return apperrors.ErrUnsupported
}

// Render returns the suffix that conjugates a root of the given kind through
// steps. An empty chain renders the bare continuative stem.
func Render(kind RootKind, steps []Step) (string, error) {
	var sb strings.Builder
	if len(steps) == 0 {
		if kind.IsAdjective() {
			return "", nil
		}
		stem, ok := masuStem(kind)
		if !ok {
			return "", &CombinationError{Kind: kind, HasKind: true, Step: Stem}
		}
		return stem, nil
	}
	for i, step := range steps {
		acting := kind
		if i > 0 {
			k, ok := RootKindOf(steps[i-1])
			if !ok {
				// Irregular: the previous step is a terminal form with no kind
				// of its own. Only these few can follow it.
				switch step {
				case Ka:
					sb.WriteString("か")
				case Nda:
					sb.WriteString("んだ")
				case Nai:
					sb.WriteString("な")
					if disjoint(steps, i) {
						sb.WriteString("い")
					}
				default:
					logging.RenderGap("", step.String(), i, "after", steps[i-1].String())
					return "", &CombinationError{Prev: steps[i-1], Step: step, Index: i}
				}
				continue
			}
			acting = k
		}
		out, ok := renderStep(acting, step, disjoint(steps, i))
		if !ok {
			logging.RenderGap(acting.String(), step.String(), i)
			return "", &CombinationError{Kind: acting, HasKind: true, Step: step, Index: i}
		}
		sb.WriteString(out)
	}
	return sb.String(), nil
}

// Supports reports whether step has a defined form when applied directly to
// a root of the given kind.
func Supports(kind RootKind, step Step) bool {
	_, ok := renderStep(kind, step, true)
	return ok
}

// disjoint reports whether the step at i ends the conjugation sequence:
// it is last, or only a terminal particle follows it. Nda counts as terminal
// alongside Ka, so [Nai, Nda] renders ないんだ and not なんだ.
func disjoint(steps []Step, i int) bool {
	if i+1 >= len(steps) {
		return true
	}
	switch steps[i+1] {
	case Ka, Nda:
		return true
	}
	return false
}

// renderStep renders one step for the acting kind. The second result is
// false for combinations the rule set leaves undefined.
func renderStep(kind RootKind, step Step, last bool) (string, bool) {
	ending := func(s string) string {
		if last {
			return s
		}
		return ""
	}
	verbOnly := func(stem string, ok bool) (string, bool) {
		if kind.IsAdjective() {
			return "", false
		}
		return stem, ok
	}

	switch step {
	case Te:
		stem, ok := teStem(kind)
		if !ok {
			return "", false
		}
		return stem + teChar(kind), true
	case Ta:
		return taForm(kind)
	case Tari:
		ta, ok := taForm(kind)
		return ta + "り", ok
	case Tara:
		ta, ok := taForm(kind)
		return ta + "ら", ok
	case Nai:
		neg, ok := negStem(kind)
		return neg + "な" + ending("い"), ok
	case Nakatta:
		neg, ok := negStem(kind)
		return neg + "なかった", ok
	case Nakya:
		neg, ok := negStem(kind)
		return neg + "なきゃ", ok
	case Nu:
		neg, ok := verbOnly(negStem(kind))
		return neg + "ぬ", ok
	case Naide:
		neg, ok := verbOnly(negStem(kind))
		return neg + "ないで", ok
	case Zu:
		neg, ok := verbOnly(negStem(kind))
		return neg + "ず", ok
	case Volitional:
		return volitional(kind)
	case Imperative:
		return imperative(kind)
	case AdverbialKu:
		return "く", true
	case Masu:
		stem, ok := masuStem(kind)
		return stem + "ま" + ending("す"), ok
	case Masen:
		stem, ok := masuStem(kind)
		return stem + "ま" + ending("せん"), ok
	case Invitational:
		stem, ok := masuStem(kind)
		return stem + "ましょう", ok
	case Nasai:
		stem, ok := masuStem(kind)
		return stem + "なさい", ok
	case Nagara:
		stem, ok := masuStem(kind)
		return stem + "ながら", ok
	case Tai:
		stem, ok := masuStem(kind)
		return stem + "た" + ending("い"), ok
	case Stem:
		return masuStem(kind)
	case Continuous:
		return "い" + ending("る"), true
	case ContRuAbbrev:
		return ending("る"), true
	case Causative:
		stem, ok := causativeStem(kind)
		return stem + ending("る"), ok
	case Passive:
		stem, ok := passiveStem(kind)
		return stem + ending("る"), ok
	case Potential:
		stem, ok := eStem(kind, false)
		return stem + ending("る"), ok
	case Ba:
		stem, ok := eStem(kind, true)
		return stem + "ば", ok
	case Chau:
		stem, ok := chauStem(kind)
		return stem + ending("う"), ok
	case TeIkuAbbrev:
		stem, ok := verbOnly(teStem(kind))
		return stem + teChar(kind) + ending("く"), ok
	case TeOkuAbbrev:
		stem, ok := verbOnly(teStem(kind))
		to := "と"
		if teChar(kind) == "で" {
			to = "ど"
		}
		return stem + to + ending("く"), ok
	case Ka:
		return "か", true
	case Na:
		return "な", true
	case Katta:
		return "かった", true
	case Ki:
		return "き", true
	case Nda:
		return "んだ", true
	case Kereba:
		return "ければ", true
	case Sa:
		return "さ", true
	}
	return "", false
}

// negStem is the irrealis stem that ない, ぬ, ず and friends attach to.
func negStem(kind RootKind) (string, bool) {
	switch kind {
	case Ichidan:
		return "", true
	case GodanBu:
		return "ば", true
	case GodanMu:
		return "ま", true
	case GodanNu:
		return "な", true
	case GodanRu:
		return "ら", true
	case GodanSu:
		return "さ", true
	case GodanTsu:
		return "た", true
	case GodanU:
		return "わ", true
	case GodanGu:
		return "が", true
	case GodanKu, Iku:
		return "か", true
	case Kuru:
		return "こ", true
	case Suru, SpecialSuru:
		return "し", true
	case IAdjective:
		return "く", true
	case NaAdjective:
		return "じゃ", true
	}
	return "", false
}

// masuStem is the continuative stem that ます, たい, なさい attach to.
func masuStem(kind RootKind) (string, bool) {
	switch kind {
	case Ichidan:
		return "", true
	case GodanBu:
		return "び", true
	case GodanMu:
		return "み", true
	case GodanNu:
		return "に", true
	case GodanRu:
		return "り", true
	case GodanSu:
		return "し", true
	case GodanTsu:
		return "ち", true
	case GodanU:
		return "い", true
	case GodanGu:
		return "ぎ", true
	case GodanKu, Iku, Kuru:
		return "き", true
	case Suru, SpecialSuru:
		return "し", true
	}
	return "", false
}

// teStem is the euphonic stem before て/で.
func teStem(kind RootKind) (string, bool) {
	switch kind {
	case Ichidan, NaAdjective:
		return "", true
	case Kuru:
		return "き", true
	case IAdjective:
		return "く", true
	case GodanBu, GodanMu, GodanNu:
		return "ん", true
	case GodanRu, GodanTsu, GodanU, Iku:
		return "っ", true
	case GodanSu, Suru, SpecialSuru:
		return "し", true
	case GodanGu, GodanKu:
		return "い", true
	}
	return "", false
}

// teChar selects て or で. Voiced rows take で.
func teChar(kind RootKind) string {
	switch kind {
	case GodanGu, GodanNu, GodanMu, GodanBu, NaAdjective:
		return "で"
	}
	return "て"
}

// taForm is the full past ending including the euphonic stem.
func taForm(kind RootKind) (string, bool) {
	switch kind {
	case Ichidan:
		return "た", true
	case Kuru:
		return "きた", true
	case GodanBu, GodanMu, GodanNu:
		return "んだ", true
	case GodanRu, GodanTsu, GodanU, Iku:
		return "った", true
	case GodanSu, Suru, SpecialSuru:
		return "した", true
	case GodanGu:
		return "いだ", true
	case GodanKu:
		return "いた", true
	case IAdjective:
		return "かった", true
	case NaAdjective:
		return "だった", true
	}
	return "", false
}

// eStem is the e-row stem. Potential and ば differ for ichidan and the
// irregulars.
func eStem(kind RootKind, ba bool) (string, bool) {
	switch kind {
	case Ichidan:
		if ba {
			return "れ", true
		}
		return "られ", true
	case GodanBu:
		return "べ", true
	case GodanMu:
		return "め", true
	case GodanNu:
		return "ね", true
	case GodanRu:
		return "れ", true
	case GodanSu:
		return "せ", true
	case GodanTsu:
		return "て", true
	case GodanU:
		return "え", true
	case GodanGu:
		return "げ", true
	case GodanKu, Iku:
		return "け", true
	case Kuru:
		if ba {
			return "くれ", true
		}
		return "こられ", true
	case Suru, SpecialSuru:
		// The potential of する is the separate verb できる.
		if ba {
			return "すれ", true
		}
	case IAdjective:
		if ba {
			return "けれ", true
		}
	case NaAdjective:
		if ba {
			return "なら", true
		}
	}
	return "", false
}

func volitional(kind RootKind) (string, bool) {
	switch kind {
	case Ichidan:
		return "よう", true
	case Kuru:
		return "こよう", true
	case GodanBu:
		return "ぼう", true
	case GodanMu:
		return "もう", true
	case GodanNu:
		return "のう", true
	case GodanRu:
		return "ろう", true
	case GodanSu:
		return "そう", true
	case GodanTsu:
		return "とう", true
	case GodanU:
		return "おう", true
	case GodanGu:
		return "ごう", true
	case GodanKu, Iku:
		return "こう", true
	case Suru, SpecialSuru:
		return "しよう", true
	case IAdjective:
		return "かろう", true
	case NaAdjective:
		return "だろう", true
	}
	return "", false
}

func imperative(kind RootKind) (string, bool) {
	switch kind {
	case Ichidan:
		return "ろ", true
	case GodanBu:
		return "べ", true
	case GodanMu:
		return "め", true
	case GodanNu:
		return "ね", true
	case GodanRu:
		return "れ", true
	case GodanSu:
		return "せ", true
	case GodanTsu:
		return "て", true
	case GodanU:
		return "え", true
	case GodanGu:
		return "げ", true
	case GodanKu, Iku:
		return "け", true
	case Kuru:
		return "こい", true
	case Suru, SpecialSuru:
		return "しろ", true
	}
	return "", false
}

func causativeStem(kind RootKind) (string, bool) {
	switch kind {
	case Ichidan, Suru, SpecialSuru:
		return "させ", true
	case Kuru:
		return "こさせ", true
	case IAdjective, NaAdjective:
		return "", false
	}
	neg, ok := negStem(kind)
	return neg + "せ", ok
}

func passiveStem(kind RootKind) (string, bool) {
	switch kind {
	case Ichidan:
		return "られ", true
	case Kuru:
		return "こられ", true
	case Suru, SpecialSuru:
		return "され", true
	case IAdjective, NaAdjective:
		return "", false
	}
	neg, ok := negStem(kind)
	return neg + "れ", ok
}

// chauStem is the te stem fused with しまう: ちゃ, or じゃ after voiced rows.
func chauStem(kind RootKind) (string, bool) {
	if kind.IsAdjective() {
		return "", false
	}
	stem, ok := teStem(kind)
	if !ok {
		return "", false
	}
	if teChar(kind) == "で" {
		return stem + "じゃ", true
	}
	return stem + "ちゃ", true
}
