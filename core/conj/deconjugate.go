package conj

import (
	"slices"

	"github.com/FocuswithJustin/kanaconj/internal/logging"
)

// Deconjugate returns every root and step chain that could plausibly have
// produced word. It never fails; an unrecognized word yields only the two
// trivial candidates every residual gets (bare i-adjective, ichidan stem),
// and an empty word yields exactly those with empty text.
//
// Candidates come back in discovery order, which says nothing about how
// likely they are. Filtering against a dictionary is the caller's job.
func Deconjugate(word string) []Root {
	d := &deconjugator{}
	d.expr([]rune(word), nil)
	logging.Deconjugation(word, len(d.roots))
	return d.roots
}

// chain is a persistent step list. Prepending shares the tail, so sibling
// branches of the search never copy each other's steps.
type chain struct {
	step Step
	next *chain
}

func (c *chain) with(s Step) *chain {
	return &chain{step: s, next: c}
}

func (c *chain) first() (Step, bool) {
	if c == nil {
		return 0, false
	}
	return c.step, true
}

func (c *chain) slice() []Step {
	n := 0
	for p := c; p != nil; p = p.next {
		n++
	}
	steps := make([]Step, 0, n)
	for p := c; p != nil; p = p.next {
		steps = append(steps, p.step)
	}
	return steps
}

type deconjugator struct {
	roots []Root
}

// push records a candidate. GodanKu roots ending in と/ど and Iku roots
// ending in て/で are also read as the とく and てく contractions.
func (d *deconjugator) push(text []rune, kind RootKind, s *chain) {
	d.roots = append(d.roots, Root{Text: string(text), Kind: kind, Steps: s.slice()})
	switch kind {
	case GodanKu:
		switch lastRune(text) {
		case 'と':
			d.teRoot(trim(text, 1), s.with(TeOkuAbbrev))
		case 'ど':
			d.deRoot(trim(text, 1), s.with(TeOkuAbbrev))
		}
	case Iku:
		switch lastRune(text) {
		case 'て':
			d.teRoot(trim(text, 1), s.with(TeIkuAbbrev))
		case 'で':
			d.deRoot(trim(text, 1), s.with(TeIkuAbbrev))
		}
	}
}

func (d *deconjugator) expr(chars []rune, s *chain) {
	d.push(chars, IAdjective, s)
	d.push(chars, Ichidan, s.with(Stem))

	switch {
	case endsWith(chars, "ければ"):
		d.iAdjRoot(trim(chars, 3), s.with(Kereba))
		return
	case endsWith(chars, "なきゃ"):
		d.negativeRoot(trim(chars, 3), s.with(Nakya))
		return
	case endsWith(chars, "ます"):
		d.masuRoot(trim(chars, 2), s.with(Masu))
		return
	}
	if endsWith(chars, "ません") {
		d.masuRoot(trim(chars, 3), s.with(Masen))
	}
	switch {
	case endsWith(chars, "てく"):
		d.teRoot(trim(chars, 2), s.with(TeIkuAbbrev))
	case endsWith(chars, "でく"):
		d.deRoot(trim(chars, 2), s.with(TeIkuAbbrev))
	case endsWith(chars, "とく"):
		d.teRoot(trim(chars, 2), s.with(TeOkuAbbrev))
	case endsWith(chars, "どく"):
		d.deRoot(trim(chars, 2), s.with(TeOkuAbbrev))
	}

	if len(chars) == 0 {
		return
	}
	rest := trim(chars, 1)
	switch chars[len(chars)-1] {
	case 'て':
		d.te(rest, s)
	case 'で':
		d.de(rest, s)
	case 'た':
		d.ta(rest, s)
	case 'だ':
		d.da(rest, s)
	case 'い':
		d.i(rest, s)
	case 'う':
		d.u(rest, s)
	case 'く':
		d.iAdjRoot(rest, s.with(AdverbialKu))
	case 'ろ':
		d.ro(rest, s)
	case 'れ':
		d.push(rest, GodanRu, s.with(Imperative))
	case 'け':
		d.push(rest, GodanKu, s.with(Imperative))
		d.push(rest, Iku, s.with(Imperative))
	case 'ね':
		d.push(rest, GodanNu, s.with(Imperative))
	case 'べ':
		d.push(rest, GodanBu, s.with(Imperative))
	case 'め':
		d.push(rest, GodanMu, s.with(Imperative))
	case 'げ':
		d.push(rest, GodanGu, s.with(Imperative))
	case 'る':
		d.ichidanRoot(rest, s, false)
	case 'ず':
		d.negativeRoot(rest, s.with(Zu))
	case 'ぬ':
		d.negativeRoot(rest, s.with(Nu))
	case 'か':
		d.expr(rest, s.with(Ka))
	case 'り':
		d.ri(rest, s)
	case 'ら':
		d.ra(rest, s)
	case 'ば':
		d.ba(rest, s)
	case 'な':
		d.push(rest, NaAdjective, s.with(Na))
	case 'さ':
		d.iAdjRoot(rest, s.with(Sa))
	case 'せ':
		d.push(rest, GodanSu, s.with(Imperative))
		d.causative(rest, s.with(Stem))
	case 'し':
		d.push(rest, GodanSu, s.with(Stem))
		d.push(rest, Suru, s.with(Stem))
		d.push(rest, SpecialSuru, s.with(Stem))
	case 'き':
		d.ki(rest, s)
	case 'み':
		d.push(rest, GodanMu, s.with(Stem))
	case 'ぎ':
		d.push(rest, GodanGu, s.with(Stem))
	case 'び':
		d.push(rest, GodanBu, s.with(Stem))
	case 'ち':
		d.push(rest, GodanTsu, s.with(Stem))
	case 'に':
		d.push(rest, GodanNu, s.with(Stem))
	}
}

// iAdjRoot pushes an i-adjective root that already carries a suffix, and
// reads a trailing な or た as the adjective-shaped ない or たい of another
// root. The bare candidate from expr never comes through here.
func (d *deconjugator) iAdjRoot(chars []rune, s *chain) {
	d.push(chars, IAdjective, s)
	if s == nil {
		return
	}
	switch lastRune(chars) {
	case 'な':
		d.negativeRoot(trim(chars, 1), s.with(Nai))
	case 'た':
		d.masuRoot(trim(chars, 1), s.with(Tai))
	}
}

func (d *deconjugator) ki(chars []rune, s *chain) {
	d.push(chars, GodanKu, s.with(Stem))
	d.iAdjRoot(chars, s.with(Ki))
	if len(chars) == 0 {
		d.push(chars, Kuru, s.with(Stem))
	}
	if ikuStem(chars) {
		d.push(chars, Iku, s.with(Stem))
	}
}

func (d *deconjugator) ba(chars []rune, s *chain) {
	s = s.with(Ba)
	d.eRoot(chars, s, true)
	if endsWith(chars, "なら") {
		d.push(trim(chars, 2), NaAdjective, s)
	}
}

// eRoot handles the e-row stem shared by the potential and ば. The two only
// disagree for ichidan verbs and the irregulars.
func (d *deconjugator) eRoot(chars []rune, s *chain, ba bool) {
	if len(chars) == 0 {
		return
	}
	rest := trim(chars, 1)
	switch chars[len(chars)-1] {
	case 'え':
		d.push(rest, GodanU, s)
	case 'け':
		d.push(rest, GodanKu, s)
		if ikuStem(rest) {
			d.push(rest, Iku, s)
		}
	case 'げ':
		d.push(rest, GodanGu, s)
	case 'せ':
		d.push(rest, GodanSu, s)
	case 'て':
		d.push(rest, GodanTsu, s)
	case 'ね':
		d.push(rest, GodanNu, s)
	case 'べ':
		d.push(rest, GodanBu, s)
	case 'め':
		d.push(rest, GodanMu, s)
	case 'れ':
		d.push(rest, GodanRu, s)
		if ba {
			d.ichidanRoot(rest, s, false)
			switch lastRune(rest) {
			case 'く':
				d.push(trim(rest, 1), Kuru, s)
			case 'す':
				d.push(trim(rest, 1), Suru, s)
				d.push(trim(rest, 1), SpecialSuru, s)
			}
			return
		}
		if lastRune(rest) == 'ら' {
			stem := trim(rest, 1)
			d.ichidanRoot(stem, s, false)
			if lastRune(stem) == 'こ' {
				d.push(trim(stem, 1), Kuru, s)
			}
		}
	}
}

func (d *deconjugator) ra(chars []rune, s *chain) {
	rest := trim(chars, 1)
	switch lastRune(chars) {
	case 'が':
		if lastRune(rest) == 'な' {
			d.masuRoot(trim(rest, 1), s.with(Nagara))
		}
	case 'た':
		d.taRoot(rest, s.with(Tara))
	case 'だ':
		d.daRoot(rest, s.with(Tara))
	}
}

func (d *deconjugator) ri(chars []rune, s *chain) {
	d.push(chars, GodanRu, s.with(Stem))
	rest := trim(chars, 1)
	switch lastRune(chars) {
	case 'た':
		d.taRoot(rest, s.with(Tari))
	case 'だ':
		d.daRoot(rest, s.with(Tari))
	}
}

// iContRoot recognizes the い of ている/でいる.
func (d *deconjugator) iContRoot(chars []rune, s *chain) {
	switch lastRune(chars) {
	case 'て':
		d.te(trim(chars, 1), s.with(Continuous))
	case 'で':
		d.de(trim(chars, 1), s.with(Continuous))
	}
}

func (d *deconjugator) causative(chars []rune, s *chain) {
	s = s.with(Causative)
	if lastRune(chars) == 'さ' {
		stem := trim(chars, 1)
		d.ichidanRoot(stem, s, true)
		if lastRune(stem) == 'こ' {
			d.push(trim(stem, 1), Kuru, s)
		}
	}
	d.godanNegativeRoot(chars, s)
}

func (d *deconjugator) passive(chars []rune, s *chain) {
	s = s.with(Passive)
	switch lastRune(chars) {
	case 'ら':
		stem := trim(chars, 1)
		d.ichidanRoot(stem, s, false)
		if lastRune(stem) == 'こ' {
			d.push(trim(stem, 1), Kuru, s)
		}
	case 'さ':
		d.push(trim(chars, 1), Suru, s)
		d.push(trim(chars, 1), SpecialSuru, s)
	}
	d.godanNegativeRoot(chars, s)
}

func (d *deconjugator) i(chars []rune, s *chain) {
	if len(chars) == 0 {
		return
	}
	rest := trim(chars, 1)
	switch chars[len(chars)-1] {
	case 'な':
		d.negativeRoot(rest, s.with(Nai))
	case 'さ':
		if lastRune(rest) == 'な' {
			d.masuRoot(trim(rest, 1), s.with(Nasai))
		}
	case 'こ':
		d.push(rest, Kuru, s.with(Imperative))
	case 'た':
		d.masuRoot(rest, s.with(Tai))
	}
	d.push(chars, GodanU, s.with(Stem))
}

// negativeRoot covers every kind whose negative stem could end chars.
func (d *deconjugator) negativeRoot(chars []rune, s *chain) {
	d.godanNegativeRoot(chars, s)
	d.ichidanRoot(chars, s, false)
	if lastRune(chars) == 'く' {
		d.iAdjRoot(trim(chars, 1), s)
	}
	if endsWith(chars, "じゃ") {
		d.push(trim(chars, 2), NaAdjective, s)
	}
}

// ichidanRoot treats chars as an ichidan stem and then looks for the
// ichidan-shaped forms that end in it: potential, causative, passive and
// the continuous いる/てる.
func (d *deconjugator) ichidanRoot(chars []rune, s *chain, suru bool) {
	d.push(chars, Ichidan, s)
	if suru {
		d.push(chars, Suru, s)
		d.push(chars, SpecialSuru, s)
	}
	if first, ok := s.first(); !ok || first != Potential {
		d.eRoot(chars, s.with(Potential), false)
	}
	rest := trim(chars, 1)
	switch lastRune(chars) {
	case 'て':
		// てる only when it ends the word; otherwise this is て plus an
		// ichidan-shaped suffix handled elsewhere.
		if s == nil {
			s = s.with(ContRuAbbrev)
		}
		d.te(rest, s)
	case 'で':
		if s == nil {
			s = s.with(ContRuAbbrev)
		}
		d.de(rest, s)
	case 'い':
		d.iContRoot(rest, s)
	case 'せ':
		d.causative(rest, s)
	case 'れ':
		d.passive(rest, s)
	}
}

func (d *deconjugator) godanNegativeRoot(chars []rune, s *chain) {
	if len(chars) == 0 {
		return
	}
	rest := trim(chars, 1)
	switch chars[len(chars)-1] {
	case 'ら':
		d.push(rest, GodanRu, s)
	case 'な':
		d.push(rest, GodanNu, s)
	case 'か':
		d.push(rest, GodanKu, s)
		if ikuStem(rest) {
			d.push(rest, Iku, s)
		}
	case 'が':
		d.push(rest, GodanGu, s)
	case 'ば':
		d.push(rest, GodanBu, s)
	case 'わ':
		d.push(rest, GodanU, s)
	case 'さ':
		d.push(rest, GodanSu, s)
	case 'た':
		d.push(rest, GodanTsu, s)
	case 'ま':
		d.push(rest, GodanMu, s)
	case 'し':
		d.push(rest, Suru, s)
		d.push(rest, SpecialSuru, s)
	case 'こ':
		d.push(rest, Kuru, s)
	case 'せ':
		d.causative(rest, s)
	}
}

func (d *deconjugator) te(chars []rune, s *chain) {
	d.push(chars, GodanTsu, s.with(Imperative))
	d.teRoot(chars, s.with(Te))
}

// teRoot covers every kind whose te stem could end chars, for the voiceless て.
func (d *deconjugator) teRoot(chars []rune, s *chain) {
	rest := trim(chars, 1)
	switch lastRune(chars) {
	case 'っ':
		d.push(rest, GodanRu, s)
		d.push(rest, GodanTsu, s)
		d.push(rest, GodanU, s)
		d.push(rest, Iku, s)
	case 'い':
		d.push(rest, GodanKu, s)
	case 'し':
		d.push(rest, GodanSu, s)
		d.push(rest, Suru, s)
		d.push(rest, SpecialSuru, s)
	case 'き':
		d.push(rest, Kuru, s)
		d.push(chars, Ichidan, s)
	case 'く':
		d.iAdjRoot(rest, s)
	default:
		d.push(chars, Ichidan, s)
	}
}

func (d *deconjugator) de(chars []rune, s *chain) {
	if endsWith(chars, "ない") {
		d.negativeRoot(trim(chars, 2), s.with(Naide))
		return
	}
	d.deRoot(chars, s.with(Te))
}

// deRoot is teRoot for the voiced で.
func (d *deconjugator) deRoot(chars []rune, s *chain) {
	rest := trim(chars, 1)
	switch lastRune(chars) {
	case 'い':
		d.push(rest, GodanGu, s)
	case 'ん':
		d.push(rest, GodanBu, s)
		d.push(rest, GodanNu, s)
		d.push(rest, GodanMu, s)
	}
}

func (d *deconjugator) ta(chars []rune, s *chain) {
	past := s.with(Ta)
	d.taRoot(chars, past)
	if len(chars) == 0 {
		return
	}
	rest := trim(chars, 1)
	switch chars[len(chars)-1] {
	case 'っ':
		if lastRune(rest) == 'ゃ' {
			d.smallYa(trim(rest, 1), past)
		}
		if lastRune(rest) == 'か' {
			adj := trim(rest, 1)
			d.iAdjRoot(adj, s.with(Katta))
			if lastRune(adj) == 'な' {
				d.negativeRoot(trim(adj, 1), s.with(Nakatta))
			}
		}
	case 'い':
		d.iContRoot(rest, past)
	case 'て':
		d.te(rest, past.with(ContRuAbbrev))
	case 'で':
		d.de(rest, past.with(ContRuAbbrev))
	}
}

func (d *deconjugator) taRoot(chars []rune, s *chain) {
	d.eRoot(chars, s.with(Potential), false)
	rest := trim(chars, 1)
	switch lastRune(chars) {
	case 'っ':
		d.push(rest, GodanRu, s)
		d.push(rest, GodanTsu, s)
		d.push(rest, GodanU, s)
		d.push(rest, Iku, s)
	case 'し':
		if lastRune(rest) == 'ま' {
			d.masuRoot(trim(rest, 1), s.with(Masu))
		}
		d.push(rest, GodanSu, s)
		d.push(rest, Suru, s)
		d.push(rest, SpecialSuru, s)
	case 'い':
		d.push(rest, GodanKu, s)
	case 'き':
		d.push(rest, Kuru, s)
		d.push(chars, Ichidan, s)
	default:
		d.push(chars, Ichidan, s)
	}
}

func (d *deconjugator) da(chars []rune, s *chain) {
	d.daRoot(chars, s.with(Ta))
	if lastRune(chars) == 'ん' {
		d.expr(trim(chars, 1), s.with(Nda))
	}
}

func (d *deconjugator) daRoot(chars []rune, s *chain) {
	rest := trim(chars, 1)
	switch lastRune(chars) {
	case 'ん':
		d.push(rest, GodanBu, s)
		d.push(rest, GodanMu, s)
		d.push(rest, GodanNu, s)
	case 'い':
		d.push(rest, GodanGu, s)
	}
}

func (d *deconjugator) u(chars []rune, s *chain) {
	if len(chars) == 0 {
		return
	}
	rest := trim(chars, 1)
	vol := s.with(Volitional)
	switch chars[len(chars)-1] {
	case 'よ':
		d.push(rest, Ichidan, vol)
		switch lastRune(rest) {
		case 'こ':
			d.push(trim(rest, 1), Kuru, vol)
		case 'し':
			d.push(trim(rest, 1), Suru, vol)
			d.push(trim(rest, 1), SpecialSuru, vol)
		}
	case 'ょ':
		if endsWith(rest, "まし") {
			d.masuRoot(trim(rest, 2), s.with(Invitational))
		}
	case 'ゃ':
		d.smallYa(rest, s)
	case 'ぼ':
		d.push(rest, GodanBu, vol)
	case 'も':
		d.push(rest, GodanMu, vol)
	case 'の':
		d.push(rest, GodanNu, vol)
	case 'ろ':
		d.push(rest, GodanRu, vol)
	case 'そ':
		d.push(rest, GodanSu, vol)
	case 'と':
		d.push(rest, GodanTsu, vol)
	case 'こ':
		d.push(rest, GodanKu, vol)
		d.push(rest, Iku, vol)
	case 'ご':
		d.push(rest, GodanGu, vol)
	case 'お':
		d.push(rest, GodanU, vol)
	}
}

// smallYa recognizes ちゃ/じゃ, the contracted てしまう. chars ends in
// the ち or じ.
func (d *deconjugator) smallYa(chars []rune, s *chain) {
	rest := trim(chars, 1)
	switch lastRune(chars) {
	case 'ち':
		d.teRoot(rest, s.with(Chau))
	case 'じ':
		d.deRoot(rest, s.with(Chau))
	}
}

func (d *deconjugator) ro(chars []rune, s *chain) {
	d.push(chars, Ichidan, s.with(Imperative))
	if lastRune(chars) == 'し' {
		d.push(trim(chars, 1), Suru, s.with(Imperative))
		d.push(trim(chars, 1), SpecialSuru, s.with(Imperative))
	}
}

// masuRoot covers every kind whose continuative stem could end chars.
func (d *deconjugator) masuRoot(chars []rune, s *chain) {
	d.push(chars, Ichidan, s)
	if len(chars) == 0 {
		return
	}
	rest := trim(chars, 1)
	switch chars[len(chars)-1] {
	case 'い':
		d.push(rest, GodanU, s)
	case 'き':
		d.push(rest, GodanKu, s)
		d.push(rest, Kuru, s)
		if ikuStem(rest) {
			d.push(rest, Iku, s)
		}
	case 'ぎ':
		d.push(rest, GodanGu, s)
	case 'し':
		d.push(rest, GodanSu, s)
		d.push(rest, Suru, s)
		d.push(rest, SpecialSuru, s)
	case 'ち':
		d.push(rest, GodanTsu, s)
	case 'に':
		d.push(rest, GodanNu, s)
	case 'び':
		d.push(rest, GodanBu, s)
	case 'み':
		d.push(rest, GodanMu, s)
	case 'り':
		d.push(rest, GodanRu, s)
	}
}

// ikuStem reports whether chars could be the stem of 行く: い or ゆ, or the
// て/で of the contracted てく.
func ikuStem(chars []rune) bool {
	switch lastRune(chars) {
	case 'い', 'ゆ', 'て', 'で':
		return true
	}
	return false
}

func lastRune(chars []rune) rune {
	if len(chars) == 0 {
		return 0
	}
	return chars[len(chars)-1]
}

// trim drops the last n runes, or everything when chars is shorter.
func trim(chars []rune, n int) []rune {
	if n >= len(chars) {
		return chars[:0]
	}
	return chars[:len(chars)-n]
}

func endsWith(chars []rune, suffix string) bool {
	want := []rune(suffix)
	if len(want) > len(chars) {
		return false
	}
	return slices.Equal(chars[len(chars)-len(want):], want)
}
