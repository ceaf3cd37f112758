package conj

// Display labels for presentation layers. The engines never read them.

var kindLabels = [numRootKinds]string{
	Ichidan:     "ichidan verb",
	GodanBu:     "godan verb (ぶ)",
	GodanMu:     "godan verb (む)",
	GodanNu:     "godan verb (ぬ)",
	GodanRu:     "godan verb (る)",
	GodanSu:     "godan verb (す)",
	GodanTsu:    "godan verb (つ)",
	GodanU:      "godan verb (う)",
	GodanGu:     "godan verb (ぐ)",
	GodanKu:     "godan verb (く)",
	Iku:         "irregular verb 行く",
	Kuru:        "irregular verb 来る",
	Suru:        "suru verb",
	SpecialSuru: "special suru verb",
	IAdjective:  "i-adjective",
	NaAdjective: "na-adjective",
}

var stepLabels = [numSteps]string{
	Te:           "te-form",
	Nai:          "negative",
	Nu:           "archaic negative (ぬ)",
	Naide:        "without doing (ないで)",
	Nakatta:      "past negative",
	Ta:           "past",
	Volitional:   "volitional",
	AdverbialKu:  "adverbial (く)",
	Imperative:   "imperative",
	Masu:         "polite",
	Masen:        "polite negative",
	Invitational: "invitational (ましょう)",
	Continuous:   "continuous (ている)",
	ContRuAbbrev: "continuous, contracted (てる)",
	Zu:           "literary negative (ず)",
	Ka:           "question (か)",
	Tari:         "listing (たり)",
	Tara:         "conditional (たら)",
	Nasai:        "soft command (なさい)",
	Nagara:       "while doing (ながら)",
	Causative:    "causative",
	Passive:      "passive",
	Tai:          "desire (たい)",
	Ba:           "provisional (ば)",
	Potential:    "potential",
	Chau:         "completion, contracted (ちゃう)",
	Na:           "attributive (な)",
	Katta:        "adjective past",
	Stem:         "stem",
	Ki:           "archaic attributive (き)",
	Nda:          "explanatory (んだ)",
	Kereba:       "adjective conditional (ければ)",
	Nakya:        "obligation, contracted (なきゃ)",
	Sa:           "nominalized (さ)",
	TeIkuAbbrev:  "ていく, contracted (てく)",
	TeOkuAbbrev:  "ておく, contracted (とく)",
}

// Label returns a human-readable name for the kind.
func (k RootKind) Label() string {
	if !k.Valid() {
		return k.String()
	}
	return kindLabels[k]
}

// Label returns a human-readable name for the step.
func (s Step) Label() string {
	if !s.Valid() {
		return s.String()
	}
	return stepLabels[s]
}
