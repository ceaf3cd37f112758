package conj

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	apperrors "github.com/FocuswithJustin/kanaconj/core/errors"
	"github.com/FocuswithJustin/kanaconj/internal/logging"
)

func TestRender(t *testing.T) {
	tests := []struct {
		kind  RootKind
		steps []Step
		want  string
	}{
		{GodanKu, []Step{Imperative}, "け"},
		{Iku, []Step{Imperative}, "け"},
		{GodanKu, []Step{Masu, Ta}, "きました"},
		{GodanNu, []Step{Invitational}, "にましょう"},
		{GodanGu, []Step{Masen, Ka}, "ぎませんか"},
		{GodanU, []Step{Ta}, "った"},
		{GodanU, []Step{Tari}, "ったり"},
		{GodanU, []Step{Nu}, "わぬ"},
		{GodanBu, []Step{Nasai}, "びなさい"},
		{GodanMu, []Step{Nasai}, "みなさい"},
		{GodanNu, []Step{Causative}, "なせる"},
		{Ichidan, []Step{Causative}, "させる"},
		{GodanSu, []Step{Zu}, "さず"},
		{GodanRu, nil, "り"},
		{GodanSu, nil, "し"},
		{IAdjective, nil, ""},
		{NaAdjective, []Step{Na}, "な"},
		{NaAdjective, []Step{Na, Nda}, "なんだ"},
		{GodanNu, []Step{Chau}, "んじゃう"},
		{Ichidan, []Step{Chau, Ta}, "ちゃった"},
		{GodanNu, []Step{Chau, Ta}, "んじゃった"},
		{GodanMu, []Step{Naide}, "まないで"},
		{IAdjective, []Step{Katta}, "かった"},
		{Suru, []Step{Volitional}, "しよう"},
		{SpecialSuru, []Step{Volitional}, "しよう"},
		{Suru, []Step{Imperative}, "しろ"},
		{SpecialSuru, []Step{Imperative}, "しろ"},
		{SpecialSuru, []Step{Te, ContRuAbbrev}, "してる"},
		{GodanKu, []Step{Ka}, "か"},
		{GodanKu, []Step{Causative, Stem}, "かせ"},
		{GodanKu, []Step{Te, Continuous, Ta}, "いていた"},
		{Ichidan, []Step{Te, ContRuAbbrev, Ta}, "てた"},
		{Ichidan, []Step{Te, Continuous, Nai}, "ていない"},
		{GodanRu, []Step{Nai, Nda}, "らないんだ"},
		{GodanRu, []Step{Nai, Ka}, "らないか"},
		{GodanRu, []Step{Nai, Kereba}, "らなければ"},
		{Ichidan, []Step{Potential, Nai}, "られない"},
		{Ichidan, []Step{Potential, Ka}, "られるか"},
		{GodanMu, []Step{Passive}, "まれる"},
		{GodanKu, []Step{Tai, Katta}, "きたかった"},
		{GodanSu, []Step{Masu, Ta, Ka}, "しましたか"},
		{Kuru, []Step{Masu, Ta}, "きました"},
		{Kuru, []Step{Te}, "きて"},
		{Kuru, []Step{Ta}, "きた"},
		{Kuru, []Step{Volitional}, "こよう"},
		{Kuru, []Step{Imperative}, "こい"},
		{Kuru, []Step{Potential}, "こられる"},
		{Kuru, []Step{Ba}, "くれば"},
		{Kuru, []Step{Nai}, "こない"},
		{Kuru, nil, "き"},
		{Suru, []Step{Ba}, "すれば"},
		{Suru, []Step{Passive}, "される"},
		{IAdjective, []Step{Nai}, "くない"},
		{IAdjective, []Step{Kereba}, "ければ"},
		{IAdjective, []Step{Te}, "くて"},
		{IAdjective, []Step{Volitional}, "かろう"},
		{NaAdjective, []Step{Nai}, "じゃない"},
		{NaAdjective, []Step{Ba}, "ならば"},
		{NaAdjective, []Step{Ta}, "だった"},
		{Suru, []Step{TeOkuAbbrev, Ta}, "しといた"},
		{GodanTsu, []Step{TeIkuAbbrev, Ta}, "ってった"},
		{GodanBu, []Step{TeOkuAbbrev}, "んどく"},
		{GodanGu, []Step{TeIkuAbbrev}, "いでく"},
	}

	for _, tt := range tests {
		root := Root{Kind: tt.kind, Steps: tt.steps}
		t.Run(root.String(), func(t *testing.T) {
			got, err := Render(tt.kind, tt.steps)
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderEndToEnd(t *testing.T) {
	root := Root{Text: "", Kind: Kuru, Steps: []Step{Masu, Ta}}
	got, err := root.Conjugated()
	if err != nil {
		t.Fatalf("Conjugated() error = %v", err)
	}
	if got != "きました" {
		t.Errorf("Conjugated() = %q, want %q", got, "きました")
	}

	suffix, err := Root{Text: "かえ", Kind: GodanRu, Steps: []Step{Te}}.RenderSuffix()
	if err != nil {
		t.Fatalf("RenderSuffix() error = %v", err)
	}
	if suffix != "って" {
		t.Errorf("RenderSuffix() = %q, want %q", suffix, "って")
	}
}

// knownGaps lists every single-step combination without a defined form.
// Adjectives take no verb-only steps; する has no potential of its own.
func knownGaps() map[RootKind]map[Step]bool {
	adjective := map[Step]bool{
		Nu: true, Naide: true, Zu: true,
		Masu: true, Masen: true, Invitational: true, Nasai: true, Nagara: true, Tai: true, Stem: true,
		Imperative: true, Causative: true, Passive: true, Potential: true, Chau: true,
		TeIkuAbbrev: true, TeOkuAbbrev: true,
	}
	return map[RootKind]map[Step]bool{
		IAdjective:  adjective,
		NaAdjective: adjective,
		Suru:        {Potential: true},
		SpecialSuru: {Potential: true},
	}
}

func TestRenderGaps(t *testing.T) {
	gaps := knownGaps()

	for _, kind := range AllRootKinds() {
		for _, step := range AllSteps() {
			gap := gaps[kind][step]
			if got := Supports(kind, step); got == gap {
				t.Errorf("Supports(%s, %s) = %v, want %v", kind, step, got, !gap)
			}

			out, err := Render(kind, []Step{step})
			if !gap {
				if err != nil {
					t.Errorf("Render(%s, [%s]) error = %v", kind, step, err)
				}
				continue
			}
			if err == nil {
				t.Errorf("Render(%s, [%s]) = %q, want unsupported", kind, step, out)
				continue
			}
			if out != "" {
				t.Errorf("Render(%s, [%s]) returned partial output %q", kind, step, out)
			}
			if !errors.Is(err, apperrors.ErrUnsupported) {
				t.Errorf("Render(%s, [%s]) error %v is not ErrUnsupported", kind, step, err)
			}
			var ce *CombinationError
			if !errors.As(err, &ce) {
				t.Fatalf("Render(%s, [%s]) error %T is not *CombinationError", kind, step, err)
			}
			if ce.Kind != kind || ce.Step != step || ce.Index != 0 || !ce.HasKind {
				t.Errorf("CombinationError = %+v, want kind %s step %s index 0", ce, kind, step)
			}
		}
	}
}

func TestRenderGapAfterDerivedKind(t *testing.T) {
	// ない leaves an i-adjective, which has no imperative.
	_, err := Render(GodanRu, []Step{Nai, Imperative})
	var ce *CombinationError
	if !errors.As(err, &ce) {
		t.Fatalf("Render() error = %v, want *CombinationError", err)
	}
	if ce.Kind != IAdjective || ce.Step != Imperative || ce.Index != 1 {
		t.Errorf("CombinationError = %+v", ce)
	}
	if want := "unsupported conjugation: IAdjective + Imperative (step 1)"; ce.Error() != want {
		t.Errorf("Error() = %q, want %q", ce.Error(), want)
	}
}

func TestRenderFallback(t *testing.T) {
	tests := []struct {
		steps []Step
		want  string
	}{
		{[]Step{Ta, Ka}, "たか"},
		{[]Step{Ta, Nda}, "たんだ"},
		{[]Step{Stem, Nai}, "ない"},
		{[]Step{Stem, Nai, Katta}, "なかった"},
		{[]Step{Stem, Nai, Ka}, "ないか"},
		{[]Step{Volitional, Ka}, "ようか"},
	}
	for _, tt := range tests {
		got, err := Render(Ichidan, tt.steps)
		if err != nil {
			t.Errorf("Render(Ichidan, %v) error = %v", tt.steps, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Render(Ichidan, %v) = %q, want %q", tt.steps, got, tt.want)
		}
	}

	_, err := Render(GodanKu, []Step{Ka, Te})
	var ce *CombinationError
	if !errors.As(err, &ce) {
		t.Fatalf("Render(GodanKu, [Ka Te]) error = %v, want *CombinationError", err)
	}
	if ce.HasKind || ce.Prev != Ka || ce.Step != Te || ce.Index != 1 {
		t.Errorf("CombinationError = %+v", ce)
	}
	if !errors.Is(err, apperrors.ErrUnsupported) {
		t.Error("fallback failure should match ErrUnsupported")
	}
	if !strings.Contains(err.Error(), "Te after Ka") {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestRenderDisjoint(t *testing.T) {
	// Full endings appear only at the end or before a terminal particle.
	tests := []struct {
		steps []Step
		want  string
	}{
		{[]Step{Masu}, "ます"},
		{[]Step{Masu, Ka}, "ますか"},
		{[]Step{Masu, Nda}, "ますんだ"},
		{[]Step{Masu, Ta}, "ました"},
		{[]Step{Nai}, "ない"},
		{[]Step{Nai, Katta}, "なかった"},
		{[]Step{Nai, Nda}, "ないんだ"},
		{[]Step{Tai, Nai}, "たくない"},
		{[]Step{Tai}, "たい"},
		{[]Step{Tai, Sa}, "たさ"},
		{[]Step{Potential}, "られる"},
		{[]Step{Potential, Masu}, "られます"},
		{[]Step{Te, Continuous}, "ている"},
		{[]Step{Te, Continuous, Masu}, "ています"},
	}
	for _, tt := range tests {
		got, err := Render(Ichidan, tt.steps)
		if err != nil {
			t.Errorf("Render(Ichidan, %v) error = %v", tt.steps, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Render(Ichidan, %v) = %q, want %q", tt.steps, got, tt.want)
		}
	}
}

func TestRenderLogsGap(t *testing.T) {
	var buf bytes.Buffer
	logging.InitLoggerWriter(&buf, logging.LevelDebug, logging.FormatJSON)
	defer logging.InitLogger(logging.LevelInfo, logging.FormatJSON)

	if _, err := Render(NaAdjective, []Step{Causative}); err == nil {
		t.Fatal("Render(NaAdjective, [Causative]) should fail")
	}

	out := buf.String()
	for _, want := range []string{`"msg":"render_gap"`, `"kind":"NaAdjective"`, `"step":"Causative"`} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %s: %s", want, out)
		}
	}
}
