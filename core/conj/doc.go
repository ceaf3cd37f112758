// Package conj deconjugates Japanese verbs and adjectives into candidate
// dictionary roots, and conjugates roots forward again.
//
// The package has two engines over one grammar model.
//
// # Model
//
//   - RootKind: the conjugation class of a root (ichidan, the nine godan
//     rows, 行く, 来る, the two suru classes, i- and na-adjectives)
//   - Step: one grammatical layer such as te-form, past, polite, causative
//   - Root: residual stem text, its kind, and the steps applied to it
//
// Steps are stored innermost first. Steps[0] applies to the root itself and
// each later step applies to the result of the one before. Some steps leave
// something that conjugates like a fresh root (a negative ない behaves as an
// i-adjective, polite ます as a godan す verb); RootKindOf reports that kind.
//
// # Backward
//
// Deconjugate peels suffixes from the right and returns every decomposition
// the grammar allows. It deliberately overgenerates: any residual is offered
// as an i-adjective and as an ichidan stem. A dictionary lookup over
// Root.DictForms is expected to discard the impossible ones.
//
// # Forward
//
// Render and Root.RenderSuffix rebuild the suffix for a kind and step chain.
// Combinations the rule set does not define fail with *CombinationError,
// which matches errors.ErrUnsupported from core/errors.
//
// # Example
//
//	for _, r := range conj.Deconjugate("かえって") {
//	    if r.Kind == conj.GodanRu {
//	        fmt.Println(r.DictString()) // かえる
//	    }
//	}
package conj
