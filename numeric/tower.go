package numeric

import "math/big"

// ExtendTower implements regime rule 5 for inputs that are themselves already
// abstracted past a concrete number. Once a value is known only as "about d
// digits" (ApproximateDigits) or as a tower, applying another operator cannot
// be computed numerically — there is no concrete n left to feed a formula —
// so the engine instead records that one more level of digit-counting has
// happened.
//
// Starting from ApproximateDigits(d), the next application pushes d as the
// first (innermost) tower entry: the true result now has "about 10^d digits",
// which is exactly what a one-element tower means.
//
// Starting from an existing tower, there is no new digit-count to derive
// either, so the top entry is repeated: this is a documented design choice
// (the spec leaves tower growth beyond one level unspecified) rather than a
// literal reading of any single formula — it keeps the tower monotonically
// growing, which is the only externally observable property the spec
// requires (a tower never collapses back to a smaller representation).
func ExtendTower(n Number) []*big.Int {
	switch n.Kind {
	case ApproximateDigits:
		return []*big.Int{new(big.Int).Set(n.Digits)}
	case ApproximateDigitsTower:
		top := n.Tower[len(n.Tower)-1]
		extended := make([]*big.Int, len(n.Tower)+1)
		copy(extended, n.Tower)
		extended[len(extended)-1] = new(big.Int).Set(top)
		return extended
	default:
		// Only meaningful for the two regimes documented above; callers are
		// expected to have already checked Kind before calling this.
		return []*big.Int{big.NewInt(1)}
	}
}

// CollapseOrExtendTower applies ExtendTower and then checks the configured
// maximum tower height, collapsing to Tetration when the tower would grow
// past it (spec §4.2 rule 5's "if already a tower and the tower would exceed
// a configured height, collapse to Tetration(height)").
func CollapseOrExtendTower(n Number, maxHeight int) Number {
	extended := ExtendTower(n)
	if len(extended) > maxHeight {
		return NewTetration(len(extended))
	}
	return NewTower(extended)
}
