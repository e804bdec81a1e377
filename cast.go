package safeint

import "golang.org/x/exp/constraints"

// Cast converts v to To under the active overflow policy. Under
// OverflowFail a value that is not representable in To — because it
// truncates or changes sign — is reported as "integer overflow in
// conversion". OverflowWrap and OverflowIgnore both perform Go's native
// conversion, which truncates to the low bits of To.
func Cast[To constraints.Integer, From constraints.Integer](v From) To {
	converted := To(v)
	if overflowPolicy == OverflowFail {
		if From(converted) != v || (converted < 0) != (v < 0) {
			fail(ErrOverflow, "integer overflow in conversion", 0)
		}
	}
	return converted
}
