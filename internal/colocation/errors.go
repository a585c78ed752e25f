package colocation

import (
	"fmt"

	apperrors "github.com/yshekhar/cliquecoloc/pkg/errors"
)

func errInvalidMinDist(minDist float64) error {
	return apperrors.NewInvalidConfiguration(fmt.Sprintf("min_dist must be > 0, got %g", minDist))
}

func errInvalidMinPrev(minPrev float64) error {
	return apperrors.NewInvalidConfiguration(fmt.Sprintf("min_prev must be in [0,1], got %g", minPrev))
}

func errUnknownScheme(scheme string) error {
	return apperrors.NewInvalidConfiguration(fmt.Sprintf("unknown scheme %q (want \"ids\" or \"nds\")", scheme))
}

func errDuplicateInstance(in Instance) error {
	return apperrors.NewInvariantViolation(fmt.Sprintf("duplicate (feature,idx): %s", in.Name()))
}

func errNotFeatureDistinct(a, b Instance) error {
	return apperrors.NewInvariantViolation(fmt.Sprintf("clique is not feature-distinct: %s and %s share feature %q", a.Name(), b.Name(), a.Feature))
}

func errInvariantNotClique(a, b Instance, minDist float64) error {
	return apperrors.NewInvariantViolation(fmt.Sprintf("%s and %s are farther apart than min_dist %g", a.Name(), b.Name(), minDist))
}
