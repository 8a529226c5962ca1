package frozen

import (
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/require"
)

func TestValidatePoolAcceptsBuiltTries(t *testing.T) {
	require.NoError(t, MustBuild().Validate())
	require.NoError(t, MustBuild("").Validate())
	require.NoError(t, MustBuild("a", "aha", "ahoj", "ahojky").Validate())
}

func TestValidatePoolReportsEveryViolation(t *testing.T) {
	p := NodePool{nodes: make([]Node, 3)}
	p.nodes[0].children['a'] = 1
	p.nodes[0].childCount = 2 // one slot present
	p.nodes[0].last = 1
	p.nodes[1].last = 2 // no children present
	p.nodes[2].terminal = true

	err := ValidatePool(&p, 5)
	require.ErrorIs(t, err, ErrCorruptPool)

	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	// childCount mismatch, last without children, node 2 unreachable, terminal count
	require.Len(t, merr.Errors, 4)
	for _, e := range merr.Errors {
		require.ErrorIs(t, e, ErrCorruptPool)
	}
}

func TestValidatePoolEmpty(t *testing.T) {
	err := ValidatePool(&NodePool{}, 0)
	require.ErrorIs(t, err, ErrCorruptPool)
}
