package aco_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/antpath/aco"
)

func TestRouteValidate(t *testing.T) {
	require.NoError(t, aco.Route{0, 2, 3, 1}.Validate(4, 0))
	require.NoError(t, aco.Route{2, 0, 1}.Validate(3, 2))

	require.ErrorIs(t, aco.Route{0, 2, 3}.Validate(4, 0), aco.ErrRouteShape)
	require.ErrorIs(t, aco.Route{1, 2, 3, 0}.Validate(4, 0), aco.ErrRouteShape)
	require.ErrorIs(t, aco.Route{0, 2, 4, 1}.Validate(4, 0), aco.ErrRouteShape)
	require.ErrorIs(t, aco.Route{0, 2, 2, 1}.Validate(4, 0), aco.ErrDuplicateNode)
	require.True(t, aco.IsInvariant(aco.Route{0, 0}.Validate(2, 0)))
}

func TestRouteCosts(t *testing.T) {
	d := fourNodes(t)
	r := aco.Route{0, 2, 3, 1}

	open, err := r.Cost(d)
	require.NoError(t, err)
	require.Equal(t, 4.5, open)

	closed, err := r.ClosedCost(d)
	require.NoError(t, err)
	require.Equal(t, 7.5, closed)
}

func TestRouteKeyAndString(t *testing.T) {
	r := aco.Route{0, 2, 3, 1}
	require.Equal(t, "0 2 3 1", r.Key())
	require.Equal(t, "[0 2 3 1 | 0]", r.String())
	require.Equal(t, aco.Route{0, 2, 3, 1, 0}, r.Closed())
	require.Equal(t, "[]", aco.Route(nil).String())

	back, err := aco.ParseRouteKey(r.Key())
	require.NoError(t, err)
	require.Equal(t, r, back)

	_, err = aco.ParseRouteKey("")
	require.ErrorIs(t, err, aco.ErrRouteShape)
	_, err = aco.ParseRouteKey("0 x 1")
	require.ErrorIs(t, err, aco.ErrRouteShape)
}

// The four-node instance: every closed tour costs one of {9, 9.5, 7.5, 8.5}
// and exactly one route from 0 has the lowest open cost.
func TestEnumerateRoutes_FourNodes(t *testing.T) {
	d := fourNodes(t)
	all, err := aco.EnumerateRoutes(d, 0)
	require.NoError(t, err)
	require.Len(t, all, 6)

	closedSet := map[float64]bool{9: true, 9.5: true, 7.5: true, 8.5: true}
	for _, rc := range all {
		requirePermutation(t, rc.Route, 4, 0)
		c, err := rc.Route.ClosedCost(d)
		require.NoError(t, err)
		require.True(t, closedSet[c], "closed cost %g of %s", c, rc.Route)
	}

	require.Equal(t, optimalKey, all[0].Route.Key())
	require.Equal(t, 4.5, all[0].Cost)
	require.Less(t, all[0].Cost, all[1].Cost)

	got := make([]string, len(all))
	for i, rc := range all {
		got[i] = rc.Route.Key()
	}
	require.Equal(t, []string{"0 2 3 1", "0 1 3 2", "0 3 2 1", "0 2 1 3", "0 3 1 2", "0 1 2 3"}, got)
}

func TestEnumerateRoutes_Errors(t *testing.T) {
	d := fourNodes(t)
	_, err := aco.EnumerateRoutes(d, 4)
	require.ErrorIs(t, err, aco.ErrStartOutOfRange)

	big, err := aco.RandomDistances(11, 1, 1, 2)
	require.NoError(t, err)
	_, err = aco.EnumerateRoutes(big, 0)
	require.ErrorIs(t, err, aco.ErrEnumerationLimit)
}
