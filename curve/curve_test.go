package curve

import (
	"math/big"
	"testing"

	"github.com/iden3/go-iden3-crypto/babyjub"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDerivedParams(t *testing.T) {
	assert.Equal(t, "168698", MontA.String())
	assert.Equal(t, int64(8), Cofactor.Int64())
	assert.Equal(t,
		"7296080957279758407415468581752425029516121466805344781232734728849116493472",
		AW.String())
	assert.Equal(t,
		"16213513238399463127589930181672055621146936592900766180517188641980520820846",
		BW.String())
}

func TestGeneratorOnBothForms(t *testing.T) {
	require.True(t, Generator.InCurve())
	assert.Equal(t,
		"14414009007687342025526645003307639786191886886413750648631138442071909631647",
		Generator.X.String())
	assert.Equal(t,
		"14577268218881899420966779687690205425227431577728659819975198491127179315626",
		Generator.Y.String())

	e, err := WeierstrassToEdwards(Generator)
	require.NoError(t, err)
	assert.Equal(t, 0, e.X.Cmp(babyjub.B8.X))
	assert.Equal(t, 0, e.Y.Cmp(babyjub.B8.Y))
	assert.True(t, e.InCurve())
}

func TestConversionRoundTrip(t *testing.T) {
	for _, k := range []int64{1, 2, 3, 5, 17, 1000003} {
		p := Generator.ScalarMul(big.NewInt(k))
		require.True(t, p.InCurve(), "k=%d", k)

		e, err := WeierstrassToEdwards(p)
		require.NoError(t, err, "k=%d", k)
		require.True(t, e.InCurve(), "k=%d", k)

		back, err := EdwardsToWeierstrass(e)
		require.NoError(t, err, "k=%d", k)
		assert.True(t, back.Equal(p), "k=%d: round trip mismatch", k)
	}
}

func TestConversionSingularPoints(t *testing.T) {
	_, err := WeierstrassToEdwards(WeierstrassPoint{})
	assert.True(t, errors.Is(err, ErrSingularPoint), "infinity")

	// Edwards identity (0, 1).
	_, err = EdwardsToWeierstrass(EdwardsPoint{X: big.NewInt(0), Y: big.NewInt(1)})
	assert.True(t, errors.Is(err, ErrSingularPoint), "identity")

	// The order-2 point (0, -1).
	minusOne := new(big.Int).Sub(P, big.NewInt(1))
	_, err = EdwardsToWeierstrass(EdwardsPoint{X: big.NewInt(0), Y: minusOne})
	assert.True(t, errors.Is(err, ErrSingularPoint), "order-2 point")
}

func TestPointFromX(t *testing.T) {
	odd := Generator.Y.Bit(0) == 1

	p, ok := PointFromX(Generator.X, odd)
	require.True(t, ok)
	assert.True(t, p.Equal(Generator))

	p, ok = PointFromX(Generator.X, !odd)
	require.True(t, ok)
	assert.True(t, p.Equal(Generator.Neg()))

	// x = 3 has no point on the curve (non-residue right-hand side).
	_, ok = PointFromX(big.NewInt(3), false)
	assert.False(t, ok)
	_, ok = PointFromX(big.NewInt(3), true)
	assert.False(t, ok)
}

func TestGroupLaw(t *testing.T) {
	five := Generator.ScalarMul(big.NewInt(5))
	sum := WeierstrassPoint{}
	for i := 0; i < 5; i++ {
		sum = sum.Add(Generator)
	}
	require.True(t, sum.Equal(five))
	assert.Equal(t,
		"5919840376884091967589634764235080951508551839768403281471290555324283582588",
		five.X.String())
	assert.Equal(t,
		"8386862313947474906721292440641461667986962087849871742261988836186071624839",
		five.Y.String())

	assert.True(t, Generator.ScalarMul(big.NewInt(0)).IsInfinity())
	assert.True(t, Generator.ScalarMul(N).IsInfinity(), "generator order is N")
	assert.True(t, Generator.Add(Generator.Neg()).IsInfinity())

	// Infinity is the identity.
	assert.True(t, WeierstrassPoint{}.Add(Generator).Equal(Generator))
	assert.True(t, Generator.Add(WeierstrassPoint{}).Equal(Generator))

	// Negative scalars multiply the negated point.
	assert.True(t,
		Generator.ScalarMul(big.NewInt(-5)).Equal(five.Neg()))
}

func TestEqualCanonicalizes(t *testing.T) {
	shifted := WeierstrassPoint{
		X: new(big.Int).Add(Generator.X, P),
		Y: new(big.Int).Add(Generator.Y, P),
	}
	assert.True(t, shifted.Equal(Generator))
	assert.False(t, Generator.Equal(WeierstrassPoint{}))

	a := EdwardsPoint{X: babyjub.B8.X, Y: babyjub.B8.Y}
	b := EdwardsPoint{
		X: new(big.Int).Add(babyjub.B8.X, P),
		Y: new(big.Int).Add(babyjub.B8.Y, P),
	}
	assert.True(t, a.Equal(b))
}
