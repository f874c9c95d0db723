package membership

import (
	"math/big"
	"strings"

	"github.com/pkg/errors"
)

// ArrayBigIntToString converts the given scalars to their decimal string
// form, the representation used in pub-signal arrays.
func ArrayBigIntToString(in []*big.Int) []string {
	out := make([]string, len(in))
	for i, n := range in {
		out[i] = n.String()
	}
	return out
}

// ArrayStringToBigInt parses an array of decimal or 0x-prefixed hex strings.
func ArrayStringToBigInt(in []string) ([]*big.Int, error) {
	out := make([]*big.Int, len(in))
	for i, s := range in {
		n, err := stringToBigInt(s)
		if err != nil {
			return nil, errors.Wrapf(err, "pub signal %d", i)
		}
		out[i] = n
	}
	return out, nil
}

func stringToBigInt(s string) (*big.Int, error) {
	base := 10
	if strings.HasPrefix(s, "0x") {
		base = 16
		s = strings.TrimPrefix(s, "0x")
	}
	n, ok := new(big.Int).SetString(s, base)
	if !ok {
		return nil, errors.Errorf("can not parse string to *big.Int: %s", s)
	}
	return n, nil
}
