// Package membership assembles the records a zero-knowledge membership
// prover consumes: an inclusion proof over a set of Baby Jubjub public keys
// combined with the efficient-ECDSA representation of a signature by one of
// them, flattened into the exact witness layout of the external circuit.
package membership

import (
	"bytes"
	"encoding/json"
	"math/big"

	"github.com/pkg/errors"

	"github.com/vb7401/babyjubjub-ecdsa/ecdsa"
	"github.com/vb7401/babyjubjub-ecdsa/merkle"
)

// ZKPInputs is the flattened scalar record handed to the witness generator.
// Field order mirrors the circuit's input layout and must not be reordered.
type ZKPInputs struct {
	S                   *big.Int
	Root                *big.Int
	Tx                  *big.Int
	Ty                  *big.Int
	Ux                  *big.Int
	Uy                  *big.Int
	PathIndices         [merkle.Depth]int
	Siblings            [merkle.Depth]*big.Int
	NullifierRandomness *big.Int
}

// Assemble combines an inclusion proof, derived signature inputs, the
// signature scalar s and caller-supplied nullifier randomness into the
// circuit witness record. Pure transposition: the Edwards T and U points are
// flattened into their coordinates, nothing is validated here.
func Assemble(merkleProof *merkle.Proof, sigInputs *ecdsa.CircuitInputs, s, nullifierRandomness *big.Int) *ZKPInputs {
	in := &ZKPInputs{
		S:                   s,
		Root:                merkleProof.Root,
		Tx:                  sigInputs.T.X,
		Ty:                  sigInputs.T.Y,
		Ux:                  sigInputs.U.X,
		Uy:                  sigInputs.U.Y,
		NullifierRandomness: nullifierRandomness,
	}
	in.PathIndices = merkleProof.PathIndices
	in.Siblings = merkleProof.Siblings
	return in
}

// inputsJSON is the wire form of ZKPInputs: every scalar a decimal string,
// keys in circuit order.
type inputsJSON struct {
	S                   string   `json:"s"`
	Root                string   `json:"root"`
	Tx                  string   `json:"Tx"`
	Ty                  string   `json:"Ty"`
	Ux                  string   `json:"Ux"`
	Uy                  string   `json:"Uy"`
	PathIndices         []string `json:"pathIndices"`
	Siblings            []string `json:"siblings"`
	NullifierRandomness string   `json:"nullifierRandomness"`
}

// InputsMarshal serializes the record for the external witness generator.
func (in *ZKPInputs) InputsMarshal() ([]byte, error) {
	for _, f := range []*big.Int{in.S, in.Root, in.Tx, in.Ty, in.Ux, in.Uy, in.NullifierRandomness} {
		if f == nil {
			return nil, errors.New("inputs record has nil scalar fields")
		}
	}
	out := inputsJSON{
		S:                   in.S.String(),
		Root:                in.Root.String(),
		Tx:                  in.Tx.String(),
		Ty:                  in.Ty.String(),
		Ux:                  in.Ux.String(),
		Uy:                  in.Uy.String(),
		PathIndices:         make([]string, merkle.Depth),
		Siblings:            make([]string, merkle.Depth),
		NullifierRandomness: in.NullifierRandomness.String(),
	}
	for i := 0; i < merkle.Depth; i++ {
		out.PathIndices[i] = big.NewInt(int64(in.PathIndices[i])).String()
		if in.Siblings[i] == nil {
			return nil, errors.Errorf("inputs record has nil sibling at level %d", i)
		}
		out.Siblings[i] = in.Siblings[i].String()
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	if err := enc.Encode(out); err != nil {
		return nil, errors.Wrap(err, "marshal circuit inputs")
	}
	return buf.Bytes(), nil
}
