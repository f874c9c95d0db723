package membership

import (
	"context"
	"math/big"

	"github.com/iden3/go-iden3-crypto/poseidon"
	"github.com/iden3/go-rapidsnark/types"
	"github.com/iden3/go-rapidsnark/verifier"
	"github.com/pkg/errors"

	"github.com/vb7401/babyjubjub-ecdsa/curve"
	"github.com/vb7401/babyjubjub-ecdsa/ecdsa"
)

// Proof is a proof that an ECDSA signature over MsgHash was produced by a
// member of the key set behind the Merkle root, without revealing which
// member. R, T and U are the signature's efficient-ECDSA representation in
// Edwards form; ZKP is the opaque groth16 blob.
type Proof struct {
	R       curve.EdwardsPoint
	T       curve.EdwardsPoint
	U       curve.EdwardsPoint
	MsgHash *big.Int
	ZKP     *types.ZKProof
}

// ProofGenerator runs the external proving engine over an assembled witness
// record. Implementations wrap rapidsnark, snarkjs or any other groth16
// prover loaded with the membership circuit.
type ProofGenerator interface {
	Generate(ctx context.Context, inputs *ZKPInputs) (*types.ZKProof, error)
}

// Prove runs the generator over the assembled inputs and binds the result to
// the signature's public points and message hash.
func Prove(ctx context.Context, gen ProofGenerator, inputs *ZKPInputs, sigInputs *ecdsa.CircuitInputs, msgHash *big.Int) (*Proof, error) {
	zkp, err := gen.Generate(ctx, inputs)
	if err != nil {
		return nil, errors.Wrap(err, "generate membership proof")
	}
	return &Proof{
		R:       sigInputs.R,
		T:       sigInputs.T,
		U:       sigInputs.U,
		MsgHash: msgHash,
		ZKP:     zkp,
	}, nil
}

// VerifyZKP checks the proof blob against the membership circuit's
// verification key.
func VerifyZKP(p *Proof, verificationKey []byte) error {
	if p == nil || p.ZKP == nil {
		return errors.New("membership proof carries no zkp")
	}
	if err := verifier.VerifyGroth16(*p.ZKP, verificationKey); err != nil {
		return errors.Wrap(err, "verify membership proof")
	}
	return nil
}

// SigNullifier hashes the signature scalar with the caller's randomness,
// producing the circuit's public nullifier. Reusing the same randomness for
// the same signature yields the same nullifier, which is how downstream
// consumers detect proof reuse.
func SigNullifier(s, randomness *big.Int) (*big.Int, error) {
	return poseidon.Hash([]*big.Int{s, randomness})
}
