// Package merkle builds the fixed-depth hash tree over hashed public keys
// that anchors the membership circuit, and emits constant-size inclusion
// proofs for it.
package merkle

import (
	"math/big"
	"runtime"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/vb7401/babyjubjub-ecdsa/curve"
)

// Depth is the fixed tree depth expected by the circuit; proofs always carry
// exactly Depth siblings and path bits regardless of the real leaf count.
const Depth = 8

// MaxLeaves is the largest key set a Depth-level tree can hold.
const MaxLeaves = 1 << Depth

// ErrIndexOutOfRange is returned when a proof is requested for an index
// outside the key set. An index pointing into zero padding would still fold
// to the correct root, but it proves membership of nothing; it is rejected
// outright.
var ErrIndexOutOfRange = errors.New("leaf index out of range")

// ErrTooManyLeaves is returned when the key set exceeds MaxLeaves; a deeper
// set cannot be reduced to a single root in Depth levels.
var ErrTooManyLeaves = errors.New("key set exceeds tree capacity")

// Proof is an inclusion proof for one leaf. PathIndices[i] is the leaf's
// position bit at level i (0 = left, 1 = right); Siblings[i] is the node
// hashed together with the path node at that level.
type Proof struct {
	Root        *big.Int
	PathIndices [Depth]int
	Siblings    [Depth]*big.Int
}

// ComputeRoot folds the proof upward from the given leaf and returns the
// resulting root. Comparing it against Proof.Root verifies the proof.
func (p *Proof) ComputeRoot(leaf *big.Int, h Hasher) (*big.Int, error) {
	node := leaf
	for i := 0; i < Depth; i++ {
		var err error
		if p.PathIndices[i] == 0 {
			node, err = h.HashPair(node, p.Siblings[i])
		} else {
			node, err = h.HashPair(p.Siblings[i], node)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "fold level %d", i)
		}
	}
	return node, nil
}

// Accumulator builds roots and inclusion proofs over caller-supplied key
// sets. It holds no per-call state: the injected hasher and the memoized
// zero-subtree table make a single instance safe for concurrent use.
type Accumulator struct {
	hasher Hasher

	zerosOnce sync.Once
	zeros     [Depth]*big.Int
	zerosErr  error
}

// NewAccumulator returns an accumulator using the given hasher. The hasher
// is typically NewPoseidonHasher, constructed once and shared.
func NewAccumulator(h Hasher) *Accumulator {
	return &Accumulator{hasher: h}
}

// Zeros returns the per-level empty-subtree hashes: Zeros()[0] is the field
// zero and each following entry is the hash of the previous one paired with
// itself. The table is computed once per accumulator.
func (a *Accumulator) Zeros() ([Depth]*big.Int, error) {
	a.zerosOnce.Do(func() {
		z := new(big.Int)
		for i := 0; i < Depth; i++ {
			if i > 0 {
				var err error
				z, err = a.hasher.HashPair(z, z)
				if err != nil {
					a.zerosErr = errors.Wrapf(err, "zero constant for level %d", i)
					return
				}
			}
			a.zeros[i] = z
		}
	})
	return a.zeros, a.zerosErr
}

// BuildRoot returns the root of the tree over pubKeys. It is the root of
// the proof for index 0; any valid index yields the same root.
func (a *Accumulator) BuildRoot(pubKeys []curve.EdwardsPoint) (*big.Int, error) {
	proof, err := a.GenerateProof(pubKeys, 0)
	if err != nil {
		return nil, err
	}
	return proof.Root, nil
}

// GenerateProof hashes every key into a leaf, pads each level with that
// level's zero constant, and reduces Depth levels down to the root while
// recording the sibling and position bit of the target leaf at each level.
func (a *Accumulator) GenerateProof(pubKeys []curve.EdwardsPoint, index int) (*Proof, error) {
	if index < 0 || index >= len(pubKeys) {
		return nil, errors.Wrapf(ErrIndexOutOfRange, "index %d with %d keys", index, len(pubKeys))
	}
	if len(pubKeys) > MaxLeaves {
		return nil, errors.Wrapf(ErrTooManyLeaves, "%d keys, capacity %d", len(pubKeys), MaxLeaves)
	}
	zeros, err := a.Zeros()
	if err != nil {
		return nil, err
	}
	layer, err := a.hashLeaves(pubKeys)
	if err != nil {
		return nil, err
	}

	var proof Proof
	for level := 0; level < Depth; level++ {
		proof.PathIndices[level] = index & 1
		if sibling := index ^ 1; sibling < len(layer) {
			proof.Siblings[level] = layer[sibling]
		} else {
			proof.Siblings[level] = zeros[level]
		}

		// Levels depend on each other; only this pairing loop is
		// sequential by necessity.
		next := make([]*big.Int, (len(layer)+1)/2)
		for j := range next {
			left := layer[2*j]
			right := zeros[level]
			if 2*j+1 < len(layer) {
				right = layer[2*j+1]
			}
			next[j], err = a.hasher.HashPair(left, right)
			if err != nil {
				return nil, errors.Wrapf(err, "reduce level %d node %d", level, j)
			}
		}
		layer = next
		index >>= 1
	}
	proof.Root = layer[0]
	return &proof, nil
}

// hashLeaves maps each public key to Hash(x, y), preserving order. Leaves
// are independent, so they are hashed in parallel.
func (a *Accumulator) hashLeaves(pubKeys []curve.EdwardsPoint) ([]*big.Int, error) {
	leaves := make([]*big.Int, len(pubKeys))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range pubKeys {
		i := i
		g.Go(func() error {
			leaf, err := a.hasher.HashPair(pubKeys[i].X, pubKeys[i].Y)
			if err != nil {
				return errors.Wrapf(err, "hash leaf %d", i)
			}
			leaves[i] = leaf
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return leaves, nil
}
