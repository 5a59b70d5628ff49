// Package rng exposes named uniform-random providers to tasks.
//
// Tasks never construct a generator themselves; they ask the registry for a
// provider by algorithm name. A missing algorithm is a configuration error
// surfaced at execution time, before any output is produced.
package rng

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	randv2 "math/rand/v2"
	"time"
)

// Provider produces uniformly-distributed pseudorandom values.
type Provider interface {
	// Float64 returns a value in the half-open range [0, 1).
	Float64() float64
}

// Factory builds a Provider from a seed. A zero seed means the factory
// picks its own entropy (time-derived for deterministic algorithms).
type Factory func(seed uint64) (Provider, error)

// Built-in algorithm names.
const (
	AlgorithmPCG     = "pcg"
	AlgorithmChaCha8 = "chacha8"
	AlgorithmCrypto  = "crypto"
)

// DefaultAlgorithm is used when configuration names none.
const DefaultAlgorithm = AlgorithmPCG

func newPCG(seed uint64) (Provider, error) {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return randv2.New(randv2.NewPCG(seed, seed^0x9e3779b97f4a7c15)), nil
}

func newChaCha8(seed uint64) (Provider, error) {
	var key [32]byte
	if seed == 0 {
		if _, err := rand.Read(key[:]); err != nil {
			return nil, fmt.Errorf("seeding chacha8: %w", err)
		}
	} else {
		binary.LittleEndian.PutUint64(key[:8], seed)
	}
	return randv2.New(randv2.NewChaCha8(key)), nil
}

// cryptoProvider draws from the operating system's entropy source. The seed
// is ignored: the stream is not reproducible.
type cryptoProvider struct{}

func (cryptoProvider) Float64() float64 {
	var buf [8]byte
	// crypto/rand.Read only fails when the OS entropy source is broken;
	// rand.Read panics internally on that condition since go1.24.
	rand.Read(buf[:])
	// Keep the top 53 bits so the result is uniform over [0, 1).
	return float64(binary.LittleEndian.Uint64(buf[:])>>11) / (1 << 53)
}

func newCrypto(uint64) (Provider, error) {
	return cryptoProvider{}, nil
}
