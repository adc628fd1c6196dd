package paillier

import (
	"context"
	"math/big"
	"runtime"
	"sync"
)

// Generate samples a fresh Paillier key pair with an n of the given bit
// length. bitLen must be a positive multiple of 8 (spec §4.B). Candidate
// primes of bitLen/2 bits are searched concurrently, adapting the
// goroutine-pool shape of the teacher's safe-prime generator to ordinary
// probable primes (no safe-prime requirement applies to plain Paillier key
// generation, unlike the threshold variant this spec excludes).
func Generate(bitLen int) (*PrivateKey, error) {
	if bitLen <= 0 || bitLen%8 != 0 {
		return nil, invalidArgumentf("key size %d is not a positive multiple of 8", bitLen)
	}

	primeBits := bitLen / 2
	concurrency := runtime.NumCPU()
	if concurrency < 1 {
		concurrency = 1
	}

	for {
		p, err := generatePrimeConcurrently(primeBits, concurrency)
		if err != nil {
			return nil, err
		}
		q, err := generatePrimeConcurrently(primeBits, concurrency)
		if err != nil {
			return nil, err
		}
		if p.Cmp(q) == 0 {
			continue
		}
		n := new(big.Int).Mul(p, q)
		if n.BitLen() != bitLen {
			continue
		}
		return NewPrivateKeyFromPrimes(p, q), nil
	}
}

// generatePrimeConcurrently races concurrency independent probable-prime
// searches of the requested bit length and returns the first hit,
// cancelling the rest. Mirrors the select-on-channels/cancel-context
// structure of the teacher's GenerateSafePrime.
func generatePrimeConcurrently(bits, concurrency int) (*big.Int, error) {
	type result struct {
		prime *big.Int
		err   error
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	resultChan := make(chan result, concurrency)
	var wg sync.WaitGroup
	wg.Add(concurrency)

	for i := 0; i < concurrency; i++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				default:
				}
				p, err := probablePrime(bits)
				if err != nil {
					select {
					case resultChan <- result{nil, err}:
					case <-ctx.Done():
					}
					return
				}
				select {
				case resultChan <- result{p, nil}:
				case <-ctx.Done():
				}
				return
			}
		}()
	}

	go func() {
		wg.Wait()
		close(resultChan)
	}()

	r, ok := <-resultChan
	cancel()
	if !ok {
		return nil, invalidArgumentf("prime generation produced no result")
	}
	return r.prime, r.err
}
