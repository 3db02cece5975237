// Copyright (c) 2025 The Pedacoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rsa

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/ledgerforge/pedacoin/crypto/bigint"
)

const smallPrimeSieveLimit = 65536

func generateSmallPrimes(limit int) []uint64 {
	sieve := make([]bool, limit+1)
	for i := range sieve {
		sieve[i] = true
	}
	var primes []uint64
	for i := 2; i <= limit; i++ {
		if !sieve[i] {
			continue
		}
		primes = append(primes, uint64(i))
		for multiple := i * i; multiple <= limit; multiple += i {
			sieve[multiple] = false
		}
	}
	return primes
}

func isDivisibleBySmallPrime(num *bigint.Int, primes []uint64) bool {
	for _, p := range primes {
		if num.ModU64(p) == 0 {
			return true
		}
	}
	return false
}

// isProbablePrime runs a Miller-Rabin primality test at the given round
// count, checking foundTotal against n before each expensive step so a
// search that's already satisfied by sibling goroutines can bail out
// early instead of grinding through a full witness loop.
func isProbablePrime(num *bigint.Int, rounds int, foundTotal *atomic.Int64, n int64) bool {
	one := bigint.FromUint64(KeySize, 1)
	numMinusOne := num.Sub(one)

	d := numMinusOne.Clone()
	r := 0
	for !d.IsOdd() {
		d = d.Shr(1)
		r++
	}

	mu := bigint.CalculateMu(num)

	for i := 0; i < rounds; i++ {
		if foundTotal.Load() >= n {
			return false
		}
		witness := bigint.Rand(KeySize, 1, KeySize/2-2)
		a := bigint.NewModWithMu(witness, num.Clone(), mu.Clone())
		x := a.Pow(d)
		if x.Integer.Equal(one) || x.Integer.Equal(numMinusOne) {
			continue
		}
		witnessed := true
		for j := 0; j < r-1; j++ {
			if foundTotal.Load() >= n {
				return false
			}
			x = x.Square()
			if x.Integer.Equal(numMinusOne) {
				witnessed = false
				break
			}
		}
		if witnessed {
			return false
		}
	}
	return true
}

// searchPrime repeatedly builds 6k+/-1 candidates starting from a
// random seed and tests each with a small-prime sieve followed by
// Miller-Rabin, until it finds one or foundTotal reaches n.
func searchPrime(smallPrimes []uint64, foundTotal *atomic.Int64, n int64) *bigint.Int {
	candidate := bigint.Rand(KeySize, 16, KeySize/2-2)
	mod6 := candidate.ModU64(6)
	candidate = candidate.Add(bigint.FromUint64(KeySize, 7-mod6))

	toggle := true
	for {
		if foundTotal.Load() >= n {
			return nil
		}
		if toggle {
			candidate = candidate.Add(bigint.FromUint64(KeySize, 4))
		} else {
			candidate = candidate.Add(bigint.FromUint64(KeySize, 2))
		}
		toggle = !toggle

		if isDivisibleBySmallPrime(candidate, smallPrimes) {
			continue
		}
		if isProbablePrime(candidate, MillerRounds, foundTotal, n) {
			return candidate
		}
	}
}

// generatePrimes finds n KeySize-wide probable primes, searching across
// all available CPUs in parallel and stopping every worker as soon as
// the shared counter reaches n.
func generatePrimes(n int) []*bigint.Int {
	cores := runtime.GOMAXPROCS(0)
	if cores < 1 {
		cores = 1
	}

	var foundTotal atomic.Int64
	results := make(chan *bigint.Int, n)
	var wg sync.WaitGroup

	for i := 0; i < cores; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			smallPrimes := generateSmallPrimes(smallPrimeSieveLimit)
			for {
				if foundTotal.Load() >= int64(n) {
					return
				}
				prime := searchPrime(smallPrimes, &foundTotal, int64(n))
				if prime == nil {
					continue
				}
				if foundTotal.Add(1) <= int64(n) {
					results <- prime
				} else {
					return
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	primes := make([]*bigint.Int, 0, n)
	for prime := range results {
		primes = append(primes, prime)
		if len(primes) == n {
			break
		}
	}
	return primes
}
