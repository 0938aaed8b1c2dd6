package phe

import (
	"fmt"
	"sync"

	"github.com/p-adic-fhe/pfhe/rational"
	"github.com/p-adic-fhe/pfhe/utils/sampling"
)

// EncryptBatchNew encrypts a slice of rational plaintexts concurrently over
// the given number of workers and returns the ciphertexts in matching order.
//
// A child [sampling.Source] is derived from the receiver's source for every
// plaintext before any worker starts, and worker w encrypts the plaintexts
// i = w, w+workers, w+2*workers, ... with the i-th child. The random tape of
// every ciphertext therefore depends only on the receiver's seed and the
// plaintext index, never on how the goroutines are scheduled: the whole
// batch is reproducible from the receiver's seed.
func (enc *Encryptor) EncryptBatchNew(ms []rational.Rational, workers int) ([]*Ciphertext, error) {

	if workers < 1 {
		return nil, fmt.Errorf("cannot EncryptBatchNew: workers=%d < 1", workers)
	}

	sources := make([]*sampling.Source, len(ms))
	for i := range sources {
		sources[i] = sampling.NewSource(enc.source.NewSeed())
	}

	cts := make([]*Ciphertext, len(ms))

	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := w; i < len(ms); i += workers {
				cts[i] = enc.WithSource(sources[i]).EncryptNew(ms[i])
			}
		}(w)
	}

	wg.Wait()

	return cts, nil
}
