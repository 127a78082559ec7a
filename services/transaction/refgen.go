package transaction

import (
	"sync/atomic"
	"time"

	hashids "github.com/speps/go-hashids/v2"
)

// ReferenceGenerator mints the opaque debit/credit reference ids stamped on
// every transaction. Hashids over (timestamp, counter) keeps them short,
// unique per process, and free of guessable sequences.
type ReferenceGenerator struct {
	h       *hashids.HashID
	counter int64
}

func NewReferenceGenerator(salt string) (*ReferenceGenerator, error) {
	hd := hashids.NewData()
	hd.Salt = salt
	hd.MinLength = 12
	h, err := hashids.NewWithData(hd)
	if err != nil {
		return nil, err
	}
	return &ReferenceGenerator{h: h}, nil
}

func (g *ReferenceGenerator) Next() string {
	n := atomic.AddInt64(&g.counter, 1)
	ref, err := g.h.EncodeInt64([]int64{time.Now().Unix(), n})
	if err != nil {
		// EncodeInt64 only fails on negative inputs, which cannot happen here.
		return ""
	}
	return ref
}
