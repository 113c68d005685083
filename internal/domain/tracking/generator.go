package tracking

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

const defaultCarrierPrefix = "ZAP"

// Generator produces human-readable tracking identifiers in the form
// <prefix>-<UTC date YYYYMMDD>-<8 hex chars>.
//
// Generation reads only the clock and a randomness source; it never touches
// stored data and never blocks. The 2^32 suffix space makes a same-day
// collision negligible but not impossible, so the reconciliation flow retries
// on a uniqueness conflict instead of trusting the generator blindly.

type Generator struct {
	prefix string
	now    func() time.Time
}

func NewGenerator(prefix string) *Generator {
	if prefix == "" {
		prefix = defaultCarrierPrefix
	}
	return &Generator{prefix: prefix, now: time.Now}
}

func (g *Generator) Generate() string {
	var suffix [4]byte
	// rand.Read on crypto/rand never fails on supported platforms.
	_, _ = rand.Read(suffix[:])
	return fmt.Sprintf("%s-%s-%s", g.prefix, g.now().UTC().Format("20060102"), hex.EncodeToString(suffix[:]))
}
