package common

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/binary"
	"io"
	"sync/atomic"

	"github.com/go-errors/errors"
	"github.com/verifierkit/cft/big"
)

// CPRNG is a simple thread-safe cryptographically secure pseudo-random number
// generator. Implemented with AES in counter mode with the seed as key and an
// atomic uint64 as counter. A fixed seed yields a fixed byte stream, which is
// what the deterministic protocol tests rely on.
type CPRNG struct {
	block   cipher.Block
	counter uint64
}

func NewCPRNG(seed *[32]byte) (*CPRNG, error) {
	c, err := aes.NewCipher(seed[:])
	if err != nil {
		return nil, errors.Wrap(err, 0)
	}
	return &CPRNG{
		block:   c,
		counter: 0,
	}, nil
}

// NewSecureCPRNG seeds a CPRNG from the operating system's entropy source.
func NewSecureCPRNG() (*CPRNG, error) {
	var seed [32]byte
	if _, err := rand.Reader.Read(seed[:]); err != nil {
		return nil, errors.Wrap(err, 0)
	}
	return NewCPRNG(&seed)
}

func (c *CPRNG) Read(buf []byte) (n int, err error) {
	var pt, ct [16]byte
	n = len(buf)
	if n == 0 {
		return
	}

	// Number of blocks required
	nBlocks := uint64(((len(buf) - 1) / 16) + 1)

	// Atomically increment counter by the number of blocks and set iv to
	// the first available block.
	iv := atomic.AddUint64(&c.counter, nBlocks) - nBlocks
	for {
		binary.LittleEndian.PutUint64(pt[:], iv)
		iv++

		// Still 16 bytes to go?  Then encrypt directly into buf.
		if len(buf) >= 16 {
			c.block.Encrypt(buf, pt[:])
			buf = buf[16:]
			continue
		}
		if len(buf) == 0 {
			break
		}

		// Otherwise, encrypt into ct and copy into buf.
		c.block.Encrypt(ct[:], pt[:])
		copy(buf, ct[:len(buf)])
		break
	}
	return
}

// RandomInRange returns an integer uniformly chosen from [0, limit).
func RandomInRange(rnd io.Reader, limit *big.Int) (*big.Int, error) {
	return big.RandInt(rnd, limit)
}

// RandomSignedInt returns an integer whose magnitude is uniform on [0, max]
// and whose sign is drawn independently and uniformly from one further random
// byte. This is a separate primitive from RandomInRange: masking randomizers
// for signed secrets must be able to land on either side of zero.
func RandomSignedInt(rnd io.Reader, max *big.Int) (*big.Int, error) {
	limit := new(big.Int).Add(max, bigONE)
	res, err := big.RandInt(rnd, limit)
	if err != nil {
		return nil, err
	}
	var sign [1]byte
	if _, err = io.ReadFull(rnd, sign[:]); err != nil {
		return nil, errors.Wrap(err, 0)
	}
	if sign[0]&1 == 1 {
		res.Neg(res)
	}
	return res, nil
}
