package mac

import (
	"crypto/cipher"
	"hash"

	"github.com/aead/cmac"
)

// NewCMAC returns a CMAC authenticator over the given block cipher. The
// cipher must already be keyed; block sizes of 8 and 16 bytes are
// supported.
func NewCMAC(c cipher.Block) (hash.Hash, error) {
	return cmac.New(c)
}

// CMACSum computes the full-width CMAC of msg under the given cipher.
func CMACSum(msg []byte, c cipher.Block) ([]byte, error) {
	return cmac.Sum(msg, c, c.BlockSize())
}

// CMACVerify reports whether tag is the CMAC of msg under the given cipher.
func CMACVerify(tag, msg []byte, c cipher.Block) bool {
	return cmac.Verify(tag, msg, c, c.BlockSize())
}
