// Package mac provides keyed message authentication: HMAC (RFC 2104) over
// any hash.Hash, and CMAC over any crypto/cipher.Block.
//
// HMAC differs from the standard library construction in surface, not in
// output: it can be re-keyed in place with Init, it is ready for the next
// message immediately after Final, and Destroy zeroes the derived pad
// buffers. The one-shot ComputeMac path and the incremental Write/Final
// path agree bit for bit.
//
//	m := mac.New(keccak.NewHash512, key)
//	defer m.Destroy()
//
//	m.Write(msg)
//	tag := make([]byte, m.Size())
//	m.Final(tag)
//
// CMAC delegates to the aead/cmac construction and exists so block-cipher
// callers get a MAC without a second key schedule library.
package mac
