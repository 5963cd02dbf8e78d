// SPDX-FileCopyrightText: 2025 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package rtpformat

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// hasher feeds fixed-width integers and length-prefixed strings into xxhash,
// so that field boundaries are unambiguous.
type hasher struct {
	digest *xxhash.Digest
	buf    [8]byte
}

func newHasher() *hasher {
	return &hasher{digest: xxhash.New()}
}

func (h *hasher) writeUint64(v uint64) {
	binary.BigEndian.PutUint64(h.buf[:], v)
	_, _ = h.digest.Write(h.buf[:])
}

func (h *hasher) writeString(s string) {
	h.writeUint64(uint64(len(s)))
	_, _ = h.digest.WriteString(s)
}

func (h *hasher) sum() uint64 {
	return h.digest.Sum64()
}
