// SPDX-FileCopyrightText: 2025 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package rtpformat

// PCMEncoding is the sample layout of raw PCM audio.
type PCMEncoding int

const (
	// PCMEncodingInvalid is the zero value, used by formats that are not raw PCM.
	PCMEncodingInvalid PCMEncoding = iota

	// PCMEncoding8Bit indicates 8 bit samples.
	PCMEncoding8Bit

	// PCMEncoding16BitBigEndian indicates 16 bit samples in network byte order.
	PCMEncoding16BitBigEndian
)

func (e PCMEncoding) String() string {
	switch e {
	case PCMEncoding8Bit:
		return "pcm-8bit"
	case PCMEncoding16BitBigEndian:
		return "pcm-16bit-be"
	default:
		return "invalid"
	}
}

// BitsPerSample returns the sample width in bits, 0 for PCMEncodingInvalid.
func (e PCMEncoding) BitsPerSample() int {
	switch e {
	case PCMEncoding8Bit:
		return 8
	case PCMEncoding16BitBigEndian:
		return 16
	default:
		return 0
	}
}
