// SPDX-FileCopyrightText: 2025 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package rtpformat

import (
	"fmt"
	"strings"
)

// Format describes the media carried by an RTP payload, as needed to configure
// a decoder. Format is comparable, two formats are equal when all fields are equal.
//
// SampleRate and Channels are only set for audio, PCMEncoding only for MimeTypeRaw.
type Format struct {
	MimeType    MimeType
	SampleRate  uint32
	Channels    uint16
	PCMEncoding PCMEncoding
}

func defaultChannels(mimeType MimeType) uint16 {
	// RFC 7587 Section 7: opus is always signaled as stereo.
	if mimeType == MimeTypeOpus {
		return 2
	}

	// RFC 8866: channel count "is OPTIONAL and may be omitted
	// if the number of channels is one".
	return 1
}

// NewFormat resolves the Format of a MediaDescription.
//
// Raw PCM needs two steps: the MIME type alone does not tell L8 from L16,
// so the sample layout is resolved separately with RawPCMEncodingType.
func NewFormat(md MediaDescription) (Format, error) {
	mimeType, err := MimeTypeFromRTPMediaType(md.RTPMap.MediaEncoding)
	if err != nil {
		return Format{}, err
	}

	format := Format{MimeType: mimeType}
	if !mimeType.IsAudio() {
		return format, nil
	}

	format.SampleRate = md.RTPMap.ClockRate
	format.Channels = md.RTPMap.Channels
	if format.Channels == 0 {
		format.Channels = defaultChannels(mimeType)
	}

	if mimeType == MimeTypeRaw {
		format.PCMEncoding, err = RawPCMEncodingType(strings.ToUpper(md.RTPMap.MediaEncoding))
		if err != nil {
			return Format{}, err
		}
	}

	return format, nil
}

// Hash returns a hash derived from all fields.
func (f Format) Hash() uint64 {
	h := newHasher()
	h.writeString(string(f.MimeType))
	h.writeUint64(uint64(f.SampleRate))
	h.writeUint64(uint64(f.Channels))
	h.writeUint64(uint64(f.PCMEncoding))

	return h.sum()
}

func (f Format) String() string {
	switch {
	case f.PCMEncoding != PCMEncodingInvalid:
		return fmt.Sprintf("%s %s %dHz %dch", f.MimeType, f.PCMEncoding, f.SampleRate, f.Channels)
	case f.MimeType.IsAudio():
		return fmt.Sprintf("%s %dHz %dch", f.MimeType, f.SampleRate, f.Channels)
	default:
		return string(f.MimeType)
	}
}
