// SPDX-FileCopyrightText: 2025 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package rtpformat

import (
	"fmt"
	"time"

	"github.com/pion/rtp"
	"github.com/pion/rtpformat/internal/fmtp"
)

// PayloadFormat represents the payload format used in RTP.
//
// In RTSP playback the format is negotiated through the session description
// returned by DESCRIBE. Within each track's media description, the rtpmap and
// fmtp attributes carry what is needed to recreate the media format.
//
// A PayloadFormat is immutable. Use Equal to compare two values and Key to
// index them in a map.
type PayloadFormat struct {
	payloadType    uint8
	clockRate      uint32
	format         Format
	fmtpParameters FmtpParameters
}

// PayloadFormatKey is a comparable representation of a PayloadFormat.
// Two PayloadFormats are equal if and only if their keys are equal.
type PayloadFormatKey struct {
	PayloadType    uint8
	ClockRate      uint32
	Format         Format
	FmtpParameters string
}

// NewPayloadFormat creates a PayloadFormat. fmtpParameters is copied and may
// be nil. No validation of payloadType or clockRate is done.
func NewPayloadFormat(
	format Format,
	payloadType uint8,
	clockRate uint32,
	fmtpParameters map[string]string,
) PayloadFormat {
	return PayloadFormat{
		payloadType:    payloadType,
		clockRate:      clockRate,
		format:         format,
		fmtpParameters: NewFmtpParameters(fmtpParameters),
	}
}

// PayloadType returns the RTP payload type assigned in the session description.
func (p PayloadFormat) PayloadType() uint8 {
	return p.payloadType
}

// ClockRate returns the clock rate in hertz.
func (p PayloadFormat) ClockRate() uint32 {
	return p.clockRate
}

// Format returns the media format of the payload.
func (p PayloadFormat) Format() Format {
	return p.format
}

// FmtpParameters returns the format parameters, empty if unset. The keys and
// values are defined per codec, for instance RFC 6184 Section 8.1 defines
// profile-level-id and packetization-mode for H264.
func (p PayloadFormat) FmtpParameters() FmtpParameters {
	return p.fmtpParameters
}

// Equal returns true if all fields of p and o are equal.
func (p PayloadFormat) Equal(o PayloadFormat) bool {
	return p.payloadType == o.payloadType &&
		p.clockRate == o.clockRate &&
		p.format == o.format &&
		p.fmtpParameters.Equal(o.fmtpParameters)
}

// Hash combines, in order, the payload type, the clock rate, the format hash
// and the parameters hash. Equal values have equal hashes.
func (p PayloadFormat) Hash() uint64 {
	h := newHasher()
	h.writeUint64(uint64(p.payloadType))
	h.writeUint64(uint64(p.clockRate))
	h.writeUint64(p.format.Hash())
	h.writeUint64(p.fmtpParameters.Hash())

	return h.sum()
}

// Key returns a comparable value that can be used as a map key.
func (p PayloadFormat) Key() PayloadFormatKey {
	return PayloadFormatKey{
		PayloadType:    p.payloadType,
		ClockRate:      p.clockRate,
		Format:         p.format,
		FmtpParameters: p.fmtpParameters.canonical(),
	}
}

// Compatible returns true if p and o describe the same codec configuration,
// even if payload types differ. The whole Format must be equal, so L8 and L16
// or mono and stereo audio never match. Parameters that do not identify the
// configuration, like the H264 level, are ignored and keys match case insensitively.
func (p PayloadFormat) Compatible(o PayloadFormat) bool {
	if p.format != o.format || p.clockRate != o.clockRate {
		return false
	}

	mimeType := string(p.format.MimeType)

	return fmtp.New(mimeType, p.fmtpParameters.parameters).
		Match(fmtp.New(mimeType, o.fmtpParameters.parameters))
}

// MatchesPacket returns true if the packet carries this payload type.
func (p PayloadFormat) MatchesPacket(h *rtp.Header) bool {
	return h != nil && h.PayloadType == p.payloadType
}

// Duration converts a difference of RTP timestamps into time.
func (p PayloadFormat) Duration(ticks uint32) time.Duration {
	if p.clockRate == 0 {
		return 0
	}

	return time.Duration(uint64(ticks) * uint64(time.Second) / uint64(p.clockRate))
}

func (p PayloadFormat) String() string {
	if p.fmtpParameters.Len() == 0 {
		return fmt.Sprintf("%d %s/%d", p.payloadType, p.format, p.clockRate)
	}

	return fmt.Sprintf("%d %s/%d %s", p.payloadType, p.format, p.clockRate, p.fmtpParameters)
}
