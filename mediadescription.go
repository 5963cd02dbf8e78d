// SPDX-FileCopyrightText: 2025 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package rtpformat

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pion/rtpformat/internal/fmtp"
)

// RTPMapAttribute is a tokenized rtpmap attribute (RFC 8866 Section 6.6).
//
//	a=rtpmap:<payload type> <encoding name>/<clock rate>[/<encoding parameters>]
//
// Channels is 0 when the encoding parameters are omitted.
type RTPMapAttribute struct {
	PayloadType   uint8
	MediaEncoding string
	ClockRate     uint32
	Channels      uint16
}

// MediaDescription holds the attributes of one track needed to build a PayloadFormat.
// MediaType is the media field of the m= line, for instance "audio" or "video".
type MediaDescription struct {
	MediaType      string
	RTPMap         RTPMapAttribute
	FmtpParameters map[string]string
}

// ParseRTPMap parses the value of an rtpmap attribute. Sample input:
// 97 L16/44100/2
func ParseRTPMap(value string) (RTPMapAttribute, error) {
	sp := strings.Index(value, " ")
	if sp < 1 {
		return RTPMapAttribute{}, fmt.Errorf("%w: %s", ErrInvalidRTPMap, value)
	}

	payloadType, err := strconv.ParseUint(value[:sp], 10, 8)
	if err != nil {
		return RTPMapAttribute{}, fmt.Errorf("%w: invalid payload type %s", ErrInvalidRTPMap, value[:sp])
	}

	parts := strings.Split(strings.TrimSpace(value[sp+1:]), "/")
	if len(parts) < 2 || len(parts) > 3 || parts[0] == "" {
		return RTPMapAttribute{}, fmt.Errorf("%w: %s", ErrInvalidRTPMap, value)
	}

	clockRate, err := strconv.ParseUint(parts[1], 10, 32)
	if err != nil {
		return RTPMapAttribute{}, fmt.Errorf("%w: invalid clock rate %s", ErrInvalidRTPMap, parts[1])
	}

	attr := RTPMapAttribute{
		PayloadType:   uint8(payloadType),
		MediaEncoding: parts[0],
		ClockRate:     uint32(clockRate),
	}

	if len(parts) == 3 {
		channels, err := strconv.ParseUint(parts[2], 10, 16)
		if err != nil {
			return RTPMapAttribute{}, fmt.Errorf("%w: invalid channels %s", ErrInvalidRTPMap, parts[2])
		}
		attr.Channels = uint16(channels)
	}

	return attr, nil
}

// ParseFmtp parses the value of an fmtp attribute and returns the payload type
// and its format parameters. Sample input:
// 96 packetization-mode=1;profile-level-id=42001f
func ParseFmtp(value string) (uint8, map[string]string, error) {
	sp := strings.Index(value, " ")
	if sp < 1 {
		return 0, nil, fmt.Errorf("%w: %s", ErrInvalidFmtp, value)
	}

	payloadType, err := strconv.ParseUint(value[:sp], 10, 8)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: invalid payload type %s", ErrInvalidFmtp, value[:sp])
	}

	return uint8(payloadType), fmtp.ParseParameters(value[sp+1:]), nil
}
