// SPDX-FileCopyrightText: 2025 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package rtpformat

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pion/sdp/v3"
)

const (
	sdpAttributeRTPMap = "rtpmap"
	sdpAttributeFmtp   = "fmtp"
)

// Static payload types of RFC 3551 Section 6 that map to a supported encoding.
// They may be used without an rtpmap attribute.
var staticPayloadTypes = map[uint8]RTPMapAttribute{
	0:  {PayloadType: 0, MediaEncoding: rtpMediaPCMU, ClockRate: 8000, Channels: 1},
	8:  {PayloadType: 8, MediaEncoding: rtpMediaPCMA, ClockRate: 8000, Channels: 1},
	10: {PayloadType: 10, MediaEncoding: rtpMediaPCML16, ClockRate: 44100, Channels: 2},
	11: {PayloadType: 11, MediaEncoding: rtpMediaPCML16, ClockRate: 44100, Channels: 1},
}

// MediaDescriptionFromSDP collects the rtpmap and fmtp attributes of payloadType
// from a parsed media description.
//
// Dynamic payload types are scoped to their m= line and may repeat across
// tracks, so only md is searched instead of the session-wide codec map of
// sdp.SessionDescription.
func MediaDescriptionFromSDP(md *sdp.MediaDescription, payloadType uint8) (MediaDescription, error) {
	if md == nil {
		return MediaDescription{}, errNilMediaDescription
	}

	desc := MediaDescription{
		MediaType:      md.MediaName.Media,
		FmtpParameters: map[string]string{},
	}

	prefix := strconv.Itoa(int(payloadType)) + " "
	foundRTPMap := false

	for _, a := range md.Attributes {
		if !strings.HasPrefix(a.Value, prefix) {
			continue
		}

		switch a.Key {
		case sdpAttributeRTPMap:
			rtpMap, err := ParseRTPMap(a.Value)
			if err != nil {
				return MediaDescription{}, err
			}
			desc.RTPMap = rtpMap
			foundRTPMap = true

		case sdpAttributeFmtp:
			_, parameters, err := ParseFmtp(a.Value)
			if err != nil {
				return MediaDescription{}, err
			}
			desc.FmtpParameters = parameters
		}
	}

	if !foundRTPMap {
		rtpMap, ok := staticPayloadTypes[payloadType]
		if !ok {
			return MediaDescription{}, fmt.Errorf("%w: %d", ErrNoRTPMap, payloadType)
		}
		desc.RTPMap = rtpMap
	}

	return desc, nil
}
