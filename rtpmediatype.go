// SPDX-FileCopyrightText: 2025 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package rtpformat

import (
	"fmt"
	"strings"
)

// RTP encoding names as they appear in the rtpmap attribute, upper-cased.
const (
	rtpMediaAC3          = "AC3"
	rtpMediaAMR          = "AMR"
	rtpMediaAMRWB        = "AMR-WB"
	rtpMediaMPEG4Generic = "MPEG4-GENERIC"
	rtpMediaMPEG4Video   = "MP4V-ES"
	rtpMediaH2631998     = "H263-1998"
	rtpMediaH2632000     = "H263-2000"
	rtpMediaH264         = "H264"
	rtpMediaH265         = "H265"
	rtpMediaOpus         = "OPUS"
	rtpMediaPCML8        = "L8"
	rtpMediaPCML16       = "L16"
	rtpMediaPCMA         = "PCMA"
	rtpMediaPCMU         = "PCMU"
	rtpMediaVP8          = "VP8"
	rtpMediaVP9          = "VP9"
)

// rtpMediaTypes is read-only after init. It is the single source for both
// IsFormatSupported and MimeTypeFromRTPMediaType.
var rtpMediaTypes = map[string]MimeType{
	rtpMediaAC3:          MimeTypeAC3,
	rtpMediaAMR:          MimeTypeAMRNB,
	rtpMediaAMRWB:        MimeTypeAMRWB,
	rtpMediaMPEG4Generic: MimeTypeAAC,
	rtpMediaMPEG4Video:   MimeTypeMP4V,
	rtpMediaH2631998:     MimeTypeH263,
	rtpMediaH2632000:     MimeTypeH263,
	rtpMediaH264:         MimeTypeH264,
	rtpMediaH265:         MimeTypeH265,
	rtpMediaOpus:         MimeTypeOpus,
	rtpMediaPCML8:        MimeTypeRaw,
	rtpMediaPCML16:       MimeTypeRaw,
	rtpMediaPCMA:         MimeTypeALaw,
	rtpMediaPCMU:         MimeTypeMLaw,
	rtpMediaVP8:          MimeTypeVP8,
	rtpMediaVP9:          MimeTypeVP9,
}

// IsFormatSupported returns whether the encoding of a MediaDescription is supported.
// Encoding names are matched case insensitively.
func IsFormatSupported(md MediaDescription) bool {
	_, ok := rtpMediaTypes[strings.ToUpper(md.RTPMap.MediaEncoding)]

	return ok
}

// MimeTypeFromRTPMediaType returns the MIME type associated with an RTP media type,
// for instance "H264" maps to MimeTypeH264.
//
// Callers are expected to check IsFormatSupported first. Unknown media types
// return an error wrapping ErrUnsupportedMediaType.
func MimeTypeFromRTPMediaType(mediaType string) (MimeType, error) {
	mimeType, ok := rtpMediaTypes[strings.ToUpper(mediaType)]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedMediaType, mediaType)
	}

	return mimeType, nil
}

// RawPCMEncodingType returns the PCM encoding for the "L8" or "L16" encoding names.
// The name must be passed exactly as recognized, any other value returns an error
// wrapping ErrInvalidArgument.
//
// RTP L16 samples are in network byte order.
func RawPCMEncodingType(mediaEncoding string) (PCMEncoding, error) {
	switch mediaEncoding {
	case rtpMediaPCML8:
		return PCMEncoding8Bit, nil
	case rtpMediaPCML16:
		return PCMEncoding16BitBigEndian, nil
	default:
		return PCMEncodingInvalid, fmt.Errorf("%w: expected %s or %s, got %q",
			ErrInvalidArgument, rtpMediaPCML8, rtpMediaPCML16, mediaEncoding)
	}
}
