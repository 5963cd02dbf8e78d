// SPDX-FileCopyrightText: 2025 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package rtpformat

import (
	"strings"
)

// MimeType is the media MIME type a decoder is configured with.
type MimeType string

const (
	// MimeTypeAC3 AC-3 MIME type.
	MimeTypeAC3 MimeType = "audio/ac3"
	// MimeTypeAMRNB AMR narrowband MIME type.
	MimeTypeAMRNB MimeType = "audio/3gpp"
	// MimeTypeAMRWB AMR wideband MIME type.
	MimeTypeAMRWB MimeType = "audio/amr-wb"
	// MimeTypeAAC MIME type used for AAC family payloads signaled as MPEG4-GENERIC.
	MimeTypeAAC MimeType = "audio/mp4a-latm"
	// MimeTypeOpus Opus MIME type.
	MimeTypeOpus MimeType = "audio/opus"
	// MimeTypeRaw raw PCM MIME type.
	// Note: The sample width is not part of the MIME type, see RawPCMEncodingType.
	MimeTypeRaw MimeType = "audio/raw"
	// MimeTypeALaw G.711 A-law MIME type.
	MimeTypeALaw MimeType = "audio/g711-alaw"
	// MimeTypeMLaw G.711 mu-law MIME type.
	MimeTypeMLaw MimeType = "audio/g711-mlaw"
	// MimeTypeH263 H263 MIME type.
	MimeTypeH263 MimeType = "video/3gpp"
	// MimeTypeH264 H264 MIME type.
	MimeTypeH264 MimeType = "video/avc"
	// MimeTypeH265 H265 MIME type.
	MimeTypeH265 MimeType = "video/hevc"
	// MimeTypeMP4V MPEG-4 part 2 video MIME type.
	MimeTypeMP4V MimeType = "video/mp4v-es"
	// MimeTypeVP8 VP8 MIME type.
	MimeTypeVP8 MimeType = "video/x-vnd.on2.vp8"
	// MimeTypeVP9 VP9 MIME type.
	MimeTypeVP9 MimeType = "video/x-vnd.on2.vp9"
)

func (m MimeType) String() string {
	return string(m)
}

// IsAudio returns true for audio MIME types.
func (m MimeType) IsAudio() bool {
	return strings.HasPrefix(string(m), "audio/")
}

// IsVideo returns true for video MIME types.
func (m MimeType) IsVideo() bool {
	return strings.HasPrefix(string(m), "video/")
}
