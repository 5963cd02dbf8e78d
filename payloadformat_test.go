// SPDX-FileCopyrightText: 2025 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package rtpformat

import (
	"testing"
	"time"

	"github.com/pion/rtp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayloadFormatH264(t *testing.T) {
	md := MediaDescription{
		MediaType: "video",
		RTPMap:    RTPMapAttribute{PayloadType: 96, MediaEncoding: "H264", ClockRate: 90000},
		FmtpParameters: map[string]string{
			"packetization-mode": "1",
			"profile-level-id":   "42001f",
		},
	}

	require.True(t, IsFormatSupported(md))

	mimeType, err := MimeTypeFromRTPMediaType(md.RTPMap.MediaEncoding)
	require.NoError(t, err)
	assert.Equal(t, MimeTypeH264, mimeType)

	format, err := NewFormat(md)
	require.NoError(t, err)

	payloadFormat := NewPayloadFormat(format, md.RTPMap.PayloadType, md.RTPMap.ClockRate, md.FmtpParameters)
	assert.Equal(t, uint8(96), payloadFormat.PayloadType())
	assert.Equal(t, uint32(90000), payloadFormat.ClockRate())
	assert.Equal(t, Format{MimeType: MimeTypeH264}, payloadFormat.Format())
	assert.Equal(t, md.FmtpParameters, payloadFormat.FmtpParameters().Map())
	assert.Equal(t, "96 video/avc/90000 packetization-mode=1;profile-level-id=42001f", payloadFormat.String())
}

func TestPayloadFormatEqual(t *testing.T) {
	format := Format{MimeType: MimeTypeAAC, SampleRate: 44100, Channels: 2}

	a := map[string]string{}
	a["mode"] = "AAC-hbr"
	a["config"] = "1210"
	a["sizelength"] = "13"

	b := map[string]string{}
	b["sizelength"] = "13"
	b["config"] = "1210"
	b["mode"] = "AAC-hbr"

	pa := NewPayloadFormat(format, 97, 44100, a)
	pb := NewPayloadFormat(format, 97, 44100, b)

	assert.True(t, pa.Equal(pb))
	assert.True(t, pb.Equal(pa))
	assert.Equal(t, pa.Hash(), pb.Hash())
	assert.Equal(t, pa.Key(), pb.Key())

	for name, other := range map[string]PayloadFormat{
		"PayloadType":  NewPayloadFormat(format, 98, 44100, a),
		"ClockRate":    NewPayloadFormat(format, 97, 48000, a),
		"Format":       NewPayloadFormat(Format{MimeType: MimeTypeAAC, SampleRate: 44100, Channels: 1}, 97, 44100, a),
		"Parameters":   NewPayloadFormat(format, 97, 44100, map[string]string{"mode": "AAC-hbr"}),
		"NoParameters": NewPayloadFormat(format, 97, 44100, nil),
	} {
		t.Run(name, func(t *testing.T) {
			assert.False(t, pa.Equal(other))
			assert.NotEqual(t, pa.Hash(), other.Hash())
			assert.NotEqual(t, pa.Key(), other.Key())
		})
	}
}

func TestPayloadFormatImmutable(t *testing.T) {
	parameters := map[string]string{"useinbandfec": "1"}
	payloadFormat := NewPayloadFormat(Format{MimeType: MimeTypeOpus, SampleRate: 48000, Channels: 2}, 111, 48000, parameters)
	before := payloadFormat.Hash()

	parameters["useinbandfec"] = "0"
	parameters["stereo"] = "1"

	v, ok := payloadFormat.FmtpParameters().Get("useinbandfec")
	assert.True(t, ok)
	assert.Equal(t, "1", v)
	assert.Equal(t, 1, payloadFormat.FmtpParameters().Len())
	assert.Equal(t, before, payloadFormat.Hash())
}

func TestPayloadFormatKey(t *testing.T) {
	format := Format{MimeType: MimeTypeVP8}
	seen := map[PayloadFormatKey]PayloadFormat{}

	for _, payloadFormat := range []PayloadFormat{
		NewPayloadFormat(format, 96, 90000, nil),
		NewPayloadFormat(format, 96, 90000, map[string]string{}),
		NewPayloadFormat(format, 97, 90000, nil),
		NewPayloadFormat(format, 96, 90000, map[string]string{"max-fr": "30"}),
		NewPayloadFormat(format, 96, 90000, map[string]string{"max-fr": "30"}),
	} {
		seen[payloadFormat.Key()] = payloadFormat
	}

	assert.Len(t, seen, 3)
}

func TestPayloadFormatCompatible(t *testing.T) {
	h264 := Format{MimeType: MimeTypeH264}

	a := NewPayloadFormat(h264, 96, 90000, map[string]string{"packetization-mode": "1", "profile-level-id": "42e01f"})
	b := NewPayloadFormat(h264, 102, 90000, map[string]string{"packetization-mode": "1", "profile-level-id": "42e029"})
	c := NewPayloadFormat(h264, 96, 90000, map[string]string{"packetization-mode": "0", "profile-level-id": "42e01f"})
	d := NewPayloadFormat(Format{MimeType: MimeTypeH265}, 96, 90000, nil)
	e := NewPayloadFormat(h264, 96, 45000, map[string]string{"packetization-mode": "1", "profile-level-id": "42e01f"})

	assert.True(t, a.Compatible(b))
	assert.True(t, b.Compatible(a))
	assert.False(t, a.Compatible(c))
	assert.False(t, a.Compatible(d))
	assert.False(t, a.Compatible(e))
	assert.False(t, a.Equal(b))
}

func TestPayloadFormatCompatibleAudio(t *testing.T) {
	l8Mono := NewPayloadFormat(Format{
		MimeType:    MimeTypeRaw,
		SampleRate:  8000,
		Channels:    1,
		PCMEncoding: PCMEncoding8Bit,
	}, 96, 8000, nil)
	l16Mono := NewPayloadFormat(Format{
		MimeType:    MimeTypeRaw,
		SampleRate:  8000,
		Channels:    1,
		PCMEncoding: PCMEncoding16BitBigEndian,
	}, 97, 8000, nil)
	l16Stereo := NewPayloadFormat(Format{
		MimeType:    MimeTypeRaw,
		SampleRate:  8000,
		Channels:    2,
		PCMEncoding: PCMEncoding16BitBigEndian,
	}, 97, 8000, nil)
	l16MonoOtherPayloadType := NewPayloadFormat(l16Mono.Format(), 100, 8000, nil)

	assert.False(t, l8Mono.Compatible(l16Mono))
	assert.False(t, l16Mono.Compatible(l8Mono))
	assert.False(t, l8Mono.Compatible(l16Stereo))
	assert.False(t, l16Mono.Compatible(l16Stereo))
	assert.True(t, l16Mono.Compatible(l16MonoOtherPayloadType))

	opusMono := NewPayloadFormat(Format{MimeType: MimeTypeOpus, SampleRate: 48000, Channels: 1}, 111, 48000, nil)
	opusStereo := NewPayloadFormat(Format{MimeType: MimeTypeOpus, SampleRate: 48000, Channels: 2}, 111, 48000, nil)

	assert.False(t, opusMono.Compatible(opusStereo))
	assert.False(t, opusStereo.Compatible(opusMono))
	assert.True(t, opusStereo.Compatible(opusStereo))
}

func TestPayloadFormatCompatibleKeyCase(t *testing.T) {
	h264 := Format{MimeType: MimeTypeH264}

	upper := NewPayloadFormat(h264, 96, 90000, map[string]string{"Packetization-Mode": "1", "Profile-Level-Id": "42e01f"})
	lower := NewPayloadFormat(h264, 96, 90000, map[string]string{"packetization-mode": "1", "profile-level-id": "42e01f"})
	mode0 := NewPayloadFormat(h264, 96, 90000, map[string]string{"packetization-mode": "0", "profile-level-id": "42e01f"})

	assert.True(t, upper.Compatible(lower))
	assert.True(t, lower.Compatible(upper))
	assert.False(t, upper.Compatible(mode0))

	// keys keep the caller's case
	_, ok := upper.FmtpParameters().Get("Packetization-Mode")
	assert.True(t, ok)
}

func TestPayloadFormatMatchesPacket(t *testing.T) {
	payloadFormat := NewPayloadFormat(Format{MimeType: MimeTypeVP9}, 98, 90000, nil)

	assert.True(t, payloadFormat.MatchesPacket(&rtp.Header{Version: 2, PayloadType: 98}))
	assert.False(t, payloadFormat.MatchesPacket(&rtp.Header{Version: 2, PayloadType: 96}))
	assert.False(t, payloadFormat.MatchesPacket(nil))

	packet := &rtp.Packet{Header: rtp.Header{Version: 2, PayloadType: 98, SequenceNumber: 1}, Payload: []byte{0x01}}
	assert.True(t, payloadFormat.MatchesPacket(&packet.Header))
}

func TestPayloadFormatDuration(t *testing.T) {
	video := NewPayloadFormat(Format{MimeType: MimeTypeH264}, 96, 90000, nil)
	assert.Equal(t, time.Second, video.Duration(90000))
	assert.Equal(t, 40*time.Millisecond, video.Duration(3600))

	audio := NewPayloadFormat(Format{MimeType: MimeTypeMLaw, SampleRate: 8000, Channels: 1}, 0, 8000, nil)
	assert.Equal(t, 20*time.Millisecond, audio.Duration(160))

	var zero PayloadFormat
	assert.Equal(t, time.Duration(0), zero.Duration(160))
}
