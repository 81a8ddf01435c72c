package capture

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeWAVHeader(t *testing.T) {
	pcm := make([]byte, 1000)
	wav := encodeWAV(pcm, 44100, 1, 16)

	require.Len(t, wav, 44+len(pcm))
	assert.Equal(t, "RIFF", string(wav[0:4]))
	assert.Equal(t, uint32(36+len(pcm)), binary.LittleEndian.Uint32(wav[4:8]))
	assert.Equal(t, "WAVE", string(wav[8:12]))
	assert.Equal(t, "fmt ", string(wav[12:16]))
	assert.Equal(t, uint16(1), binary.LittleEndian.Uint16(wav[20:22]), "PCM format tag")
	assert.Equal(t, uint16(1), binary.LittleEndian.Uint16(wav[22:24]), "channels")
	assert.Equal(t, uint32(44100), binary.LittleEndian.Uint32(wav[24:28]), "sample rate")
	assert.Equal(t, uint32(44100*2), binary.LittleEndian.Uint32(wav[28:32]), "byte rate")
	assert.Equal(t, uint16(2), binary.LittleEndian.Uint16(wav[32:34]), "block align")
	assert.Equal(t, uint16(16), binary.LittleEndian.Uint16(wav[34:36]), "bits per sample")
	assert.Equal(t, "data", string(wav[36:40]))
	assert.Equal(t, uint32(len(pcm)), binary.LittleEndian.Uint32(wav[40:44]))
}

func TestEncodeWAVEmptyRecording(t *testing.T) {
	wav := encodeWAV(nil, 44100, 1, 16)
	require.Len(t, wav, 44)
	assert.Equal(t, uint32(0), binary.LittleEndian.Uint32(wav[40:44]))
}
