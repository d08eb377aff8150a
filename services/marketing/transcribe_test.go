package marketing

import (
	"bytes"
	"context"
	"encoding/binary"
	"testing"
)

func wavBytes(t *testing.T, riff, wave string, dataSize uint32) []byte {
	t.Helper()
	header := waveHeader{
		FileSize:      36 + dataSize,
		FmtSize:       16,
		AudioFormat:   1,
		NumChannels:   1,
		SampleRate:    16000,
		ByteRate:      32000,
		BlockAlign:    2,
		BitsPerSample: 16,
		DataSize:      dataSize,
	}
	copy(header.RiffTag[:], riff)
	copy(header.WaveTag[:], wave)
	copy(header.FmtTag[:], "fmt ")
	copy(header.DataTag[:], "data")

	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, &header); err != nil {
		t.Fatalf("encode header: %v", err)
	}
	return buf.Bytes()
}

func TestParseWaveHeader(t *testing.T) {
	header, err := parseWaveHeader(wavBytes(t, "RIFF", "WAVE", 64000))
	if err != nil {
		t.Fatalf("parseWaveHeader error: %v", err)
	}
	if header.SampleRate != 16000 || header.NumChannels != 1 {
		t.Errorf("header = %+v", header)
	}
	if got := header.DataSize / header.ByteRate; got != 2 {
		t.Errorf("duration = %ds, want 2s", got)
	}
}

func TestParseWaveHeaderRejectsNonWav(t *testing.T) {
	if _, err := parseWaveHeader(wavBytes(t, "JUNK", "WAVE", 0)); err == nil {
		t.Error("accepted a non-RIFF file")
	}
	if _, err := parseWaveHeader(wavBytes(t, "RIFF", "OGGS", 0)); err == nil {
		t.Error("accepted a non-WAVE file")
	}
	if _, err := parseWaveHeader([]byte("short")); err == nil {
		t.Error("accepted a truncated header")
	}
}

func TestTranscribeBriefRejectsOversize(t *testing.T) {
	svc := &DefaultMarketingService{}
	oversize := make([]byte, MaxBriefFileSize+1)

	if _, err := svc.TranscribeBrief(context.Background(), oversize, "en-US"); err == nil {
		t.Error("accepted audio above the size cap")
	}
}

func TestTranscribeBriefRejectsNonWav(t *testing.T) {
	svc := &DefaultMarketingService{}

	if _, err := svc.TranscribeBrief(context.Background(), []byte("definitely not audio"), "en-US"); err == nil {
		t.Error("accepted non-WAV bytes")
	}
}
