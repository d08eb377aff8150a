// File: services/marketing/transcribe.go
package marketing

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"detailify/config"

	speech "cloud.google.com/go/speech/apiv1"
	"cloud.google.com/go/speech/apiv1/speechpb"
	"google.golang.org/api/option"
)

const (
	MaxBriefSeconds  = 60              // 1 minute maximum
	MaxBriefFileSize = 5 * 1024 * 1024 // 5MB (conservative buffer)
)

type waveHeader struct {
	RiffTag       [4]byte
	FileSize      uint32
	WaveTag       [4]byte
	FmtTag        [4]byte
	FmtSize       uint32
	AudioFormat   uint16
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
	DataTag       [4]byte
	DataSize      uint32
}

func parseWaveHeader(data []byte) (*waveHeader, error) {
	if len(data) < 44 {
		return nil, errors.New("invalid WAV header length")
	}

	var header waveHeader
	buf := bytes.NewReader(data)
	if err := binary.Read(buf, binary.LittleEndian, &header); err != nil {
		return nil, err
	}
	if string(header.RiffTag[:]) != "RIFF" || string(header.WaveTag[:]) != "WAVE" {
		return nil, errors.New("not a WAV file")
	}
	return &header, nil
}

func convertAudio(inputPath, outputPath string) error {
	_, err := exec.LookPath("ffmpeg")
	if err != nil {
		return fmt.Errorf("ffmpeg not found in system PATH: %v", err)
	}

	cmd := exec.Command("ffmpeg",
		"-y",
		"-i", inputPath,
		"-acodec", "pcm_s16le",
		"-ac", "1",
		"-ar", "16000",
		outputPath,
	)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("ffmpeg conversion failed: %s", stderr.String())
	}
	return nil
}

// TranscribeBrief turns a recorded voice memo into text for the Brief
// field of a content request. Input must be WAV, at most 5MB and one
// minute; it is resampled to 16kHz mono before recognition.
func (s *DefaultMarketingService) TranscribeBrief(ctx context.Context, wavData []byte, language string) (string, error) {
	if len(wavData) > MaxBriefFileSize {
		return "", fmt.Errorf("audio exceeds %d bytes", MaxBriefFileSize)
	}
	if language == "" {
		language = "en-US"
	}
	if _, err := parseWaveHeader(wavData); err != nil {
		return "", fmt.Errorf("invalid audio: %w", err)
	}

	tempInput, err := os.CreateTemp("", "brief-*.wav")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tempInput.Name())
	defer tempInput.Close()

	if _, err := tempInput.Write(wavData); err != nil {
		return "", fmt.Errorf("failed to save audio: %w", err)
	}

	tempOutput, err := os.CreateTemp("", "brief-converted-*.wav")
	if err != nil {
		return "", fmt.Errorf("failed to create output temp file: %w", err)
	}
	defer os.Remove(tempOutput.Name())
	defer tempOutput.Close()

	if err := convertAudio(tempInput.Name(), tempOutput.Name()); err != nil {
		return "", err
	}

	audioData, err := os.ReadFile(tempOutput.Name())
	if err != nil {
		return "", fmt.Errorf("failed to read converted audio: %w", err)
	}

	header, err := parseWaveHeader(audioData)
	if err != nil {
		return "", fmt.Errorf("invalid converted audio: %w", err)
	}
	if header.ByteRate > 0 && int(header.DataSize/header.ByteRate) > MaxBriefSeconds {
		return "", fmt.Errorf("audio exceeds %d seconds", MaxBriefSeconds)
	}

	client, err := speech.NewClient(ctx, option.WithCredentialsFile(config.AppConfig.GoogleServiceAccountFile))
	if err != nil {
		return "", fmt.Errorf("failed to initialize speech client: %w", err)
	}
	defer client.Close()

	req := &speechpb.RecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:          speechpb.RecognitionConfig_LINEAR16,
			SampleRateHertz:   16000,
			LanguageCode:      language,
			AudioChannelCount: 1, // Mono
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{
				Content: audioData,
			},
		},
	}

	resp, err := client.Recognize(ctx, req)
	if err != nil {
		return "", fmt.Errorf("speech recognition failed: %w", err)
	}

	var transcript strings.Builder
	for _, result := range resp.Results {
		for _, alt := range result.Alternatives {
			transcript.WriteString(alt.Transcript + " ")
		}
	}
	return strings.TrimSpace(transcript.String()), nil
}
