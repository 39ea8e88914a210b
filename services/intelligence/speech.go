// File: services/intelligence/speech.go
package ai

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"strings"

	"casexpert/models"

	speech "cloud.google.com/go/speech/apiv1"
	"cloud.google.com/go/speech/apiv1/speechpb"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

const (
	sttStubModel   = "Whisper-stub"
	sttPlaceholder = "Transcription placeholder"
	googleSTTModel = "google-speech"
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
}

func parseWaveHeader(data []byte) (*waveHeader, error) {
	if len(data) < 44 {
		return nil, errors.New("invalid WAV header length")
	}
	var header waveHeader
	if err := binary.Read(bytes.NewReader(data[:36]), binary.LittleEndian, &header); err != nil {
		return nil, err
	}
	if string(header.RiffTag[:]) != "RIFF" || string(header.WaveTag[:]) != "WAVE" {
		return nil, errors.New("not a RIFF/WAVE file")
	}
	return &header, nil
}

// StubTranscriber returns a fixed placeholder.
type StubTranscriber struct{}

func (StubTranscriber) Transcribe(ctx context.Context, audio []byte, language string) (*models.Transcript, error) {
	return &models.Transcript{Text: sttPlaceholder, Model: sttStubModel}, nil
}

// GoogleTranscriber sends 16-bit PCM WAV audio to Google Cloud Speech.
type GoogleTranscriber struct {
	client *speech.Client
}

func NewGoogleTranscriber(ctx context.Context, credentialsFile string) (*GoogleTranscriber, error) {
	client, err := speech.NewClient(ctx, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize speech client: %w", err)
	}
	return &GoogleTranscriber{client: client}, nil
}

func (g *GoogleTranscriber) Transcribe(ctx context.Context, audio []byte, language string) (*models.Transcript, error) {
	header, err := parseWaveHeader(audio)
	if err != nil {
		return nil, fmt.Errorf("unsupported audio: %w", err)
	}
	if language == "" {
		language = "en-US"
	}

	req := &speechpb.RecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:          speechpb.RecognitionConfig_LINEAR16,
			SampleRateHertz:   int32(header.SampleRate),
			LanguageCode:      language,
			AudioChannelCount: int32(header.NumChannels),
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{Content: audio},
		},
	}

	resp, err := g.client.Recognize(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("speech recognition failed: %w", err)
	}

	var transcript strings.Builder
	for _, result := range resp.Results {
		for _, alt := range result.Alternatives {
			transcript.WriteString(alt.Transcript + " ")
		}
	}
	return &models.Transcript{Text: strings.TrimSpace(transcript.String()), Model: googleSTTModel}, nil
}

func (g *GoogleTranscriber) Close() error {
	return g.client.Close()
}

// FallbackTranscriber uses Primary and answers with the stub when it fails.
type FallbackTranscriber struct {
	Primary Transcriber
	Logger  *zap.Logger
}

func (f FallbackTranscriber) Transcribe(ctx context.Context, audio []byte, language string) (*models.Transcript, error) {
	if f.Primary != nil {
		out, err := f.Primary.Transcribe(ctx, audio, language)
		if err == nil {
			return out, nil
		}
		if f.Logger != nil {
			f.Logger.Warn("transcription failed, using placeholder", zap.Error(err))
		}
	}
	return StubTranscriber{}.Transcribe(ctx, audio, language)
}
