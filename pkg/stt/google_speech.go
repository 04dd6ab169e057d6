package stt

import (
	"context"
	"fmt"

	speech "cloud.google.com/go/speech/apiv1"
	speechpb "cloud.google.com/go/speech/apiv1/speechpb"
	"google.golang.org/api/option"
)

// DefaultLanguage is used when the caller does not name one. Hindi
// recognition on Google STT also catches most Hinglish utterances.
const DefaultLanguage = "hi-IN"

// GoogleSpeech recognizes speech via the Google Cloud Speech-to-Text API.
// Audio is expected as LINEAR16 PCM at 16kHz.
type GoogleSpeech struct {
	c *speech.Client

	Encoding        speechpb.RecognitionConfig_AudioEncoding
	SampleRateHz    int32
	DefaultLanguage string
}

// NewGoogleSpeech creates a Google STT provider. credentialsPath may be
// empty, in which case ambient application default credentials are used.
func NewGoogleSpeech(ctx context.Context, credentialsPath string) (*GoogleSpeech, error) {
	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	c, err := speech.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("stt: failed to create speech client: %w", err)
	}

	return &GoogleSpeech{
		c:               c,
		Encoding:        speechpb.RecognitionConfig_LINEAR16,
		SampleRateHz:    16000,
		DefaultLanguage: DefaultLanguage,
	}, nil
}

func (g *GoogleSpeech) Close() error { return g.c.Close() }

// Transcribe recognizes speech in audio and returns the best alternative.
// Alternate language codes cover callers who speak English or switch
// mid-sentence.
func (g *GoogleSpeech) Transcribe(ctx context.Context, audio []byte, language string) (Result, error) {
	if language == "" {
		language = g.DefaultLanguage
	}

	resp, err := g.c.Recognize(ctx, &speechpb.RecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:                   g.Encoding,
			SampleRateHertz:            g.SampleRateHz,
			LanguageCode:               language,
			AlternativeLanguageCodes:   []string{"en-IN", "en-US"},
			EnableAutomaticPunctuation: true,
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{Content: audio},
		},
	})
	if err != nil {
		return Result{}, fmt.Errorf("stt: recognize failed: %w", err)
	}

	result := Result{Language: language}
	for _, r := range resp.Results {
		if r.LanguageCode != "" {
			result.Language = r.LanguageCode
		}
		for _, alt := range r.Alternatives {
			if alt.Transcript != "" && float64(alt.Confidence) >= result.Confidence {
				result.Text = alt.Transcript
				result.Confidence = float64(alt.Confidence)
			}
		}
	}

	return result, nil
}
