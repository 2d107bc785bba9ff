package consult

import (
	"context"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/clinidoc/clinidoc/internal/domain/records"
)

const minAudioSeconds = 60

// Result is the outcome of one transcription run.
type Result struct {
	Transcript       string           `json:"transcript"`
	Note             records.SOAPNote `json:"soapNotes"`
	EstimatedSeconds float64          `json:"estimatedDurationSeconds"`
	TooShort         bool             `json:"tooShort"`
}

// Service runs the simulated transcription pipeline. Audio content is never
// inspected; duration is estimated from upload size and the transcript and
// note come from a canned sample library.
type Service struct {
	store     *records.Store
	delay     time.Duration
	randIndex func(n int) int
}

// NewService wires the pipeline over the session store. delay simulates
// processing time per run and may be zero.
func NewService(store *records.Store, delay time.Duration) *Service {
	return &Service{
		store:     store,
		delay:     delay,
		randIndex: rand.IntN,
	}
}

// EstimateDuration estimates audio length in seconds from the upload size.
// One megabyte counts as roughly one minute of audio.
func EstimateDuration(sizeBytes int64) float64 {
	return float64(sizeBytes) / (1 << 20) * 60
}

// Transcribe processes an uploaded recording of sizeBytes. Uploads shorter
// than one estimated minute produce a rejection transcript instead of an
// error. Successful runs store the transcript and note as the current
// session note, replacing any previous one.
func (s *Service) Transcribe(ctx context.Context, sizeBytes int64) (Result, error) {
	seconds := EstimateDuration(sizeBytes)
	log.Debug().Float64("estimated_seconds", seconds).Msg("transcription started")

	if err := s.wait(ctx); err != nil {
		return Result{}, err
	}

	if seconds < minAudioSeconds {
		res := Result{
			Transcript:       tooShortTranscript,
			Note:             tooShortNote(),
			EstimatedSeconds: seconds,
			TooShort:         true,
		}
		s.commit(res)
		return res, nil
	}

	i := s.randIndex(len(sampleTranscripts))
	res := Result{
		Transcript:       sampleTranscripts[i],
		Note:             sampleNotes[i],
		EstimatedSeconds: seconds,
	}
	s.commit(res)
	log.Debug().Msg("transcription complete")
	return res, nil
}

// GenerateNote produces a structured note from a transcript. A blank
// transcript yields the per-field fallback note. The generated note
// replaces the current session note.
func (s *Service) GenerateNote(ctx context.Context, transcript string) (records.SOAPNote, error) {
	if err := s.wait(ctx); err != nil {
		return records.SOAPNote{}, err
	}

	var note records.SOAPNote
	if strings.TrimSpace(transcript) == "" {
		note = fallbackNote()
	} else {
		note = sampleNotes[s.randIndex(len(sampleNotes))]
	}

	s.store.SetTranscript(transcript)
	s.store.SetNote(&note)
	return note, nil
}

func (s *Service) commit(res Result) {
	s.store.SetTranscript(res.Transcript)
	note := res.Note
	s.store.SetNote(&note)
}

func (s *Service) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return nil
	}
	t := time.NewTimer(s.delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
