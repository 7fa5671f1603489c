package speech

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// SimulatedSynthesizer is a stand-in for a platform voice service. It
// "speaks" for a duration proportional to the text length and then reports
// completion. Useful for servers without audio output and for development.
type SimulatedSynthesizer struct {
	mu       sync.Mutex
	logger   *zap.SugaredLogger
	perRune  time.Duration
	cancelCh chan struct{}
}

func NewSimulatedSynthesizer(logger *zap.SugaredLogger) *SimulatedSynthesizer {
	return &SimulatedSynthesizer{
		logger:  logger,
		perRune: 40 * time.Millisecond,
	}
}

func (s *SimulatedSynthesizer) Speak(text string, voiceId string, done func()) {
	s.mu.Lock()
	var cancelCh = make(chan struct{})
	s.cancelCh = cancelCh
	s.mu.Unlock()

	var duration = time.Duration(len([]rune(text))) * s.perRune
	s.logger.Debugw("simulated utterance started", "voice", voiceId, "duration", duration)

	go func() {
		select {
		case <-time.After(duration):
			done()
		case <-cancelCh:
			s.logger.Debugw("simulated utterance cancelled")
		}
	}()
}

func (s *SimulatedSynthesizer) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancelCh != nil {
		close(s.cancelCh)
		s.cancelCh = nil
	}
}
