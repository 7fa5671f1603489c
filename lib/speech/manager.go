package speech

import (
	"sync"

	"go.uber.org/zap"
)

type State string

const (
	StateIdle     State = "idle"
	StateSpeaking State = "speaking"
)

// Synthesizer is the platform text-to-speech capability, injected by the
// surrounding app. Speak must be asynchronous and call done exactly once when
// the utterance finishes on its own; Cancel aborts the current utterance, in
// which case done may or may not fire.
type Synthesizer interface {
	Speak(text string, voiceId string, done func())
	Cancel()
}

// Manager drives the synthesizer and tracks the observable idle/speaking
// state. Commands are fire-and-forget and legal at any time; at most one
// utterance is ever active, so a Speak issued while speaking first cancels
// the in-flight utterance.
type Manager struct {
	mu        sync.Mutex
	synth     Synthesizer
	logger    *zap.SugaredLogger
	state     State
	voiceId   string
	utterance int
	listeners []func(State)
}

func NewManager(synth Synthesizer, voiceId string, logger *zap.SugaredLogger) *Manager {
	return &Manager{
		synth:   synth,
		logger:  logger,
		state:   StateIdle,
		voiceId: voiceId,
	}
}

func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *Manager) VoiceId() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.voiceId
}

// OnStateChange registers a listener called after every state transition.
// Listeners run outside the manager lock.
func (m *Manager) OnStateChange(listener func(State)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listeners = append(m.listeners, listener)
}

// Speak starts speaking text. An in-flight utterance is cancelled first.
// Speaking the empty string is a no-op.
func (m *Manager) Speak(text string) {
	if text == "" {
		return
	}

	m.mu.Lock()
	if m.state == StateSpeaking {
		m.synth.Cancel()
	}
	m.utterance++
	var current = m.utterance
	m.state = StateSpeaking
	var notify = m.snapshotListeners()

	m.logger.Debugw("speaking", "chars", len(text), "voice", m.voiceId)
	// The synthesizer call stays inside the locked section so concurrent
	// Speak calls keep their Cancel/Speak pairs ordered; Speak is
	// asynchronous, so no callback can re-enter the lock here.
	m.synth.Speak(text, m.voiceId, func() {
		m.finish(current)
	})
	m.mu.Unlock()

	fanOut(notify, StateSpeaking)
}

// Stop cancels the in-flight utterance, if any.
func (m *Manager) Stop() {
	m.mu.Lock()
	if m.state != StateSpeaking {
		m.mu.Unlock()
		return
	}
	m.synth.Cancel()
	m.utterance++
	m.state = StateIdle
	var notify = m.snapshotListeners()
	m.mu.Unlock()

	fanOut(notify, StateIdle)
}

// SetVoice selects the voice for subsequent utterances; the current one is
// not interrupted.
func (m *Manager) SetVoice(voiceId string) {
	m.mu.Lock()
	m.voiceId = voiceId
	m.mu.Unlock()
}

// finish handles asynchronous utterance completion. Completions of cancelled
// or superseded utterances are ignored.
func (m *Manager) finish(utterance int) {
	m.mu.Lock()
	if utterance != m.utterance || m.state != StateSpeaking {
		m.mu.Unlock()
		return
	}
	m.state = StateIdle
	var notify = m.snapshotListeners()
	m.mu.Unlock()

	fanOut(notify, StateIdle)
}

func (m *Manager) snapshotListeners() []func(State) {
	var copied = make([]func(State), len(m.listeners))
	copy(copied, m.listeners)
	return copied
}

func fanOut(listeners []func(State), state State) {
	for _, listener := range listeners {
		listener(state)
	}
}
