package world

import (
	"log"
	"sync"
)

// MessageSound selects the sound that accompanies a player message.
type MessageSound int

// Message sounds.
const (
	MessageSilent MessageSound = iota
	MessageStandard
	MessageNegative
	MessageBenefit
)

var messageSoundNames = [...]string{"silent", "standard", "negative", "benefit"}

func (s MessageSound) String() string {
	if s < MessageSilent || s > MessageBenefit {
		return "unknown"
	}

	return messageSoundNames[s]
}

// Message is a player-facing message.
type Message struct {
	Text  string
	Sound MessageSound
}

// SoundEvent is a one-shot sound played at a cell.
type SoundEvent struct {
	Sound string
	At    Cell
}

// Feedback collects the messages and sounds emitted to the player and logs
// the messages.
type Feedback struct {
	lock     sync.Mutex
	logger   *log.Logger
	messages []Message
	sounds   []SoundEvent
}

// NewFeedback creates a Feedback that logs messages to logger. A nil logger
// disables logging.
func NewFeedback(logger *log.Logger) *Feedback {
	return &Feedback{logger: logger}
}

// Message shows a message to the player.
func (f *Feedback) Message(text string, sound MessageSound) {
	f.lock.Lock()
	defer f.lock.Unlock()

	f.messages = append(f.messages, Message{Text: text, Sound: sound})

	if f.logger != nil {
		f.logger.Printf("message [%s]: %s", sound, text)
	}
}

// PlayOneShot plays a sound once at a cell. Empty sounds are ignored.
func (f *Feedback) PlayOneShot(sound string, at Cell) {
	if sound == "" {
		return
	}

	f.lock.Lock()
	defer f.lock.Unlock()

	f.sounds = append(f.sounds, SoundEvent{Sound: sound, At: at})
}

// Messages returns the messages shown so far.
func (f *Feedback) Messages() []Message {
	f.lock.Lock()
	defer f.lock.Unlock()

	return append([]Message(nil), f.messages...)
}

// Sounds returns the sounds played so far.
func (f *Feedback) Sounds() []SoundEvent {
	f.lock.Lock()
	defer f.lock.Unlock()

	return append([]SoundEvent(nil), f.sounds...)
}
