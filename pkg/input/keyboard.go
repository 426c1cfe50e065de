package input

import (
	"github.com/eiannone/keyboard"
)

// KeyboardHandler handles keyboard input for interactive feeding
type KeyboardHandler struct {
	inputChan chan KeyInput
}

// KeyInput represents a keyboard input event
type KeyInput struct {
	Char rune
	Key  keyboard.Key
}

// NewKeyboardHandler creates a new keyboard input handler
func NewKeyboardHandler() *KeyboardHandler {
	return &KeyboardHandler{
		inputChan: make(chan KeyInput),
	}
}

// Start begins listening for keyboard input
func (h *KeyboardHandler) Start() error {
	if err := keyboard.Open(); err != nil {
		return err
	}

	go func() {
		for {
			char, key, err := keyboard.GetKey()
			if err != nil {
				return
			}
			h.inputChan <- KeyInput{Char: char, Key: key}
		}
	}()

	return nil
}

// Stop stops the keyboard handler
func (h *KeyboardHandler) Stop() {
	keyboard.Close()
}

// GetInputChan returns the input channel
func (h *KeyboardHandler) GetInputChan() <-chan KeyInput {
	return h.inputChan
}

// IsFeed checks if the input feeds the snake one apple
func IsFeed(input KeyInput) bool {
	return input.Char == 'f' || input.Char == 'F' ||
		input.Key == keyboard.KeySpace || input.Key == keyboard.KeyEnter
}

// IsReset checks if the input resets the snake
func IsReset(input KeyInput) bool {
	return input.Char == 'r' || input.Char == 'R'
}

// IsQuit checks if the input is a quit command
func IsQuit(input KeyInput) bool {
	return input.Char == 'q' || input.Char == 'Q' || input.Key == keyboard.KeyEsc
}
