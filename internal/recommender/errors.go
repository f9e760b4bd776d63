package recommender

import "errors"

var (
	// ErrNoMovies is returned when Generate is called without input titles
	ErrNoMovies = errors.New("no movies provided")

	// ErrModelCall is returned when the chat-completion request fails
	ErrModelCall = errors.New("model call failed")

	// ErrEmptyCompletion is returned when the model replies without any text
	ErrEmptyCompletion = errors.New("model returned an empty completion")
)
