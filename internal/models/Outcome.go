package models

import "encoding/json"

// Outcome is the result of one upstream call: either a value or the reason
// it is missing.
type Outcome[T any] struct {
	Value  *T
	Reason string
}

func Available[T any](v T) Outcome[T] {
	return Outcome[T]{Value: &v}
}

func Unavailable[T any](reason string) Outcome[T] {
	return Outcome[T]{Reason: reason}
}

func (o Outcome[T]) OK() bool {
	return o.Value != nil
}

// MarshalJSON renders the value, or {"message": reason} when absent.
func (o Outcome[T]) MarshalJSON() ([]byte, error) {
	if o.Value != nil {
		return json.Marshal(o.Value)
	}
	return json.Marshal(Message{Message: o.Reason})
}

type Message struct {
	Message string `json:"message" example:"Could not retrieve weather data."`
}
