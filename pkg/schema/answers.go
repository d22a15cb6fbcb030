package schema

import (
	"iter"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Answers maps answer labels to formatted values, preserving insertion order.
// A nil *Answers reads as an empty set.
type Answers struct {
	entries *orderedmap.OrderedMap[string, string]
}

// NewAnswers creates an empty answer set.
func NewAnswers() *Answers {
	return &Answers{entries: orderedmap.New[string, string]()}
}

// Set stores value under label. Re-setting a label keeps its original position.
func (a *Answers) Set(label, value string) {
	a.entries.Set(label, value)
}

// Get returns the value stored under label.
func (a *Answers) Get(label string) (string, bool) {
	if a == nil {
		return "", false
	}
	return a.entries.Get(label)
}

// Delete removes label and reports whether it was present.
func (a *Answers) Delete(label string) bool {
	if a == nil {
		return false
	}
	_, present := a.entries.Delete(label)
	return present
}

// Len returns the number of stored answers.
func (a *Answers) Len() int {
	if a == nil {
		return 0
	}
	return a.entries.Len()
}

// All iterates label/value pairs in insertion order.
func (a *Answers) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		if a == nil {
			return
		}
		for pair := a.entries.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}

// Labels returns the labels in insertion order.
func (a *Answers) Labels() []string {
	labels := make([]string, 0, a.Len())
	for label := range a.All() {
		labels = append(labels, label)
	}
	return labels
}

// Map returns an unordered copy of the answers.
func (a *Answers) Map() map[string]string {
	m := make(map[string]string, a.Len())
	for label, value := range a.All() {
		m[label] = value
	}
	return m
}
