package ui

// Bubble Tea messages

// copiedMsg reports the outcome of a clipboard write.
type copiedMsg struct{ ok bool }

// ackExpiredMsg hides the copy acknowledgment of generation gen.
type ackExpiredMsg struct{ gen uint64 }
