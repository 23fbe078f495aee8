package service

import "log"

// LogNotifier writes user-facing messages to the process log. The UI layer
// substitutes its own sink.
type LogNotifier struct{}

func (LogNotifier) Notify(message string) {
	log.Printf("[erp] %s", message)
}

var _ Notifier = LogNotifier{}
