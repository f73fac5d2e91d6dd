// Package events defines the payloads the scheduling engine publishes
// on the internal event bus.
package events
