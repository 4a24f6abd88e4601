package cpo

import (
	"emipcpo/internal"
	"fmt"
	"time"
)

// AttachLogger subscribes a log handler to client traffic. With no operations
// given every call is logged.
func AttachLogger(c *Client, handler internal.LogHandler, operations ...string) {
	if handler == nil {
		return
	}
	c.Subscribe(func(event Event) {
		switch event.Stage {
		case StageRequest:
			handler.FeatureEvent(event.Operation, event.EntityId,
				fmt.Sprintf("request sent, tracking id %s", event.EventTrackingId))
		case StageResponse:
			text := fmt.Sprintf("%s (%d) in %s", event.Status.Text(), event.Status.Code(), event.Duration.Round(time.Millisecond))
			if event.Err != nil {
				text = fmt.Sprintf("%s; %v", text, event.Err)
			}
			handler.FeatureEvent(event.Operation, event.EntityId, text)
		}
	}, operations...)
}
