package cpo

import (
	"emipcpo/types"
	"emipcpo/utility"
	"log"
	"sync"
	"time"
)

type Stage int

const (
	StageRequest Stage = iota
	StageResponse
)

func (s Stage) String() string {
	if s == StageRequest {
		return "request"
	}
	return "response"
}

// Event is the snapshot handed to observers around every client call. The
// request stage fires before the transport send begins; the response stage
// fires once a final response exists, classified or parsed.
type Event struct {
	Operation       string
	Stage           Stage
	Timestamp       time.Time
	EventTrackingId types.EventTrackingId
	PartnerId       types.PartnerId
	OperatorId      types.OperatorId
	EntityId        string
	TransactionId   types.TransactionId
	RequestTimeout  time.Duration
	Request         interface{}
	Response        interface{}
	Status          types.RequestStatus
	Duration        time.Duration
	Err             error
}

type Observer func(Event)

type subscription struct {
	observer   Observer
	operations []string
}

func (s subscription) matches(operation string) bool {
	if len(s.operations) == 0 {
		return true
	}
	return utility.Contains(s.operations, operation) || utility.Contains(s.operations, "All")
}

// Subscribe registers an observer for the given operations; no operations
// means all of them. Subscriptions are expected to be set up before the
// client takes traffic; concurrent registration during live calls is the
// caller's responsibility.
func (c *Client) Subscribe(observer Observer, operations ...string) {
	if observer == nil {
		return
	}
	c.subscriptions = append(c.subscriptions, subscription{
		observer:   observer,
		operations: operations,
	})
}

// publish dispatches one event to all matching observers concurrently and
// waits for the batch. A failing observer never aborts the call.
func (c *Client) publish(event Event) {
	var wg sync.WaitGroup
	for _, sub := range c.subscriptions {
		if !sub.matches(event.Operation) {
			continue
		}
		wg.Add(1)
		go func(observer Observer) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					log.Printf("%s: %s observer failed: %v", event.Operation, event.Stage, r)
				}
			}()
			observer(event)
		}(sub.observer)
	}
	wg.Wait()
}
