// Package broadcast provides a type-safe in-process event bus.
//
// It carries the SDK's two process-wide signals: the unauthorized-session
// signal emitted by the transport on 401 responses, and the data-updated
// signal emitted after mutating operations so passive consumers can re-fetch.
// Subscriptions are scoped to a context and sends never block: a subscriber
// that falls behind loses messages rather than stalling the producer.
//
//	bus := broadcast.New[session.UnauthorizedEvent](4)
//	defer bus.Close()
//
//	sub := bus.Subscribe(ctx)
//	go func() {
//		for msg := range sub.Receive() {
//			handle(msg)
//		}
//	}()
//
//	bus.Send(session.UnauthorizedEvent{From: "/graph-data"})
package broadcast
