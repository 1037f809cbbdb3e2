// Package toast presents short-lived, non-blocking user feedback.
//
// The store holds at most one notification at a time: a newer notification
// pre-empts the current one and resets the pending auto-dismiss timer. This
// is a deliberate simplification favoring recency over completeness, not a
// queue. After the duration elapses uninterrupted the notification clears
// itself.
//
//	toasts := toast.NewStore(toast.WithOnChange(render))
//	toasts.Success("Report exported.")
//	toasts.Show("Scan queued.", toast.SeverityInfo, 5*time.Second)
package toast
