package editor

type (
	Alert struct {
		Message  string
		Priority AlertPriority
	}

	AlertPriority int

	// Alerts keeps the notices of the session until the UI dismisses them.
	Alerts struct {
		items []Alert
	}
)

const (
	None AlertPriority = iota
	Info
	Warning
	Error
)

const maxAlerts = 8

func (p AlertPriority) String() string {
	switch p {
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	}
	return "none"
}

// Add appends an alert; an identical alert already showing is not repeated.
func (a *Alerts) Add(message string, priority AlertPriority) {
	alert := Alert{Message: message, Priority: priority}
	for _, x := range a.items {
		if x == alert {
			return
		}
	}
	a.items = append(a.items, alert)
	if len(a.items) > maxAlerts {
		a.items = a.items[len(a.items)-maxAlerts:]
	}
}

// Items returns the alerts, oldest first.
func (a *Alerts) Items() []Alert {
	return append([]Alert(nil), a.items...)
}

// Top returns the most severe alert, the latest one if there are several of
// the same priority.
func (a *Alerts) Top() (Alert, bool) {
	var top Alert
	for _, x := range a.items {
		if x.Priority >= top.Priority {
			top = x
		}
	}
	return top, top.Priority != None
}

func (a *Alerts) Dismiss() {
	a.items = a.items[:0]
}
