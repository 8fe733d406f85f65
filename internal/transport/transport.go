package transport

// EventSender sends serialized input notifications.
type EventSender interface {
	SendEvent(data []byte) error
}

// EventReceiver receives serialized input notifications.
type EventReceiver interface {
	OnEvent(callback func(data []byte))
}

// ActionSender sends resolved binding action names.
type ActionSender interface {
	SendAction(name string) error
}

// ActionReceiver receives resolved binding action names.
type ActionReceiver interface {
	OnAction(callback func(name string))
}
