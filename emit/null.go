package emit

// NullEmitter discards every event.
type NullEmitter struct{}

// NewNullEmitter returns a NullEmitter.
func NewNullEmitter() *NullEmitter { return &NullEmitter{} }

// Emit does nothing.
func (*NullEmitter) Emit(Event) {}
