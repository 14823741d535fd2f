package services

// AutoConfirmer confirms every operation immediately. Used by the HTTP
// surface, where the client presents the confirmation dialog before it
// issues the destructive request.
type AutoConfirmer struct{}

// Confirm invokes onConfirm unconditionally.
func (AutoConfirmer) Confirm(_, _ string, onConfirm func() error) error {
	return onConfirm()
}
