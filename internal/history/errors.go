package history

import "fmt"

// UserMessage is the single message shown for any failed fetch
const UserMessage = "No se pudo cargar el historial. Revisa tu sesión."

// StatusError reports a non-2xx response from the history endpoint
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d", e.Code)
}
