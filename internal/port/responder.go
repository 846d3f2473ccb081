package port

// Responder turns a query into formatted response text.
type Responder interface {
	Respond(query string) string
}
