package server

// Server is the lifecycle handle the entrypoints drive. RunServer serves
// until a stop signal arrives and then returns; Shutdown drains in-flight
// requests and releases the listener. Calling Shutdown while RunServer is
// blocked is the normal way to stop a server.
type Server interface {
	RunServer()
	Shutdown()
}
