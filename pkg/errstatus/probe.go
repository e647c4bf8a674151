package errstatus

import "runtime"

// ServerProbe reports whether the current execution context is the server
// side of an isomorphic deployment. It is injected rather than read from
// ambient globals so the logging gate stays pure and testable; see
// [WithServerProbe].
type ServerProbe func() bool

// DefaultServerProbe treats every runtime as a server context except Go
// delivered to a browser (js/wasm builds).
func DefaultServerProbe() bool {
	return runtime.GOOS != "js" && runtime.GOARCH != "wasm"
}
