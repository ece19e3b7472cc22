// Package listener opens the TCP listener the server accepts on.
package listener

import (
	"context"
	"net"
)

// Listen binds a TCP listener on addr. On unix systems the socket has
// SO_REUSEADDR set so a restarted server can rebind while old connections
// sit in TIME_WAIT.
func Listen(ctx context.Context, addr string) (net.Listener, error) {
	lc := net.ListenConfig{Control: control}
	return lc.Listen(ctx, "tcp", addr)
}
