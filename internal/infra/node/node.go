// Package node exposes identity metadata for the running server instance.
// Main stamps it into the default logger and the OTel resource.
package node

import (
	"net"
	"sync"

	"catalog-server/internal/infra/utils"
)

// Version and CommitHash are overridden at build time through ldflags.
var (
	Version    = "development"
	CommitHash = "unknown"
)

// Info identifies this server instance.
type Info struct {
	ID         string
	IPAddress  string
	Version    string
	CommitHash string
}

var (
	current  Info
	loadOnce sync.Once
)

// Current returns the instance identity. The ID and the IP address are
// resolved once and reused for the lifetime of the process.
func Current() Info {
	loadOnce.Do(func() {
		current = Info{
			ID:         utils.GenerateUUID(),
			IPAddress:  localIP(),
			Version:    Version,
			CommitHash: CommitHash,
		}
	})
	return current
}

// localIP resolves the outbound interface address. Dialing UDP binds the
// socket without sending traffic.
func localIP() string {
	conn, err := net.Dial("udp", "8.8.8.8:80")
	if err != nil {
		return "127.0.0.1"
	}
	defer conn.Close()

	return conn.LocalAddr().(*net.UDPAddr).IP.String()
}
