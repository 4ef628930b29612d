package tool

import (
	"fmt"
	"net"
)

// egressProbeAddress is only consulted by the OS routing table; no packet is
// ever sent to it.
const egressProbeAddress = "8.8.8.8:80"

// LocalEgressIPv4 returns the IPv4 address of the interface the OS routes
// external traffic through. Opening a connected UDP socket makes the kernel
// pick a source address without any traffic leaving the machine.
func LocalEgressIPv4() (string, error) {
	conn, err := net.Dial("udp4", egressProbeAddress)
	if err != nil {
		return "", fmt.Errorf("failed to discover egress interface: %v", err)
	}
	defer conn.Close()

	addr, ok := conn.LocalAddr().(*net.UDPAddr)
	if !ok || addr.IP == nil {
		return "", fmt.Errorf("failed to read local address from egress probe")
	}
	return addr.IP.String(), nil
}
