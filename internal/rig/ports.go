package rig

import (
	"runtime"
	"strings"

	"go.bug.st/serial/enumerator"
)

// USB vendor IDs seen on Arduino boards and common clones.
var arduinoVIDs = map[string]bool{
	"2341": true, // Arduino
	"2A03": true, // Arduino.org
	"1A86": true, // WCH CH340
	"0403": true, // FTDI
}

// PortInfo describes a serial port found on the host.
type PortInfo struct {
	Name    string
	USB     bool
	VID     string
	PID     string
	Serial  string
	Product string
}

// LikelyArduino reports whether the port's USB vendor is a known Arduino or
// USB-serial bridge vendor.
func (p PortInfo) LikelyArduino() bool {
	return p.USB && arduinoVIDs[strings.ToUpper(p.VID)]
}

// DefaultPort returns the usual port name of the rig on this OS.
func DefaultPort() string {
	switch runtime.GOOS {
	case "windows":
		return "COM6"
	case "darwin":
		return "/dev/cu.usbmodem1101"
	default:
		return "/dev/ttyACM0"
	}
}

// Ports lists serial ports, skipping Bluetooth pseudo-ports.
func Ports() ([]PortInfo, error) {
	details, err := enumerator.GetDetailedPortsList()
	if err != nil {
		return nil, err
	}
	return filterPorts(details), nil
}

func filterPorts(details []*enumerator.PortDetails) []PortInfo {
	var ports []PortInfo
	for _, d := range details {
		// Skip Bluetooth ports on macOS
		if strings.Contains(d.Name, "Bluetooth") {
			continue
		}
		ports = append(ports, PortInfo{
			Name:    d.Name,
			USB:     d.IsUSB,
			VID:     d.VID,
			PID:     d.PID,
			Serial:  d.SerialNumber,
			Product: d.Product,
		})
	}
	return ports
}
