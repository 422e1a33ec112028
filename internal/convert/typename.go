package convert

import (
	"fmt"
	"strings"

	"topoconvert/internal/domain"
)

// ErrUnknownDevicePrefix marks a device block whose name matches no
// known prefix. This is fatal: the run cannot classify the device.
var ErrUnknownDevicePrefix = fmt.Errorf("unknown device prefix")

// devicePrefixes is the ordered set of legacy name prefixes. The first
// match wins.
var devicePrefixes = []struct {
	Prefix string
	Type   domain.DeviceType
}{
	{"ROUTER", domain.DeviceRouter},
	{"QEMU", domain.DeviceQEMU},
	{"VBOX", domain.DeviceVBOX},
	{"FRSW", domain.DeviceFrameRelaySwitch},
	{"ETHSW", domain.DeviceEthernetSwitch},
	{"Hub", domain.DeviceEthernetHub},
	{"ATMSW", domain.DeviceATMSwitch},
	{"ATMBR", domain.DeviceATMBR},
	{"Cloud", domain.DeviceCloud},
}

// SplitDeviceName maps a legacy device block key such as "ROUTER R1" to
// its type tag and display name. The display name is the key with the
// matched prefix and one following separator removed.
func SplitDeviceName(key string) (string, domain.DeviceType, error) {
	for _, p := range devicePrefixes {
		if !strings.HasPrefix(key, p.Prefix) {
			continue
		}
		name := strings.TrimPrefix(key, p.Prefix)
		name = strings.TrimPrefix(name, " ")
		return name, p.Type, nil
	}
	return "", "", fmt.Errorf("device %q: %w", key, ErrUnknownDevicePrefix)
}
