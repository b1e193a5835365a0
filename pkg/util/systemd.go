package util

import (
	"github.com/coreos/go-systemd/v22/daemon"
)

// sdNotify is swapped in tests.
var sdNotify = daemon.SdNotify

// NotifyReady tells a supervising systemd unit (Type=notify) that startup has
// finished. It reports false when no notification socket is configured.
func NotifyReady() (bool, error) {
	return sdNotify(false, daemon.SdNotifyReady)
}

// NotifyStopping tells a supervising systemd unit that shutdown has begun.
func NotifyStopping() (bool, error) {
	return sdNotify(false, daemon.SdNotifyStopping)
}
