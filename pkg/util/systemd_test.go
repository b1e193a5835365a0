package util

import (
	"testing"

	"github.com/coreos/go-systemd/v22/daemon"
)

func TestNotifyStates(t *testing.T) {
	prev := sdNotify
	t.Cleanup(func() { sdNotify = prev })

	var states []string
	sdNotify = func(unsetEnvironment bool, state string) (bool, error) {
		if unsetEnvironment {
			t.Fatalf("environment must be preserved for later notifications")
		}
		states = append(states, state)
		return true, nil
	}

	if ok, err := NotifyReady(); !ok || err != nil {
		t.Fatalf("NotifyReady() = %v, %v", ok, err)
	}
	if ok, err := NotifyStopping(); !ok || err != nil {
		t.Fatalf("NotifyStopping() = %v, %v", ok, err)
	}

	if len(states) != 2 || states[0] != daemon.SdNotifyReady || states[1] != daemon.SdNotifyStopping {
		t.Fatalf("unexpected states %v", states)
	}
}

func TestNotifyReadyWithoutSocket(t *testing.T) {
	t.Setenv("NOTIFY_SOCKET", "")

	ok, err := NotifyReady()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatalf("expected no notification without a socket")
	}
}
