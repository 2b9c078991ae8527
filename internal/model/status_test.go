package model

import "testing"

func TestServerStatus_IsRunning(t *testing.T) {
	tests := []struct {
		status   ServerStatus
		expected bool
	}{
		{ServerStatusUnknown, false},
		{ServerStatusRunning, true},
		{ServerStatusStopped, false},
	}

	for _, test := range tests {
		result := test.status.IsRunning()
		if result != test.expected {
			t.Errorf("ServerStatus(%s).IsRunning() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestServerStatus_String(t *testing.T) {
	status := ServerStatusRunning
	expected := "running"
	result := status.String()

	if result != expected {
		t.Errorf("ServerStatus.String() = %s, expected %s", result, expected)
	}
}

func TestStreamAction_String(t *testing.T) {
	if StreamActionCancel.String() != "cancel" {
		t.Errorf("StreamAction.String() = %s, expected cancel", StreamActionCancel.String())
	}
}
