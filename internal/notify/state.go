package notify

import (
	"fmt"

	"github.com/Tharlwin/nitroshare-go/internal/transfer"
)

const title = "NitroShare transfer"

// placeholder shown when the engine has no display name for the peer
const unknownRemote = "unknown device"

type Phase int

const (
	PhaseCreated Phase = iota + 1
	PhaseConnecting
	PhaseActive
	PhaseSucceeded
	PhaseFailed
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhaseCreated:
		return "created"
	case PhaseConnecting:
		return "connecting"
	case PhaseActive:
		return "active"
	case PhaseSucceeded:
		return "succeeded"
	case PhaseFailed:
		return "failed"
	case PhaseFinished:
		return "finished"
	default:
		return "invalid phase"
	}
}

// Done reports whether the phase is a terminal outcome.
func (p Phase) Done() bool {
	return p == PhaseSucceeded || p == PhaseFailed
}

type IconKind int

const (
	IconDownload IconKind = iota + 1
	IconDownloadDone
	IconUpload
	IconUploadDone
)

func (i IconKind) String() string {
	switch i {
	case IconDownload:
		return "download"
	case IconDownloadDone:
		return "download-done"
	case IconUpload:
		return "upload"
	case IconUploadDone:
		return "upload-done"
	default:
		return "invalid icon"
	}
}

// Icon selects the notification icon for a direction and done flag.
func Icon(dir transfer.Direction, done bool) IconKind {
	if dir == transfer.Receive {
		if done {
			return IconDownloadDone
		}
		return IconDownload
	}
	if done {
		return IconUploadDone
	}
	return IconUpload
}

// Action is a button rendered on a notification. StopID carries the
// transfer the surface should ask to stop when the action is invoked.
type Action struct {
	Label  string `json:"label"`
	StopID ID     `json:"stopId"`
}

// State is an immutable presentation snapshot. A new one is built for every
// transition; surfaces never see a State mutate in place.
type State struct {
	Title         string   `json:"title"`
	Body          string   `json:"body"`
	Icon          IconKind `json:"icon"`
	Progress      int      `json:"progress"`
	Indeterminate bool     `json:"indeterminate"`
	PlaySound     bool     `json:"playSound"`
	Actions       []Action `json:"actions,omitempty"`
}

// Build derives the presentation snapshot for a transfer in the given
// phase. It is pure: the id is only embedded in the stop action of live
// snapshots, and sound is requested only for terminal snapshots when
// soundEnabled is set. The message is included verbatim in failure bodies.
func Build(id ID, dir transfer.Direction, phase Phase, remote string, percent int, message string, soundEnabled bool) State {
	if remote == "" {
		remote = unknownRemote
	}

	s := State{
		Title:     title,
		Icon:      Icon(dir, phase.Done()),
		PlaySound: soundEnabled && phase.Done(),
	}

	switch phase {
	case PhaseCreated, PhaseConnecting:
		if dir == transfer.Receive {
			s.Body = fmt.Sprintf("receiving from %s", remote)
		} else {
			s.Body = fmt.Sprintf("connecting to %s", remote)
		}
		s.Indeterminate = true
	case PhaseActive:
		if dir == transfer.Receive {
			s.Body = fmt.Sprintf("receiving from %s", remote)
		} else {
			s.Body = fmt.Sprintf("sending to %s", remote)
		}
		s.Progress = percent
	case PhaseSucceeded:
		s.Body = fmt.Sprintf("transfer succeeded with %s", remote)
	case PhaseFailed:
		s.Body = fmt.Sprintf("transfer with %s failed: %s", remote, message)
	}

	if !phase.Done() && phase != PhaseFinished {
		s.Actions = []Action{{Label: "Stop", StopID: id}}
	}

	return s
}
