package sound

import (
	"fmt"
	"os/exec"
	"time"
)

type command struct {
	name string
	args []string
}

// tryCommands runs candidates in order until one succeeds.
func tryCommands(candidates []command) error {
	var err error
	for _, c := range candidates {
		if err = exec.Command(c.name, c.args...).Run(); err == nil {
			return nil
		}
	}
	if err == nil {
		err = errNoPlayer
	}
	return err
}

var errNoPlayer = fmt.Errorf("no audio player available")

// terminalBell is the last-resort notification.
func terminalBell() error {
	fmt.Print("\a")
	return nil
}

// musicLoop replays the platform background sound until stopped. A
// failed play backs off instead of spinning.
func musicLoop(stop chan struct{}) {
	for {
		select {
		case <-stop:
			return
		default:
		}
		if err := playMusicOnce(); err != nil {
			select {
			case <-stop:
				return
			case <-time.After(30 * time.Second):
			}
		}
	}
}
