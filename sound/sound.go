// Package sound plays alert sounds through an external player process.
package sound

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("icsterm.sound")

// Player plays sound files.
type Player interface {
	Play(path string) error
}

// ProcessPlayer runs an external command with the sound file as its last
// argument.
type ProcessPlayer struct {
	Name string
	Args []string
}

// Command returns the command that plays path.
func (p *ProcessPlayer) Command(path string) *exec.Cmd {
	args := append(append([]string(nil), p.Args...), path)
	return exec.Command(p.Name, args...)
}

// Play starts the player and returns once it is running. Exit failures are
// logged.
func (p *ProcessPlayer) Play(path string) error {
	if path == "" {
		return nil
	}
	return start(p.Command(path))
}

func start(cmd *exec.Cmd) error {
	log.Debugf("Running %s", strings.Join(cmd.Args, " "))
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", cmd.Path, err)
	}
	go func() {
		if err := cmd.Wait(); err != nil {
			log.Warningf("%s exited: %v", cmd.Path, err)
		}
	}()
	return nil
}

// SampledPlayer plays through the platform's built in sampled audio command.
type SampledPlayer struct {
	ProcessPlayer
}

func newSampledPlayer(goos string) *SampledPlayer {
	if goos == "windows" {
		return &SampledPlayer{ProcessPlayer{Name: "powershell", Args: []string{"-NoProfile", "-Command"}}}
	}
	return &SampledPlayer{ProcessPlayer{Name: "afplay"}}
}

// Command returns the command that plays path.
func (p *SampledPlayer) Command(path string) *exec.Cmd {
	if p.Name == "powershell" {
		script := fmt.Sprintf("(New-Object Media.SoundPlayer '%s').PlaySync()", strings.ReplaceAll(path, "'", "''"))
		return exec.Command(p.Name, append(append([]string(nil), p.Args...), script)...)
	}
	return p.ProcessPlayer.Command(path)
}

func (p *SampledPlayer) Play(path string) error {
	if path == "" {
		return nil
	}
	return start(p.Command(path))
}

// LinuxPlayer plays through ALSA's aplay.
type LinuxPlayer struct {
	ProcessPlayer
}

func newLinuxPlayer() *LinuxPlayer {
	return &LinuxPlayer{ProcessPlayer{Name: "aplay", Args: []string{"-q"}}}
}

// Select picks a player. A configured process name wins; otherwise darwin and
// windows use the sampled player and everything else the Linux player.
func Select(processName, goos string) Player {
	if fields := strings.Fields(processName); len(fields) > 0 {
		return &ProcessPlayer{Name: fields[0], Args: fields[1:]}
	}
	switch goos {
	case "darwin", "windows":
		return newSampledPlayer(goos)
	default:
		return newLinuxPlayer()
	}
}

// Silent discards every sound.
type Silent struct{}

func (Silent) Play(string) error { return nil }
