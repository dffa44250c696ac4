// Package adapter lets an AudioPlayer play formats it only knows through
// an AdvancedMediaPlayer.
package adapter

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sghaida/patterns/demo"
)

// MediaPlayer is the interface clients expect.
type MediaPlayer interface {
	Play(audioType, fileName string) error
}

// AdvancedMediaPlayer is the incompatible interface being adapted.
type AdvancedMediaPlayer interface {
	PlayVlc(fileName string)
	PlayMp4(fileName string)
}

// UnsupportedMediaError is returned for an audio type no player handles.
type UnsupportedMediaError struct{ AudioType string }

// Error implements the error interface.
func (e UnsupportedMediaError) Error() string {
	return "adapter: unsupported media type " + strconv.Quote(e.AudioType)
}

// VlcPlayer only plays vlc files.
type VlcPlayer struct{ Out io.Writer }

func (p VlcPlayer) PlayVlc(fileName string) { fmt.Fprintf(p.Out, "Playing vlc file. Name: %s\n", fileName) }
func (VlcPlayer) PlayMp4(string)            {}

// Mp4Player only plays mp4 files.
type Mp4Player struct{ Out io.Writer }

func (Mp4Player) PlayVlc(string)            {}
func (p Mp4Player) PlayMp4(fileName string) { fmt.Fprintf(p.Out, "Playing mp4 file. Name: %s\n", fileName) }

// MediaAdapter exposes an AdvancedMediaPlayer as a MediaPlayer.
type MediaAdapter struct {
	player AdvancedMediaPlayer
}

// NewMediaAdapter picks the advanced player for audioType.
func NewMediaAdapter(audioType string, out io.Writer) (*MediaAdapter, error) {
	switch {
	case strings.EqualFold(audioType, "vlc"):
		return &MediaAdapter{player: VlcPlayer{Out: out}}, nil
	case strings.EqualFold(audioType, "mp4"):
		return &MediaAdapter{player: Mp4Player{Out: out}}, nil
	}
	return nil, UnsupportedMediaError{AudioType: audioType}
}

// Play forwards vlc and mp4 to the wrapped player and rejects other types.
func (a *MediaAdapter) Play(audioType, fileName string) error {
	switch {
	case strings.EqualFold(audioType, "vlc"):
		a.player.PlayVlc(fileName)
	case strings.EqualFold(audioType, "mp4"):
		a.player.PlayMp4(fileName)
	default:
		return UnsupportedMediaError{AudioType: audioType}
	}
	return nil
}

// AudioPlayer plays mp3 itself and delegates vlc and mp4 to a MediaAdapter.
type AudioPlayer struct {
	Out io.Writer
}

// Play handles mp3 directly and adapts vlc and mp4; other types yield UnsupportedMediaError.
func (p AudioPlayer) Play(audioType, fileName string) error {
	if strings.EqualFold(audioType, "mp3") {
		fmt.Fprintf(p.Out, "Playing mp3 file. Name: %s\n", fileName)
		return nil
	}
	adapter, err := NewMediaAdapter(audioType, p.Out)
	if err != nil {
		return err
	}
	return adapter.Play(audioType, fileName)
}

// Demo plays mp3, mp4 and vlc files and rejects an avi file.
var Demo = demo.Define("adapter", demo.Structural,
	"Convert one interface into another that clients expect",
	func(w io.Writer) error {
		var player MediaPlayer = AudioPlayer{Out: w}
		requests := []struct{ audioType, file string }{
			{"mp3", "beyond the horizon.mp3"},
			{"mp4", "alone.mp4"},
			{"vlc", "far far away.vlc"},
			{"avi", "mind me.avi"},
		}
		for _, r := range requests {
			if err := player.Play(r.audioType, r.file); err != nil {
				var unsupported UnsupportedMediaError
				if !errors.As(err, &unsupported) {
					return err
				}
				fmt.Fprintf(w, "Invalid media. %s format not supported\n", unsupported.AudioType)
			}
		}
		return nil
	})
