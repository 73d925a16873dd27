package spectrum

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bogem/id3v2/v2"
	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/vorbis"
	"github.com/faiface/beep/wav"
)

// OpenFunc yields a fresh decoded track.
type OpenFunc func() (beep.StreamSeekCloser, beep.Format, error)

// FileOpener decodes the file at path by its extension.
func FileOpener(path string) OpenFunc {
	return func() (beep.StreamSeekCloser, beep.Format, error) {
		return Open(path)
	}
}

// Open decodes an ogg, wav, mp3 or flac file. The returned streamer owns the
// file and closes it on Close.
func Open(path string) (beep.StreamSeekCloser, beep.Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, err
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".ogg":
		streamer, format, err = vorbis.Decode(f)
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	default:
		_ = f.Close()
		return nil, beep.Format{}, fmt.Errorf("unsupported file type: %q", ext)
	}
	if err != nil {
		_ = f.Close()
		return nil, beep.Format{}, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return streamer, format, nil
}

// Supported reports whether Open can decode path.
func Supported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ogg", ".wav", ".mp3", ".flac":
		return true
	}
	return false
}

// ReadTitle returns "Artist - Title" from ID3v2 tags when present, otherwise
// the file name without extension.
func ReadTitle(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".mp3") {
		tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
		if err == nil {
			defer tag.Close()
			title := strings.TrimSpace(tag.Title())
			artist := strings.TrimSpace(tag.Artist())
			switch {
			case title != "" && artist != "":
				return artist + " - " + title
			case title != "":
				return title
			}
		}
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Duration is the length of a decoded track.
func Duration(s beep.StreamSeekCloser, format beep.Format) time.Duration {
	return format.SampleRate.D(s.Len())
}
