// Package media reads the currently playing track from MPRIS players on the
// D-Bus session bus so a field can be seeded from it.
package media

import (
	"errors"
	"fmt"
	"hash/fnv"
	"strings"
	"sync"
	"time"

	"github.com/godbus/dbus/v5"

	"noisefield/internal/logging"
)

const (
	mprisPrefix = "org.mpris.MediaPlayer2."
	mprisPath   = "/org/mpris/MediaPlayer2"
	playerIface = "org.mpris.MediaPlayer2.Player"
	propGet     = "org.freedesktop.DBus.Properties.Get"
	refresh     = 2 * time.Second
)

var ErrNoPlayer = errors.New("media: no MPRIS player found")

type Track struct {
	App     string
	Artist  string
	Title   string
	Playing bool
}

func (t Track) String() string {
	switch {
	case t.Artist != "" && t.Title != "":
		return fmt.Sprintf("%s - %s (%s)", t.Artist, t.Title, t.App)
	case t.Title != "":
		return fmt.Sprintf("%s (%s)", t.Title, t.App)
	}
	return t.App
}

// Seed hashes app, artist and title with FNV-1a. Playback state is left out
// so pausing a song does not change its field.
func (t Track) Seed() uint32 {
	h := fnv.New32a()
	for _, s := range []string{t.App, t.Artist, t.Title} {
		h.Write([]byte(s))
		h.Write([]byte{0})
	}
	return h.Sum32()
}

type Provider struct {
	mu        sync.Mutex
	conn      *dbus.Conn
	last      Track
	found     bool
	lastCheck time.Time
}

func NewProvider() (*Provider, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return nil, fmt.Errorf("media: connect to session bus: %w", err)
	}
	return &Provider{conn: conn}, nil
}

func (p *Provider) Close() error {
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

// Current returns the playing track, or the first player with a name when
// nothing plays. Results are cached for two seconds.
func (p *Provider) Current() (Track, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.lastCheck.IsZero() && time.Since(p.lastCheck) < refresh {
		if !p.found {
			return Track{}, ErrNoPlayer
		}
		return p.last, nil
	}
	p.lastCheck = time.Now()

	players, err := p.Players()
	if err != nil {
		return Track{}, err
	}

	tracks := make([]Track, 0, len(players))
	for _, name := range players {
		tracks = append(tracks, p.query(name))
	}

	t, ok := pick(tracks)
	p.last, p.found = t, ok
	if !ok {
		return Track{}, ErrNoPlayer
	}
	logging.L().Debug("media track", "track", t.String(), "playing", t.Playing)
	return t, nil
}

// Players lists the MPRIS bus names currently registered.
func (p *Provider) Players() ([]string, error) {
	var names []string
	if err := p.conn.BusObject().Call("org.freedesktop.DBus.ListNames", 0).Store(&names); err != nil {
		return nil, fmt.Errorf("media: list bus names: %w", err)
	}

	var players []string
	for _, name := range names {
		if strings.HasPrefix(name, mprisPrefix) {
			players = append(players, name)
		}
	}
	return players, nil
}

func (p *Provider) query(busName string) Track {
	obj := p.conn.Object(busName, mprisPath)

	var status string
	if err := obj.Call(propGet, 0, playerIface, "PlaybackStatus").Store(&status); err != nil {
		logging.L().Debug("playback status", "player", busName, "err", err)
		return Track{App: appName(busName)}
	}

	var meta dbus.Variant
	if err := obj.Call(propGet, 0, playerIface, "Metadata").Store(&meta); err != nil {
		return trackFrom(busName, status, nil)
	}
	m, _ := meta.Value().(map[string]dbus.Variant)
	return trackFrom(busName, status, m)
}

// pick prefers a playing track, then any track with a known app.
func pick(tracks []Track) (Track, bool) {
	for _, t := range tracks {
		if t.Playing {
			return t, true
		}
	}
	for _, t := range tracks {
		if t.App != "" {
			return t, true
		}
	}
	return Track{}, false
}

func trackFrom(busName, status string, meta map[string]dbus.Variant) Track {
	t := Track{
		App:     appName(busName),
		Playing: status == "Playing",
	}
	if meta == nil {
		return t
	}
	t.Artist = stringList(meta, "xesam:artist")
	t.Title = str(meta, "xesam:title")
	if t.Artist == "" {
		t.Artist = str(meta, "xesam:album")
	}
	return t
}

// appName turns org.mpris.MediaPlayer2.spotify.instance42 into Spotify.
func appName(busName string) string {
	rest, ok := strings.CutPrefix(busName, mprisPrefix)
	if !ok || rest == "" {
		return ""
	}
	name, _, _ := strings.Cut(rest, ".")
	if name == "" {
		return ""
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

func str(meta map[string]dbus.Variant, key string) string {
	v, ok := meta[key]
	if !ok {
		return ""
	}
	s, _ := v.Value().(string)
	return s
}

func stringList(meta map[string]dbus.Variant, key string) string {
	v, ok := meta[key]
	if !ok {
		return ""
	}
	switch val := v.Value().(type) {
	case []string:
		return strings.Join(val, ", ")
	case string:
		return val
	}
	return ""
}
