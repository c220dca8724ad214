// Package persist stores window geometry in a bbolt database so windows
// reopen where the user left them.
package persist

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"time"

	bolt "go.etcd.io/bbolt"

	gui "github.com/go-theft-auto/framegui"
)

const bucketWindows = "windows"

// recordSize is four little-endian float32 values: pos x/y, size x/y.
const recordSize = 16

// ErrCorrupt is returned when a stored record cannot be decoded.
var ErrCorrupt = errors.New("persist: corrupt window record")

// Store is a gui.SettingsStore backed by a bbolt file.
type Store struct {
	db *bolt.DB
}

var _ gui.SettingsStore = (*Store)(nil)

// Open opens or creates the database at path.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0o644, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open settings db: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketWindows))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize settings db: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database file.
func (s *Store) Close() error {
	return s.db.Close()
}

// LoadWindow returns the stored geometry of window id, or ok=false when
// nothing was saved yet.
func (s *Store) LoadWindow(id gui.ID) (gui.WindowSettings, bool, error) {
	var (
		ws gui.WindowSettings
		ok bool
	)
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(bucketWindows)).Get(windowKey(id))
		if v == nil {
			return nil
		}
		var err error
		ws, err = decodeWindow(v)
		ok = err == nil
		return err
	})
	return ws, ok, err
}

// SaveWindow stores the geometry of window id.
func (s *Store) SaveWindow(id gui.ID, ws gui.WindowSettings) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketWindows)).Put(windowKey(id), encodeWindow(ws))
	})
}

// DeleteWindow forgets the geometry of window id.
func (s *Store) DeleteWindow(id gui.ID) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketWindows)).Delete(windowKey(id))
	})
}

// Windows returns the ids of all stored windows in key order.
func (s *Store) Windows() ([]gui.ID, error) {
	var ids []gui.ID
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketWindows)).ForEach(func(k, _ []byte) error {
			if len(k) == 4 {
				ids = append(ids, gui.ID(binary.BigEndian.Uint32(k)))
			}
			return nil
		})
	})
	return ids, err
}

func windowKey(id gui.ID) []byte {
	return binary.BigEndian.AppendUint32(nil, uint32(id))
}

func encodeWindow(ws gui.WindowSettings) []byte {
	buf := make([]byte, 0, recordSize)
	for _, f := range [...]float32{ws.Pos.X, ws.Pos.Y, ws.Size.X, ws.Size.Y} {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(f))
	}
	return buf
}

func decodeWindow(v []byte) (gui.WindowSettings, error) {
	if len(v) != recordSize {
		return gui.WindowSettings{}, fmt.Errorf("%w: %d bytes", ErrCorrupt, len(v))
	}
	f := func(i int) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(v[i*4:]))
	}
	return gui.WindowSettings{
		Pos:  gui.Vec2{X: f(0), Y: f(1)},
		Size: gui.Vec2{X: f(2), Y: f(3)},
	}, nil
}
