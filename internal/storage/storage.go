package storage

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/apex/log"
	"github.com/dgraph-io/badger/v4"

	"github.com/lgbarn/termchess/internal/chess"
	"github.com/lgbarn/termchess/internal/config"
	"github.com/lgbarn/termchess/internal/errors"
)

const savePrefix = "save/"

// Save is one stored game: whose turn it is, the move list so far and the
// board rows.
type Save struct {
	Name     string
	Colour   chess.Colour
	Moves    []string
	Position []string
	SavedAt  time.Time
}

// record is the JSON value stored under a save key.
type record struct {
	Colour   string    `json:"current_player_color"`
	Moves    []string  `json:"move_list"`
	Position []string  `json:"position"`
	SavedAt  time.Time `json:"saved_at"`
}

// Store wraps BadgerDB for saved games.
type Store struct {
	db     *badger.DB
	logger log.Interface
}

// Open opens the store described by cfg. An empty Dir means the platform
// data directory; InMemory keeps nothing on disk.
func Open(cfg *config.StorageConfig, logger log.Interface) (*Store, error) {
	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		dir := cfg.Dir
		if dir == "" {
			var err error
			if dir, err = SavesDir(); err != nil {
				return nil, errors.Wrap(err, "locating save directory")
			}
		}
		opts = badger.DefaultOptions(dir)
	}
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "opening save store")
	}

	logger.WithFields(log.Fields{
		"dir":       opts.Dir,
		"in_memory": cfg.InMemory,
	}).Debug("save store opened")
	return &Store{db: db, logger: logger}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Save writes a game under its name, replacing any earlier save of that name.
func (s *Store) Save(save Save) error {
	name, err := normaliseName(save.Name)
	if err != nil {
		return err
	}
	if save.SavedAt.IsZero() {
		save.SavedAt = time.Now()
	}

	data, err := json.Marshal(record{
		Colour:   string(save.Colour.Letter()),
		Moves:    save.Moves,
		Position: save.Position,
		SavedAt:  save.SavedAt,
	})
	if err != nil {
		return err
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key(name), data)
	})
	if err != nil {
		return errors.Wrapf(err, "saving %q", name)
	}

	s.logger.WithFields(log.Fields{
		"name":  name,
		"moves": len(save.Moves),
	}).Info("game saved")
	return nil
}

// Load reads the save with the given name. An unknown name returns an error
// wrapping errors.ErrUnknownSave.
func (s *Store) Load(name string) (Save, error) {
	name, err := normaliseName(name)
	if err != nil {
		return Save{}, err
	}

	var rec record
	err = s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(name))
		if err == badger.ErrKeyNotFound {
			return errors.Wrapf(errors.ErrUnknownSave, "save %q", name)
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rec)
		})
	})
	if err != nil {
		return Save{}, err
	}

	colour, ok := chess.ColourFromLetter(firstByte(rec.Colour))
	if !ok {
		return Save{}, errors.Wrapf(errors.ErrUnknownSave, "save %q has colour %q", name, rec.Colour)
	}

	s.logger.WithField("name", name).Info("game loaded")
	return Save{
		Name:     name,
		Colour:   colour,
		Moves:    rec.Moves,
		Position: rec.Position,
		SavedAt:  rec.SavedAt,
	}, nil
}

// List returns the names of all saves in key order.
func (s *Store) List() ([]string, error) {
	var names []string
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(savePrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			names = append(names, strings.TrimPrefix(string(it.Item().Key()), savePrefix))
		}
		return nil
	})
	return names, err
}

func normaliseName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", errors.Wrap(errors.ErrUnknownSave, "empty save name")
	}
	return name, nil
}

func key(name string) []byte {
	return []byte(savePrefix + name)
}

func firstByte(s string) byte {
	if s == "" {
		return 0
	}
	return s[0]
}
