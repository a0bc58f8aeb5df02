// Package journal persists executed command records in a bbolt database so
// sessions can be audited after the process exits.
package journal

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/viant/pixelterm/model/types"
	"github.com/viant/pixelterm/service/event"
	bolt "go.etcd.io/bbolt"
)

const bucketRecords = "records"

// DefaultOpenTimeout bounds waiting for the database file lock
const DefaultOpenTimeout = time.Second

// ErrClosed is returned by operations on a closed journal
var ErrClosed = errors.New("journal closed")

// Journal is an append only command record store
type Journal struct {
	mux sync.RWMutex
	db  *bolt.DB
}

// Open opens or creates the journal database at path
func Open(path string) (*Journal, error) {
	db, err := bolt.Open(path, 0644, &bolt.Options{Timeout: DefaultOpenTimeout})
	if err != nil {
		return nil, fmt.Errorf("failed to open journal %v: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketRecords))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize journal %v: %w", path, err)
	}
	return &Journal{db: db}, nil
}

// Append stores record and returns its sequence number
func (j *Journal) Append(record *types.Record) (int, error) {
	j.mux.RLock()
	defer j.mux.RUnlock()
	if j.db == nil {
		return 0, ErrClosed
	}
	data, err := json.Marshal(record)
	if err != nil {
		return 0, err
	}
	var seq uint64
	err = j.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketRecords))
		if seq, err = b.NextSequence(); err != nil {
			return err
		}
		return b.Put(marshalSeq(seq), data)
	})
	return int(seq), err
}

// List returns up to limit most recent records, oldest first. An empty
// sessionID matches every session; limit <= 0 means no limit.
func (j *Journal) List(sessionID string, limit int) ([]*types.Record, error) {
	j.mux.RLock()
	defer j.mux.RUnlock()
	if j.db == nil {
		return nil, ErrClosed
	}
	var result []*types.Record
	err := j.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket([]byte(bucketRecords)).Cursor()
		for k, v := c.Last(); k != nil; k, v = c.Prev() {
			record := &types.Record{}
			if err := json.Unmarshal(v, record); err != nil {
				return fmt.Errorf("corrupted record %v: %w", unmarshalSeq(k), err)
			}
			if sessionID != "" && record.SessionID != sessionID {
				continue
			}
			result = append(result, record)
			if limit > 0 && len(result) == limit {
				break
			}
		}
		return nil
	})
	for i, k := 0, len(result)-1; i < k; i, k = i+1, k-1 {
		result[i], result[k] = result[k], result[i]
	}
	return result, err
}

// Handle appends the record carried by an executed command event
func (j *Journal) Handle(e *event.Event[*types.Record]) error {
	if e == nil || e.Data == nil {
		return nil
	}
	_, err := j.Append(e.Data)
	return err
}

// Close closes the underlying database once pending appends complete
func (j *Journal) Close() error {
	j.mux.Lock()
	defer j.mux.Unlock()
	if j.db == nil {
		return nil
	}
	err := j.db.Close()
	j.db = nil
	return err
}

func marshalSeq(seq uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, seq)
	return b
}

func unmarshalSeq(key []byte) uint64 {
	return binary.BigEndian.Uint64(key)
}
