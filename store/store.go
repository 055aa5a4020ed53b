// Package store keeps packed genomes addressable by handle.
package store

import (
	"bytes"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/google/uuid"

	"github.com/forestrie/go-compactgenome/alphabet"
	"github.com/forestrie/go-compactgenome/codec"
	"github.com/forestrie/go-compactgenome/genome"
)

var (
	ErrNotFound         = errors.New("store: no genome for handle")
	ErrExists           = errors.New("store: handle already present")
	ErrAlphabetMismatch = errors.New("store: genome alphabet differs from the store alphabet")
	ErrBadHandle        = errors.New("store: handle is not a 16 byte uuid")
)

// Handle identifies a genome in a Store.
type Handle = uuid.UUID

// entry is the export form of one stored genome.
type entry struct {
	Handle []byte       `cbor:"1,keyasint"`
	Record codec.Record `cbor:"2,keyasint"`
}

// Store is safe for concurrent use. The genomes it hands out are immutable and
// may be shared freely.
type Store struct {
	log   logger.Logger
	opts  Options
	codec codec.CBORCodec

	mu      sync.RWMutex
	genomes map[Handle]*genome.BitPacked
}

func New(log logger.Logger, opts ...Option) (*Store, error) {
	s := &Store{
		log:     log,
		genomes: make(map[Handle]*genome.BitPacked),
	}
	for _, o := range opts {
		o(&s.opts)
	}
	if s.opts.Alphabet == nil {
		s.opts.Alphabet = alphabet.DNA
	}
	if s.opts.Codec != nil {
		s.codec = *s.opts.Codec
		return s, nil
	}
	if s.opts.Registry == nil {
		s.opts.Registry = alphabet.Builtin()
	}
	var err error
	if s.codec, err = codec.NewCBORCodec(s.opts.Registry); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) Alphabet() *alphabet.Alphabet { return s.opts.Alphabet }

// Add packs g and stores it under a new handle.
func (s *Store) Add(g genome.Genome) (Handle, error) {
	if !g.Alphabet().Same(s.opts.Alphabet) {
		return uuid.Nil, fmt.Errorf("%w: %s, want %s", ErrAlphabetMismatch, g.Alphabet(), s.opts.Alphabet)
	}
	p := genome.ToBitPacked(g)
	h := uuid.New()

	s.mu.Lock()
	s.genomes[h] = p
	s.mu.Unlock()

	s.log.Debugf("add %s: %d symbols", h, p.Len())
	return h, nil
}

// AddText validates text against the store alphabet and stores it.
func (s *Store) AddText(text string) (Handle, error) {
	p, err := genome.NewBitPacked(s.opts.Alphabet, text)
	if err != nil {
		return uuid.Nil, err
	}
	return s.Add(p)
}

func (s *Store) Get(h Handle) (*genome.BitPacked, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.genomes[h]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, h)
	}
	return p, nil
}

func (s *Store) Remove(h Handle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.genomes[h]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, h)
	}
	delete(s.genomes, h)
	s.log.Debugf("remove %s", h)
	return nil
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.genomes)
}

// Handles returns every handle in byte order.
func (s *Store) Handles() []Handle {
	s.mu.RLock()
	handles := make([]Handle, 0, len(s.genomes))
	for h := range s.genomes {
		handles = append(handles, h)
	}
	s.mu.RUnlock()

	slices.SortFunc(handles, func(a, b Handle) int { return bytes.Compare(a[:], b[:]) })
	return handles
}

// Export encodes the whole store as a CBOR array of handle and record pairs,
// ordered by handle. The same contents always export to the same bytes.
func (s *Store) Export() ([]byte, error) {
	s.mu.RLock()
	entries := make([]entry, 0, len(s.genomes))
	for h, p := range s.genomes {
		r, err := codec.NewRecord(p)
		if err != nil {
			s.mu.RUnlock()
			return nil, err
		}
		entries = append(entries, entry{Handle: bytes.Clone(h[:]), Record: r})
	}
	s.mu.RUnlock()

	slices.SortFunc(entries, func(a, b entry) int { return bytes.Compare(a.Handle, b.Handle) })
	data, err := s.codec.Marshal(entries)
	if err != nil {
		return nil, err
	}
	s.log.Infof("exported %d genomes, %d bytes", len(entries), len(data))
	return data, nil
}

// Import adds every genome of an Export to the store and returns how many
// were added. Either all entries are added or, on error, none.
func (s *Store) Import(data []byte) (int, error) {
	var entries []entry
	if err := s.codec.Unmarshal(data, &entries); err != nil {
		return 0, fmt.Errorf("store: decoding export: %w", err)
	}

	decoded := make(map[Handle]*genome.BitPacked, len(entries))
	for i, e := range entries {
		h, err := uuid.FromBytes(e.Handle)
		if err != nil {
			return 0, fmt.Errorf("%w: entry %d", ErrBadHandle, i)
		}
		if _, ok := decoded[h]; ok {
			return 0, fmt.Errorf("%w: %s repeated in export", ErrExists, h)
		}
		g, err := e.Record.Genome(s.codec.Registry())
		if err != nil {
			return 0, fmt.Errorf("store: entry %s: %w", h, err)
		}
		if !g.Alphabet().Same(s.opts.Alphabet) {
			return 0, fmt.Errorf("%w: entry %s uses %s", ErrAlphabetMismatch, h, g.Alphabet())
		}
		decoded[h] = genome.ToBitPacked(g)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for h := range decoded {
		if _, ok := s.genomes[h]; ok {
			return 0, fmt.Errorf("%w: %s", ErrExists, h)
		}
	}
	for h, p := range decoded {
		s.genomes[h] = p
	}
	s.log.Infof("imported %d genomes", len(decoded))
	return len(decoded), nil
}
