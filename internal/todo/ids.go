package todo

import (
	"crypto/rand"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// IDFormat names an id generator.
type IDFormat string

const (
	IDFormatUUID IDFormat = "uuid"
	IDFormatULID IDFormat = "ulid"
)

// IDGenerator produces fresh task ids.
type IDGenerator interface {
	NewID() (string, error)
}

// NewIDGenerator returns the generator for format. An empty format selects uuid.
func NewIDGenerator(format string) (IDGenerator, error) {
	switch IDFormat(strings.ToLower(strings.TrimSpace(format))) {
	case "", IDFormatUUID:
		return &UUIDGenerator{}, nil
	case IDFormatULID:
		return NewULIDGenerator(nil), nil
	default:
		return nil, fmt.Errorf("unknown id format %q, must be one of: uuid, ulid", format)
	}
}

// UUIDGenerator produces random (version 4) UUIDs.
type UUIDGenerator struct {
	// Rand overrides the entropy source. Nil uses crypto/rand.
	Rand io.Reader
}

// NewID returns a new UUID string.
func (g *UUIDGenerator) NewID() (string, error) {
	var (
		id  uuid.UUID
		err error
	)
	if g.Rand != nil {
		id, err = uuid.NewRandomFromReader(g.Rand)
	} else {
		id, err = uuid.NewRandom()
	}
	if err != nil {
		return "", fmt.Errorf("generate uuid: %w", err)
	}
	return id.String(), nil
}

// ULIDGenerator produces upper-case ULIDs with monotonic entropy, so ids
// created within the same millisecond still sort in creation order.
type ULIDGenerator struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
	now     func() time.Time
}

// NewULIDGenerator returns a ULID generator reading entropy from r.
// A nil reader uses crypto/rand.
func NewULIDGenerator(r io.Reader) *ULIDGenerator {
	if r == nil {
		r = rand.Reader
	}
	return &ULIDGenerator{
		entropy: ulid.Monotonic(r, 0),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// NewID returns a new ULID string.
func (g *ULIDGenerator) NewID() (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	id, err := ulid.New(ulid.Timestamp(g.now()), g.entropy)
	if err != nil {
		return "", fmt.Errorf("generate ulid: %w", err)
	}
	return strings.ToUpper(id.String()), nil
}
