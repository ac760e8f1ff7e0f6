package billing

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/nationaltraders/plumbing-crm/internal/domain"
	"github.com/nationaltraders/plumbing-crm/internal/domain/entity"
)

// Invoice number format: 2 uppercase alphanumerics + 5 zero-padded digits,
// e.g. AB01234. Short enough to read over the phone, sparse enough that
// collisions are rare.
const (
	numberCharset     = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	numberDigitSpace  = 100000
	numberMaxAttempts = 10
)

// NumberStore is the slice of the invoice store the generator needs for
// collision checks.
type NumberStore interface {
	GetByNumber(number string) (*entity.Invoice, error)
}

// NumberGenerator produces globally unique invoice numbers. The number is
// assigned exactly once, before persistence, and never regenerated afterward;
// the store's unique index is the backstop for the check-then-insert race.
type NumberGenerator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewNumberGenerator builds a generator with a time-seeded source.
func NewNumberGenerator() *NumberGenerator {
	return &NumberGenerator{rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (g *NumberGenerator) candidate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	a := numberCharset[g.rnd.Intn(len(numberCharset))]
	b := numberCharset[g.rnd.Intn(len(numberCharset))]
	return fmt.Sprintf("%c%c%05d", a, b, g.rnd.Intn(numberDigitSpace))
}

// Next returns a number with no exact match in the store, retrying up to
// numberMaxAttempts candidates. Exhausting the attempts returns
// domain.ErrNumberGeneration: a fatal condition, the caller must abort the
// whole operation.
func (g *NumberGenerator) Next(store NumberStore) (string, error) {
	for attempt := 0; attempt < numberMaxAttempts; attempt++ {
		number := g.candidate()
		existing, err := store.GetByNumber(number)
		if err != nil {
			return "", fmt.Errorf("check invoice number: %w", err)
		}
		if existing == nil {
			return number, nil
		}
	}
	return "", domain.ErrNumberGeneration
}
