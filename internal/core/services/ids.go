package services

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/custodia-labs/servico/internal/core/domain"
	"github.com/custodia-labs/servico/internal/core/ports/driven"
)

// IDPolicy names an identifier generation strategy.
type IDPolicy string

// Identifier policies.
const (
	IDPolicySequential IDPolicy = "sequential"
	IDPolicyRandom     IDPolicy = "random"
)

// IsValid returns true if the policy is recognised.
func (p IDPolicy) IsValid() bool {
	return p == IDPolicySequential || p == IDPolicyRandom
}

// NewIDGenerator returns the generator for policy. An empty policy is
// sequential.
func NewIDGenerator(policy IDPolicy) (driven.IDGenerator, error) {
	if policy == "" {
		policy = IDPolicySequential
	}
	if !policy.IsValid() {
		return nil, fmt.Errorf("%w: unknown id policy %q", domain.ErrInvalidInput, policy)
	}
	if policy == IDPolicyRandom {
		return NewRandomIDs(), nil
	}
	return SequentialIDs{}, nil
}

// Ensure generators implement the interface.
var (
	_ driven.IDGenerator = SequentialIDs{}
	_ driven.IDGenerator = (*RandomIDs)(nil)
)

// SequentialIDs hands out the id after the most recently inserted one.
type SequentialIDs struct{}

// Next returns 1 for an empty collection, otherwise the last id plus one.
// If that id is already taken (possible with data written under the random
// policy) it returns one past the largest id instead.
func (SequentialIDs) Next(existing []int64) (int64, error) {
	if len(existing) == 0 {
		return 1, nil
	}
	next := existing[len(existing)-1] + 1
	if slices.Contains(existing, next) {
		// Not strict last+1: skip past ids a random-policy run left behind.
		next = slices.Max(existing) + 1
	}
	return next, nil
}

const (
	randomIDDigits      = 5
	maxRandomIDAttempts = 32
)

// RandomIDs draws five decimal digits and reads them as an integer, so
// leading zeros give shorter ids. Draws that collide or come out as zero
// are repeated.
type RandomIDs struct {
	digit func() int
}

// NewRandomIDs creates a random id generator.
func NewRandomIDs() *RandomIDs {
	return &RandomIDs{digit: func() int { return rand.IntN(10) }}
}

// Next returns an unused non-zero id.
func (g *RandomIDs) Next(existing []int64) (int64, error) {
	taken := make(map[int64]struct{}, len(existing))
	for _, id := range existing {
		taken[id] = struct{}{}
	}

	for range maxRandomIDAttempts {
		id := g.draw()
		if id == 0 {
			continue
		}
		if _, ok := taken[id]; ok {
			continue
		}
		return id, nil
	}
	return 0, domain.Internal("failed to generate id",
		fmt.Errorf("no free id after %d attempts", maxRandomIDAttempts))
}

func (g *RandomIDs) draw() int64 {
	var id int64
	for range randomIDDigits {
		id = id*10 + int64(g.digit())
	}
	return id
}

func userIDs(users []domain.User) []int64 {
	ids := make([]int64, len(users))
	for i, u := range users {
		ids[i] = u.ID
	}
	return ids
}

func serviceIDs(records []domain.ServiceRecord) []int64 {
	ids := make([]int64, len(records))
	for i, r := range records {
		ids[i] = r.ID
	}
	return ids
}
