package detect

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/codesagesllc/my-budget-planner-sub002/internal/model"
)

// candidateGroup accumulates the transactions that may form one pattern.
// Groups are ephemeral: created on the first unmatched transaction,
// mutated by appending matches, and discarded once a pattern (or a
// rejection) has been derived from them.
type candidateGroup struct {
	key          string
	display      string
	bucketAmount float64
	memberIDs    []string
	amounts      []float64
	dates        []time.Time
}

// groupArena holds the candidate groups for a single run plus an index
// from transaction ID to group, which keeps membership auditable without
// relying on map-iteration order.
type groupArena struct {
	byTxn  map[string]int
	groups []*candidateGroup
}

func newGroupArena() *groupArena {
	return &groupArena{byTxn: make(map[string]int)}
}

func (a *groupArena) add(idx int, txn model.Transaction) {
	g := a.groups[idx]
	g.memberIDs = append(g.memberIDs, txn.ID)
	g.amounts = append(g.amounts, txn.AbsAmount())
	g.dates = append(g.dates, txn.Date)
	a.byTxn[txn.ID] = idx
}

func (a *groupArena) seed(txn model.Transaction, key, display string) {
	a.groups = append(a.groups, &candidateGroup{
		key:          key,
		display:      display,
		bucketAmount: txn.AbsAmount(),
	})
	a.add(len(a.groups)-1, txn)
}

// sortedDates returns the group's dates in ascending order.
func (g *candidateGroup) sortedDates() []time.Time {
	dates := make([]time.Time, len(g.dates))
	copy(dates, g.dates)
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

// groupByName clusters transactions by normalized-description similarity.
// Single pass, first-match-wins against already-created groups; no global
// re-clustering once a transaction is assigned.
func groupByName(cfg Config, txns []model.Transaction) *groupArena {
	arena := newGroupArena()

	for _, txn := range txns {
		key := Normalize(txn.Description)
		if !Clusterable(key) {
			continue
		}

		matched := false
		for idx, g := range arena.groups {
			if keysMatch(g.key, key, cfg.SimilarityThreshold) {
				arena.add(idx, txn)
				matched = true
				break
			}
		}
		if !matched {
			arena.seed(txn, key, key)
		}
	}

	return arena
}

// groupByAmount buckets transactions by amount tolerance. The bucket's
// representative amount is fixed by the seeding transaction.
func groupByAmount(cfg Config, txns []model.Transaction) *groupArena {
	arena := newGroupArena()

	for _, txn := range txns {
		amount := txn.AbsAmount()

		matched := false
		for idx, g := range arena.groups {
			if math.Abs(amount-g.bucketAmount) <= g.bucketAmount*cfg.AmountTolerance {
				arena.add(idx, txn)
				matched = true
				break
			}
		}
		if matched {
			continue
		}

		display := Normalize(txn.Description)
		if display == "" {
			display = strings.ToUpper(strings.TrimSpace(txn.Description))
		}
		arena.seed(txn, fmt.Sprintf("$%.2f", amount), display)
	}

	return arena
}

// keysMatch decides whether a normalized key joins the group anchored by
// an existing key: exact match, substring/superstring (both length >= 5),
// prefix of the other (length >= 4), or edit-distance similarity above the
// threshold (only evaluated when the shorter key has length >= 6).
func keysMatch(existing, key string, threshold float64) bool {
	if existing == key {
		return true
	}
	if len(existing) >= 5 && len(key) >= 5 &&
		(strings.Contains(existing, key) || strings.Contains(key, existing)) {
		return true
	}
	if len(existing) >= 4 && len(key) >= 4 &&
		(strings.HasPrefix(existing, key) || strings.HasPrefix(key, existing)) {
		return true
	}
	if min(len(existing), len(key)) >= 6 {
		longest := max(len(existing), len(key))
		similarity := 1 - float64(levenshtein(existing, key))/float64(longest)
		return similarity > threshold
	}
	return false
}

// levenshtein computes the edit distance between two keys using the
// classic two-row dynamic program.
func levenshtein(a, b string) int {
	if a == b {
		return 0
	}
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, min(curr[j-1]+1, prev[j-1]+cost))
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}
