// file: internal/recommend/engine.go
// version: 1.0.0
// guid: 2e6c8a40-7d1b-4f92-a3e5-9b0d4c6f8a17

package recommend

import (
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/thriftpick/thriftpick/internal/matcher"
	"github.com/thriftpick/thriftpick/internal/models"
)

// Tuning constants for the match engine. The scalar threshold is
// intentionally stricter than matcher.DefaultThreshold used during
// preference collection; the two are configured separately.
const (
	// DefaultScalarThreshold gates fuzzy scalar comparisons: a
	// similarity ratio must exceed it to contribute to the score.
	DefaultScalarThreshold = 0.7
	// DefaultCutoff is the good-match cutoff: ranked items scoring at
	// or below it are never recommended.
	DefaultCutoff = 0.5
	// DefaultLimit is the number of recommendations returned when the
	// caller does not ask for a specific count.
	DefaultLimit = 3
)

// comparison selects how an attribute's preference is matched against
// an item's value.
type comparison int

const (
	compareText comparison = iota
	compareList
	compareRange
)

// attrDef fixes the comparison kind and default weight for one
// attribute. The set of scorable attributes is closed; anything not in
// the table never contributes to a score.
type attrDef struct {
	compare comparison
	weight  float64
}

var attrTable = map[models.Attribute]attrDef{
	models.AttrCategory:   {compareText, 1.5},
	models.AttrColor:      {compareText, 1.0},
	models.AttrStyle:      {compareText, 1.2},
	models.AttrSeason:     {compareList, 0.8},
	models.AttrMaterial:   {compareText, 0.7},
	models.AttrOccasion:   {compareList, 1.3},
	models.AttrGender:     {compareText, 1.4},
	models.AttrSize:       {compareText, 1.0},
	models.AttrCondition:  {compareText, 0.6},
	models.AttrPriceRange: {compareRange, 0.9},
}

// Weights maps attributes to their relative importance in the match
// score. Weights are not normalized; the engine divides by the sum of
// the weights it actually used.
type Weights map[models.Attribute]float64

// DefaultWeights returns a fresh copy of the built-in weight table.
func DefaultWeights() Weights {
	w := make(Weights, len(attrTable))
	for attr, def := range attrTable {
		w[attr] = def.weight
	}
	return w
}

// WeightsWithOverrides returns the default weights with valid entries
// from overrides applied. Unknown attributes and negative weights are
// ignored with a warning so a bad config entry never breaks scoring.
func WeightsWithOverrides(overrides map[string]float64) Weights {
	w := DefaultWeights()
	for name, value := range overrides {
		attr := models.Attribute(strings.ToLower(name))
		if _, ok := attrTable[attr]; !ok {
			log.Warn().Str("attribute", name).Msg("ignoring weight override for unknown attribute")
			continue
		}
		if value < 0 {
			log.Warn().Str("attribute", name).Float64("weight", value).Msg("ignoring negative weight override")
			continue
		}
		w[attr] = value
	}
	return w
}

// Engine scores catalog items against a preference set and ranks them.
// An Engine is a pure function of its inputs and safe to share across
// goroutines once constructed.
type Engine struct {
	weights         Weights
	scalarThreshold float64
	cutoff          float64
	limit           int
}

// Option adjusts an Engine at construction time.
type Option func(*Engine)

// WithWeights replaces the default attribute weights.
func WithWeights(w Weights) Option {
	return func(e *Engine) {
		if len(w) > 0 {
			e.weights = w
		}
	}
}

// WithScalarThreshold replaces the fuzzy scalar gating threshold.
func WithScalarThreshold(t float64) Option {
	return func(e *Engine) {
		if t > 0 {
			e.scalarThreshold = t
		}
	}
}

// WithCutoff replaces the good-match cutoff.
func WithCutoff(c float64) Option {
	return func(e *Engine) {
		if c > 0 {
			e.cutoff = c
		}
	}
}

// WithLimit replaces the default recommendation count.
func WithLimit(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.limit = n
		}
	}
}

// New builds an Engine with the default weights and thresholds,
// adjusted by any options.
func New(opts ...Option) *Engine {
	e := &Engine{
		weights:         DefaultWeights(),
		scalarThreshold: DefaultScalarThreshold,
		cutoff:          DefaultCutoff,
		limit:           DefaultLimit,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Score returns how well an item matches the preferences as a value in
// [0, 1]: the sum of per-attribute contributions over the sum of the
// weights of every evaluable attribute. It returns 0.0 when no
// attribute was evaluable.
func (e *Engine) Score(item models.Item, prefs models.PreferenceSet) float64 {
	var sum, total float64
	for _, attr := range models.AllAttributes {
		pref, ok := prefs[attr]
		if !ok {
			continue
		}
		contribution, used := e.scoreAttribute(attr, pref, item)
		sum += contribution
		total += used
	}
	if total == 0 {
		return 0.0
	}
	return sum / total
}

// scoreAttribute computes one attribute's contribution to the match
// score and the weight that entered the denominator for it. An absent
// or empty preference contributes neither; so does a text attribute
// the item carries no value for.
func (e *Engine) scoreAttribute(attr models.Attribute, pref models.Preference, item models.Item) (contribution, weightUsed float64) {
	def, ok := attrTable[attr]
	if !ok || pref.IsZero() {
		return 0, 0
	}
	weight := def.weight
	if w, ok := e.weights[attr]; ok {
		weight = w
	}

	switch def.compare {
	case compareRange:
		if pref.Range == nil {
			return 0, 0
		}
		if pref.Range.Contains(item.Price) {
			return weight, weight
		}
		return 0, weight

	case compareList:
		values := item.ListValue(attr)
		if len(pref.List) > 0 {
			wanted := uniqueStrings(pref.List)
			matches := 0
			for _, v := range wanted {
				if containsString(values, v) {
					matches++
				}
			}
			if matches > 0 {
				return weight * float64(matches) / float64(len(wanted)), weight
			}
			return 0, weight
		}
		// A single scalar preference against a list attribute counts
		// as membership.
		if containsString(values, pref.Scalar) {
			return weight, weight
		}
		return 0, weight

	default: // compareText
		if pref.Scalar == "" {
			return 0, 0
		}
		value := item.ScalarValue(attr)
		if value == "" {
			return 0, 0
		}
		ratio := matcher.Ratio(strings.ToLower(pref.Scalar), strings.ToLower(value))
		if ratio > e.scalarThreshold {
			return weight * ratio, weight
		}
		return 0, weight
	}
}

// scoredItem pairs an item with its match score during ranking. It is
// transient: only the ordered items leave the engine.
type scoredItem struct {
	item  models.Item
	score float64
}

// Rank scores every catalog item against the preferences and returns
// the best matches in descending score order, preserving catalog order
// on ties. Items scoring at or below the good-match cutoff are dropped
// and at most limit items are returned (the engine default when limit
// is not positive). An empty preference set or catalog yields nil
// without scoring.
func (e *Engine) Rank(items []models.Item, prefs models.PreferenceSet, limit int) []models.Item {
	if len(items) == 0 || prefs.Empty() {
		return nil
	}
	if limit <= 0 {
		limit = e.limit
	}

	scored := make([]scoredItem, len(items))
	for i, item := range items {
		scored[i] = scoredItem{item: item, score: e.Score(item, prefs)}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	ranked := make([]models.Item, 0, limit)
	for _, s := range scored {
		if s.score <= e.cutoff {
			break
		}
		ranked = append(ranked, s.item)
		if len(ranked) == limit {
			break
		}
	}
	return ranked
}

func uniqueStrings(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	unique := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		unique = append(unique, v)
	}
	return unique
}

func containsString(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}
