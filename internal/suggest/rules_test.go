package suggest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectColorsDedupAndOrder(t *testing.T) {
	// Each palette color reported at most once.
	assert.Equal(t, []string{"red"}, detectColors("I have a red shirt and a red hat"))

	// Palette order, not input order.
	assert.Equal(t, []string{"blue", "white"}, detectColors("white top, blue jeans"))

	// Substring match, not token match.
	assert.Equal(t, []string{"black"}, detectColors("blackout curtain"))

	assert.Empty(t, detectColors("leather jacket"))
}

func TestSplitGarments(t *testing.T) {
	assert.Equal(t, []string{"blue jeans", "white t-shirt", "sneakers"},
		splitGarments(" Blue Jeans ,  White T-Shirt,sneakers "))

	// Empty input yields one empty garment.
	assert.Equal(t, []string{""}, splitGarments(""))
}

func TestSplitGarmentsIdempotent(t *testing.T) {
	inputs := []string{
		"blue jeans, white t-shirt, sneakers",
		"  dress ,shoes",
		"",
		"single",
	}
	for _, in := range inputs {
		once := splitGarments(in)
		twice := splitGarments(strings.Join(once, ", "))
		assert.Equal(t, once, twice, "input %q", in)
	}
}

func TestCategorizePriorityOrder(t *testing.T) {
	tests := []struct {
		garment string
		bucket  string
	}{
		{"white t-shirt", bucketTops},
		{"crop top", bucketTops},
		{"blue jeans", bucketBottoms},
		{"cargo pants", bucketBottoms},
		{"pencil skirt", bucketBottoms},
		{"summer dress", bucketDresses},
		{"leather jacket", bucketOuter}, // outer, never accessories
		{"trench coat", bucketOuter},
		{"running shoes", bucketShoes},
		{"sneakers", bucketShoes},
		{"boots", bucketShoes},
		{"sunglasses", bucketAccessories},
		{"", bucketAccessories},
		// First matching bucket wins for multi-keyword garments.
		{"shirt dress", bucketTops},
		{"dress shoes", bucketDresses},
	}
	for _, tt := range tests {
		categories := categorize([]string{tt.garment})
		require.Len(t, categories, 1, "garment %q must land in exactly one bucket", tt.garment)
		assert.Equal(t, []string{tt.garment}, categories[tt.bucket], "garment %q", tt.garment)
	}
}

func TestRuleBasedEventPrecedence(t *testing.T) {
	// "interview" is checked before "party".
	s := RuleBased("interview at a party", "sunglasses")
	assert.Equal(t, "Professional: Button-up shirt with slacks or skirt.", s.Outfit)
}

func TestRuleBasedCollegeFest(t *testing.T) {
	s := RuleBased("College fest", "blue jeans, white t-shirt, sneakers")

	assert.Equal(t, "Casual: Jeans with t-shirt or hoodie. Use your white t-shirt, blue jeans.", s.Outfit)
	assert.Equal(t, "Mix casual colors; earth tones for relaxed vibe. Detected: blue, white.", s.ColorTip)
	assert.Equal(t, "Backpack, sneakers, cap or scarf.", s.Accessories)
	assert.Equal(t, "Match your vibe to the event!", s.Tip)
}

func TestRuleBasedDefaultBucket(t *testing.T) {
	s := RuleBased("picnic", "sunglasses")

	assert.Equal(t, "Comfortable and confident: Mix and match your clothes.", s.Outfit)
	assert.Equal(t, "Neutrals work for any occasion.", s.ColorTip)
	assert.Equal(t, "Keep it simple.", s.Accessories)
	assert.Equal(t, "Match your vibe to the event!", s.Tip)
}

func TestRuleBasedWeddingAndParty(t *testing.T) {
	assert.Equal(t, "Elegant dress or suit.", RuleBased("beach wedding", "hat").Outfit)
	assert.Equal(t, "Fun and vibrant: Stylish top with jeans.", RuleBased("Birthday PARTY", "hat").Outfit)
}

func TestRuleBasedEmptyClothes(t *testing.T) {
	// Engine accepts any input; an empty garment list is an accessory.
	s := RuleBased("college", "")
	assert.Equal(t, "Casual: Jeans with t-shirt or hoodie.", s.Outfit)
	assert.Equal(t, "Mix casual colors; earth tones for relaxed vibe.", s.ColorTip)
}

func TestCompose(t *testing.T) {
	s := Suggestion{Outfit: "a", ColorTip: "b", Accessories: "c", Tip: "d"}
	assert.Equal(t, "Outfit: a\nColor Tip: b\nAccessories: c\nTip: d", s.Compose())
}
