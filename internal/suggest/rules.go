// Package suggest produces outfit suggestions, either from a local
// deterministic rule table or from the optional OpenAI gateway.
package suggest

import (
	"fmt"
	"strings"
)

// Suggestion is the structured result of the rule engine.
type Suggestion struct {
	Outfit      string `json:"outfit"`
	ColorTip    string `json:"color_tip"`
	Accessories string `json:"accessories"`
	Tip         string `json:"tip"`
}

// Compose renders the four labeled lines in fixed order.
func (s Suggestion) Compose() string {
	return fmt.Sprintf("Outfit: %s\nColor Tip: %s\nAccessories: %s\nTip: %s",
		s.Outfit, s.ColorTip, s.Accessories, s.Tip)
}

// closingTip is identical across all events.
const closingTip = "Match your vibe to the event!"

// palette is the fixed color vocabulary; detection reports colors in
// this order regardless of where they appear in the input.
var palette = []string{"red", "blue", "green", "black", "white", "gray", "yellow", "pink"}

// Garment buckets, in matching priority order. A garment is assigned to
// the first bucket whose keyword it contains; anything unmatched is an
// accessory.
const (
	bucketTops        = "tops"
	bucketBottoms     = "bottoms"
	bucketDresses     = "dresses"
	bucketOuter       = "outer"
	bucketShoes       = "shoes"
	bucketAccessories = "accessories"
)

var garmentBuckets = []struct {
	name     string
	keywords []string
}{
	{bucketTops, []string{"shirt", "top"}},
	{bucketBottoms, []string{"jeans", "pants", "skirt"}},
	{bucketDresses, []string{"dress"}},
	{bucketOuter, []string{"jacket", "coat"}},
	{bucketShoes, []string{"shoes", "sneakers", "boots"}},
}

// Event rules, checked in order against the lower-cased event text;
// first keyword match wins. defaultTemplates applies when none match.
var eventRules = []struct {
	keyword   string
	templates Suggestion
}{
	{"interview", Suggestion{
		Outfit:      "Professional: Button-up shirt with slacks or skirt.",
		ColorTip:    "Neutral colors (black, navy, gray).",
		Accessories: "Minimal: Watch, simple earrings, polished shoes.",
	}},
	{"party", Suggestion{
		Outfit:      "Fun and vibrant: Stylish top with jeans.",
		ColorTip:    "Bright or metallic colors to stand out.",
		Accessories: "Statement jewelry, clutch, heels or boots.",
	}},
	{"college", Suggestion{
		Outfit:      "Casual: Jeans with t-shirt or hoodie.",
		ColorTip:    "Mix casual colors; earth tones for relaxed vibe.",
		Accessories: "Backpack, sneakers, cap or scarf.",
	}},
	{"wedding", Suggestion{
		Outfit:      "Elegant dress or suit.",
		ColorTip:    "Pastels or jewel tones.",
		Accessories: "Delicate jewelry, dress shoes, small bag.",
	}},
}

var defaultTemplates = Suggestion{
	Outfit:      "Comfortable and confident: Mix and match your clothes.",
	ColorTip:    "Neutrals work for any occasion.",
	Accessories: "Keep it simple.",
}

// detectColors scans the whole clothes text for palette colors.
// Substring match, palette order, each color at most once.
func detectColors(clothesText string) []string {
	lowered := strings.ToLower(clothesText)
	var detected []string
	for _, c := range palette {
		if strings.Contains(lowered, c) {
			detected = append(detected, c)
		}
	}
	return detected
}

// splitGarments splits the clothes text on commas, trimming and
// lower-casing each piece. An empty input yields one empty garment.
func splitGarments(clothesText string) []string {
	pieces := strings.Split(clothesText, ",")
	garments := make([]string, 0, len(pieces))
	for _, p := range pieces {
		garments = append(garments, strings.ToLower(strings.TrimSpace(p)))
	}
	return garments
}

// categorize assigns every garment to exactly one bucket, first
// matching keyword wins.
func categorize(garments []string) map[string][]string {
	categories := map[string][]string{}
	for _, g := range garments {
		bucket := bucketAccessories
	match:
		for _, b := range garmentBuckets {
			for _, kw := range b.keywords {
				if strings.Contains(g, kw) {
					bucket = b.name
					break match
				}
			}
		}
		categories[bucket] = append(categories[bucket], g)
	}
	return categories
}

// RuleBased is the deterministic suggestion engine. Pure: any string
// input is accepted, nothing fails.
func RuleBased(event, clothesText string) Suggestion {
	colors := detectColors(clothesText)
	categories := categorize(splitGarments(clothesText))

	s := defaultTemplates
	loweredEvent := strings.ToLower(event)
	for _, rule := range eventRules {
		if strings.Contains(loweredEvent, rule.keyword) {
			s = rule.templates
			break
		}
	}
	s.Tip = closingTip

	// Personalize with detected colors and owned tops/bottoms.
	if len(colors) > 0 {
		s.ColorTip += fmt.Sprintf(" Detected: %s.", strings.Join(colors, ", "))
	}
	if len(categories[bucketTops]) > 0 || len(categories[bucketBottoms]) > 0 {
		owned := append(append([]string{}, categories[bucketTops]...), categories[bucketBottoms]...)
		s.Outfit += fmt.Sprintf(" Use your %s.", strings.Join(owned, ", "))
	}

	return s
}
