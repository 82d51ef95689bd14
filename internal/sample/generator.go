// Package sample produces deterministic synthetic activities.
// When every provider returns empty (no credentials, network down, or
// genuinely no matches) the search substitutes two category-appropriate
// sample records so the caller always gets something useful back.
package sample

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/oakway-labs/eventscout/internal/core/domain"
)

// Category is an inferred activity category for a search query.
type Category string

// Categories, in classification priority order.
const (
	CategoryMusic      Category = "music"
	CategoryFood       Category = "food"
	CategoryTechnology Category = "technology"
	CategoryArt        Category = "art"
	CategoryFitness    Category = "fitness"
	CategoryGeneral    Category = "general"
)

// categoryKeywords maps each category to its match vocabulary.
// Matching is case-insensitive substring containment, first hit wins.
var categoryKeywords = []struct {
	category Category
	words    []string
}{
	{CategoryMusic, []string{"music", "concert", "festival", "band", "jazz", "rock"}},
	{CategoryFood, []string{"food", "restaurant", "dining", "wine", "beer", "cooking"}},
	{CategoryTechnology, []string{"tech", "technology", "programming", "coding", "startup"}},
	{CategoryArt, []string{"art", "gallery", "exhibition", "painting", "sculpture"}},
	{CategoryFitness, []string{"sport", "fitness", "running", "yoga", "gym"}},
}

// Classify infers a category from a free-text query.
// Queries matching no vocabulary fall back to CategoryGeneral.
func Classify(query string) Category {
	q := strings.ToLower(query)
	for _, entry := range categoryKeywords {
		for _, word := range entry.words {
			if strings.Contains(q, word) {
				return entry.category
			}
		}
	}
	return CategoryGeneral
}

// Generator builds sample activities from fixed per-category templates.
type Generator struct {
	// now is the clock; overridable in tests for deterministic dates.
	now func() time.Time
}

// New creates a sample Generator using the real clock.
func New() *Generator {
	return &Generator{now: time.Now}
}

// NewWithClock creates a Generator with a fixed clock for tests.
func NewWithClock(now func() time.Time) *Generator {
	return &Generator{now: now}
}

// Generate returns exactly two sample activities for the query's
// inferred category, interpolating query and location into templates.
// Dates are now + a category base offset + a per-item offset.
func (g *Generator) Generate(query, location string) []domain.RawActivity {
	// Casers are stateful; build one per call so concurrent searches
	// never share it.
	q := cases.Title(language.English).String(query)

	switch Classify(query) {
	case CategoryMusic:
		return g.music(query, q, location)
	case CategoryFood:
		return g.food(query, q, location)
	case CategoryTechnology:
		return g.technology(query, q, location)
	case CategoryArt:
		return g.art(query, q, location)
	case CategoryFitness:
		return g.fitness(query, q, location)
	default:
		return g.general(query, q, location)
	}
}

// date formats now + base + extra days as YYYY-MM-DD.
func (g *Generator) date(baseDays, extraDays int) string {
	return g.now().AddDate(0, 0, baseDays+extraDays).Format("2006-01-02")
}

func (g *Generator) music(query, titled, location string) []domain.RawActivity {
	const base = 7
	return []domain.RawActivity{
		{
			ID:          "music_1",
			Title:       fmt.Sprintf("Live %s Night at The Blue Room", titled),
			Description: fmt.Sprintf("Experience the best %s artists in an intimate venue. Features local and touring musicians with amazing acoustics.", query),
			Location:    fmt.Sprintf("The Blue Room Music Hall, %s", location),
			Date:        g.date(base, 3),
			Time:        "20:00",
			Category:    "Music",
			Image:       "https://images.unsplash.com/photo-1493225457124-a3eb161ffa5f?w=400&h=300&fit=crop",
			Source:      domain.SourceSample,
			Link:        domain.DefaultLink,
		},
		{
			ID:          "music_2",
			Title:       fmt.Sprintf("%s %s Festival", location, titled),
			Description: fmt.Sprintf("Three-day outdoor festival celebrating %s with food trucks, craft vendors, and multiple stages.", query),
			Location:    fmt.Sprintf("Riverside Park, %s", location),
			Date:        g.date(base, 10),
			Time:        "14:00",
			Category:    "Festival",
			Image:       "https://images.unsplash.com/photo-1459749411175-04bf5292ceea?w=400&h=300&fit=crop",
			Source:      domain.SourceSample,
			Link:        domain.DefaultLink,
		},
	}
}

func (g *Generator) food(query, titled, location string) []domain.RawActivity {
	const base = 5
	return []domain.RawActivity{
		{
			ID:          "food_1",
			Title:       fmt.Sprintf("%s Tasting Experience", titled),
			Description: fmt.Sprintf("Join Chef Maria for an exclusive %s tasting featuring locally sourced ingredients and wine pairings.", query),
			Location:    fmt.Sprintf("Culinary Institute of %s", location),
			Date:        g.date(base, 2),
			Time:        "18:30",
			Category:    "Culinary",
			Image:       "https://images.unsplash.com/photo-1414235077428-338989a2e8c0?w=400&h=300&fit=crop",
			Source:      domain.SourceSample,
			Link:        domain.DefaultLink,
		},
		{
			ID:          "food_2",
			Title:       fmt.Sprintf("%s Food Truck Festival", location),
			Description: fmt.Sprintf("Sample diverse cuisines from 20+ local food trucks featuring %s and more. Live music and family activities.", query),
			Location:    fmt.Sprintf("Central Square, %s", location),
			Date:        g.date(base, 8),
			Time:        "11:00",
			Category:    "Food Festival",
			Image:       "https://images.unsplash.com/photo-1565299624946-b28f40a0ca4b?w=400&h=300&fit=crop",
			Source:      domain.SourceSample,
			Link:        domain.DefaultLink,
		},
	}
}

func (g *Generator) technology(query, titled, location string) []domain.RawActivity {
	const base = 4
	return []domain.RawActivity{
		{
			ID:          "tech_1",
			Title:       fmt.Sprintf("%s Meetup & Networking", titled),
			Description: fmt.Sprintf("Connect with %s professionals, share knowledge, and explore the latest trends. Refreshments provided.", query),
			Location:    fmt.Sprintf("Tech Hub %s", location),
			Date:        g.date(base, 6),
			Time:        "18:00",
			Category:    "Technology",
			Image:       "https://images.unsplash.com/photo-1531482615713-2afd69097998?w=400&h=300&fit=crop",
			Source:      domain.SourceSample,
			Link:        domain.DefaultLink,
		},
		{
			ID:          "tech_2",
			Title:       fmt.Sprintf("Hands-on %s Workshop", titled),
			Description: fmt.Sprintf("Learn practical %s skills in this interactive workshop. Bring your laptop and get ready to code!", query),
			Location:    fmt.Sprintf("Innovation Center, %s", location),
			Date:        g.date(base, 12),
			Time:        "10:00",
			Category:    "Workshop",
			Image:       "https://images.unsplash.com/photo-1517180102446-f3ece451e9d8?w=400&h=300&fit=crop",
			Source:      domain.SourceSample,
			Link:        domain.DefaultLink,
		},
	}
}

func (g *Generator) art(query, titled, location string) []domain.RawActivity {
	const base = 6
	return []domain.RawActivity{
		{
			ID:          "art_1",
			Title:       fmt.Sprintf("Contemporary %s Exhibition", titled),
			Description: fmt.Sprintf("Explore cutting-edge %s works by local and international artists in this curated exhibition.", query),
			Location:    fmt.Sprintf("Modern Art Gallery, %s", location),
			Date:        g.date(base, 1),
			Time:        "10:00",
			Category:    "Art Exhibition",
			Image:       "https://images.unsplash.com/photo-1518998053901-5348d3961a04?w=400&h=300&fit=crop",
			Source:      domain.SourceSample,
			Link:        domain.DefaultLink,
		},
		{
			ID:          "art_2",
			Title:       fmt.Sprintf("%s Workshop for Beginners", titled),
			Description: fmt.Sprintf("Learn the fundamentals of %s in this beginner-friendly workshop. All materials provided.", query),
			Location:    fmt.Sprintf("Community Arts Center, %s", location),
			Date:        g.date(base, 9),
			Time:        "14:00",
			Category:    "Art Workshop",
			Image:       "https://images.unsplash.com/photo-1452860606245-08befc0ff44b?w=400&h=300&fit=crop",
			Source:      domain.SourceSample,
			Link:        domain.DefaultLink,
		},
	}
}

func (g *Generator) fitness(query, titled, location string) []domain.RawActivity {
	const base = 2
	return []domain.RawActivity{
		{
			ID:          "fitness_1",
			Title:       fmt.Sprintf("Outdoor %s Class", titled),
			Description: fmt.Sprintf("Join our certified instructor for a refreshing %s session in the great outdoors. All levels welcome.", query),
			Location:    fmt.Sprintf("Lakeside Park, %s", location),
			Date:        g.date(base, 3),
			Time:        "07:00",
			Category:    "Fitness",
			Image:       "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=400&h=300&fit=crop",
			Source:      domain.SourceSample,
			Link:        domain.DefaultLink,
		},
		{
			ID:          "fitness_2",
			Title:       fmt.Sprintf("%s %s Challenge", location, titled),
			Description: fmt.Sprintf("Test your limits in this friendly %s competition. Prizes for all participants and healthy snacks included.", query),
			Location:    fmt.Sprintf("Recreation Center, %s", location),
			Date:        g.date(base, 11),
			Time:        "09:00",
			Category:    "Sports",
			Image:       "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=400&h=300&fit=crop",
			Source:      domain.SourceSample,
			Link:        domain.DefaultLink,
		},
	}
}

func (g *Generator) general(query, titled, location string) []domain.RawActivity {
	const base = 5
	return []domain.RawActivity{
		{
			ID:          "general_1",
			Title:       fmt.Sprintf("%s Community Event", titled),
			Description: fmt.Sprintf("Join your neighbors for a fun %s activity. Meet new people and enjoy refreshments.", query),
			Location:    fmt.Sprintf("Community Center, %s", location),
			Date:        g.date(base, 4),
			Time:        "18:00",
			Category:    titled,
			Image:       "https://images.unsplash.com/photo-1511632765486-a01980e01a18?w=400&h=300&fit=crop",
			Source:      domain.SourceSample,
			Link:        domain.DefaultLink,
		},
		{
			ID:          "general_2",
			Title:       fmt.Sprintf("Weekend %s Workshop", titled),
			Description: fmt.Sprintf("Learn something new in this hands-on %s workshop. Perfect for beginners and enthusiasts alike.", query),
			Location:    fmt.Sprintf("Learning Center, %s", location),
			Date:        g.date(base, 7),
			Time:        "10:00",
			Category:    titled,
			Image:       "https://images.unsplash.com/photo-1531482615713-2afd69097998?w=400&h=300&fit=crop",
			Source:      domain.SourceSample,
			Link:        domain.DefaultLink,
		},
	}
}
