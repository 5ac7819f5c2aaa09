package services

import (
	"sort"
	"strings"
	"sync"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"

	"github.com/abigaildinucci5-hue/tp-final-sub001/models"
)

// Búsqueda difusa de habitaciones por texto libre: se normalizan los
// acentos ("habitación" matchea "habitacion"), se puntúa por nombre,
// categoría y descripción y se ordena por puntaje.

// ScoredRoom es una habitación con su puntaje de relevancia
type ScoredRoom struct {
	Room  models.Room
	Score int
}

// NormalizeQuery baja a minúsculas y saca acentos
func NormalizeQuery(input string) string {
	input = strings.TrimSpace(input)
	return strings.ToLower(unidecode.Unidecode(input))
}

func newCategoryMatcher(rooms []models.Room) *closestmatch.ClosestMatch {
	seen := make(map[string]bool)
	var categories []string
	for _, room := range rooms {
		cat := NormalizeQuery(room.Category)
		if cat != "" && !seen[cat] {
			seen[cat] = true
			categories = append(categories, cat)
		}
	}
	return closestmatch.New(categories, []int{2, 3})
}

// Similarity devuelve la similitud Levenshtein normalizada entre 0 y 1
func Similarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len([]rune(a)))
	if l := float64(len([]rune(b))); l > maxLen {
		maxLen = l
	}
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(distance)/maxLen
}

func scoreRoom(query string, room models.Room, cmCategory *closestmatch.ClosestMatch) int {
	score := 0

	name := NormalizeQuery(room.RoomName)
	if name != "" {
		if strings.Contains(name, query) || strings.Contains(query, name) {
			score += 20
		} else if Similarity(query, name) > 0.7 {
			score += 12
		}
	}

	category := NormalizeQuery(room.Category)
	if category != "" && cmCategory.Closest(query) == category {
		score += 10
	}

	for _, word := range strings.Fields(NormalizeQuery(room.Description)) {
		if len(word) >= 4 && strings.Contains(query, word) {
			score += 2
		}
	}
	return score
}

// SearchRooms filtra y ordena las habitaciones por relevancia contra la
// consulta. Con consulta vacía devuelve todas sin puntuar.
func SearchRooms(query string, rooms []models.Room) []models.Room {
	normalized := NormalizeQuery(query)
	if normalized == "" {
		return rooms
	}

	cmCategory := newCategoryMatcher(rooms)

	scoreCh := make(chan ScoredRoom, len(rooms))
	var wg sync.WaitGroup
	for _, room := range rooms {
		wg.Add(1)
		go func(room models.Room) {
			defer wg.Done()
			if score := scoreRoom(normalized, room, cmCategory); score > 0 {
				scoreCh <- ScoredRoom{Room: room, Score: score}
			}
		}(room)
	}

	go func() {
		wg.Wait()
		close(scoreCh)
	}()

	var scored []ScoredRoom
	for s := range scoreCh {
		scored = append(scored, s)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].Room.RoomId < scored[j].Room.RoomId
	})

	result := make([]models.Room, 0, len(scored))
	for _, s := range scored {
		result = append(result, s.Room)
	}
	return result
}
