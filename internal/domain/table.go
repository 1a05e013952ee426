package domain

import "time"

type Table struct {
	ID        string    `json:"id"`
	Number    int       `json:"number"`
	Capacity  int       `json:"capacity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type TableInput struct {
	Number   int
	Capacity int
}

// SelectTable picks the best-fit table for a party: the smallest capacity
// that still seats guests, ties broken by the lowest table number. Tables in
// excluded are skipped. Returns nil when nothing fits.
func SelectTable(tables []*Table, guests int, excluded map[string]struct{}) *Table {
	var best *Table
	for _, t := range tables {
		if t.Capacity < guests {
			continue
		}
		if _, ok := excluded[t.ID]; ok {
			continue
		}
		if best == nil || t.Capacity < best.Capacity ||
			(t.Capacity == best.Capacity && t.Number < best.Number) {
			best = t
		}
	}
	return best
}
