package helper

import "math"

// Paging carries pagination state for the listing templates.
type Paging struct {
	Page       int
	PerPage    int
	TotalPages int
	Total      int64
	HasPrev    bool
	HasNext    bool
	Prev       int
	Next       int
}

func GeneratePaging(page, perPage int, total int64) Paging {
	totalPages := int(math.Ceil(float64(total) / float64(perPage)))

	p := Paging{
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages,
		Total:      total,
	}

	if page > 1 && totalPages > 0 {
		p.HasPrev = true
		p.Prev = page - 1
	}
	if page < totalPages {
		p.HasNext = true
		p.Next = page + 1
	}

	return p
}
