package service

// Page is one slice of a larger result set plus the metadata needed to walk
// it.
type Page[T any] struct {
	Content       []T
	PageNumber    int
	PageSize      int
	TotalElements int64
	TotalPages    int
	First         bool
	Last          bool
}

func newPage[T any](content []T, pageNumber, pageSize int, total int64) *Page[T] {
	totalPages := 0
	if total > 0 {
		totalPages = int((total + int64(pageSize) - 1) / int64(pageSize))
	}
	return &Page[T]{
		Content:       content,
		PageNumber:    pageNumber,
		PageSize:      pageSize,
		TotalElements: total,
		TotalPages:    totalPages,
		First:         pageNumber == 0,
		Last:          pageNumber >= totalPages-1,
	}
}
