package dto

type Filter struct {
	Limit int `query:"limit" validate:"gte=0"`
	Page  int `query:"page" validate:"gte=0"`
}

// Paginated reports whether a limit was supplied. A missing page means the first one.
func (f Filter) Paginated() bool {
	return f.Limit != 0
}

func (f Filter) Offset() int {
	if f.Page == 0 {
		return 0
	}

	return (f.Page - 1) * f.Limit
}
