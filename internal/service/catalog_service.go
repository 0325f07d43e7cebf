package service

import (
	"context"

	"github.com/GulfDevInnovations/royal-academy/internal/calendar"
	"github.com/GulfDevInnovations/royal-academy/internal/repository"
)

// CatalogService lists the bookable offerings shown next to the calendar.
type CatalogService struct {
	catalog repository.CatalogRepository
}

func NewCatalogService(catalog repository.CatalogRepository) *CatalogService {
	return &CatalogService{catalog: catalog}
}

// ListSubClasses pages active sub classes ordered by name.
func (s *CatalogService) ListSubClasses(ctx context.Context, page, pageSize int) (calendar.Page[calendar.SubClassInfo], error) {
	page, pageSize = calendar.NormalizePage(page, pageSize)
	rows, total, err := s.catalog.ListSubClasses(ctx, true, pageSize, calendar.Offset(page, pageSize))
	if err != nil {
		return calendar.Page[calendar.SubClassInfo]{}, storeErr("list sub classes", err)
	}

	items := make([]calendar.SubClassInfo, 0, len(rows))
	for i := range rows {
		items = append(items, subClassInfo(&rows[i]))
	}
	return calendar.NewPage(items, total, page, pageSize), nil
}
