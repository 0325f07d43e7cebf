package service

import (
	"context"
	"testing"

	"github.com/GulfDevInnovations/royal-academy/internal/testutil"
)

func TestCatalogService_ListSubClasses(t *testing.T) {
	a := testutil.NewAcademy(t)

	page, err := NewCatalogService(a.Store.Catalog).ListSubClasses(context.Background(), 0, 0)
	if err != nil {
		t.Fatalf("ListSubClasses: %v", err)
	}
	if page.Total != 1 || page.Page != 1 || len(page.Items) != 1 {
		t.Fatalf("unexpected page: %+v", page)
	}
	got := page.Items[0]
	if got.Name != "Ballet for Kids" || got.ClassName != "Dance" || got.Price != 25 || got.Currency != "OMR" {
		t.Fatalf("unexpected sub class: %+v", got)
	}
}
