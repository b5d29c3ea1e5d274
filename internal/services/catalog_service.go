package services

import (
	"context"
	"strings"

	"yogabooking/internal/domain/models"
	"yogabooking/internal/repositories"
	"yogabooking/internal/utils"
)

// CatalogService serves the class browsing views. Filtering is plain
// substring/exact matching, no ranking.
type CatalogService struct {
	Catalog repositories.CatalogStore
}

// ListClasses returns the catalog, optionally narrowed by teacher name
// substring (case-insensitive) and/or exact date string.
func (s CatalogService) ListClasses(ctx context.Context, teacher, date string) ([]models.ClassRecord, error) {
	classes, err := s.Catalog.ListClasses(ctx)
	if err != nil {
		return nil, err
	}

	teacher = strings.ToLower(utils.TrimOrEmpty(teacher))
	date = utils.TrimOrEmpty(date)
	if teacher == "" && date == "" {
		return classes, nil
	}

	out := make([]models.ClassRecord, 0, len(classes))
	for _, c := range classes {
		if teacher != "" && !strings.Contains(strings.ToLower(c.TeacherName), teacher) {
			continue
		}
		if date != "" && c.Date != date {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (s CatalogService) GetClass(ctx context.Context, id string) (models.ClassRecord, error) {
	return s.Catalog.GetClass(ctx, id)
}

// TeacherNames lists distinct teacher names in catalog order, for the
// search suggestion box.
func (s CatalogService) TeacherNames(ctx context.Context) ([]string, error) {
	classes, err := s.Catalog.ListClasses(ctx)
	if err != nil {
		return nil, err
	}
	seen := map[string]bool{}
	out := []string{}
	for _, c := range classes {
		name := utils.TrimOrEmpty(c.TeacherName)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out, nil
}
