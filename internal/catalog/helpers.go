package catalog

import (
	"time"

	"github.com/google/uuid"
)

func cloneUUID(id *uuid.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

func cloneCategory(c *Category) *Category {
	if c == nil {
		return nil
	}
	out := *c
	out.DeletedAt = cloneTime(c.DeletedAt)
	return &out
}

func cloneProjectType(p *ProjectType) *ProjectType {
	if p == nil {
		return nil
	}
	out := *p
	out.DeletedAt = cloneTime(p.DeletedAt)
	return &out
}

func cloneArticle(a *Article) *Article {
	if a == nil {
		return nil
	}
	out := *a
	out.CategoryID = cloneUUID(a.CategoryID)
	out.ImageID = cloneUUID(a.ImageID)
	out.PublishedAt = cloneTime(a.PublishedAt)
	out.DeletedAt = cloneTime(a.DeletedAt)
	return &out
}

func cloneProduct(p *Product) *Product {
	if p == nil {
		return nil
	}
	out := *p
	out.CategoryID = cloneUUID(p.CategoryID)
	out.ImageID = cloneUUID(p.ImageID)
	out.DeletedAt = cloneTime(p.DeletedAt)
	return &out
}

func cloneService(s *Service) *Service {
	if s == nil {
		return nil
	}
	out := *s
	out.ImageID = cloneUUID(s.ImageID)
	out.DeletedAt = cloneTime(s.DeletedAt)
	return &out
}

func cloneProject(p *Project) *Project {
	if p == nil {
		return nil
	}
	out := *p
	out.ProjectTypeID = cloneUUID(p.ProjectTypeID)
	out.ImageID = cloneUUID(p.ImageID)
	out.DeletedAt = cloneTime(p.DeletedAt)
	return &out
}
