package service

import (
	"context"
	"time"

	"anicms/internal/models"
	"anicms/internal/repository"
)

// LookupPtr is the pointer-side constraint for the lookup models; the
// methods are promoted from the embedded models.LookupFields.
type LookupPtr[T any] interface {
	*T
	Apply(name, nameEn, slug string, date *time.Time, isActive bool)
	SetLastEditor(userID string)
	SetID(id int64)
	GetID() int64
}

// LookupInput carries one season/studio/language/type form submission.
type LookupInput struct {
	Name     string
	NameEn   string
	Slug     string
	Date     *time.Time
	IsActive bool
}

// LookupService manages one of the lookup tables. Both Create and Update
// stamp the acting user, so the row always records its last editor.
type LookupService[T repository.Lookup, PT LookupPtr[T]] struct {
	repo *repository.LookupRepo[T]
}

func NewLookupService[T repository.Lookup, PT LookupPtr[T]](repo *repository.LookupRepo[T]) *LookupService[T, PT] {
	return &LookupService[T, PT]{repo: repo}
}

func (s *LookupService[T, PT]) GetAll(ctx context.Context) ([]T, error) {
	return s.repo.GetAll(ctx)
}

func (s *LookupService[T, PT]) GetByID(ctx context.Context, id int64) (*T, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *LookupService[T, PT]) Create(ctx context.Context, actorID string, in LookupInput) (*T, error) {
	if in.Slug == "" {
		if in.NameEn != "" {
			in.Slug = slugify(in.NameEn)
		} else {
			in.Slug = slugify(in.Name)
		}
	}
	item := new(T)
	p := PT(item)
	p.Apply(in.Name, in.NameEn, in.Slug, in.Date, in.IsActive)
	p.SetLastEditor(actorID)
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *LookupService[T, PT]) Update(ctx context.Context, id int64, actorID string, in LookupInput) (*T, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p := PT(existing)
	p.Apply(in.Name, in.NameEn, in.Slug, in.Date, in.IsActive)
	p.SetLastEditor(actorID)
	p.SetID(id)
	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *LookupService[T, PT]) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// lookupNames resolves lookup ids to the denormalized English names stored
// on anime rows. Satisfies LookupResolver.
type lookupNames struct {
	studios   *repository.LookupRepo[models.Studio]
	languages *repository.LookupRepo[models.Language]
	types     *repository.LookupRepo[models.Type]
}

func NewLookupResolver(
	studios *repository.LookupRepo[models.Studio],
	languages *repository.LookupRepo[models.Language],
	types *repository.LookupRepo[models.Type],
) LookupResolver {
	return &lookupNames{studios: studios, languages: languages, types: types}
}

func (l *lookupNames) StudioName(ctx context.Context, id int64) (string, error) {
	s, err := l.studios.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	return s.EnglishName(), nil
}

func (l *lookupNames) LanguageName(ctx context.Context, id int64) (string, error) {
	lang, err := l.languages.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	return lang.EnglishName(), nil
}

func (l *lookupNames) TypeName(ctx context.Context, id int64) (string, error) {
	t, err := l.types.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	return t.EnglishName(), nil
}
