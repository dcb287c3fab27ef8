package repository

import (
	"context"
	"fmt"

	"backoffice/internal/model"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CategoryRepository reads the categories lookup table and the free-text
// category columns that reference it by name.
type CategoryRepository interface {
	// ListCategories returns categories ordered by name, optionally filtered by type.
	ListCategories(ctx context.Context, categoryType string) ([]model.Category, error)
	// GetRawCategoryCounts counts rows per raw category value for every content source.
	GetRawCategoryCounts(ctx context.Context) ([]model.RawCategoryCount, error)
}

type categoryRepo struct {
	pool *pgxpool.Pool
	psql sq.StatementBuilderType
}

// NewCategoryRepo creates a new CategoryRepository.
func NewCategoryRepo(pool *pgxpool.Pool) CategoryRepository {
	return &categoryRepo{
		pool: pool,
		psql: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *categoryRepo) ListCategories(ctx context.Context, categoryType string) ([]model.Category, error) {
	builder := r.psql.
		Select("id", "name", "COALESCE(type, '')").
		From("categories").
		OrderBy("name ASC", "id ASC")
	if categoryType != "" {
		builder = builder.Where(sq.Eq{"type": categoryType})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("building category list query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer rows.Close()

	categories := []model.Category{}
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Type); err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// rawCategoryCountsQuery counts every source's rows per raw category value in
// one statement, tagged with a source discriminator. Matching against
// categories.name happens in the service so the comparison rule is pluggable.
var rawCategoryCountsQuery = `
	SELECT '` + model.SourceArticles + `' AS source, category, COUNT(*) FROM articles WHERE category IS NOT NULL GROUP BY category
	UNION ALL
	SELECT '` + model.SourcePodcasts + `', category, COUNT(*) FROM podcasts WHERE category IS NOT NULL GROUP BY category
	UNION ALL
	SELECT '` + model.SourceVideos + `', category, COUNT(*) FROM videos WHERE category IS NOT NULL GROUP BY category
	UNION ALL
	SELECT '` + model.SourceBusinesses + `', category, COUNT(*) FROM businesses WHERE category IS NOT NULL GROUP BY category
`

func (r *categoryRepo) GetRawCategoryCounts(ctx context.Context) ([]model.RawCategoryCount, error) {
	rows, err := r.pool.Query(ctx, rawCategoryCountsQuery)
	if err != nil {
		return nil, fmt.Errorf("counting content categories: %w", err)
	}
	defer rows.Close()

	var counts []model.RawCategoryCount
	for rows.Next() {
		var c model.RawCategoryCount
		if err := rows.Scan(&c.Source, &c.Category, &c.Count); err != nil {
			return nil, fmt.Errorf("scanning content category count: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}
