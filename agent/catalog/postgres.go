package catalog

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

// PostgresConfig configures the optional database-backed catalog source.
type PostgresConfig struct {
	DSN     string        `envconfig:"DSN" split_words:"true" required:"true"`
	Timeout time.Duration `envconfig:"TIMEOUT" split_words:"true" default:"10s"`
}

// PostgresSource reads catalog rows from Postgres via bun. Filter and
// availability narrowing happen in process, on the loaded rows, so the open
// field=value filter contract (including list containment) behaves exactly
// as it does for MemorySource.
type PostgresSource struct {
	db *bun.DB
}

func NewPostgresSource(cfg PostgresConfig) (*PostgresSource, error) {
	dsn := strings.TrimSpace(cfg.DSN)
	if dsn == "" {
		return nil, errors.New("catalog dsn is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	sqldb := sql.OpenDB(pgdriver.NewConnector(
		pgdriver.WithDSN(dsn),
		pgdriver.WithTimeout(timeout),
	))
	return &PostgresSource{db: bun.NewDB(sqldb, pgdialect.New())}, nil
}

func (p *PostgresSource) Close() error {
	return p.db.Close()
}

func (p *PostgresSource) Individuals(ctx context.Context, f Filter) ([]Individual, error) {
	var rows []Individual
	if err := p.db.NewSelect().Model(&rows).Order("id ASC").Scan(ctx); err != nil {
		return nil, err
	}
	var out []Individual
	for _, ind := range rows {
		if matchesFilter(ind.fields(), f) {
			out = append(out, ind)
		}
	}
	return out, nil
}

func (p *PostgresSource) Courses(ctx context.Context, f Filter) ([]MicroCourse, error) {
	var rows []MicroCourse
	if err := p.db.NewSelect().Model(&rows).Order("id ASC").Scan(ctx); err != nil {
		return nil, err
	}
	var out []MicroCourse
	for _, c := range rows {
		if matchesFilter(c.fields(), f) && courseAvailable(c) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (p *PostgresSource) Properties(ctx context.Context, f Filter) ([]Property, error) {
	var rows []Property
	if err := p.db.NewSelect().Model(&rows).Order("id ASC").Scan(ctx); err != nil {
		return nil, err
	}
	var out []Property
	for _, prop := range rows {
		if matchesFilter(prop.fields(), f) && propertyAvailable(prop) {
			out = append(out, prop)
		}
	}
	return out, nil
}

func (p *PostgresSource) Jobs(ctx context.Context, f Filter) ([]Job, error) {
	var rows []Job
	if err := p.db.NewSelect().Model(&rows).Order("id ASC").Scan(ctx); err != nil {
		return nil, err
	}
	var out []Job
	for _, j := range rows {
		if matchesFilter(j.fields(), f) && jobAvailable(j) {
			out = append(out, j)
		}
	}
	return out, nil
}
