package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/kapu/pedigree-chart-go/internal/constants"
	"github.com/kapu/pedigree-chart-go/internal/domain"
	"github.com/kapu/pedigree-chart-go/internal/util"
	"github.com/kapu/pedigree-chart-go/pkg/errors"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

type PostgresService struct {
	db     *sql.DB
	logger *zap.Logger
}

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

func NewPostgresService(cfg PostgresConfig, logger *zap.Logger) (*PostgresService, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Database)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	logger.Info("PostgreSQL connected",
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
		zap.String("database", cfg.Database),
	)

	return &PostgresService{
		db:     db,
		logger: logger,
	}, nil
}

func (ps *PostgresService) GetDB() *sql.DB {
	return ps.db
}

func (ps *PostgresService) Close() error {
	if ps.db != nil {
		return ps.db.Close()
	}
	return nil
}

func (ps *PostgresService) Ping(ctx context.Context) error {
	return ps.db.PingContext(ctx)
}

const createIndividualsTable = `
CREATE TABLE IF NOT EXISTS individuals (
	identifier        TEXT PRIMARY KEY,
	name_markup       TEXT NOT NULL DEFAULT '',
	name_flat         TEXT NOT NULL DEFAULT '',
	alternate_markup  TEXT NOT NULL DEFAULT '',
	sex               TEXT NOT NULL DEFAULT 'unknown',
	birth_text        TEXT,
	death_text        TEXT,
	deceased          BOOLEAN NOT NULL DEFAULT FALSE,
	visible           BOOLEAN NOT NULL DEFAULT TRUE,
	highlight_url     TEXT,
	father_identifier TEXT,
	mother_identifier TEXT,
	updated_at        TIMESTAMPTZ NOT NULL DEFAULT now()
)`

func (ps *PostgresService) EnsureSchema(ctx context.Context) error {
	if _, err := ps.db.ExecContext(ctx, createIndividualsTable); err != nil {
		return errors.NewProviderError("failed to ensure schema", "ensure_schema", "", err)
	}
	ps.logger.Debug("Individuals schema ensured")
	return nil
}

const selectIndividualQuery = `
SELECT identifier, name_markup, name_flat, alternate_markup, sex,
       birth_text, death_text, deceased, visible, highlight_url,
       father_identifier, mother_identifier
FROM individuals
WHERE identifier = $1`

// GetIndividual loads one individual. A missing identifier is (nil, nil),
// not an error.
func (ps *PostgresService) GetIndividual(ctx context.Context, identifier string) (*domain.Individual, error) {
	if identifier == "" {
		return nil, nil
	}

	row := ps.db.QueryRowContext(ctx, selectIndividualQuery, identifier)

	var (
		ind          domain.Individual
		sex          string
		birthText    sql.NullString
		deathText    sql.NullString
		highlightURL sql.NullString
		fatherID     sql.NullString
		motherID     sql.NullString
	)

	err := row.Scan(
		&ind.Identifier, &ind.NameMarkup, &ind.NameFlat, &ind.AlternateNameMarkup, &sex,
		&birthText, &deathText, &ind.Deceased, &ind.Visible, &highlightURL,
		&fatherID, &motherID,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		ps.logger.Error("Failed to load individual", zap.String("identifier", identifier), zap.Error(err))
		return nil, errors.NewProviderError("failed to load individual", "get_individual", identifier, err)
	}

	ind.Sex = domain.ParseSex(sex)
	if birthText.Valid && birthText.String != "" {
		ind.Birth = &domain.DateInfo{Text: birthText.String}
	}
	if deathText.Valid && deathText.String != "" {
		ind.Death = &domain.DateInfo{Text: deathText.String}
	}
	if highlightURL.Valid && highlightURL.String != "" {
		ind.HighlightMedia = &domain.MediaRef{URL: highlightURL.String}
	}
	ind.FatherIdentifier = fatherID.String
	ind.MotherIdentifier = motherID.String

	return &ind, nil
}

// GetAncestors walks the pedigree upward from the subject, numbering
// slots in ahnentafel order (subject 1, father 2n, mother 2n+1). The walk
// stops after the requested generation count, capped by ProviderLimits.
// A missing subject is (nil, nil); dangling parent references are skipped.
func (ps *PostgresService) GetAncestors(ctx context.Context, identifier string, generations int) ([]*domain.AncestorEntry, error) {
	generations = util.Max(1, util.Min(generations, constants.ProviderLimits.MaxGenerations))

	type slot struct {
		number     int
		identifier string
	}

	// Individuals can occupy several slots when lineages collapse; the
	// cache keeps one query per person, nil marking known-missing rows.
	loaded := make(map[string]*domain.Individual)
	entries := []*domain.AncestorEntry{}
	queue := []slot{{number: 1, identifier: identifier}}
	limit := 1 << generations

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if current.identifier == "" {
			continue
		}

		ind, seen := loaded[current.identifier]
		if !seen {
			var err error
			ind, err = ps.GetIndividual(ctx, current.identifier)
			if err != nil {
				return nil, err
			}
			loaded[current.identifier] = ind
		}
		if ind == nil {
			if current.number == 1 {
				return nil, nil
			}
			ps.logger.Warn("Dangling parent reference",
				zap.String("identifier", current.identifier),
				zap.Int("ahnentafel", current.number),
			)
			continue
		}

		entries = append(entries, &domain.AncestorEntry{Person: ind, Ahnentafel: current.number})

		fatherNumber := current.number * 2
		if fatherNumber < limit {
			queue = append(queue,
				slot{number: fatherNumber, identifier: ind.FatherIdentifier},
				slot{number: fatherNumber + 1, identifier: ind.MotherIdentifier},
			)
		}
	}

	ps.logger.Debug("Ancestors loaded",
		zap.String("identifier", identifier),
		zap.Int("generations", generations),
		zap.Int("entries", len(entries)),
	)
	return entries, nil
}

const upsertIndividualQuery = `
INSERT INTO individuals (
	identifier, name_markup, name_flat, alternate_markup, sex,
	birth_text, death_text, deceased, visible, highlight_url,
	father_identifier, mother_identifier, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, now())
ON CONFLICT (identifier) DO UPDATE SET
	name_markup       = EXCLUDED.name_markup,
	name_flat         = EXCLUDED.name_flat,
	alternate_markup  = EXCLUDED.alternate_markup,
	sex               = EXCLUDED.sex,
	birth_text        = EXCLUDED.birth_text,
	death_text        = EXCLUDED.death_text,
	deceased          = EXCLUDED.deceased,
	visible           = EXCLUDED.visible,
	highlight_url     = EXCLUDED.highlight_url,
	father_identifier = EXCLUDED.father_identifier,
	mother_identifier = EXCLUDED.mother_identifier,
	updated_at        = now()`

func (ps *PostgresService) UpsertIndividual(ctx context.Context, ind *domain.Individual) error {
	if ind == nil || ind.Identifier == "" {
		return errors.NewValidationError("individual must have an identifier", "identifier", "")
	}

	sex := ind.Sex
	if !sex.IsValid() {
		sex = domain.SexUnknown
	}

	birthText := ""
	if ind.Birth != nil {
		birthText = ind.Birth.Text
	}
	deathText := ""
	if ind.Death != nil {
		deathText = ind.Death.Text
	}
	highlightURL := ""
	if ind.HighlightMedia != nil {
		highlightURL = ind.HighlightMedia.URL
	}

	_, err := ps.db.ExecContext(ctx, upsertIndividualQuery,
		ind.Identifier, ind.NameMarkup, ind.NameFlat, ind.AlternateNameMarkup, sex.String(),
		nullIfEmpty(birthText), nullIfEmpty(deathText), ind.Deceased, ind.Visible, nullIfEmpty(highlightURL),
		nullIfEmpty(ind.FatherIdentifier), nullIfEmpty(ind.MotherIdentifier),
	)
	if err != nil {
		ps.logger.Error("Failed to upsert individual", zap.String("identifier", ind.Identifier), zap.Error(err))
		return errors.NewProviderError("failed to upsert individual", "upsert_individual", ind.Identifier, err)
	}

	return nil
}

func (ps *PostgresService) CountIndividuals(ctx context.Context) (int, error) {
	var count int
	if err := ps.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM individuals").Scan(&count); err != nil {
		return 0, errors.NewProviderError("failed to count individuals", "count_individuals", "", err)
	}
	return count, nil
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
