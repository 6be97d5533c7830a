package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/diagnostic/model"
	"hotel/shared/constant"
	"hotel/shared/logger"
)

const queryTables = `SELECT relname AS table_name, n_live_tup AS table_rows
	FROM pg_stat_user_tables ORDER BY relname`

type Diagnostic interface {
	Ping(ctx context.Context) error
	Tables(ctx context.Context) ([]model.TableInfo, error)
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Diagnostic {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

func (repo *repositoryImpl) Ping(ctx context.Context) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".diagnostic.Ping")
	defer scope.End()

	if err := repo.db.Ping(ctx); err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to ping database: %w", err)
	}

	return nil
}

// Tables lists user tables. Row counts come from pg_stat and are estimates.
func (repo *repositoryImpl) Tables(ctx context.Context) ([]model.TableInfo, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".diagnostic.Tables")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryTables)

	tables := []model.TableInfo{}

	db, err := repo.db.Reader()
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}

	if err := db.SelectContext(ctx, &tables, queryTables); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to list tables: %w", err)
	}

	return tables, nil
}
