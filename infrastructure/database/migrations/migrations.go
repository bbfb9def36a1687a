package migrations

import (
	"context"
	"database/sql"
	"embed"

	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
	"github.com/sirupsen/logrus"
)

const dir = "sql"

//go:embed sql/*.sql
var embedded embed.FS

func setup() error {
	goose.SetBaseFS(embedded)
	goose.SetLogger(logrus.StandardLogger())

	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Wrap(err, "falha ao configurar o dialeto das migrações")
	}

	return nil
}

// Up aplica todas as migrações pendentes
func Up(ctx context.Context, db *sql.DB) error {
	if err := setup(); err != nil {
		return err
	}

	return errors.Wrap(goose.UpContext(ctx, db, dir), "falha ao aplicar migrações")
}

// Down desfaz a última migração aplicada
func Down(ctx context.Context, db *sql.DB) error {
	if err := setup(); err != nil {
		return err
	}

	return errors.Wrap(goose.DownContext(ctx, db, dir), "falha ao desfazer migração")
}

func Status(ctx context.Context, db *sql.DB) error {
	if err := setup(); err != nil {
		return err
	}

	return errors.Wrap(goose.StatusContext(ctx, db, dir), "falha ao consultar o status das migrações")
}

// Files lista os arquivos embutidos, na ordem em que o goose os aplica
func Files() ([]string, error) {
	entries, err := embedded.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(err, "falha ao ler as migrações embutidas")
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		files = append(files, entry.Name())
	}

	return files, nil
}
