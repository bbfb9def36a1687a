package main

import (
	"context"
	"database/sql"
	"os"
	"time"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/ads-insights-api/infrastructure/database/migrations"
	"github.com/vfg2006/ads-insights-api/internal/config"
)

const usage = "uso: migrate [up|down|status]"

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	command := "up"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logrus.Info("Conectando ao banco de dados...")

	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao banco de dados")
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao verificar conexão com o banco")
	}

	startTime := time.Now()

	switch command {
	case "up":
		err = migrations.Up(ctx, db)
	case "down":
		err = migrations.Down(ctx, db)
	case "status":
		err = migrations.Status(ctx, db)
	default:
		logrus.Fatal(usage)
	}

	if err != nil {
		logrus.WithError(err).Fatalf("Migração %s falhou", command)
	}

	logrus.Infof("Migração %s concluída em %v", command, time.Since(startTime))
}
