package main

import (
	"context"
	"flag"
	"log/slog"
	"net/url"
	"os"
	"time"

	"order-followup/internal/pkg/config"
	"order-followup/internal/pkg/errs"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/kelseyhightower/envconfig"
)

// migrate applies the versioned SQL files under migrations/ with the atlas CLI.
// The directory must carry an atlas.sum produced by `atlas migrate hash`.
func main() {
	dir := flag.String("dir", "migrations", "migration directory")
	bin := flag.String("atlas", "atlas", "path to the atlas binary")
	dryRun := flag.Bool("dry-run", false, "print pending migrations without applying them")
	timeout := flag.Duration("timeout", 2*time.Minute, "overall timeout")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	var dbCfg config.DBConfig
	if err := envconfig.Process("", &dbCfg); err != nil {
		logger.Error("failed to load database config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	res, err := apply(ctx, *dir, *bin, databaseURL(dbCfg), *dryRun)
	if err != nil {
		logger.Error("migration failed", "error", err)
		os.Exit(1)
	}
	logger.Info("migrations applied",
		"current", res.Current,
		"target", res.Target,
		"applied", len(res.Applied),
		"dry_run", *dryRun)
}

func apply(ctx context.Context, dir, bin, dbURL string, dryRun bool) (*atlasexec.MigrateApply, error) {
	workdir, err := atlasexec.NewWorkingDir(atlasexec.WithMigrations(os.DirFS(dir)))
	if err != nil {
		return nil, errs.Wrap(err, "prepare atlas working dir")
	}
	defer workdir.Close()

	client, err := atlasexec.NewClient(workdir.Path(), bin)
	if err != nil {
		return nil, errs.Wrap(err, "create atlas client")
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    dbURL,
		DryRun: dryRun,
	})
	if err != nil {
		return nil, errs.Wrap(err, "atlas migrate apply")
	}
	return res, nil
}

func databaseURL(c config.DBConfig) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     c.Host + ":" + c.Port,
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": {c.SSLMode}}.Encode(),
	}
	return u.String()
}
