package main

import (
	"fmt"

	"unit-codex/internal/auth"
	"unit-codex/internal/config"
	"unit-codex/internal/database"
	"unit-codex/internal/server"

	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("load config: %v", err)
	}

	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(level)
	}

	db, err := database.Open(cfg)
	if err != nil {
		logrus.Fatalf("open database: %v", err)
	}

	if err := database.EnsureAdmin(db, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		logrus.Fatalf("seed admin: %v", err)
	}

	// stale sessions are also destroyed lazily on access; this keeps the
	// table small across restarts
	if cleaned, err := auth.NewSessionManager(db).CleanExpired(); err != nil {
		logrus.Warnf("clean expired sessions: %v", err)
	} else if cleaned > 0 {
		logrus.Infof("removed %d expired sessions", cleaned)
	}

	r := server.NewRouter(cfg, db)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	logrus.Infof("starting server on %s", addr)
	if err := r.Run(addr); err != nil {
		logrus.Fatalf("server error: %v", err)
	}
}
