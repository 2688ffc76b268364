// Package iooptimize implements lifecycle.Optimizer: periodic cleanup of
// sessions and orphaned rows followed by VACUUM and ANALYZE.
package iooptimize

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnkin/pkg/config"
	"github.com/gnames/gnkin/pkg/db"
	"github.com/gnames/gnkin/pkg/lifecycle"
	"github.com/gnames/gnkin/pkg/schema"
	"gorm.io/gorm"
)

type optimizer struct {
	operator   db.Operator
	sessionTTL time.Duration
	now        func() time.Time
}

// New creates an Optimizer for the database of op.
func New(op db.Operator, cfg *config.Config) lifecycle.Optimizer {
	return &optimizer{
		operator:   op,
		sessionTTL: time.Duration(cfg.Auth.SessionTTLMinutes) * time.Minute,
		now:        time.Now,
	}
}

// Optimize runs three steps:
//  1. Remove sessions idle for longer than the session TTL
//  2. Remove orphaned records
//  3. Run VACUUM and ANALYZE
func (o *optimizer) Optimize(ctx context.Context) (lifecycle.OptimizeSummary, error) {
	var res lifecycle.OptimizeSummary
	gdb := o.operator.DB()
	if gdb == nil {
		return res, NotConnectedError()
	}
	gdb = gdb.WithContext(ctx)
	timeStart := time.Now()

	slog.Info("Starting database optimization")

	slog.Info("Step 1/3: Removing expired sessions")
	cutoff := o.now().UTC().Add(-o.sessionTTL)
	tx := gdb.Where("session_time < ?", cutoff).Delete(&schema.Session{})
	if tx.Error != nil {
		return res, SessionsError(tx.Error)
	}
	res.ExpiredSessions = tx.RowsAffected
	slog.Info("Step 1/3: Complete", "sessions", res.ExpiredSessions)

	slog.Info("Step 2/3: Removing orphaned records")
	orphans, err := removeOrphans(gdb)
	if err != nil {
		return res, err
	}
	res.Orphans = orphans
	slog.Info("Step 2/3: Complete", "orphans", res.Orphans)

	slog.Info("Step 3/3: Updating storage and statistics")
	if err = vacuumAnalyze(gdb, o.operator.Driver()); err != nil {
		return res, err
	}
	slog.Info("Step 3/3: Complete")

	dur := time.Since(timeStart)
	slog.Info("Database optimization completed", "duration", dur.String())
	gn.Info(
		"Removed <em>%s</em> expired sessions and <em>%s</em> orphaned records in %s",
		humanize.Comma(res.ExpiredSessions),
		humanize.Comma(res.Orphans),
		gnfmt.TimeString(dur.Seconds()),
	)
	return res, nil
}

// vacuumAnalyze reclaims storage and updates planner statistics. It
// cannot run inside a transaction.
func vacuumAnalyze(gdb *gorm.DB, driver string) error {
	stmts := []string{"VACUUM ANALYZE"}
	if driver == "sqlite" {
		stmts = []string{"VACUUM", "ANALYZE"}
	}
	for _, stmt := range stmts {
		if err := gdb.Exec(stmt).Error; err != nil {
			return VacuumError(stmt, err)
		}
		slog.Info(fmt.Sprintf("%s completed", stmt))
	}
	return nil
}
