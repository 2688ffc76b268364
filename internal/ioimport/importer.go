// Package ioimport creates users in bulk from a roster file. Passwords
// are hashed by a pool of workers, users are inserted in batches
// together with their settings and default blocks.
package ioimport

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnkin/internal/iouser"
	"github.com/gnames/gnkin/pkg/config"
	"github.com/gnames/gnkin/pkg/db"
	"github.com/gnames/gnkin/pkg/lifecycle"
	"github.com/gnames/gnkin/pkg/roster"
	"github.com/gnames/gnkin/pkg/schema"
	"github.com/gnames/gnkin/pkg/user"
	"github.com/gnames/gnlib"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type importer struct {
	operator  db.Operator
	cost      int
	jobs      int
	batchSize int
}

// New creates a lifecycle.Importer that writes to the database of op.
func New(op db.Operator, cfg *config.Config) lifecycle.Importer {
	return &importer{
		operator:  op,
		cost:      cfg.Auth.PasswordCost,
		jobs:      max(cfg.JobsNumber, 1),
		batchSize: max(cfg.Database.BatchSize, 1),
	}
}

// hashed is an entry with its password hash, in roster order.
type hashed struct {
	entry roster.Entry
	hash  string
}

// Import creates the users of r that do not exist yet.
func (im *importer) Import(
	ctx context.Context,
	r *roster.Roster,
) (lifecycle.ImportSummary, error) {
	var res lifecycle.ImportSummary
	start := time.Now()

	gdb := im.operator.DB()
	if gdb == nil {
		return res, NotConnectedError()
	}
	gdb = gdb.WithContext(ctx)

	if err := r.Validate(); err != nil {
		return res, RosterError(err)
	}

	entries, skipped, err := im.newEntries(gdb, r.Users)
	if err != nil {
		return res, err
	}
	res.Skipped = skipped

	users, err := im.hashAll(ctx, entries)
	if err != nil {
		return res, err
	}

	for i := 0; i < len(users); i += im.batchSize {
		end := min(i+im.batchSize, len(users))
		if err = im.insert(gdb, users[i:end]); err != nil {
			return res, InsertError(i/im.batchSize+1, err)
		}
		res.Created += end - i
	}

	res.Duration = time.Since(start)
	slog.Info("Users imported",
		"created", res.Created,
		"skipped", len(res.Skipped),
		"duration", gnfmt.TimeString(res.Duration.Seconds()),
	)
	gn.Info(
		"Imported <em>%s</em> users, skipped %s, in %s",
		humanize.Comma(int64(res.Created)),
		humanize.Comma(int64(len(res.Skipped))),
		gnfmt.TimeString(res.Duration.Seconds()),
	)
	return res, nil
}

// newEntries drops entries whose user name or email is taken.
func (im *importer) newEntries(
	gdb *gorm.DB,
	entries []roster.Entry,
) ([]roster.Entry, []string, error) {
	var rows []schema.User
	err := gdb.Select("user_name", "email").Find(&rows).Error
	if err != nil {
		return nil, nil, QueryError(err)
	}

	taken := make(map[string]struct{}, 2*len(rows))
	for _, v := range rows {
		taken[v.UserName] = struct{}{}
		taken[v.Email] = struct{}{}
	}

	var res []roster.Entry
	var skipped []string
	for _, e := range entries {
		_, nameTaken := taken[e.UserName]
		_, emailTaken := taken[e.Email]
		if nameTaken || emailTaken {
			slog.Warn("User exists, skipping",
				"user_name", e.UserName, "email", e.Email)
			skipped = append(skipped, e.UserName)
			continue
		}
		res = append(res, e)
	}
	return res, skipped, nil
}

// hashAll hashes passwords with im.jobs workers.
func (im *importer) hashAll(
	ctx context.Context,
	entries []roster.Entry,
) ([]hashed, error) {
	res := make([]hashed, len(entries))
	if len(entries) == 0 {
		return res, nil
	}

	bar := newProgressBar(len(entries), "Hashing passwords: ")
	defer bar.Finish()

	chIn := make(chan int)
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(chIn)
		for i := range entries {
			select {
			case <-gCtx.Done():
				return gCtx.Err()
			case chIn <- i:
			}
		}
		return nil
	})

	for range im.jobs {
		g.Go(func() error {
			for i := range chIn {
				e := entries[i]
				h, err := bcrypt.GenerateFromPassword([]byte(e.Password), im.cost)
				if err != nil {
					return HashError(e.UserName, err)
				}
				e.RealName = gnlib.FixUtf8(e.RealName)
				res[i] = hashed{entry: e, hash: string(h)}
				bar.Increment()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

// insert stores one batch of users in a transaction.
func (im *importer) insert(gdb *gorm.DB, batch []hashed) error {
	return gdb.Transaction(func(tx *gorm.DB) error {
		rows := make([]schema.User, len(batch))
		names := make([]string, len(batch))
		for i, v := range batch {
			rows[i] = schema.User{
				UserName: v.entry.UserName,
				RealName: v.entry.RealName,
				Email:    v.entry.Email,
				Password: v.hash,
			}
			names[i] = v.entry.UserName
		}
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}

		var stored []schema.User
		err := tx.Select("user_id", "user_name").
			Where("user_name IN ?", names).
			Find(&stored).Error
		if err != nil {
			return err
		}
		ids := make(map[string]int, len(stored))
		for _, v := range stored {
			ids[v.UserName] = v.ID
		}
		if len(ids) != len(batch) {
			return fmt.Errorf("stored %d users of %d", len(ids), len(batch))
		}

		userIDs := make([]int, 0, len(batch))
		var settings []schema.UserSetting
		for _, v := range batch {
			id := ids[v.entry.UserName]
			userIDs = append(userIDs, id)
			settings = append(settings, entrySettings(id, v.entry)...)
		}
		if err = tx.CreateInBatches(&settings, im.batchSize).Error; err != nil {
			return err
		}
		return iouser.CopyDefaultBlocks(tx, userIDs...)
	})
}

func entrySettings(id int, e roster.Entry) []schema.UserSetting {
	flag := "0"
	if e.IsVerified() {
		flag = "1"
	}
	prefs := [][2]string{
		{user.PrefVerified, flag},
		{user.PrefVerifiedByAdmin, flag},
	}
	if e.Admin {
		prefs = append(prefs, [2]string{user.PrefCanAdmin, "1"})
	}
	if e.Language != "" {
		prefs = append(prefs, [2]string{user.PrefLanguage, e.Language})
	}

	res := make([]schema.UserSetting, len(prefs))
	for i, p := range prefs {
		res[i] = schema.UserSetting{
			UserID:       id,
			SettingName:  p[0],
			SettingValue: user.Truncate(p[1]),
		}
	}
	return res
}

// newProgressBar creates a progress bar that disappears when finished.
func newProgressBar(total int, prefix string) *pb.ProgressBar {
	bar := pb.Full.Start(total)
	bar.Set("prefix", prefix)
	bar.Set(pb.CleanOnFinish, true)
	return bar
}
