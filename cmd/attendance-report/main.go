// Command attendance-report formats one day's attendance and copies it to the
// system clipboard.
//
//	attendance-report -date 2024-05-01 [-print]
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/cmlabs-hris/daily-report-backend-go/internal/config"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/pkg/clipboard"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/pkg/dayfilter"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/repository/postgresql"
	attendanceService "github.com/cmlabs-hris/daily-report-backend-go/internal/service/attendance"
)

func main() {
	date := flag.String("date", "", "day to report, YYYY-MM-DD (default today)")
	printText := flag.Bool("print", false, "also write the report to stdout")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	if err := run(*date, *printText); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(date string, printText bool) error {
	day, err := dayfilter.ParseDay(date)
	if err != nil {
		return fmt.Errorf("invalid -date %q: %w", date, err)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		return err
	}
	defer db.Close()

	svc := attendanceService.NewAttendanceService(
		postgresql.NewAttendanceRepository(db),
		postgresql.NewUserRepository(db),
	)
	var cb clipboard.Writer = clipboard.NewSystem()
	if !clipboard.Available() {
		cb = &clipboard.Memory{Err: clipboard.ErrUnavailable}
	}
	return copyReport(ctx, svc, day, cb, os.Stdout, printText)
}

func copyReport(ctx context.Context, svc attendance.AttendanceService, day time.Time, cb clipboard.Writer, out io.Writer, printText bool) error {
	text, copied, err := svc.CopyReport(ctx, day, cb)
	if err != nil {
		return err
	}

	if printText {
		fmt.Fprintln(out, text)
	}
	if copied {
		fmt.Fprintln(out, "copied")
	} else {
		fmt.Fprintln(out, "failed to copy")
	}
	return nil
}
