package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"talentsync/internal/config"
	"talentsync/internal/csvexport"
	"talentsync/internal/domain"
	"talentsync/internal/logging"
	"talentsync/internal/port"
	"talentsync/internal/repository/postgres"
	"talentsync/internal/service"
	s3storage "talentsync/internal/storage/s3"
	"talentsync/internal/validator/employee"
)

func runImport(ctx context.Context, out io.Writer, path string, opts importOptions) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := logging.New(cfg.Log)

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open spreadsheet: %w", err)
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat spreadsheet: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return err
	}
	defer db.Close()

	var storage port.ObjectStorage
	if cfg.Import.ArchiveUploads {
		storage, err = s3storage.NewS3Client(ctx, &cfg.S3)
		if err != nil {
			return fmt.Errorf("initialize S3 client: %w", err)
		}
	}

	svc := service.NewEmployeeImportService(postgres.NewEmployeeRepo(db), storage, cfg.S3.Bucket, cfg.Import, log)

	preview, err := svc.Preview(ctx, service.PreviewInput{
		Filename: filepath.Base(path),
		File:     f,
		Size:     info.Size(),
	})
	if err != nil {
		return fmt.Errorf("preview: %w", err)
	}

	if opts.Rejects != "" && len(preview.InvalidRows) > 0 {
		target := opts.Rejects
		if strings.EqualFold(target, "auto") {
			target = filepath.Join(filepath.Dir(path), csvexport.RejectsFilename(path, time.Now()))
		}
		if err := writeRejects(target, preview.InvalidRows); err != nil {
			return err
		}
		log.WithField("path", target).Info("rejected rows written")
	}

	var confirmed *domain.ConfirmResult
	var confirmErr error
	if opts.Confirm {
		confirmed, confirmErr = svc.Confirm(ctx, preview)
		if confirmed == nil {
			return fmt.Errorf("confirm: %w", confirmErr)
		}
	}

	r := report{Source: path, Preview: preview, Confirm: confirmed}
	if opts.JSON {
		err = r.writeJSON(out)
	} else {
		err = r.writeText(out)
	}
	if err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	if confirmErr != nil {
		return fmt.Errorf("confirm interrupted: %w", confirmErr)
	}
	return nil
}

func writeRejects(path string, rows []domain.RowOutcome) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create rejects file: %w", err)
	}
	defer func() { _ = out.Close() }()

	if _, err := out.Write(csvexport.BOM); err != nil {
		return fmt.Errorf("write rejects file: %w", err)
	}
	w := csvexport.NewWriter(out, employee.Columns)
	if err := w.WriteHeader(); err != nil {
		return fmt.Errorf("write rejects header: %w", err)
	}
	if err := w.WriteOutcomes(rows); err != nil {
		return fmt.Errorf("write rejects rows: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush rejects file: %w", err)
	}
	return out.Close()
}
