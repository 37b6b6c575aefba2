package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"talentsync/internal/config"
	"talentsync/internal/domain"
	"talentsync/internal/logging"
	"talentsync/internal/port"
	"talentsync/internal/spreadsheet"
	"talentsync/internal/validator/employee"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// PreviewInput is the DTO for spreadsheet preview and import requests.
type PreviewInput struct {
	Filename    string
	ContentType string
	File        io.Reader
	// Size is the declared payload size, or zero when unknown.
	Size int64
}

// EmployeeImportService reconciles personnel spreadsheets against the
// employee store in two phases. Preview classifies rows without writing;
// Confirm upserts the valid rows of a preview, isolating per-row failures.
type EmployeeImportService interface {
	Preview(ctx context.Context, input PreviewInput) (*domain.PreviewResult, error)
	Confirm(ctx context.Context, preview *domain.PreviewResult) (*domain.ConfirmResult, error)
	// Import runs Preview and then Confirm. Invalid rows are reported in
	// the result's errors and count towards its total.
	Import(ctx context.Context, input PreviewInput) (*domain.ConfirmResult, error)
}

type employeeImportService struct {
	repo    port.EmployeeRepository
	storage port.ObjectStorage
	bucket  string
	cfg     config.ImportConfig
	log     logrus.FieldLogger
}

// NewEmployeeImportService creates a new EmployeeImportService. storage may
// be nil, in which case uploads are never archived.
func NewEmployeeImportService(
	repo port.EmployeeRepository,
	storage port.ObjectStorage,
	bucket string,
	cfg config.ImportConfig,
	log logrus.FieldLogger,
) EmployeeImportService {
	if log == nil {
		log = logging.Discard()
	}
	return &employeeImportService{
		repo:    repo,
		storage: storage,
		bucket:  bucket,
		cfg:     cfg,
		log:     log.WithField("component", "employee_import"),
	}
}

func (s *employeeImportService) Preview(ctx context.Context, input PreviewInput) (*domain.PreviewResult, error) {
	log := s.log.WithFields(logrus.Fields{"phase": "preview", "file": input.Filename})

	data, err := s.readUpload(input)
	if err != nil {
		log.WithError(err).Warn("upload rejected")
		return nil, err
	}
	archiveKey := s.archive(ctx, input, data, log)

	sheet, err := spreadsheet.Read(bytes.NewReader(data))
	if err != nil {
		log.WithError(err).Warn("spreadsheet rejected")
		s.discardArchive(ctx, archiveKey, log)
		return nil, err
	}
	if missing := employee.MissingColumns(sheet.Headers); len(missing) > 0 {
		err := &domain.MissingHeadersError{Headers: missing}
		log.WithError(err).Warn("spreadsheet rejected")
		s.discardArchive(ctx, archiveKey, log)
		return nil, err
	}

	idx, err := loadDocumentIndex(ctx, s.repo)
	if err != nil {
		log.WithError(err).Error("loading existing employees failed")
		return nil, err
	}
	log.WithFields(logrus.Fields{"rows": len(sheet.Rows), "existing": idx.size()}).Info("preview started")

	tally, err := foldRows(ctx, sheet.Rows, previewTally{}, func(t previewTally, row spreadsheet.Row) previewTally {
		outcome := classify(row, sheet.Headers, idx)
		if !outcome.Valid() {
			log.WithFields(logrus.Fields{"row": row.Number, "errors": len(outcome.Errors)}).Debug("row invalid")
		}
		return t.with(outcome)
	})
	if err != nil {
		return nil, err
	}

	result := tally.result()
	result.ArchiveKey = archiveKey
	log.WithFields(logrus.Fields{
		"valid":   result.TotalValid,
		"invalid": result.TotalInvalid,
		"new":     result.TotalNew,
		"updates": result.TotalUpdates,
	}).Info("preview finished")
	return result, nil
}

// classify validates one row and, when valid, marks whether Confirm would
// create or update. Rows classified as new are put into idx as placeholders
// so a later row with the same document reads as an update, as it will
// during Confirm.
func classify(row spreadsheet.Row, headers []string, idx *documentIndex) domain.RowOutcome {
	res := employee.Validate(row.Data, headers)
	outcome := domain.RowOutcome{
		RowNumber: row.Number,
		RawData:   row.Data,
		Errors:    res.Errors,
	}
	if !res.Valid() {
		return outcome
	}

	outcome.Errors = []string{}
	if _, ok := idx.lookup(res.Fields.Document); ok {
		outcome.Action = domain.RowActionUpdate
	} else {
		outcome.Action = domain.RowActionCreate
		idx.put(&domain.Employee{Document: res.Fields.Document})
	}
	return outcome
}

func (s *employeeImportService) Confirm(ctx context.Context, preview *domain.PreviewResult) (*domain.ConfirmResult, error) {
	if preview == nil {
		return nil, domain.ErrInvalidPreviewData
	}
	log := s.log.WithField("phase", "confirm")

	idx, err := loadDocumentIndex(ctx, s.repo)
	if err != nil {
		log.WithError(err).Error("loading existing employees failed")
		return nil, err
	}
	log.WithFields(logrus.Fields{"rows": len(preview.ValidRows), "existing": idx.size()}).Info("confirm started")

	tally, err := foldRows(ctx, preview.ValidRows, confirmTally{}, func(t confirmTally, o domain.RowOutcome) confirmTally {
		action, document, rowErr := s.reconcile(ctx, idx, o)
		if rowErr != nil {
			log.WithFields(logrus.Fields{"row": o.RowNumber, "document": document}).
				WithError(rowErr).Warn("row not applied")
		}
		return t.with(o.RowNumber, action, rowErr)
	})

	result := tally.result(len(preview.ValidRows))
	entry := log.WithFields(logrus.Fields{
		"created": result.Created,
		"updated": result.Updated,
		"failed":  len(result.Errors),
	})
	if err != nil {
		entry.WithError(err).Warn("confirm interrupted")
		return result, err
	}
	entry.Info("confirm finished")
	return result, nil
}

// reconcile re-validates one previewed row and creates or updates the
// matching employee. The index is only touched after a successful write.
func (s *employeeImportService) reconcile(
	ctx context.Context,
	idx *documentIndex,
	o domain.RowOutcome,
) (action domain.RowAction, document string, err error) {
	document, _ = o.RawData.Get(employee.ColDocument)
	document = strings.TrimSpace(document)

	res := employee.Validate(o.RawData, nil)
	if !res.Valid() {
		return "", document, errors.New(strings.Join(res.Errors, "; "))
	}

	if existing, ok := idx.lookup(res.Fields.Document); ok {
		updated := *existing
		if err := updated.Apply(res.Fields); err != nil {
			return "", document, err
		}
		if err := s.repo.Update(ctx, &updated); err != nil {
			return "", document, fmt.Errorf("updating employee: %w", err)
		}
		idx.put(&updated)
		return domain.RowActionUpdate, document, nil
	}

	created, err := domain.NewEmployee(res.Fields)
	if err != nil {
		return "", document, err
	}
	if err := s.repo.Create(ctx, created); err != nil {
		return "", document, fmt.Errorf("creating employee: %w", err)
	}
	idx.put(created)
	return domain.RowActionCreate, document, nil
}

func (s *employeeImportService) Import(ctx context.Context, input PreviewInput) (*domain.ConfirmResult, error) {
	preview, err := s.Preview(ctx, input)
	if err != nil {
		return nil, err
	}

	result, err := s.Confirm(ctx, preview)
	if result == nil {
		return nil, err
	}

	rejected := make([]string, 0, len(preview.InvalidRows)+len(result.Errors))
	for _, o := range preview.InvalidRows {
		rejected = append(rejected, domain.RowError(o.RowNumber, strings.Join(o.Errors, "; ")))
	}
	result.Errors = append(rejected, result.Errors...)
	result.TotalRows += preview.TotalInvalid
	return result, err
}

// readUpload buffers the payload, enforcing the configured size limit.
func (s *employeeImportService) readUpload(input PreviewInput) ([]byte, error) {
	if input.File == nil {
		return nil, &domain.EmptyInputError{Reason: "no file"}
	}

	limit := s.cfg.MaxFileSizeBytes()
	if limit > 0 && input.Size > limit {
		return nil, domain.ErrFileTooLarge
	}

	r := input.File
	if limit > 0 {
		r = io.LimitReader(r, limit+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading upload: %w", err)
	}
	if limit > 0 && int64(len(data)) > limit {
		return nil, domain.ErrFileTooLarge
	}
	return data, nil
}

// archive stores the raw upload when archiving is enabled and returns its
// key. Archive failures are logged and never fail the preview.
func (s *employeeImportService) archive(ctx context.Context, input PreviewInput, data []byte, log logrus.FieldLogger) string {
	if s.storage == nil || !s.cfg.ArchiveUploads || len(data) == 0 {
		return ""
	}

	key := path.Join(
		s.cfg.ArchivePrefix,
		time.Now().UTC().Format("2006/01/02"),
		uuid.NewString()+"-"+archiveName(input.Filename),
	)
	contentType := input.ContentType
	if contentType == "" {
		contentType = xlsxContentType
	}

	_, err := s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.bucket,
		Key:         key,
		Body:        bytes.NewReader(data),
		ContentType: contentType,
		Size:        int64(len(data)),
	})
	if err != nil {
		log.WithError(err).WithField("key", key).Warn("archiving upload failed")
		return ""
	}
	log.WithField("key", key).Debug("upload archived")
	return key
}

// discardArchive removes an archived upload whose spreadsheet was rejected.
// Failures are only logged.
func (s *employeeImportService) discardArchive(ctx context.Context, key string, log logrus.FieldLogger) {
	if key == "" {
		return
	}
	if err := s.storage.Delete(ctx, s.bucket, key); err != nil {
		log.WithError(err).WithField("key", key).Warn("removing rejected upload failed")
		return
	}
	log.WithField("key", key).Debug("rejected upload removed")
}

func archiveName(filename string) string {
	name := path.Base(strings.ReplaceAll(filename, `\`, "/"))
	if name == "." || name == "/" || name == "" {
		return "upload.xlsx"
	}
	return name
}

// foldRows threads acc through step for each row in order. It stops before
// the next row once ctx is done and returns what has been accumulated.
func foldRows[R, A any](ctx context.Context, rows []R, acc A, step func(A, R) A) (A, error) {
	for _, r := range rows {
		if err := ctx.Err(); err != nil {
			return acc, err
		}
		acc = step(acc, r)
	}
	return acc, nil
}

// previewTally and confirmTally are passed by value; each step returns the
// next state instead of mutating the previous one.
type previewTally struct {
	valid   []domain.RowOutcome
	invalid []domain.RowOutcome
	created int
	updated int
}

func (t previewTally) with(o domain.RowOutcome) previewTally {
	if !o.Valid() {
		t.invalid = append(t.invalid, o)
		return t
	}
	t.valid = append(t.valid, o)
	switch o.Action {
	case domain.RowActionCreate:
		t.created++
	case domain.RowActionUpdate:
		t.updated++
	}
	return t
}

func (t previewTally) result() *domain.PreviewResult {
	r := &domain.PreviewResult{
		TotalValid:   len(t.valid),
		TotalInvalid: len(t.invalid),
		TotalNew:     t.created,
		TotalUpdates: t.updated,
		ValidRows:    t.valid,
		InvalidRows:  t.invalid,
	}
	if r.ValidRows == nil {
		r.ValidRows = []domain.RowOutcome{}
	}
	if r.InvalidRows == nil {
		r.InvalidRows = []domain.RowOutcome{}
	}
	return r
}

type confirmTally struct {
	created int
	updated int
	errors  []string
}

func (t confirmTally) with(rowNumber int, action domain.RowAction, err error) confirmTally {
	if err != nil {
		t.errors = append(t.errors, domain.RowError(rowNumber, err.Error()))
		return t
	}
	switch action {
	case domain.RowActionCreate:
		t.created++
	case domain.RowActionUpdate:
		t.updated++
	}
	return t
}

func (t confirmTally) result(total int) *domain.ConfirmResult {
	errs := t.errors
	if errs == nil {
		errs = []string{}
	}
	return &domain.ConfirmResult{
		TotalRows: total,
		Created:   t.created,
		Updated:   t.updated,
		Errors:    errs,
	}
}
