package ui

import (
	"context"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"

	"sheetlens/adapters/sheet"
	"sheetlens/domain/catalog"
	"sheetlens/domain/core"
	"sheetlens/domain/profile"
	"sheetlens/domain/table"
	"sheetlens/internal/errors"
)

// ingestUpload stores the uploaded file under the data directory, decodes it
// into a dataset, profiles every column and saves the catalog entry.
func (s *Server) ingestUpload(ctx context.Context, fileHeader *multipart.FileHeader) (*catalog.Entry, error) {
	if _, err := sheet.NewReader(fileHeader.Filename); err != nil {
		return nil, err
	}

	id := core.DatasetID(core.NewID())
	if err := os.MkdirAll(s.config.Paths.DataDir, 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create data directory")
	}
	path := filepath.Join(s.config.Paths.DataDir,
		id.String()+filepath.Ext(fileHeader.Filename))
	if err := saveUpload(fileHeader, path); err != nil {
		return nil, err
	}

	ds, err := sheet.ReadFile(path)
	if err != nil {
		os.Remove(path)
		return nil, err
	}

	profiles, err := profile.ProfileDataset(ctx, ds, s.classifier)
	if err != nil {
		os.Remove(path)
		return nil, errors.Wrap(err, "failed to profile dataset")
	}

	entry := &catalog.Entry{
		ID:               id,
		DisplayName:      sheet.DisplayName(fileHeader.Filename),
		OriginalFilename: fileHeader.Filename,
		FilePath:         path,
		RecordCount:      ds.RowCount(),
		FieldCount:       len(ds.Columns),
		MissingRate:      catalog.OverallMissingRate(profiles),
		Profiles:         profiles,
		CreatedAt:        core.Now(),
	}
	if err := s.store.Save(ctx, entry); err != nil {
		os.Remove(path)
		return nil, errors.Wrap(err, "failed to save dataset")
	}

	s.cacheMu.Lock()
	s.rowsCache[id] = ds
	s.cacheMu.Unlock()

	log.Printf("[Ingest] dataset %s stored (%d columns, %d rows)",
		entry.DisplayName, entry.FieldCount, entry.RecordCount)
	return entry, nil
}

// datasetRows returns the decoded rows for a catalog entry, re-reading the
// stored file when the cache has been emptied by a restart.
func (s *Server) datasetRows(ctx context.Context, id core.DatasetID) (*table.Dataset, *catalog.Entry, error) {
	entry, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	s.cacheMu.RLock()
	ds, ok := s.rowsCache[id]
	s.cacheMu.RUnlock()
	if ok {
		return ds, entry, nil
	}

	ds, err = sheet.ReadFile(entry.FilePath)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to re-read dataset %s", id)
	}

	s.cacheMu.Lock()
	s.rowsCache[id] = ds
	s.cacheMu.Unlock()
	return ds, entry, nil
}

// dropDataset removes a dataset from the catalog, the cache and disk
func (s *Server) dropDataset(ctx context.Context, id core.DatasetID) error {
	entry, err := s.store.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}

	s.cacheMu.Lock()
	delete(s.rowsCache, id)
	s.cacheMu.Unlock()

	if entry.FilePath != "" {
		if err := os.Remove(entry.FilePath); err != nil && !os.IsNotExist(err) {
			log.Printf("[Ingest] failed to remove %s: %v", entry.FilePath, err)
		}
	}
	return nil
}

func saveUpload(fileHeader *multipart.FileHeader, path string) error {
	src, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open upload")
	}
	defer src.Close()

	dst, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "failed to create upload file")
	}
	defer dst.Close()

	if _, err := dst.ReadFrom(src); err != nil {
		return errors.Wrap(err, "failed to write upload file")
	}
	return nil
}
