// Package catalog serves a locally bundled campaign list when the backend
// is unreachable. The file predates the backend (it started life as the
// hard-coded NGO list) and is kept as an explicit offline fallback.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/shopspring/decimal"
	"github.com/spf13/afero"

	"github.com/ScarMeireles/JuntosMais/internal/domain"
)

// entry is the on-disk shape, using the same Portuguese field names as the
// backend so one file can serve both.
type entry struct {
	ID          int64           `json:"id"`
	Nome        string          `json:"nome"`
	Categoria   string          `json:"tipo_categoria"`
	Descricao   string          `json:"descricao"`
	Localizacao string          `json:"localizacao"`
	MetaValor   decimal.Decimal `json:"meta_valor"`
	Arrecadado  decimal.Decimal `json:"valor_arrecadado"`
}

// Fallback is a read-only campaign catalog backed by a JSON file. The file
// is re-read on write events so edits show up without a restart.
type Fallback struct {
	fs   afero.Fs
	path string

	mu        sync.RWMutex
	campaigns []domain.Campaign
}

// NewFallback loads the catalog. A missing file is an empty catalog, not an
// error; a malformed file is.
func NewFallback(fs afero.Fs, path string) (*Fallback, error) {
	f := &Fallback{fs: fs, path: path}
	if err := f.reload(); err != nil {
		return nil, err
	}
	return f, nil
}

// Campaigns returns a snapshot copy of the catalog.
func (f *Fallback) Campaigns() []domain.Campaign {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]domain.Campaign, len(f.campaigns))
	copy(out, f.campaigns)
	return out
}

// Watch re-reads the file on write/create events until ctx is done. It
// needs a real filesystem underneath; call it only from the server, not
// from tests running on a memory FS.
func (f *Fallback) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting catalog watcher: %w", err)
	}
	if err := watcher.Add(f.path); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("watching %s: %w", f.path, err)
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				if err := f.reload(); err != nil {
					slog.Error("Reloading offline catalog failed", "path", f.path, "error", err)
					continue
				}
				slog.Info("Offline catalog reloaded", "path", f.path, "campaigns", len(f.Campaigns()))
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Error("Catalog watcher error", "error", err)
			}
		}
	}()
	return nil
}

func (f *Fallback) reload() error {
	raw, err := afero.ReadFile(f.fs, f.path)
	if err != nil {
		if os.IsNotExist(err) {
			f.mu.Lock()
			f.campaigns = nil
			f.mu.Unlock()
			return nil
		}
		return fmt.Errorf("reading catalog: %w", err)
	}

	var entries []entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return fmt.Errorf("parsing catalog %s: %w", f.path, err)
	}

	campaigns := make([]domain.Campaign, 0, len(entries))
	for _, e := range entries {
		campaigns = append(campaigns, domain.Campaign{
			ID:           e.ID,
			Name:         e.Nome,
			Category:     e.Categoria,
			Description:  e.Descricao,
			Location:     e.Localizacao,
			TargetAmount: e.MetaValor,
			AmountRaised: e.Arrecadado,
		})
	}

	f.mu.Lock()
	f.campaigns = campaigns
	f.mu.Unlock()
	return nil
}
