package game

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"

	"github.com/cybergis/ctfmap/internal/event"
	"github.com/cybergis/ctfmap/internal/storage"
)

// Settings are the persisted visualization toggles. They gate what the
// rendering surface draws; none of them affect domain state.
type Settings struct {
	SoundSFX        bool `json:"soundSfx"`
	SoundMusic      bool `json:"soundMusic"`
	PerformanceMode bool `json:"performanceMode"`
	ShowFlightPaths bool `json:"showFlightPaths"`
	EnableAdmin     bool `json:"enableAdmin"`
	ShowAttacks     bool `json:"showAttacks"`
}

func DefaultSettings() Settings {
	return Settings{
		SoundSFX:        true,
		ShowFlightPaths: true,
		EnableAdmin:     true,
		ShowAttacks:     true,
	}
}

// SettingsRepo persists the settings blob. Stored values are merged
// over the defaults, so snapshots written before a toggle existed
// still load with that toggle at its default.
type SettingsRepo struct {
	logger *slog.Logger
	bus    *event.Bus
	blobs  storage.Blobs

	mu       sync.Mutex
	settings Settings
}

func NewSettingsRepo(ctx context.Context, logger *slog.Logger, bus *event.Bus, blobs storage.Blobs) *SettingsRepo {
	r := &SettingsRepo{logger: logger, bus: bus, blobs: blobs, settings: DefaultSettings()}

	data, err := blobs.Get(ctx, keySettings)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		// First run, defaults stand.
	case err != nil:
		logger.Error("loading settings snapshot", "error", err)
	default:
		if err := json.Unmarshal(data, &r.settings); err != nil {
			logger.Error("decoding settings snapshot", "error", err)
			r.settings = DefaultSettings()
		}
	}
	return r
}

func (r *SettingsRepo) Get() Settings {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.settings
}

// Save replaces the settings, persists them, and publishes
// SettingsSaved so render surfaces re-apply their visuals.
func (r *SettingsRepo) Save(ctx context.Context, s Settings) {
	r.mu.Lock()
	r.settings = s
	data, err := json.Marshal(s)
	if err != nil {
		r.logger.Error("encoding settings snapshot", "error", err)
	} else if err := r.blobs.Save(ctx, keySettings, data); err != nil {
		r.logger.Error("persisting settings snapshot", "error", err)
	}
	r.mu.Unlock()

	r.bus.Publish(ctx, SettingsSaved{Settings: s})
}
