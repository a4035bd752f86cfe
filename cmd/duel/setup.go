package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-duel/internal/config"
	"github.com/vovakirdan/tui-duel/internal/duel"
	"github.com/vovakirdan/tui-duel/internal/storage"
	"github.com/vovakirdan/tui-duel/internal/weapon"
)

// session bundles everything needed to build duel machines.
type session struct {
	config  config.DuelConfig
	weapons *weapon.Set
	store   *storage.Store
	logger  *log.Logger
	closers []io.Closer
}

// newLogger builds the CLI logger. Logs go to --log-file when set, else to
// fallback (io.Discard when the terminal belongs to the TUI).
func newLogger(fallback io.Writer) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	out, closer := fallback, io.Closer(nil)
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", openErr)
		}
		out, closer = f, f
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "duel",
		Level:           level,
	})
	return logger, closer, nil
}

// openSession loads the config, the weapon table and the store.
// A store that fails to open is logged and skipped: duels still run.
func openSession(logOut io.Writer) (*session, error) {
	logger, closer, err := newLogger(logOut)
	if err != nil {
		return nil, err
	}
	s := &session{logger: logger}
	if closer != nil {
		s.closers = append(s.closers, closer)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		s.Close()
		return nil, err
	}
	s.config = cfg
	logger.Debug("config loaded", "source", cfg.Source)

	set, err := cfg.WeaponSet()
	if err != nil {
		s.Close()
		return nil, err
	}
	s.weapons = set

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("history disabled", "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open duel database: %v\n", err)
	} else {
		store.SetRewards(storage.Rewards{Win: cfg.Rewards.Win, Draw: cfg.Rewards.Draw})
		s.store = store
		s.closers = append(s.closers, store)
	}
	return s, nil
}

// newMachine builds a duel between the named players. Empty names and
// weapon ids fall back to the config.
func (s *session) newMachine(names [2]string, weaponIDs [2]string, logger *log.Logger) (*duel.Machine, error) {
	loadout, err := s.config.Loadout(s.weapons, weaponIDs[0], weaponIDs[1])
	if err != nil {
		return nil, err
	}

	configured := s.config.PlayerNames()
	for i := range names {
		if names[i] == "" {
			names[i] = configured[i]
		}
	}

	if logger == nil {
		logger = s.logger
	}
	opts := []duel.Option{
		duel.WithLogger(logger),
		duel.WithRand(newRand()),
		duel.WithPlayers(names[0], names[1]),
	}
	if s.store != nil {
		opts = append(opts, duel.WithResultSaver(s.store))
	}
	return duel.New(s.config.DuelTiming(), loadout, opts...)
}

// Close releases the store and the log file.
func (s *session) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		//nolint:errcheck // Best-effort cleanup on exit
		s.closers[i].Close()
	}
	s.closers = nil
}

// newRand returns the pattern source: seeded from --seed, or from the clock.
func newRand() *rand.Rand {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
