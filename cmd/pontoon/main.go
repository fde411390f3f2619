package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pterm/pterm"

	"github.com/palemoky/pontoon/internal/apperrors"
	"github.com/palemoky/pontoon/internal/config"
	"github.com/palemoky/pontoon/internal/game/card"
	"github.com/palemoky/pontoon/internal/game/round"
	"github.com/palemoky/pontoon/internal/game/session"
	"github.com/palemoky/pontoon/internal/logger"
	"github.com/palemoky/pontoon/internal/sound"
	"github.com/palemoky/pontoon/internal/storage"
	"github.com/palemoky/pontoon/internal/ui"
	"github.com/palemoky/pontoon/internal/ui/terminal"
)

const leaderboardSize = 5

func main() {
	os.Exit(run())
}

func run() (code int) {
	configPath := flag.String("config", "configs/pontoon.yaml", "配置文件路径")
	mode := flag.String("mode", "", "界面模式: tui 或 line")
	seed := flag.Uint64("seed", 0, "洗牌种子 (0 表示随机)")
	name := flag.String("name", "", "玩家名称")
	flag.Parse()

	if err := logger.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "日志初始化失败: %v\n", err)
	}
	defer logger.Close()
	defer func() {
		if r := recover(); r != nil {
			logger.LogPanic(r)
			fmt.Fprintf(os.Stderr, "unexpected error, see %s\n", logger.GetLogPath())
			code = 2
		}
	}()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		return 1
	}
	if *mode != "" {
		cfg.UI.Mode = *mode
	}
	if *seed != 0 {
		cfg.Game.Seed = *seed
	}
	if *name != "" {
		cfg.UI.PlayerName = *name
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "配置无效: %v\n", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := openStore(ctx, cfg)
	defer func() {
		if err := store.Close(); err != nil {
			logger.LogError("close store: %v", err)
		}
	}()

	sm := sound.NewSoundManager(cfg.Sound.Dir, cfg.Sound.Enabled)
	if err := sm.Init(); err != nil {
		logger.LogError("sound disabled: %v", err)
	} else {
		logger.L().Info("sound ready", "cues", sm.Loaded())
	}
	defer sm.Close()

	deck := newDeck(cfg.Game.Seed)
	s := session.New(cfg.UI.PlayerName, store, cfg.Stats.Timeout())
	logger.LogInfo("session %s started (mode=%s seed=%d backend=%s)", s.ID, cfg.UI.Mode, cfg.Game.Seed, cfg.Stats.Backend)

	if cfg.UI.Mode == config.ModeLine {
		err = runLine(ctx, cfg, s, deck, sm)
	} else {
		err = runTUI(cfg, s, deck, sm)
	}

	if err != nil {
		if apperrors.IsInvariant(err) {
			pterm.Error.Printfln("The game stopped because of an internal error (code %d): %v", apperrors.CodeOf(err), err)
		} else {
			pterm.Error.Println(err.Error())
		}
		logger.LogError("session %s ended with error: %v", s.ID, err)
		return 1
	}
	logger.LogInfo("session %s finished after %d rounds", s.ID, s.Stats.RoundsPlayed)
	return 0
}

// openStore falls back to memory when the configured backend is unreachable.
func openStore(ctx context.Context, cfg *config.Config) storage.Store {
	store, err := storage.Open(ctx, storage.Options{
		Backend:  cfg.Stats.Backend,
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		TTL:      cfg.Stats.TTL(),
	})
	if err != nil {
		logger.LogError("statistics backend %q unavailable, keeping stats in memory: %v", cfg.Stats.Backend, err)
		pterm.Warning.Printfln("Statistics backend unavailable, keeping stats in memory only")
		return storage.NewMemoryStore()
	}
	return store
}

func newDeck(seed uint64) *card.Deck {
	if seed != 0 {
		return card.NewSeededDeck(seed)
	}
	return card.NewDeck()
}

func runLine(ctx context.Context, cfg *config.Config, s *session.Session, deck round.Dealer, sm *sound.SoundManager) error {
	term := terminal.NewTerminalUI(ctx, nil, sm, cfg.UI.BankerDelay())
	term.ShowWelcome()
	s.PlayerName = term.AskName(s.PlayerName)
	if term.YesNo("Show the rules first?") {
		term.ShowRules()
	}

	err := s.Run(ctx, round.NewController(term, term), deck)
	if err != nil {
		return err
	}

	board, lerr := s.Leaderboard(ctx, leaderboardSize)
	if lerr != nil {
		logger.LogError("load leaderboard: %v", lerr)
	}
	term.ShowSummary(s.PlayerName, s.Stats, board)
	return nil
}

func runTUI(cfg *config.Config, s *session.Session, deck round.Dealer, sm *sound.SoundManager) error {
	m := ui.NewTableModel(deck, s, sm, cfg.UI.BankerDelay())

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return m.Err()
}
