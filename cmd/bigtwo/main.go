package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"bigtwo/internal/app"
	"bigtwo/internal/bot"
	"bigtwo/internal/config"
	"bigtwo/internal/domain"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#1E6B3C")).
			Padding(0, 1).
			Bold(true)

	redSuit   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F5F"))
	blackSuit = lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA"))
	rankStyle = lipgloss.NewStyle().Bold(true)
)

type CLI struct {
	Config  string        `help:"Path to game config JSON." type:"path"`
	Seed    int64         `help:"Deterministic shuffle seed (0 = random)." default:"0"`
	Delay   time.Duration `help:"Thinking delay between AI moves." default:"0s"`
	Games   int           `short:"n" help:"Number of games to play." default:"1"`
	Verbose bool          `short:"v" help:"Log every move."`
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli)

	if cli.Config != "" {
		if err := config.LoadGameConfig(cli.Config); err != nil {
			log.Fatal("Failed to load config", "error", err)
		}
	}

	fmt.Print(titleStyle.Render(" ♠ ♥ Big Two ♦ ♣ "))
	fmt.Println()
	fmt.Println()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
	if !cli.Verbose {
		logger.SetLevel(log.WarnLevel)
	}

	for i := 0; i < cli.Games; i++ {
		if err := runGame(&cli, logger); err != nil {
			log.Fatal("Game failed", "error", err)
		}
	}

	kctx.Exit(0)
}

// defaultStyles is the classic single-player lineup from seat 1 around the
// table.
var defaultStyles = [domain.NumPlayers]bot.Style{
	bot.StyleBasic,
	bot.StyleAggressive,
	bot.StyleConservative,
	bot.StyleCombo,
}

func runGame(cli *CLI, logger *log.Logger) error {
	seed := cli.Seed
	if cfg := config.GetGameConfig(); cfg != nil && seed == 0 {
		seed = cfg.Seed
	}

	game := domain.NewGame(seed)

	var brains [domain.NumPlayers]bot.Brain
	for seat := range brains {
		style := defaultStyles[seat]
		sc := config.GetSeat(seat)
		if sc.Style != "" {
			parsed, err := bot.ParseStyle(sc.Style)
			if err != nil {
				return fmt.Errorf("seat %d: %w", seat, err)
			}
			style = parsed
		}
		brain, err := bot.NewBrain(style)
		if err != nil {
			return fmt.Errorf("seat %d: %w", seat, err)
		}
		brains[seat] = brain
		game.Players[seat].Name = brain.Name()
		if sc.Name != "" {
			game.Players[seat].Name = sc.Name
		}
	}

	for seat := 0; seat < domain.NumPlayers; seat++ {
		fmt.Printf("%-15s %s\n", game.Players[seat].Name, renderHand(game.Hand(seat)))
	}
	fmt.Println()

	delay := cli.Delay
	if delay == 0 && config.GetGameConfig() != nil {
		delay = config.GetTurnDelay()
	}

	runner := app.NewRunner(game, brains, logger, nil, delay)
	standings, err := runner.Run(context.Background())
	if err != nil {
		return err
	}

	fmt.Println("Standings:")
	for _, st := range standings {
		fmt.Printf("  %d. %s (seat %d)\n", st.Rank, game.Players[st.Seat].Name, st.Seat)
	}
	fmt.Println()
	return nil
}

// renderCard colors a card for terminal display, red for hearts and diamonds.
func renderCard(c domain.Card) string {
	suit := blackSuit.Render(c.Suit.String())
	if c.Suit == domain.Hearts || c.Suit == domain.Diamonds {
		suit = redSuit.Render(c.Suit.String())
	}
	return rankStyle.Render(c.Rank.String()) + suit
}

func renderHand(cards []domain.Card) string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = renderCard(c)
	}
	return strings.Join(out, " ")
}
