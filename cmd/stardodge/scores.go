package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/stardodge/internal/storage"
)

var (
	flagLimit  int
	flagPlayer string
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best recorded rounds.

Examples:
  stardodge scores
  stardodge scores --limit 25
  stardodge scores --player alice
  stardodge scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of rounds to show")
	scoresCmd.Flags().StringVar(&flagPlayer, "player", "", "Only show rounds of this player")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded round")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening scores database: %v", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(); err != nil {
			fail("%v", err)
		}
		fmt.Println("All scores cleared.")
		return
	}

	var scores []storage.ScoreEntry
	if flagPlayer != "" {
		scores, err = store.ScoresFor(flagPlayer, flagLimit)
	} else {
		scores, err = store.TopScores(flagLimit)
	}
	if err != nil {
		fail("retrieving scores: %v", err)
	}

	fmt.Println("High Scores - Star Dodge")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'stardodge play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-16s  %-6s  %s\n", "Rank", "Player", "Score", "Date")
	fmt.Printf("  %-4s  %-16s  %-6s  %s\n", "----", "------", "-----", "----")
	for i, e := range scores {
		fmt.Printf("  %-4d  %-16s  %-6d  %s\n", i+1, e.Identity, e.Score, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats()
	if err != nil {
		fail("retrieving stats: %v", err)
	}
	fmt.Println()
	fmt.Printf("Rounds: %d  Players: %d  Average: %.1f\n", stats.Rounds, stats.Players, stats.AvgScore)
}
