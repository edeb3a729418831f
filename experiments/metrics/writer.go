package metrics

import (
	"encoding/csv"
	"fmt"
	"gametree/game"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// AgentConfig describes one searcher configuration taking part in an experiment.
type AgentConfig struct {
	ID             int     `yaml:"id"`
	Algorithm      string  `yaml:"algorithm"`
	Depth          int     `yaml:"depth"`
	Exploration    float64 `yaml:"exploration"`
	Simulations    int     `yaml:"simulations"`
	RandomTieBreak bool    `yaml:"random-tie-break"`
}

// Summary aggregates all games played by one matchup.
type Summary struct {
	MatchUp        string
	AgentX         int // AgentConfig.ID
	AgentO         int // AgentConfig.ID
	StartingPlayer game.Mark
	Games          int
	XWins          int
	OWins          int
	Draws          int
	MeanNodes      float64 // Per game
	StdevNodes     float64
	MeanDuration   time.Duration // Per game
	NonLossRate    float64       // Of the starting player
	NonLossLow     float64
	NonLossHigh    float64
}

type GameRecord struct {
	ID      int
	MatchUp string
	AgentX  int // AgentConfig.ID
	AgentO  int // AgentConfig.ID
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates root/name/<timestamp> and writes every file there.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"id", "algorithm", "depth", "exploration", "simulations", "random_tie_break"}
	return w.write("agent_configs.csv", header, len(configs), func(i int) []string {
		config := configs[i]
		return []string{
			strconv.Itoa(config.ID),
			config.Algorithm,
			strconv.Itoa(config.Depth),
			strconv.FormatFloat(config.Exploration, 'f', 4, 64),
			strconv.Itoa(config.Simulations),
			strconv.FormatBool(config.RandomTieBreak),
		}
	})
}

func (w *Writer) WriteSummaries(summaries []Summary) error {
	header := []string{"matchup", "agent_x", "agent_o", "starting_player", "games", "x_wins", "o_wins", "draws",
		"mean_nodes", "stdev_nodes", "mean_duration", "non_loss_rate", "non_loss_low", "non_loss_high"}
	return w.write("summaries.csv", header, len(summaries), func(i int) []string {
		s := summaries[i]
		return []string{
			s.MatchUp,
			strconv.Itoa(s.AgentX),
			strconv.Itoa(s.AgentO),
			s.StartingPlayer.String(),
			strconv.Itoa(s.Games),
			strconv.Itoa(s.XWins),
			strconv.Itoa(s.OWins),
			strconv.Itoa(s.Draws),
			strconv.FormatFloat(s.MeanNodes, 'f', 2, 64),
			strconv.FormatFloat(s.StdevNodes, 'f', 2, 64),
			s.MeanDuration.String(),
			strconv.FormatFloat(s.NonLossRate, 'f', 4, 64),
			strconv.FormatFloat(s.NonLossLow, 'f', 4, 64),
			strconv.FormatFloat(s.NonLossHigh, 'f', 4, 64),
		}
	})
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "matchup", "agent_x", "agent_o", "starting_player", "winner", "start_time", "end_time", "duration", "moves", "nodes"}
	return w.write("game_records.csv", header, len(records), func(i int) []string {
		record := records[i]
		return []string{
			strconv.Itoa(record.ID),
			record.MatchUp,
			strconv.Itoa(record.AgentX),
			strconv.Itoa(record.AgentO),
			record.StartingPlayer.String(),
			record.Winner.String(),
			record.StartTime.Format(time.RFC3339Nano),
			record.EndTime.Format(time.RFC3339Nano),
			record.Duration.String(),
			strconv.Itoa(record.TotalMoves),
			strconv.Itoa(record.TotalNodes),
		}
	})
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "player", "move", "algorithm", "duration", "nodes", "simulations", "root_visits"}
	return w.write("move_records.csv", header, len(records), func(i int) []string {
		record := records[i]
		return []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			record.Player.String(),
			strconv.Itoa(int(record.Move)),
			record.Algorithm,
			record.Duration.String(),
			strconv.Itoa(record.Nodes),
			strconv.Itoa(record.Simulations),
			strconv.Itoa(record.RootVisits),
		}
	})
}

func (w *Writer) write(name string, header []string, rows int, row func(i int) []string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}

	for i := 0; i < rows; i++ {
		err = writer.Write(row(i))
		if err != nil {
			return fmt.Errorf("failed to write %s row: %w", name, err)
		}
	}

	writer.Flush()
	return writer.Error()
}
