package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/baasify/internal/pipeline"
	"github.com/pdiddy/baasify/pkg/types"
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Generate an R&D asset from a problem statement",
	Long: `Solve runs the generation pipeline: the problem statement is enqueued,
staged through literature, patent, and supplier analysis, then synthesized
into a scored R&D asset. Progress is streamed to stderr; the finished asset
is printed as YAML or appended to the vault.`,
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().String("sector", "Textile", "industrial sector of the challenge")
	solveCmd.Flags().String("problem", "", "problem statement to solve")
	solveCmd.Flags().Duration("queue-delay", 0, "queueing latency before processing (default from config)")
	solveCmd.Flags().Duration("stage-delay", 0, "pause between processing sub-stages (default from config)")
	solveCmd.Flags().Bool("save", false, "append the finished asset to the vault file")

	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	sector, _ := cmd.Flags().GetString("sector")
	problem, _ := cmd.Flags().GetString("problem")
	if problem == "" {
		return fmt.Errorf("provide a problem statement with --problem (or let 'suggest' draft one)")
	}

	backend, err := newBackend(cmd)
	if err != nil {
		return err
	}

	queueDelay, _ := cmd.Flags().GetDuration("queue-delay")
	if queueDelay == 0 {
		queueDelay = viper.GetDuration("pipeline.queue_delay")
	}
	stageDelay, _ := cmd.Flags().GetDuration("stage-delay")
	if stageDelay == 0 {
		stageDelay = viper.GetDuration("pipeline.stage_delay")
	}

	p := pipeline.New(backend, types.PipelineConfig{
		AIConfig:   types.AIConfig{Model: backend.Model},
		QueueDelay: queueDelay,
		StageDelay: stageDelay,
	})
	p.Subscribe(func(e pipeline.LogEntry) {
		fmt.Fprintf(os.Stderr, "%s [%s] %-7s %s\n",
			e.Time.Format(time.TimeOnly), e.Severity, e.Stage, e.Message)
	})

	if err := p.Submit(cmd.Context(), sector, problem); err != nil {
		return err
	}
	<-p.Done()

	asset, ok := p.Result()
	if !ok {
		return fmt.Errorf("run failed, no asset produced")
	}

	save, _ := cmd.Flags().GetBool("save")
	if save {
		v, path, err := openVault(cmd)
		if err != nil {
			return err
		}
		if err := v.Add(asset); err != nil {
			return err
		}
		if err := v.SaveFile(path); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Saved %s to %s\n", asset.ID, path)
	}

	out, err := yaml.Marshal(asset)
	if err != nil {
		return fmt.Errorf("encoding asset: %w", err)
	}
	fmt.Print(string(out))
	return nil
}
