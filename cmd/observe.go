package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mj1618/tabsense/internal/config"
	"github.com/mj1618/tabsense/internal/platform"
	"github.com/mj1618/tabsense/internal/probe"
	"github.com/spf13/cobra"
)

var observeCmd = &cobra.Command{
	Use:   "observe",
	Short: "Watch the UI state under the cursor and stream changes as JSONL",
	Long: `Continuously re-run probe and emit a report as JSONL to stdout whenever the
answers change. Moving the cursor without changing any answer emits nothing.

Output is always JSONL regardless of the --format flag.

Use Ctrl+C or --duration to stop observing.`,
	RunE: runObserve,
}

func init() {
	rootCmd.AddCommand(observeCmd)
	addTargetFlags(observeCmd)
	addGateFlags(observeCmd)
	observeCmd.Flags().Int("interval", 250, "Polling interval in milliseconds")
	observeCmd.Flags().Int("duration", 0, "Max seconds to observe (0 = until Ctrl+C)")
}

// observeEvent is one JSONL line.
type observeEvent struct {
	Type    string        `json:"type"`
	TS      int64         `json:"ts"`
	Report  *probe.Report `json:"report,omitempty"`
	Error   string        `json:"error,omitempty"`
	Elapsed string        `json:"elapsed,omitempty"`
	Events  int           `json:"events,omitempty"`
}

// observer re-runs probe and reports only changed states.
type observer struct {
	session platform.Session
	target  probe.Target
	gates   config.Config
	timeout time.Duration
	enc     *json.Encoder

	prev   *probe.Report
	events int
}

func newObserver(w io.Writer, session platform.Session, target probe.Target, gates config.Config, timeout time.Duration) *observer {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return &observer{session: session, target: target, gates: gates, timeout: timeout, enc: enc}
}

// poll inspects once and emits a report event if the state changed. Errors
// are emitted as events and do not reset the last state.
func (o *observer) poll(ctx context.Context) {
	var report probe.Report
	err := doQuery(ctx, o.session, o.timeout, func(d platform.Desktop) error {
		hwnd, pt, err := probe.Resolve(d, o.target)
		if err != nil {
			return err
		}
		report = probe.Inspect(d, hwnd, pt, o.gates)
		return nil
	})
	if err != nil {
		if ctx.Err() == nil {
			o.enc.Encode(observeEvent{Type: "error", TS: time.Now().Unix(), Error: err.Error()})
		}
		return
	}
	if o.prev != nil && o.prev.SameState(report) {
		return
	}
	o.prev = &report
	o.events++
	o.enc.Encode(observeEvent{Type: "report", TS: time.Now().Unix(), Report: &report})
}

// run polls every interval until ctx ends.
func (o *observer) run(ctx context.Context, interval time.Duration) {
	start := time.Now()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	o.poll(ctx)
	for {
		select {
		case <-ctx.Done():
			o.enc.Encode(observeEvent{
				Type:    "done",
				TS:      time.Now().Unix(),
				Elapsed: fmt.Sprintf("%.1fs", time.Since(start).Seconds()),
				Events:  o.events,
			})
			return
		case <-ticker.C:
			o.poll(ctx)
		}
	}
}

func runObserve(cmd *cobra.Command, args []string) error {
	target, err := getTarget(cmd)
	if err != nil {
		return err
	}
	gates, err := loadGates(cmd)
	if err != nil {
		return err
	}
	intervalMs, _ := cmd.Flags().GetInt("interval")
	durationSec, _ := cmd.Flags().GetInt("duration")
	if intervalMs <= 0 {
		return fmt.Errorf("--interval must be > 0")
	}

	session, err := newSession()
	if err != nil {
		return err
	}

	ctx := commandContext(cmd)
	if durationSec > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(durationSec)*time.Second)
		defer cancel()
	}

	newObserver(os.Stdout, session, target, gates, queryTimeout()).
		run(ctx, time.Duration(intervalMs)*time.Millisecond)
	return nil
}
