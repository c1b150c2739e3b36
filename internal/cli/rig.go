package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cuberobot"
	"github.com/SeamusWaldron/cuberobot/internal/rig"
	"github.com/SeamusWaldron/cuberobot/internal/storage"
)

var sendReversed bool

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Send the last solution to the rig",
	Long: `Send the last solution to the rig over the serial port and wait for its reply.

Use --reversed to send the inverse sequence, which scrambles a solved cube back
to the entered state.`,
	RunE: runSend,
}

var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Send a single U turn to check the rig",
	RunE:  runTest,
}

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Send the emergency stop command",
	RunE:  runStop,
}

func init() {
	rootCmd.AddCommand(sendCmd)
	sendCmd.Flags().BoolVar(&sendReversed, "reversed", false, "Send the reversed solution")

	rootCmd.AddCommand(testCmd)
	rootCmd.AddCommand(stopCmd)
}

func rigConfig() rig.Config {
	rc := cfg.Rig()
	rc.Logger = logger
	return rc
}

// recordTransmission logs a transmission to history. Failures only warn.
func recordTransmission(solutionID string, kind storage.TransmissionKind, payload, response string, sendErr error, d time.Duration) {
	db, err := openDB()
	if err != nil {
		logger.Warn("history unavailable", "error", err)
		return
	}
	defer db.Close()

	var errMsg string
	if sendErr != nil {
		errMsg = sendErr.Error()
	}
	if _, err := storage.NewTransmissionRepository(db).Create(solutionID, kind, payload, response, errMsg, d); err != nil {
		logger.Warn("failed to record transmission", "error", err)
	}
}

func runSend(cmd *cobra.Command, args []string) error {
	sf, session, err := loadSession()
	if err != nil {
		return err
	}

	kind := storage.KindSolution
	payload, err := session.Solution()
	if sendReversed {
		kind = storage.KindReversed
		payload, err = session.ReversedMoves()
	}
	if err != nil {
		return fmt.Errorf("%w (run 'cuberobot solve' first)", err)
	}
	if payload == "" {
		fmt.Println("Nothing to send: the solution is empty")
		return nil
	}

	fmt.Printf("Sending %s to %s...\n", moveStyle.Render(payload), cfg.Serial.Port)

	var response string
	start := time.Now()
	err = rig.WithLink(cmd.Context(), rigConfig(), func(l *rig.Link) error {
		var sendErr error
		response, sendErr = l.SendMoves(cmd.Context(), payload)
		return sendErr
	})
	elapsed := time.Since(start)

	recordTransmission(sf.LastSolutionID(), kind, payload, response, err, elapsed)
	if err != nil {
		return err
	}
	if err := sf.SetLastPort(cfg.Serial.Port); err != nil {
		return err
	}

	fmt.Printf("Rig replied after %s: %s\n", formatDuration(elapsed), response)
	return nil
}

func runTest(cmd *cobra.Command, args []string) error {
	fmt.Printf("Testing rig on %s...\n", cfg.Serial.Port)

	var response string
	start := time.Now()
	err := rig.WithLink(cmd.Context(), rigConfig(), func(l *rig.Link) error {
		var sendErr error
		response, sendErr = l.Test(cmd.Context())
		return sendErr
	})
	elapsed := time.Since(start)

	recordTransmission("", storage.KindTest, cuberobot.TestMove.Notation(), response, err, elapsed)
	if errors.Is(err, cuberobot.ErrTimeout) {
		fmt.Println(errorStyle.Render("Rig connected but did not reply"))
		return err
	}
	if err != nil {
		return err
	}

	fmt.Printf("Rig OK: %s\n", response)
	return nil
}

func runStop(cmd *cobra.Command, args []string) error {
	// No settle delay: stopping must not wait for the board reset.
	rc := rigConfig()
	rc.SettleDelay = 0

	start := time.Now()
	err := rig.WithLink(context.WithoutCancel(cmd.Context()), rc, func(l *rig.Link) error {
		return l.EmergencyStop()
	})
	recordTransmission("", storage.KindStop, rig.StopCommand, "", err, time.Since(start))
	if err != nil {
		return err
	}

	fmt.Println(errorStyle.Render("Emergency stop sent"))
	return nil
}
