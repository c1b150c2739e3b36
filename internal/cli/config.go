package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cuberobot"
	"github.com/SeamusWaldron/cuberobot/internal/rig"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or edit the configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Choose the rig port and solving algorithm interactively",
	RunE:  runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE:  runConfigShow,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	ports, err := rig.Ports()
	if err != nil {
		logger.Warn("port scan failed", "error", err)
	}

	var portOptions []huh.Option[string]
	for _, p := range ports {
		label := p.Name
		if p.Product != "" {
			label += " (" + p.Product + ")"
		}
		if p.LikelyArduino() {
			label += " [arduino]"
		}
		portOptions = append(portOptions, huh.NewOption(label, p.Name))
	}

	port := cfg.Serial.Port
	algorithm := cfg.Algorithm
	baud := strconv.Itoa(cfg.Serial.BaudRate)

	var algorithmOptions []huh.Option[string]
	for _, a := range cuberobot.Algorithms {
		algorithmOptions = append(algorithmOptions, huh.NewOption(string(a), string(a)))
	}

	var portField huh.Field
	if len(portOptions) > 0 {
		portField = huh.NewSelect[string]().
			Title("Which port is the rig on?").
			Options(portOptions...).
			Value(&port)
	} else {
		portField = huh.NewInput().
			Title("Serial port of the rig").
			Description("No ports detected; enter the name manually").
			Value(&port)
	}

	form := huh.NewForm(
		huh.NewGroup(
			portField,
			huh.NewInput().
				Title("Baud rate").
				Value(&baud).
				Validate(func(s string) error {
					n, err := strconv.Atoi(s)
					if err != nil || n <= 0 {
						return fmt.Errorf("enter a positive number")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Solving algorithm").
				Options(algorithmOptions...).
				Value(&algorithm),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	cfg.Serial.Port = port
	cfg.Serial.BaudRate, _ = strconv.Atoi(baud)
	cfg.Algorithm = algorithm

	path, err := getConfigPath()
	if err != nil {
		return err
	}
	if err := cfg.SaveTo(path); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Printf("Saved %s\n", path)
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	fmt.Printf("# %s\n", path)
	fmt.Println(string(data))
	return nil
}
