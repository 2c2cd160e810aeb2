package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/cespare/xxhash"
	"github.com/spf13/cobra"

	"github.com/thelolagemann/gbcore/internal/cartridge"
	"github.com/thelolagemann/gbcore/internal/cpu"
	"github.com/thelolagemann/gbcore/internal/gameboy"
	"github.com/thelolagemann/gbcore/pkg/log"
	"github.com/thelolagemann/gbcore/pkg/utils"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "gbcore",
		Short:         "Game Boy CPU core: run ROMs headless and inspect cartridges",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	rootCmd.AddCommand(newRunCmd(), newInfoCmd())
	return rootCmd
}

func newRunCmd() *cobra.Command {
	var (
		romFile   string
		steps     uint64
		trace     bool
		serial    bool
		stopOnRes bool
		profile   string
		top       int
		verbose   bool
	)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run a ROM until it halts, hits an undefined opcode or the step limit",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := log.NewWithOptions(cmd.ErrOrStderr(), verbose)

			rom, err := utils.LoadFile(romFile)
			if err != nil {
				return err
			}

			opts := []gameboy.Opt{gameboy.WithLogger(logger)}
			if trace {
				opts = append(opts, gameboy.Trace(cmd.OutOrStdout()))
			}
			if serial {
				opts = append(opts, gameboy.SerialOutput(cmd.OutOrStdout()))
			}
			if stopOnRes {
				opts = append(opts, gameboy.StopOnTestResult())
			}

			gb, err := gameboy.NewGameBoy(rom, opts...)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			runErr := gb.Run(ctx, steps)

			var undefined *cpu.UndefinedOpcodeError
			switch {
			case errors.As(runErr, &undefined):
				logger.Errorf("undefined opcode %s at %04X", opcodeString(undefined), undefined.Origin)
			case errors.Is(runErr, context.Canceled):
				logger.Infof("interrupted")
				runErr = nil
			}

			logger.Infof("executed %d steps in %d cycles (%.3fs emulated)",
				gb.Steps(), gb.Cycles(), float64(gb.Cycles())/gameboy.ClockSpeed)

			if profile != "" && gb.Steps() > 0 {
				if err := writeProfile(gb, profile, top); err != nil {
					return err
				}
				logger.Infof("profile written to %s", profile)
			}

			return runErr
		},
	}
	runCmd.Flags().StringVar(&romFile, "rom", "", "ROM file to load (.gb, .gbc, optionally .zip, .7z, .gz, .xz, .zst or .lz4)")
	runCmd.Flags().Uint64Var(&steps, "steps", 0, "Maximum number of instructions to execute (0 = no limit)")
	runCmd.Flags().BoolVar(&trace, "trace", false, "Print every executed instruction")
	runCmd.Flags().BoolVar(&serial, "serial", false, "Print serial port output")
	runCmd.Flags().BoolVar(&stopOnRes, "stop-on-result", false, "Stop once a test ROM reports Passed or Failed over serial")
	runCmd.Flags().StringVar(&profile, "profile", "", "Write a PNG chart of cycles per instruction")
	runCmd.Flags().IntVar(&top, "top", 24, "Number of instructions shown in the profile")
	runCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	_ = runCmd.MarkFlagRequired("rom")

	return runCmd
}

func newInfoCmd() *cobra.Command {
	var romFile string

	infoCmd := &cobra.Command{
		Use:   "info",
		Short: "Print the cartridge header of a ROM",
		RunE: func(cmd *cobra.Command, args []string) error {
			rom, err := utils.LoadFile(romFile)
			if err != nil {
				return err
			}
			cart, err := cartridge.NewCartridge(rom)
			if err != nil {
				return err
			}

			h := cart.Header()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "File:     %s\n", filepath.Base(romFile))
			fmt.Fprintf(out, "Title:    %s\n", h.Title)
			fmt.Fprintf(out, "Hardware: %s\n", h.Hardware())
			fmt.Fprintf(out, "Type:     %s\n", h.CartridgeType)
			fmt.Fprintf(out, "ROM:      %dkB\n", h.ROMSize/1024)
			fmt.Fprintf(out, "RAM:      %dkB\n", h.RAMSize/1024)
			fmt.Fprintf(out, "Checksum: %02X (valid: %t)\n", h.HeaderChecksum, h.ChecksumValid())
			fmt.Fprintf(out, "xxHash:   %016x\n", xxhash.Sum64(rom))
			return nil
		},
	}
	infoCmd.Flags().StringVar(&romFile, "rom", "", "ROM file to inspect")
	_ = infoCmd.MarkFlagRequired("rom")

	return infoCmd
}

func opcodeString(e *cpu.UndefinedOpcodeError) string {
	if e.Prefixed {
		return fmt.Sprintf("CB %02X", e.Opcode)
	}
	return fmt.Sprintf("%02X", e.Opcode)
}

func writeProfile(gb *gameboy.GameBoy, path string, top int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := gb.WriteProfile(f, top); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
