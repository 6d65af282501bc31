package cmd

import (
	"context"
	"fmt"

	logger "github.com/hoheria/sandboxctl/internal/logging"
	"github.com/hoheria/sandboxctl/internal/ui"
	"github.com/hoheria/sandboxctl/internal/workflows"

	"github.com/spf13/cobra"
)

var (
	stampName        string
	stampVersion     string
	stampClassDir    string
	stampResourceDir string
	stampVerbose     bool
	stampDebug       bool
)

func init() {
	StampCmd.Flags().StringVar(&stampName, "name", "", "artifact name (defaults to the working directory's basename)")
	StampCmd.Flags().StringVar(&stampVersion, "version", "", "artifact version")
	StampCmd.Flags().StringVar(&stampClassDir, "class-dir", "build/classes", "compiled output directory to stamp")
	StampCmd.Flags().StringVar(&stampResourceDir, "resource-dir", "build/resources", "resource directory to stamp")
	StampCmd.Flags().BoolVarP(&stampVerbose, "verbose", "v", false, "enable verbose output")
	StampCmd.Flags().BoolVarP(&stampDebug, "debug", "d", false, "enable debug output")
}

func resetStampCommandState() {
	stampName = ""
	stampVersion = ""
	stampClassDir = "build/classes"
	stampResourceDir = "build/resources"
	stampVerbose = false
	stampDebug = false
}

var StampCmd = &cobra.Command{
	Use:   "stamp",
	Short: "Write a build-details file into the build output",
	Long: `Writes build-details.txt into the compiled output and resource
directories before compile, so the packaged artifact carries its own
provenance: name, version, build timestamp, builder (username@hostname),
OS, runtime and build tool versions.`,
	RunE: runStamp,
}

func runStamp(cmd *cobra.Command, args []string) error {
	Logger = logger.Logger{Verbose: stampVerbose, Debug: stampDebug}
	Logger.Infof("Starting stamp command")

	spinner, cleanup := startSpinnerWithFlags("Stamping build details...", stampVerbose, stampDebug)
	defer cleanup()

	result, err := workflows.Stamp(context.Background(), workflows.StampOptions{
		Name:    stampName,
		Version: stampVersion,
		Dirs:    []string{stampClassDir, stampResourceDir},
	})
	if err != nil {
		spinner.FinalMSG = ui.Error.Sprint("✗") + " Failed to stamp build details: " + err.Error()
		return err
	}

	for _, path := range result.Paths {
		Logger.Infof("Wrote %s", path)
	}

	spinner.FinalMSG = ui.Success.Sprint("✓") + " Stamped " +
		ui.Highlight.Sprintf("%s %s", result.Details.Name, result.Details.Version) +
		" into " + fmt.Sprintf("%d directories", len(result.Paths))
	return nil
}
