package root

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"vindec/internal/displayer"
	"vindec/internal/source"
	"vindec/internal/source/manual"
	"vindec/internal/source/savefile"
	"vindec/internal/vin"
	"vindec/pkg/log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func Run(cmd *cobra.Command, args []string) {
	typed := viper.GetString("vin")
	if len(args) > 0 {
		typed = args[0]
	}
	var file *savefile.SaveFile
	if p := viper.GetString("file"); p != "" {
		file = savefile.New(p)
	}

	if viper.GetBool("no-tui") {
		src := pickSource(file, typed)
		if src == nil {
			fmt.Println("error: no VIN given and no save file path set (use --vin or --file)")
			os.Exit(1)
		}
		if err := printSummary(cmd.Context(), os.Stdout, src); err != nil {
			fmt.Printf("error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// tview owns the terminal from here on.
	log.InitLoggerTo(viper.GetBool("debug"), TUILogPath())
	d := displayer.New(file, typed)
	if err := d.Run(); err != nil {
		log.Error("TUI stopped", zap.Error(err))
		fmt.Printf("error: %v\n", err)
	}
}

// TUILogPath is where logs go while the TUI is running.
func TUILogPath() string {
	return filepath.Join(os.TempDir(), "vindec.log")
}

// pickSource prefers typed input over the save file.
func pickSource(file *savefile.SaveFile, typed string) source.Source {
	if strings.TrimSpace(typed) != "" {
		return manual.New(typed)
	}
	if file != nil {
		return file
	}
	return nil
}

// printSummary decodes the VIN from src and writes one FIELD: LABEL line
// per field, followed by equipment notes and the complete VIN.
func printSummary(ctx context.Context, w io.Writer, src source.Source) error {
	if ctx == nil {
		ctx = context.Background()
	}
	raw, err := src.ReadVIN(ctx)
	if err != nil {
		return err
	}
	res, err := vin.Decode(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", src.Name(), err)
	}
	log.Debug("decoded VIN", zap.String("source", src.Name()), zap.Int("unknown", len(res.Unknown())))

	for _, f := range res.Fields {
		fmt.Fprintf(w, "%s: %s\n", f.Name, f.Label)
	}
	for _, n := range vin.Notes(res) {
		fmt.Fprintf(w, "NOTE: %s\n", n)
	}
	fmt.Fprintf(w, "VIN: %s\n", res.VIN)
	return nil
}
