// mcc converts ItemsAdder packs into CraftEngine packs.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"regexp"

	"go.uber.org/zap"

	"github.com/Dove-Chen/Minecraft-Config-Converter/internal/bundle"
	"github.com/Dove-Chen/Minecraft-Config-Converter/internal/config"
	"github.com/Dove-Chen/Minecraft-Config-Converter/internal/convert"
	"github.com/Dove-Chen/Minecraft-Config-Converter/internal/logger"
	"github.com/Dove-Chen/Minecraft-Config-Converter/internal/migrate"
)

var namespacePattern = regexp.MustCompile(`^[0-9a-z_.-]+$`)

var errInvalidNamespace = errors.New("namespace may only contain 0-9, a-z, '_', '-' and '.'")

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "convert":
		err = cmdConvert(args)
	case "migrate":
		err = cmdMigrate(args)
	case "schema":
		err = cmdSchema(args)
	case "config":
		err = cmdConfig(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`mcc - Minecraft Config Converter (ItemsAdder -> CraftEngine)

Usage:
  mcc <command> [options]

Commands:
  convert [options] <input-dir> <output-dir>     Convert an unpacked ItemsAdder bundle
  migrate -namespace <ns> <src-pack> <dst-pack>  Migrate a resource pack only
  schema [-out file]                             Print the JSON schema of item configs
  config [path]                                  Write the default settings file

Options (convert, migrate):
  -config <file>     Settings file (.yaml or .toml)
  -namespace <ns>    Target namespace
  -debug             Debug logging
  -log <file>        Also write logs to a rotating file

Examples:
  mcc convert ./unpacked ./out
  mcc convert -namespace my_pack ./unpacked ./out
  mcc migrate -namespace my_pack ./resourcepack ./out/resourcepack
  mcc schema -out items.schema.json`)
}

// setup parses the shared flags and initializes logging.
func setup(name string, args []string) (*config.Config, *flag.FlagSet, error) {
	var flags config.Flags
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	flags.Bind(fs)
	fs.Parse(args)

	cfg, err := config.Load(&flags)
	if err != nil {
		return nil, nil, err
	}
	logger.Init(cfg.Logging.Level, cfg.Logging.LogFile)
	return cfg, fs, nil
}

func validateNamespace(ns string) error {
	if !namespacePattern.MatchString(ns) {
		return fmt.Errorf("%q: %w", ns, errInvalidNamespace)
	}
	return nil
}

func cmdConvert(args []string) error {
	cfg, fs, err := setup("convert", args)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if fs.NArg() < 2 {
		return errors.New("usage: mcc convert [options] <input-dir> <output-dir>")
	}
	input, output := fs.Arg(0), fs.Arg(1)

	if cfg.Convert.Namespace != "" {
		if err := validateNamespace(cfg.Convert.Namespace); err != nil {
			return err
		}
	}

	b, err := bundle.Discover(input, logger.Log)
	if err != nil {
		return err
	}
	doc, err := b.Load(logger.Log)
	if err != nil {
		return err
	}

	original := doc.Info.Namespace
	ns := cfg.Convert.Namespace
	if ns == "" {
		ns = original
	}
	if ns == "" {
		return &convert.ConfigError{Err: convert.ErrMissingNamespace}
	}

	work, err := os.MkdirTemp("", "mcc-")
	if err != nil {
		return err
	}
	defer os.RemoveAll(work)
	logger.Debug("created work directory", zap.String("path", work))

	rp, err := bundle.PrepareResourcePack(b.ResourcePack, work, original, ns, logger.Log)
	if err != nil {
		return fmt.Errorf("preparing resource pack: %w", err)
	}

	layout := bundle.NewLayout(output, ns)
	c := convert.New(cfg.Convert, logger.Log)
	c.SetResourcePaths(rp, layout.ResourcePack)

	res, err := c.Convert(doc, ns)
	if err != nil {
		return err
	}
	rep, err := res.Save(layout.ConfigDir)
	if err != nil {
		return err
	}
	logger.Info("conversion finished")

	fmt.Printf("Namespace:  %s\n", res.Namespace)
	fmt.Printf("Items:      %d\n", res.Document.Items.Len())
	fmt.Printf("Equipments: %d\n", res.Document.Equipments.Len())
	fmt.Printf("Categories: %d\n", res.Document.Categories.Len())
	for _, f := range rep.Files {
		fmt.Printf("Wrote:      %s\n", f)
	}
	printMigration(rep.Migration)
	if rep.Generated > 0 {
		fmt.Printf("Generated:  %d models\n", rep.Generated)
	}
	return nil
}

func cmdMigrate(args []string) error {
	cfg, fs, err := setup("migrate", args)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if fs.NArg() < 2 {
		return errors.New("usage: mcc migrate -namespace <ns> <src-pack> <dst-pack>")
	}
	ns := cfg.Convert.Namespace
	if ns == "" {
		return errors.New("migrate needs -namespace (or convert.namespace in the settings file)")
	}
	if err := validateNamespace(ns); err != nil {
		return err
	}

	st, err := migrate.New(fs.Arg(0), fs.Arg(1), ns, logger.Log).Run()
	if err != nil {
		return err
	}
	logger.Sugar.Infof("migrated %s into %s", fs.Arg(0), fs.Arg(1))
	printMigration(st)
	return nil
}

func printMigration(st migrate.Stats) {
	if st.Textures == 0 && st.Models == 0 && st.Fabricated == 0 && len(st.Errors) == 0 {
		return
	}
	fmt.Printf("Textures:   %d\n", st.Textures)
	fmt.Printf("Models:     %d (+%d generated)\n", st.Models, st.Fabricated)
	for _, e := range st.Errors {
		logger.Warn("skipped asset", zap.Error(e))
	}
}

func cmdConfig(args []string) error {
	cfg := config.Default()
	if len(args) > 0 {
		if err := cfg.SaveTo(args[0]); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", args[0])
		return nil
	}
	if err := cfg.Save(); err != nil {
		return err
	}
	fmt.Printf("Wrote settings to %s\n", config.ConfigDir())
	return nil
}
