package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"quickpick/internal/config"
	"quickpick/internal/debug"
	"quickpick/internal/domain"
	"quickpick/internal/source"
	"quickpick/internal/ui"
	"quickpick/internal/ui/theme"
)

func main() {
	os.Exit(run())
}

func run() int {
	if err := config.Initialize(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		return 1
	}

	versionFlag := flag.Bool("version", false, "Print version information and exit")
	flags := runtimeFlags{
		itemsFile:   flag.String("items", config.GetString(config.KeyItemsFile), "Items file (.json, .yaml, .toml or text; - reads stdin)"),
		fields:      flag.String("fields", strings.Join(config.GetStringSlice(config.KeyFields), ","), "Comma separated record fields to search"),
		text:        flag.String("text", config.GetString(config.KeyText), "Initial input text"),
		placeholder: flag.String("placeholder", config.GetString(config.KeyPlaceholder), "Input placeholder"),
		strikes:     flag.Int("strikes", config.Strikes(), "Characters typed before filtering starts"),
		sortField:   flag.Int("sort-field", config.GetInt(config.KeySortFieldIndex), "Index into -fields to sort the list by (-1 disables)"),
		showCount:   flag.Bool("show-count", config.GetBool(config.KeyShowCount), "Show the match count above the input"),
		showIcon:    flag.Bool("show-icon", config.GetBool(config.KeyShowIcon), "Show the show-all icon next to the input"),
		icon:        flag.String("icon", config.GetString(config.KeyIconStyle), "Icon label"),
		match:       flag.String("match", config.GetString(config.KeyMatchMode), "Match mode (substring, fuzzy)"),
		theme:       flag.String("theme", config.GetString(config.KeyTheme), "Color theme"),
		locale:      flag.String("locale", config.GetString(config.KeyLocale), "Locale for sorting and the match count"),
		preview:     flag.Bool("preview", config.GetBool(config.KeyPreview), "Show a preview pane of the focused item"),
		copy:        flag.Bool("copy", config.GetBool(config.KeyCopy), "Copy the picked item to the clipboard"),
		debug:       flag.Bool("debug", false, "Write a debug log to ~/.quickpick/debug.log"),
	}
	flag.Parse()

	if *versionFlag {
		writeVersion(os.Stdout)
		return 0
	}

	visited := map[string]struct{}{}
	flag.CommandLine.Visit(func(f *flag.Flag) {
		visited[f.Name] = struct{}{}
	})
	runtime := computeRuntimeOptions(flags, visited)

	if runtime.debug {
		if err := debug.Init(true); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: debug log unavailable: %v\n", err)
		}
		defer debug.Close()
	}

	if runtime.theme != "" && !theme.SetTheme(runtime.theme) {
		fmt.Fprintf(os.Stderr, "Warning: unknown theme %q (available: %s)\n", runtime.theme, strings.Join(theme.Available(), ", "))
	}

	items, err := loadItems(runtime, os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	options := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithOutput(os.Stderr),
	}
	if runtime.itemsFile == source.Stdin {
		options = append(options, tea.WithInputTTY())
	}

	picked, err := runProgram(buildAppConfig(runtime, items), ui.NewApp, func(app *ui.App) programRunner {
		return tea.NewProgram(app, options...)
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if picked == nil {
		return 1
	}

	if err := writeResult(os.Stdout, picked, runtime.copy, clipboard.WriteAll); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	return 0
}

type programRunner interface {
	Run() (tea.Model, error)
}

type programFactory func(*ui.App) programRunner

// runProgram runs the picker and returns the accepted item, or nil when the
// user quit without accepting.
func runProgram(cfg ui.Config, builder func(ui.Config) *ui.App, factory programFactory) (*domain.BaseItem, error) {
	app := builder(cfg)
	if app == nil {
		return nil, fmt.Errorf("initialize UI: app is nil")
	}
	defer app.Close()

	if factory == nil {
		return nil, fmt.Errorf("program factory is nil")
	}
	prog := factory(app)
	if prog == nil {
		return nil, fmt.Errorf("program is nil")
	}
	if _, err := prog.Run(); err != nil {
		return nil, fmt.Errorf("run UI: %w", err)
	}
	picked, _ := app.Result()
	return picked, nil
}

type runtimeFlags struct {
	itemsFile   *string
	fields      *string
	text        *string
	placeholder *string
	strikes     *int
	sortField   *int
	showCount   *bool
	showIcon    *bool
	icon        *string
	match       *string
	theme       *string
	locale      *string
	preview     *bool
	copy        *bool
	debug       *bool
}

type runtimeOptions struct {
	itemsFile   string
	fields      []string
	text        string
	placeholder string
	strikes     int
	sortField   int
	showCount   bool
	showIcon    bool
	icon        string
	match       ui.MatchMode
	theme       string
	locale      string
	preview     bool
	copy        bool
	debug       bool
}

// computeRuntimeOptions starts from configuration and lets explicitly set
// flags win.
func computeRuntimeOptions(flags runtimeFlags, visited map[string]struct{}) runtimeOptions {
	opts := runtimeOptions{
		itemsFile:   strings.TrimSpace(config.GetString(config.KeyItemsFile)),
		fields:      config.GetStringSlice(config.KeyFields),
		text:        config.GetString(config.KeyText),
		placeholder: config.GetString(config.KeyPlaceholder),
		strikes:     config.Strikes(),
		sortField:   config.GetInt(config.KeySortFieldIndex),
		showCount:   config.GetBool(config.KeyShowCount),
		showIcon:    config.GetBool(config.KeyShowIcon),
		icon:        config.GetString(config.KeyIconStyle),
		match:       ui.ParseMatchMode(config.GetString(config.KeyMatchMode)),
		theme:       strings.TrimSpace(config.GetString(config.KeyTheme)),
		locale:      strings.TrimSpace(config.GetString(config.KeyLocale)),
		preview:     config.GetBool(config.KeyPreview),
		copy:        config.GetBool(config.KeyCopy),
	}

	if flagWasExplicitlySet("items", visited) {
		opts.itemsFile = strings.TrimSpace(*flags.itemsFile)
	}
	if flagWasExplicitlySet("fields", visited) {
		opts.fields = config.SplitList(*flags.fields)
	}
	if flagWasExplicitlySet("text", visited) {
		opts.text = *flags.text
	}
	if flagWasExplicitlySet("placeholder", visited) {
		opts.placeholder = *flags.placeholder
	}
	if flagWasExplicitlySet("strikes", visited) {
		opts.strikes = ui.SanitizeStrikes(*flags.strikes)
	}
	if flagWasExplicitlySet("sort-field", visited) {
		opts.sortField = *flags.sortField
	}
	if flagWasExplicitlySet("show-count", visited) {
		opts.showCount = *flags.showCount
	}
	if flagWasExplicitlySet("show-icon", visited) {
		opts.showIcon = *flags.showIcon
	}
	if flagWasExplicitlySet("icon", visited) {
		opts.icon = *flags.icon
	}
	if flagWasExplicitlySet("match", visited) {
		opts.match = ui.ParseMatchMode(*flags.match)
	}
	if flagWasExplicitlySet("theme", visited) {
		opts.theme = strings.TrimSpace(*flags.theme)
	}
	if flagWasExplicitlySet("locale", visited) {
		opts.locale = strings.TrimSpace(*flags.locale)
	}
	if flagWasExplicitlySet("preview", visited) {
		opts.preview = *flags.preview
	}
	if flagWasExplicitlySet("copy", visited) {
		opts.copy = *flags.copy
	}
	if flags.debug != nil {
		opts.debug = *flags.debug
	}
	return opts
}

func flagWasExplicitlySet(name string, visited map[string]struct{}) bool {
	if _, ok := visited[name]; ok {
		return true
	}
	f := flag.CommandLine.Lookup(name)
	if f == nil {
		return false
	}
	return f.Value.String() != f.DefValue
}

// loadItems reads the items file when one is given, otherwise the inline
// items list from configuration.
func loadItems(opts runtimeOptions, stdin io.Reader) ([]any, error) {
	if opts.itemsFile != "" {
		return source.Load(opts.itemsFile, stdin)
	}
	items, ok := domain.AsItems(config.Get(config.KeyItems))
	if !ok {
		return []any{}, nil
	}
	return items, nil
}

func buildAppConfig(opts runtimeOptions, items []any) ui.Config {
	cc := ui.DefaultComboBoxConfig()
	cc.Name = "quickpick"
	cc.Items = items
	cc.Fields = opts.fields
	cc.Text = opts.text
	cc.Placeholder = opts.placeholder
	cc.Strikes = opts.strikes
	cc.SortFieldIndex = opts.sortField
	cc.MatchMode = opts.match
	cc.ShowCount = opts.showCount
	cc.ShowIcon = opts.showIcon
	cc.IconStyle = opts.icon
	cc.Locale = opts.locale

	return ui.Config{
		ComboBox:  cc,
		Preview:   opts.preview,
		Version:   Version,
		SaveTheme: config.SaveTheme,
	}
}

// writeResult prints the picked item and optionally copies the same text to
// the clipboard.
func writeResult(w io.Writer, item *domain.BaseItem, copyToClipboard bool, copyFn func(string) error) error {
	out := ui.FormatOrigin(item)
	if _, err := fmt.Fprintln(w, out); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	if copyToClipboard && copyFn != nil {
		if err := copyFn(out); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
	}
	return nil
}
