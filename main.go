package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

func main() {
	// Minimal logger until the configured one takes over.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run executes the command line against the given writers so tests can
// drive it without a process.
func run(ctx context.Context, outW, errW io.Writer, args []string) error {
	cmd := newRootCommand()
	cmd.SetOut(outW)
	cmd.SetErr(errW)
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}

// options collects raw flag values; they override the config file only
// when set explicitly.
type options struct {
	configPath string
	logLevel   string
	logFormat  string

	dim   int
	seed  int64
	tiles string
	image string

	dict  string
	list  bool
	limit int

	cfg Config
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "boggle",
		Short:         "Enumerate the paths of a letter board and find dictionary words",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "c", "", "HCL configuration file")
	pf.StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	pf.StringVar(&opts.logFormat, "log-format", "text", "log format: text or json")
	pf.IntVarP(&opts.dim, "dim", "d", 4, "board side length")
	pf.Int64Var(&opts.seed, "seed", 0, "random seed for tile generation (0 picks one)")
	pf.StringVarP(&opts.tiles, "tiles", "t", "", "board letters in row-major order instead of random tiles")
	pf.StringVar(&opts.image, "image", "", "photo of a board to scan with Gemini instead of random tiles")

	root.AddCommand(
		newSolveCommand(opts),
		newPathsCommand(opts),
		newNeighborsCommand(opts),
	)
	return root
}

// setup resolves configuration and installs the logger into the command
// context.
func (o *options) setup(cmd *cobra.Command) error {
	cfg := DefaultConfig()
	if o.configPath != "" {
		var err error
		if cfg, err = LoadConfig(o.configPath); err != nil {
			return err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = o.logFormat
	}
	if flags.Changed("dim") {
		cfg.Dim = o.dim
	}
	if flags.Changed("seed") {
		cfg.Seed = o.seed
	}
	if flags.Changed("dict") {
		cfg.Dictionary = o.dict
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	o.cfg = cfg

	logger := newLogger(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())
	cmd.SetContext(withLogger(cmd.Context(), logger))
	logger.Debug("Logger configured successfully.", "config", o.configPath)
	return nil
}

// board builds the board from --tiles, --image, or random tiles, in that
// order of preference.
func (o *options) board(cmd *cobra.Command) (*Board, error) {
	ctx := cmd.Context()
	logger := loggerFrom(ctx)

	switch {
	case o.tiles != "":
		dim := o.cfg.Dim
		if !cmd.Flags().Changed("dim") {
			if side := int(math.Sqrt(float64(len(o.tiles)))); side*side == len(o.tiles) {
				dim = side
			}
		}
		b, err := NewBoard(dim)
		if err != nil {
			return nil, err
		}
		if err := b.SetTiles(o.tiles); err != nil {
			return nil, err
		}
		return b, nil

	case o.image != "":
		data, err := os.ReadFile(o.image)
		if err != nil {
			return nil, fmt.Errorf("read image: %w", err)
		}
		gemini, err := NewGeminiClient(ctx, o.cfg.Gemini)
		if err != nil {
			return nil, err
		}
		logger.Info("Scanning board photo.", "path", o.image, "model", gemini.modelName)
		return gemini.ScanBoard(ctx, data, http.DetectContentType(data))

	default:
		seed := o.cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		b, err := NewBoard(o.cfg.Dim)
		if err != nil {
			return nil, err
		}
		if err := b.Fill(NewRandomTiles(uint64(seed))); err != nil {
			return nil, err
		}
		logger.Info("Random board generated.", "dim", b.Dim(), "seed", seed)
		return b, nil
	}
}

func newSolveCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Print the board and every dictionary word it contains",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.cfg.Dictionary == "" {
				return fmt.Errorf("no dictionary: set --dict or dictionary in the config file")
			}
			dict, err := LoadDictionary(opts.cfg.Dictionary)
			if err != nil {
				return err
			}
			b, err := opts.board(cmd)
			if err != nil {
				return err
			}

			words, err := Solve(cmd.Context(), b, dict)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n\n", b)
			for _, w := range words {
				fmt.Fprintln(out, w)
			}
			fmt.Fprintf(out, "Found %d words (dictionary of %d)\n", len(words), dict.Len())
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.dict, "dict", "", "word list, one word per line")
	return cmd
}

func newPathsCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "paths",
		Short: "Enumerate every path on the board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := opts.board(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			var count int
			for p, err := range Paths(cmd.Context(), b) {
				if err != nil {
					return fmt.Errorf("enumerate paths: %w", err)
				}
				count++
				if opts.list && (opts.limit <= 0 || count <= opts.limit) {
					w, err := b.WordFor(p)
					if err != nil {
						return err
					}
					fmt.Fprintf(out, "%v %s\n", []int(p), w)
				}
			}
			fmt.Fprintf(out, "%d paths\n", count)
			return nil
		},
	}
	cmd.Flags().BoolVar(&opts.list, "list", false, "print every path with its word")
	cmd.Flags().IntVar(&opts.limit, "limit", 0, "print at most this many paths (0 for all)")
	return cmd
}

func newNeighborsCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "neighbors",
		Short: "Print the valid moves from every cell",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := opts.board(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n\n", b)
			for i := range b.Size() {
				moves, err := b.Neighbors(Path{i})
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Valid moves from %d => %v\n", i, moves)
			}
			return nil
		},
	}
}
