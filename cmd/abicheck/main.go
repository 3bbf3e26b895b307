package main

import (
	stderrors "errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/wippyai/winabi"
	"github.com/wippyai/winabi/ctype/layout"
	"github.com/wippyai/winabi/verify"
	"github.com/wippyai/winabi/win32"
)

var errFailed = stderrors.New("verification failed")

func main() {
	if err := newRootCommand().Execute(); err != nil {
		if !stderrors.Is(err, errFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var opts checkOptions

	cmd := &cobra.Command{
		Use:           "abicheck",
		Short:         "Verify Go declarations against Win32 layouts and signatures",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, &opts)
		},
	}
	installCheckFlags(cmd.Flags(), &opts)

	cmd.AddCommand(
		newCheckCommand(),
		newListCommand(),
		newLayoutCommand(),
	)
	return cmd
}

func newCheckCommand() *cobra.Command {
	var opts checkOptions

	cmd := &cobra.Command{
		Use:   "check [OPTIONS]",
		Short: "Run the verification table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, &opts)
		},
	}
	installCheckFlags(cmd.Flags(), &opts)
	return cmd
}

func runCheck(cmd *cobra.Command, opts *checkOptions) error {
	cfg, err := resolveConfig(cmd.Flags(), opts)
	if err != nil {
		return err
	}

	arch, err := targetArch(cfg.Arch)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.Debug)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()
	verify.SetLogger(logger)

	vopts := []verify.Option{verify.WithLogger(logger)}
	if arch != "" {
		vopts = append(vopts, verify.WithArch(arch))
	}
	v := verify.New(vopts...)

	ropts := verify.RunOptions{
		Include:  cfg.Include,
		Exclude:  cfg.Exclude,
		Parallel: cfg.Parallel,
	}
	if opts.interactive {
		return runInteractive(cmd.Context(), v, ropts)
	}

	rep, err := verify.Run(cmd.Context(), v, ropts)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	printReport(out, rep, newStyles(out, !cfg.NoColor))
	if !rep.OK() {
		return errFailed
	}
	return nil
}

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the verification cases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t := table.New().Headers("CASE", "NATIVE", "ARCHES", "NOTE")
			for _, c := range verify.Cases() {
				t.Row(c.Name, c.Native, arches(c.Arches), c.Note)
			}
			for _, c := range verify.FuncCases() {
				t.Row(c.Name, c.Native+"()", arches(c.Arches), "")
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return nil
		},
	}
}

func arches(as []winabi.Arch) string {
	if len(as) == 0 {
		return "all"
	}
	names := make([]string, len(as))
	for i, a := range as {
		names[i] = a.String()
	}
	return strings.Join(names, ",")
}

func newLayoutCommand() *cobra.Command {
	var archName string

	cmd := &cobra.Command{
		Use:   "layout TYPE",
		Short: "Print the native layout of a struct or the widths of a function",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			arch, ok := winabi.HostArch()
			if archName != "" || !ok {
				if archName == "" {
					archName = string(winabi.ArchAMD64)
				}
				var err error
				if arch, err = winabi.ParseArch(archName); err != nil {
					return err
				}
			}
			out, err := describe(win32.Default(), arch, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringVar(&archName, "arch", "", "Target architecture (default: host)")
	return cmd
}

// describe renders a catalog struct as offset/size rows, or a prototype as
// its return and parameter widths.
func describe(c *win32.Catalog, arch winabi.Arch, name string) (string, error) {
	calc := layout.NewCalculator(arch)

	if st, err := c.Struct(name); err == nil {
		info, err := calc.Calculate(st)
		if err != nil {
			return "", err
		}
		t := table.New().Headers("FIELD", "OFFSET", "SIZE", "TYPE")
		for _, fname := range info.Order {
			f := info.Fields[fname]
			size, err := calc.SizeOf(f.Type)
			if err != nil {
				return "", err
			}
			t.Row(fname, fmt.Sprint(f.Offset), fmt.Sprint(size), f.Type.String())
		}
		return fmt.Sprintf("%s (%s): size %d, align %d\n%s", name, arch, info.Size, info.Align, t.Render()), nil
	}

	p, err := c.Proto(name)
	if err != nil {
		return "", err
	}
	t := table.New().Headers("PARAM", "WIDTH", "TYPE")
	ret, err := calc.ParamSize(p.Return)
	if err != nil {
		return "", err
	}
	t.Row("return", fmt.Sprint(ret), p.Return.String())
	for _, param := range p.Params {
		w, err := calc.ParamSize(param.Type)
		if err != nil {
			return "", err
		}
		t.Row(param.Name, fmt.Sprint(w), param.Type.String())
	}
	return fmt.Sprintf("%s!%s (%s)\n%s", p.DLL, p.Name, arch, t.Render()), nil
}
