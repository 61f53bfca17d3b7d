package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"today-knowledge/catalog"
	"today-knowledge/cmd/internal/logger"
	"today-knowledge/cmd/widget/controller"
	"today-knowledge/cmd/widget/tui"
	"today-knowledge/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type options struct {
	configDir string
	serverURL string
	logFile   string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "knowledge",
		Short:         "오늘의 1분 지식 위젯",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd, opts)
		},
	}
	root.PersistentFlags().StringVar(&opts.configDir, "config", "", "config.yaml 이 있는 디렉터리 (기본: 현재 위치에서 위로 탐색)")
	root.PersistentFlags().StringVar(&opts.serverURL, "server-url", "", "지식 생성 서버 주소 (config 의 widget.server_url 보다 우선)")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "대화형 위젯 실행",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd, opts)
		},
	}
	tuiCmd.Flags().StringVar(&opts.logFile, "log-file", "", "TUI 실행 중 로그를 쓸 파일 (기본: 버림)")
	root.Flags().AddFlagSet(tuiCmd.Flags())

	root.AddCommand(tuiCmd)
	root.AddCommand(newAskCmd(opts))
	root.AddCommand(newTopicsCmd())
	return root
}

func loadController(opts *options) *controller.Controller {
	if opts.configDir != "" {
		config.InitAppFrom(opts.configDir)
	} else {
		config.InitApp()
	}
	cfg := config.GetConfig()

	serverURL := cfg.Widget.ServerURL
	if strings.TrimSpace(opts.serverURL) != "" {
		serverURL = opts.serverURL
	}
	return controller.New(controller.Config{
		ServerURL:      serverURL,
		RequestTimeout: cfg.Widget.RequestTimeout,
	})
}

func runTUI(cmd *cobra.Command, opts *options) error {
	out := cmd.OutOrStdout()
	if f, ok := out.(*os.File); !ok || !isatty.IsTerminal(f.Fd()) {
		return fmt.Errorf("tui requires a terminal; use `knowledge ask` instead")
	}

	ctrl := loadController(opts)
	level := config.GetConfig().Logging.Level
	var logOut io.Writer = io.Discard
	if opts.logFile != "" {
		f, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		defer f.Close()
		logOut = f
	}
	logger.InitWithWriter(level, logOut)

	return tui.Run(cmd.Context(), ctrl, cmd.InOrStdin(), out)
}

func newAskCmd(opts *options) *cobra.Command {
	var width int
	cmd := &cobra.Command{
		Use:   "ask [topic...]",
		Short: "주제 하나로 지식을 한 번 받아 출력 (주제를 비우면 랜덤)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl := loadController(opts)
			logger.InitWithWriter(config.GetConfig().Logging.Level, cmd.ErrOrStderr())

			input := controller.NewTextInput(strings.Join(args, " "))
			sink := tui.NewConsoleSink(cmd.OutOrStdout(), width)
			ctrl.Submit(cmd.Context(), input, sink)
			return nil
		},
	}
	cmd.Flags().IntVar(&width, "width", 72, "출력 폭")
	return cmd
}

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "topics",
		Short: "주제 목록 출력",
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			for _, g := range catalog.Groups() {
				fmt.Fprintln(w, g.Theme)
				for _, topic := range g.Topics {
					fmt.Fprintf(w, "  - %s\n", topic)
				}
			}
			return nil
		},
	}
}
