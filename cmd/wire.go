package cmd

import (
	"fmt"
	"log/slog"

	resultrender "github.com/arpahome/nustudy/internal/adapters/render/result"
	"github.com/arpahome/nustudy/internal/adapters/repo/textfile"
	"github.com/arpahome/nustudy/internal/application"
	"github.com/arpahome/nustudy/internal/config"
	"github.com/arpahome/nustudy/internal/platform/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type app struct {
	v        *viper.Viper
	service  *application.Service
	renderer func(application.Result) (string, error)
	logger   *slog.Logger
}

func newApp(v *viper.Viper) *app {
	return &app{
		v:        v,
		renderer: resultrender.Render,
	}
}

// load resolves configuration and reads the data file. It runs after flag
// parsing so --data and --log-level are honoured.
func (a *app) load(cmd *cobra.Command) error {
	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}

	a.logger = logger.New(cfg.Log, cmd.ErrOrStderr())

	repo, err := textfile.NewRepository(cfg.Data.Path)
	if err != nil {
		return fmt.Errorf("wire course repository: %w", err)
	}

	a.service = application.NewService(repo, a.logger)
	if err := a.service.Load(cmd.Context()); err != nil {
		return err
	}

	a.logger.Debug("data file ready", "path", repo.Path())
	return nil
}

func (a *app) writeResult(cmd *cobra.Command, result application.Result) error {
	rendered, err := a.renderer(result)
	if err != nil {
		return fmt.Errorf("render result: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}
