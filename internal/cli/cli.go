// Package cli is the empctl command line: a client for the employee API.
package cli

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"employee-service/internal/client"
	"employee-service/internal/employee"
	"employee-service/internal/logger"
	"employee-service/internal/ui"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const defaultAPIURL = "http://localhost:8080"

// API is everything the commands call on the server. *client.Client
// satisfies it.
type API interface {
	ui.API
	GetEmployee(ctx context.Context, id int64) (*employee.Employee, error)
	Search(ctx context.Context, filter employee.Filter) ([]employee.Employee, error)
	PDFReport(ctx context.Context, search string) ([]byte, error)
	ExcelReport(ctx context.Context, search string) ([]byte, error)
}

type commandline struct {
	v      *viper.Viper
	api    API
	tui    ui.Tui
	now    func() time.Time
	logger *slog.Logger
}

// NewCmd builds the empctl root command.
func NewCmd() *cobra.Command {
	return newCommandline(nil, ui.NewTerminal(), time.Now).root()
}

// newCommandline leaves api nil to have it built from --api / EMPCTL_API_URL
// before each command runs.
func newCommandline(api API, tui ui.Tui, now func() time.Time) *commandline {
	v := viper.New()
	v.SetEnvPrefix("EMPCTL")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return &commandline{v: v, api: api, tui: tui, now: now, logger: logger.Discard()}
}

func (cl *commandline) root() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "empctl",
		Short: "Manage employee records through the employee API",
		Long: `Manage employee records through the employee API.

Environment variables:
  EMPCTL_API_URL=http://localhost:8080`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		PersistentPreRunE: cl.connect,
	}
	cmd.PersistentFlags().String("api", defaultAPIURL, "base URL of the employee API")
	_ = cl.v.BindPFlag("api_url", cmd.PersistentFlags().Lookup("api"))

	cl.list(cmd)
	cl.search(cmd)
	cl.get(cmd)
	cl.add(cmd)
	cl.update(cmd)
	cl.delete(cmd)
	cl.states(cmd)
	cl.chart(cmd)
	cl.export(cmd)
	cl.report(cmd)
	return cmd
}

func (cl *commandline) connect(cmd *cobra.Command, args []string) error {
	if cl.api == nil {
		cl.api = client.NewClient(cl.v.GetString("api_url"))
	}
	return nil
}

// controller returns a fresh store-backed controller for one command.
func (cl *commandline) controller() *ui.Controller {
	return ui.NewController(cl.api, ui.NewStore(ui.InitialState()), cl.logger, cl.now)
}
